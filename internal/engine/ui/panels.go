package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robowalk/internal/engine/lighting"
)

// SliderFormat is the display format of scalar sliders.
const SliderFormat = "%.3f"

// PanelAlpha is the global style alpha for the panels. Hidden panels are
// still submitted, fully transparent.
func PanelAlpha(visible bool) float32 {
	if visible {
		return 1
	}
	return 0
}

// PanelFlags returns the window flags for the panels. Hidden panels take no
// input so they cannot be edited by accident.
func PanelFlags(visible bool) imgui.WindowFlags {
	if visible {
		return imgui.WindowFlagsNone
	}
	return imgui.WindowFlagsNoInputs
}

// DrawPanels draws one window per panel. Every edit goes through the
// control's setter, which clamps to its range.
func DrawPanels(panels []lighting.Panel, visible bool) {
	imgui.PushStyleVarFloat(imgui.StyleVarAlpha, PanelAlpha(visible))
	flags := PanelFlags(visible)

	for _, p := range panels {
		if imgui.BeginV(p.Title, nil, flags) {
			for _, c := range p.Controls {
				drawControl(c)
			}
		}
		imgui.End()
	}

	imgui.PopStyleVar()
}

func drawControl(c lighting.Control) {
	switch c.Kind {
	case lighting.Colour:
		col := [3]float32(c.Colour())
		if imgui.ColorEdit3(c.Label, &col) {
			c.SetColour(mgl32.Vec3(col))
		}
	default:
		v := c.Value()
		if imgui.SliderFloatV(c.Label, &v, c.Range.Min, c.Range.Max, SliderFormat, imgui.SliderFlagsAlwaysClamp) {
			c.Set(v)
		}
	}
}

// DrawSceneTexture draws the scene colour texture as a full-window
// background behind the panels.
func DrawSceneTexture(x, y, w, h float32, textureID uint32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		// GL textures are bottom-up
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// DrawStatus shows the frame rate and layout in the top right corner.
func DrawStatus(fps float64, layout string, width float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(width-160, 5))
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("##Status", nil, flags) {
		imgui.Text(fmt.Sprintf("FPS: %.0f", fps))
		imgui.Text("Layout: " + layout)
	}
	imgui.End()
}
