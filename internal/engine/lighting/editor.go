package lighting

import (
	"strconv"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Range is the inclusive interval an editable value is held to.
type Range struct {
	Min, Max float32
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float32) float32 {
	return mgl32.Clamp(v, r.Min, r.Max)
}

// Slider ranges offered by the overlay.
var (
	UnitRange        = Range{Min: 0, Max: 1}
	DirectionRange   = Range{Min: -1, Max: 1}
	PositionRange    = Range{Min: -200, Max: 200}
	FogDistanceRange = Range{Min: 0, Max: 100}
)

// ControlKind selects the widget used for a control.
type ControlKind int

const (
	// Scalar is a single float slider.
	Scalar ControlKind = iota
	// Colour is an RGB colour picker; every channel uses the control's range.
	Colour
)

// Control binds one editable value of Params to a label and range.
type Control struct {
	Label string
	Kind  ControlKind
	Range Range

	scalar *float32
	colour *mgl32.Vec3
}

// Value returns the current scalar value.
func (c Control) Value() float32 {
	if c.scalar == nil {
		return 0
	}
	return *c.scalar
}

// Set stores v clamped to the control's range and returns the stored value.
// NaN is rejected and the previous value kept.
func (c Control) Set(v float32) float32 {
	if c.scalar == nil {
		return 0
	}
	if !math32.IsNaN(v) {
		*c.scalar = c.Range.Clamp(v)
	}
	return *c.scalar
}

// Colour returns the current colour.
func (c Control) Colour() mgl32.Vec3 {
	if c.colour == nil {
		return mgl32.Vec3{}
	}
	return *c.colour
}

// SetColour stores rgb with each channel clamped and returns the stored
// colour. A NaN channel keeps its previous value.
func (c Control) SetColour(rgb mgl32.Vec3) mgl32.Vec3 {
	if c.colour == nil {
		return mgl32.Vec3{}
	}
	for i, v := range rgb {
		if !math32.IsNaN(v) {
			c.colour[i] = c.Range.Clamp(v)
		}
	}
	return *c.colour
}

// Panel is one overlay window.
type Panel struct {
	Title    string
	Controls []Control
}

func scalar(label string, r Range, v *float32) Control {
	return Control{Label: label, Kind: Scalar, Range: r, scalar: v}
}

func colour(label string, v *mgl32.Vec3) Control {
	return Control{Label: label, Kind: Colour, Range: UnitRange, colour: v}
}

// Panels returns the overlay windows bound to p. The controls write
// straight into p, so edits are visible to the next Apply.
func (p *Params) Panels() []Panel {
	dir := &p.Directional.Direction
	panels := []Panel{{
		Title: "Lighting Controls",
		Controls: []Control{
			colour("Ambient Colour", &p.AmbientColour),
			scalar("Ambient Strength", UnitRange, &p.AmbientStrength),
			colour("Directional Light Colour", &p.Directional.Colour),
			scalar("Directional Light X", DirectionRange, &dir[0]),
			scalar("Directional Light Y", DirectionRange, &dir[1]),
			scalar("Directional Light Z", DirectionRange, &dir[2]),
		},
	}}

	for i := range p.PointLights {
		pl := &p.PointLights[i]
		name := pointLightTitle(i)
		panels = append(panels, Panel{
			Title: name,
			Controls: []Control{
				colour(name+" Colour", &pl.Colour),
				scalar("Light X", PositionRange, &pl.Position[0]),
				scalar("Light Y", PositionRange, &pl.Position[1]),
				scalar("Light Z", PositionRange, &pl.Position[2]),
				scalar(name+" Constant", UnitRange, &pl.Constant),
				scalar(name+" Linear", UnitRange, &pl.Linear),
				scalar(name+" Quadratic", UnitRange, &pl.Quadratic),
			},
		})
	}

	if p.Fog != nil {
		panels = append(panels, Panel{
			Title: "Fog Controls",
			Controls: []Control{
				colour("Fog Colour", &p.Fog.Colour),
				scalar("Fog Density", UnitRange, &p.Fog.Density),
				scalar("Fog Start", FogDistanceRange, &p.Fog.Start),
				scalar("Fog End", FogDistanceRange, &p.Fog.End),
			},
		})
	}
	return panels
}

func pointLightTitle(i int) string {
	return "Point Light " + strconv.Itoa(i)
}
