package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
	"github.com/Faultbox/robowalk/internal/engine/gpu/gputest"
	"github.com/Faultbox/robowalk/internal/engine/lighting"
)

type fakeCamera struct {
	pos  mgl32.Vec3
	view mgl32.Mat4
	fov  float32
}

func (c fakeCamera) ViewMatrix() mgl32.Mat4 { return c.view }
func (c fakeCamera) Position() mgl32.Vec3 { return c.pos }
func (c fakeCamera) FieldOfView() float32 { return c.fov }

// fakeModels hands out one recording drawable per path, except for paths
// listed in missing.
type fakeModels struct {
	log     *gputest.Log
	missing map[string]bool
}

func (m fakeModels) Drawable(path string) (gpu.Drawable, bool) {
	if m.missing[path] {
		return nil, false
	}
	return &gputest.Drawable{Name: path, Log: m.log}, true
}

type rig struct {
	log      *gputest.Log
	program  *gputest.Program
	sky      *gputest.Program
	renderer *Renderer
}

func newRig(t *testing.T, layout Layout, missing ...string) *rig {
	t.Helper()
	log := &gputest.Log{}
	miss := make(map[string]bool)
	for _, m := range missing {
		miss[m] = true
	}

	comp, err := NewComposer(layout, DefaultAnimation())
	require.NoError(t, err)

	r := &rig{
		log:     log,
		program: gputest.NewProgram("scene", log),
		sky:     gputest.NewProgram("skyProgram", log),
	}
	r.renderer, err = NewRenderer(RendererConfig{
		Composer:   comp,
		Models:     fakeModels{log: log, missing: miss},
		Device:     &gputest.Device{Log: log},
		Program:    r.program,
		SkyProgram: r.sky,
		Sky:        &gputest.Sky{Log: log},
	})
	require.NoError(t, err)
	return r
}

func defaultCamera() fakeCamera {
	return fakeCamera{
		pos:  mgl32.Vec3{0, 3, 20},
		view: mgl32.LookAtV(mgl32.Vec3{0, 3, 20}, mgl32.Vec3{0, 3, 19}, mgl32.Vec3{0, 1, 0}),
		fov:  45,
	}
}

func TestNewRendererBindsSkySampler(t *testing.T) {
	r := newRig(t, PlazaLayout())

	assert.Equal(t, int32(0), r.sky.Values["skybox"])
	calls := r.log.Filter("skyProgram", "")
	require.Len(t, calls, 2)
	assert.Equal(t, "use", calls[0].Op, "sampler set on the active program")
}

func TestRenderDrawOrder(t *testing.T) {
	r := newRig(t, PlazaLayout())
	r.log.Reset()

	r.renderer.Render(1.25, lighting.Default(true), defaultCamera(), 800.0/600.0)

	var draws []string
	for _, c := range r.log.Filter("", "draw") {
		draws = append(draws, c.Target)
	}

	var want []string
	for i := 0; i < 4; i++ {
		want = append(want, RobotBodyModel, RobotArmLModel, RobotArmRModel, RobotHeadModel)
	}
	want = append(want, SpireTopModel, SpireBaseModel, BuildingModel, BuildingModel, FloorModel, "sky")
	assert.Equal(t, want, draws)
}

func TestRenderSetsModelBeforeEveryDraw(t *testing.T) {
	r := newRig(t, PlazaLayout())
	r.log.Reset()

	at := 3.5
	r.renderer.Render(at, lighting.Default(true), defaultCamera(), 1)
	want := r.renderer.composer.Compose(at)

	var lastModel any
	drawn := 0
	for _, c := range r.log.Calls {
		switch {
		case c.Op == "set" && c.Target == "scene" && c.Name == "model":
			lastModel = c.Value
		case c.Op == "draw" && c.Target != "sky":
			require.NotNil(t, lastModel, "draw %d without a model matrix", drawn)
			assert.Equal(t, want[drawn], lastModel, "entity %d", drawn)
			lastModel = nil
			drawn++
		}
	}
	assert.Equal(t, len(want), drawn)
}

func TestRenderPushesFrameUniformsFirst(t *testing.T) {
	r := newRig(t, PlazaLayout())
	r.log.Reset()
	cam := defaultCamera()

	r.renderer.Render(0, lighting.Default(true), cam, 2)

	require.NotEmpty(t, r.log.Calls)
	assert.Equal(t, "scene.use", r.log.Calls[0].String())

	firstDraw := -1
	for i, c := range r.log.Calls {
		if c.Op == "draw" {
			firstDraw = i
			break
		}
	}
	require.Positive(t, firstDraw)

	before := map[string]bool{}
	for _, c := range r.log.Calls[:firstDraw] {
		before[c.Name] = true
	}
	for _, name := range []string{
		"ambientStrength", "ambientColour", "viewPos", "dirColour", "lightDirection",
		"pointLights[0].colour", "pointLights[1].quadratic",
		"fogColour", "fogDensity", "fogStart", "fogEnd",
		"projection", "view", "model",
	} {
		assert.True(t, before[name], "%s pushed before the first draw", name)
	}

	assert.Equal(t, cam.pos, r.program.Values["viewPos"])
	assert.Equal(t, cam.view, r.program.Values["view"])
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100), r.program.Values["projection"])
}

func TestSkyPassIsBracketedByDepthFunc(t *testing.T) {
	layouts := map[string]Layout{
		"plaza":     PlazaLayout(),
		"courtyard": CourtyardLayout(),
		"empty":     {Name: "empty"},
	}

	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			r := newRig(t, layout)
			r.log.Reset()

			r.renderer.Render(7, lighting.Default(false), defaultCamera(), 1)

			var tail []string
			for _, c := range r.log.Calls {
				if c.Target == "device" || c.Target == "sky" || (c.Target == "skyProgram" && c.Op == "use") {
					tail = append(tail, c.String())
				}
			}
			assert.Equal(t, []string{
				"device.depth(LEQUAL)",
				"skyProgram.use",
				"sky.draw",
				"device.depth(LESS)",
			}, tail)

			last := r.log.Calls[len(r.log.Calls)-1]
			assert.Equal(t, "device.depth(LESS)", last.String(), "frame ends with depth restored")
		})
	}
}

func TestSkyUsesRotationOnlyView(t *testing.T) {
	r := newRig(t, PlazaLayout())
	cam := defaultCamera()

	r.renderer.Render(0, lighting.Default(true), cam, 1)

	skyView, ok := r.sky.Values["view"].(mgl32.Mat4)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, skyView.Col(3), "translation removed")
	assert.Equal(t, cam.view.Mat3(), skyView.Mat3())
	assert.Equal(t, r.program.Values["projection"], r.sky.Values["projection"])
}

func TestMissingModelIsSkipped(t *testing.T) {
	r := newRig(t, PlazaLayout(), BuildingModel)
	r.log.Reset()

	r.renderer.Render(0, lighting.Default(true), defaultCamera(), 1)

	for _, c := range r.log.Filter("", "draw") {
		assert.NotEqual(t, BuildingModel, c.Target)
	}
	// Two buildings skipped, plus the sky draw.
	assert.Len(t, r.log.Filter("", "draw"), len(PlazaLayout().Entities)-2+1)
	assert.Equal(t, len(PlazaLayout().Entities)-2, countSets(r.log, "model"))
}

func countSets(log *gputest.Log, name string) int {
	n := 0
	for _, c := range log.Filter("scene", "set") {
		if c.Name == name {
			n++
		}
	}
	return n
}

func TestSetProgramsSwapsScene(t *testing.T) {
	r := newRig(t, PlazaLayout())
	replacement := gputest.NewProgram("reloaded", r.log)

	r.renderer.SetPrograms(replacement, nil)
	r.log.Reset()
	r.renderer.Render(0, lighting.Default(true), defaultCamera(), 1)

	assert.Empty(t, r.log.Filter("scene", ""))
	assert.NotEmpty(t, r.log.Filter("reloaded", "set"))
	assert.Len(t, r.log.Filter("skyProgram", "use"), 1, "sky program kept")
}

func TestNewRendererRequiresCollaborators(t *testing.T) {
	_, err := NewRenderer(RendererConfig{})
	assert.Error(t, err)

	comp, err := NewComposer(PlazaLayout(), DefaultAnimation())
	require.NoError(t, err)
	log := &gputest.Log{}
	_, err = NewRenderer(RendererConfig{
		Composer: comp,
		Device:   &gputest.Device{Log: log},
		Program:  gputest.NewProgram("scene", log),
		Sky:      &gputest.Sky{Log: log},
	})
	assert.Error(t, err, "sky without sky program")
}
