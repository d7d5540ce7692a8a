package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
	"github.com/Faultbox/robowalk/internal/engine/lighting"
)

// Clip planes of the scene projection.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// View is the camera state the renderer reads each frame.
type View interface {
	ViewMatrix() mgl32.Mat4
	Position() mgl32.Vec3
	FieldOfView() float32 // vertical, degrees
}

// ModelSource resolves a model path to something drawable. ok is false when
// the model failed to load; those entities are skipped.
type ModelSource interface {
	Drawable(path string) (d gpu.Drawable, ok bool)
}

// RendererConfig wires a Renderer to its GPU collaborators.
type RendererConfig struct {
	Composer   *Composer
	Models     ModelSource
	Device     gpu.Device
	Program    gpu.Program // lit scene shader
	SkyProgram gpu.Program
	Sky        gpu.Sky // nil disables the sky pass
}

// Renderer submits one frame: lighting and camera uniforms, every entity in
// layout order, then the sky.
type Renderer struct {
	composer   *Composer
	drawables  []gpu.Drawable
	device     gpu.Device
	program    gpu.Program
	skyProgram gpu.Program
	sky        gpu.Sky
}

// NewRenderer resolves every entity's model once and binds the sky sampler.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	if cfg.Composer == nil || cfg.Device == nil || cfg.Program == nil {
		return nil, errors.New("scene renderer: composer, device and program are required")
	}
	if cfg.Sky != nil && cfg.SkyProgram == nil {
		return nil, errors.New("scene renderer: sky needs a sky program")
	}

	ents := cfg.Composer.Layout().Entities
	r := &Renderer{
		composer:  cfg.Composer,
		drawables: make([]gpu.Drawable, len(ents)),
		device:    cfg.Device,
		sky:       cfg.Sky,
	}
	if cfg.Models != nil {
		for i, e := range ents {
			if d, ok := cfg.Models.Drawable(e.Model); ok {
				r.drawables[i] = d
			}
		}
	}
	r.SetPrograms(cfg.Program, cfg.SkyProgram)
	return r, nil
}

// SetPrograms swaps the shader programs, for example after a hot reload.
// A nil argument keeps the current program.
func (r *Renderer) SetPrograms(program, skyProgram gpu.Program) {
	if program != nil {
		r.program = program
	}
	if skyProgram != nil {
		r.skyProgram = skyProgram
		r.skyProgram.Use()
		r.skyProgram.SetInt("skybox", 0)
	}
}

// Projection returns the perspective projection for the given field of view
// in degrees and aspect ratio.
func Projection(fovDegrees, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, NearPlane, FarPlane)
}

// SkyView strips translation from view so the sky stays centred on the
// camera.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// Render draws the scene at time t. The depth function is LESS on entry and
// on return; only the sky pass runs under LEQUAL.
func (r *Renderer) Render(t float64, params *lighting.Params, cam View, aspect float32) {
	p := r.program
	p.Use()
	params.Apply(p)
	p.SetVec3("viewPos", cam.Position())

	projection := Projection(cam.FieldOfView(), aspect)
	view := cam.ViewMatrix()
	p.SetMat4("projection", projection)
	p.SetMat4("view", view)

	for i, m := range r.composer.Compose(t) {
		d := r.drawables[i]
		if d == nil {
			continue
		}
		p.SetMat4("model", m)
		d.Draw(p)
	}

	if r.sky == nil {
		return
	}
	r.device.SetDepthFunc(gpu.DepthLessEqual)
	r.skyProgram.Use()
	r.skyProgram.SetMat4("view", SkyView(view))
	r.skyProgram.SetMat4("projection", projection)
	r.sky.Draw()
	r.device.SetDepthFunc(gpu.DepthLess)
}
