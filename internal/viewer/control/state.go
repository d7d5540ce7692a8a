// Package control is the CPU side of the viewer loop: lighting, camera,
// clocks, the overlay toggle and how one input snapshot changes them. It has
// no GPU or windowing dependencies.
package control

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robowalk/internal/config"
	"github.com/Faultbox/robowalk/internal/engine/camera"
	"github.com/Faultbox/robowalk/internal/engine/input"
	"github.com/Faultbox/robowalk/internal/engine/lighting"
	"github.com/Faultbox/robowalk/internal/engine/scene"
)

// State is the CPU side of the viewer: lighting, camera, clocks and the
// overlay toggle. It is owned by the Viewer and handed to each stage
// explicitly.
type State struct {
	Params *lighting.Params
	Panels []lighting.Panel
	Camera *camera.FreeCamera
	Clock  *scene.Clock
	Timer  *scene.FrameTimer
	Toggle *input.Toggle
}

// NewState builds the initial state for layout. clock is the animation clock,
// started before any loading; nil starts one now.
func NewState(cfg *config.Config, layout scene.Layout, clock *scene.Clock) *State {
	if clock == nil {
		clock = scene.NewClock()
	}

	cam := camera.NewFreeCamera(mgl32.Vec3(cfg.Camera.Position))
	if cfg.Camera.Speed > 0 {
		cam.Speed = cfg.Camera.Speed
	}
	if cfg.Camera.Sensitivity > 0 {
		cam.Sensitivity = cfg.Camera.Sensitivity
	}
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = mgl32.Clamp(cfg.Camera.Zoom, camera.MinZoom, camera.MaxZoom)
	}

	params := lighting.Default(layout.Fog)
	return &State{
		Params: params,
		Panels: params.Panels(),
		Camera: cam,
		Clock:  clock,
		Timer:  scene.NewFrameTimer(nil),
		Toggle: input.NewToggle(cfg.Overlay.Visible),
	}
}

// Actions are the side effects one input snapshot asks of the frame loop.
type Actions struct {
	Quit bool

	// CaptureChanged is set when the overlay toggle flipped; Captured is
	// the pointer state that should now apply.
	CaptureChanged bool
	Captured       bool

	Screenshot bool

	Resized       bool
	Width, Height int
}

// HandleInput applies one input snapshot. While the overlay is visible the
// camera ignores keys, pointer and scroll, and Escape does nothing.
func (s *State) HandleInput(in input.State, dt float32) Actions {
	a := Actions{
		Quit:       in.Quit,
		Screenshot: in.Screenshot,
		Resized:    in.Resized,
		Width:      in.Width,
		Height:     in.Height,
	}

	a.CaptureChanged = s.Toggle.Update(in.ToggleHeld)
	a.Captured = !s.Toggle.Visible
	if s.Toggle.Visible {
		return a
	}

	if in.Escape {
		a.Quit = true
	}

	moves := []struct {
		held bool
		dir  camera.Movement
	}{
		{in.Forward, camera.Forward},
		{in.Back, camera.Backward},
		{in.Left, camera.Left},
		{in.Right, camera.Right},
		{in.Up, camera.Up},
		{in.Down, camera.Down},
	}
	for _, m := range moves {
		if m.held {
			s.Camera.HandleMovement(m.dir, dt)
		}
	}

	if in.MouseDX != 0 || in.MouseDY != 0 {
		// screen y grows downwards
		s.Camera.HandleLook(in.MouseDX, -in.MouseDY)
	}
	if in.Scroll != 0 {
		s.Camera.HandleZoom(in.Scroll)
	}
	return a
}
