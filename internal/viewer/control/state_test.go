package control

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/robowalk/internal/config"
	"github.com/Faultbox/robowalk/internal/engine/camera"
	"github.com/Faultbox/robowalk/internal/engine/input"
	"github.com/Faultbox/robowalk/internal/engine/scene"
)

func newTestState(t *testing.T, visible bool) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Overlay.Visible = visible
	layout, err := scene.LayoutByName(scene.LayoutPlaza)
	require.NoError(t, err)
	return NewState(cfg, layout, nil)
}

func TestNewStateUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Position = [3]float32{1, 2, 3}
	cfg.Camera.Speed = 5
	cfg.Camera.Zoom = 90
	layout, err := scene.LayoutByName(scene.LayoutPlaza)
	require.NoError(t, err)

	s := NewState(cfg, layout, nil)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Camera.Position())
	assert.Equal(t, float32(5), s.Camera.Speed)
	assert.Equal(t, float32(camera.MaxZoom), s.Camera.Zoom)
	assert.False(t, s.Toggle.Visible)
	assert.NotEmpty(t, s.Panels)
}

func TestEscapeQuitsOnlyWhenOverlayHidden(t *testing.T) {
	hidden := newTestState(t, false)
	assert.True(t, hidden.HandleInput(input.State{Escape: true}, 0.016).Quit)

	visible := newTestState(t, true)
	assert.False(t, visible.HandleInput(input.State{Escape: true}, 0.016).Quit)
}

func TestWindowCloseAlwaysQuits(t *testing.T) {
	s := newTestState(t, true)
	assert.True(t, s.HandleInput(input.State{Quit: true}, 0.016).Quit)
}

func TestToggleChangesPointerCapture(t *testing.T) {
	s := newTestState(t, false)

	a := s.HandleInput(input.State{ToggleHeld: true}, 0.016)
	assert.True(t, a.CaptureChanged)
	assert.False(t, a.Captured)
	assert.True(t, s.Toggle.Visible)

	// still held: no repeat
	a = s.HandleInput(input.State{ToggleHeld: true}, 0.016)
	assert.False(t, a.CaptureChanged)
	assert.True(t, s.Toggle.Visible)

	s.HandleInput(input.State{}, 0.016)
	a = s.HandleInput(input.State{ToggleHeld: true}, 0.016)
	assert.True(t, a.CaptureChanged)
	assert.True(t, a.Captured)
	assert.False(t, s.Toggle.Visible)
}

func TestMovementGatedByOverlay(t *testing.T) {
	visible := newTestState(t, true)
	start := visible.Camera.Position()
	visible.HandleInput(input.State{Forward: true, Up: true}, 1)
	assert.Equal(t, start, visible.Camera.Position())

	hidden := newTestState(t, false)
	hidden.HandleInput(input.State{Forward: true}, 1)
	// default camera looks down -Z
	moved := hidden.Camera.Position()
	assert.InDelta(t, start.Z()-camera.DefaultSpeed, moved.Z(), 1e-4)
	assert.InDelta(t, start.Y(), moved.Y(), 1e-4)

	hidden.HandleInput(input.State{Up: true}, 1)
	assert.InDelta(t, start.Y()+camera.DefaultSpeed, hidden.Camera.Position().Y(), 1e-4)
}

func TestLookInvertsScreenY(t *testing.T) {
	s := newTestState(t, false)
	s.HandleInput(input.State{MouseDX: 10, MouseDY: 20}, 0.016)

	assert.InDelta(t, camera.DefaultYaw+1, s.Camera.Yaw, 1e-4)
	// moving the pointer down looks down
	assert.InDelta(t, -2, s.Camera.Pitch, 1e-4)
}

func TestLookAndScrollGatedByOverlay(t *testing.T) {
	s := newTestState(t, true)
	s.HandleInput(input.State{MouseDX: 10, MouseDY: 20, Scroll: 5}, 0.016)

	assert.Equal(t, float32(camera.DefaultYaw), s.Camera.Yaw)
	assert.Equal(t, float32(camera.DefaultPitch), s.Camera.Pitch)
	assert.Equal(t, float32(camera.DefaultZoom), s.Camera.Zoom)
}

func TestScrollZooms(t *testing.T) {
	s := newTestState(t, false)
	s.HandleInput(input.State{Scroll: 5}, 0.016)
	assert.Equal(t, float32(40), s.Camera.Zoom)

	s.HandleInput(input.State{Scroll: 100}, 0.016)
	assert.Equal(t, float32(camera.MinZoom), s.Camera.Zoom)
}

func TestPassthroughActions(t *testing.T) {
	s := newTestState(t, true)
	a := s.HandleInput(input.State{Screenshot: true, Resized: true, Width: 1024, Height: 768}, 0.016)

	assert.True(t, a.Screenshot)
	assert.True(t, a.Resized)
	assert.Equal(t, 1024, a.Width)
	assert.Equal(t, 768, a.Height)
	assert.False(t, a.Quit)
}

func TestStateKeepsStartedClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	clock := scene.NewClockWithSource(func() time.Time { return now })

	// loading took three seconds before the state was built
	now = start.Add(3 * time.Second)
	layout, err := scene.LayoutByName(scene.LayoutPlaza)
	require.NoError(t, err)
	s := NewState(config.Default(), layout, clock)

	assert.Same(t, clock, s.Clock)
	assert.InDelta(t, 3.0, s.Clock.Elapsed(), 1e-9)
}
