// Package ui provides the Dear ImGui overlay: the window and GL context on
// the overlay path, the scene background and the lighting panels.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/engine/input"
	"github.com/Faultbox/robowalk/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend  backend.Backend[sdlbackend.SDLWindowFlags]
	captured bool

	lastW, lastH int32
}

// NewBackend creates the ImGui context and the window with its GL context.
// OpenGL itself is initialized by the renderer.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		io := imgui.CurrentIO()
		io.SetIniFilename("")
	})

	b.backend.SetBgColor(imgui.NewVec4(0.05, 0.05, 0.05, 1.0))
	b.backend.CreateWindow(title, int(width), int(height))

	logger.Info("overlay window created",
		zap.String("title", title),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return b, nil
}

// Run starts the main render loop. frame is called once per frame between
// NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.backend.Run(func() {
		if b.captured {
			imgui.SetMouseCursor(imgui.MouseCursorNone)
		}
		frame()
	})
}

// Close asks the loop to end after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// SetPointerCaptured hides the cursor while the camera owns the pointer.
func (b *Backend) SetPointerCaptured(captured bool) {
	b.captured = captured
}

// WindowSize returns the display size in logical pixels.
func (b *Backend) WindowSize() (float32, float32) {
	size := imgui.CurrentIO().DisplaySize()
	return size.X, size.Y
}

// FramebufferSize returns the drawable size in physical pixels.
// DisplaySize is logical pixels, DisplayFramebufferScale is the multiplier.
func (b *Backend) FramebufferSize() (int32, int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int32(size.X * scale.X), int32(size.Y * scale.Y)
}

// Input samples ImGui's key and mouse state into a frame snapshot.
func (b *Backend) Input() input.State {
	io := imgui.CurrentIO()
	s := input.State{
		Forward:    IsKeyDown(imgui.KeyW),
		Back:       IsKeyDown(imgui.KeyS),
		Left:       IsKeyDown(imgui.KeyA),
		Right:      IsKeyDown(imgui.KeyD),
		Up:         IsKeyDown(imgui.KeySpace),
		Down:       IsKeyDown(imgui.KeyLeftCtrl),
		Escape:     IsKeyDown(imgui.KeyEscape),
		ToggleHeld: IsKeyDown(imgui.KeyLeftShift),
		Screenshot: IsKeyPressed(imgui.KeyF12),
		Scroll:     io.MouseWheel(),
	}

	delta := io.MouseDelta()
	s.MouseDX, s.MouseDY = delta.X, delta.Y

	w, h := b.FramebufferSize()
	if w != b.lastW || h != b.lastH {
		s.Resized = b.lastW != 0 || b.lastH != 0
		s.Width, s.Height = int(w), int(h)
		b.lastW, b.lastH = w, h
	}
	return s
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsKeyDown checks if a key is currently held down.
func IsKeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}
