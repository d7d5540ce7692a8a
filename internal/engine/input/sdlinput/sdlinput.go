// Package sdlinput fills input snapshots from SDL2 events and keyboard
// state on the plain window path.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/robowalk/internal/engine/input"
)

// Bindings maps actions to scancodes.
var Bindings = struct {
	Forward, Back, Left, Right, Up, Down sdl.Scancode
	Escape, Toggle, Screenshot           sdl.Scancode
}{
	Forward:    sdl.SCANCODE_W,
	Back:       sdl.SCANCODE_S,
	Left:       sdl.SCANCODE_A,
	Right:      sdl.SCANCODE_D,
	Up:         sdl.SCANCODE_SPACE,
	Down:       sdl.SCANCODE_LCTRL,
	Escape:     sdl.SCANCODE_ESCAPE,
	Toggle:     sdl.SCANCODE_LSHIFT,
	Screenshot: sdl.SCANCODE_F12,
}

// Input handles SDL event polling for the plain window path.
type Input struct{}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update polls SDL events and samples the keyboard.
func (i *Input) Update() input.State {
	s := input.State{}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resized = true
				s.Width = int(e.Data1)
				s.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 && e.Keysym.Scancode == Bindings.Screenshot {
				s.Screenshot = true
			}

		case *sdl.MouseMotionEvent:
			s.MouseDX += float32(e.XRel)
			s.MouseDY += float32(e.YRel)

		case *sdl.MouseWheelEvent:
			s.Scroll += float32(e.Y)
		}
	}

	keys := sdl.GetKeyboardState()
	held := func(sc sdl.Scancode) bool { return int(sc) < len(keys) && keys[sc] != 0 }
	s.Forward = held(Bindings.Forward)
	s.Back = held(Bindings.Back)
	s.Left = held(Bindings.Left)
	s.Right = held(Bindings.Right)
	s.Up = held(Bindings.Up)
	s.Down = held(Bindings.Down)
	s.Escape = held(Bindings.Escape)
	s.ToggleHeld = held(Bindings.Toggle)

	return s
}

// SetPointerCaptured switches between relative free-look (hidden, captured
// pointer) and a free visible pointer.
func SetPointerCaptured(captured bool) {
	sdl.SetRelativeMouseMode(captured)
	if captured {
		sdl.ShowCursor(sdl.DISABLE)
	} else {
		sdl.ShowCursor(sdl.ENABLE)
	}
}
