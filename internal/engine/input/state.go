// Package input holds backend-independent input: the per-frame snapshot and
// the overlay toggle. The SDL and ImGui backends fill State.
package input

// State is one frame's input snapshot, independent of the backend that
// produced it.
type State struct {
	// Held movement keys
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool

	Escape     bool
	ToggleHeld bool // overlay toggle key (left shift)
	Screenshot bool // pressed this frame

	// Pointer motion in pixels since last frame; +Y is down.
	MouseDX, MouseDY float32
	Scroll           float32

	Quit bool // window close requested

	// Resized is set when the window size changed this frame.
	Resized       bool
	Width, Height int
}

// Toggle flips a visibility flag on each press of a held key. Holding the
// key does not repeat; it must be released before the next flip.
type Toggle struct {
	Visible bool
	armed   bool
}

// NewToggle returns a toggle ready to flip on the first press.
func NewToggle(visible bool) *Toggle {
	return &Toggle{Visible: visible, armed: true}
}

// Update feeds the current key state and reports whether Visible changed.
func (t *Toggle) Update(held bool) bool {
	if !held {
		t.armed = true
		return false
	}
	if !t.armed {
		return false
	}
	t.armed = false
	t.Visible = !t.Visible
	return true
}
