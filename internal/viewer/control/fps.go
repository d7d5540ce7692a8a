package control

import "time"

// FPSCounter averages the frame rate over one-second windows.
type FPSCounter struct {
	frames int
	since  time.Time
	fps    float64
}

// NewFPSCounter starts the first window at now.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{since: now}
}

// Frame counts one frame. It returns true when a window closed and FPS was
// updated.
func (f *FPSCounter) Frame(now time.Time) bool {
	f.frames++
	elapsed := now.Sub(f.since)
	if elapsed < time.Second {
		return false
	}
	f.fps = float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.since = now
	return true
}

// FPS returns the rate measured over the last complete window.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}
