package scene

import "time"

// Clock reports seconds elapsed since it was started. It is monotonic and
// is never reset or paused.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource starts a clock driven by now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Elapsed returns seconds since start.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// FrameTimer measures the time between consecutive frames.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

// NewFrameTimer returns a timer whose first Tick measures from now.
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{last: now(), now: now}
}

// Tick returns seconds since the previous Tick.
func (f *FrameTimer) Tick() float32 {
	t := f.now()
	dt := float32(t.Sub(f.last).Seconds())
	f.last = t
	return dt
}
