// Package gputest provides recording fakes for the gpu interfaces.
package gputest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
)

// Call is one recorded GPU command.
type Call struct {
	Target string // program, device, sky or drawable name
	Op     string // "use", "set", "depth", "draw"
	Name   string // uniform name for "set"
	Value  any
}

func (c Call) String() string {
	if c.Op == "set" {
		return fmt.Sprintf("%s.set(%s)", c.Target, c.Name)
	}
	if c.Value != nil {
		return fmt.Sprintf("%s.%s(%v)", c.Target, c.Op, c.Value)
	}
	return fmt.Sprintf("%s.%s", c.Target, c.Op)
}

// Log is a shared, ordered command log.
type Log struct {
	Calls []Call
}

func (l *Log) add(c Call) { l.Calls = append(l.Calls, c) }

// Reset clears the log.
func (l *Log) Reset() { l.Calls = l.Calls[:0] }

// Filter returns the calls matching target and op. Empty strings match all.
func (l *Log) Filter(target, op string) []Call {
	var out []Call
	for _, c := range l.Calls {
		if (target == "" || c.Target == target) && (op == "" || c.Op == op) {
			out = append(out, c)
		}
	}
	return out
}

// Program records Use and uniform sets, and keeps the last value per name.
type Program struct {
	Name   string
	Log    *Log
	Values map[string]any
}

// NewProgram returns a Program writing to log.
func NewProgram(name string, log *Log) *Program {
	return &Program{Name: name, Log: log, Values: make(map[string]any)}
}

var _ gpu.Program = (*Program)(nil)

func (p *Program) set(name string, v any) {
	p.Values[name] = v
	p.Log.add(Call{Target: p.Name, Op: "set", Name: name, Value: v})
}

func (p *Program) Use() { p.Log.add(Call{Target: p.Name, Op: "use"}) }
func (p *Program) SetInt(name string, v int32) { p.set(name, v) }
func (p *Program) SetFloat(name string, v float32) { p.set(name, v) }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.set(name, v) }
func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.set(name, m) }

// Device records depth function changes.
type Device struct {
	Log *Log
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) SetDepthFunc(fn gpu.DepthFunc) {
	d.Log.add(Call{Target: "device", Op: "depth", Value: fn})
}

// Sky records skybox draws.
type Sky struct {
	Log *Log
}

var _ gpu.Sky = (*Sky)(nil)

func (s *Sky) Draw() { s.Log.add(Call{Target: "sky", Op: "draw"}) }

// Drawable records draws under its name.
type Drawable struct {
	Name string
	Log  *Log
}

var _ gpu.Drawable = (*Drawable)(nil)

func (d *Drawable) Draw(gpu.Program) {
	d.Log.add(Call{Target: d.Name, Op: "draw"})
}
