package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout validation errors.
var (
	ErrDuplicateID      = errors.New("duplicate entity id")
	ErrMissingParent    = errors.New("attached part has no parent")
	ErrUnknownParent    = errors.New("parent not found")
	ErrInvalidParent    = errors.New("parent is itself an attached part")
	ErrUnexpectedParent = errors.New("only attached parts may have a parent")
	ErrUnknownLayout    = errors.New("unknown layout")
)

// Animation holds the procedural motion rates.
type Animation struct {
	WalkVelocity float64 // units per second along +Z
	ArmVelocity  float32 // scale applied to the arm swing
}

// DefaultAnimation returns the stock walk and arm rates.
func DefaultAnimation() Animation {
	return Animation{WalkVelocity: 0.6, ArmVelocity: 3.0}
}

// armAmplitude is the peak of the unscaled arm swing, in radians.
const armAmplitude float32 = 0.2

// WalkDistance is how far a walking root has moved at time t. The rate is a
// single precision quantity widened for the product with the clock.
func WalkDistance(t, walkVelocity float64) float32 {
	return float32(t * float64(float32(walkVelocity)))
}

// ArmAngle is the arm swing angle in radians at time t. The sine is taken in
// double precision on the raw clock against the widened single precision
// amplitude, narrowed, then scaled.
func ArmAngle(t float64, armVelocity float32) float32 {
	return float32(float64(armAmplitude)*math.Sin(t)) * armVelocity
}

// Composer derives every entity's world matrix from elapsed time.
// It is a pure function of (t, layout, animation); Compose may be called
// with any t in any order.
type Composer struct {
	layout Layout
	anim   Animation

	index   map[string]int
	parents []int // parent index per entity, -1 when none
	statics []mgl32.Mat4
	out     []mgl32.Mat4
}

// NewComposer validates the layout and prepares static matrices.
// Parents may appear anywhere in the list; a part's parent must be a
// Static or WalkingRoot entity.
func NewComposer(layout Layout, anim Animation) (*Composer, error) {
	n := len(layout.Entities)
	c := &Composer{
		layout:  layout,
		anim:    anim,
		index:   make(map[string]int, n),
		parents: make([]int, n),
		statics: make([]mgl32.Mat4, n),
		out:     make([]mgl32.Mat4, n),
	}

	for i := range layout.Entities {
		e := &layout.Entities[i]
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		c.index[e.ID] = i
	}

	for i := range layout.Entities {
		e := &layout.Entities[i]
		c.parents[i] = -1

		if e.Kind != AttachedPart {
			if e.Parent != "" {
				return nil, fmt.Errorf("%w: %q (%s) has parent %q", ErrUnexpectedParent, e.ID, e.Kind, e.Parent)
			}
			if e.Kind == Static {
				c.statics[i] = e.staticMatrix()
			}
			continue
		}

		if e.Parent == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingParent, e.ID)
		}
		p, ok := c.index[e.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q references %q", ErrUnknownParent, e.ID, e.Parent)
		}
		if layout.Entities[p].Kind == AttachedPart {
			return nil, fmt.Errorf("%w: %q references %q", ErrInvalidParent, e.ID, e.Parent)
		}
		c.parents[i] = p
	}

	return c, nil
}

// Layout returns the layout the composer was built from.
func (c *Composer) Layout() Layout {
	return c.layout
}

// Compose returns the world matrix of every entity at time t, in layout
// order. The returned slice is reused by the next call.
func (c *Composer) Compose(t float64) []mgl32.Mat4 {
	walk := WalkDistance(t, c.anim.WalkVelocity)
	angle := ArmAngle(t, c.anim.ArmVelocity)

	// Roots first so parts can read their parent regardless of list order.
	for i := range c.layout.Entities {
		e := &c.layout.Entities[i]
		switch e.Kind {
		case Static:
			c.out[i] = c.statics[i]
		case WalkingRoot:
			c.out[i] = walkingMatrix(e.Offset, walk)
		}
	}

	for i := range c.layout.Entities {
		e := &c.layout.Entities[i]
		if e.Kind != AttachedPart {
			continue
		}
		m := c.out[c.parents[i]]
		if e.Offset != (mgl32.Vec3{}) {
			m = m.Mul4(mgl32.Translate3D(e.Offset.X(), e.Offset.Y(), e.Offset.Z()))
		}
		if e.Motion == MotionArmSwing {
			m = m.Mul4(mgl32.HomogRotate3DY(angle))
		}
		c.out[i] = m
	}

	return c.out
}

// Matrix returns the world matrix of one entity at time t.
func (c *Composer) Matrix(id string, t float64) (mgl32.Mat4, bool) {
	i, ok := c.index[id]
	if !ok {
		return mgl32.Mat4{}, false
	}
	return c.Compose(t)[i], true
}

func walkingMatrix(base mgl32.Vec3, walk float32) mgl32.Mat4 {
	return mgl32.Translate3D(base.X(), base.Y(), base.Z()).
		Mul4(mgl32.Translate3D(0, 0, walk))
}
