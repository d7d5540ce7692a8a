// Package scene composes the per-frame world transforms of a fixed layout of
// rigid parts and sequences their draw submissions.
//
// The package has no OpenGL dependency. Drawing goes through the gpu
// interfaces so the whole frame can be recorded in tests.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Kind says how an entity's world matrix is derived.
type Kind int

const (
	// Static entities are placed once and never move.
	Static Kind = iota
	// WalkingRoot entities translate along +Z in proportion to elapsed time.
	WalkingRoot
	// AttachedPart entities follow their parent's current matrix.
	AttachedPart
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case WalkingRoot:
		return "walking-root"
	case AttachedPart:
		return "attached-part"
	default:
		return "unknown"
	}
}

// Motion is the local animation of an attached part.
type Motion int

const (
	// MotionNone keeps the part rigidly on its parent.
	MotionNone Motion = iota
	// MotionArmSwing oscillates the part about the Y axis.
	MotionArmSwing
)

// Rotation is an angle in radians about Axis.
type Rotation struct {
	Angle float32
	Axis  mgl32.Vec3
}

// Entity is one drawable slot of a layout.
type Entity struct {
	ID    string
	Model string // asset-relative model path; entities may share one

	Kind Kind

	// Offset is the world position for Static and WalkingRoot entities and
	// the local offset from the parent for AttachedPart entities.
	Offset mgl32.Vec3

	// Rotation and Scale apply to Static entities only. A zero Scale means
	// unit scale and a zero Axis means no rotation.
	Rotation Rotation
	Scale    mgl32.Vec3

	// Parent is the ID of the entity an AttachedPart follows.
	Parent string
	Motion Motion
}

// staticMatrix returns T(offset) * R(rotation) * S(scale).
func (e *Entity) staticMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(e.Offset.X(), e.Offset.Y(), e.Offset.Z())
	if e.Rotation.Angle != 0 && e.Rotation.Axis != (mgl32.Vec3{}) {
		m = m.Mul4(mgl32.HomogRotate3D(e.Rotation.Angle, e.Rotation.Axis.Normalize()))
	}
	if e.Scale != (mgl32.Vec3{}) {
		m = m.Mul4(mgl32.Scale3D(e.Scale.X(), e.Scale.Y(), e.Scale.Z()))
	}
	return m
}
