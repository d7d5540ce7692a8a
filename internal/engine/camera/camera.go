// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera-local travel direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Defaults for a new FreeCamera.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// FreeCamera is a fly-through camera driven by keys, pointer motion and
// scroll. Angles are in degrees.
type FreeCamera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	// Speed is in units per second.
	Speed       float32
	Sensitivity float32
	Zoom        float32
}

// NewFreeCamera creates a camera at position looking down -Z.
func NewFreeCamera(position mgl32.Vec3) *FreeCamera {
	c := &FreeCamera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Position returns the camera position in world space.
func (c *FreeCamera) Position() mgl32.Vec3 {
	return c.position
}

// Front returns the unit view direction.
func (c *FreeCamera) Front() mgl32.Vec3 {
	return c.front
}

// FieldOfView returns the vertical field of view in degrees.
func (c *FreeCamera) FieldOfView() float32 {
	return c.Zoom
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// HandleMovement moves the camera along a local axis, scaled by the frame
// time in seconds.
func (c *FreeCamera) HandleMovement(dir Movement, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(step))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(step))
	case Left:
		c.position = c.position.Sub(c.right.Mul(step))
	case Right:
		c.position = c.position.Add(c.right.Mul(step))
	case Up:
		c.position = c.position.Add(c.worldUp.Mul(step))
	case Down:
		c.position = c.position.Sub(c.worldUp.Mul(step))
	}
}

// HandleLook turns the camera by a pointer delta in pixels. Positive dy
// looks up.
func (c *FreeCamera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	// Keep the view from flipping over the poles
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.updateVectors()
}

// HandleZoom narrows the field of view by a scroll delta.
func (c *FreeCamera) HandleZoom(delta float32) {
	c.Zoom -= delta
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

func (c *FreeCamera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
