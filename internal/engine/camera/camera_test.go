package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

// assertVec compares component-wise with an absolute tolerance; float32
// trig leaves residue around 1e-7 where the exact value is 0.
func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func TestNewFreeCameraLooksDownNegativeZ(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{0, 3, 20})

	assert.Equal(t, mgl32.Vec3{0, 3, 20}, c.Position())
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assert.Equal(t, float32(45), c.FieldOfView())
}

func TestViewMatrixMovesWorldOpposite(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{0, 3, 20})

	// The camera position maps to the eye-space origin.
	eye := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 3, 20, 1})
	assertVec(t, mgl32.Vec3{0, 0, 0}, eye.Vec3())

	// A point ahead of the camera lands on -Z.
	ahead := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 3, 10, 1})
	assertVec(t, mgl32.Vec3{0, 0, -10}, ahead.Vec3())
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		dir  Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -2.5}},
		{Backward, mgl32.Vec3{0, 0, 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 0}},
		{Right, mgl32.Vec3{2.5, 0, 0}},
		{Up, mgl32.Vec3{0, 2.5, 0}},
		{Down, mgl32.Vec3{0, -2.5, 0}},
	}

	for _, tt := range tests {
		c := NewFreeCamera(mgl32.Vec3{})
		c.HandleMovement(tt.dir, 1)
		assertVec(t, tt.want, c.Position())
	}
}

func TestHandleMovementScalesWithFrameTime(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{})
	c.HandleMovement(Forward, 0.5)
	assertVec(t, mgl32.Vec3{0, 0, -1.25}, c.Position())
}

func TestHandleLookClampsPitch(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{})

	c.HandleLook(0, 5000)
	assert.Equal(t, float32(MaxPitch), c.Pitch)

	c.HandleLook(0, -10000)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)
}

func TestHandleLookTurnsRight(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{})
	// 900 px * 0.1 = 90 degrees of yaw: from -Z to +X
	c.HandleLook(900, 0)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Front())
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewFreeCamera(mgl32.Vec3{})

	c.HandleZoom(10)
	assert.Equal(t, float32(35), c.FieldOfView())

	c.HandleZoom(100)
	assert.Equal(t, float32(MinZoom), c.FieldOfView())

	c.HandleZoom(-100)
	assert.Equal(t, float32(MaxZoom), c.FieldOfView())
}
