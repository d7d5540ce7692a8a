// Package gpu declares the small set of GPU capabilities the scene core
// needs. Implementations live in the shader, model and renderer packages;
// tests substitute recording fakes.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// Uniforms sets named shader uniforms on the active program.
type Uniforms interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, m mgl32.Mat4)
}

// Program is a linked shader program.
type Program interface {
	Uniforms
	Use()
}

// Drawable submits its geometry using the given program for per-mesh state
// such as sampler bindings.
type Drawable interface {
	Draw(p Program)
}

// DepthFunc selects the depth comparison.
type DepthFunc int

const (
	// DepthLess passes fragments strictly closer than the stored depth.
	DepthLess DepthFunc = iota
	// DepthLessEqual also passes fragments at equal depth. The skybox
	// writes depth 1.0 and needs it.
	DepthLessEqual
)

func (d DepthFunc) String() string {
	switch d {
	case DepthLess:
		return "LESS"
	case DepthLessEqual:
		return "LEQUAL"
	default:
		return "UNKNOWN"
	}
}

// Device holds global pipeline state.
type Device interface {
	SetDepthFunc(fn DepthFunc)
}

// Sky draws the environment cube with its cube texture bound to unit 0.
type Sky interface {
	Draw()
}
