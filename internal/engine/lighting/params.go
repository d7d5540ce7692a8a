// Package lighting holds the live-tunable lighting and fog parameters and
// pushes them to the scene shader.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
)

// NumPointLights is the size of the pointLights array in the scene shader.
const NumPointLights = 2

// Attenuation holds the point light falloff terms
// 1 / (constant + linear*d + quadratic*d*d).
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// PointLight is a positional light with distance attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
	Attenuation
}

// Directional is a light with parallel rays. Direction is not renormalized
// when edited.
type Directional struct {
	Direction mgl32.Vec3
	Colour    mgl32.Vec3
}

// Fog is linear distance fog blended towards Colour.
type Fog struct {
	Colour  mgl32.Vec3
	Density float32
	Start   float32
	End     float32
}

// Params is the full lighting state pushed every frame. The overlay edits it
// in place through Panels.
type Params struct {
	AmbientStrength float32
	AmbientColour   mgl32.Vec3
	Directional     Directional
	PointLights     [NumPointLights]PointLight
	// Fog is nil for layouts without fog; no fog uniforms are pushed then.
	Fog *Fog
}

// Default returns the startup lighting. withFog attaches the default fog.
func Default(withFog bool) *Params {
	atten := Attenuation{Constant: 0.170, Linear: 0.103, Quadratic: 0.064}
	p := &Params{
		AmbientStrength: 0.160,
		AmbientColour:   mgl32.Vec3{1, 1, 1},
		Directional: Directional{
			Direction: mgl32.Vec3{0.1, -1.0, 0.7},
			Colour:    mgl32.Vec3{1, 0.1, 0.1},
		},
		PointLights: [NumPointLights]PointLight{
			{Position: mgl32.Vec3{-15, 4, 0}, Colour: mgl32.Vec3{1, 0.305, 0.305}, Attenuation: atten},
			{Position: mgl32.Vec3{6, 9, 0}, Colour: mgl32.Vec3{1, 1, 1}, Attenuation: atten},
		},
	}
	if withFog {
		p.Fog = &Fog{
			Colour:  mgl32.Vec3{1, 0.25, 0.25},
			Density: 0.160,
			Start:   60,
			End:     40,
		}
	}
	return p
}

type pointLightNames struct {
	colour, position, constant, linear, quadratic string
}

var pointLightUniforms = func() [NumPointLights]pointLightNames {
	var names [NumPointLights]pointLightNames
	for i := range names {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		names[i] = pointLightNames{
			colour:    prefix + "colour",
			position:  prefix + "position",
			constant:  prefix + "constant",
			linear:    prefix + "linear",
			quadratic: prefix + "quadratic",
		}
	}
	return names
}()

// Apply pushes every parameter to the active program.
func (p *Params) Apply(u gpu.Uniforms) {
	u.SetFloat("ambientStrength", p.AmbientStrength)
	u.SetVec3("ambientColour", p.AmbientColour)

	u.SetVec3("dirColour", p.Directional.Colour)
	u.SetVec3("lightDirection", p.Directional.Direction)

	for i := range p.PointLights {
		pl := &p.PointLights[i]
		names := &pointLightUniforms[i]
		u.SetVec3(names.colour, pl.Colour)
		u.SetVec3(names.position, pl.Position)
		u.SetFloat(names.constant, pl.Constant)
		u.SetFloat(names.linear, pl.Linear)
		u.SetFloat(names.quadratic, pl.Quadratic)
	}

	if p.Fog != nil {
		u.SetVec3("fogColour", p.Fog.Colour)
		u.SetFloat("fogDensity", p.Fog.Density)
		u.SetFloat("fogStart", p.Fog.Start)
		u.SetFloat("fogEnd", p.Fog.End)
	}
}
