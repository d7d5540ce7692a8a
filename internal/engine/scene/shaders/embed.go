// Package shaders provides embedded GLSL shader sources.
package shaders

import "embed"

// File names, also used to look up overrides in a shader directory.
const (
	ModelVertexFile    = "model.vert"
	ModelFragmentFile  = "model.frag"
	SkyboxVertexFile   = "skybox.vert"
	SkyboxFragmentFile = "skybox.frag"
)

// FS holds every shader source.
//
//go:embed *.vert *.frag
var FS embed.FS

// ModelVertexShader is the vertex shader for lit, textured models.
//
//go:embed model.vert
var ModelVertexShader string

// ModelFragmentShader is the fragment shader for lit, textured models.
//
//go:embed model.frag
var ModelFragmentShader string

// SkyboxVertexShader is the vertex shader for the cube map sky.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the cube map sky.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
