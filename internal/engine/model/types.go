// Package model loads Wavefront OBJ models with their MTL materials and
// draws them with OpenGL.
package model

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a model mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Group is a run of triangles sharing one material.
type Group struct {
	Material   string
	StartIndex int32
	IndexCount int32
}

// Material is the subset of an MTL material the renderer uses.
type Material struct {
	Name       string
	Diffuse    [3]float32
	DiffuseMap string // as written in the MTL file, relative to it
}

// Mesh holds the complete model mesh data ready for GPU upload.
type Mesh struct {
	Vertices     []Vertex
	Indices      []uint32
	Groups       []Group
	MaterialLibs []string
	Materials    map[string]*Material
	Bounds       Bounds
}

// Bounds holds the axis-aligned bounding box of the model.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func (b *Bounds) extend(p [3]float32) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return mgl32.Vec3(b.Min).Add(mgl32.Vec3(b.Max)).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return mgl32.Vec3(b.Max).Sub(mgl32.Vec3(b.Min))
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}
