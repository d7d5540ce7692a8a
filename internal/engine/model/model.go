package model

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
)

// DiffuseSampler is the sampler uniform each group's texture is bound to.
const DiffuseSampler = "texture_diffuse1"

// Model is a mesh uploaded to the GPU together with one texture per group.
type Model struct {
	Path string

	vao, vbo, ebo uint32
	groups        []drawGroup
	bounds        Bounds
}

type drawGroup struct {
	start, count int32
	texture      uint32
}

// Upload creates the vertex array for mesh. texture is asked for the GL
// texture of each group's material.
func Upload(path string, mesh *Mesh, texture func(material string) uint32) *Model {
	m := &Model{Path: path, bounds: mesh.Bounds}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	for _, g := range mesh.Groups {
		m.groups = append(m.groups, drawGroup{
			start:   g.StartIndex,
			count:   g.IndexCount,
			texture: texture(g.Material),
		})
	}
	return m
}

// Bounds returns the model-space bounding box.
func (m *Model) Bounds() Bounds {
	return m.bounds
}

// Draw binds each group's texture to unit 0 and draws it with p, which
// must already be in use.
func (m *Model) Draw(p gpu.Program) {
	gl.BindVertexArray(m.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	p.SetInt(DiffuseSampler, 0)

	for _, g := range m.groups {
		gl.BindTexture(gl.TEXTURE_2D, g.texture)
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, uintptr(g.start*4))
	}

	gl.BindVertexArray(0)
}

// Delete releases the buffers. Textures belong to the Library.
func (m *Model) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
