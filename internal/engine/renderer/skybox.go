package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/engine/scene"
	"github.com/Faultbox/robowalk/internal/engine/texture"
	"github.com/Faultbox/robowalk/internal/logger"
)

// Skybox is the environment cube. It implements gpu.Sky.
type Skybox struct {
	vao, vbo uint32
	cubemap  uint32
}

// NewSkybox uploads the cube geometry and the faces. Missing faces are
// logged by the upload and sample as black.
func NewSkybox(faces *texture.CubeFaces) *Skybox {
	s := &Skybox{}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.SkyboxVertices)*4, gl.Ptr(&scene.SkyboxVertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	s.cubemap = texture.UploadCubemap(faces)

	logger.Debug("skybox created",
		zap.Uint32("vao", s.vao),
		zap.Int("faces", faces.Loaded()),
	)
	return s
}

// Draw draws the 36 cube vertices with the cube map on unit 0. The sky
// program must be in use.
func (s *Skybox) Draw() {
	gl.BindVertexArray(s.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(scene.SkyboxVertexCount))
	gl.BindVertexArray(0)
}

// Delete releases the skybox resources.
func (s *Skybox) Delete() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	texture.Delete(s.cubemap)
	s.cubemap = 0
}
