// Package renderer owns global OpenGL state (initialization, depth testing,
// viewport) and the skybox geometry.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
	"github.com/Faultbox/robowalk/internal/logger"
)

// ClearColor is the background behind the sky.
var ClearColor = [4]float32{0.05, 0.05, 0.05, 1.0}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles global OpenGL state and implements gpu.Device.
type Renderer struct{}

// New initializes OpenGL and sets up depth testing.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	r.SetDepthFunc(gpu.DepthLess)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// SetDepthFunc switches the depth comparison.
func (r *Renderer) SetDepthFunc(fn gpu.DepthFunc) {
	gl.DepthFunc(glDepthFunc(fn))
}

func glDepthFunc(fn gpu.DepthFunc) uint32 {
	if fn == gpu.DepthLessEqual {
		return gl.LEQUAL
	}
	return gl.LESS
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}
