package model

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/engine/gpu"
	"github.com/Faultbox/robowalk/internal/engine/texture"
	"github.com/Faultbox/robowalk/internal/logger"
)

// Library loads each model path once and shares the result between every
// entity that references it. Textures are shared across models by path.
type Library struct {
	root     string
	models   map[string]*Model
	failed   map[string]error
	textures map[string]uint32
	white    uint32
}

// NewLibrary creates a library resolving model paths against root. It
// needs a current GL context.
func NewLibrary(root string) *Library {
	return &Library{
		root:     root,
		models:   make(map[string]*Model),
		failed:   make(map[string]error),
		textures: make(map[string]uint32),
		white:    texture.White(),
	}
}

// Load loads every path not seen before and returns how many are usable.
// Failures are logged and remembered; they are not retried.
func (l *Library) Load(paths []string) int {
	for _, p := range paths {
		l.load(p)
	}
	return len(l.models)
}

func (l *Library) load(path string) {
	if _, ok := l.models[path]; ok {
		return
	}
	if _, ok := l.failed[path]; ok {
		return
	}

	full := ResolveAsset(l.root, path)
	mesh, err := LoadOBJ(full)
	if err != nil {
		logger.Warn("model failed to load", zap.String("path", full), zap.Error(err))
		l.failed[path] = err
		return
	}

	dir := filepath.Dir(full)
	m := Upload(path, mesh, func(material string) uint32 {
		return l.texture(mesh.DiffuseMapPath(dir, material))
	})
	l.models[path] = m
	logger.Debug("model loaded",
		zap.String("path", path),
		zap.Float32("height", m.Bounds().Size().Y()),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.Triangles()),
		zap.Int("groups", len(mesh.Groups)))
}

// texture returns the GL texture for path, or the white fallback.
func (l *Library) texture(path string) uint32 {
	if path == "" {
		return l.white
	}
	if tex, ok := l.textures[path]; ok {
		return tex
	}

	img, err := texture.LoadRGBA(path)
	if err != nil {
		logger.Warn("texture failed to load", zap.String("path", path), zap.Error(err))
		l.textures[path] = l.white
		return l.white
	}
	tex := texture.Upload2D(texture.FlipVertical(img))
	l.textures[path] = tex
	return tex
}

// Drawable returns the loaded model for path. ok is false when it failed
// to load or was never requested.
func (l *Library) Drawable(path string) (gpu.Drawable, bool) {
	m, ok := l.models[path]
	if !ok {
		return nil, false
	}
	return m, true
}

// Close releases every model and texture.
func (l *Library) Close() {
	for _, m := range l.models {
		m.Delete()
	}
	for _, tex := range l.textures {
		if tex != l.white {
			texture.Delete(tex)
		}
	}
	texture.Delete(l.white)
	l.white = 0
	l.models = make(map[string]*Model)
	l.textures = make(map[string]uint32)
}
