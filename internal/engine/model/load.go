package model

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

// LoadOBJ reads an OBJ file and the material libraries it names. A missing
// or broken material library is logged; its materials fall back to the
// untextured default.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := DecodeOBJ(path, f)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for _, lib := range mesh.MaterialLibs {
		libPath := ResolveAsset(dir, lib)
		materials, err := loadMTL(libPath)
		if err != nil {
			logger.Warn("material library failed to load",
				zap.String("model", path),
				zap.String("path", libPath),
				zap.Error(err))
			continue
		}
		for name, mat := range materials {
			mesh.Materials[name] = mat
		}
	}
	return mesh, nil
}

func loadMTL(path string) (map[string]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeMTL(path, f)
}

// DiffuseMapPath returns the absolute texture path for material, or "" when
// the material is unknown or untextured. dir is the OBJ file's directory.
func (m *Mesh) DiffuseMapPath(dir, material string) string {
	mat, ok := m.Materials[material]
	if !ok || mat.DiffuseMap == "" {
		return ""
	}
	return ResolveAsset(dir, mat.DiffuseMap)
}
