package control

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The loop state and everything it imports must build without SDL, ImGui or
// an OpenGL loader so these tests run on headless machines.
func TestStatePackagesAvoidNativeBindings(t *testing.T) {
	native := []string{
		"github.com/veandco/go-sdl2",
		"github.com/AllenDang/cimgui-go",
		"github.com/go-gl/gl",
	}
	dirs := []string{
		".",
		"../../config",
		"../../engine/input",
		"../../engine/camera",
		"../../engine/lighting",
		"../../engine/scene",
		"../../engine/gpu",
	}

	for _, dir := range dirs {
		pkg, err := build.ImportDir(filepath.FromSlash(dir), 0)
		require.NoError(t, err, dir)
		assert.Empty(t, pkg.CgoFiles, dir)
		for _, imp := range pkg.Imports {
			for _, n := range native {
				assert.False(t, strings.HasPrefix(imp, n), "%s imports %s", dir, imp)
			}
		}
	}
}
