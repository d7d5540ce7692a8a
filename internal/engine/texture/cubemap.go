package texture

import (
	"image"
	"path/filepath"
)

// CubeFaces are decoded cube map faces in +X, -X, +Y, -Y, +Z, -Z order.
// A nil face failed to load; Errs holds the reason.
type CubeFaces struct {
	Faces [6]*image.RGBA
	Paths [6]string
	Errs  [6]error
}

// Loaded reports how many faces decoded.
func (c *CubeFaces) Loaded() int {
	n := 0
	for _, f := range c.Faces {
		if f != nil {
			n++
		}
	}
	return n
}

// LoadCubeFaces decodes each face independently. Relative paths are
// resolved against dir.
func LoadCubeFaces(dir string, paths [6]string) *CubeFaces {
	c := &CubeFaces{}
	for i, p := range paths {
		if dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		c.Paths[i] = p
		c.Faces[i], c.Errs[i] = LoadRGBA(p)
	}
	return c
}
