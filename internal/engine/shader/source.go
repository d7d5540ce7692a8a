package shader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sources names the two stages of a program.
type Sources struct {
	Vertex   string
	Fragment string
}

// Loader reads shader sources from an override directory when one is set,
// falling back to an embedded file system per file.
type Loader struct {
	Dir      string
	Embedded fs.FS
}

// Read returns the source of one file.
func (l Loader) Read(name string) (string, error) {
	if l.Dir != "" {
		data, err := os.ReadFile(filepath.Join(l.Dir, name))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) || l.Embedded == nil {
			return "", fmt.Errorf("reading shader %s: %w", name, err)
		}
	}
	if l.Embedded == nil {
		return "", fmt.Errorf("reading shader %s: no source", name)
	}
	data, err := fs.ReadFile(l.Embedded, name)
	if err != nil {
		return "", fmt.Errorf("reading embedded shader %s: %w", name, err)
	}
	return string(data), nil
}

// Load reads both stages.
func (l Loader) Load(files Sources) (vertex, fragment string, err error) {
	if vertex, err = l.Read(files.Vertex); err != nil {
		return "", "", err
	}
	if fragment, err = l.Read(files.Fragment); err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

// Build reads both stages and links a program.
func (l Loader) Build(name string, files Sources) (*Program, error) {
	vs, fsrc, err := l.Load(files)
	if err != nil {
		return nil, err
	}
	return New(name, vs, fsrc)
}
