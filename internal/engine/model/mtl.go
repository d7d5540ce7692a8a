package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/udhos/gwob"
)

// DecodeMTL parses a Wavefront MTL material library. Only the diffuse
// colour and the diffuse map are kept.
func DecodeMTL(name string, r io.Reader) (map[string]*Material, error) {
	lib, err := gwob.ReadMaterialLibFromReader(bufio.NewReader(r), parserOptions(name))
	if err != nil {
		return nil, fmt.Errorf("mtl %s: %w", name, err)
	}

	materials := make(map[string]*Material, len(lib.Lib))
	for key, m := range lib.Lib {
		mat := &Material{Name: key, Diffuse: m.Kd}
		if m.MapKd != "" {
			if mat.DiffuseMap, err = mapFile(strings.Fields(m.MapKd)); err != nil {
				return nil, fmt.Errorf("mtl %s: material %s: map_Kd: %w", name, key, err)
			}
		}
		materials[key] = mat
	}
	return materials, nil
}

// mapFile extracts the file name from a map statement, skipping options
// such as -s 1 1 1 or -clamp on.
func mapFile(fields []string) (string, error) {
	i := 0
	for i < len(fields) && strings.HasPrefix(fields[i], "-") {
		i++
		// skip the option's arguments
		for i < len(fields)-1 {
			if fields[i] != "on" && fields[i] != "off" {
				if _, err := strconv.ParseFloat(fields[i], 32); err != nil {
					break
				}
			}
			i++
		}
	}
	if i >= len(fields) {
		return "", errors.New("missing file name")
	}
	return strings.Join(fields[i:], " "), nil
}

// ResolveAsset joins a path found inside a model or material file onto the
// directory of that file. Windows separators are normalized.
func ResolveAsset(dir, name string) string {
	name = filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
