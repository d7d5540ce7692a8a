package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

// ErrEmptyMesh is returned when an OBJ file holds no faces.
var ErrEmptyMesh = errors.New("model has no faces")

// parserOptions routes gwob's diagnostics to the debug log for name.
func parserOptions(name string) *gwob.ObjParserOptions {
	log := logger.Named("model")
	return &gwob.ObjParserOptions{
		Logger: func(msg string) {
			log.Debug(msg, zap.String("file", name))
		},
	}
}

// DecodeOBJ parses Wavefront OBJ text into a mesh. When the file carries no
// normals every triangle gets its own corners with the flat face normal.
// Consecutive runs with the same material form one Group. Material
// libraries are recorded in MaterialLibs but not read.
func DecodeOBJ(name string, r io.Reader) (*Mesh, error) {
	o, err := gwob.NewObjFromReader(name, bufio.NewReader(r), parserOptions(name))
	if err != nil {
		return nil, fmt.Errorf("obj %s: %w", name, err)
	}
	if len(o.Indices) == 0 || o.StrideSize == 0 {
		return nil, ErrEmptyMesh
	}

	mesh := &Mesh{
		Materials: make(map[string]*Material),
		Bounds:    emptyBounds(),
	}
	if o.Mtllib != "" {
		mesh.MaterialLibs = []string{o.Mtllib}
	}

	vertices := unpackVertices(o)
	if o.NormCoordFound {
		mesh.Vertices = vertices
		mesh.Indices = make([]uint32, len(o.Indices))
		for i, idx := range o.Indices {
			mesh.Indices[i] = uint32(idx)
		}
	} else {
		flatShade(mesh, vertices, o.Indices)
	}
	for _, v := range mesh.Vertices {
		mesh.Bounds.extend(v.Position)
	}

	mesh.Groups = materialRuns(o.Groups)
	return mesh, nil
}

// unpackVertices splits gwob's interleaved coordinate stream.
func unpackVertices(o *gwob.Obj) []Vertex {
	stride := o.StrideSize / 4
	pos := o.StrideOffsetPosition / 4
	tex := o.StrideOffsetTexture / 4
	norm := o.StrideOffsetNormal / 4

	out := make([]Vertex, len(o.Coord)/stride)
	for i := range out {
		c := o.Coord[i*stride : (i+1)*stride]
		v := Vertex{Position: [3]float32{c[pos], c[pos+1], c[pos+2]}}
		if o.TextCoordFound {
			v.TexCoord = [2]float32{c[tex], c[tex+1]}
		}
		if o.NormCoordFound {
			v.Normal = [3]float32{c[norm], c[norm+1], c[norm+2]}
		}
		out[i] = v
	}
	return out
}

// flatShade gives each triangle three unshared corners carrying the face
// normal. Index positions are unchanged, so group ranges stay valid.
func flatShade(mesh *Mesh, vertices []Vertex, indices []int) {
	mesh.Vertices = make([]Vertex, 0, len(indices))
	mesh.Indices = make([]uint32, 0, len(indices))
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]Vertex{vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]}
		n := faceNormal(
			mgl32.Vec3(tri[0].Position),
			mgl32.Vec3(tri[1].Position),
			mgl32.Vec3(tri[2].Position))
		for _, v := range tri {
			v.Normal = n
			mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
			mesh.Vertices = append(mesh.Vertices, v)
		}
	}
}

// materialRuns drops empty groups and merges adjacent groups that share a
// material; object and smoothing groups do not matter for drawing.
func materialRuns(groups []*gwob.Group) []Group {
	var out []Group
	for _, g := range groups {
		if g.IndexCount == 0 {
			continue
		}
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Material == g.Usemtl && int(last.StartIndex+last.IndexCount) == g.IndexBegin {
				last.IndexCount += int32(g.IndexCount)
				continue
			}
		}
		out = append(out, Group{
			Material:   g.Usemtl,
			StartIndex: int32(g.IndexBegin),
			IndexCount: int32(g.IndexCount),
		})
	}
	return out
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
