// Package geometry holds the vertex streams of the demo primitives.
package geometry

import (
	"github.com/joomcode/errorx"
)

// Components per vertex of each stream.
const (
	PositionSize = 3
	ColorSize    = 3
	UVSize       = 2
	NormalSize   = 3
)

// Mesh is a non-indexed triangle list. Streams other than Positions are optional.
type Mesh struct {
	Positions []float32
	Colors    []float32
	UVs       []float32
	Normals   []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / PositionSize
}

// Validate checks that every stream holds exactly one entry per vertex
// and that the positions form whole triangles.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Positions)%PositionSize != 0 {
		return errorx.IllegalArgument.New("positions: length %d is not a positive multiple of %d", len(m.Positions), PositionSize)
	}

	n := m.VertexCount()
	if n%3 != 0 {
		return errorx.IllegalArgument.New("positions: %d vertices do not form a triangle list", n)
	}

	for _, s := range []Stream{Colors, UVs, Normals} {
		data := m.Stream(s)
		if len(data) > 0 && len(data) != n*s.Size() {
			return errorx.IllegalArgument.New("%s: length %d, expected %d for %d vertices", s, len(data), n*s.Size(), n)
		}
	}

	return nil
}

// Repeat builds a slice by repeating pattern n times.
func Repeat(n int, pattern ...float32) []float32 {
	out := make([]float32, 0, n*len(pattern))
	for i := 0; i < n; i++ {
		out = append(out, pattern...)
	}
	return out
}

// Stream identifies one vertex stream of a mesh.
type Stream int

// Stream constants.
const (
	Positions Stream = iota
	Colors
	UVs
	Normals
)

func (s Stream) String() string {
	switch s {
	case Positions:
		return "positions"
	case Colors:
		return "colors"
	case UVs:
		return "uvs"
	case Normals:
		return "normals"
	default:
		return "unknown"
	}
}

// Size returns the number of components per vertex in the stream.
func (s Stream) Size() int {
	switch s {
	case Positions:
		return PositionSize
	case Colors:
		return ColorSize
	case UVs:
		return UVSize
	case Normals:
		return NormalSize
	default:
		return 0
	}
}

// Stream returns the data of stream s.
func (m Mesh) Stream(s Stream) []float32 {
	switch s {
	case Positions:
		return m.Positions
	case Colors:
		return m.Colors
	case UVs:
		return m.UVs
	case Normals:
		return m.Normals
	default:
		return nil
	}
}
