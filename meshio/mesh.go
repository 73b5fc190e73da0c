// Package meshio converts generated vertex buffers into world space
// triangle meshes and writes them out as STL files and PNG previews.
package meshio

import (
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/vpack"
	"gonum.org/v1/gonum/spatial/r3"
)

// Decode unpacks consecutive vertex triples into triangles. Positions are
// mapped from the normalized cube to world space with center + p*radius,
// the mapping the density pass samples with. A trailing partial triangle
// is ignored.
func Decode(vs []vpack.Vertex, f vpack.Format, center, radius ms3.Vec) []ms3.Triangle {
	tris := make([]ms3.Triangle, 0, len(vs)/3)
	for i := 0; i+2 < len(vs); i += 3 {
		var t ms3.Triangle
		for j := range t {
			p, _ := f.Decode(vs[i+j])
			t[j] = ms3.Add(center, ms3.MulElem(p, radius))
		}
		tris = append(tris, t)
	}
	return tris
}

func vec64(v ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Summary describes a triangle mesh.
type Summary struct {
	Triangles  int
	Degenerate int
	Bounds     r3.Box
	Area       float64
}

// Summarize accumulates the bounding box and surface area of tris in
// double precision.
func Summarize(tris []ms3.Triangle) Summary {
	s := Summary{Triangles: len(tris)}
	if len(tris) == 0 {
		return s
	}
	inf := math.Inf(1)
	s.Bounds = r3.Box{Min: r3.Vec{X: inf, Y: inf, Z: inf}, Max: r3.Vec{X: -inf, Y: -inf, Z: -inf}}
	for _, t := range tris {
		a, b, c := vec64(t[0]), vec64(t[1]), vec64(t[2])
		for _, p := range [3]r3.Vec{a, b, c} {
			s.Bounds.Min = r3.Vec{X: math.Min(s.Bounds.Min.X, p.X), Y: math.Min(s.Bounds.Min.Y, p.Y), Z: math.Min(s.Bounds.Min.Z, p.Z)}
			s.Bounds.Max = r3.Vec{X: math.Max(s.Bounds.Max.X, p.X), Y: math.Max(s.Bounds.Max.Y, p.Y), Z: math.Max(s.Bounds.Max.Z, p.Z)}
		}
		area := r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / 2
		if area == 0 {
			s.Degenerate++
		}
		s.Area += area
	}
	return s
}
