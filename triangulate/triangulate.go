// Package triangulate extracts the isosurface of a density volume one cell
// at a time. Each cell is classified by the signs of its 8 corners, its
// vertices are placed on sign-crossing edges by linear interpolation and its
// triangles are appended to a shared buffer in a single reservation.
package triangulate

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/celltable"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/vpack"
)

// Triangulator holds the tables and vertex format used by the cell kernel.
type Triangulator struct {
	Table  celltable.Table
	Format vpack.Format
}

// New returns a Triangulator using the compiled-in tables.
func New(format vpack.Format) *Triangulator {
	if format == nil {
		format = vpack.Packed{}
	}
	return &Triangulator{Table: celltable.Static(), Format: format}
}

// Cell is the intermediate result of processing one cell.
type Cell struct {
	Config    uint8
	Data      celltable.CellData
	Edges     celltable.EdgeVertices
	Positions [celltable.MaxVertices]ms3.Vec
	Normals   [celltable.MaxVertices]ms3.Vec
	// T holds the interpolation parameter of each vertex slot.
	T [celltable.MaxVertices]float32
}

var cornerOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// CornerNormal returns the surface normal at a sample, the negated
// normalized central difference of the density. Neighbours past the volume
// edge are clamped. A zero gradient yields the zero vector.
func CornerNormal(vol *density.Volume, x, y, z int) ms3.Vec {
	g := ms3.Vec{
		X: vol.AtClamped(x+1, y, z) - vol.AtClamped(x-1, y, z),
		Y: vol.AtClamped(x, y+1, z) - vol.AtClamped(x, y-1, z),
		Z: vol.AtClamped(x, y, z+1) - vol.AtClamped(x, y, z-1),
	}
	return ms3.Scale(-1, normalize(g))
}

func normalize(v ms3.Vec) ms3.Vec {
	n := ms3.Norm(v)
	if n == 0 || math32.IsNaN(n) {
		return ms3.Vec{}
	}
	return ms3.Scale(1/n, v)
}

// Compute classifies the cell with origin gid and places its vertices. ok
// is false when gid is not a valid cell origin or the cell is empty.
func (tr *Triangulator) Compute(vol *density.Volume, gid [3]int) (c Cell, ok bool) {
	res := vol.Extent()
	if gid[0] < 0 || gid[1] < 0 || gid[2] < 0 ||
		gid[0] >= res[0]-1 || gid[1] >= res[1]-1 || gid[2] >= res[2]-1 {
		return c, false
	}
	var corners [8][3]int
	var d [8]float32
	for i, off := range cornerOffsets {
		corners[i] = [3]int{gid[0] + off[0], gid[1] + off[1], gid[2] + off[2]}
		d[i] = vol.At(corners[i][0], corners[i][1], corners[i][2])
	}
	c.Config = celltable.Config(d)
	if celltable.IsEmpty(c.Config) {
		return c, false
	}
	c.Data, c.Edges = tr.Table.Lookup(c.Config)

	var normals [8]ms3.Vec
	var haveNormal [8]bool
	resf := ms3.Vec{X: float32(res[0]), Y: float32(res[1]), Z: float32(res[2])}
	for v := 0; v < c.Data.VertexCount(); v++ {
		i0, i1 := c.Edges.Corners(v)
		for _, i := range [2]int{i0, i1} {
			if !haveNormal[i] {
				normals[i] = CornerNormal(vol, corners[i][0], corners[i][1], corners[i][2])
				haveNormal[i] = true
			}
		}
		d0, d1 := d[i0], d[i1]
		t := d1 / (d1 - d0)
		p0 := ivecToVec(corners[i0])
		p1 := ivecToVec(corners[i1])
		pos := ms3.Add(p0, ms3.Scale(t, ms3.Sub(p1, p0)))
		pos = toUnit(pos, resf)
		c.T[v] = t
		c.Positions[v] = pos
		c.Normals[v] = normalize(ms3.Add(normals[i0], ms3.Scale(t, ms3.Sub(normals[i1], normals[i0]))))
	}
	return c, true
}

// toUnit remaps a grid space position to the normalized cube, index 0 to
// -1 and index res to 1.
func toUnit(p, res ms3.Vec) ms3.Vec {
	return ms3.Vec{X: 2*p.X/res.X - 1, Y: 2*p.Y/res.Y - 1, Z: 2*p.Z/res.Z - 1}
}

func ivecToVec(v [3]int) ms3.Vec {
	return ms3.Vec{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

// Invoke is the per-invocation kernel body. It appends the triangles of
// cell gid to out, each triangle's three vertices contiguous. The whole
// cell is dropped if it does not fit.
func (tr *Triangulator) Invoke(vol *density.Volume, out *appendbuf.Buffer, gid [3]int) {
	c, ok := tr.Compute(vol, gid)
	if !ok {
		return
	}
	var encoded [celltable.MaxVertices]vpack.Vertex
	for v := 0; v < c.Data.VertexCount(); v++ {
		encoded[v] = tr.Format.Encode(c.Positions[v], c.Normals[v])
	}
	var tris [3 * celltable.MaxTriangles]vpack.Vertex
	n := 3 * c.Data.TriangleCount()
	for i := 0; i < n; i++ {
		tris[i] = encoded[c.Data.Index(i)]
	}
	out.Append(tris[:n])
}

// CellTriangles returns the triangles of cell gid in normalized coordinates
// without quantizing them.
func (tr *Triangulator) CellTriangles(vol *density.Volume, gid [3]int) []ms3.Triangle {
	c, ok := tr.Compute(vol, gid)
	if !ok {
		return nil
	}
	tris := make([]ms3.Triangle, c.Data.TriangleCount())
	for i := range tris {
		idx := c.Data.Triangle(i)
		tris[i] = ms3.Triangle{c.Positions[idx[0]], c.Positions[idx[1]], c.Positions[idx[2]]}
	}
	return tris
}

// Serial triangulates every cell of vol in order.
func (tr *Triangulator) Serial(vol *density.Volume, out *appendbuf.Buffer) {
	res := vol.Extent()
	for z := 0; z < res[2]-1; z++ {
		for y := 0; y < res[1]-1; y++ {
			for x := 0; x < res[0]-1; x++ {
				tr.Invoke(vol, out, [3]int{x, y, z})
			}
		}
	}
}
