// Package cellgen derives the cell class tables used by package celltable.
//
// Every configuration is contoured face by face. A face whose four corners
// alternate in sign is resolved by separating the solid corners, which keeps
// neighbouring cells consistent since both see the same face. The resulting
// closed contours are oriented so that their normals point from solid to
// empty space and fan triangulated. Configurations whose contours produce the
// same vertex count, triangle count and index list share a class.
package cellgen

import (
	"fmt"
	"sort"
)

// Class is a canonical cell triangulation.
type Class struct {
	Vertices  int
	Triangles int
	// Indices holds Triangles*3 local vertex indices.
	Indices []uint8
}

// Tables is the full derived lookup data.
type Tables struct {
	ClassOf [256]uint8
	Classes []Class
	// Edges holds one edge code per vertex slot of each configuration.
	// The low nibble is the first (lower) corner, the high nibble the second.
	Edges [256][]uint8
}

// The 12 cube edges, sorted, as corner index pairs differing in one bit.
var cubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

type ivec [3]int

func corner(i int) ivec { return ivec{i & 1, (i >> 1) & 1, (i >> 2) & 1} }

func (a ivec) add(b ivec) ivec { return ivec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a ivec) sub(b ivec) ivec { return ivec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a ivec) dot(b ivec) int  { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func (a ivec) cross(b ivec) ivec {
	return ivec{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func edgeIndex(a, b int) int {
	if a > b {
		a, b = b, a
	}
	for i, e := range cubeEdges {
		if e[0] == a && e[1] == b {
			return i
		}
	}
	panic(fmt.Sprintf("corners %d,%d do not share an edge", a, b))
}

// cubeFaces lists the corners of each face in cyclic order.
func cubeFaces() [6][4]int {
	var faces [6][4]int
	n := 0
	for ax := 0; ax < 3; ax++ {
		var other [2]int
		k := 0
		for x := 0; x < 3; x++ {
			if x != ax {
				other[k] = x
				k++
			}
		}
		b, c := other[0], other[1]
		for v := 0; v < 2; v++ {
			for k, bc := range [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
				faces[n][k] = v<<ax | bc[0]<<b | bc[1]<<c
			}
			n++
		}
	}
	return faces
}

// mid2 returns twice the midpoint of edge e, which keeps all arithmetic integral.
func mid2(e int) ivec { return corner(cubeEdges[e][0]).add(corner(cubeEdges[e][1])) }

func solid(cfg uint8, c int) bool { return cfg>>c&1 != 0 }

// outward returns the direction along edge e from its solid corner to its empty corner.
func outward(cfg uint8, e int) ivec {
	a, b := cubeEdges[e][0], cubeEdges[e][1]
	if !solid(cfg, a) {
		a, b = b, a
	}
	return corner(b).sub(corner(a))
}

// fanScore returns the smallest oriented area of the fan triangles of cyc.
func fanScore(cfg uint8, cyc []int) int {
	p0 := mid2(cyc[0])
	m := 0
	for i := 1; i < len(cyc)-1; i++ {
		n := mid2(cyc[i]).sub(p0).cross(mid2(cyc[i+1]).sub(p0))
		o := outward(cfg, cyc[0]).add(outward(cfg, cyc[i])).add(outward(cfg, cyc[i+1]))
		d := n.dot(o)
		if i == 1 || d < m {
			m = d
		}
	}
	return m
}

func rotate(cyc []int, r int) []int {
	out := make([]int, 0, len(cyc))
	out = append(out, cyc[r:]...)
	return append(out, cyc[:r]...)
}

// contours returns the oriented closed edge loops of configuration cfg,
// largest first.
func contours(cfg uint8) [][]int {
	var adj [12][]int
	link := func(x, y int) {
		adj[x] = append(adj[x], y)
		adj[y] = append(adj[y], x)
	}
	for _, q := range cubeFaces() {
		var cr []int
		for k := 0; k < 4; k++ {
			if solid(cfg, q[k]) != solid(cfg, q[(k+1)%4]) {
				cr = append(cr, k)
			}
		}
		switch len(cr) {
		case 2:
			k0, k1 := cr[0], cr[1]
			link(edgeIndex(q[k0], q[(k0+1)%4]), edgeIndex(q[k1], q[(k1+1)%4]))
		case 4:
			for k := 0; k < 4; k++ {
				if solid(cfg, q[k]) {
					link(edgeIndex(q[(k+3)%4], q[k]), edgeIndex(q[k], q[(k+1)%4]))
				}
			}
		}
	}

	var visited [12]bool
	var out [][]int
	for s := 0; s < 12; s++ {
		if visited[s] || len(adj[s]) == 0 {
			continue
		}
		cyc := []int{s}
		visited[s] = true
		prev, cur := s, minInt(adj[s])
		for cur != s {
			cyc = append(cyc, cur)
			visited[cur] = true
			next := adj[cur][0]
			if next == prev {
				next = adj[cur][1]
			}
			prev, cur = cur, next
		}

		// Newell normal.
		var nrm ivec
		for i := range cyc {
			p, q := mid2(cyc[i]), mid2(cyc[(i+1)%len(cyc)])
			nrm[0] += (p[1] - q[1]) * (p[2] + q[2])
			nrm[1] += (p[2] - q[2]) * (p[0] + q[0])
			nrm[2] += (p[0] - q[0]) * (p[1] + q[1])
		}
		d := 0
		for _, e := range cyc {
			d += nrm.dot(outward(cfg, e))
		}
		if d == 0 {
			panic(fmt.Sprintf("config %#x: contour has no orientation", cfg))
		}
		if d < 0 {
			for i, j := 1, len(cyc)-1; i < j; i, j = i+1, j-1 {
				cyc[i], cyc[j] = cyc[j], cyc[i]
			}
		}

		best, bestScore := 0, fanScore(cfg, cyc)
		for r := 1; r < len(cyc); r++ {
			if sc := fanScore(cfg, rotate(cyc, r)); sc > bestScore {
				best, bestScore = r, sc
			}
		}
		if bestScore <= 0 {
			panic(fmt.Sprintf("config %#x: no fan without degenerate triangles", cfg))
		}
		out = append(out, rotate(cyc, best))
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func minInt(s []int) int {
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Derive computes the lookup tables for all 256 configurations.
func Derive() Tables {
	var t Tables
	for c := 0; c < 256; c++ {
		cfg := uint8(c)
		var verts []int
		var tris []uint8
		for _, p := range contours(cfg) {
			b := len(verts)
			verts = append(verts, p...)
			for i := 1; i < len(p)-1; i++ {
				tris = append(tris, uint8(b), uint8(b+i), uint8(b+i+1))
			}
		}
		class := Class{Vertices: len(verts), Triangles: len(tris) / 3, Indices: tris}
		idx := -1
		for i, existing := range t.Classes {
			if existing.equal(class) {
				idx = i
				break
			}
		}
		if idx < 0 {
			idx = len(t.Classes)
			t.Classes = append(t.Classes, class)
		}
		t.ClassOf[c] = uint8(idx)
		codes := make([]uint8, len(verts))
		for i, e := range verts {
			codes[i] = uint8(cubeEdges[e][1]<<4 | cubeEdges[e][0])
		}
		t.Edges[c] = codes
	}
	return t
}

func (c Class) equal(o Class) bool {
	if c.Vertices != o.Vertices || c.Triangles != o.Triangles || len(c.Indices) != len(o.Indices) {
		return false
	}
	for i := range c.Indices {
		if c.Indices[i] != o.Indices[i] {
			return false
		}
	}
	return true
}
