// Package celltable holds the static lookup tables of the modified marching
// cubes scheme: the corner-sign configuration of a cell maps to one of a
// handful of canonical cell classes, each describing how many vertices and
// triangles the cell emits and how they connect.
//
// Corner i of a cell sits at offset (i&1, (i>>1)&1, (i>>2)&1) from the cell
// origin. Bit i of a configuration is set when the density at corner i is
// non-negative.
package celltable

//go:generate go run ../cmd/gencells -o tables.go

const (
	// MaxVertices is the largest vertex count of any cell class.
	MaxVertices = 12
	// MaxTriangles is the largest triangle count of any cell class.
	MaxTriangles = 5
	// MaxVertexRefs is the length of a cell class's vertex index list.
	MaxVertexRefs = 15
	// NumClasses is the number of distinct cell classes in the table.
	NumClasses = len(cellDataTable)
	// MaxClasses is the number of cell class slots reserved in the GPU layout.
	MaxClasses = 16
)

// Class indexes a canonical cell triangulation.
type Class uint8

// CellData describes the triangulation of one cell class.
type CellData struct {
	// High nibble is the vertex count, low nibble the triangle count.
	geometryCounts uint8
	// Groups of 3 local vertex indices, one group per triangle.
	vertexIndex [MaxVertexRefs]uint8
}

// VertexCount returns the number of distinct vertices the class places on cell edges.
func (c CellData) VertexCount() int { return int(c.geometryCounts >> 4) }

// TriangleCount returns the number of triangles the class emits.
func (c CellData) TriangleCount() int { return int(c.geometryCounts & 0xf) }

// Index returns the i'th local vertex index of the triangle list.
func (c CellData) Index(i int) int { return int(c.vertexIndex[i]) }

// Triangle returns the local vertex indices of triangle i.
func (c CellData) Triangle(i int) [3]int {
	return [3]int{int(c.vertexIndex[3*i]), int(c.vertexIndex[3*i+1]), int(c.vertexIndex[3*i+2])}
}

// EdgeVertices lists, per vertex slot of a configuration, the pair of cell
// corners whose connecting edge the vertex lies on.
type EdgeVertices [MaxVertices]uint8

// Corners returns the corner indices of vertex slot i. The low nibble of the
// edge code is the first corner, the high nibble the second.
func (e EdgeVertices) Corners(i int) (first, second int) {
	return int(e[i] & 0xf), int(e[i]>>4) & 0xf
}

// Config computes the corner-sign configuration of a cell from its 8 corner densities.
func Config(d [8]float32) uint8 {
	var cfg uint8
	for i := 0; i < 8; i++ {
		if d[i] >= 0 {
			cfg |= 1 << i
		}
	}
	return cfg
}

// IsEmpty reports whether a configuration produces no surface, which is the
// case when every corner is on the same side of the isosurface.
func IsEmpty(cfg uint8) bool { return cfg == 0 || cfg == 0xff }

// ClassOf returns the cell class of a configuration.
func ClassOf(cfg uint8) Class { return Class(cellClassTable[cfg]) }

// Cell returns the triangulation data of a cell class.
func Cell(c Class) CellData { return cellDataTable[c] }

// Edges returns the edge vertex descriptors of a configuration.
func Edges(cfg uint8) EdgeVertices { return edgeVertexTable[cfg] }

// Lookup returns the class data and edge descriptors of a configuration.
func Lookup(cfg uint8) (CellData, EdgeVertices) {
	return cellDataTable[cellClassTable[cfg]], edgeVertexTable[cfg]
}
