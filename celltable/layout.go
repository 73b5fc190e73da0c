package celltable

import (
	"errors"
	"fmt"
)

// Device buffer sizes in 32-bit words. Every table entry is widened to a
// uint32 to match std430 array rules.
const (
	ClassWordsLen = 256
	cellStride    = 1 + MaxVertexRefs
	CellWordsLen  = MaxClasses * cellStride
	EdgeWordsLen  = 256 * MaxVertices
)

// ClassWords returns the configuration to class table in device layout.
func ClassWords() []uint32 {
	w := make([]uint32, ClassWordsLen)
	for i, c := range cellClassTable {
		w[i] = uint32(c)
	}
	return w
}

// CellWords returns the cell class table in device layout. Unused class
// slots are left zeroed.
func CellWords() []uint32 {
	w := make([]uint32, CellWordsLen)
	for i, c := range cellDataTable {
		base := i * cellStride
		w[base] = uint32(c.geometryCounts)
		for j, idx := range c.vertexIndex {
			w[base+1+j] = uint32(idx)
		}
	}
	return w
}

// EdgeWords returns the edge vertex table in device layout.
func EdgeWords() []uint32 {
	w := make([]uint32, EdgeWordsLen)
	for cfg := range edgeVertexTable {
		for j, e := range edgeVertexTable[cfg] {
			w[cfg*MaxVertices+j] = uint32(e)
		}
	}
	return w
}

// Table is a read-only view of the three lookup tables as laid out in device memory.
type Table struct {
	classes []uint32
	cells   []uint32
	edges   []uint32
}

// Static returns a Table backed by the compiled-in tables.
func Static() Table {
	return Table{classes: ClassWords(), cells: CellWords(), edges: EdgeWords()}
}

// TableFromWords wraps device-layout table buffers. The slices are not copied.
func TableFromWords(classes, cells, edges []uint32) (Table, error) {
	switch {
	case len(classes) < ClassWordsLen:
		return Table{}, fmt.Errorf("class table too short: %d words", len(classes))
	case len(cells) < CellWordsLen:
		return Table{}, fmt.Errorf("cell table too short: %d words", len(cells))
	case len(edges) < EdgeWordsLen:
		return Table{}, fmt.Errorf("edge table too short: %d words", len(edges))
	}
	for _, c := range classes[:ClassWordsLen] {
		if c >= MaxClasses {
			return Table{}, errors.New("class table references class out of range")
		}
	}
	return Table{classes: classes, cells: cells, edges: edges}, nil
}

// Lookup returns the class data and edge descriptors of a configuration.
func (t Table) Lookup(cfg uint8) (CellData, EdgeVertices) {
	var cd CellData
	base := int(t.classes[cfg]) * cellStride
	cd.geometryCounts = uint8(t.cells[base])
	for j := range cd.vertexIndex {
		cd.vertexIndex[j] = uint8(t.cells[base+1+j])
	}
	var ev EdgeVertices
	eb := int(cfg) * MaxVertices
	for j := range ev {
		ev[j] = uint8(t.edges[eb+j])
	}
	return cd, ev
}
