package compute

// Kernel describes a compute program: its name, work group size and the
// slots it writes. Every other bound slot is treated as read only.
type Kernel struct {
	Name   string
	Local  [3]uint32
	Writes []int
}

// WritesSlot reports whether k writes slot.
func (k Kernel) WritesSlot(slot int) bool {
	for _, w := range k.Writes {
		if w == slot {
			return true
		}
	}
	return false
}

// Terrain kernels. Both run 4x4x4 work groups.
var (
	DensityKernel = Kernel{
		Name:   "density",
		Local:  [3]uint32{4, 4, 4},
		Writes: []int{SlotDensity},
	}
	TriangleKernel = Kernel{
		Name:   "triangles",
		Local:  [3]uint32{4, 4, 4},
		Writes: []int{SlotArgs, SlotTriangles},
	}
)

// DensityGroups returns the dispatch size of the density pass, one
// invocation per sample.
func DensityGroups(res [3]int) [3]uint32 {
	return Groups(res, DensityKernel.Local)
}

// TriangleGroups returns the dispatch size of the triangle pass, one
// invocation per cell.
func TriangleGroups(res [3]int) [3]uint32 {
	return Groups([3]int{res[0] - 1, res[1] - 1, res[2] - 1}, TriangleKernel.Local)
}
