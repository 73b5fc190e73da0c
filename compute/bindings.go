package compute

import (
	"fmt"
	"sort"
)

// Binding slots shared by both terrain kernels.
const (
	SlotGlobals     = 0 // Uniform parameters.
	SlotDensity     = 1 // Density storage image.
	SlotCellClasses = 2 // Configuration to class table.
	SlotCellData    = 3 // Class triangulations.
	SlotEdgeVerts   = 4 // Edge vertex table.
	SlotArgs        = 5 // Indirect draw arguments, first word is the append cursor.
	SlotTriangles   = 6 // Triangle list.
	SlotNoise       = 7 // Array of sampled noise images.
	NumSlots        = 8
)

// NoiseArrayLen is the array length of SlotNoise.
const NoiseArrayLen = 4

// slotUsage is the usage required of resources bound to each slot.
var slotUsage = [NumSlots]Usage{
	SlotGlobals:     UsageUniform,
	SlotDensity:     UsageStorage,
	SlotCellClasses: UsageStorage,
	SlotCellData:    UsageStorage,
	SlotEdgeVerts:   UsageStorage,
	SlotArgs:        UsageStorage,
	SlotTriangles:   UsageStorage,
	SlotNoise:       UsageSampled,
}

// Binding places a resource at an element of a slot.
type Binding struct {
	Slot     int
	Index    int
	Resource Resource
}

// BindingSet is a descriptor table mapping slots to resources.
type BindingSet struct {
	bindings map[[2]int]Resource
}

// NewBindingSet returns an empty set.
func NewBindingSet() *BindingSet {
	return &BindingSet{bindings: make(map[[2]int]Resource)}
}

// Bind places rs at consecutive array elements of slot starting at 0. It
// fails if a resource lacks the usage the slot requires.
func (s *BindingSet) Bind(slot int, rs ...Resource) error {
	if slot < 0 || slot >= NumSlots {
		return fmt.Errorf("binding slot %d out of range", slot)
	}
	if slot != SlotNoise && len(rs) > 1 {
		return fmt.Errorf("slot %d is not an array", slot)
	}
	if len(rs) > NoiseArrayLen {
		return fmt.Errorf("slot %d holds at most %d resources", slot, NoiseArrayLen)
	}
	for i, r := range rs {
		if err := CheckUsage(r, slotUsage[slot]); err != nil {
			return fmt.Errorf("slot %d: %w", slot, err)
		}
		s.bindings[[2]int{slot, i}] = r
	}
	return nil
}

// Lookup returns the resource bound at element index of slot.
func (s *BindingSet) Lookup(slot, index int) (Resource, bool) {
	r, ok := s.bindings[[2]int{slot, index}]
	return r, ok
}

// Slot returns the resources bound to slot ordered by array index.
func (s *BindingSet) Slot(slot int) []Resource {
	var rs []Resource
	for i := 0; ; i++ {
		r, ok := s.bindings[[2]int{slot, i}]
		if !ok {
			return rs
		}
		rs = append(rs, r)
	}
}

// Bindings returns every binding ordered by slot and index.
func (s *BindingSet) Bindings() []Binding {
	bs := make([]Binding, 0, len(s.bindings))
	for k, r := range s.bindings {
		bs = append(bs, Binding{Slot: k[0], Index: k[1], Resource: r})
	}
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].Slot != bs[j].Slot {
			return bs[i].Slot < bs[j].Slot
		}
		return bs[i].Index < bs[j].Index
	})
	return bs
}
