package cpudev

import (
	"fmt"

	"github.com/soypat/isoterrain/compute"
)

// Bound gives a kernel typed access to the host memory of the resources in
// a binding set. Slices alias device memory.
type Bound struct {
	dev *Device
	set *compute.BindingSet
}

// Words returns the words of the buffer bound at slot.
func (b *Bound) Words(slot int) ([]uint32, error) {
	r, ok := b.set.Lookup(slot, 0)
	if !ok {
		return nil, fmt.Errorf("slot %d not bound", slot)
	}
	cb, ok := r.(compute.Buffer)
	if !ok {
		return nil, fmt.Errorf("slot %d: %s is not a buffer", slot, r.Name())
	}
	buf, err := b.dev.hostBuffer(cb)
	if err != nil {
		return nil, err
	}
	return buf.words, nil
}

// Image returns the extent and texels of the image bound at element index of slot.
func (b *Bound) Image(slot, index int) (extent [3]int, texels []float32, err error) {
	r, ok := b.set.Lookup(slot, index)
	if !ok {
		return extent, nil, fmt.Errorf("slot %d[%d] not bound", slot, index)
	}
	ci, ok := r.(compute.Image)
	if !ok {
		return extent, nil, fmt.Errorf("slot %d[%d]: %s is not an image", slot, index, r.Name())
	}
	img, err := b.dev.hostImage(ci)
	if err != nil {
		return extent, nil, err
	}
	return img.extent, img.texels, nil
}

// ArrayLen returns the number of consecutive elements bound at slot.
func (b *Bound) ArrayLen(slot int) int { return len(b.set.Slot(slot)) }
