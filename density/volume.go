package density

import (
	"errors"
	"fmt"
)

// ErrBadResolution is returned for volume extents that cannot hold a single cell.
var ErrBadResolution = errors.New("resolution must be at least 2 along every axis")

// Volume is a dense 3D grid of float32 density samples, x varying fastest.
type Volume struct {
	extent [3]int
	data   []float32
}

// NewVolume allocates a zeroed volume.
func NewVolume(extent [3]int) (*Volume, error) {
	if err := CheckExtent(extent); err != nil {
		return nil, err
	}
	return &Volume{extent: extent, data: make([]float32, extent[0]*extent[1]*extent[2])}, nil
}

// VolumeFrom wraps existing storage as a volume. data is not copied.
func VolumeFrom(extent [3]int, data []float32) (*Volume, error) {
	if err := CheckExtent(extent); err != nil {
		return nil, err
	}
	if n := extent[0] * extent[1] * extent[2]; len(data) < n {
		return nil, fmt.Errorf("volume %v needs %d samples, got %d", extent, n, len(data))
	}
	return &Volume{extent: extent, data: data}, nil
}

// CheckExtent validates a volume resolution.
func CheckExtent(extent [3]int) error {
	if extent[0] < 2 || extent[1] < 2 || extent[2] < 2 {
		return fmt.Errorf("%w: got %v", ErrBadResolution, extent)
	}
	return nil
}

// Extent returns the number of samples along each axis.
func (v *Volume) Extent() [3]int { return v.extent }

// Data returns the backing storage.
func (v *Volume) Data() []float32 { return v.data }

func (v *Volume) index(x, y, z int) int {
	return x + v.extent[0]*(y+v.extent[1]*z)
}

// In reports whether the integer coordinate lies inside the volume.
func (v *Volume) In(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < v.extent[0] && y < v.extent[1] && z < v.extent[2]
}

// At returns the sample at an in-range coordinate.
func (v *Volume) At(x, y, z int) float32 { return v.data[v.index(x, y, z)] }

// Set stores a sample at an in-range coordinate.
func (v *Volume) Set(x, y, z int, d float32) { v.data[v.index(x, y, z)] = d }

// AtClamped returns the sample at the coordinate clamped to the volume
// bounds, the same result an image load with clamp-to-edge addressing gives.
func (v *Volume) AtClamped(x, y, z int) float32 {
	return v.At(clamp(x, v.extent[0]-1), clamp(y, v.extent[1]-1), clamp(z, v.extent[2]-1))
}

func clamp(i, hi int) int {
	if i < 0 {
		return 0
	} else if i > hi {
		return hi
	}
	return i
}
