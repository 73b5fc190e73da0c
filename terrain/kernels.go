package terrain

import (
	"fmt"

	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/celltable"
	"github.com/soypat/isoterrain/compute"
	"github.com/soypat/isoterrain/compute/cpudev"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/triangulate"
	"github.com/soypat/isoterrain/vpack"
)

// CPUKernels returns the options registering the Go implementation of both
// terrain kernels on a host device.
func CPUKernels() []cpudev.Option {
	return []cpudev.Option{
		cpudev.WithKernel(compute.DensityKernel.Name, densityKernel),
		cpudev.WithKernel(compute.TriangleKernel.Name, triangleKernel),
	}
}

// boundGlobals decodes the uniform block and wraps the density image.
func boundGlobals(b *cpudev.Bound) (p density.Params, f vpack.Format, vol *density.Volume, err error) {
	w, err := b.Words(compute.SlotGlobals)
	if err != nil {
		return p, nil, nil, err
	}
	p, f, err = DecodeGlobals(w)
	if err != nil {
		return p, nil, nil, err
	}
	extent, texels, err := b.Image(compute.SlotDensity, 0)
	if err != nil {
		return p, nil, nil, err
	}
	if extent != p.Resolution {
		return p, nil, nil, fmt.Errorf("density image extent %v does not match resolution %v", extent, p.Resolution)
	}
	vol, err = density.VolumeFrom(extent, texels)
	return p, f, vol, err
}

func densityKernel(b *cpudev.Bound) (cpudev.Invocation, error) {
	p, _, vol, err := boundGlobals(b)
	if err != nil {
		return nil, err
	}
	noise := make([]*density.NoiseTexture, b.ArrayLen(compute.SlotNoise))
	for i := range noise {
		extent, texels, err := b.Image(compute.SlotNoise, i)
		if err != nil {
			return nil, err
		}
		if extent[0] != extent[1] || extent[0] != extent[2] {
			return nil, fmt.Errorf("noise image %d is not a cube: %v", i, extent)
		}
		noise[i], err = density.NoiseTextureFrom(extent[0], texels)
		if err != nil {
			return nil, err
		}
	}
	field, err := density.NewField(p, noise)
	if err != nil {
		return nil, err
	}
	return func(gid [3]int) { field.Invoke(vol, gid) }, nil
}

func triangleKernel(b *cpudev.Bound) (cpudev.Invocation, error) {
	_, format, vol, err := boundGlobals(b)
	if err != nil {
		return nil, err
	}
	var words [5][]uint32
	for i, slot := range []int{compute.SlotCellClasses, compute.SlotCellData, compute.SlotEdgeVerts, compute.SlotArgs, compute.SlotTriangles} {
		if words[i], err = b.Words(slot); err != nil {
			return nil, err
		}
	}
	table, err := celltable.TableFromWords(words[0], words[1], words[2])
	if err != nil {
		return nil, err
	}
	out, err := appendbuf.NewDeviceBuffer(words[4], words[3])
	if err != nil {
		return nil, err
	}
	tr := &triangulate.Triangulator{Table: table, Format: format}
	return func(gid [3]int) { tr.Invoke(vol, out, gid) }, nil
}
