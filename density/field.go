// Package density synthesizes the scalar field the terrain surface is
// extracted from. The field is a ground plane, -y in world space, perturbed
// by a sum of tileable noise octaves and offset by a bias. Positive values
// are solid.
package density

import (
	"errors"
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// Octave is one layer of the noise sum.
type Octave struct {
	// Texture indexes the noise texture to sample.
	Texture   int     `yaml:"texture"`
	Frequency float32 `yaml:"frequency"`
	Amplitude float32 `yaml:"amplitude"`
}

// MaxOctaves is the largest number of octaves a generator accepts.
const MaxOctaves = 8

// NumNoiseTextures is the number of noise textures octaves may reference.
const NumNoiseTextures = 4

// DefaultBias is subtracted from every sample.
const DefaultBias = 3.5

// DefaultOctaves returns the standard terrain octave stack, highest frequency first.
func DefaultOctaves() []Octave {
	return []Octave{
		{Texture: 0, Frequency: 9.53, Amplitude: 0.07},
		{Texture: 1, Frequency: 6.03, Amplitude: 0.13},
		{Texture: 0, Frequency: 4.03, Amplitude: 0.25},
		{Texture: 1, Frequency: 1.96, Amplitude: 0.50},
		{Texture: 2, Frequency: 1.01, Amplitude: 1.00},
		{Texture: 3, Frequency: 0.87, Amplitude: 1.00},
		{Texture: 0, Frequency: 0.54, Amplitude: 1.00},
		{Texture: 1, Frequency: 0.32, Amplitude: 1.55},
	}
}

// Params fully determines a density volume together with the noise textures.
type Params struct {
	Resolution [3]int
	Center     ms3.Vec
	Radius     ms3.Vec
	Octaves    []Octave
	Bias       float32
}

// DefaultParams returns a 256³ volume centred at the origin spanning ±5 units.
func DefaultParams() Params {
	return Params{
		Resolution: [3]int{256, 256, 256},
		Radius:     ms3.Vec{X: 5, Y: 5, Z: 5},
		Octaves:    DefaultOctaves(),
		Bias:       DefaultBias,
	}
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	if err := CheckExtent(p.Resolution); err != nil {
		return err
	}
	if len(p.Octaves) > MaxOctaves {
		return fmt.Errorf("%d octaves exceed maximum of %d", len(p.Octaves), MaxOctaves)
	}
	for i, o := range p.Octaves {
		if o.Texture < 0 || o.Texture >= NumNoiseTextures {
			return fmt.Errorf("octave %d references noise texture %d", i, o.Texture)
		}
	}
	if p.Radius.X <= 0 || p.Radius.Y <= 0 || p.Radius.Z <= 0 {
		return errors.New("radius must be positive along every axis")
	}
	return nil
}

// Field evaluates density samples.
type Field struct {
	params Params
	noise  []*NoiseTexture
}

// NewField validates p and checks every referenced noise texture is present.
func NewField(p Params, noise []*NoiseTexture) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, o := range p.Octaves {
		if o.Texture >= len(noise) || noise[o.Texture] == nil {
			return nil, fmt.Errorf("octave %d: missing noise texture %d", i, o.Texture)
		}
	}
	return &Field{params: p, noise: noise}, nil
}

// Params returns the field parameters.
func (f *Field) Params() Params { return f.params }

// Uv maps a grid coordinate to normalized coordinates, -1 at index 0 and
// approaching 1 at the far end.
func (f *Field) Uv(gid [3]int) ms3.Vec {
	r := f.params.Resolution
	return ms3.Vec{
		X: 2*(float32(gid[0])/float32(r[0])) - 1,
		Y: 2*(float32(gid[1])/float32(r[1])) - 1,
		Z: 2*(float32(gid[2])/float32(r[2])) - 1,
	}
}

// Sample evaluates the density at grid coordinate gid.
func (f *Field) Sample(gid [3]int) float32 {
	uv := f.Uv(gid)
	world := ms3.Add(f.params.Center, ms3.MulElem(uv, f.params.Radius))
	d := -world.Y
	for _, o := range f.params.Octaves {
		d += f.noise[o.Texture].Sample(ms3.Scale(o.Frequency, uv)) * o.Amplitude
	}
	return d - f.params.Bias
}

// Invoke is the per-invocation kernel body: it writes the sample for gid
// into vol. Coordinates outside the resolution are ignored.
func (f *Field) Invoke(vol *Volume, gid [3]int) {
	r := f.params.Resolution
	if gid[0] >= r[0] || gid[1] >= r[1] || gid[2] >= r[2] {
		return
	}
	vol.Set(gid[0], gid[1], gid[2], f.Sample(gid))
}

// Fill evaluates every sample of vol serially.
func (f *Field) Fill(vol *Volume) error {
	if vol.Extent() != f.params.Resolution {
		return fmt.Errorf("volume extent %v does not match resolution %v", vol.Extent(), f.params.Resolution)
	}
	r := f.params.Resolution
	for z := 0; z < r[2]; z++ {
		for y := 0; y < r[1]; y++ {
			for x := 0; x < r[0]; x++ {
				f.Invoke(vol, [3]int{x, y, z})
			}
		}
	}
	return nil
}
