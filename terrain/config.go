package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/vpack"
)

// Config fully determines the output of a Generator.
type Config struct {
	// Resolution is the number of density samples along each axis.
	Resolution [3]int
	// Center and Radius place the sampled volume in world space.
	Center  ms3.Vec
	Radius  ms3.Vec
	Octaves []density.Octave
	Bias    float32
	// NoiseSize is the edge length of the noise textures.
	NoiseSize int
	// NoiseSeed seeds the first noise texture, each following texture uses the next seed.
	NoiseSeed uint64
	// Capacity is the triangle buffer size in vertices. Zero selects
	// 5 vertices per sample.
	Capacity uint64
	Policy   appendbuf.Policy
	Format   vpack.Format
	// Workers sizes the host device worker pool. Zero uses every CPU.
	Workers int
}

// DefaultConfig returns a 256³ terrain around the origin.
func DefaultConfig() Config {
	p := density.DefaultParams()
	return Config{
		Resolution: p.Resolution,
		Center:     p.Center,
		Radius:     p.Radius,
		Octaves:    p.Octaves,
		Bias:       p.Bias,
		NoiseSize:  density.DefaultNoiseSize,
		Policy:     appendbuf.Clamp,
		Format:     vpack.Packed{},
	}
}

// Params returns the density parameters of c.
func (c Config) Params() density.Params {
	return density.Params{
		Resolution: c.Resolution,
		Center:     c.Center,
		Radius:     c.Radius,
		Octaves:    c.Octaves,
		Bias:       c.Bias,
	}
}

// VertexCapacity returns the triangle buffer size in vertices.
func (c Config) VertexCapacity() uint64 {
	if c.Capacity == 0 {
		return appendbuf.HeuristicVertices(c.Resolution)
	}
	return c.Capacity
}

// Validate checks c can be generated.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.NoiseSize < 1 {
		return fmt.Errorf("invalid noise size %d", c.NoiseSize)
	}
	if c.Workers < 0 {
		return errors.New("negative worker count")
	}
	if c.Policy != appendbuf.Clamp && c.Policy != appendbuf.Fail {
		return fmt.Errorf("invalid overflow policy %v", c.Policy)
	}
	if capacity := c.VertexCapacity(); capacity > math.MaxUint32 {
		return fmt.Errorf("vertex capacity %d exceeds the 32-bit vertex counter", capacity)
	}
	return nil
}
