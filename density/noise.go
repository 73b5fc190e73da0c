package density

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultNoiseSize is the edge length of generated noise textures.
const DefaultNoiseSize = 16

// NoiseTexture is a tileable cube of random values in [0,1), sampled with
// trilinear filtering and repeat addressing.
type NoiseTexture struct {
	size int
	data []float32
}

// NewNoiseTexture fills a size³ texture with uniform random values drawn from
// a source seeded with seed.
func NewNoiseTexture(size int, seed uint64) (*NoiseTexture, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid noise texture size %d", size)
	}
	dist := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)}
	data := make([]float32, size*size*size)
	for i := range data {
		data[i] = float32(dist.Rand())
	}
	return &NoiseTexture{size: size, data: data}, nil
}

// NoiseTextureFrom wraps existing texels as a texture. data is not copied.
func NoiseTextureFrom(size int, data []float32) (*NoiseTexture, error) {
	if size < 1 || len(data) < size*size*size {
		return nil, fmt.Errorf("noise texture of size %d needs %d texels, got %d", size, size*size*size, len(data))
	}
	return &NoiseTexture{size: size, data: data}, nil
}

// NoiseSet generates n textures from consecutive seeds starting at seed.
func NoiseSet(n, size int, seed uint64) ([]*NoiseTexture, error) {
	set := make([]*NoiseTexture, n)
	for i := range set {
		tex, err := NewNoiseTexture(size, seed+uint64(i))
		if err != nil {
			return nil, err
		}
		set[i] = tex
	}
	return set, nil
}

// Size returns the edge length of the texture.
func (t *NoiseTexture) Size() int { return t.size }

// Data returns the texels, x varying fastest.
func (t *NoiseTexture) Data() []float32 { return t.data }

func (t *NoiseTexture) texel(x, y, z int) float32 {
	n := t.size
	x, y, z = wrap(x, n), wrap(y, n), wrap(z, n)
	return t.data[x+n*(y+n*z)]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Sample returns the filtered value at normalized coordinate uvw. Texel i
// has its centre at (i+0.5)/size and coordinates wrap with period 1.
func (t *NoiseTexture) Sample(uvw ms3.Vec) float32 {
	n := float32(t.size)
	u, v, w := uvw.X*n-0.5, uvw.Y*n-0.5, uvw.Z*n-0.5
	fu, fv, fw := math32.Floor(u), math32.Floor(v), math32.Floor(w)
	x0, y0, z0 := int(fu), int(fv), int(fw)
	tu, tv, tw := u-fu, v-fv, w-fw

	lerp := func(a, b, s float32) float32 { return a + s*(b-a) }
	c00 := lerp(t.texel(x0, y0, z0), t.texel(x0+1, y0, z0), tu)
	c10 := lerp(t.texel(x0, y0+1, z0), t.texel(x0+1, y0+1, z0), tu)
	c01 := lerp(t.texel(x0, y0, z0+1), t.texel(x0+1, y0, z0+1), tu)
	c11 := lerp(t.texel(x0, y0+1, z0+1), t.texel(x0+1, y0+1, z0+1), tu)
	return lerp(lerp(c00, c10, tv), lerp(c01, c11, tv), tw)
}
