package triangulate

import (
	"testing"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/vpack"
)

const benchRes = 64

// terrainSDF evaluates the terrain field at arbitrary points so the sdfx
// marching cubes renderer can mesh it. sdfx treats negative values as
// inside, so the density is negated.
type terrainSDF struct {
	p     density.Params
	noise []*density.NoiseTexture
}

var _ sdf.SDF3 = terrainSDF{}

func (s terrainSDF) Evaluate(p v3.Vec) float64 {
	world := ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
	rel := ms3.Sub(world, s.p.Center)
	uv := ms3.Vec{X: rel.X / s.p.Radius.X, Y: rel.Y / s.p.Radius.Y, Z: rel.Z / s.p.Radius.Z}
	d := -world.Y
	for _, o := range s.p.Octaves {
		d += s.noise[o.Texture].Sample(ms3.Scale(o.Frequency, uv)) * o.Amplitude
	}
	return -float64(d - s.p.Bias)
}

func (s terrainSDF) BoundingBox() sdf.Box3 {
	lo, hi := ms3.Sub(s.p.Center, s.p.Radius), ms3.Add(s.p.Center, s.p.Radius)
	return sdf.Box3{
		Min: v3.Vec{X: float64(lo.X), Y: float64(lo.Y), Z: float64(lo.Z)},
		Max: v3.Vec{X: float64(hi.X), Y: float64(hi.Y), Z: float64(hi.Z)},
	}
}

func benchField(b *testing.B) (*density.Field, terrainSDF) {
	p := density.DefaultParams()
	p.Resolution = [3]int{benchRes, benchRes, benchRes}
	noise, err := density.NoiseSet(density.NumNoiseTextures, density.DefaultNoiseSize, 1)
	if err != nil {
		b.Fatal(err)
	}
	f, err := density.NewField(p, noise)
	if err != nil {
		b.Fatal(err)
	}
	return f, terrainSDF{p: p, noise: noise}
}

// BenchmarkSDFXTerrain meshes the terrain with the sdfx uniform marching
// cubes renderer as a reference point for BenchmarkTerrain.
func BenchmarkSDFXTerrain(b *testing.B) {
	_, s := benchField(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tris := render.ToTriangles(s, render.NewMarchingCubesUniform(benchRes))
		if len(tris) == 0 {
			b.Fatal("sdfx produced no triangles")
		}
	}
}

func BenchmarkTerrain(b *testing.B) {
	f, _ := benchField(b)
	vol, err := density.NewVolume(f.Params().Resolution)
	if err != nil {
		b.Fatal(err)
	}
	n := appendbuf.HeuristicVertices(vol.Extent())
	words := make([]uint32, 4*n)
	tr := New(vpack.Packed{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		args := appendbuf.ResetArgs()
		out, err := appendbuf.NewBuffer(words, &args.VertexCount)
		if err != nil {
			b.Fatal(err)
		}
		if err := f.Fill(vol); err != nil {
			b.Fatal(err)
		}
		tr.Serial(vol, out)
		if args.VertexCount == 0 {
			b.Fatal("no triangles generated")
		}
	}
}
