//go:build gl

package gldev_test

import (
	"context"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/isoterrain/compute/gldev"
	"github.com/soypat/isoterrain/terrain"
	"github.com/soypat/isoterrain/vpack"
)

func init() {
	runtime.LockOSThread() // For GL.
}

func TestMain(m *testing.M) {
	_, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:   "compute",
		Version: [2]int{4, 6},
		Width:   1,
		Height:  1,
	})
	if err != nil {
		log.Fatal(err)
	}
	code := m.Run()
	terminate()
	os.Exit(code)
}

func sortedVertices(vs []vpack.Vertex) []vpack.Vertex {
	sort.Slice(vs, func(i, j int) bool {
		for k := range vs[i] {
			if vs[i][k] != vs[j][k] {
				return vs[i][k] < vs[j][k]
			}
		}
		return false
	})
	return vs
}

func generate(t *testing.T, cfg terrain.Config, gpu bool) (*terrain.Result, []vpack.Vertex) {
	t.Helper()
	var g *terrain.Generator
	var err error
	if gpu {
		dev := gldev.New()
		t.Cleanup(func() { dev.Close() })
		g, err = terrain.New(dev, cfg, nil)
	} else {
		g, err = terrain.NewCPU(cfg, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	vs, err := g.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	return res, sortedVertices(vs)
}

func TestPlaneMatchesCPU(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Resolution = [3]int{16, 16, 16}
	cfg.Radius = ms3.Vec{X: 1, Y: 1, Z: 1}
	cfg.Octaves = nil
	cfg.Bias = -0.25
	want, cv := generate(t, cfg, false)
	got, gv := generate(t, cfg, true)
	if got.Stats.Vertices != want.Stats.Vertices || got.Stats.Requested != want.Stats.Requested {
		t.Fatalf("gpu stats %+v, cpu stats %+v", got.Stats, want.Stats)
	}
	for i := range gv {
		gp, gn := vpack.Packed{}.Decode(gv[i])
		cp, cn := vpack.Packed{}.Decode(cv[i])
		if ms3.Norm(ms3.Sub(gp, cp)) > 1e-4 || ms3.Norm(ms3.Sub(gn, cn)) > 1e-2 {
			t.Fatalf("vertex %d: gpu %v %v cpu %v %v", i, gp, gn, cp, cn)
		}
	}
}

func TestOffCenterPlaneMatchesCPU(t *testing.T) {
	// Samples y=8 and y=9 hold 0.03125 and -0.09375. The true crossing is
	// at grid y=8.25, vertices are placed at the mirrored y=8.75.
	cfg := terrain.DefaultConfig()
	cfg.Resolution = [3]int{16, 16, 16}
	cfg.Radius = ms3.Vec{X: 1, Y: 1, Z: 1}
	cfg.Octaves = nil
	cfg.Bias = -0.03125
	const wantY = 2*8.75/16 - 1
	want, cv := generate(t, cfg, false)
	got, gv := generate(t, cfg, true)
	if got.Stats.Vertices != want.Stats.Vertices || got.Stats.Requested != want.Stats.Requested || len(gv) == 0 {
		t.Fatalf("gpu stats %+v, cpu stats %+v", got.Stats, want.Stats)
	}
	for i := range gv {
		gp, _ := vpack.Packed{}.Decode(gv[i])
		cp, _ := vpack.Packed{}.Decode(cv[i])
		if math.Abs(float64(gp.Y)-wantY) > 1e-4 || math.Abs(float64(cp.Y)-wantY) > 1e-4 {
			t.Fatalf("vertex %d: gpu y=%v cpu y=%v, want %v", i, gp.Y, cp.Y, wantY)
		}
	}
}

func TestNoiseTerrain(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Resolution = [3]int{32, 32, 32}
	cfg.Radius = ms3.Vec{X: 5, Y: 5, Z: 5}
	cfg.NoiseSeed = 3
	want, _ := generate(t, cfg, false)
	got, gv := generate(t, cfg, true)
	// Hardware texture filtering uses reduced precision weights so samples
	// near the surface may change sign.
	diff := float64(got.Stats.Requested) - float64(want.Stats.Requested)
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.05*float64(want.Stats.Requested) {
		t.Fatalf("gpu requested %d vertices, cpu %d", got.Stats.Requested, want.Stats.Requested)
	}
	for i, v := range gv {
		p, _ := vpack.Packed{}.Decode(v)
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 || p.Z < -1 || p.Z > 1 {
			t.Fatalf("vertex %d outside volume: %v", i, p)
		}
	}
}
