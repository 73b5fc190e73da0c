package terrain

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/compute/cpudev"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/triangulate"
	"github.com/soypat/isoterrain/vpack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// planeConfig returns a 4³ volume whose surface is the plane between the
// sample layers y=2 and y=3, crossing 9 cells with 2 triangles each.
func planeConfig() Config {
	cfg := DefaultConfig()
	cfg.Resolution = [3]int{4, 4, 4}
	cfg.Radius = ms3.Vec{X: 1, Y: 1, Z: 1}
	cfg.Octaves = nil
	cfg.Bias = -0.25
	cfg.Workers = 2
	return cfg
}

func mustGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	g, err := NewCPU(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestEmptyVolume(t *testing.T) {
	cfg := planeConfig()
	cfg.Bias = 100
	g := mustGenerator(t, cfg)
	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.Vertices != 0 || res.Stats.Requested != 0 || g.State() != Ready {
		t.Errorf("stats %+v state %v", res.Stats, g.State())
	}
}

func TestPlane(t *testing.T) {
	for _, format := range []vpack.Format{vpack.Packed{}, vpack.Unpacked{}} {
		cfg := planeConfig()
		cfg.Format = format
		g := mustGenerator(t, cfg)
		res, err := g.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if res.Stats.Vertices != 54 || res.Stats.Dropped != 0 {
			t.Fatalf("%v: stats %+v", format, res.Stats)
		}
		vs, err := g.Vertices()
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range vs {
			pos, normal := format.Decode(v)
			if math.Abs(float64(pos.Y-0.25)) > 1e-5 {
				t.Errorf("%v: vertex %d at y=%g, want 0.25", format, i, pos.Y)
			}
			if format.HasNormals() && ms3.Norm(ms3.Sub(normal, ms3.Vec{Y: 1})) > 1e-5 {
				t.Errorf("%v: vertex %d normal %v", format, i, normal)
			}
		}
	}
}

func TestCapacityPolicy(t *testing.T) {
	cfg := planeConfig()
	cfg.Capacity = 6
	core, logs := observer.New(zapcore.WarnLevel)
	g, err := NewCPU(cfg, zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	st := res.Stats
	if st.Vertices != 6 || st.Requested != 54 || st.Dropped != 48 || st.Capacity != 6 {
		t.Errorf("clamped stats %+v", st)
	}
	if logs.FilterMessage("triangle buffer overflowed, cells dropped").Len() != 1 {
		t.Errorf("overflow warning not logged: %v", logs.All())
	}
	if logs.FilterMessage("triangle buffer below worst case, cells may be dropped").Len() != 1 {
		t.Error("undersized capacity not reported at construction")
	}

	cfg.Policy = appendbuf.Fail
	g = mustGenerator(t, cfg)
	_, err = g.Generate(context.Background())
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("want ErrCapacityExceeded, got %v", err)
	}
	if g.State() != Failed {
		t.Errorf("state %v after overflow", g.State())
	}
	if _, err := g.Result(); !errors.Is(err, ErrNotReady) {
		t.Errorf("result exposed after failure: %v", err)
	}

	cfg.Capacity = 54
	g = mustGenerator(t, cfg)
	if res, err := g.Generate(context.Background()); err != nil || res.Stats.Vertices != 54 {
		t.Errorf("exact capacity: %v", err)
	}
}

type triangle [12]uint32

func triangles(t *testing.T, vs []vpack.Vertex) []triangle {
	t.Helper()
	if len(vs)%3 != 0 {
		t.Fatalf("%d vertices do not form whole triangles", len(vs))
	}
	tris := make([]triangle, len(vs)/3)
	for i := range tris {
		for j := 0; j < 3; j++ {
			copy(tris[i][4*j:], vs[3*i+j][:])
		}
	}
	sort.Slice(tris, func(i, j int) bool {
		a, b := tris[i], tris[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return tris
}

func equalTriangles(a, b []triangle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func noiseConfig(workers int) Config {
	cfg := DefaultConfig()
	cfg.Resolution = [3]int{24, 20, 24}
	cfg.NoiseSeed = 7
	cfg.Workers = workers
	return cfg
}

func TestIdempotent(t *testing.T) {
	var want []triangle
	for _, workers := range []int{1, 3, 8} {
		g := mustGenerator(t, noiseConfig(workers))
		for cycle := 0; cycle < 2; cycle++ {
			res, err := g.Generate(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			st := res.Stats
			if st.Requested != uint64(st.Vertices)+st.Dropped {
				t.Errorf("requested %d != vertices %d + dropped %d", st.Requested, st.Vertices, st.Dropped)
			}
			vs, err := g.Vertices()
			if err != nil {
				t.Fatal(err)
			}
			got := triangles(t, vs)
			if want == nil {
				want = got
				if len(want) == 0 {
					t.Fatal("default noise produced no triangles")
				}
			} else if !equalTriangles(got, want) {
				t.Errorf("workers=%d cycle=%d: triangle set differs", workers, cycle)
			}
		}
	}
}

// TestMatchesSerial checks the device passes produce the same triangles as
// filling and triangulating the volume on the host.
func TestMatchesSerial(t *testing.T) {
	cfg := noiseConfig(4)
	g := mustGenerator(t, cfg)
	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	vs, err := g.Vertices()
	if err != nil {
		t.Fatal(err)
	}

	noise, err := density.NoiseSet(density.NumNoiseTextures, cfg.NoiseSize, cfg.NoiseSeed)
	if err != nil {
		t.Fatal(err)
	}
	field, err := density.NewField(cfg.Params(), noise)
	if err != nil {
		t.Fatal(err)
	}
	vol, err := density.NewVolume(cfg.Resolution)
	if err != nil {
		t.Fatal(err)
	}
	if err := field.Fill(vol); err != nil {
		t.Fatal(err)
	}
	var count uint32
	out, err := appendbuf.NewBuffer(make([]uint32, 4*int(g.Capacity())), &count)
	if err != nil {
		t.Fatal(err)
	}
	triangulate.New(cfg.Format).Serial(vol, out)
	if !equalTriangles(triangles(t, vs), triangles(t, out.Vertices())) {
		t.Errorf("device output (%d vertices) differs from serial output (%d vertices)", len(vs), out.Len())
	}
}

func TestDrawAndReadiness(t *testing.T) {
	var drawn uint32 = math.MaxUint32
	dev := cpudev.New(append(CPUKernels(), cpudev.WithDrawFunc(func(_ []uint32, n, _ uint32) { drawn = n }))...)
	defer dev.Close()
	g, err := New(dev, planeConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Draw(dev.Begin()); !errors.Is(err, ErrNotReady) {
		t.Errorf("draw before generation: %v", err)
	}
	if g.State() != Idle {
		t.Errorf("initial state %v", g.State())
	}
	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	r := dev.Begin()
	if err := g.Draw(r); err != nil {
		t.Fatal(err)
	}
	if err := dev.Submit(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if drawn != 54 {
		t.Errorf("drew %d vertices, want 54", drawn)
	}
}

func TestCanceled(t *testing.T) {
	g := mustGenerator(t, planeConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if g.State() != Failed {
		t.Errorf("state %v after cancel", g.State())
	}
	if _, err := g.Vertices(); !errors.Is(err, ErrNotReady) {
		t.Errorf("vertices exposed after cancel: %v", err)
	}
	res, err := g.Generate(context.Background())
	if err != nil || res.Stats.Vertices != 54 {
		t.Errorf("cycle after cancel: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	for name, mod := range map[string]func(*Config){
		"resolution": func(c *Config) { c.Resolution = [3]int{1, 4, 4} },
		"noise size": func(c *Config) { c.NoiseSize = 0 },
		"workers":    func(c *Config) { c.Workers = -1 },
		"capacity":   func(c *Config) { c.Capacity = math.MaxUint32 + 1 },
		"policy":     func(c *Config) { c.Policy = 9 },
		"radius":     func(c *Config) { c.Radius.Y = 0 },
	} {
		cfg := planeConfig()
		mod(&cfg)
		if _, err := NewCPU(cfg, nil); err == nil {
			t.Errorf("%s: invalid config accepted", name)
		}
	}
	if got := DefaultConfig().VertexCapacity(); got != 5*256*256*256 {
		t.Errorf("default capacity %d", got)
	}
}

func TestGlobalsLayout(t *testing.T) {
	p := density.DefaultParams()
	p.Center = ms3.Vec{X: 1, Y: 2, Z: 3}
	w, err := EncodeGlobals(p, vpack.Unpacked{})
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != GlobalsWords || w[8] != 256 || w[12] != 8 || w[13] != 1 {
		t.Fatalf("layout %v", w[:16])
	}
	if math.Float32frombits(w[11]) != density.DefaultBias || math.Float32frombits(w[17]) != 0.07 {
		t.Error("bias or first octave amplitude misplaced")
	}
	back, f, err := DecodeGlobals(w)
	if err != nil {
		t.Fatal(err)
	}
	if back.Center != p.Center || back.Resolution != p.Resolution || len(back.Octaves) != 8 || back.Octaves[7] != p.Octaves[7] {
		t.Errorf("decoded %+v", back)
	}
	if _, ok := f.(vpack.Unpacked); !ok {
		t.Errorf("decoded format %v", f)
	}
}

func TestStateString(t *testing.T) {
	if Ready.String() != "ready" || State(42).String() != "State(42)" {
		t.Error("state names")
	}
}
