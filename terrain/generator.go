// Package terrain sequences the two compute passes that turn a noise field
// into a drawable triangle list: a density pass filling a 3D image, then a
// triangle pass classifying every cell and appending its triangles to a
// buffer whose vertex count is the argument of an indirect draw. All
// recording goes through Generator.Generate, which inserts the barriers
// each pass needs.
package terrain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/celltable"
	"github.com/soypat/isoterrain/compute"
	"github.com/soypat/isoterrain/compute/cpudev"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/vpack"
	"go.uber.org/zap"
)

var (
	// ErrCapacityExceeded is returned under the Fail policy when cells were
	// dropped for lack of triangle buffer space.
	ErrCapacityExceeded = errors.New("triangle buffer capacity exceeded")
	// ErrNotReady is returned when the output of a cycle that did not
	// complete is requested.
	ErrNotReady = errors.New("terrain not ready")
)

// State is the progress of the current generation cycle.
type State uint32

const (
	Idle State = iota
	DensityDispatched
	DensityBarrier
	TrianglesDispatched
	TrianglesBarrier
	Ready
	Failed
)

var stateNames = [...]string{
	Idle:                "idle",
	DensityDispatched:   "density-dispatched",
	DensityBarrier:      "density-barrier",
	TrianglesDispatched: "triangles-dispatched",
	TrianglesBarrier:    "triangles-barrier",
	Ready:               "ready",
	Failed:              "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

// Stats describes one completed cycle.
type Stats struct {
	Vertices  uint32
	Capacity  uint32
	Requested uint64
	Dropped   uint64
	Duration  time.Duration
}

// Triangles returns the number of triangles generated.
func (s Stats) Triangles() uint32 { return s.Vertices / 3 }

// Result is the output of a completed cycle. Vertices holds Stats.Vertices
// records of 4 words and Args the indirect draw argument block.
type Result struct {
	Vertices compute.Buffer
	Args     compute.Buffer
	Stats    Stats
}

// Generator owns the device resources of one terrain volume.
type Generator struct {
	log      *zap.Logger
	dev      compute.Device
	ownsDev  bool
	cfg      Config
	capacity uint32

	globals  compute.Buffer
	classes  compute.Buffer
	cells    compute.Buffer
	edges    compute.Buffer
	args     compute.Buffer
	tris     compute.Buffer
	density  compute.Image
	noise    []compute.Image
	densityP compute.Pipeline
	triP     compute.Pipeline
	dset     *compute.BindingSet
	tset     *compute.BindingSet

	mu     sync.Mutex
	state  atomic.Uint32
	result *Result
}

// NewCPU returns a Generator running on a host device it owns.
func NewCPU(cfg Config, log *zap.Logger) (*Generator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := append(CPUKernels(), cpudev.WithWorkers(cfg.Workers), cpudev.WithLogger(log.Named("cpudev")))
	g, err := New(cpudev.New(opts...), cfg, log)
	if err != nil {
		return nil, err
	}
	g.ownsDev = true
	return g, nil
}

// New allocates the resources of cfg on dev and uploads the lookup tables,
// noise textures and kernel parameters.
func New(dev compute.Device, cfg Config, log *zap.Logger) (*Generator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Format == nil {
		cfg.Format = vpack.Packed{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}
	capacity := cfg.VertexCapacity()
	if safe, worst := appendbuf.CheckCapacity(cfg.Resolution, capacity); !safe {
		log.Warn("triangle buffer below worst case, cells may be dropped",
			zap.Uint64("capacity", capacity), zap.Uint64("worst", worst), zap.Stringer("policy", cfg.Policy))
	}
	g := &Generator{log: log, dev: dev, cfg: cfg, capacity: uint32(capacity)}
	if err := g.allocate(); err != nil {
		return nil, err
	}
	if err := g.upload(); err != nil {
		return nil, err
	}
	log.Debug("terrain allocated",
		zap.Ints("resolution", cfg.Resolution[:]),
		zap.Uint32("capacity", g.capacity),
		zap.Stringer("format", cfg.Format))
	return g, nil
}

func (g *Generator) allocate() (err error) {
	const (
		storage  = compute.UsageStorage | compute.UsageTransferDst
		indirect = compute.UsageStorage | compute.UsageIndirect | compute.UsageTransferDst
	)
	newBuf := func(name string, words int, usage compute.Usage) compute.Buffer {
		if err != nil {
			return nil
		}
		var b compute.Buffer
		b, err = g.dev.NewBuffer(name, words, usage)
		return b
	}
	g.globals = newBuf("globals", GlobalsWords, compute.UsageUniform|compute.UsageTransferDst)
	g.classes = newBuf("cell-classes", celltable.ClassWordsLen, storage)
	g.cells = newBuf("cell-data", celltable.CellWordsLen, storage)
	g.edges = newBuf("edge-vertices", celltable.EdgeWordsLen, storage)
	g.args = newBuf("indirect-args", appendbuf.ArgsBufferWords, indirect)
	g.tris = newBuf("triangles", 4*int(g.capacity), compute.UsageStorage|compute.UsageVertex)
	if err != nil {
		return fmt.Errorf("allocating buffers: %w", err)
	}
	g.density, err = g.dev.NewImage3D("density", g.cfg.Resolution, compute.UsageStorage)
	if err != nil {
		return fmt.Errorf("allocating density image: %w", err)
	}
	n := g.cfg.NoiseSize
	g.noise = make([]compute.Image, density.NumNoiseTextures)
	for i := range g.noise {
		g.noise[i], err = g.dev.NewImage3D(fmt.Sprintf("noise%d", i), [3]int{n, n, n}, compute.UsageSampled|compute.UsageTransferDst)
		if err != nil {
			return fmt.Errorf("allocating noise image: %w", err)
		}
	}
	if g.densityP, err = g.dev.NewPipeline(compute.DensityKernel); err != nil {
		return err
	}
	if g.triP, err = g.dev.NewPipeline(compute.TriangleKernel); err != nil {
		return err
	}

	g.dset = compute.NewBindingSet()
	g.tset = compute.NewBindingSet()
	noise := make([]compute.Resource, len(g.noise))
	for i, im := range g.noise {
		noise[i] = im
	}
	for _, err := range []error{
		g.dset.Bind(compute.SlotGlobals, g.globals),
		g.dset.Bind(compute.SlotDensity, g.density),
		g.dset.Bind(compute.SlotNoise, noise...),
		g.tset.Bind(compute.SlotGlobals, g.globals),
		g.tset.Bind(compute.SlotDensity, g.density),
		g.tset.Bind(compute.SlotCellClasses, g.classes),
		g.tset.Bind(compute.SlotCellData, g.cells),
		g.tset.Bind(compute.SlotEdgeVerts, g.edges),
		g.tset.Bind(compute.SlotArgs, g.args),
		g.tset.Bind(compute.SlotTriangles, g.tris),
	} {
		if err != nil {
			return fmt.Errorf("binding resources: %w", err)
		}
	}
	return nil
}

// upload writes the data that stays constant across cycles.
func (g *Generator) upload() error {
	globals, err := EncodeGlobals(g.cfg.Params(), g.cfg.Format)
	if err != nil {
		return err
	}
	textures, err := density.NoiseSet(len(g.noise), g.cfg.NoiseSize, g.cfg.NoiseSeed)
	if err != nil {
		return err
	}
	r := g.dev.Begin()
	for _, err := range []error{
		r.WriteBuffer(g.globals, globals, compute.ScopeUniformRead),
		r.WriteBuffer(g.classes, celltable.ClassWords(), compute.ScopeComputeRead),
		r.WriteBuffer(g.cells, celltable.CellWords(), compute.ScopeComputeRead),
		r.WriteBuffer(g.edges, celltable.EdgeWords(), compute.ScopeComputeRead),
	} {
		if err != nil {
			return fmt.Errorf("uploading tables: %w", err)
		}
	}
	for i, tex := range textures {
		if err := r.WriteImage(g.noise[i], tex.Data(), compute.ScopeComputeRead); err != nil {
			return fmt.Errorf("uploading noise: %w", err)
		}
	}
	return g.dev.Submit(context.Background(), r)
}

// State returns the progress of the current or last cycle.
func (g *Generator) State() State { return State(g.state.Load()) }

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Capacity returns the triangle buffer size in vertices.
func (g *Generator) Capacity() uint32 { return g.capacity }

var nextState = [...]State{
	Idle:                DensityDispatched,
	DensityDispatched:   DensityBarrier,
	DensityBarrier:      TrianglesDispatched,
	TrianglesDispatched: TrianglesBarrier,
	TrianglesBarrier:    Ready,
}

func (g *Generator) advance(to State) error {
	from := g.State()
	if int(from) >= len(nextState) || nextState[from] != to || from == to {
		return fmt.Errorf("invalid terrain state transition %v -> %v", from, to)
	}
	g.state.Store(uint32(to))
	return nil
}

// Generate runs one generation cycle and returns its output. Calls are
// serialized. The previous result is invalidated when a cycle starts.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.result = nil
	g.state.Store(uint32(Idle))
	start := time.Now()

	r := g.dev.Begin()
	if err := g.record(r); err != nil {
		return nil, g.fail(err)
	}
	if err := g.dev.Submit(ctx, r); err != nil {
		return nil, g.fail(fmt.Errorf("submitting cycle: %w", err))
	}
	stats, err := g.readStats()
	if err != nil {
		return nil, g.fail(err)
	}
	stats.Duration = time.Since(start)
	if stats.Dropped > 0 {
		if g.cfg.Policy == appendbuf.Fail {
			return nil, g.fail(fmt.Errorf("%w: %d of %d vertices dropped with capacity %d",
				ErrCapacityExceeded, stats.Dropped, stats.Requested, stats.Capacity))
		}
		g.log.Warn("triangle buffer overflowed, cells dropped",
			zap.Uint64("dropped", stats.Dropped), zap.Uint64("requested", stats.Requested), zap.Uint32("capacity", stats.Capacity))
	}
	if err := g.advance(Ready); err != nil {
		return nil, g.fail(err)
	}
	g.result = &Result{Vertices: g.tris, Args: g.args, Stats: stats}
	g.log.Info("terrain generated",
		zap.Uint32("vertices", stats.Vertices),
		zap.Uint32("triangles", stats.Triangles()),
		zap.Duration("elapsed", stats.Duration))
	return g.result, nil
}

// record issues the commands of one cycle.
func (g *Generator) record(r compute.Recorder) error {
	res := g.cfg.Resolution
	err := r.WriteBuffer(g.args, appendbuf.ResetArgs().BufferWords(), compute.ScopeComputeRW)
	if err != nil {
		return fmt.Errorf("resetting draw arguments: %w", err)
	}

	if err := r.Dispatch(g.densityP, g.dset, compute.DensityGroups(res)); err != nil {
		return fmt.Errorf("density pass: %w", err)
	}
	if err := g.advance(DensityDispatched); err != nil {
		return err
	}

	err = r.Barrier(
		compute.Barrier{Resource: g.density, Src: compute.ScopeComputeRW, Dst: compute.ScopeComputeRW},
		compute.Barrier{Resource: g.args, Src: compute.ScopeIndirectRead, Dst: compute.ScopeComputeWrite},
		compute.Barrier{Resource: g.tris, Src: compute.ScopeVertexRead, Dst: compute.ScopeComputeWrite},
	)
	if err != nil {
		return err
	}
	if err := g.advance(DensityBarrier); err != nil {
		return err
	}

	if err := r.Dispatch(g.triP, g.tset, compute.TriangleGroups(res)); err != nil {
		return fmt.Errorf("triangle pass: %w", err)
	}
	if err := g.advance(TrianglesDispatched); err != nil {
		return err
	}

	err = r.Barrier(
		compute.Barrier{Resource: g.args, Src: compute.ScopeComputeWrite, Dst: compute.ScopeIndirectRead},
		compute.Barrier{Resource: g.tris, Src: compute.ScopeComputeWrite, Dst: compute.ScopeVertexRead},
	)
	if err != nil {
		return err
	}
	return g.advance(TrianglesBarrier)
}

func (g *Generator) readStats() (Stats, error) {
	words := make([]uint32, appendbuf.ArgsBufferWords)
	if err := g.dev.ReadBuffer(g.args, words); err != nil {
		return Stats{}, fmt.Errorf("reading draw arguments: %w", err)
	}
	args, err := appendbuf.ArgsFromWords(words)
	if err != nil {
		return Stats{}, err
	}
	requested, dropped, err := appendbuf.TotalsFromWords(words)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Vertices:  args.VertexCount,
		Capacity:  g.capacity,
		Requested: uint64(requested),
		Dropped:   uint64(dropped),
	}, nil
}

func (g *Generator) fail(err error) error {
	g.state.Store(uint32(Failed))
	g.result = nil
	g.log.Error("terrain generation failed", zap.Error(err))
	return err
}

// Result returns the output of the last cycle if it completed.
func (g *Generator) Result() (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result == nil {
		return nil, fmt.Errorf("%w: state %v", ErrNotReady, g.State())
	}
	return g.result, nil
}

// Draw records the indirect draw of the last completed cycle on r.
func (g *Generator) Draw(r compute.Recorder) error {
	if _, err := g.Result(); err != nil {
		return err
	}
	return r.DrawIndirect(g.tris, g.args)
}

// Vertices reads the vertex records of the last completed cycle back to the host.
func (g *Generator) Vertices() ([]vpack.Vertex, error) {
	res, err := g.Result()
	if err != nil {
		return nil, err
	}
	words := make([]uint32, 4*int(res.Stats.Vertices))
	if err := g.dev.ReadBuffer(g.tris, words); err != nil {
		return nil, err
	}
	return appendbuf.VerticesFromWords(words, int(res.Stats.Vertices)), nil
}

// Close releases the device if the generator created it.
func (g *Generator) Close() error {
	if g.ownsDev {
		return g.dev.Close()
	}
	return nil
}
