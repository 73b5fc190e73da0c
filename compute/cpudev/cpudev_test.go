package cpudev

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/soypat/isoterrain/compute"
)

// countKernel adds one to words[0] of the triangle slot per in-range invocation.
func countKernel(extent [3]int) KernelFunc {
	return func(b *Bound) (Invocation, error) {
		w, err := b.Words(compute.SlotTriangles)
		if err != nil {
			return nil, err
		}
		return func(gid [3]int) {
			if gid[0] >= extent[0] || gid[1] >= extent[1] || gid[2] >= extent[2] {
				return
			}
			atomic.AddUint32(&w[0], 1)
		}, nil
	}
}

var testKernel = compute.Kernel{Name: "count", Local: [3]uint32{4, 4, 4}, Writes: []int{compute.SlotTriangles}}

func newCounter(t *testing.T, extent [3]int, opts ...Option) (*Device, compute.Buffer, compute.Pipeline, *compute.BindingSet) {
	t.Helper()
	d := New(append([]Option{WithKernel("count", countKernel(extent))}, opts...)...)
	buf, err := d.NewBuffer("out", 4, compute.UsageStorage|compute.UsageTransferDst|compute.UsageVertex)
	if err != nil {
		t.Fatal(err)
	}
	p, err := d.NewPipeline(testKernel)
	if err != nil {
		t.Fatal(err)
	}
	set := compute.NewBindingSet()
	if err := set.Bind(compute.SlotTriangles, buf); err != nil {
		t.Fatal(err)
	}
	return d, buf, p, set
}

func TestDispatchCoversDomain(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		extent := [3]int{5, 9, 2}
		d, buf, p, set := newCounter(t, extent, WithWorkers(workers))
		r := d.Begin()
		if err := r.Dispatch(p, set, compute.Groups(extent, testKernel.Local)); err != nil {
			t.Fatal(err)
		}
		if err := d.Submit(context.Background(), r); err != nil {
			t.Fatal(err)
		}
		got := make([]uint32, 1)
		if err := d.ReadBuffer(buf, got); err != nil {
			t.Fatal(err)
		}
		if got[0] != 5*9*2 {
			t.Errorf("workers=%d: %d invocations, want %d", workers, got[0], 5*9*2)
		}
	}
}

func TestSubmitCanceled(t *testing.T) {
	extent := [3]int{64, 64, 64}
	d, _, p, set := newCounter(t, extent)
	r := d.Begin()
	if err := r.Dispatch(p, set, compute.Groups(extent, testKernel.Local)); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Submit(ctx, r); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestUnknownKernel(t *testing.T) {
	d := New()
	if _, err := d.NewPipeline(compute.DensityKernel); !errors.Is(err, compute.ErrUnknownKernel) {
		t.Errorf("got %v", err)
	}
}

func TestUsageViolations(t *testing.T) {
	d := New()
	storage, err := d.NewBuffer("storage", 8, compute.UsageStorage)
	if err != nil {
		t.Fatal(err)
	}
	r := d.Begin()
	if err := r.WriteBuffer(storage, []uint32{1}, compute.ScopeComputeRead); !errors.Is(err, compute.ErrUsage) {
		t.Errorf("upload without transfer usage: %v", err)
	}
	if err := d.Submit(context.Background(), r); !errors.Is(err, compute.ErrUsage) {
		t.Errorf("submit of poisoned recorder: %v", err)
	}
	r = d.Begin()
	if err := r.DrawIndirect(storage, storage); !errors.Is(err, compute.ErrUsage) {
		t.Errorf("draw from storage-only buffers: %v", err)
	}
}

func TestDrawHazardAndHook(t *testing.T) {
	extent := [3]int{2, 2, 2}
	var drawn uint32
	hook := func(vs []uint32, count, instances uint32) {
		drawn = count
		if len(vs) != 4*int(count) || instances != 1 {
			t.Errorf("draw of %d words, %d instances", len(vs), instances)
		}
	}
	d, buf, p, set := newCounter(t, extent, WithDrawFunc(hook))
	args, err := d.NewBuffer("args", 8, compute.UsageStorage|compute.UsageIndirect|compute.UsageTransferDst)
	if err != nil {
		t.Fatal(err)
	}

	r := d.Begin()
	if err := r.WriteBuffer(args, []uint32{1, 1, 0, 0}, compute.ScopeIndirectRead); err != nil {
		t.Fatal(err)
	}
	if err := r.Dispatch(p, set, [3]uint32{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawIndirect(buf, args); !errors.Is(err, compute.ErrHazard) {
		t.Fatalf("draw before barrier: %v", err)
	}

	r = d.Begin()
	if err := r.WriteBuffer(args, []uint32{1, 1, 0, 0}, compute.ScopeIndirectRead); err != nil {
		t.Fatal(err)
	}
	if err := r.Dispatch(p, set, [3]uint32{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	err = r.Barrier(compute.Barrier{Resource: buf, Src: compute.ScopeComputeWrite, Dst: compute.ScopeVertexRead})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.DrawIndirect(buf, args); err != nil {
		t.Fatal(err)
	}
	if err := d.Submit(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if drawn != 1 {
		t.Errorf("drew %d vertices", drawn)
	}
	if err := d.Submit(context.Background(), r); err == nil {
		t.Error("second submit of the same recorder succeeded")
	}
}

func TestClose(t *testing.T) {
	d := New()
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.NewBuffer("b", 1, compute.UsageStorage); err == nil {
		t.Error("allocation on closed device")
	}
	if err := d.Close(); err == nil {
		t.Error("double close succeeded")
	}
}
