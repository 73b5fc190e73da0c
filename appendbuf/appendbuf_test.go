package appendbuf

import (
	"sort"
	"sync"
	"testing"

	"github.com/soypat/isoterrain/vpack"
)

func TestCursorConcurrentNoOverlap(t *testing.T) {
	const (
		workers  = 16
		perGroup = 500
		capacity = workers * perGroup * 6
	)
	var count uint32
	c := NewCursor(&count, capacity)
	starts := make([][]uint32, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perGroup; i++ {
				n := uint32(3 * (1 + (w+i)%2)) // 3 or 6 slots.
				start, ok := c.Reserve(n)
				if !ok {
					t.Errorf("reservation of %d failed at %d", n, start)
					return
				}
				starts[w] = append(starts[w], start, n)
			}
		}(w)
	}
	wg.Wait()

	type span struct{ start, n uint32 }
	var spans []span
	var total uint32
	for _, s := range starts {
		for i := 0; i < len(s); i += 2 {
			spans = append(spans, span{s[i], s[i+1]})
			total += s[i+1]
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	var next uint32
	for _, s := range spans {
		if s.start != next {
			t.Fatalf("gap or overlap at %d, expected %d", s.start, next)
		}
		next += s.n
	}
	if count != total || c.Len() != total {
		t.Errorf("cursor %d, claimed %d", count, total)
	}
	if st := c.Stats(); st.Requested != uint64(total) || st.Overflowed() {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestCursorClampsAtCapacity(t *testing.T) {
	const capacity = 100
	var count uint32
	c := NewCursor(&count, capacity)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				c.Reserve(3)
			}
		}()
	}
	wg.Wait()
	st := c.Stats()
	if count > capacity {
		t.Fatalf("cursor %d exceeded capacity %d", count, capacity)
	}
	if count != 99 {
		t.Errorf("expected cursor to stop at 99, the last multiple of 3 that fits, got %d", count)
	}
	if st.Requested != 8*50*3 || st.Dropped != st.Requested-uint64(count) {
		t.Errorf("stats do not add up: %+v", st)
	}
	if !st.Overflowed() {
		t.Error("overflow not reported")
	}
}

func TestCursorExactFit(t *testing.T) {
	var count uint32
	c := NewCursor(&count, 12)
	for i := 0; i < 4; i++ {
		if _, ok := c.Reserve(3); !ok {
			t.Fatalf("reservation %d should fit", i)
		}
	}
	if c.Stats().Overflowed() {
		t.Error("exact fit reported as overflow")
	}
	if start, ok := c.Reserve(3); ok || start != 12 {
		t.Errorf("reservation past capacity: start=%d ok=%v", start, ok)
	}
}

func TestBufferAppend(t *testing.T) {
	var args = ResetArgs()
	words := make([]uint32, 4*6)
	b, err := NewBuffer(words, &args.VertexCount)
	if err != nil {
		t.Fatal(err)
	}
	tri := []vpack.Vertex{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	if !b.Append(tri) || !b.Append(tri) {
		t.Fatal("append within capacity failed")
	}
	if b.Append(tri) {
		t.Fatal("append beyond capacity succeeded")
	}
	if args.VertexCount != 6 || b.Len() != 6 || b.Capacity() != 6 {
		t.Errorf("count %d len %d cap %d", args.VertexCount, b.Len(), b.Capacity())
	}
	got := b.Vertices()
	for i, v := range got {
		if v != tri[i%3] {
			t.Errorf("vertex %d = %v, want %v", i, v, tri[i%3])
		}
	}
	if b.Vertex(4) != tri[1] {
		t.Error("Vertex(4) mismatch")
	}
	if _, err := NewBuffer(make([]uint32, 5), &args.VertexCount); err == nil {
		t.Error("unaligned storage accepted")
	}
}

func TestIndirectArgs(t *testing.T) {
	a := ResetArgs()
	if a != (IndirectArgs{VertexCount: 0, InstanceCount: 1}) {
		t.Errorf("reset args %+v", a)
	}
	a.VertexCount = 54
	back, err := ArgsFromWords(a.Words())
	if err != nil || back != a {
		t.Errorf("args round trip: %+v %v", back, err)
	}
	if _, err := ArgsFromWords([]uint32{1, 2}); err == nil {
		t.Error("short args accepted")
	}
}

func TestCapacityBounds(t *testing.T) {
	res := [3]int{256, 256, 256}
	if got := WorstCaseVertices(res); got != 15*255*255*255 {
		t.Errorf("worst case %d", got)
	}
	if got := HeuristicVertices(res); got != 5*256*256*256 {
		t.Errorf("heuristic %d", got)
	}
	safe, worst := CheckCapacity(res, HeuristicVertices(res))
	if safe {
		t.Errorf("heuristic capacity reported safe against worst case %d", worst)
	}
	if safe, _ := CheckCapacity([3]int{4, 4, 4}, 405); !safe {
		t.Error("exact worst case capacity reported unsafe")
	}
	if WorstCaseVertices([3]int{1, 4, 4}) != 0 {
		t.Error("degenerate resolution should have no cells")
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Clamp, Fail} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p, got, err)
		}
	}
	if _, err := ParsePolicy("grow"); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestDeviceBufferTotals(t *testing.T) {
	args := ResetArgs().BufferWords()
	if len(args) != ArgsBufferWords || args[1] != 1 {
		t.Fatalf("argument buffer %v", args)
	}
	b, err := NewDeviceBuffer(make([]uint32, 4*6), args)
	if err != nil {
		t.Fatal(err)
	}
	tri := []vpack.Vertex{{1}, {2}, {3}}
	b.Append(tri)
	b.Append(tri)
	b.Append(tri)
	requested, dropped, err := TotalsFromWords(args)
	if err != nil {
		t.Fatal(err)
	}
	if args[0] != 6 || requested != 9 || dropped != 3 {
		t.Errorf("count %d requested %d dropped %d", args[0], requested, dropped)
	}
	if _, err := NewDeviceBuffer(make([]uint32, 4), args[:ArgsWords]); err == nil {
		t.Error("short argument buffer accepted")
	}
}
