// Package appendbuf implements the fixed-capacity triangle buffer cells
// append to concurrently, and the indirect draw argument whose vertex count
// doubles as the buffer's append cursor.
package appendbuf

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/soypat/isoterrain/vpack"
)

// IndirectArgs is the argument block of a non-indexed indirect draw.
type IndirectArgs struct {
	VertexCount   uint32
	InstanceCount uint32
	StartVertex   uint32
	StartInstance uint32
}

// ArgsWords is the size of IndirectArgs in 32-bit words.
const ArgsWords = 4

// ArgsBufferWords is the size of the device argument buffer: the argument
// block followed by the requested and dropped vertex totals of the cycle.
const ArgsBufferWords = 8

const (
	wordRequested = ArgsWords
	wordDropped   = ArgsWords + 1
)

// ResetArgs returns the argument block every generation cycle starts from.
func ResetArgs() IndirectArgs { return IndirectArgs{InstanceCount: 1} }

// Words returns the device layout of a.
func (a IndirectArgs) Words() []uint32 {
	return []uint32{a.VertexCount, a.InstanceCount, a.StartVertex, a.StartInstance}
}

// BufferWords returns the device argument buffer holding a with zeroed totals.
func (a IndirectArgs) BufferWords() []uint32 {
	w := make([]uint32, ArgsBufferWords)
	copy(w, a.Words())
	return w
}

// TotalsFromWords returns the requested and dropped vertex totals stored
// after the argument block of a device argument buffer.
func TotalsFromWords(w []uint32) (requested, dropped uint32, err error) {
	if len(w) < ArgsBufferWords {
		return 0, 0, fmt.Errorf("argument buffer needs %d words, got %d", ArgsBufferWords, len(w))
	}
	return w[wordRequested], w[wordDropped], nil
}

// ArgsFromWords decodes an argument block from device layout.
func ArgsFromWords(w []uint32) (IndirectArgs, error) {
	if len(w) < ArgsWords {
		return IndirectArgs{}, fmt.Errorf("indirect args need %d words, got %d", ArgsWords, len(w))
	}
	return IndirectArgs{VertexCount: w[0], InstanceCount: w[1], StartVertex: w[2], StartInstance: w[3]}, nil
}

// Policy selects what happens when a reservation does not fit.
type Policy uint8

const (
	// Clamp drops the reservation and lets generation continue.
	Clamp Policy = iota
	// Fail drops the reservation and marks the cycle as failed.
	Fail
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Fail:
		return "fail"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy parses "clamp" or "fail".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "clamp":
		return Clamp, nil
	case "fail":
		return Fail, nil
	}
	return 0, fmt.Errorf("unknown overflow policy %q", s)
}

// Cursor is a lock-free bump allocator over a shared vertex counter. The
// counter never exceeds the capacity and no two successful reservations overlap.
type Cursor struct {
	count     *uint32
	capacity  uint32
	requested atomic.Uint64
	dropped   atomic.Uint64
	// Device-visible copies of the totals, nil when not mirrored.
	devRequested, devDropped *uint32
}

// NewCursor returns a cursor that allocates by advancing *count.
func NewCursor(count *uint32, capacity uint32) *Cursor {
	return &Cursor{count: count, capacity: capacity}
}

// Reserve claims n consecutive slots and returns the first. ok is false if
// the slots do not fit, in which case nothing is claimed.
func (c *Cursor) Reserve(n uint32) (start uint32, ok bool) {
	c.requested.Add(uint64(n))
	if c.devRequested != nil {
		atomic.AddUint32(c.devRequested, n)
	}
	for {
		cur := atomic.LoadUint32(c.count)
		if cur > c.capacity || c.capacity-cur < n {
			c.dropped.Add(uint64(n))
			if c.devDropped != nil {
				atomic.AddUint32(c.devDropped, n)
			}
			return cur, false
		}
		if atomic.CompareAndSwapUint32(c.count, cur, cur+n) {
			return cur, true
		}
	}
}

// Len returns the number of slots claimed so far.
func (c *Cursor) Len() uint32 { return atomic.LoadUint32(c.count) }

// Capacity returns the number of slots available.
func (c *Cursor) Capacity() uint32 { return c.capacity }

// Stats summarizes cursor activity.
type Stats struct {
	Vertices  uint32
	Capacity  uint32
	Requested uint64
	Dropped   uint64
}

// Overflowed reports whether any reservation was dropped.
func (s Stats) Overflowed() bool { return s.Dropped > 0 }

// Stats returns the current counters.
func (c *Cursor) Stats() Stats {
	return Stats{
		Vertices:  c.Len(),
		Capacity:  c.capacity,
		Requested: c.requested.Load(),
		Dropped:   c.dropped.Load(),
	}
}

// Buffer is a fixed capacity vertex store laid out as 4 words per vertex.
type Buffer struct {
	words  []uint32
	cursor *Cursor
}

// NewBuffer wraps vertex storage and the counter word that tracks its length.
// The capacity is len(words)/4 vertices.
func NewBuffer(words []uint32, count *uint32) (*Buffer, error) {
	if count == nil {
		return nil, errors.New("nil vertex counter")
	}
	if len(words)%4 != 0 {
		return nil, fmt.Errorf("vertex storage of %d words is not a multiple of 4", len(words))
	}
	return &Buffer{words: words, cursor: NewCursor(count, uint32(len(words)/4))}, nil
}

// NewDeviceBuffer wraps vertex storage and a device argument buffer of
// ArgsBufferWords words. The vertex count word is the cursor and the totals
// following the argument block are kept up to date as cells append.
func NewDeviceBuffer(words, args []uint32) (*Buffer, error) {
	if len(args) < ArgsBufferWords {
		return nil, fmt.Errorf("argument buffer needs %d words, got %d", ArgsBufferWords, len(args))
	}
	b, err := NewBuffer(words, &args[0])
	if err != nil {
		return nil, err
	}
	b.cursor.devRequested = &args[wordRequested]
	b.cursor.devDropped = &args[wordDropped]
	return b, nil
}

// Append writes vs contiguously at a freshly reserved offset. It returns
// false and writes nothing if vs does not fit.
func (b *Buffer) Append(vs []vpack.Vertex) bool {
	start, ok := b.cursor.Reserve(uint32(len(vs)))
	if !ok {
		return false
	}
	dst := b.words[4*int(start):]
	for i, v := range vs {
		copy(dst[4*i:4*i+4], v[:])
	}
	return true
}

// Len returns the number of vertices appended.
func (b *Buffer) Len() int { return int(b.cursor.Len()) }

// Capacity returns the maximum number of vertices.
func (b *Buffer) Capacity() int { return int(b.cursor.Capacity()) }

// Stats returns the append counters.
func (b *Buffer) Stats() Stats { return b.cursor.Stats() }

// Vertex returns the i'th appended vertex.
func (b *Buffer) Vertex(i int) vpack.Vertex {
	var v vpack.Vertex
	copy(v[:], b.words[4*i:4*i+4])
	return v
}

// Vertices returns a copy of the appended vertices.
func (b *Buffer) Vertices() []vpack.Vertex {
	return VerticesFromWords(b.words, b.Len())
}

// VerticesFromWords copies the first n vertices out of 4-word storage.
func VerticesFromWords(words []uint32, n int) []vpack.Vertex {
	if limit := len(words) / 4; n > limit {
		n = limit
	}
	vs := make([]vpack.Vertex, n)
	for i := range vs {
		copy(vs[i][:], words[4*i:4*i+4])
	}
	return vs
}

// WorstCaseVertices returns the vertex count that can never be exceeded for
// a volume of the given resolution: every cell emitting 5 triangles.
func WorstCaseVertices(res [3]int) uint64 {
	const perCell = 15
	return perCell * cells(res)
}

// HeuristicVertices returns a capacity of 5 vertices per sample, sufficient
// for natural terrain but not for adversarial fields.
func HeuristicVertices(res [3]int) uint64 {
	return 5 * uint64(res[0]) * uint64(res[1]) * uint64(res[2])
}

func cells(res [3]int) uint64 {
	if res[0] < 2 || res[1] < 2 || res[2] < 2 {
		return 0
	}
	return uint64(res[0]-1) * uint64(res[1]-1) * uint64(res[2]-1)
}

// CheckCapacity reports whether capacity can hold the worst case output of
// a volume with resolution res.
func CheckCapacity(res [3]int, capacity uint64) (safe bool, worst uint64) {
	worst = WorstCaseVertices(res)
	return capacity >= worst, worst
}
