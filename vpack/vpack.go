// Package vpack encodes the per-vertex records written to the triangle
// buffer. A record is the bit pattern of one 4-component vector: the packed
// format keeps a fixed-point position in the first two words and the x and y
// components of the unit normal in the last two.
package vpack

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Vertex is one record of the triangle buffer, as four 32-bit words.
type Vertex [4]uint32

// Format encodes vertex attributes into records. A generator uses a single
// Format for every vertex it writes.
type Format interface {
	Encode(pos, normal ms3.Vec) Vertex
	Decode(v Vertex) (pos, normal ms3.Vec)
	// HasNormals reports whether Decode recovers a normal.
	HasNormals() bool
	String() string
}

// Position quantization steps after decoding. X and Y keep 21 bits of the
// 32-bit fixed-point value, Z keeps 20.
const (
	QuantumXY = 1.0 / (1 << 20)
	QuantumZ  = 1.0 / (1 << 19)
)

const (
	fixedOne = 1 << 31
	maskXY   = 1<<21 - 1
	maskZ    = 1<<20 - 1
)

// toFixed converts v to 1.31 fixed point. Values outside [-1,1) saturate.
func toFixed(v float32) int64 {
	f := float64(v)*fixedOne + 0.5
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int64(int32(f)) // Truncates toward zero.
}

// EncodePosition packs p, with components in [-1,1], into two words holding
// the top 21, 21 and 20 bits of the x, y and z fixed-point values.
func EncodePosition(p ms3.Vec) (lo, hi uint32) {
	x := (toFixed(p.X) >> 11) & maskXY
	y := (toFixed(p.Y) >> 11) & maskXY
	z := (toFixed(p.Z) >> 12) & maskZ
	packed := uint64(x) | uint64(y)<<21 | uint64(z)<<42
	return uint32(packed), uint32(packed >> 32)
}

// DecodePosition inverts EncodePosition up to the quantization step.
func DecodePosition(lo, hi uint32) ms3.Vec {
	packed := uint64(hi)<<32 | uint64(lo)
	x := uint32(packed&maskXY) << 11
	y := uint32(packed>>21&maskXY) << 11
	z := uint32(packed>>42&maskZ) << 12
	return ms3.Vec{
		X: float32(float64(int32(x)) / fixedOne),
		Y: float32(float64(int32(y)) / fixedOne),
		Z: float32(float64(int32(z)) / fixedOne),
	}
}

// EncodeNormal stores the x and y components of a unit normal.
func EncodeNormal(n ms3.Vec) (x, y uint32) {
	return math.Float32bits(n.X), math.Float32bits(n.Y)
}

// DecodeNormal reconstructs a unit normal from its x and y components. The
// sign of z is not stored and is always returned non-negative.
func DecodeNormal(x, y uint32) ms3.Vec {
	n := ms3.Vec{X: math.Float32frombits(x), Y: math.Float32frombits(y)}
	zz := 1 - (n.X*n.X + n.Y*n.Y)
	n.Z = math32.Sqrt(math32.Max(0, math32.Min(1, zz)))
	return n
}

// Packed is the default fixed-point format.
type Packed struct{}

func (Packed) Encode(pos, normal ms3.Vec) Vertex {
	var v Vertex
	v[0], v[1] = EncodePosition(pos)
	v[2], v[3] = EncodeNormal(normal)
	return v
}

func (Packed) Decode(v Vertex) (pos, normal ms3.Vec) {
	return DecodePosition(v[0], v[1]), DecodeNormal(v[2], v[3])
}

func (Packed) HasNormals() bool { return true }
func (Packed) String() string   { return "packed" }

// Unpacked stores the position as three float32 values followed by 1. It
// carries no normal.
type Unpacked struct{}

func (Unpacked) Encode(pos, _ ms3.Vec) Vertex {
	return Vertex{math.Float32bits(pos.X), math.Float32bits(pos.Y), math.Float32bits(pos.Z), math.Float32bits(1)}
}

func (Unpacked) Decode(v Vertex) (pos, normal ms3.Vec) {
	pos = ms3.Vec{X: math.Float32frombits(v[0]), Y: math.Float32frombits(v[1]), Z: math.Float32frombits(v[2])}
	return pos, ms3.Vec{}
}

func (Unpacked) HasNormals() bool { return false }
func (Unpacked) String() string   { return "unpacked" }

// ParseFormat returns the format named by s, either "packed" or "unpacked".
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "packed":
		return Packed{}, true
	case "unpacked":
		return Unpacked{}, true
	}
	return nil, false
}
