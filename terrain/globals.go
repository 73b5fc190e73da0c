package terrain

import (
	"fmt"
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/vpack"
)

// Layout of the std140 uniform block bound at compute.SlotGlobals:
//
//	vec3  Center      words 0-2
//	vec3  Radius      words 4-6
//	uvec3 Resolution  words 8-10
//	float Bias        word 11
//	uint  OctaveCount word 12
//	uint  Format      word 13, 0 packed, 1 unpacked
//	vec4  Octaves[8]  words 16-47, (frequency, amplitude, texture, 0)
const (
	wordCenter      = 0
	wordRadius      = 4
	wordResolution  = 8
	wordBias        = 11
	wordOctaveCount = 12
	wordFormat      = 13
	wordOctaves     = 16
	// GlobalsWords is the size of the uniform block in 32-bit words.
	GlobalsWords = wordOctaves + 4*density.MaxOctaves
)

const (
	formatPacked   = 0
	formatUnpacked = 1
)

func putVec(w []uint32, v ms3.Vec) {
	w[0] = math.Float32bits(v.X)
	w[1] = math.Float32bits(v.Y)
	w[2] = math.Float32bits(v.Z)
}

func getVec(w []uint32) ms3.Vec {
	return ms3.Vec{X: math.Float32frombits(w[0]), Y: math.Float32frombits(w[1]), Z: math.Float32frombits(w[2])}
}

// EncodeGlobals lays out the kernel parameters as the uniform block.
func EncodeGlobals(p density.Params, f vpack.Format) ([]uint32, error) {
	if len(p.Octaves) > density.MaxOctaves {
		return nil, fmt.Errorf("%d octaves exceed maximum of %d", len(p.Octaves), density.MaxOctaves)
	}
	w := make([]uint32, GlobalsWords)
	putVec(w[wordCenter:], p.Center)
	putVec(w[wordRadius:], p.Radius)
	for i, r := range p.Resolution {
		w[wordResolution+i] = uint32(r)
	}
	w[wordBias] = math.Float32bits(p.Bias)
	w[wordOctaveCount] = uint32(len(p.Octaves))
	switch f.(type) {
	case vpack.Packed, nil:
		w[wordFormat] = formatPacked
	case vpack.Unpacked:
		w[wordFormat] = formatUnpacked
	default:
		return nil, fmt.Errorf("vertex format %v has no device encoding", f)
	}
	for i, o := range p.Octaves {
		b := wordOctaves + 4*i
		w[b] = math.Float32bits(o.Frequency)
		w[b+1] = math.Float32bits(o.Amplitude)
		w[b+2] = math.Float32bits(float32(o.Texture))
	}
	return w, nil
}

// DecodeGlobals reads kernel parameters back from a uniform block.
func DecodeGlobals(w []uint32) (density.Params, vpack.Format, error) {
	var p density.Params
	if len(w) < GlobalsWords {
		return p, nil, fmt.Errorf("uniform block of %d words, want %d", len(w), GlobalsWords)
	}
	p.Center = getVec(w[wordCenter:])
	p.Radius = getVec(w[wordRadius:])
	for i := range p.Resolution {
		p.Resolution[i] = int(w[wordResolution+i])
	}
	p.Bias = math.Float32frombits(w[wordBias])
	n := int(w[wordOctaveCount])
	if n > density.MaxOctaves {
		return p, nil, fmt.Errorf("uniform block holds %d octaves", n)
	}
	p.Octaves = make([]density.Octave, n)
	for i := range p.Octaves {
		b := wordOctaves + 4*i
		p.Octaves[i] = density.Octave{
			Frequency: math.Float32frombits(w[b]),
			Amplitude: math.Float32frombits(w[b+1]),
			Texture:   int(math.Float32frombits(w[b+2])),
		}
	}
	var f vpack.Format
	switch w[wordFormat] {
	case formatPacked:
		f = vpack.Packed{}
	case formatUnpacked:
		f = vpack.Unpacked{}
	default:
		return p, nil, fmt.Errorf("unknown vertex format %d", w[wordFormat])
	}
	return p, f, nil
}
