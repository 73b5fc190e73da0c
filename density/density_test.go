package density

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func TestVolumeIndexing(t *testing.T) {
	vol, err := NewVolume([3]int{3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	vol.Set(2, 3, 4, 7)
	if got := vol.Data()[2+3*(3+4*4)]; got != 7 {
		t.Errorf("x fastest layout violated, got %v", got)
	}
	if got := vol.AtClamped(5, 9, 9); got != 7 {
		t.Errorf("clamped read of far corner = %v", got)
	}
	vol.Set(0, 0, 0, -3)
	if got := vol.AtClamped(-1, -4, 0); got != -3 {
		t.Errorf("clamped read of near corner = %v", got)
	}
	if vol.In(3, 0, 0) || !vol.In(2, 3, 4) {
		t.Error("In bounds check wrong")
	}
}

func TestBadExtent(t *testing.T) {
	for _, ext := range [][3]int{{1, 4, 4}, {4, 0, 4}, {4, 4, -2}} {
		_, err := NewVolume(ext)
		if !errors.Is(err, ErrBadResolution) {
			t.Errorf("extent %v: got err %v", ext, err)
		}
	}
	if _, err := VolumeFrom([3]int{2, 2, 2}, make([]float32, 7)); err == nil {
		t.Error("short backing storage accepted")
	}
}

func TestNoiseTexture(t *testing.T) {
	a, err := NewNoiseTexture(DefaultNoiseSize, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewNoiseTexture(DefaultNoiseSize, 42)
	c, _ := NewNoiseTexture(DefaultNoiseSize, 43)
	same, differ := true, false
	for i, v := range a.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("texel %d out of [0,1): %v", i, v)
		}
		same = same && v == b.Data()[i]
		differ = differ || v != c.Data()[i]
	}
	if !same {
		t.Error("same seed produced different textures")
	}
	if !differ {
		t.Error("different seeds produced identical textures")
	}

	// Sampling at a texel centre returns the texel.
	const n = DefaultNoiseSize
	uvw := ms3.Vec{X: (3 + 0.5) / n, Y: (5 + 0.5) / n, Z: (7 + 0.5) / n}
	if got, want := a.Sample(uvw), a.texel(3, 5, 7); math32.Abs(got-want) > 1e-6 {
		t.Errorf("centre sample %v, want %v", got, want)
	}
	// Repeat addressing: shifting by whole periods does not change the value.
	for _, p := range []ms3.Vec{{X: 0.13, Y: 0.77, Z: 0.4}, {X: -0.3, Y: 2.2, Z: 9.53}} {
		shifted := ms3.Add(p, ms3.Vec{X: 1, Y: -2, Z: 3})
		if d := math32.Abs(a.Sample(p) - a.Sample(shifted)); d > 1e-4 {
			t.Errorf("sample at %v not periodic: diff %v", p, d)
		}
	}
	// Halfway between two texel centres along x.
	mid := ms3.Vec{X: 4.0 / n, Y: (5 + 0.5) / n, Z: (7 + 0.5) / n}
	want := (a.texel(3, 5, 7) + a.texel(4, 5, 7)) / 2
	if got := a.Sample(mid); math32.Abs(got-want) > 1e-5 {
		t.Errorf("linear filter got %v, want %v", got, want)
	}
}

func TestFieldGroundPlane(t *testing.T) {
	p := Params{
		Resolution: [3]int{4, 4, 4},
		Center:     ms3.Vec{X: 2, Y: 2, Z: 2},
		Radius:     ms3.Vec{X: 2, Y: 2, Z: 2},
		Bias:       -1.5,
	}
	f, err := NewField(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	vol, _ := NewVolume(p.Resolution)
	if err := f.Fill(vol); err != nil {
		t.Fatal(err)
	}
	wantY := [4]float32{1.5, 0.5, -0.5, -1.5}
	for z := 0; z < 4; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if got := vol.At(x, y, z); got != wantY[y] {
					t.Fatalf("density at %d,%d,%d = %v, want %v", x, y, z, got, wantY[y])
				}
			}
		}
	}
}

func TestFieldOutOfRangeSkipped(t *testing.T) {
	p := Params{Resolution: [3]int{2, 2, 2}, Radius: ms3.Vec{X: 1, Y: 1, Z: 1}}
	f, err := NewField(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	vol, _ := NewVolume(p.Resolution)
	for i := range vol.Data() {
		vol.Data()[i] = 99
	}
	f.Invoke(vol, [3]int{2, 0, 0})
	f.Invoke(vol, [3]int{0, 3, 0})
	f.Invoke(vol, [3]int{1, 1, 2})
	for i, v := range vol.Data() {
		if v != 99 {
			t.Errorf("sample %d written by out of range invocation", i)
		}
	}
}

func TestFieldDefaultNoise(t *testing.T) {
	p := DefaultParams()
	p.Resolution = [3]int{8, 8, 8}
	noise, err := NoiseSet(NumNoiseTextures, DefaultNoiseSize, 1)
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewField(p, noise)
	if err != nil {
		t.Fatal(err)
	}
	// Octave amplitudes sum to 5.5 and noise lies in [0,1).
	var ampSum float32
	for _, o := range p.Octaves {
		ampSum += o.Amplitude
	}
	for _, gid := range [][3]int{{0, 0, 0}, {3, 4, 5}, {7, 7, 7}} {
		uv := f.Uv(gid)
		base := -(uv.Y * p.Radius.Y) - p.Bias
		d := f.Sample(gid)
		if d < base-1e-4 || d > base+ampSum+1e-4 {
			t.Errorf("sample at %v = %v outside [%v, %v]", gid, d, base, base+ampSum)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	good := DefaultParams()
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}
	tooMany := good
	tooMany.Octaves = append(DefaultOctaves(), Octave{Frequency: 1, Amplitude: 1})
	badTex := good
	badTex.Octaves = []Octave{{Texture: 4, Frequency: 1, Amplitude: 1}}
	badRadius := good
	badRadius.Radius.Y = 0
	for name, p := range map[string]Params{"octaves": tooMany, "texture": badTex, "radius": badRadius} {
		if err := p.Validate(); err == nil {
			t.Errorf("%s: invalid params accepted", name)
		}
	}
	if _, err := NewField(good, nil); err == nil {
		t.Error("field without noise textures accepted")
	}
}
