package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// WriteBinarySTL writes tris to w in binary STL format. Degenerate
// triangles are written with a zero normal.
func WriteBinarySTL(w io.Writer, tris []ms3.Triangle) (int, error) {
	if len(tris) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	if int64(len(tris)) > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	var buf [stlHeaderSize]byte
	copy(buf[:], "isoterrain")
	binary.LittleEndian.PutUint32(buf[80:], uint32(len(tris)))
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	}
	for _, t := range tris {
		putVec(buf[0:], unitNormal(t))
		putVec(buf[12:], t[0])
		putVec(buf[24:], t[1])
		putVec(buf[36:], t[2])
		binary.LittleEndian.PutUint16(buf[48:], 0)
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// unitNormal returns the unit normal of t, or the zero vector when t has no
// area.
func unitNormal(t ms3.Triangle) ms3.Vec {
	n := t.Normal()
	l := ms3.Norm(n)
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return ms3.Vec{}
	}
	return ms3.Scale(1/l, n)
}

// ReadBinarySTL reads a binary STL stream. Vertices that are not finite
// are rejected, stored normals are ignored.
func ReadBinarySTL(r io.Reader) ([]ms3.Triangle, error) {
	var buf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(buf[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	tris := make([]ms3.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:stlTriangleSize]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		t := ms3.Triangle{getVec(buf[12:]), getVec(buf[24:]), getVec(buf[36:])}
		for _, v := range t {
			if badVec(v) {
				return nil, fmt.Errorf("STL triangle %d: inf/NaN vertex", i)
			}
		}
		tris = append(tris, t)
	}
	return tris, nil
}

// CreateSTL writes tris to a new STL file at path.
func CreateSTL(path string, tris []ms3.Triangle) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := WriteBinarySTL(fp, tris); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func putVec(b []byte, v ms3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	_ = b[11]
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func badVec(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}
