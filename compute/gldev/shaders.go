package gldev

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"

	"github.com/soypat/isoterrain/celltable"
	"github.com/soypat/isoterrain/compute"
	"github.com/soypat/isoterrain/density"
)

//go:embed kernels/*.glsl
var kernelFS embed.FS

const glslVersion = "#version 460\n"

// appendUintDefine appends a preprocessor definition of an unsigned constant.
func appendUintDefine(b []byte, name string, v uint32) []byte {
	b = append(b, "#define "...)
	b = append(b, name...)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(v), 10)
	return append(b, 'u', '\n')
}

func appendIntDefine(b []byte, name string, v int) []byte {
	b = append(b, "#define "...)
	b = append(b, name...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(v), 10)
	return append(b, '\n')
}

// appendDoubleDefine appends a double precision constant, always written
// with a decimal point so GLSL does not parse it as an integer.
func appendDoubleDefine(b []byte, name string, v float64) []byte {
	b = append(b, "#define "...)
	b = append(b, name...)
	b = append(b, ' ')
	start := len(b)
	b = strconv.AppendFloat(b, v, 'f', -1, 64)
	if bytes.IndexByte(b[start:], '.') < 0 {
		b = append(b, '.', '0')
	}
	return append(b, "LF\n"...)
}

func appendLocalSize(b []byte, local [3]uint32) []byte {
	b = append(b, "layout(local_size_x = "...)
	b = strconv.AppendUint(b, uint64(local[0]), 10)
	b = append(b, ", local_size_y = "...)
	b = strconv.AppendUint(b, uint64(local[1]), 10)
	b = append(b, ", local_size_z = "...)
	b = strconv.AppendUint(b, uint64(local[2]), 10)
	return append(b, ") in;\n"...)
}

// kernelSource returns the combined glgl source of kernel k: the compute
// section header, version, constants shared with the host code, the
// common declarations and the kernel body.
func kernelSource(k compute.Kernel) ([]byte, error) {
	body, err := kernelFS.ReadFile("kernels/" + k.Name + ".glsl")
	if err != nil {
		return nil, fmt.Errorf("%w: no GLSL source for %q", compute.ErrUnknownKernel, k.Name)
	}
	common, err := kernelFS.ReadFile("kernels/common.glsl")
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(body)+len(common)+512)
	b = append(b, "#shader compute\n"...)
	b = append(b, glslVersion...)
	b = appendLocalSize(b, k.Local)
	b = appendIntDefine(b, "MAX_OCTAVES", density.MaxOctaves)
	b = appendIntDefine(b, "NOISE_TEXTURES", compute.NoiseArrayLen)
	b = appendUintDefine(b, "MAX_VERTICES", celltable.MaxVertices)
	b = appendUintDefine(b, "CELL_STRIDE", celltable.CellWordsLen/celltable.MaxClasses)
	b = appendDoubleDefine(b, "FIXED_ONE", 1<<31)
	b = append(b, common...)
	b = append(b, '\n')
	b = append(b, body...)
	return b, nil
}
