package main

import (
	"fmt"
	"runtime"

	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/isoterrain/compute/gldev"
	"github.com/soypat/isoterrain/terrain"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread() // GL calls must come from the main thread.
}

// newGenerator returns a generator on the named backend and the function
// releasing it.
func newGenerator(backend string, tc terrain.Config, log *zap.Logger) (*terrain.Generator, func(), error) {
	switch backend {
	case "cpu":
		gen, err := terrain.NewCPU(tc, log)
		if err != nil {
			return nil, nil, err
		}
		return gen, func() { gen.Close() }, nil
	case "gl":
		_, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
			Title:   "isoterrain",
			Version: [2]int{4, 6},
			Width:   1,
			Height:  1,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
		}
		dev := gldev.New(gldev.WithLogger(log.Named("gl")))
		gen, err := terrain.New(dev, tc, log)
		if err != nil {
			dev.Close()
			terminate()
			return nil, nil, err
		}
		return gen, func() {
			gen.Close()
			dev.Close()
			terminate()
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown compute backend %q", backend)
}
