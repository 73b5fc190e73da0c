// Package config handles isoterrain run configuration loading and saving.
package config

import (
	"fmt"
	"time"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isoterrain/appendbuf"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/internal/logger"
	"github.com/soypat/isoterrain/terrain"
	"github.com/soypat/isoterrain/vpack"
)

// Config holds all settings of a generation run.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Compute ComputeConfig `yaml:"compute"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the sampled volume and triangle buffer settings.
type TerrainConfig struct {
	Resolution [3]int     `yaml:"resolution"`
	Center     [3]float32 `yaml:"center"`
	Radius     [3]float32 `yaml:"radius"`
	Bias       float32    `yaml:"bias"`
	Capacity   uint64     `yaml:"capacity"` // Vertices, 0 selects the heuristic.
	Policy     string     `yaml:"policy"`   // clamp or fail
	Format     string     `yaml:"format"`   // packed or unpacked
}

// NoiseConfig holds the noise textures and octave stack.
type NoiseConfig struct {
	Size    int              `yaml:"size"`
	Seed    uint64           `yaml:"seed"`
	Octaves []density.Octave `yaml:"octaves"`
}

// OutputConfig holds output file paths. Empty paths disable the output.
type OutputConfig struct {
	STL         string `yaml:"stl"`
	PNG         string `yaml:"png"`
	PreviewSize int    `yaml:"preview_size"`
	Histogram   string `yaml:"histogram"`
}

// ComputeConfig selects the device running the kernels.
type ComputeConfig struct {
	Backend string        `yaml:"backend"` // cpu or gl
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config generating a 128³ terrain on the host.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Resolution: [3]int{128, 128, 128},
			Radius:     [3]float32{5, 5, 5},
			Bias:       density.DefaultBias,
			Policy:     "clamp",
			Format:     "packed",
		},
		Noise: NoiseConfig{
			Size:    density.DefaultNoiseSize,
			Octaves: density.DefaultOctaves(),
		},
		Output: OutputConfig{
			STL:         "terrain.stl",
			PreviewSize: 512,
		},
		Compute: ComputeConfig{
			Backend: "cpu",
			Timeout: time.Minute,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func vec(v [3]float32) ms3.Vec { return ms3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// ToTerrain converts c to a validated generator configuration.
func (c *Config) ToTerrain() (terrain.Config, error) {
	policy, err := appendbuf.ParsePolicy(c.Terrain.Policy)
	if err != nil {
		return terrain.Config{}, err
	}
	format, ok := vpack.ParseFormat(c.Terrain.Format)
	if !ok {
		return terrain.Config{}, fmt.Errorf("unknown vertex format %q", c.Terrain.Format)
	}
	tc := terrain.Config{
		Resolution: c.Terrain.Resolution,
		Center:     vec(c.Terrain.Center),
		Radius:     vec(c.Terrain.Radius),
		Octaves:    c.Noise.Octaves,
		Bias:       c.Terrain.Bias,
		NoiseSize:  c.Noise.Size,
		NoiseSeed:  c.Noise.Seed,
		Capacity:   c.Terrain.Capacity,
		Policy:     policy,
		Format:     format,
		Workers:    c.Compute.Workers,
	}
	if err := tc.Validate(); err != nil {
		return terrain.Config{}, err
	}
	return tc, nil
}

// Validate checks fields not covered by the terrain configuration.
func (c *Config) Validate() error {
	switch c.Compute.Backend {
	case "cpu", "gl":
	default:
		return fmt.Errorf("unknown compute backend %q", c.Compute.Backend)
	}
	if c.Compute.Timeout < 0 {
		return fmt.Errorf("negative timeout %v", c.Compute.Timeout)
	}
	if c.Output.PNG != "" && c.Output.PreviewSize <= 0 {
		return fmt.Errorf("invalid preview size %d", c.Output.PreviewSize)
	}
	_, err := c.ToTerrain()
	return err
}

// Logger returns the logger settings of c. Console output is always on.
func (c *Config) Logger() logger.Config {
	lc := logger.Config{Level: c.Logging.Level, Console: true}
	if c.Logging.LogFile != "" {
		lc.File = logger.DefaultFileConfig(c.Logging.LogFile)
	}
	return lc
}
