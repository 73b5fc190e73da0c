package config

import "flag"

// Flags holds command line overrides. Zero values leave the loaded
// configuration untouched.
type Flags struct {
	Config    string
	Debug     bool
	Backend   string
	Res       int
	Seed      uint64
	Workers   int
	Capacity  uint64
	Policy    string
	Format    string
	STL       string
	PNG       string
	Histogram string
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Backend, "backend", "", "Compute backend: cpu or gl")
	fs.IntVar(&f.Res, "res", 0, "Samples along each axis")
	fs.Uint64Var(&f.Seed, "seed", 0, "Noise seed")
	fs.IntVar(&f.Workers, "workers", 0, "Host device workers")
	fs.Uint64Var(&f.Capacity, "capacity", 0, "Triangle buffer capacity in vertices")
	fs.StringVar(&f.Policy, "policy", "", "Overflow policy: clamp or fail")
	fs.StringVar(&f.Format, "format", "", "Vertex format: packed or unpacked")
	fs.StringVar(&f.STL, "stl", "", "STL output path")
	fs.StringVar(&f.PNG, "png", "", "PNG preview output path")
	fs.StringVar(&f.Histogram, "hist", "", "Cell class histogram output path")
	return f
}

// apply applies the overrides of f to cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Backend != "" {
		cfg.Compute.Backend = f.Backend
	}
	if f.Res > 0 {
		cfg.Terrain.Resolution = [3]int{f.Res, f.Res, f.Res}
	}
	if f.Seed != 0 {
		cfg.Noise.Seed = f.Seed
	}
	if f.Workers > 0 {
		cfg.Compute.Workers = f.Workers
	}
	if f.Capacity > 0 {
		cfg.Terrain.Capacity = f.Capacity
	}
	if f.Policy != "" {
		cfg.Terrain.Policy = f.Policy
	}
	if f.Format != "" {
		cfg.Terrain.Format = f.Format
	}
	if f.STL != "" {
		cfg.Output.STL = f.STL
	}
	if f.PNG != "" {
		cfg.Output.PNG = f.PNG
	}
	if f.Histogram != "" {
		cfg.Output.Histogram = f.Histogram
	}
}
