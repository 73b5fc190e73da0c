// Command isoterrain generates a procedural terrain mesh and writes it as
// an STL file with optional PNG preview and cell class histogram.
//
// Settings are read from isoterrain.yaml (or -config) and overridden by flags:
//
//	isoterrain -res 96 -seed 7 -stl terrain.stl -png terrain.png
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/soypat/isoterrain/internal/config"
	"github.com/soypat/isoterrain/internal/logger"
	"github.com/soypat/isoterrain/meshio"
	"github.com/soypat/isoterrain/terrain"
	"go.uber.org/zap"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	saveConfig := flag.String("save-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *saveConfig != "" {
		if err := cfg.SaveTo(*saveConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	logger.Init(cfg.Logger())
	defer logger.Sync()
	if err := run(cfg, logger.Log); err != nil {
		logger.Log.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tc, err := cfg.ToTerrain()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Compute.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Compute.Timeout)
		defer cancel()
	}

	gen, closeBackend, err := newGenerator(cfg.Compute.Backend, tc, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	start := time.Now()
	res, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	vs, err := gen.Vertices()
	if err != nil {
		return err
	}
	tris := meshio.Decode(vs, tc.Format, tc.Center, tc.Radius)
	sum := meshio.Summarize(tris)
	log.Info("mesh ready",
		zap.String("backend", cfg.Compute.Backend),
		zap.Uint32("triangles", res.Stats.Triangles()),
		zap.Uint64("droppedVertices", res.Stats.Dropped),
		zap.Int("degenerate", sum.Degenerate),
		zap.Float64("area", sum.Area),
		zap.Float64s("min", []float64{sum.Bounds.Min.X, sum.Bounds.Min.Y, sum.Bounds.Min.Z}),
		zap.Float64s("max", []float64{sum.Bounds.Max.X, sum.Bounds.Max.Y, sum.Bounds.Max.Z}),
		zap.Duration("elapsed", time.Since(start)),
	)

	if cfg.Output.STL != "" {
		if len(tris) == 0 {
			log.Warn("empty mesh, skipping STL output")
		} else if err := meshio.CreateSTL(cfg.Output.STL, tris); err != nil {
			return err
		} else {
			log.Info("wrote STL", zap.String("file", cfg.Output.STL))
		}
	}
	if cfg.Output.PNG != "" && len(tris) > 0 {
		img, err := meshio.Preview(tris, meshio.DefaultView(cfg.Output.PreviewSize))
		if err != nil {
			return err
		}
		if err := meshio.SavePNG(cfg.Output.PNG, img); err != nil {
			return err
		}
		log.Info("wrote preview", zap.String("file", cfg.Output.PNG))
	}
	if cfg.Output.Histogram != "" {
		if err := writeReport(cfg.Output.Histogram, tc, log); err != nil {
			return err
		}
	}
	return nil
}
