package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/soypat/isoterrain/celltable"
	"github.com/soypat/isoterrain/density"
	"github.com/soypat/isoterrain/terrain"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// hostVolume evaluates the density volume of tc on the host. It matches
// the volume the device generates from the same configuration.
func hostVolume(tc terrain.Config) (*density.Volume, error) {
	noise, err := density.NoiseSet(density.NumNoiseTextures, tc.NoiseSize, tc.NoiseSeed)
	if err != nil {
		return nil, err
	}
	f, err := density.NewField(tc.Params(), noise)
	if err != nil {
		return nil, err
	}
	vol, err := density.NewVolume(tc.Resolution)
	if err != nil {
		return nil, err
	}
	return vol, f.Fill(vol)
}

// classCounts tallies the class of every cell of vol crossing the surface
// and counts the cells entirely inside or outside.
func classCounts(vol *density.Volume) (counts [celltable.MaxClasses]int, empty int) {
	e := vol.Extent()
	for z := 0; z < e[2]-1; z++ {
		for y := 0; y < e[1]-1; y++ {
			for x := 0; x < e[0]-1; x++ {
				var d [8]float32
				for i := range d {
					d[i] = vol.At(x+i&1, y+(i>>1)&1, z+(i>>2)&1)
				}
				cfg := celltable.Config(d)
				if celltable.IsEmpty(cfg) {
					empty++
					continue
				}
				counts[celltable.ClassOf(cfg)]++
			}
		}
	}
	return counts, empty
}

// writeReport logs a summary of the density distribution and plots the cell
// class histogram to path. The output format follows the file extension.
func writeReport(path string, tc terrain.Config, log *zap.Logger) error {
	vol, err := hostVolume(tc)
	if err != nil {
		return err
	}
	samples := make([]float64, len(vol.Data()))
	solid := 0
	for i, d := range vol.Data() {
		samples[i] = float64(d)
		if d >= 0 {
			solid++
		}
	}
	sort.Float64s(samples)
	mean, std := stat.MeanStdDev(samples, nil)
	counts, empty := classCounts(vol)
	log.Info("density summary",
		zap.Float64("mean", mean),
		zap.Float64("stddev", std),
		zap.Float64("median", stat.Quantile(0.5, stat.Empirical, samples, nil)),
		zap.Float64("solidFraction", float64(solid)/float64(len(samples))),
		zap.Int("emptyCells", empty),
	)
	if err := plotClasses(path, counts[:celltable.NumClasses]); err != nil {
		return fmt.Errorf("plotting class histogram: %w", err)
	}
	log.Info("wrote class histogram", zap.String("file", path))
	return nil
}

func plotClasses(path string, counts []int) error {
	p := plot.New()
	p.Title.Text = "Cell classes"
	p.X.Label.Text = "class"
	p.Y.Label.Text = "cells"
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
		names[i] = strconv.Itoa(i)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
