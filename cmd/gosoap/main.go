/*
 * main.go, part of gosoap.
 *
 * Copyright 2023 The gosoap developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gosoap reads a structure, enumerates its neighbor pairs and evaluates the
//radial integral on every pair, reporting summary statistics. It can also
//dump the integral as a tabulated file and plot it. Mostly a driver to
//exercise the library from the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	soap "github.com/rmera/gosoap"
	"github.com/rmera/gosoap/radial"
	"github.com/rmera/gosoap/soapplot"
	v3 "github.com/rmera/gosoap/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/gcfg.v1"
)

const ExampleConfigFile = `[System]

# XYZ file with the atoms to process. Only the first frame is read.
XYZ = structure.xyz

# Unit cell. Omit for no periodic boundary conditions, give the key once for
# a cubic cell, or three times for an orthorhombic one.
# Cell = 10.0
# Cell = 12.5
# Cell = 9.0

[Radial]

# Number of radial channels and largest angular order of the tables.
MaxRadial = 4
MaxAngular = 4

# Width of the Gaussian density on each atom; 0 selects the delta density.
AtomicGaussianWidth = 0.3

# Pair cutoff, also the support of the radial basis.
Cutoff = 3.5

# Approximate the analytic GTO integral by an adaptively built cubic spline.
# Splined = true
# SplineAccuracy = 1e-8

# Spline through a previously dumped table instead of using the GTO basis.
# Table = radial.json.zst

[Output]

# PNG plot of the radial integral curves.
# Plot = radial.png
# PlotPoints = 300

# Dump the evaluated integral as a tabulated file (".zst" compresses it).
# Table = radial.json.zst
# TablePoints = 500

# Forward debug diagnostics.
# Verbose = true`

type Config struct {
	System struct {
		XYZ  string
		Cell []float64
	}
	Radial struct {
		MaxRadial           int
		MaxAngular          int
		AtomicGaussianWidth float64
		Cutoff              float64
		Splined             bool
		SplineAccuracy      float64
		Table               string
	}
	Output struct {
		Plot        string
		PlotPoints  int
		Table       string
		TablePoints int
		Verbose     bool
	}
}

var logLevelNames = map[int]string{
	soap.LogLevelError: "ERROR",
	soap.LogLevelWarn:  "WARN",
	soap.LogLevelInfo:  "INFO",
	soap.LogLevelDebug: "DEBUG",
	soap.LogLevelTrace: "TRACE",
}

func cellFromConfig(lens []float64) (*v3.Cell, error) {
	switch len(lens) {
	case 0:
		return v3.InfiniteCell(), nil
	case 1:
		return v3.CubicCell(lens[0])
	case 3:
		return v3.OrthorhombicCell(lens[0], lens[1], lens[2])
	}
	return nil, fmt.Errorf("Cell takes 0, 1 or 3 lengths, got %d", len(lens))
}

func main() {
	var configPath string
	var exampleConfig bool
	flag.StringVar(&configPath, "Config", "", "Path to the gosoap config file.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Print an example config file to stdout and exit.")
	flag.Parse()
	if exampleConfig {
		fmt.Println(ExampleConfigFile)
		return
	}
	if configPath == "" {
		fmt.Fprintln(os.Stderr, "gosoap: no config given; run with -ExampleConfig to see the format")
		os.Exit(1)
	}
	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, configPath); err != nil {
		log.Fatalf("can't read config %s: %v", configPath, err)
	}
	soap.SetLogCallback(func(level int, message string) {
		log.Printf("[%s] %s", logLevelNames[level], message)
	})
	if cfg.Output.Verbose {
		soap.SetLogLevel(soap.LogLevelDebug)
	}

	cell, err := cellFromConfig(cfg.System.Cell)
	if err != nil {
		log.Fatalf("bad cell in %s: %v", configPath, err)
	}
	system, err := soap.XYZRead(cfg.System.XYZ, cell)
	if err != nil {
		log.Fatal(err)
	}
	params := radial.Parameters{
		MaxRadial:           cfg.Radial.MaxRadial,
		MaxAngular:          cfg.Radial.MaxAngular,
		AtomicGaussianWidth: cfg.Radial.AtomicGaussianWidth,
		Cutoff:              cfg.Radial.Cutoff,
	}
	var basis radial.Basis
	if cfg.Radial.Table != "" {
		points, err := radial.ReadTabulatedFile(cfg.Radial.Table)
		if err != nil {
			log.Fatal(err)
		}
		basis = radial.TabulatedBasis{Points: points}
	} else {
		basis = radial.GtoBasis{Splined: cfg.Radial.Splined, SplineAccuracy: cfg.Radial.SplineAccuracy}
	}
	cache, err := radial.NewCache(basis, params)
	if err != nil {
		log.Fatal(err)
	}

	if err := system.ComputeNeighbors(params.Cutoff); err != nil {
		log.Fatal(err)
	}
	pairs, err := system.Pairs()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d atoms, %d pairs within %v\n", system.Size(), len(pairs), params.Cutoff)
	if len(pairs) > 0 {
		distances := make([]float64, len(pairs))
		norms := make([]float64, len(pairs))
		for i, p := range pairs {
			distances[i] = p.Distance
			cache.Compute(p.Distance, false)
			norms[i] = mat.Norm(cache.Values(), 2)
		}
		fmt.Printf("pair distances: min %.4f  mean %.4f  max %.4f\n",
			floats.Min(distances), stat.Mean(distances, nil), floats.Max(distances))
		fmt.Printf("radial table norm over pairs: mean %.4f  max %.4f\n",
			stat.Mean(norms, nil), floats.Max(norms))
	}

	if cfg.Output.Table != "" {
		npoints := cfg.Output.TablePoints
		if npoints == 0 {
			npoints = 500
		}
		points, err := radial.SampleEvaluator(cache.Evaluator(), params, npoints)
		if err != nil {
			log.Fatal(err)
		}
		if err := radial.WriteTabulatedFile(cfg.Output.Table, points); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d tabulated points to %s\n", npoints, cfg.Output.Table)
	}
	if cfg.Output.Plot != "" {
		npoints := cfg.Output.PlotPoints
		if npoints == 0 {
			npoints = 300
		}
		title := fmt.Sprintf("Radial integral, sigma=%v, cutoff=%v", params.AtomicGaussianWidth, params.Cutoff)
		if err := soapplot.RadialIntegrals(cache.Evaluator(), params, nil, npoints, title, cfg.Output.Plot); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote plot to %s\n", cfg.Output.Plot)
	}
}
