// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"relief/hydro"
	"relief/ppm"
	"relief/terrain"
	"relief/terrain/noise"
)

func main() {
	var (
		width      int
		height     int
		generator  string
		seed       int64
		amplitude  float64
		roughness  float64
		radius     int
		passes     int
		gamma      float64
		normalize  bool
		seaLevel   float64
		fillAll    bool
		seedPoint  string
		iterations int
		warmup     int
		ratio      string
		weights    string
		fill       bool
		format     string
		palette    string
		out        string
	)

	flag.IntVar(&width, "width", 257, "output width in cells")
	flag.IntVar(&height, "height", 257, "output height in cells")
	flag.StringVar(&generator, "generator", "fractal", "height source: fractal, noise, or chaos")
	flag.Int64Var(&seed, "seed", 42, "random seed")
	flag.Float64Var(&amplitude, "amplitude", float64(terrain.DefaultAmplitude), "initial displacement amplitude")
	flag.Float64Var(&roughness, "roughness", float64(terrain.DefaultRoughness), "per-level amplitude decay")
	flag.IntVar(&radius, "radius", 0, "box blur radius (0 disables)")
	flag.IntVar(&passes, "passes", 1, "box blur passes")
	flag.Float64Var(&gamma, "gamma", 0, "gamma correction exponent (0 disables)")
	flag.BoolVar(&normalize, "normalize", false, "stretch heights to the full [0,1] range")
	flag.Float64Var(&seaLevel, "sea-level", 0, "water classification level (0 disables)")
	flag.BoolVar(&fillAll, "fill-all", false, "classify every cell below sea level as water")
	flag.StringVar(&seedPoint, "seed-point", "", "extra flood seed as x,y")
	flag.IntVar(&iterations, "iterations", 5000, "chaos game iterations")
	flag.IntVar(&warmup, "warmup", 10, "chaos game iterations discarded at the start")
	flag.StringVar(&ratio, "ratio", "1/2", "chaos game jump ratio as a/b")
	flag.StringVar(&weights, "weights", "1,1,1", "chaos game vertex weights as a,b,c")
	flag.BoolVar(&fill, "fill", false, "raise water cells to the sea level in value output")
	flag.StringVar(&format, "format", "ppm", "output format: ppm, png, values, or ascii")
	flag.StringVar(&palette, "palette", terrain.DefaultPalette, "ascii palette, dark to bright")
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.Parse()

	if width < 1 || height < 1 {
		log.Fatal("invalid dimensions: ", width, "x", height)
	}

	var source terrain.Source
	switch generator {
	case "fractal":
		fractal := terrain.NewFractal(seed)
		fractal.Amplitude = float32(amplitude)
		fractal.Roughness = float32(roughness)
		source = fractal
	case "noise":
		source = noise.New(seed)
	case "chaos":
		chaos := terrain.NewChaos(seed)
		chaos.Iterations = iterations
		chaos.Warmup = warmup
		if _, err := fmt.Sscanf(ratio, "%d/%d", &chaos.RatioNum, &chaos.RatioDen); err != nil || chaos.RatioDen == 0 {
			log.Fatal("invalid ratio: ", ratio)
		}
		if _, err := fmt.Sscanf(weights, "%d,%d,%d", &chaos.Weights[0], &chaos.Weights[1], &chaos.Weights[2]); err != nil {
			log.Fatal("invalid weights: ", weights)
		}
		source = chaos
	default:
		log.Fatal("unknown generator: ", generator)
	}

	grid := source.Generate(width, height)

	if normalize {
		terrain.Normalize(grid)
	}
	if gamma > 0 {
		terrain.Gamma(grid, float32(gamma))
	}
	terrain.Blur(grid, radius, passes)

	var mask *hydro.Mask
	if seaLevel > 0 {
		mode := hydro.EdgeFlood
		if fillAll {
			mode = hydro.ThresholdAll
		}
		var point *hydro.Point
		if seedPoint != "" {
			var x, y int
			if _, err := fmt.Sscanf(seedPoint, "%d,%d", &x, &y); err != nil {
				log.Fatal("invalid seed point: ", seedPoint)
			}
			point = &hydro.Point{X: x, Y: y}
		}
		mask = hydro.Classify(grid, float32(seaLevel), mode, point)
	}

	output := os.Stdout
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		output = file
	}

	var water func(x, y int) bool
	if mask != nil {
		water = mask.At
	}

	var err error
	switch format {
	case "ppm":
		rgb := terrain.ColorMap(grid, float32(seaLevel), water)
		err = ppm.Encode(output, width, height, rgb)
	case "png":
		img := terrain.ColorMapImage(grid, float32(seaLevel), water)
		err = png.Encode(output, img)
	case "values":
		if fill && mask != nil {
			grid = hydro.FillToLevel(grid, mask, float32(seaLevel))
		}
		err = terrain.WriteGrid(output, grid)
	case "ascii":
		if fill && mask != nil {
			grid = hydro.FillToLevel(grid, mask, float32(seaLevel))
		}
		_, err = output.WriteString(terrain.ASCII(grid, palette))
	default:
		log.Fatal("unknown format: ", format)
	}

	if err != nil {
		log.Fatal(err)
	}

	if mask != nil {
		fmt.Fprintln(os.Stderr, "water cells:", mask.Count())
	}
}
