// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"relief/iso"
	"relief/ppm"
	"relief/terrain"
)

func main() {
	var (
		gridW      int
		gridH      int
		in         string
		out        string
		tileWidth  int
		tileHeight int
		zScale     int
		background string
		cpuProfile string
	)

	flag.IntVar(&gridW, "x", 64, "grid width in cells")
	flag.IntVar(&gridH, "y", 64, "grid height in cells")
	flag.StringVar(&in, "i", "", "input height values (default stdin)")
	flag.StringVar(&out, "o", "out.ppm", "output image (.ppm or .png)")
	flag.IntVar(&tileWidth, "tw", 16, "tile width in pixels (even)")
	flag.IntVar(&tileHeight, "th", 8, "tile height in pixels (even)")
	flag.IntVar(&zScale, "zs", 64, "elevation scale in pixels")
	flag.StringVar(&background, "bg", "16,16,24", "background color as r,g,b")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	run(gridW, gridH, in, out, tileWidth, tileHeight, zScale, background)
}

func run(gridW, gridH int, in, out string, tileWidth, tileHeight, zScale int, background string) {
	if gridW < 1 || gridH < 1 {
		log.Fatal("invalid grid size: ", gridW, "x", gridH)
	}

	geom := iso.Geometry{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		ZScale:     zScale,
	}

	var r, g, b int
	if _, err := fmt.Sscanf(background, "%d,%d,%d", &r, &g, &b); err != nil {
		log.Fatal("invalid background color: ", background)
	}
	geom.Background = [3]byte{byte(r), byte(g), byte(b)}

	input := os.Stdin
	if in != "" {
		file, err := os.Open(in)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		input = file
	}

	grid, err := terrain.ReadGrid(input, gridW, gridH)
	if err != nil {
		log.Fatal("read heights: ", err)
	}

	fb := iso.Render(grid, geom, iso.GrayShader)

	if strings.HasSuffix(out, ".png") {
		file, err := os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		if err := png.Encode(file, fb.Image()); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := ppm.WriteFile(out, fb.Width, fb.Height, fb.Pix); err != nil {
		log.Fatal(err)
	}
}
