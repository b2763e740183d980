// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise provides a layered perlin-noise heightmap source as an
// alternative to the diamond-square fractal.
package noise

import (
	"relief/terrain"

	"github.com/aquilax/go-perlin"
)

const (
	frequency     = 0.02
	zoneFrequency = 0.004
)

// Generator generates a heightmap using perlin noise.
// Two land octaves are masked by a very low frequency zone layer, with a
// separate depth floor keeping open water from bottoming out at zero.
type Generator struct {
	landHi  *perlin.Perlin // smaller/higher frequency details
	landLo  *perlin.Perlin // larger/lower frequency zones
	waterLo *perlin.Perlin // open water depth floor
}

// New creates a new Generator with a seed.
func New(seed int64) *Generator {
	return &Generator{
		landHi:  perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo:  perlin.NewPerlin(2.5, 3.0, 4, seed+1),
		waterLo: perlin.NewPerlin(2, 3.0, 3, seed+2),
	}
}

// Generate implements terrain.Source.
func (g *Generator) Generate(width, height int) *terrain.Grid {
	grid := terrain.NewGrid(width, height)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			x := float64(i)
			y := float64(j)

			h := g.landHi.Noise2D(x*frequency, y*frequency)*0.9 + 0.45

			// Zone is very low frequency
			zone := g.landLo.Noise2D(x*zoneFrequency, y*zoneFrequency)*2.0 + 0.4
			if zone > 1 {
				zone = 1
			}
			h *= zone

			depthFloor := clamp((g.waterLo.Noise2D(x*zoneFrequency, y*zoneFrequency)+0.3)*4, 0, 1) * 0.1

			grid.Set(i, j, float32(clamp(max(h, depthFloor), 0, 1)))
		}
	}

	return grid
}
