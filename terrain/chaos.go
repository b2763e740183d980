// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Chaos generates an attractor density map by the chaos game: a point
// repeatedly jumps a fixed fraction of the way toward a randomly chosen
// triangle vertex, and each visited cell counts a hit. With equal weights
// and a 1/2 ratio the hits trace a Sierpinski triangle. The grid holds hit
// counts normalized by the densest cell, so it plugs into the same output
// stages as the heightmap generators (ASCII suits it best).
type Chaos struct {
	Iterations int
	Warmup     int // leading iterations discarded while the point converges
	RatioNum   int
	RatioDen   int
	Weights    [3]int // vertex selection weights: bottom-left, bottom-right, top
	Seed       int64
}

// NewChaos returns a Chaos with the classic Sierpinski parameters.
func NewChaos(seed int64) Chaos {
	return Chaos{
		Iterations: 5000,
		Warmup:     10,
		RatioNum:   1,
		RatioDen:   2,
		Weights:    [3]int{1, 1, 1},
		Seed:       seed,
	}
}

// Generate implements Source. The triangle spans the full grid: bottom-left,
// bottom-right and top-center corners.
func (c Chaos) Generate(width, height int) *Grid {
	g := NewGrid(width, height)
	rng := NewRand(c.Seed)

	den := c.RatioDen
	if den == 0 {
		den = 1
	}

	sum := c.Weights[0] + c.Weights[1] + c.Weights[2]
	if sum <= 0 {
		sum = 1
	}

	vx := [3]int{0, width - 1, width / 2}
	vy := [3]int{height - 1, height - 1, 0}

	hits := make([]int, width*height)
	maxHit := 0

	x, y := width/2, height/2
	for i := 0; i < c.Iterations; i++ {
		v := 2
		r := rng.Intn(sum)
		if r < c.Weights[0] {
			v = 0
		} else if r < c.Weights[0]+c.Weights[1] {
			v = 1
		}

		// Integer jump toward the vertex.
		x += (vx[v] - x) * c.RatioNum / den
		y += (vy[v] - y) * c.RatioNum / den

		if i < c.Warmup {
			continue
		}
		if x >= 0 && x < width && y >= 0 && y < height {
			idx := y*width + x
			hits[idx]++
			if hits[idx] > maxHit {
				maxHit = hits[idx]
			}
		}
	}

	if maxHit > 0 {
		// Divide directly so the densest cell lands on exactly 1.
		for i, h := range hits {
			g.Values[i] = float32(h) / float32(maxHit)
		}
	}

	return g
}
