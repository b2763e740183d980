// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hydro classifies water bodies on a heightmap.
package hydro

import "relief/terrain"

// Mode selects how cells are classified as water.
type Mode int

const (
	// EdgeFlood floods 4-connected cells at or below the sea level,
	// starting from every border cell (and an optional interior seed).
	// Low basins not reachable from a seed stay dry.
	EdgeFlood Mode = iota
	// ThresholdAll marks every cell at or below the sea level,
	// ignoring connectivity.
	ThresholdAll
)

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Mask is a dense water mask with the dimensions of its source grid.
// It is written once by Classify and only read afterwards.
type Mask struct {
	Cells  []bool
	Width  int
	Height int
}

func newMask(width, height int) *Mask {
	return &Mask{
		Cells:  make([]bool, width*height),
		Width:  width,
		Height: height,
	}
}

// At reports whether (x, y) is water.
func (m *Mask) At(x, y int) bool {
	return m.Cells[y*m.Width+x]
}

func (m *Mask) set(x, y int) {
	m.Cells[y*m.Width+x] = true
}

// Count returns the number of water cells.
func (m *Mask) Count() int {
	count := 0
	for _, w := range m.Cells {
		if w {
			count++
		}
	}
	return count
}

// Classify computes the water mask of g at the given sea level.
// seed, if non-nil, is clamped into bounds and added to the flood sources
// (it only matters in EdgeFlood mode). The result depends solely on
// reachability, never on traversal order.
func Classify(g *terrain.Grid, level float32, mode Mode, seed *Point) *Mask {
	if mode == ThresholdAll {
		return thresholdAll(g, level)
	}
	return edgeFlood(g, level, seed)
}

func thresholdAll(g *terrain.Grid, level float32) *Mask {
	mask := newMask(g.Width, g.Height)
	for i, h := range g.Values {
		mask.Cells[i] = h <= level
	}
	return mask
}

func edgeFlood(g *terrain.Grid, level float32, seed *Point) *Mask {
	mask := newMask(g.Width, g.Height)
	queue := make([]Point, 0, g.Width*2+g.Height*2)

	admit := func(x, y int) {
		if g.At(x, y) <= level && !mask.At(x, y) {
			mask.set(x, y)
			queue = append(queue, Point{X: x, Y: y})
		}
	}

	for x := 0; x < g.Width; x++ {
		admit(x, 0)
		admit(x, g.Height-1)
	}
	for y := 0; y < g.Height; y++ {
		admit(0, y)
		admit(g.Width-1, y)
	}
	if seed != nil {
		admit(clampInt(seed.X, 0, g.Width-1), clampInt(seed.Y, 0, g.Height-1))
	}

	// BFS over 4-connected neighbors.
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if p.X > 0 {
			admit(p.X-1, p.Y)
		}
		if p.X+1 < g.Width {
			admit(p.X+1, p.Y)
		}
		if p.Y > 0 {
			admit(p.X, p.Y-1)
		}
		if p.Y+1 < g.Height {
			admit(p.X, p.Y+1)
		}
	}

	return mask
}

// FillToLevel returns a copy of g with every water cell raised to the sea
// level, turning water bodies into flat plateaus for downstream rendering.
func FillToLevel(g *terrain.Grid, mask *Mask, level float32) *terrain.Grid {
	filled := g.Clone()
	for i, w := range mask.Cells {
		if w && filled.Values[i] < level {
			filled.Values[i] = level
		}
	}
	return filled
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
