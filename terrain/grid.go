// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Grid is a dense, row-major float32 heightmap.
// Values are normalized to [0,1] by convention; Normalize enforces it.
// The backing slice is a single flat allocation indexed through At/Set.
type Grid struct {
	Values []float32
	Width  int
	Height int
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Values: make([]float32, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (g *Grid) At(x, y int) float32 {
	return g.Values[y*g.Width+x]
}

// AtClamped returns the value at (x, y) with out of bounds coordinates
// clamped to the nearest valid cell.
func (g *Grid) AtClamped(x, y int) float32 {
	return g.Values[clampInt(y, 0, g.Height-1)*g.Width+clampInt(x, 0, g.Width-1)]
}

func (g *Grid) Set(x, y int, value float32) {
	g.Values[y*g.Width+x] = value
}

// Clone returns a deep copy with its own backing slice.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Width, g.Height)
	copy(clone.Values, g.Values)
	return clone
}

func (g *Grid) Fill(value float32) {
	for i := range g.Values {
		g.Values[i] = value
	}
}
