// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"
)

func TestColorVec(t *testing.T) {
	c := RGB(255, 0, 128)
	if c[0] != 1 || c[1] != 0 {
		t.Error("RGB scaling wrong:", c)
	}

	half := c.Mul(0.5)
	if !approx(half[0], 0.5) {
		t.Error("Mul wrong:", half)
	}
	// Mul copies.
	if c[0] != 1 {
		t.Error("Mul mutated its receiver")
	}

	mid := RGB(0, 0, 0).Lerp(Gray(255), 0.5)
	for i := range mid {
		if !approx(mid[i], 0.5) {
			t.Error("Lerp wrong:", mid)
		}
	}

	rgba := Gray(255).Color()
	if rgba.R != 255 || rgba.A != 255 {
		t.Error("Color conversion wrong:", rgba)
	}
}

func TestColorMap(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(0.8)

	rgb := ColorMap(g, 0, nil)
	if len(rgb) != 4*4*3 {
		t.Fatal("expected 48 bytes got", len(rgb))
	}

	// A uniform dry grid renders a uniform land color.
	for i := 3; i < len(rgb); i += 3 {
		if rgb[i] != rgb[0] || rgb[i+1] != rgb[1] || rgb[i+2] != rgb[2] {
			t.Fatal("uniform grid rendered non-uniform colors")
		}
	}
}

func TestColorMap_Water(t *testing.T) {
	// Left half flooded, right half land.
	g := NewGrid(4, 1)
	copy(g.Values, []float32{0.1, 0.1, 0.2, 0.2})
	water := func(x, y int) bool { return x < 2 }

	rgb := ColorMap(g, 0.5, water)

	// Water is blue-dominant; the land cells here are not.
	if rgb[2] <= rgb[0] {
		t.Error("water cell not blue:", rgb[0], rgb[1], rgb[2])
	}
	if rgb[9+2] >= rgb[9+1] {
		t.Error("land cell looks like water:", rgb[9], rgb[9+1], rgb[9+2])
	}

	// The boundary cells (1,0) and (2,0) are darkened shoreline, so cell 1
	// is darker than cell 0 despite equal height.
	if rgb[3+2] >= rgb[2] {
		t.Error("shoreline water cell not darkened:", rgb[3+2], rgb[2])
	}
}

func TestColorMapImage(t *testing.T) {
	g := NewGrid(3, 2)
	img := ColorMapImage(g, 0, nil)

	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Error("image bounds mismatch:", bounds)
	}
}
