// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/chewxy/math32"

// Resample bilinearly samples src into a new width x height grid.
// Output values stay within the convex hull of the source values.
// Resampling a grid to its own dimensions reproduces it exactly because
// every sample lands on an integer source coordinate.
func Resample(src *Grid, width, height int) *Grid {
	dst := NewGrid(width, height)

	// Denominator floor of 1 avoids division by zero for 1-wide outputs.
	denomX := float32(1)
	if width > 1 {
		denomX = float32(width - 1)
	}
	denomY := float32(1)
	if height > 1 {
		denomY = float32(height - 1)
	}

	for y := 0; y < height; y++ {
		v := float32(y) * float32(src.Height-1) / denomY
		y0 := int(math32.Floor(v))
		y1 := y0 + 1
		if y1 >= src.Height {
			y1 = src.Height - 1
		}
		fy := v - float32(y0)

		for x := 0; x < width; x++ {
			u := float32(x) * float32(src.Width-1) / denomX
			x0 := int(math32.Floor(u))
			x1 := x0 + 1
			if x1 >= src.Width {
				x1 = src.Width - 1
			}
			fx := u - float32(x0)

			a := Lerp(src.At(x0, y0), src.At(x1, y0), fx)
			b := Lerp(src.At(x0, y1), src.At(x1, y1), fx)
			dst.Set(x, y, Lerp(a, b, fy))
		}
	}

	return dst
}
