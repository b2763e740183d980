// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Blur applies passes of a (2*radius+1)^2 box filter to g in place.
// Window coordinates are clamped to the grid bounds, so edge cells reuse
// the nearest valid row/column instead of darkening toward zero.
// Each pass reads from a snapshot of the previous pass (ping-pong buffers),
// never from partially blurred data. No-op unless radius and passes are
// both positive.
func Blur(g *Grid, radius, passes int) {
	if radius <= 0 || passes <= 0 {
		return
	}

	src := g
	dst := NewGrid(g.Width, g.Height)

	for pass := 0; pass < passes; pass++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				var sum float32
				var count int
				for dy := -radius; dy <= radius; dy++ {
					for dx := -radius; dx <= radius; dx++ {
						sum += src.AtClamped(x+dx, y+dy)
						count++
					}
				}
				dst.Set(x, y, sum/float32(count))
			}
		}
		src, dst = dst, src
	}

	// Odd pass counts leave the final result in the scratch buffer.
	if src != g {
		copy(g.Values, src.Values)
	}
}
