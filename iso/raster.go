// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package iso

// fillTriangle rasterizes a solid triangle with integer edge functions.
// A pixel is inside when all three edge evaluations share a sign (all >= 0
// or all <= 0), which makes the fill winding-order-agnostic. A degenerate
// zero-area triangle fills no pixels.
func (fb *Framebuffer) fillTriangle(x0, y0, x1, y1, x2, y2 int, r, g, b byte) {
	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	// Clip the bounding box; pixel writes are clipped too, but this keeps
	// the loop from scanning far outside the framebuffer.
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}

	// Degenerate: area is zero when all edge functions vanish everywhere.
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area == 0 {
		return
	}

	a01, b01 := y0-y1, x1-x0
	a12, b12 := y1-y2, x2-x1
	a20, b20 := y2-y0, x0-x2

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := (x-x1)*a12 + (y-y1)*b12
			w1 := (x-x2)*a20 + (y-y2)*b20
			w2 := (x-x0)*a01 + (y-y0)*b01

			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				fb.Put(x, y, r, g, b)
			}
		}
	}
}

// fillQuad rasterizes a convex quadrilateral as two triangles.
// Vertices must be given in perimeter order (either winding).
func (fb *Framebuffer) fillQuad(x0, y0, x1, y1, x2, y2, x3, y3 int, r, g, b byte) {
	fb.fillTriangle(x0, y0, x1, y1, x2, y2, r, g, b)
	fb.fillTriangle(x0, y0, x2, y2, x3, y3, r, g, b)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
