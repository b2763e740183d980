// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"image"
	"image/color"
)

type ColorVec [3]float32

var (
	deepWater    = RGB(10, 40, 120)
	shallowWater = RGB(40, 100, 240)
	sand         = RGB(194, 178, 128)
	grass        = RGB(80, 160, 60)
	rock         = RGB(120, 120, 120)
	snow         = Gray(240)
)

// Height bands of the land palette, in normalized [0,1] heights.
const (
	sandBand  = 0.05
	grassBand = 0.30
	rockBand  = 0.60
)

// ColorMap renders a geographic color map of g as raw RGB bytes, row-major,
// 3 bytes per pixel. water reports whether a cell is flooded and may be nil
// for a dry map; level is the sea level used for depth shading. Cells on a
// water/land boundary are darkened to outline the shoreline.
func ColorMap(g *Grid, level float32, water func(x, y int) bool) []byte {
	rgb := make([]byte, g.Width*g.Height*3)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			h := g.At(x, y)

			var c ColorVec
			if water != nil && water(x, y) {
				// Deeper cells shade darker.
				depth := clamp01(level - h)
				c = deepWater.Lerp(shallowWater, 1-depth)
			} else {
				switch {
				case h < sandBand:
					c = sand
				case h < grassBand:
					c = sand.Lerp(grass, clamp01((h-sandBand)*8))
				case h < rockBand:
					c = grass.Lerp(rock, clamp01((h-grassBand)*4))
				default:
					c = rock.Lerp(snow, clamp01((h-rockBand)*3))
				}
			}

			if water != nil && shoreline(g, water, x, y) {
				c = c.Mul(0.7)
			}

			off := (y*g.Width + x) * 3
			rgb[off] = floatToByte(c[0])
			rgb[off+1] = floatToByte(c[1])
			rgb[off+2] = floatToByte(c[2])
		}
	}

	return rgb
}

// ColorMapImage renders the same color map as an image for PNG encoding.
func ColorMapImage(g *Grid, level float32, water func(x, y int) bool) image.Image {
	rgb := ColorMap(g, level, water)
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))

	for i := 0; i < len(rgb); i += 3 {
		off := i / 3 * 4
		img.Pix[off] = rgb[i]
		img.Pix[off+1] = rgb[i+1]
		img.Pix[off+2] = rgb[i+2]
		img.Pix[off+3] = 255
	}

	return img
}

// shoreline reports whether any 4-connected neighbor differs in water
// classification from (x, y).
func shoreline(g *Grid, water func(x, y int) bool, x, y int) bool {
	w := water(x, y)
	if x > 0 && water(x-1, y) != w {
		return true
	}
	if x+1 < g.Width && water(x+1, y) != w {
		return true
	}
	if y > 0 && water(x, y-1) != w {
		return true
	}
	if y+1 < g.Height && water(x, y+1) != w {
		return true
	}
	return false
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) String() string {
	return fmt.Sprintf("rgb(%.3f, %.3f, %.3f)", vec[0], vec[1], vec[2])
}

func (vec ColorVec) Mul(v float32) ColorVec {
	vec[0] *= v
	vec[1] *= v
	vec[2] *= v
	return vec
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] = Lerp(vec[i], other[i], factor)
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}
