// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package iso renders heightmaps as isometric tile projections.
// Each grid cell becomes a raised diamond top with two shaded side faces;
// occlusion is resolved by painting cells back to front.
package iso

import (
	"relief/terrain"

	"github.com/chewxy/math32"
)

// Geometry holds the isometric projection parameters.
// It is pure configuration; every rasterization call references it.
type Geometry struct {
	TileWidth  int // full diamond width in pixels
	TileHeight int // full diamond height in pixels
	ZScale     int // vertical pixels per unit of height
	Background [3]byte
}

// DefaultGeometry matches a classic 2:1 isometric tile.
func DefaultGeometry() Geometry {
	return Geometry{
		TileWidth:  16,
		TileHeight: 8,
		ZScale:     64,
		Background: [3]byte{16, 16, 24},
	}
}

// Size returns the framebuffer dimensions for a gridW x gridH heightmap,
// including a margin of one tile width on every side and headroom for the
// maximum elevation.
func (geom Geometry) Size(gridW, gridH int) (width, height int) {
	margin := geom.TileWidth
	width = (gridW+gridH)*(geom.TileWidth/2) + margin*2 + geom.TileWidth
	height = (gridW+gridH)*(geom.TileHeight/2) + geom.ZScale + margin*2 + geom.TileHeight
	return
}

// Shader maps a cell to its top-face color. Side faces derive from it.
type Shader func(x, y int, h float32) (r, g, b byte)

// GrayShader shades the top face by raw height.
func GrayShader(x, y int, h float32) (r, g, b byte) {
	v := byte(math32.Floor(clamp01(h)*255 + 0.5))
	return v, v, v
}

// Render rasterizes g into a freshly allocated framebuffer.
// shade may be nil, which selects GrayShader.
//
// Cells are painted in strictly increasing gx+gy so nearer tiles overwrite
// farther ones (painter's algorithm). Reordering within one diagonal is
// harmless; any order that violates the diagonal sweep produces occlusion
// artifacts.
func Render(g *terrain.Grid, geom Geometry, shade Shader) *Framebuffer {
	if shade == nil {
		shade = GrayShader
	}

	width, height := geom.Size(g.Width, g.Height)
	fb := NewFramebuffer(width, height, geom.Background)

	margin := geom.TileWidth
	// Shift right so the left-most tile (gx=0, gy=gridH-1) stays in frame,
	// and down so full elevation stays in frame.
	originX := margin + g.Height*(geom.TileWidth/2)
	originY := margin + geom.ZScale

	for sum := 0; sum <= (g.Width-1)+(g.Height-1); sum++ {
		for gx := maxInt(0, sum-(g.Height-1)); gx <= minInt(g.Width-1, sum); gx++ {
			gy := sum - gx
			drawTile(fb, geom, shade, g.At(gx, gy), gx, gy, originX, originY)
		}
	}

	return fb
}

// drawTile paints one cell: the elevated top rhombus and the left/right
// side faces connecting it to the un-elevated base.
func drawTile(fb *Framebuffer, geom Geometry, shade Shader, h float32, gx, gy, originX, originY int) {
	halfW := geom.TileWidth / 2
	halfH := geom.TileHeight / 2

	sx := originX + (gx-gy)*halfW
	sy := originY + (gx+gy)*halfH
	z := int(math32.Floor(clamp01(h)*float32(geom.ZScale) + 0.5))

	// Elevated rhombus vertices.
	cx, cy := sx, sy-z
	topX, topY := cx, cy-halfH
	leftX, leftY := cx-halfW, cy
	rightX, rightY := cx+halfW, cy
	botX, botY := cx, cy+halfH

	// Base rhombus vertices (only the visible lower half is needed).
	baseLeftX, baseLeftY := sx-halfW, sy
	baseRightX, baseRightY := sx+halfW, sy
	baseBotX, baseBotY := sx, sy+halfH

	r, g, b := shade(gx, gy, h)
	// Side faces take 80% and 60% of the top shade to fake directional light.
	leftR, leftG, leftB := mulShade(r, g, b, 80)
	rightR, rightG, rightB := mulShade(r, g, b, 60)

	fb.fillQuad(
		leftX, leftY,
		baseLeftX, baseLeftY,
		baseBotX, baseBotY,
		botX, botY,
		leftR, leftG, leftB)

	fb.fillQuad(
		rightX, rightY,
		botX, botY,
		baseBotX, baseBotY,
		baseRightX, baseRightY,
		rightR, rightG, rightB)

	fb.fillTriangle(topX, topY, leftX, leftY, rightX, rightY, r, g, b)
	fb.fillTriangle(botX, botY, rightX, rightY, leftX, leftY, r, g, b)
}

func mulShade(r, g, b byte, percent int) (byte, byte, byte) {
	return byte(int(r) * percent / 100), byte(int(g) * percent / 100), byte(int(b) * percent / 100)
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func minInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}
