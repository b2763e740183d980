// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package iso

import "image"

// Framebuffer is a dense RGB image, 3 bytes per pixel, row-major.
// It is allocated once per render and mutated in place; writes outside its
// bounds are silently clipped.
type Framebuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFramebuffer allocates a framebuffer cleared to the background color.
func NewFramebuffer(width, height int, background [3]byte) *Framebuffer {
	fb := &Framebuffer{
		Pix:    make([]byte, width*height*3),
		Width:  width,
		Height: height,
	}
	for i := 0; i < len(fb.Pix); i += 3 {
		fb.Pix[i] = background[0]
		fb.Pix[i+1] = background[1]
		fb.Pix[i+2] = background[2]
	}
	return fb
}

// Put writes one pixel, clipping silently when out of bounds.
func (fb *Framebuffer) Put(x, y int, r, g, b byte) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	off := (y*fb.Width + x) * 3
	fb.Pix[off] = r
	fb.Pix[off+1] = g
	fb.Pix[off+2] = b
}

// At returns the pixel at (x, y). Coordinates must be in bounds.
func (fb *Framebuffer) At(x, y int) (r, g, b byte) {
	off := (y*fb.Width + x) * 3
	return fb.Pix[off], fb.Pix[off+1], fb.Pix[off+2]
}

// Image copies the framebuffer into an image for PNG encoding.
func (fb *Framebuffer) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i := 0; i < len(fb.Pix); i += 3 {
		off := i / 3 * 4
		img.Pix[off] = fb.Pix[i]
		img.Pix[off+1] = fb.Pix[i+1]
		img.Pix[off+2] = fb.Pix[i+2]
		img.Pix[off+3] = 255
	}
	return img
}
