// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package iso

import (
	"bytes"
	"testing"
)

func countPainted(fb *Framebuffer) int {
	count := 0
	for i := 0; i < len(fb.Pix); i += 3 {
		if fb.Pix[i] != 0 || fb.Pix[i+1] != 0 || fb.Pix[i+2] != 0 {
			count++
		}
	}
	return count
}

func TestFillTriangle(t *testing.T) {
	fb := NewFramebuffer(16, 16, [3]byte{})
	fb.fillTriangle(2, 2, 12, 2, 2, 12, 255, 255, 255)

	if painted := countPainted(fb); painted == 0 {
		t.Fatal("triangle painted nothing")
	}

	// Vertices are inside.
	if r, _, _ := fb.At(2, 2); r != 255 {
		t.Error("vertex (2,2) not painted")
	}
	if r, _, _ := fb.At(12, 2); r != 255 {
		t.Error("vertex (12,2) not painted")
	}

	// Far corner is outside.
	if r, _, _ := fb.At(12, 12); r != 0 {
		t.Error("(12,12) painted outside the triangle")
	}
}

func TestFillTriangle_Winding(t *testing.T) {
	one := NewFramebuffer(16, 16, [3]byte{})
	one.fillTriangle(2, 2, 12, 2, 2, 12, 255, 255, 255)

	two := NewFramebuffer(16, 16, [3]byte{})
	two.fillTriangle(2, 12, 12, 2, 2, 2, 255, 255, 255)

	if !bytes.Equal(one.Pix, two.Pix) {
		t.Error("winding order changed the fill")
	}
}

func TestFillTriangle_Degenerate(t *testing.T) {
	fb := NewFramebuffer(16, 16, [3]byte{})

	// Collinear and point-sized triangles fill nothing.
	fb.fillTriangle(1, 1, 5, 5, 9, 9, 255, 255, 255)
	fb.fillTriangle(3, 3, 3, 3, 3, 3, 255, 255, 255)

	if painted := countPainted(fb); painted != 0 {
		t.Error("degenerate triangles painted", painted, "pixels")
	}
}

func TestFillTriangle_Clip(t *testing.T) {
	fb := NewFramebuffer(8, 8, [3]byte{})

	// Mostly off-screen; must neither panic nor write out of bounds.
	fb.fillTriangle(-20, -20, 30, -20, 4, 30, 255, 255, 255)

	if painted := countPainted(fb); painted == 0 {
		t.Error("clipped triangle painted nothing in frame")
	}
}

func TestFillQuad(t *testing.T) {
	fb := NewFramebuffer(16, 16, [3]byte{})
	fb.fillQuad(4, 2, 12, 6, 10, 13, 3, 10, 255, 255, 255)

	if painted := countPainted(fb); painted == 0 {
		t.Fatal("quad painted nothing")
	}
	if r, _, _ := fb.At(8, 8); r != 255 {
		t.Error("quad interior not painted")
	}
}

func TestFramebuffer(t *testing.T) {
	fb := NewFramebuffer(4, 4, [3]byte{1, 2, 3})

	if r, g, b := fb.At(3, 3); r != 1 || g != 2 || b != 3 {
		t.Error("background not applied:", r, g, b)
	}

	fb.Put(1, 1, 9, 8, 7)
	if r, g, b := fb.At(1, 1); r != 9 || g != 8 || b != 7 {
		t.Error("Put not visible:", r, g, b)
	}

	// Out-of-bounds writes clip.
	fb.Put(-1, 0, 255, 255, 255)
	fb.Put(4, 4, 255, 255, 255)

	img := fb.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Error("image bounds mismatch")
	}
}
