// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"math/rand"
	"testing"
)

func randomGrid(width, height int, seed int64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(width, height)
	for i := range g.Values {
		g.Values[i] = rng.Float32()
	}
	return g
}

func TestResample_Identity(t *testing.T) {
	src := randomGrid(33, 33, 1)
	dst := Resample(src, 33, 33)

	for i := range src.Values {
		if src.Values[i] != dst.Values[i] {
			t.Fatal("identity resample changed cell", i, src.Values[i], dst.Values[i])
		}
	}
}

func TestResample_Hull(t *testing.T) {
	src := randomGrid(17, 9, 2)

	min, max := src.Values[0], src.Values[0]
	for _, v := range src.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	dst := Resample(src, 100, 50)
	for i, v := range dst.Values {
		if v < min || v > max {
			t.Fatal("resampled cell", i, "left the source hull:", v, "not in", min, max)
		}
	}
}

func TestResample_Thin(t *testing.T) {
	src := randomGrid(9, 9, 3)

	for _, dims := range [][2]int{{1, 1}, {1, 10}, {10, 1}} {
		dst := Resample(src, dims[0], dims[1])
		if dst.Width != dims[0] || dst.Height != dims[1] {
			t.Error("expected", dims, "got", dst.Width, dst.Height)
		}
		// 1-wide outputs sample the source origin row/column only.
		if dst.At(0, 0) != src.At(0, 0) {
			t.Error("origin sample expected", src.At(0, 0), "got", dst.At(0, 0))
		}
	}
}
