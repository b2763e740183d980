// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	g := NewGrid(3, 1)
	copy(g.Values, []float32{0.2, 0.4, 0.6})

	Normalize(g)

	expected := []float32{0, 0.5, 1}
	for i := range expected {
		if !approx(g.Values[i], expected[i]) {
			t.Error("cell", i, "expected", expected[i], "got", g.Values[i])
		}
	}
}

func TestNormalize_Flat(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(0.8)

	Normalize(g)
	for i, v := range g.Values {
		if v != 0.5 {
			t.Fatal("flat grid cell", i, "expected 0.5 got", v)
		}
	}
}

func TestGamma(t *testing.T) {
	g := NewGrid(3, 1)
	copy(g.Values, []float32{0, 0.25, 1})

	Gamma(g, 2)

	expected := []float32{0, 0.5, 1}
	for i := range expected {
		if !approx(g.Values[i], expected[i]) {
			t.Error("cell", i, "expected", expected[i], "got", g.Values[i])
		}
	}
}

func TestGamma_NoOp(t *testing.T) {
	original := randomGrid(5, 5, 6)

	for _, gamma := range []float32{1, 0, -2} {
		g := original.Clone()
		Gamma(g, gamma)
		for i := range g.Values {
			if g.Values[i] != original.Values[i] {
				t.Fatal("Gamma(", gamma, ") changed cell", i)
			}
		}
	}
}
