// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"
)

func TestChaos_Deterministic(t *testing.T) {
	chaos := NewChaos(42)

	one := chaos.Generate(20, 20)
	two := chaos.Generate(20, 20)

	for i := range one.Values {
		if one.Values[i] != two.Values[i] {
			t.Fatal("same seed diverged at cell", i)
		}
	}
}

func TestChaos_Bounds(t *testing.T) {
	g := NewChaos(1).Generate(40, 30)

	max := float32(0)
	for i, v := range g.Values {
		if v < 0 || v > 1 {
			t.Fatal("cell", i, "out of range:", v)
		}
		if v > max {
			max = v
		}
	}
	// The densest cell normalizes to exactly 1.
	if max != 1 {
		t.Error("expected a full-density cell, max is", max)
	}
}

func TestChaos_NoIterations(t *testing.T) {
	chaos := NewChaos(2)
	chaos.Iterations = 0

	g := chaos.Generate(10, 10)
	for i, v := range g.Values {
		if v != 0 {
			t.Fatal("cell", i, "hit without iterations:", v)
		}
	}
}

func TestChaos_SingleVertex(t *testing.T) {
	// With all weight on one vertex the integer jumps converge to a fixed
	// point near it, which then collects every post-warmup hit.
	chaos := NewChaos(3)
	chaos.Weights = [3]int{1, 0, 0}

	g := chaos.Generate(20, 20)

	dense := 0
	for _, v := range g.Values {
		switch v {
		case 0:
		case 1:
			dense++
		default:
			t.Fatal("expected only empty and full cells, got", v)
		}
	}
	if dense != 1 {
		t.Error("expected exactly 1 dense cell got", dense)
	}
}

func TestChaos_SierpinskiHole(t *testing.T) {
	// The chaos game never lands in the central inverted triangle.
	chaos := NewChaos(4)
	chaos.Iterations = 20000

	g := chaos.Generate(64, 64)
	if v := g.At(32, 40); v != 0 {
		t.Error("central hole cell expected 0 got", v)
	}
}
