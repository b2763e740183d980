// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"
)

func TestRand_Deterministic(t *testing.T) {
	one := NewRand(42)
	two := NewRand(42)

	for i := 0; i < 1000; i++ {
		if a, b := one.Float(), two.Float(); a != b {
			t.Fatal("same seed diverged at draw", i, a, b)
		}
	}
}

func TestRand_Range(t *testing.T) {
	rng := NewRand(123)

	for i := 0; i < 10000; i++ {
		if v := rng.Float(); v < 0 || v >= 1 {
			t.Fatal("Float out of [0,1) at draw", i, ":", v)
		}
	}

	for i := 0; i < 10000; i++ {
		if v := rng.Symmetric(); v < -1 || v > 1 {
			t.Fatal("Symmetric out of [-1,1] at draw", i, ":", v)
		}
	}
}

func TestRand_ZeroSeed(t *testing.T) {
	rng := NewRand(0)
	first := rng.Float()

	// A zero state would lock the low-quality LCG tail to a fixed orbit;
	// seed 0 is remapped, so it behaves like any other stream.
	other := NewRand(0)
	if second := other.Float(); first != second {
		t.Error("zero seed not deterministic:", first, second)
	}
}
