// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/chewxy/math32"

// Normalize rescales g to span [0,1] exactly.
// A flat grid collapses to 0.5 everywhere.
func Normalize(g *Grid) {
	min, max := g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	if span <= 1e-9 {
		g.Fill(0.5)
		return
	}

	inv := 1 / span
	for i, v := range g.Values {
		g.Values[i] = (v - min) * inv
	}
}

// Gamma applies gamma correction v^(1/gamma) to g in place.
// Values are clamped to [0,1] first. gamma <= 0 and gamma == 1 are no-ops.
func Gamma(g *Grid, gamma float32) {
	if gamma <= 0 || gamma == 1 {
		return
	}

	exp := 1 / gamma
	for i, v := range g.Values {
		g.Values[i] = math32.Pow(clamp01(v), exp)
	}
}
