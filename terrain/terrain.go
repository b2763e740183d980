// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain synthesizes procedural heightmaps and renders them as
// ASCII art or flat color maps. Heightmaps flow through a strict pipeline:
// generate, resample, blur, normalize/gamma, then output. Each stage takes
// its configuration explicitly; there is no package level state.
package terrain

/*
	List of curated seeds:
		42  archipelago with a central ridge
		56  single large landmass
		123 scattered lakes (use -fill-all)
*/

const (
	// DefaultAmplitude initial diamond-square perturbation scale.
	DefaultAmplitude = 1.0
	// DefaultRoughness per-level perturbation decay.
	DefaultRoughness = 0.65
)

// Source generates heightmap data.
type Source interface {
	// Generate returns a width x height grid of heights in [0,1].
	Generate(width, height int) *Grid
}
