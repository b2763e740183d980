// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "strings"

// DefaultPalette maps density from empty to full.
const DefaultPalette = " .:-=+*#%@"

// ASCII renders g as one palette character per cell, rows separated by
// newlines. Heights are mapped to the nearest palette index; an empty
// palette falls back to DefaultPalette.
func ASCII(g *Grid, palette string) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	var builder strings.Builder
	builder.Grow((g.Width + 1) * g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := int(g.At(x, y)*float32(len(palette)-1) + 0.5)
			builder.WriteByte(palette[clampInt(idx, 0, len(palette)-1)])
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
