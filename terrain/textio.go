// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MalformedInputError reports a missing or non-numeric heightmap token.
type MalformedInputError struct {
	Row int
	Col int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed heightmap input at row %d, col %d", e.Row, e.Col)
}

// ReadGrid parses width*height whitespace-separated values from r into a
// new grid, clamping each to [0,1]. A short or non-numeric read fails with
// a MalformedInputError locating the offending cell.
func ReadGrid(r io.Reader, width, height int) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, err
				}
				return nil, &MalformedInputError{Row: y, Col: x}
			}
			v, err := strconv.ParseFloat(scanner.Text(), 32)
			if err != nil {
				return nil, &MalformedInputError{Row: y, Col: x}
			}
			g.Set(x, y, clamp01(float32(v)))
		}
	}

	return g, nil
}

// WriteGrid writes g as 6-decimal values, space separated, one row per line.
// The output parses back with ReadGrid.
func WriteGrid(w io.Writer, g *Grid) error {
	buffered := bufio.NewWriter(w)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				if err := buffered.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(buffered, "%.6f", g.At(x, y)); err != nil {
				return err
			}
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}

	return buffered.Flush()
}
