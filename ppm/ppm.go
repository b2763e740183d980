// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ppm encodes and decodes binary PPM (P6) images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes a binary P6 image: "P6\n<W> <H>\n255\n" followed by
// width*height*3 raw RGB bytes, row-major. A short write is an error.
func Encode(w io.Writer, width, height int, rgb []byte) error {
	if len(rgb) != width*height*3 {
		return fmt.Errorf("ppm: pixel buffer is %d bytes, want %d", len(rgb), width*height*3)
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	_, err := w.Write(rgb)
	return err
}

// Decode reads a P6 image with a maximum color value of 255.
// A truncated pixel stream is an error.
func Decode(r io.Reader) (width, height int, rgb []byte, err error) {
	buffered := bufio.NewReader(r)

	var magic string
	var maxVal int
	if _, err = fmt.Fscan(buffered, &magic, &width, &height, &maxVal); err != nil {
		return 0, 0, nil, fmt.Errorf("ppm: malformed header: %w", err)
	}
	if magic != "P6" {
		return 0, 0, nil, fmt.Errorf("ppm: bad magic %q", magic)
	}
	if maxVal != 255 {
		return 0, 0, nil, fmt.Errorf("ppm: unsupported max value %d", maxVal)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, nil, fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}

	// Exactly one whitespace byte separates the header from the pixels.
	if _, err = buffered.ReadByte(); err != nil {
		return 0, 0, nil, fmt.Errorf("ppm: malformed header: %w", err)
	}

	rgb = make([]byte, width*height*3)
	if _, err = io.ReadFull(buffered, rgb); err != nil {
		return 0, 0, nil, fmt.Errorf("ppm: truncated pixel data: %w", err)
	}

	return width, height, rgb, nil
}

// WriteFile writes a P6 image to path, wrapping any failure with the path.
func WriteFile(path string, width, height int, rgb []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}

	if err := Encode(f, width, height, rgb); err != nil {
		_ = f.Close()
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	return nil
}
