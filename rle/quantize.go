// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rle

// Compress quantizes heights in [0,1] to 4 bits and run-length encodes
// them. The inverse is Decompress; round-tripping loses precision below
// 1/16 but is stable (compressing a decompressed grid is lossless).
func Compress(values []float32) []byte {
	var buffer Buffer
	buffer.Reset(make([]byte, 0, len(values)/8))

	for _, v := range values {
		buffer.writeByte(quantize(v))
	}

	return buffer.Bytes()
}

// Decompress expands n heights from RLE data. Short data fills the rest
// with zeros, mirroring an all-low tail.
func Decompress(data []byte, n int) []float32 {
	var buffer Buffer
	// Copy so Read's in-place count decrements don't mutate the input.
	buffer.Reset(append([]byte(nil), data...))

	raw := make([]byte, n)
	_, _ = buffer.Read(raw)

	values := make([]float32, n)
	for i, b := range raw {
		values[i] = dequantize(b)
	}
	return values
}

// CompressMask packs a bool mask the same way, as 0x00/0xF0 cells.
func CompressMask(cells []bool) []byte {
	var buffer Buffer
	buffer.Reset(make([]byte, 0, len(cells)/16))

	for _, w := range cells {
		if w {
			buffer.writeByte(0xF0)
		} else {
			buffer.writeByte(0)
		}
	}

	return buffer.Bytes()
}

// DecompressMask expands n mask cells from RLE data.
func DecompressMask(data []byte, n int) []bool {
	var buffer Buffer
	buffer.Reset(append([]byte(nil), data...))

	raw := make([]byte, n)
	_, _ = buffer.Read(raw)

	cells := make([]bool, n)
	for i, b := range raw {
		cells[i] = b != 0
	}
	return cells
}

// quantize keeps the 4 most significant bits of the height.
func quantize(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xF0
	}
	return byte(v*255) & 0xF0
}

// dequantize spreads the high nibble across the byte so 0xF0 maps back
// to exactly 1.0.
func dequantize(b byte) float32 {
	return float32(b|b>>4) / 255
}
