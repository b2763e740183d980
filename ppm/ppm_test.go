// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package ppm

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	const width, height = 7, 5

	rgb := make([]byte, width*height*3)
	rng := rand.New(rand.NewSource(1))
	for i := range rgb {
		rgb[i] = byte(rng.Intn(256))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, width, height, rgb); err != nil {
		t.Fatal("encode:", err)
	}

	w, h, decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal("decode:", err)
	}
	if w != width || h != height {
		t.Fatal("expected", width, "x", height, "got", w, "x", h)
	}
	if !bytes.Equal(rgb, decoded) {
		t.Error("pixels changed in round trip")
	}
}

func TestEncode_ShortBuffer(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, 4, 4, make([]byte, 10)); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []string{
		"",
		"P5\n2 2\n255\n" + strings.Repeat("x", 12), // wrong magic
		"P6\n2 2\n65535\n",                         // unsupported depth
		"P6\n0 2\n255\n",                           // bad dimensions
		"P6\n2 2\n255\nxxx",                        // truncated pixels
	}

	for _, c := range cases {
		if _, _, _, err := Decode(strings.NewReader(c)); err == nil {
			t.Errorf("input %q expected error", c)
		}
	}
}

func TestEncode_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, 2, 1, make([]byte, 6)); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("P6\n2 1\n255\n")) {
		t.Errorf("unexpected header: %q", buf.Bytes()[:11])
	}
}
