// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Rand is a deterministic linear congruential generator.
// Identical seeds always produce identical sequences, which the fractal
// generator relies on for reproducible heightmaps.
type Rand struct {
	state uint32
}

// NewRand seeds a Rand. A zero seed is coerced to 1.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = 1
	}
	return Rand{state: uint32(seed)}
}

func (r *Rand) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float returns a uniform value in [0,1) with 24 bits of precision.
func (r *Rand) Float() float32 {
	return float32(r.next()&0xFFFFFF) / float32(0x1000000)
}

// Symmetric returns a uniform value in [-1,1).
func (r *Rand) Symmetric() float32 {
	return r.Float()*2 - 1
}

// Intn returns a uniform value in [0,n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.next() % uint32(n))
}
