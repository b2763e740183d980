// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Fractal generates heightmaps by diamond-square midpoint displacement.
//
// Randomness convention: the four corner values are drawn uniformly from
// [0,1); every midpoint adds a symmetric offset in [-1,1] scaled by
// Amplitude * Roughness^level, and every write is clamped to [0,1].
// Identical (side, Amplitude, Roughness, Seed) produce bit-identical grids.
type Fractal struct {
	Amplitude float32
	Roughness float32
	Seed      int64
}

// NewFractal returns a Fractal with the default amplitude and roughness.
func NewFractal(seed int64) Fractal {
	return Fractal{
		Amplitude: DefaultAmplitude,
		Roughness: DefaultRoughness,
		Seed:      seed,
	}
}

// FractalSide returns the smallest side 2^n + 1 (n >= 1) that is >= need.
func FractalSide(need int) int {
	side := 2
	for side+1 < need {
		side <<= 1
	}
	return side + 1
}

// Generate implements Source. It runs diamond-square on the smallest
// square buffer covering width x height, then resamples bilinearly.
func (f Fractal) Generate(width, height int) *Grid {
	buf := f.Buffer(FractalSide(maxInt(width, height)))
	return Resample(buf, width, height)
}

// Buffer runs diamond-square on a side x side grid.
// side must be of the form 2^n + 1; the caller is responsible for it
// (use FractalSide).
func (f Fractal) Buffer(side int) *Grid {
	g := NewGrid(side, side)
	rng := NewRand(f.Seed)

	last := side - 1
	g.Set(0, 0, rng.Float())
	g.Set(last, 0, rng.Float())
	g.Set(0, last, rng.Float())
	g.Set(last, last, rng.Float())

	scale := f.Amplitude
	for step := last; step > 1; step /= 2 {
		half := step / 2

		// Diamond: centers of squares, averaged from the four diagonal
		// corners at distance half.
		for y := half; y < side; y += step {
			for x := half; x < side; x += step {
				avg := (g.At(x-half, y-half) +
					g.At(x+half, y-half) +
					g.At(x-half, y+half) +
					g.At(x+half, y+half)) * 0.25
				g.Set(x, y, clamp01(avg+rng.Symmetric()*scale))
			}
		}

		// Square: remaining midpoints on grid lines, averaged from the
		// orthogonal neighbors that exist (2-4; fewer at the edges).
		for y := 0; y <= last; y += half {
			start := half
			if (y/half)%2 == 1 {
				start = 0
			}
			for x := start; x <= last; x += step {
				var sum float32
				var count int
				if x-half >= 0 {
					sum += g.At(x-half, y)
					count++
				}
				if x+half <= last {
					sum += g.At(x+half, y)
					count++
				}
				if y-half >= 0 {
					sum += g.At(x, y-half)
					count++
				}
				if y+half <= last {
					sum += g.At(x, y+half)
					count++
				}
				avg := sum / float32(count)
				g.Set(x, y, clamp01(avg+rng.Symmetric()*scale))
			}
		}

		scale *= f.Roughness
	}

	return g
}
