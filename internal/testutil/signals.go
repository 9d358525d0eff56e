package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicFilter generates a short random filter with a fixed
// seed. Coefficients lie in (0, 1), mirroring uniformly drawn filter
// taps.
func DeterministicFilter(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// DeterministicFilter2D generates a random rows x cols filter grid
// with a fixed seed.
func DeterministicFilter2D(seed int64, rows, cols int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = rng.Float64()
		}
	}
	return out
}

// Ramp generates the sequence 0, 1, ..., length-1.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// TestImage generates a deterministic grayscale patch: a diagonal
// gradient with a sinusoidal texture on top. It stands in for the
// photograph patches a reference image library would provide, while
// keeping values reproducible across runs.
func TestImage(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			gradient := float64(r)*0.5 + float64(c)*0.25
			texture := 10 * math.Sin(0.7*float64(r)) * math.Cos(0.4*float64(c))
			out[r][c] = 100 + gradient + texture
		}
	}
	return out
}
