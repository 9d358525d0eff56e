// Package refconv provides dense reference convolutions used to
// validate the sparse operators. It is deliberately slow and simple:
// direct sliding-window evaluation with an independent FFT-based
// cross-check, so that a disagreement with the sparse path always
// points at the operator construction.
package refconv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sparseconv/convmat"
)

// ErrEmptyInput is returned when a signal or filter is empty.
var ErrEmptyInput = errors.New("refconv: empty input")

// Direct computes the full dense 1-D convolution of a and b.
// The result has length len(a) + len(b) - 1.
func Direct(a, b []float64) []float64 {
	n := len(a)
	m := len(b)
	out := make([]float64, n+m-1)

	bRev := make([]float64, m)
	for i := range b {
		bRev[i] = b[m-1-i]
	}

	scratch := make([]float64, m)
	for r := range out {
		lo := 0
		if r-m+1 > 0 {
			lo = r - m + 1
		}
		hi := r
		if hi > n-1 {
			hi = n - 1
		}
		w := hi - lo + 1

		// Windowed product a[lo..hi] * b[r-lo .. r-hi], taken through
		// the reversed filter so both factors run forward.
		off := m - 1 - r + lo
		vecmath.MulBlock(scratch[:w], a[lo:hi+1], bRev[off:off+w])

		var sum float64
		for _, v := range scratch[:w] {
			sum += v
		}
		out[r] = sum
	}
	return out
}

// WithMode computes dense 1-D convolution trimmed to the given mode.
func WithMode(a, b []float64, mode convmat.Mode) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	full := Direct(a, b)
	switch mode {
	case convmat.ModeFull:
		return full, nil
	case convmat.ModeSame:
		start := (len(b) - 1) / 2
		return full[start : start+len(a)], nil
	case convmat.ModeValid:
		if len(b) > len(a) {
			return nil, fmt.Errorf("refconv: filter %d longer than input %d", len(b), len(a))
		}
		return full[len(b)-1 : len(a)], nil
	default:
		return nil, fmt.Errorf("%w: %d", convmat.ErrUnknownMode, int(mode))
	}
}

// FFT computes the full dense 1-D convolution of a and b via a
// zero-padded FFT, giving the tests a reference that is independent
// of the direct sliding-window path.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("refconv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("refconv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("refconv: forward FFT failed: %w", err)
	}

	prod := make([]complex128, fftSize)
	for i := range prod {
		prod[i] = aFreq[i] * bFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, prod); err != nil {
		return nil, fmt.Errorf("refconv: inverse FFT failed: %w", err)
	}

	out := make([]float64, n+m-1)
	for i := range out {
		out[i] = real(resultTime[i])
	}
	return out, nil
}

// Strided1D computes the reference strided 1-D result the strided
// operator must match: the signal is padded per mode (same pads
// filter/2 left and filter/2-1+len%2 right), then every stride-th
// window is evaluated with the filter coefficients reversed.
func Strided1D(signal, filter []float64, stride int, mode convmat.Mode) ([]float64, error) {
	if len(signal) == 0 || len(filter) == 0 {
		return nil, ErrEmptyInput
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", convmat.ErrInvalidStride, stride)
	}

	f := len(filter)
	var padded []float64
	switch mode {
	case convmat.ModeValid:
		padded = signal
	case convmat.ModeSame:
		padded = pad1D(signal, f/2, f/2-1+len(signal)%2)
	case convmat.ModeFull:
		return nil, convmat.ErrStridedFull
	default:
		return nil, fmt.Errorf("%w: %v", convmat.ErrUnknownMode, mode)
	}

	outLen := (len(padded)-f)/stride + 1
	out := make([]float64, outLen)
	for i := 0; i < outLen; i++ {
		var sum float64
		for k := 0; k < f; k++ {
			sum += filter[f-1-k] * padded[i*stride+k]
		}
		out[i] = sum
	}
	return out, nil
}

// pad1D zero-pads x with left and right elements. Negative counts
// (single-tap filters in same mode) pad nothing on that side.
func pad1D(x []float64, left, right int) []float64 {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	out := make([]float64, left+len(x)+right)
	copy(out[left:], x)
	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
