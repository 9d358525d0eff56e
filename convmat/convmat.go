package convmat

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sparseconv/sparse"
)

// Errors returned by the operator builders.
var (
	ErrEmptyFilter   = errors.New("convmat: empty filter")
	ErrEmptyInput    = errors.New("convmat: empty input geometry")
	ErrUnknownMode   = errors.New("convmat: unknown mode")
	ErrInvalidStride = errors.New("convmat: stride must be positive")
	ErrFilterTooLong = errors.New("convmat: filter longer than input")
	ErrRaggedFilter  = errors.New("convmat: 2-d filter rows differ in length")
	ErrStridedFull   = errors.New("convmat: full mode is not defined for 1-d strided convolution")
	ErrBadShape      = errors.New("convmat: shape mismatch")
)

// Mode selects the boundary handling of a convolution operator.
type Mode int

const (
	// ModeFull keeps every output sample with at least one overlapping
	// input element; output length is input + filter - 1.
	ModeFull Mode = iota

	// ModeSame zero-pads symmetrically so the output length equals the
	// input length. When the required padding is odd, the extra pad
	// element sits on the trailing side.
	ModeSame

	// ModeValid keeps only outputs where the filter lies fully inside
	// the input; output length is input - filter + 1.
	ModeValid
)

// String returns the mode's canonical lower-case name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode. Exactly "full", "same"
// and "valid" are recognized; any other string is an error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// OutputSize returns the 1-D output length for the given input
// length, filter length and mode.
func OutputSize(inputLen, filterLen int, mode Mode) (int, error) {
	if filterLen <= 0 {
		return 0, ErrEmptyFilter
	}
	if inputLen <= 0 {
		return 0, ErrEmptyInput
	}

	switch mode {
	case ModeFull:
		return inputLen + filterLen - 1, nil
	case ModeSame:
		if filterLen > inputLen {
			return 0, fmt.Errorf("%w: filter %d, input %d (same)", ErrFilterTooLong, filterLen, inputLen)
		}
		return inputLen, nil
	case ModeValid:
		if filterLen > inputLen {
			return 0, fmt.Errorf("%w: filter %d, input %d (valid)", ErrFilterTooLong, filterLen, inputLen)
		}
		return inputLen - filterLen + 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// StridedOutputSize returns the 1-D output length after subsampling
// the mode's output grid with the given stride.
//
// Full mode uses ceil((input+filter-1)/stride); it is reachable only
// through the 2-D strided builder, the 1-D builder rejects it.
func StridedOutputSize(inputLen, filterLen, stride int, mode Mode) (int, error) {
	if stride <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	base, err := OutputSize(inputLen, filterLen, mode)
	if err != nil {
		return 0, err
	}
	return (base + stride - 1) / stride, nil
}

// startRow returns the first retained row of the full convolution
// grid for the given mode. Same mode centers with the extra element
// trailing, matching symmetric zero padding.
func startRow(filterLen int, mode Mode) int {
	switch mode {
	case ModeSame:
		return (filterLen - 1) / 2
	case ModeValid:
		return filterLen - 1
	default:
		return 0
	}
}

// Conv constructs the sparse operator equivalent to 1-D convolution
// of an inputLen signal with the given filter.
//
// The result has shape (outputLen, inputLen) with outputLen given by
// [OutputSize]. Row r holds the filter coefficients overlapping
// output position r in reversed order, realizing true convolution:
// applying the operator to a signal x yields y[r] = sum_k f[k]*x[r'-k]
// on the mode's output grid. Out-of-range overlaps are omitted, not
// stored as zeros.
func Conv(filter []float64, inputLen int, mode Mode) (*sparse.Matrix, error) {
	outLen, err := OutputSize(inputLen, len(filter), mode)
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(outLen, inputLen)
	if err != nil {
		return nil, err
	}

	start := startRow(len(filter), mode)
	stop := start + outLen - 1
	for col := 0; col < inputLen; col++ {
		for k := 0; k < len(filter); k++ {
			row := col + k
			if row < start || row > stop {
				continue
			}
			m.Append(row-start, col, filter[k])
		}
	}
	return m, nil
}

// StridedConv constructs the sparse operator for strided 1-D
// convolution. Only ModeValid and ModeSame are defined; ModeFull
// returns ErrStridedFull.
//
// Coefficients are placed in cross-correlation window order: output
// row i covers input positions i*stride+k-padLeft for k = 0..F-1 and
// carries filter[F-1-k] at each, the subsampled sliding-window
// convention. The resulting operator equals every stride-th row of
// the corresponding stride-1 [Conv] operator; the output length is
// the ceiling division of the stride-1 output length. This forward
// window read is intentional and must not be unified with [Conv]'s
// reversed read.
func StridedConv(filter []float64, inputLen, stride int, mode Mode) (*sparse.Matrix, error) {
	if mode == ModeFull {
		return nil, ErrStridedFull
	}
	outLen, err := StridedOutputSize(inputLen, len(filter), stride, mode)
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(outLen, inputLen)
	if err != nil {
		return nil, err
	}

	padLeft := 0
	if mode == ModeSame {
		padLeft = len(filter) / 2
	}
	for row := 0; row < outLen; row++ {
		for k := 0; k < len(filter); k++ {
			col := row*stride + k - padLeft
			if col < 0 || col >= inputLen {
				continue
			}
			m.Append(row, col, filter[len(filter)-1-k])
		}
	}
	return m, nil
}
