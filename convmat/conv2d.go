package convmat

import (
	"fmt"

	"github.com/cwbudde/algo-sparseconv/sparse"
)

// checkFilter2D validates a 2-D filter grid and returns its shape.
func checkFilter2D(filter [][]float64) (fr, fc int, err error) {
	if len(filter) == 0 || len(filter[0]) == 0 {
		return 0, 0, ErrEmptyFilter
	}
	fr = len(filter)
	fc = len(filter[0])
	for i, row := range filter {
		if len(row) != fc {
			return 0, 0, fmt.Errorf("%w: row %d has %d taps, want %d", ErrRaggedFilter, i, len(row), fc)
		}
	}
	return fr, fc, nil
}

// filterColumn extracts column b of the filter grid.
func filterColumn(filter [][]float64, b int) []float64 {
	col := make([]float64, len(filter))
	for a := range filter {
		col[a] = filter[a][b]
	}
	return col
}

// Conv2D constructs the sparse operator equivalent to 2-D convolution
// of a rows x cols input with the given filter (filterRows x
// filterCols), for the given mode.
//
// The operator has shape (outRows*outCols, rows*cols) and acts on the
// input flattened in column-major order; see [FlattenColumnMajor] and
// [UnflattenOutput] for the full contract.
//
// Construction decomposes the filter by column offset: each offset b
// contributes the Kronecker product of a unit-shift operator along
// the column axis (the 1-D operator of an impulse at position b) with
// the 1-D convolution operator of filter column b along the row axis.
// The sum of these terms reproduces dense 2-D convolution exactly
// while holding at most filterRows*filterCols entries per output
// element.
func Conv2D(filter [][]float64, rows, cols int, mode Mode) (*sparse.Matrix, error) {
	fr, fc, err := checkFilter2D(filter)
	if err != nil {
		return nil, err
	}

	outRows, err := OutputSize(rows, fr, mode)
	if err != nil {
		return nil, fmt.Errorf("row axis: %w", err)
	}
	outCols, err := OutputSize(cols, fc, mode)
	if err != nil {
		return nil, fmt.Errorf("column axis: %w", err)
	}

	op, err := sparse.New(outRows*outCols, rows*cols)
	if err != nil {
		return nil, err
	}

	impulse := make([]float64, fc)
	for b := 0; b < fc; b++ {
		rowOp, err := Conv(filterColumn(filter, b), rows, mode)
		if err != nil {
			return nil, fmt.Errorf("row axis: %w", err)
		}

		impulse[b] = 1
		shiftOp, err := Conv(impulse, cols, mode)
		impulse[b] = 0
		if err != nil {
			return nil, fmt.Errorf("column axis: %w", err)
		}

		op, err = sparse.Add(op, sparse.Kron(shiftOp, rowOp))
		if err != nil {
			return nil, err
		}
	}
	return op, nil
}

// StridedConv2D constructs the sparse operator for strided 2-D
// convolution. All three modes are supported.
//
// The stride-1 operator from [Conv2D] is built first; the strided
// operator retains the rows whose 2-D output coordinates are
// multiples of the stride on both axes, enumerated in column-major
// order. Per axis the output length is therefore the ceiling division
// of the stride-1 output length: ceil((size+filter-1)/stride) for
// full, (size-filter)/stride+1 for valid and ceil(size/stride) for
// same, with same keeping the trailing-biased padding of
// [StridedConv].
func StridedConv2D(filter [][]float64, rows, cols, stride int, mode Mode) (*sparse.Matrix, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}

	op, err := Conv2D(filter, rows, cols, mode)
	if err != nil {
		return nil, err
	}

	fr := len(filter)
	fc := len(filter[0])
	outRows, _ := OutputSize(rows, fr, mode)
	outCols, _ := OutputSize(cols, fc, mode)

	// Column-major enumeration of the retained output grid points.
	keep := make([]int, 0, ((outRows+stride-1)/stride)*((outCols+stride-1)/stride))
	for w := 0; w < outCols; w += stride {
		for u := 0; u < outRows; u += stride {
			keep = append(keep, w*outRows+u)
		}
	}
	return sparse.SelectRows(op, keep)
}

// FlattenColumnMajor flattens a rows x cols grid in column-major
// order (columns concatenated), the layout the 2-D operators act on.
// The grid must be rectangular and non-empty.
func FlattenColumnMajor(grid [][]float64) ([]float64, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadShape)
	}
	rows := len(grid)
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrBadShape, i, len(row), cols)
		}
	}

	flat := make([]float64, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			flat[c*rows+r] = grid[r][c]
		}
	}
	return flat, nil
}

// UnflattenOutput reshapes the flat product of a 2-D operator back to
// an outRows x outCols grid. The flat vector is laid out column-major
// (reshape to (outCols, outRows), then transpose); using a row-major
// reshape instead silently permutes the result, which is why this
// helper is part of the public contract.
func UnflattenOutput(flat []float64, outRows, outCols int) ([][]float64, error) {
	if outRows <= 0 || outCols <= 0 || len(flat) != outRows*outCols {
		return nil, fmt.Errorf("%w: %d elements for %dx%d output", ErrBadShape, len(flat), outRows, outCols)
	}

	grid := make([][]float64, outRows)
	for r := range grid {
		grid[r] = make([]float64, outCols)
		for c := 0; c < outCols; c++ {
			grid[r][c] = flat[c*outRows+r]
		}
	}
	return grid, nil
}
