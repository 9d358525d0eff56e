package refconv

import (
	"fmt"

	"github.com/cwbudde/algo-sparseconv/convmat"
)

// Conv2D computes dense 2-D convolution of the rows x cols image with
// the filter, trimmed to the given mode per axis.
func Conv2D(img, filter [][]float64, mode convmat.Mode) ([][]float64, error) {
	if len(img) == 0 || len(img[0]) == 0 || len(filter) == 0 || len(filter[0]) == 0 {
		return nil, ErrEmptyInput
	}

	rows := len(img)
	cols := len(img[0])
	fr := len(filter)
	fc := len(filter[0])

	fullRows := rows + fr - 1
	fullCols := cols + fc - 1
	full := make([][]float64, fullRows)
	for u := range full {
		full[u] = make([]float64, fullCols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := img[r][c]
			if v == 0 {
				continue
			}
			for a := 0; a < fr; a++ {
				for b := 0; b < fc; b++ {
					full[r+a][c+b] += v * filter[a][b]
				}
			}
		}
	}

	switch mode {
	case convmat.ModeFull:
		return full, nil
	case convmat.ModeSame:
		return crop2D(full, (fr-1)/2, (fc-1)/2, rows, cols), nil
	case convmat.ModeValid:
		if fr > rows || fc > cols {
			return nil, fmt.Errorf("refconv: filter %dx%d larger than image %dx%d", fr, fc, rows, cols)
		}
		return crop2D(full, fr-1, fc-1, rows-fr+1, cols-fc+1), nil
	default:
		return nil, fmt.Errorf("%w: %d", convmat.ErrUnknownMode, int(mode))
	}
}

// Strided2D computes the reference strided 2-D result: the image is
// padded per mode (full pads filter-1 on every side, same pads
// trailing-biased as in Strided1D) and every stride-th window on both
// axes is evaluated with the filter flipped along both axes.
func Strided2D(img, filter [][]float64, stride int, mode convmat.Mode) ([][]float64, error) {
	if len(img) == 0 || len(img[0]) == 0 || len(filter) == 0 || len(filter[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", convmat.ErrInvalidStride, stride)
	}

	fr := len(filter)
	fc := len(filter[0])

	var padded [][]float64
	switch mode {
	case convmat.ModeFull:
		padded = Pad2D(img, fr-1, fr-1, fc-1, fc-1)
	case convmat.ModeValid:
		padded = img
	case convmat.ModeSame:
		padded = Pad2D(img, fr/2, fr/2-1+len(img)%2, fc/2, fc/2-1+len(img[0])%2)
	default:
		return nil, fmt.Errorf("%w: %d", convmat.ErrUnknownMode, int(mode))
	}

	flipped := Flip2D(filter)
	outRows := (len(padded)-fr)/stride + 1
	outCols := (len(padded[0])-fc)/stride + 1
	out := make([][]float64, outRows)
	for i := 0; i < outRows; i++ {
		out[i] = make([]float64, outCols)
		for j := 0; j < outCols; j++ {
			var sum float64
			for a := 0; a < fr; a++ {
				for b := 0; b < fc; b++ {
					sum += flipped[a][b] * padded[i*stride+a][j*stride+b]
				}
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Pad2D zero-pads a grid with the given number of rows/columns on
// each side. Negative counts pad nothing on that side.
func Pad2D(grid [][]float64, top, bottom, left, right int) [][]float64 {
	if top < 0 {
		top = 0
	}
	if bottom < 0 {
		bottom = 0
	}
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	rows := len(grid)
	cols := len(grid[0])
	out := make([][]float64, top+rows+bottom)
	for i := range out {
		out[i] = make([]float64, left+cols+right)
	}
	for r := 0; r < rows; r++ {
		copy(out[top+r][left:], grid[r])
	}
	return out
}

// Flip2D reverses a grid along both axes.
func Flip2D(grid [][]float64) [][]float64 {
	rows := len(grid)
	cols := len(grid[0])
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = grid[rows-1-r][cols-1-c]
		}
	}
	return out
}

// crop2D extracts a rows x cols window starting at (top, left).
func crop2D(grid [][]float64, top, left, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		copy(out[r], grid[top+r][left:left+cols])
	}
	return out
}
