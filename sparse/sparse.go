package sparse

import (
	"errors"
	"fmt"
)

// Errors returned by sparse matrix operations.
var (
	ErrInvalidShape   = errors.New("sparse: invalid matrix shape")
	ErrShapeMismatch  = errors.New("sparse: shape mismatch")
	ErrLengthMismatch = errors.New("sparse: vector length mismatch")
)

// Entry is a single nonzero matrix element.
type Entry struct {
	Row, Col int
	Val      float64
}

// Matrix is a sparse matrix in coordinate-list (COO) form.
// Only nonzero entries are stored; everything else is implicitly zero.
//
// The zero value is not usable; create matrices with New or FromEntries.
type Matrix struct {
	rows, cols int
	entries    []Entry
}

// New returns an empty rows x cols sparse matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols}, nil
}

// FromEntries returns a rows x cols sparse matrix holding the given
// entries. The entry slice is copied; explicit zeros are dropped.
func FromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.Append(e.Row, e.Col, e.Val)
	}
	return m, nil
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored nonzero entries.
func (m *Matrix) NNZ() int {
	return len(m.entries)
}

// Append adds a nonzero entry at (i, j). Appending an exact zero is a
// no-op. Out-of-range indices panic: index arithmetic is the caller's
// contract, not a runtime condition.
func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.rows <= i {
		panic(fmt.Sprintf("sparse: row index %d out of range [0, %d)", i, m.rows))
	}
	if j < 0 || m.cols <= j {
		panic(fmt.Sprintf("sparse: column index %d out of range [0, %d)", j, m.cols))
	}
	if v == 0 {
		return
	}
	m.entries = append(m.entries, Entry{Row: i, Col: j, Val: v})
}

// Entries returns a copy of the stored entries in insertion order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// At returns the value at (i, j), summing duplicate entries.
// It runs in O(nnz) and is intended for tests and diagnostics.
func (m *Matrix) At(i, j int) float64 {
	var sum float64
	for _, e := range m.entries {
		if e.Row == i && e.Col == j {
			sum += e.Val
		}
	}
	return sum
}

// MulVec computes y = m*x and returns a new slice of length rows.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	dst := make([]float64, m.rows)
	if err := m.MulVecTo(dst, x); err != nil {
		return nil, err
	}
	return dst, nil
}

// MulVecTo computes dst = m*x into a pre-allocated destination.
// dst must have length rows and x length cols.
func (m *Matrix) MulVecTo(dst, x []float64) error {
	if len(x) != m.cols {
		return fmt.Errorf("%w: have %d, want %d", ErrLengthMismatch, len(x), m.cols)
	}
	if len(dst) != m.rows {
		return fmt.Errorf("%w: have %d, want %d", ErrLengthMismatch, len(dst), m.rows)
	}

	for i := range dst {
		dst[i] = 0
	}
	for _, e := range m.entries {
		dst[e.Row] += e.Val * x[e.Col]
	}
	return nil
}

// ToDense materializes the matrix as a dense row-major grid.
// Duplicate entries are summed. Intended for tests and small operators.
func (m *Matrix) ToDense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for _, e := range m.entries {
		out[e.Row][e.Col] += e.Val
	}
	return out
}

// Scale returns a new matrix with every entry multiplied by s.
// Scaling by zero yields an empty matrix of the same shape.
func (m *Matrix) Scale(s float64) *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols}
	if s == 0 {
		return out
	}
	out.entries = make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out.entries[i] = Entry{Row: e.Row, Col: e.Col, Val: e.Val * s}
	}
	return out
}

// T returns the transpose as a new matrix.
func (m *Matrix) T() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows}
	out.entries = make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out.entries[i] = Entry{Row: e.Col, Col: e.Row, Val: e.Val}
	}
	return out
}
