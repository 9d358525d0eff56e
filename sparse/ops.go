package sparse

import (
	"fmt"
	"sort"
)

// Add returns the coalesced sum a + b. Both operands must share the
// same shape. Entries are merged in (row, column) order; coordinates
// whose values cancel exactly are dropped.
func Add(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, a.rows, a.cols, b.rows, b.cols)
	}

	merged := make([]Entry, 0, len(a.entries)+len(b.entries))
	merged = append(merged, a.entries...)
	merged = append(merged, b.entries...)

	out := &Matrix{rows: a.rows, cols: a.cols}
	out.entries = coalesce(merged)
	return out, nil
}

// Coalesce returns a copy of m with duplicate coordinates summed and
// entries sorted in (row, column) order.
func (m *Matrix) Coalesce() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols}
	entries := make([]Entry, len(m.entries))
	copy(entries, m.entries)
	out.entries = coalesce(entries)
	return out
}

// coalesce sorts entries by (row, col) and merges duplicates in place.
// Sorting keeps the result deterministic for identical inputs.
func coalesce(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Row != entries[j].Row {
			return entries[i].Row < entries[j].Row
		}
		return entries[i].Col < entries[j].Col
	})

	out := entries[:0]
	cur := entries[0]
	for _, e := range entries[1:] {
		if e.Row == cur.Row && e.Col == cur.Col {
			cur.Val += e.Val
			continue
		}
		if cur.Val != 0 {
			out = append(out, cur)
		}
		cur = e
	}
	if cur.Val != 0 {
		out = append(out, cur)
	}
	return out
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	m.entries = make([]Entry, n)
	for i := 0; i < n; i++ {
		m.entries[i] = Entry{Row: i, Col: i, Val: 1}
	}
	return m, nil
}

// Diag returns a rows x cols matrix with diag placed along the band
// starting at (rowOff, colOff). Band elements falling outside the
// matrix are dropped.
func Diag(diag []float64, rowOff, colOff, rows, cols int) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for k, v := range diag {
		i := rowOff + k
		j := colOff + k
		if i < 0 || rows <= i || j < 0 || cols <= j {
			continue
		}
		m.Append(i, j, v)
	}
	return m, nil
}

// SelectRows returns the submatrix formed by the given rows of m, in
// order. Row k of the result is row rowIdx[k] of m. Indices must be
// distinct; out-of-range indices return an error.
func SelectRows(m *Matrix, rowIdx []int) (*Matrix, error) {
	for _, r := range rowIdx {
		if r < 0 || m.rows <= r {
			return nil, fmt.Errorf("%w: row %d out of %d", ErrInvalidShape, r, m.rows)
		}
	}

	// Inverse map from original row to output row, -1 for dropped rows.
	lookup := make([]int, m.rows)
	for i := range lookup {
		lookup[i] = -1
	}
	for k, r := range rowIdx {
		lookup[r] = k
	}

	out := &Matrix{rows: len(rowIdx), cols: m.cols}
	for _, e := range m.entries {
		if k := lookup[e.Row]; k >= 0 {
			out.entries = append(out.entries, Entry{Row: k, Col: e.Col, Val: e.Val})
		}
	}
	return out, nil
}
