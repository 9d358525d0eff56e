// Package sparse provides a coordinate-list (COO) sparse matrix for
// building and applying mostly-zero linear operators.
//
// A [Matrix] stores only its nonzero entries as (row, column, value)
// triples. This is the natural representation for convolution
// operators, whose nonzero count grows with the filter length rather
// than with the full operator area.
//
// # Usage
//
// Build a matrix by appending entries, then apply it:
//
//	m, err := sparse.New(3, 4)
//	m.Append(0, 1, 2.5)
//	y, err := m.MulVec(x)
//
// Operators compose without ever densifying:
//
//	k := sparse.Kron(a, b)       // Kronecker product
//	s, err := sparse.Add(a, b)   // coalescing sum
//
// # Determinism
//
// All operations enumerate entries in a fixed order for identical
// inputs. Building the same operator twice yields entry slices that
// compare equal element by element, which callers may rely on for
// caching and reproducibility.
package sparse
