package sparse

// Kron returns the Kronecker product a (x) b.
//
// For a of shape m x n and b of shape p x q the result has shape
// mp x nq with (a (x) b)[i*p+k, j*q+l] = a[i,j] * b[k,l]. Only the
// nonzero coordinate lists are combined; the result holds at most
// nnz(a)*nnz(b) entries and the dense product is never materialized.
func Kron(a, b *Matrix) *Matrix {
	ar, ac := a.Dims()
	br, bc := b.Dims()

	out := &Matrix{rows: ar * br, cols: ac * bc}
	if len(a.entries) == 0 || len(b.entries) == 0 {
		return out
	}

	out.entries = make([]Entry, 0, len(a.entries)*len(b.entries))
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			out.entries = append(out.entries, Entry{
				Row: ea.Row*br + eb.Row,
				Col: ea.Col*bc + eb.Col,
				Val: ea.Val * eb.Val,
			})
		}
	}
	return out
}
