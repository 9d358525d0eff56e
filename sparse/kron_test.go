package sparse

import "testing"

// denseKron computes the Kronecker product densely, as the reference
// for the sparse implementation.
func denseKron(a, b [][]float64) [][]float64 {
	ar, ac := len(a), len(a[0])
	br, bc := len(b), len(b[0])
	out := make([][]float64, ar*br)
	for i := range out {
		out[i] = make([]float64, ac*bc)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out[i*br+k][j*bc+l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return out
}

func TestKronWikipediaExample(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 2}, {5, 6}}
	b := [][]float64{{7, 8}, {9, 0}}

	got := Kron(fromDense(t, a), fromDense(t, b))

	if r, c := got.Dims(); r != 6 || c != 4 {
		t.Fatalf("Dims() = (%d, %d), want (6, 4)", r, c)
	}
	want := [][]float64{
		{7, 8, 14, 16},
		{9, 0, 18, 0},
		{21, 24, 14, 16},
		{27, 0, 18, 0},
		{35, 40, 42, 48},
		{45, 0, 54, 0},
	}
	requireDenseEqual(t, got.ToDense(), want, 0)
}

func TestKronMatchesDense(t *testing.T) {
	cases := []struct {
		name string
		a, b [][]float64
	}{
		{
			name: "rectangular",
			a:    [][]float64{{0, 1, 0}, {2, 0, 3}},
			b:    [][]float64{{1}, {-1}, {0.5}},
		},
		{
			name: "single entry",
			a:    [][]float64{{2}},
			b:    [][]float64{{0, 4}, {5, 0}},
		},
		{
			name: "negative values",
			a:    [][]float64{{-1, 2}, {3, -4}},
			b:    [][]float64{{0.5, -0.25}, {0, 1}},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Kron(fromDense(t, tt.a), fromDense(t, tt.b))
			requireDenseEqual(t, got.ToDense(), denseKron(tt.a, tt.b), 1e-15)
		})
	}
}

func TestKronEmptyOperand(t *testing.T) {
	a := fromDense(t, [][]float64{{1, 2}, {3, 4}})
	empty, _ := New(3, 2)

	got := Kron(a, empty)
	if r, c := got.Dims(); r != 6 || c != 4 {
		t.Fatalf("Dims() = (%d, %d), want (6, 4)", r, c)
	}
	if got.NNZ() != 0 {
		t.Errorf("NNZ() = %d, want 0", got.NNZ())
	}

	got = Kron(empty, a)
	if r, c := got.Dims(); r != 6 || c != 4 {
		t.Fatalf("Dims() = (%d, %d), want (6, 4)", r, c)
	}
	if got.NNZ() != 0 {
		t.Errorf("NNZ() = %d, want 0", got.NNZ())
	}
}

func TestKronNNZBound(t *testing.T) {
	a := fromDense(t, [][]float64{{1, 0}, {0, 2}})
	b := fromDense(t, [][]float64{{3, 4, 0}})
	got := Kron(a, b)
	if got.NNZ() != a.NNZ()*b.NNZ() {
		t.Errorf("NNZ() = %d, want %d", got.NNZ(), a.NNZ()*b.NNZ())
	}
}

func TestKronDeterministic(t *testing.T) {
	a := fromDense(t, [][]float64{{1, 2}, {0, 3}})
	b := fromDense(t, [][]float64{{4, 0}, {5, 6}})

	first := Kron(a, b).Entries()
	second := Kron(a, b).Entries()
	if len(first) != len(second) {
		t.Fatalf("entry counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
