package sparse

import (
	"errors"
	"math"
	"testing"
)

// fromDense builds a sparse matrix from a dense grid, appending only
// the nonzero elements.
func fromDense(t *testing.T, grid [][]float64) *Matrix {
	t.Helper()
	m, err := New(len(grid), len(grid[0]))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, row := range grid {
		for j, v := range row {
			if v != 0 {
				m.Append(i, j, v)
			}
		}
	}
	return m
}

func requireDenseEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d: col count: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range got[i] {
			if math.Abs(got[i][j]-want[i][j]) > eps {
				t.Fatalf("(%d,%d): got %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestNewInvalidShape(t *testing.T) {
	if _, err := New(-1, 3); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
	if _, err := New(3, -1); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestNewZeroDims(t *testing.T) {
	m, err := New(0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, c := m.Dims(); r != 0 || c != 4 {
		t.Errorf("Dims() = (%d, %d), want (0, 4)", r, c)
	}
	if m.NNZ() != 0 {
		t.Errorf("NNZ() = %d, want 0", m.NNZ())
	}
}

func TestAppendAndAt(t *testing.T) {
	m, err := New(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Append(0, 1, 2.5)
	m.Append(2, 2, -1)
	m.Append(0, 1, 0.5) // duplicate coordinate

	if m.NNZ() != 3 {
		t.Fatalf("NNZ() = %d, want 3", m.NNZ())
	}
	if got := m.At(0, 1); got != 3.0 {
		t.Errorf("At(0,1) = %v, want 3", got)
	}
	if got := m.At(1, 1); got != 0 {
		t.Errorf("At(1,1) = %v, want 0", got)
	}
}

func TestAppendSkipsZeros(t *testing.T) {
	m, _ := New(2, 2)
	m.Append(0, 0, 0)
	if m.NNZ() != 0 {
		t.Errorf("NNZ() = %d after appending zero, want 0", m.NNZ())
	}
}

func TestAppendOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		i, j int
	}{
		{"row negative", -1, 0},
		{"row too large", 2, 0},
		{"col negative", 0, -1},
		{"col too large", 0, 2},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Append(%d, %d) did not panic", tt.i, tt.j)
				}
			}()
			m, _ := New(2, 2)
			m.Append(tt.i, tt.j, 1)
		})
	}
}

func TestMulVec(t *testing.T) {
	m := fromDense(t, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})

	y, err := m.MulVec([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{7, 6}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestMulVecLengthMismatch(t *testing.T) {
	m, _ := New(2, 3)
	if _, err := m.MulVec([]float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	dst := make([]float64, 3)
	if err := m.MulVecTo(dst, []float64{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch for bad dst, got %v", err)
	}
}

func TestMulVecToClearsDst(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 1}})
	dst := []float64{99}
	if err := m.MulVecTo(dst, []float64{2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst[0] != 5 {
		t.Errorf("dst[0] = %v, want 5 (stale value not cleared)", dst[0])
	}
}

func TestToDenseSumsDuplicates(t *testing.T) {
	m, _ := New(2, 2)
	m.Append(1, 0, 2)
	m.Append(1, 0, 3)
	requireDenseEqual(t, m.ToDense(), [][]float64{{0, 0}, {5, 0}}, 0)
}

func TestScale(t *testing.T) {
	m := fromDense(t, [][]float64{{1, -2}, {0, 4}})
	requireDenseEqual(t, m.Scale(0.5).ToDense(), [][]float64{{0.5, -1}, {0, 2}}, 1e-15)

	zero := m.Scale(0)
	if zero.NNZ() != 0 {
		t.Errorf("Scale(0) NNZ = %d, want 0", zero.NNZ())
	}
	if r, c := zero.Dims(); r != 2 || c != 2 {
		t.Errorf("Scale(0) Dims = (%d, %d), want (2, 2)", r, c)
	}
}

func TestTranspose(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	requireDenseEqual(t, m.T().ToDense(), [][]float64{{1, 4}, {2, 5}, {3, 6}}, 0)
}

func TestEntriesReturnsCopy(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 2}})
	e := m.Entries()
	e[0].Val = 99
	if m.At(0, 0) != 1 {
		t.Errorf("mutating Entries() result changed the matrix")
	}
}

func TestFromEntries(t *testing.T) {
	m, err := FromEntries(2, 2, []Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 2},
		{Row: 0, Col: 1, Val: 0}, // dropped
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.NNZ() != 2 {
		t.Errorf("NNZ() = %d, want 2", m.NNZ())
	}
}
