package convmat_test

import (
	"fmt"

	"github.com/cwbudde/algo-sparseconv/convmat"
)

func ExampleConv() {
	// Valid-mode convolution of a length-4 signal with a two-tap
	// filter, executed as a sparse matrix-vector product.
	op, _ := convmat.Conv([]float64{1, 2}, 4, convmat.ModeValid)
	rows, cols := op.Dims()

	y, _ := op.MulVec([]float64{1, 1, 1, 1})

	fmt.Printf("operator: %dx%d, nnz %d\n", rows, cols, op.NNZ())
	fmt.Printf("y: %.0f\n", y)

	// Output:
	// operator: 3x4, nnz 6
	// y: [3 3 3]
}

func ExampleParseMode() {
	mode, _ := convmat.ParseMode("same")
	fmt.Println(mode)

	_, err := convmat.ParseMode("reflect")
	fmt.Println(err)

	// Output:
	// same
	// convmat: unknown mode: "reflect"
}

func ExampleConv2D() {
	// Convolving a centered impulse stamps the filter into the output.
	img := [][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	filter := [][]float64{
		{1, 2},
		{3, 4},
	}

	op, _ := convmat.Conv2D(filter, 3, 3, convmat.ModeFull)

	flat, _ := convmat.FlattenColumnMajor(img)
	y, _ := op.MulVec(flat)
	out, _ := convmat.UnflattenOutput(y, 4, 4)

	for _, row := range out {
		fmt.Printf("%.0f\n", row)
	}

	// Output:
	// [0 0 0 0]
	// [0 1 2 0]
	// [0 3 4 0]
	// [0 0 0 0]
}

func ExampleStridedConv() {
	// Stride-2 valid convolution keeps every second output sample.
	op, _ := convmat.StridedConv([]float64{1, 1}, 8, 2, convmat.ModeValid)
	rows, cols := op.Dims()

	y, _ := op.MulVec([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	fmt.Printf("operator: %dx%d\n", rows, cols)
	fmt.Printf("y: %.0f\n", y)

	// Output:
	// operator: 4x8
	// y: [1 5 9 13]
}
