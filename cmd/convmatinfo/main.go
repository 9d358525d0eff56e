// Command convmatinfo prints size and sparsity statistics of sparse
// convolution operators.
//
// Usage:
//
//	convmatinfo [flags]
//
// Examples:
//
//	convmatinfo -n 64 -filter 0.25,0.5,0.25 -mode same
//	convmatinfo -n 128 -filter 1,1 -mode valid -stride 2
//	convmatinfo -rows 16 -cols 16 -filter "1,2;3,4" -mode full
//	convmatinfo -rows 32 -cols 32 -filter "1,0;0,1" -mode valid -stride 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sparseconv/convmat"
	"github.com/cwbudde/algo-sparseconv/sparse"
)

func main() {
	n := flag.Int("n", 0, "1-D input length")
	rows := flag.Int("rows", 0, "2-D input rows")
	cols := flag.Int("cols", 0, "2-D input columns")
	filterSpec := flag.String("filter", "0.25,0.5,0.25", "filter taps: comma-separated, rows separated by ';' for 2-D")
	modeName := flag.String("mode", "valid", "boundary mode: full, same or valid")
	stride := flag.Int("stride", 1, "output subsampling stride")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convmatinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints shape and sparsity statistics of sparse convolution operators.\n")
		fmt.Fprintf(os.Stderr, "Use -n for 1-D operators or -rows/-cols for 2-D operators.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  convmatinfo -n 64 -filter 0.25,0.5,0.25 -mode same\n")
		fmt.Fprintf(os.Stderr, "  convmatinfo -rows 16 -cols 16 -filter \"1,2;3,4\" -mode full -stride 2\n")
	}
	flag.Parse()

	mode, err := convmat.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	filter, err := parseFilter(*filterSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var op *sparse.Matrix
	var label string
	switch {
	case *n > 0:
		taps := filter[0]
		if len(filter) > 1 {
			fmt.Fprintf(os.Stderr, "error: 2-D filter given for a 1-D operator\n")
			os.Exit(1)
		}
		if *stride > 1 {
			label = fmt.Sprintf("strided 1-D (stride %d)", *stride)
			op, err = convmat.StridedConv(taps, *n, *stride, mode)
		} else {
			label = "1-D"
			op, err = convmat.Conv(taps, *n, mode)
		}
	case *rows > 0 && *cols > 0:
		if *stride > 1 {
			label = fmt.Sprintf("strided 2-D (stride %d)", *stride)
			op, err = convmat.StridedConv2D(filter, *rows, *cols, *stride, mode)
		} else {
			label = "2-D"
			op, err = convmat.Conv2D(filter, *rows, *cols, mode)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printStats(label, mode, op)
}

// parseFilter parses "a,b,c" (1-D) or "a,b;c,d" (2-D row grid).
func parseFilter(spec string) ([][]float64, error) {
	rowSpecs := strings.Split(spec, ";")
	filter := make([][]float64, 0, len(rowSpecs))
	for _, rowSpec := range rowSpecs {
		fields := strings.Split(rowSpec, ",")
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid filter tap %q", field)
			}
			row = append(row, v)
		}
		filter = append(filter, row)
	}
	return filter, nil
}

func printStats(label string, mode convmat.Mode, op *sparse.Matrix) {
	rows, cols := op.Dims()
	nnz := op.NNZ()
	density := 0.0
	if rows > 0 && cols > 0 {
		density = float64(nnz) / (float64(rows) * float64(cols))
	}

	perRow := make([]int, rows)
	for _, e := range op.Entries() {
		perRow[e.Row]++
	}
	minRow, maxRow := 0, 0
	if rows > 0 {
		minRow, maxRow = perRow[0], perRow[0]
		for _, c := range perRow[1:] {
			if c < minRow {
				minRow = c
			}
			if c > maxRow {
				maxRow = c
			}
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Builder\tMode\tShape\tNNZ\tDensity\tNNZ/row\n")
	fmt.Fprintf(tw, "-------\t----\t-----\t---\t-------\t-------\n")
	fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%.4f\t%d..%d\n",
		label, mode, rows, cols, nnz, density, minRow, maxRow)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
