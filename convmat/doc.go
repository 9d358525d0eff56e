// Package convmat constructs sparse matrix operators that are
// mathematically equivalent to 1-D and 2-D convolution, so that a
// convolution can be executed as a single sparse matrix-vector
// product against a flattened signal or image.
//
// # Builders
//
//   - [Conv]: 1-D convolution matrix for full/same/valid boundaries
//   - [StridedConv]: 1-D strided variant (valid/same)
//   - [Conv2D]: 2-D operator assembled from 1-D operators via
//     Kronecker products
//   - [StridedConv2D]: 2-D strided variant (full/valid/same)
//
// All builders are pure: given identical arguments they produce
// operators with identical entry lists, and they never alias
// caller-owned storage.
//
// # Flattening contract
//
// The 2-D operators act on the input flattened in column-major order
// (columns concatenated). The product must be reshaped to
// (outputCols, outputRows) and transposed to recover the output grid.
// [FlattenColumnMajor] and [UnflattenOutput] encode this contract;
// feeding a row-major flattened image silently permutes the result,
// so always go through these helpers.
//
//	op, err := convmat.Conv2D(filter, rows, cols, convmat.ModeValid)
//	flat, err := convmat.FlattenColumnMajor(img)
//	y, err := op.MulVec(flat)
//	out, err := convmat.UnflattenOutput(y, outRows, outCols)
//
// # Coefficient conventions
//
// [Conv] and [Conv2D] realize true convolution: the filter is read in
// reversed order across each output row. [StridedConv] instead places
// coefficients in cross-correlation window order (filter read forward
// over the window, reversed values), replicating the frame-by-frame
// subsampled filtering convention. The two conventions agree on the
// operators they produce for the shared modes, but the distinction is
// intentional and mirrors the two reference behaviors the builders
// are validated against; see the individual builder docs.
package convmat
