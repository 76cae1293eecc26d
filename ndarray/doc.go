// Package ndarray provides immutable n-dimensional float64 arrays.
//
// The ndarray package provides:
//
//   - Array, a row-major buffer with an arbitrary shape (0-d scalars and
//     zero-size axes included). Every operation returns a new Array.
//   - Shape and selection operations with numpy semantics: Reshape,
//     Transpose, MoveAxis, RollAxis, Flip, Roll, Rot90, Tile, Repeat, Take,
//     Delete, Insert, Append, Concatenate, Squeeze, ExpandDims, Resize.
//   - Broadcasting (BroadcastShapes, BroadcastTo, Broadcast2) and
//     element-wise kernels (Map, Zip, Round, Clip, named ufuncs).
//   - A dispatch protocol (Operand) so the package-level generic functions
//     (Flip, Append, Sin, Call, ...) also accept array-like types built on
//     top of Array, such as quantities with uncertainty.
//
// Errors are sentinels (ErrBadShape, ErrShapeMismatch, ErrAxis, ...) wrapped
// with the operation name; match them with errors.Is.
package ndarray
