// Package matrix offers the dense 0/1 storage behind subset-graph
// adjacency matrices, plus the plain-text writer and reader.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set that
//     never panic, and a deep Clone.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateBinary) returning sentinel errors for errors.Is.
//   - RowSums / ColSums, i.e. vertex degrees of an adjacency matrix.
//   - WriteText / WriteTextFile / ReadText: one row per line, every entry
//     rendered as 0 or 1 and followed by a single space (including the last
//     entry of the row), then "\n". A 0×0 matrix is an empty file.
//
// Dense storage costs O(V²) memory; the subset graphs built on top of it
// have V = C(N,K) vertices, so callers should size N and K accordingly.
package matrix
