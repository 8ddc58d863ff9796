// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d: %w", methodSubsetGraph, n, ErrInvalidParameter)
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"

	"github.com/katalvlaran/subsetgraph/combin"
)

// ErrInvalidParameter indicates a negative N or K. It is the same sentinel
// as combin.ErrInvalidParameter, so either name matches with errors.Is.
var ErrInvalidParameter = combin.ErrInvalidParameter

// ErrTooLarge indicates that the vertex count C(N,K), or the V×V matrix it
// implies, does not fit into an int. Alias of combin.ErrTooLarge.
var ErrTooLarge = combin.ErrTooLarge

// ErrConstructFailed indicates that a constructor could not produce the
// graph for a reason other than its parameters (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
