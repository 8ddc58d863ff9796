// SPDX-License-Identifier: MIT
// Package: subsetgraph/combin
//
// errors.go — sentinel errors for the combin package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("<Method>: ...: %w", ErrX).

package combin

import "errors"

// ErrInvalidParameter indicates that N or K is negative.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("combin: invalid parameter")

// ErrTooLarge indicates that C(N,K) does not fit into an int, or exceeds
// MaxCombinations when the subsets are materialized.
var ErrTooLarge = errors.New("combin: subset count too large")

// Method tags used as error prefixes.
const (
	methodBinomial     = "Binomial"
	methodCombinations = "Combinations"
	methodForEach      = "ForEach"
)
