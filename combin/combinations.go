// SPDX-License-Identifier: MIT
// Package: subsetgraph/combin
//
// combinations.go — lexicographic K-combinations of {0,…,N-1}.
//
// Contract:
//   • n ≥ 0 and k ≥ 0 (else ErrInvalidParameter, before any work).
//   • k > n yields zero subsets and a nil error.
//   • k == 0 yields exactly one (empty) subset.
//   • Order: lexicographic by element tuple; index i is stable across runs.
//
// Complexity:
//   • Time: O(C(n,k) · k) amortized; each step touches the changed suffix.
//   • Space: O(k) working state for ForEach; Combinations holds all subsets.

package combin

import (
	"fmt"
	"math"
	"math/big"
)

// MaxCombinations caps how many subsets Combinations materializes.
// ForEach streams and is not bound by it.
const MaxCombinations = math.MaxInt32

// Binomial returns C(n,k), the number of k-element subsets of an n-set.
// It returns 0 for k > n and 1 for k == 0.
//
// The product is built as C(n-k+i, i) for i = 1..min(k, n-k); every partial
// value is itself a binomial and never decreases, so the loop stops as soon
// as it passes math.MaxInt. At most ~64 steps run before that happens.
//
// Errors:
//   - ErrInvalidParameter when n < 0 or k < 0.
//   - ErrTooLarge when the coefficient exceeds math.MaxInt.
//
// Complexity: O(min(k, n-k, 64)) big-integer multiplications.
func Binomial(n, k int) (int, error) {
	if err := validate(methodBinomial, n, k); err != nil {
		return 0, err
	}
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	limit := big.NewInt(math.MaxInt)
	c := big.NewInt(1)
	var f big.Int
	for i := 1; i <= k; i++ {
		c.Mul(c, f.SetInt64(int64(n-k+i)))
		c.Quo(c, f.SetInt64(int64(i))) // exact: c is C(n-k+i, i)
		if c.Cmp(limit) > 0 {
			return 0, fmt.Errorf("%s: C(%d,%d): %w", methodBinomial, n, k, ErrTooLarge)
		}
	}

	return int(c.Int64()), nil
}

// ForEach calls fn for every k-subset of {0,…,n-1} in lexicographic order,
// passing its zero-based index. Enumeration stops early when fn returns
// false. The Subset handed to fn owns its storage and may be retained.
//
// Errors: ErrInvalidParameter for negative n or k; nothing is enumerated.
func ForEach(n, k int, fn func(idx int, s Subset) bool) error {
	if err := validate(methodForEach, n, k); err != nil {
		return err
	}
	if k > n {
		return nil // degenerate: no vertices
	}

	// cur holds the current combination; start with the smallest {0..k-1}.
	cur := make([]int, k)
	for i := range cur {
		cur[i] = i
	}

	for count := 0; ; count++ {
		elems := make([]int, k)
		copy(elems, cur)
		if !fn(count, Subset{elems: elems}) {
			return nil
		}

		// Find the rightmost position that can still advance:
		// position i may hold at most n-k+i.
		i := k - 1
		for i >= 0 && cur[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil // last combination emitted
		}
		cur[i]++
		for j := i + 1; j < k; j++ {
			cur[j] = cur[j-1] + 1
		}
	}
}

// Combinations returns all C(n,k) k-subsets of {0,…,n-1} in lexicographic
// order. k > n returns an empty, non-nil slice.
//
// Errors: ErrInvalidParameter, ErrTooLarge (count above MaxCombinations).
func Combinations(n, k int) ([]Subset, error) {
	total, err := Binomial(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCombinations, err)
	}
	if total > MaxCombinations {
		return nil, fmt.Errorf("%s: C(%d,%d)=%d exceeds %d: %w", methodCombinations, n, k, total, MaxCombinations, ErrTooLarge)
	}

	out := make([]Subset, 0, total)
	err = ForEach(n, k, func(_ int, s Subset) bool {
		out = append(out, s)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCombinations, err)
	}

	return out, nil
}

// validate applies the shared parameter contract for n and k.
func validate(method string, n, k int) error {
	if n < 0 || k < 0 {
		return fmt.Errorf("%s: n=%d, k=%d (both must be ≥ 0): %w", method, n, k, ErrInvalidParameter)
	}

	return nil
}
