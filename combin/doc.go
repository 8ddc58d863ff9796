// Package combin enumerates the K-element subsets of the base set
// {0,…,N-1} in lexicographic combination order and counts them.
//
// The package provides:
//
//   - Subset: an immutable, sorted set of distinct ints with an O(K)
//     allocation-free IntersectionSize.
//   - Combinations / ForEach: every C(N,K) subset, earliest-possible
//     smallest elements first ({0,1}, {0,2}, …, {N-2,N-1}).
//   - Binomial: C(N,K) with overflow detection.
//
// Conventions:
//
//   - C(N,0) = 1 for every N ≥ 0 (the empty subset), including C(0,0).
//   - K > N is a degenerate but valid request: zero subsets, nil error.
//   - Negative N or K is rejected with ErrInvalidParameter before any
//     enumeration work begins.
//
// The position of a subset in the enumeration is its vertex index in the
// builder package; the order is stable across runs and platforms.
package combin
