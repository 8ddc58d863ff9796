// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// impl_subset.go — SubsetGraph / Johnson / Kneser constructors.
//
// Contract:
//   • n ≥ 0 and k ≥ 0 (else ErrInvalidParameter, before any enumeration).
//   • V = C(n,k) with V×V representable as an int and V ≤
//     combin.MaxCombinations (else ErrTooLarge, before any enumeration).
//   • k > n yields a Graph with no vertices and a 0×0 matrix.
//   • Vertices are the k-subsets in lexicographic order (combin.Combinations).
//   • Adjacency follows impl_adjacency.go.
//
// Complexity:
//   • Time: O(V·k) enumeration + O(V²·k) evaluation, V = C(n,k).
//   • Space: O(V·k) vertices + O(V²) matrix.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subsetgraph/combin"
)

// SubsetGraph returns a Constructor for the graph on the k-subsets of
// {0,…,n-1} where two subsets are adjacent iff their intersection size is
// one of sizes.
func SubsetGraph(n, k int, sizes ...int) Constructor {
	allowed := NewAllowedSizes(sizes...)
	return func(cfg builderConfig) (*Graph, error) {
		return buildSubsetGraph(MethodSubsetGraph, n, k, allowed, cfg)
	}
}

// Johnson returns a Constructor for the Johnson graph J(n,k):
// subsets are adjacent iff they share exactly k-1 elements.
// For k = 0 the single vertex has no edges.
func Johnson(n, k int) Constructor {
	allowed := NewAllowedSizes(k - 1)
	return func(cfg builderConfig) (*Graph, error) {
		return buildSubsetGraph(MethodJohnson, n, k, allowed, cfg)
	}
}

// Kneser returns a Constructor for the Kneser graph KG(n,k):
// subsets are adjacent iff they are disjoint. For k = 0 the single (empty)
// vertex is disjoint from itself and carries a self-loop.
func Kneser(n, k int) Constructor {
	allowed := NewAllowedSizes(0)
	return func(cfg builderConfig) (*Graph, error) {
		return buildSubsetGraph(MethodKneser, n, k, allowed, cfg)
	}
}

// buildSubsetGraph is the shared Enumerator → Evaluator pipeline.
// The V×V size is checked before any subset is enumerated.
func buildSubsetGraph(method string, n, k int, allowed AllowedSizes, cfg builderConfig) (*Graph, error) {
	v, err := combin.Binomial(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s(n=%d, k=%d): %w", method, n, k, err)
	}
	if v > 0 && v > math.MaxInt/v {
		return nil, fmt.Errorf("%s(n=%d, k=%d): V=%d: %dx%d cells: %w", method, n, k, v, v, v, ErrTooLarge)
	}

	vertices, err := combin.Combinations(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s(n=%d, k=%d): %w", method, n, k, err)
	}

	adj, err := evaluate(vertices, allowed, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s(n=%d, k=%d): %w", method, n, k, err)
	}

	return &Graph{
		N:         n,
		K:         k,
		Allowed:   allowed,
		Vertices:  vertices,
		Adjacency: adj,
	}, nil
}
