// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// allowed.go — the set of intersection sizes that produce an edge.

package builder

import (
	"sort"
	"strconv"
	"strings"
)

// AllowedSizes is an immutable set of intersection sizes. Any int is
// accepted; sizes that are negative or larger than K simply never match.
// The zero value is the empty set (a graph without edges).
type AllowedSizes struct {
	sizes []int // sorted, unique
}

// NewAllowedSizes builds the set from sizes; duplicates collapse.
// Complexity: O(m log m).
func NewAllowedSizes(sizes ...int) AllowedSizes {
	cp := make([]int, len(sizes))
	copy(cp, sizes)
	sort.Ints(cp)

	out := cp[:0]
	for i, s := range cp {
		if i > 0 && s == cp[i-1] {
			continue
		}
		out = append(out, s)
	}

	return AllowedSizes{sizes: out}
}

// Contains reports whether size s produces an edge.
// Complexity: O(log m).
func (a AllowedSizes) Contains(s int) bool {
	i := sort.SearchInts(a.sizes, s)

	return i < len(a.sizes) && a.sizes[i] == s
}

// Sizes returns the members in ascending order (a copy).
func (a AllowedSizes) Sizes() []int {
	out := make([]int, len(a.sizes))
	copy(out, a.sizes)

	return out
}

// Len returns the number of distinct sizes.
func (a AllowedSizes) Len() int { return len(a.sizes) }

// String renders the set as "[0 2]".
func (a AllowedSizes) String() string {
	parts := make([]string, len(a.sizes))
	for i, s := range a.sizes {
		parts[i] = strconv.Itoa(s)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// mask returns a lookup table t of length maxSize+1 with t[s] == Contains(s).
// It turns the per-pair membership test into a single slice index.
func (a AllowedSizes) mask(maxSize int) []bool {
	t := make([]bool, maxSize+1)
	for _, s := range a.sizes {
		if s >= 0 && s <= maxSize {
			t[s] = true
		}
	}

	return t
}
