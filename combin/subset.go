// SPDX-License-Identifier: MIT
// Package: subsetgraph/combin
//
// subset.go — the Subset value type (one graph vertex).
//
// Representation:
//   • A strictly increasing []int, never mutated after construction.
//   • Sorted storage turns intersection counting into a linear merge:
//     O(|a|+|b|) time, zero allocations.

package combin

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Subset is an immutable set of distinct non-negative ints kept in
// ascending order. The zero value is the empty set.
type Subset struct {
	elems []int // strictly increasing; shared only with read-only callers
}

// NewSubset builds a Subset from arbitrary elements. Duplicates are
// collapsed; negative values are rejected with ErrInvalidParameter.
// Complexity: O(m log m) for m = len(elems).
func NewSubset(elems ...int) (Subset, error) {
	cp := make([]int, len(elems))
	copy(cp, elems)
	sort.Ints(cp)

	out := cp[:0]
	for i, v := range cp {
		if v < 0 {
			return Subset{}, fmt.Errorf("NewSubset: element %d: %w", v, ErrInvalidParameter)
		}
		if i > 0 && v == cp[i-1] {
			continue // collapse duplicates
		}
		out = append(out, v)
	}

	return Subset{elems: out}, nil
}

// Len returns the number of elements (K for every vertex of one graph).
func (s Subset) Len() int { return len(s.elems) }

// At returns the i-th smallest element. It panics on an out-of-range i,
// like indexing a slice.
func (s Subset) At(i int) int { return s.elems[i] }

// Elements returns a copy of the elements in ascending order.
func (s Subset) Elements() []int {
	out := make([]int, len(s.elems))
	copy(out, s.elems)

	return out
}

// Contains reports whether x is a member. Complexity: O(log K).
func (s Subset) Contains(x int) bool {
	i := sort.SearchInts(s.elems, x)

	return i < len(s.elems) && s.elems[i] == x
}

// IntersectionSize returns |s ∩ o| by merging the two sorted slices.
// Symmetric in its arguments; s.IntersectionSize(s) == s.Len().
// Complexity: O(|s|+|o|) time, O(1) space.
func (s Subset) IntersectionSize(o Subset) int {
	a, b := s.elems, o.elems
	var i, j, n int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// Equal reports set equality.
func (s Subset) Equal(o Subset) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for i := range s.elems {
		if s.elems[i] != o.elems[i] {
			return false
		}
	}

	return true
}

// String renders the subset as "{0,2,3}"; the empty set is "{}".
func (s Subset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')

	return b.String()
}
