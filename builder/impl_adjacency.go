// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// impl_adjacency.go — the Adjacency Evaluator.
//
// Contract:
//   • For every ordered pair (i,j): entry = Edge iff |V_i ∩ V_j| ∈ allowed,
//     else NoEdge. Diagonal included.
//   • Default: both (i,j) and (j,i) are computed independently.
//   • WithSymmetry: only i ≤ j is computed; (j,i) receives the same value.
//   • WithWorkers(w>1): rows are split into contiguous blocks evaluated by an
//     errgroup limited to w goroutines. A cell is only ever written by the
//     goroutine owning its row (or, in symmetric mode, the owner of the
//     smaller index), so there is no write sharing.
//
// Complexity:
//   • Time: O(V²·K) (halved intersections with WithSymmetry).
//   • Space: O(V²) for the matrix plus O(K) for the size mask.

package builder

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/subsetgraph/combin"
	"github.com/katalvlaran/subsetgraph/matrix"
)

// evaluate fills a V×V matrix for vertices under allowed.
func evaluate(vertices []combin.Subset, allowed AllowedSizes, cfg builderConfig) (*matrix.Dense, error) {
	v := len(vertices)
	if v > 0 && v > math.MaxInt/v {
		return nil, fmt.Errorf("V=%d: %dx%d cells: %w", v, v, v, ErrTooLarge)
	}

	m, err := matrix.NewDense(v, v)
	if err != nil {
		return nil, fmt.Errorf("allocate %dx%d: %w", v, v, err)
	}
	if v == 0 {
		return m, nil // degenerate graph: nothing to compare
	}

	// The largest possible intersection is the largest vertex.
	maxSize := 0
	for _, s := range vertices {
		if s.Len() > maxSize {
			maxSize = s.Len()
		}
	}
	edge := allowed.mask(maxSize)

	ev := rowEvaluator{
		vertices:  vertices,
		edge:      edge,
		m:         m,
		symmetric: cfg.symmetric,
	}

	if cfg.workers <= 1 {
		if err = ev.rows(0, v); err != nil {
			return nil, err
		}
		return m, nil
	}

	if err = ev.parallel(cfg.workers); err != nil {
		return nil, err
	}

	return m, nil
}

// rowEvaluator evaluates blocks of rows into a shared matrix.
type rowEvaluator struct {
	vertices  []combin.Subset
	edge      []bool // edge[s] == allowed.Contains(s) for 0 ≤ s ≤ max K
	m         *matrix.Dense
	symmetric bool
}

// rows evaluates rows [lo, hi).
func (ev *rowEvaluator) rows(lo, hi int) error {
	v := len(ev.vertices)
	var i, j, start int
	for i = lo; i < hi; i++ {
		vi := ev.vertices[i]
		start = 0
		if ev.symmetric {
			start = i // upper triangle incl. diagonal
		}
		for j = start; j < v; j++ {
			if !ev.edge[vi.IntersectionSize(ev.vertices[j])] {
				continue // NoEdge is the zero value
			}
			if err := ev.m.Set(i, j, Edge); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			if ev.symmetric && i != j {
				if err := ev.m.Set(j, i, Edge); err != nil {
					return fmt.Errorf("row %d mirror: %w", i, err)
				}
			}
		}
	}

	return nil
}

// parallel splits the rows into contiguous blocks and evaluates them on an
// errgroup bounded to workers goroutines. The first error wins.
func (ev *rowEvaluator) parallel(workers int) error {
	v := len(ev.vertices)
	tasks := workers * rowsPerTaskDivisor
	block := (v + tasks - 1) / tasks
	if block < 1 {
		block = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < v; lo += block {
		lo := lo
		hi := min(lo+block, v)
		g.Go(func() error {
			return ev.rows(lo, hi)
		})
	}

	return g.Wait()
}
