// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons, opts...). Resolves cfg, runs cons.
//   - Constructors are declared as factories returning a Constructor closure,
//     implemented in impl_*.go.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs ⇒ identical vertex order and identical matrix.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subsetgraph/combin"
	"github.com/katalvlaran/subsetgraph/matrix"
)

// Graph is a built subset graph: its vertices in combinatorial order and the
// dense adjacency matrix indexed by vertex position.
type Graph struct {
	// N is the size of the base set {0,…,N-1}.
	N int
	// K is the size of every vertex subset.
	K int
	// Allowed holds the intersection sizes that produce an edge.
	Allowed AllowedSizes
	// Vertices lists the C(N,K) subsets; index i is row/column i of Adjacency.
	Vertices []combin.Subset
	// Adjacency is the V×V 0/1 matrix.
	Adjacency *matrix.Dense
}

// NumVertices returns V = len(Vertices).
func (g *Graph) NumVertices() int { return len(g.Vertices) }

// Labels renders every vertex as "{a,b,…}" in index order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.String()
	}

	return out
}

// Degrees returns the row sums of the adjacency matrix (a self-loop counts once).
// Every vertex's out-degree (row sum) must equal its in-degree (column sum);
// a matrix that was edited into an asymmetric state yields matrix.ErrAsymmetry.
func (g *Graph) Degrees() ([]int, error) {
	if err := matrix.ValidateSquare(g.Adjacency); err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}
	out, err := matrix.RowSums(g.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}
	in, err := matrix.ColSums(g.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}

	deg := make([]int, len(out))
	for i := range out {
		if out[i] != in[i] {
			return nil, fmt.Errorf("Degrees: vertex %d out=%g in=%g: %w", i, out[i], in[i], matrix.ErrAsymmetry)
		}
		deg[i] = int(out[i])
	}

	return deg, nil
}

// Constructor produces a Graph from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same parameters and config.
type Constructor func(cfg builderConfig) (*Graph, error)

// BuildGraph resolves the builder configuration from opts and runs cons.
// Any constructor error is wrapped with "BuildGraph: %w".
func BuildGraph(cons Constructor, opts ...BuilderOption) (*Graph, error) {
	if cons == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuildGraph, ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	g, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return g, nil
}

// Build enumerates the k-subsets of {0,…,n-1} and evaluates their adjacency
// against sizes. It is BuildGraph(SubsetGraph(n, k, sizes...), opts...).
//
// Errors: ErrInvalidParameter (negative n or k), ErrTooLarge.
// Complexity: O(V²·K) time, O(V²) space, V = C(n,k).
func Build(n, k int, sizes []int, opts ...BuilderOption) (*Graph, error) {
	return BuildGraph(SubsetGraph(n, k, sizes...), opts...)
}

// Adjacency evaluates the dense 0/1 matrix of vertices under allowed:
// entry (i,j) = 1 iff vertices[i].IntersectionSize(vertices[j]) ∈ allowed.
// An empty vertex list yields a 0×0 matrix.
//
// Errors: ErrTooLarge when V×V does not fit into an int.
func Adjacency(vertices []combin.Subset, allowed AllowedSizes, opts ...BuilderOption) (*matrix.Dense, error) {
	m, err := evaluate(vertices, allowed, newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodAdjacency, err)
	}

	return m, nil
}

// SubsetGraph builds the generalized Johnson/Kneser graph on the k-subsets
// of {0,…,n-1}; see impl_subset.go.
//func SubsetGraph(n, k int, sizes ...int) Constructor

// Johnson builds J(n,k): edges where the intersection has k-1 elements.
//func Johnson(n, k int) Constructor

// Kneser builds KG(n,k): edges between disjoint subsets.
//func Kneser(n, k int) Constructor
