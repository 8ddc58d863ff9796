// Package builder_test contains functional tests for the subset-graph
// constructors, verifying vertex counts, the diagonal, symmetry, the
// disjoint-pair rule and the regular degrees of Johnson and Kneser graphs.
package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/subsetgraph/builder"
	"github.com/katalvlaran/subsetgraph/combin"
	"github.com/katalvlaran/subsetgraph/matrix"
	"github.com/stretchr/testify/require"
)

// at reads (i,j) from m or fails the test.
func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRegular asserts every row sum equals deg.
func requireRegular(t *testing.T, g *builder.Graph, deg int) {
	t.Helper()
	degs, err := g.Degrees()
	require.NoError(t, err)
	for i, d := range degs {
		require.Equal(t, deg, d, "vertex %d %s", i, g.Vertices[i])
	}
}

// TestBuilders_Functional runs table-driven checks on common configurations.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n, k    int
		sizes   []int
		wantV   int
		wantDeg int // constant degree (row sum, self-loop counted once)
	}{
		{"Kneser KG(4,2)", 4, 2, []int{0}, 6, 1},
		{"Petersen KG(5,2)", 5, 2, []int{0}, 10, 3},
		{"Triangular T(5)", 5, 2, []int{1}, 10, 6},
		{"Johnson J(6,3)", 6, 3, []int{2}, 20, 9},
		{"Complete via 0,1 on 2-sets", 4, 2, []int{0, 1}, 6, 5},
		{"Self loops only", 5, 2, []int{2}, 10, 1},
		{"Out of range sizes", 5, 2, []int{-1, 3, 7}, 10, 0},
		{"Single vertex k=n", 3, 3, []int{3}, 1, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.Build(tc.n, tc.k, tc.sizes)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.NumVertices())
			require.Equal(t, tc.wantV, g.Adjacency.Rows())
			require.Equal(t, tc.wantV, g.Adjacency.Cols())
			requireRegular(t, g, tc.wantDeg)
		})
	}
}

// TestVertexCountIsBinomial checks |V| = C(N,K) across a grid of parameters.
func TestVertexCountIsBinomial(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 7; n++ {
		for k := 0; k <= n+1; k++ {
			g, err := builder.Build(n, k, []int{0})
			require.NoError(t, err)

			want, err := combin.Binomial(n, k)
			require.NoError(t, err)
			require.Equal(t, want, g.NumVertices(), "n=%d k=%d", n, k)
		}
	}
}

// TestMatrixProperties checks the diagonal rule, symmetry and disjoint rule
// for several allowed-size sets on C(6,3).
func TestMatrixProperties(t *testing.T) {
	t.Parallel()

	const n, k = 6, 3
	sets := [][]int{{0}, {1}, {2}, {3}, {0, 3}, {1, 2}, {}}
	for _, sizes := range sets {
		g, err := builder.Build(n, k, sizes)
		require.NoError(t, err)
		allowed := builder.NewAllowedSizes(sizes...)
		m := g.Adjacency

		require.NoError(t, matrix.ValidateSymmetric(m, 0))
		require.NoError(t, matrix.ValidateBinary(m))

		v := g.NumVertices()
		for i := 0; i < v; i++ {
			diag := at(t, m, i, i)
			require.Equal(t, allowed.Contains(k), diag == builder.Edge, "diag %d sizes=%v", i, sizes)
			for j := 0; j < v; j++ {
				size := g.Vertices[i].IntersectionSize(g.Vertices[j])
				require.Equal(t, allowed.Contains(size), at(t, m, i, j) == builder.Edge)
				if i != j && size == 0 {
					require.Equal(t, allowed.Contains(0), at(t, m, i, j) == builder.Edge, "disjoint pair")
				}
			}
		}
	}
}

// TestKneserFourTwo pins KG(4,2): each 2-subset adjacent to its complement only.
func TestKneserFourTwo(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.Kneser(4, 2))
	require.NoError(t, err)
	require.Equal(t, []string{"{0,1}", "{0,2}", "{0,3}", "{1,2}", "{1,3}", "{2,3}"}, g.Labels())

	// Complement of index i is index 5-i in lexicographic order.
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := builder.NoEdge
			if j == 5-i {
				want = builder.Edge
			}
			require.Equal(t, want, at(t, g.Adjacency, i, j), "(%d,%d)", i, j)
		}
	}
}

// TestJohnsonDegree checks J(n,k) is k(n-k)-regular with a zero diagonal.
func TestJohnsonDegree(t *testing.T) {
	t.Parallel()

	for _, p := range [][2]int{{5, 2}, {6, 2}, {6, 3}, {7, 3}} {
		n, k := p[0], p[1]
		g, err := builder.BuildGraph(builder.Johnson(n, k))
		require.NoError(t, err)
		requireRegular(t, g, k*(n-k))
		for i := 0; i < g.NumVertices(); i++ {
			require.Equal(t, builder.NoEdge, at(t, g.Adjacency, i, i))
		}
	}
}

// TestDegenerateAndEdgeCases covers K > N, K = 0 and N = 0.
func TestDegenerateAndEdgeCases(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(3, 5, []int{0, 1})
	require.NoError(t, err)
	require.Zero(t, g.NumVertices())
	require.Equal(t, 0, g.Adjacency.Rows())

	// K = 0: one empty vertex; it intersects itself in 0 elements.
	g, err = builder.Build(4, 0, []int{0})
	require.NoError(t, err)
	require.Equal(t, 1, g.NumVertices())
	require.Equal(t, builder.Edge, at(t, g.Adjacency, 0, 0))

	g, err = builder.BuildGraph(builder.Johnson(0, 0))
	require.NoError(t, err)
	require.Equal(t, 1, g.NumVertices())
	require.Equal(t, builder.NoEdge, at(t, g.Adjacency, 0, 0))

	g, err = builder.Build(0, 2, []int{0})
	require.NoError(t, err)
	require.Zero(t, g.NumVertices())
}

// TestBuildErrors verifies sentinel classification.
func TestBuildErrors(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(-1, 2, []int{0})
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
	require.ErrorIs(t, err, combin.ErrInvalidParameter)

	_, err = builder.BuildGraph(builder.Kneser(5, -2))
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = builder.Build(300, 150, []int{0})
	require.ErrorIs(t, err, builder.ErrTooLarge)

	// C(n,1) = n fits an int, but the n×n matrix does not.
	require.NotPanics(t, func() {
		_, err = builder.Build(math.MaxInt, 1, []int{0})
	})
	require.ErrorIs(t, err, builder.ErrTooLarge)

	require.NotPanics(t, func() {
		_, err = builder.BuildGraph(builder.Johnson(4_000_000_000, 1), builder.WithSymmetry())
	})
	require.ErrorIs(t, err, builder.ErrTooLarge)

	_, err = builder.BuildGraph(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestAdjacencyExternalVertices evaluates a hand-made vertex list.
func TestAdjacencyExternalVertices(t *testing.T) {
	t.Parallel()

	a, err := combin.NewSubset(0, 1, 2)
	require.NoError(t, err)
	b, err := combin.NewSubset(2, 3)
	require.NoError(t, err)

	m, err := builder.Adjacency([]combin.Subset{a, b}, builder.NewAllowedSizes(1))
	require.NoError(t, err)
	require.Equal(t, "[0, 1]\n[1, 0]\n", m.String())

	empty, err := builder.Adjacency(nil, builder.NewAllowedSizes(0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

// TestDegreesRejectsAsymmetry checks that Degrees cross-checks row sums
// against column sums and refuses a matrix edited out of symmetry.
func TestDegreesRejectsAsymmetry(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.Kneser(4, 2))
	require.NoError(t, err)
	require.Equal(t, 1.0, at(t, g.Adjacency, 0, 5)) // {0,1} ~ {2,3}

	require.NoError(t, g.Adjacency.Set(0, 5, builder.NoEdge))
	_, err = g.Degrees()
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = (&builder.Graph{}).Degrees()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
