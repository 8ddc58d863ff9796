package combin_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/subsetgraph/combin"
	"github.com/stretchr/testify/require"
)

// TestBinomial checks the coefficient table, including the zero conventions.
func TestBinomial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, k int
		want int
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 1, 5},
		{5, 2, 10},
		{4, 2, 6},
		{6, 3, 20},
		{3, 5, 0},
		{0, 1, 0},
		{52, 5, 2598960},
	}
	for _, tc := range tests {
		got, err := combin.Binomial(tc.n, tc.k)
		require.NoError(t, err, "C(%d,%d)", tc.n, tc.k)
		require.Equal(t, tc.want, got, "C(%d,%d)", tc.n, tc.k)
	}
}

// TestBinomialErrors verifies sentinel classification of bad inputs.
func TestBinomialErrors(t *testing.T) {
	t.Parallel()

	_, err := combin.Binomial(-1, 2)
	require.ErrorIs(t, err, combin.ErrInvalidParameter)

	_, err = combin.Binomial(4, -2)
	require.ErrorIs(t, err, combin.ErrInvalidParameter)

	_, err = combin.Binomial(200, 100) // ~9e58
	require.ErrorIs(t, err, combin.ErrTooLarge)

	// Huge n with k near n/2 must fail fast rather than multiply ~n/2 terms.
	_, err = combin.Binomial(math.MaxInt, math.MaxInt/2)
	require.ErrorIs(t, err, combin.ErrTooLarge)

	got, err := combin.Binomial(math.MaxInt, math.MaxInt-1)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, got)
}

// TestCombinationsTooLarge rejects counts above MaxCombinations without
// allocating the subset slice.
func TestCombinationsTooLarge(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_, err := combin.Combinations(math.MaxInt, 1)
		require.ErrorIs(t, err, combin.ErrTooLarge)
	})
}

// TestCombinationsOrder pins the lexicographic order for C(4,2).
func TestCombinationsOrder(t *testing.T) {
	t.Parallel()

	subs, err := combin.Combinations(4, 2)
	require.NoError(t, err)

	want := []string{"{0,1}", "{0,2}", "{0,3}", "{1,2}", "{1,3}", "{2,3}"}
	got := make([]string, len(subs))
	for i, s := range subs {
		got[i] = s.String()
	}
	require.Equal(t, want, got)
}

// TestCombinationsCount checks |V| = C(n,k) and pairwise distinctness.
func TestCombinationsCount(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 8; n++ {
		for k := 0; k <= n+1; k++ {
			subs, err := combin.Combinations(n, k)
			require.NoError(t, err)

			want, err := combin.Binomial(n, k)
			require.NoError(t, err)
			require.Len(t, subs, want, "n=%d k=%d", n, k)

			seen := make(map[string]struct{}, len(subs))
			for _, s := range subs {
				require.Equal(t, k, s.Len())
				for i := 0; i < s.Len(); i++ {
					require.True(t, s.At(i) >= 0 && s.At(i) < n)
				}
				key := s.String()
				_, dup := seen[key]
				require.False(t, dup, "duplicate subset %s", key)
				seen[key] = struct{}{}
			}
		}
	}
}

// TestCombinationsDegenerate covers k > n, k = 0 and n = 0.
func TestCombinationsDegenerate(t *testing.T) {
	t.Parallel()

	subs, err := combin.Combinations(3, 5)
	require.NoError(t, err)
	require.NotNil(t, subs)
	require.Empty(t, subs)

	subs, err = combin.Combinations(4, 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, "{}", subs[0].String())

	subs, err = combin.Combinations(0, 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	_, err = combin.Combinations(-3, 1)
	require.ErrorIs(t, err, combin.ErrInvalidParameter)
}

// TestForEachEarlyStop verifies indices are sequential and fn=false halts.
func TestForEachEarlyStop(t *testing.T) {
	t.Parallel()

	var seen []int
	err := combin.ForEach(6, 3, func(idx int, _ combin.Subset) bool {
		seen = append(seen, idx)
		return idx < 4
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, seen)

	called := false
	err = combin.ForEach(2, -1, func(int, combin.Subset) bool {
		called = true
		return true
	})
	require.ErrorIs(t, err, combin.ErrInvalidParameter)
	require.False(t, called, "no enumeration on invalid input")
}
