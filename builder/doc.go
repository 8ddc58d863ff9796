// Package builder evaluates subset-graph adjacency: given the K-subsets of
// {0,…,N-1} from package combin and a set of allowed intersection sizes, it
// produces the dense 0/1 adjacency matrix where (i,j) = 1 iff
// |V_i ∩ V_j| ∈ allowed.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Build(n, k, sizes, opts...):  enumerate + evaluate in one call.
//     – Adjacency(vertices, allowed): evaluate an existing vertex list.
//     – BuildGraph(cons, opts...):    run a Constructor with resolved options.
//   - Constructors (graph families):
//     – SubsetGraph(n, k, sizes...):  generalized Johnson/Kneser graph.
//     – Johnson(n, k):                J(n,k), allowed = {k-1}.
//     – Kneser(n, k):                 KG(n,k), allowed = {0}.
//   - Functional options (BuilderOption):
//     – WithSymmetry():  evaluate the upper triangle and mirror it.
//     – WithWorkers(w):  spread rows over w goroutines (errgroup).
//   - AllowedSizes: the caller's intersection sizes as a set; values that
//     are negative or exceed K are kept but never match.
//
// Guarantees:
//
//   - Determinism: equal inputs give equal matrices for every option set;
//     the options are pure performance knobs.
//   - Self-loops follow the data: (i,i) = 1 iff K ∈ allowed.
//   - K > N is not an error: the graph has no vertices and a 0×0 matrix.
//   - Structured errors: sentinels (ErrInvalidParameter, ErrTooLarge,
//     ErrConstructFailed) wrapped with the method name; match via errors.Is.
//   - Option constructors panic on meaningless values; evaluation never panics.
//
// Cost: O(V²·K) time and O(V²) memory with V = C(N,K). V is only capped
// where V×V stops fitting an int or V exceeds combin.MaxCombinations
// (ErrTooLarge); size N and K with that in mind.
package builder
