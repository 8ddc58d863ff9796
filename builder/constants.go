// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and error prefixes across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSubsetGraph is the canonical name for the SubsetGraph constructor.
	MethodSubsetGraph = "SubsetGraph"
	// MethodJohnson is the canonical name for the Johnson constructor.
	MethodJohnson = "Johnson"
	// MethodKneser is the canonical name for the Kneser constructor.
	MethodKneser = "Kneser"
	// MethodAdjacency is the canonical name for the Adjacency evaluator.
	MethodAdjacency = "Adjacency"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Matrix entry values
//-----------------------------------------------------------------------------

// Edge is the adjacency entry for a pair whose intersection size is allowed.
const Edge = 1.0

// NoEdge is the adjacency entry for every other pair.
const NoEdge = 0.0

//-----------------------------------------------------------------------------
// Evaluation defaults
//-----------------------------------------------------------------------------

// DefaultWorkers is the number of goroutines evaluating rows when
// WithWorkers is not given: the computation stays single-threaded.
const DefaultWorkers = 1

// MinWorkers is the smallest value accepted by WithWorkers.
const MinWorkers = 1

// rowsPerTaskDivisor splits the rows into about workers*rowsPerTaskDivisor
// tasks so that uneven row costs still balance across goroutines.
const rowsPerTaskDivisor = 4
