// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No option changes the resulting matrix; they only change how it is
//     computed.

package builder

import "fmt"

// BuilderOption customizes evaluation by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSymmetry evaluates each unordered pair once and mirrors the entry.
// Intersection size is symmetric, so the matrix is unchanged; roughly half
// of the intersection work is skipped.
func WithSymmetry() BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = true
	}
}

// WithWorkers evaluates rows on up to w goroutines. Each row is owned by a
// single goroutine, so the output is identical to the sequential run.
// Panics if w < MinWorkers.
func WithWorkers(w int) BuilderOption {
	if w < MinWorkers {
		panic(fmt.Sprintf("builder: WithWorkers(%d): must be ≥ %d", w, MinWorkers))
	}
	return func(c *builderConfig) {
		c.workers = w
	}
}
