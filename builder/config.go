// SPDX-License-Identifier: MIT
// Package: subsetgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • symmetric = false   (every ordered pair (i,j) evaluated independently)
//   • workers   = 1       (single goroutine)

package builder

// builderConfig aggregates all knobs used by constructors and the evaluator.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Evaluate only i ≤ j and mirror into (j,i).
	symmetric bool
	// Goroutines used to evaluate rows; 1 means sequential.
	workers int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		symmetric: false,
		workers:   DefaultWorkers,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
