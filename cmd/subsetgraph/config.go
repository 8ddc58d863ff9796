package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/subsetgraph/combin"
)

// errUsage marks argument errors that should print the usage line.
var errUsage = errors.New("usage: subsetgraph N K SIZE [SIZE...]")

// config is the parsed positional command line.
type config struct {
	N     int
	K     int
	Sizes []int
}

// minArgs is N, K and at least one allowed size.
const minArgs = 3

// parseArgs reads N, K and the allowed intersection sizes. Any token that is
// not a base-10 integer, a negative N or K, or fewer than three arguments is
// an error wrapping combin.ErrInvalidParameter; nothing is computed.
func parseArgs(args []string) (config, error) {
	if len(args) < minArgs {
		return config{}, fmt.Errorf("got %d arguments, want at least %d: %w", len(args), minArgs,
			errors.Join(errUsage, combin.ErrInvalidParameter))
	}

	ints := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return config{}, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, a,
				errors.Join(errUsage, combin.ErrInvalidParameter))
		}
		ints[i] = v
	}

	cfg := config{N: ints[0], K: ints[1], Sizes: ints[2:]}
	if cfg.N < 0 || cfg.K < 0 {
		return config{}, fmt.Errorf("N=%d, K=%d must be ≥ 0: %w", cfg.N, cfg.K,
			errors.Join(errUsage, combin.ErrInvalidParameter))
	}

	return cfg, nil
}

// outputName is the file written for (n, k): repeated runs overwrite it.
func outputName(n, k int) string {
	return fmt.Sprintf("matrix_%d_%d.txt", n, k)
}
