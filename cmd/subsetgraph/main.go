// Command subsetgraph writes the adjacency matrix of a generalized
// Johnson/Kneser graph: vertices are the K-subsets of {0,…,N-1}, and two
// vertices are adjacent when their intersection size is one of the given
// sizes.
//
// Usage:
//
//	subsetgraph N K SIZE [SIZE...]
//
// The matrix goes to matrix_<N>_<K>.txt in the current directory, one row per
// line, entries "0 " or "1 ". For example "subsetgraph 5 2 0" writes the
// Petersen graph KG(5,2).
//
// Exit status: 0 on success, 2 on malformed arguments, 1 on I/O failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/subsetgraph/builder"
	"github.com/katalvlaran/subsetgraph/matrix"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.AllowInfo())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	os.Exit(run(os.Args[1:], ".", os.Stderr, logger))
}

// run parses args, builds the graph and writes it into dir. It returns the
// process exit code.
func run(args []string, dir string, stderr io.Writer, logger log.Logger) int {
	cfg, err := parseArgs(args)
	if err != nil {
		level.Error(logger).Log("msg", "invalid arguments", "err", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, errUsage)
		}
		return exitUsage
	}

	path, err := generate(cfg, dir, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to generate matrix", "err", err)
		return exitError
	}

	level.Info(logger).Log("msg", "done", "path", path)
	return exitOK
}

// generate runs Enumerator → Evaluator → Writer for cfg and returns the
// written path.
func generate(cfg config, dir string, logger log.Logger) (string, error) {
	allowed := builder.NewAllowedSizes(cfg.Sizes...)
	level.Info(logger).Log("msg", "building subset graph", "n", cfg.N, "k", cfg.K, "sizes", allowed)

	g, err := builder.BuildGraph(builder.SubsetGraph(cfg.N, cfg.K, cfg.Sizes...))
	if err != nil {
		return "", err
	}
	if g.NumVertices() == 0 {
		level.Warn(logger).Log("msg", "graph has no vertices", "n", cfg.N, "k", cfg.K)
	}
	level.Debug(logger).Log("msg", "adjacency evaluated", "vertices", g.NumVertices())

	path := filepath.Join(dir, outputName(cfg.N, cfg.K))
	if err := matrix.WriteTextFile(path, g.Adjacency); err != nil {
		return "", err
	}
	level.Info(logger).Log("msg", "wrote matrix", "vertices", g.NumVertices(), "path", path)

	return path, nil
}
