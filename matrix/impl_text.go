// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_text.go — plain-text serialization of 0/1 adjacency matrices.
//
// Format (exact):
//   • One line per row, rows in index order.
//   • Every entry is "0" or "1" followed by a single space, the last entry
//     of a row included; the row then ends with "\n".
//   • A 0×0 matrix is written as zero bytes.
//
// Contract:
//   • WriteText validates (NotNil → Square → Binary) before emitting a byte,
//     so an invalid matrix never produces partial output.
//   • WriteTextFile writes a sibling temp file and renames it over the
//     target; the handle is always closed and the temp file removed on error.
//   • IO failures wrap ErrIO together with the original error.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	ctxWriteText     = "WriteText"
	ctxWriteTextFile = "WriteTextFile"
	ctxReadText      = "ReadText"

	// tempPrefix and tempSuffix name the scratch file next to the target.
	tempPrefix = ".matrix-"
	tempSuffix = ".tmp"

	// newFileMode is the mode requested for a fresh target, before umask.
	newFileMode os.FileMode = 0o666
)

// Entry tokens, each already carrying its trailing separator.
var (
	_tokZero = []byte("0 ")
	_tokOne  = []byte("1 ")
)

// ioErrorf joins ErrIO with the underlying error under a context tag.
func ioErrorf(ctx string, err error) error {
	return fmt.Errorf("%s: %w", ctx, errors.Join(ErrIO, err))
}

// WriteText serializes a square 0/1 matrix to w.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonBinary: nothing is written.
//   - ErrIO (joined with the writer's error) on the first failed write.
//
// Complexity: O(n²) time, O(1) extra space besides the bufio buffer.
func WriteText(w io.Writer, m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteText, err)
	}
	if err := ValidateBinary(m); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteText, err)
	}

	bw := bufio.NewWriter(w)
	n := m.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j) // in range and binary after validation
			tok := _tokZero
			if v == 1 {
				tok = _tokOne
			}
			if _, err := bw.Write(tok); err != nil {
				return ioErrorf(ctxWriteText, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return ioErrorf(ctxWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(ctxWriteText, err)
	}

	return nil
}

// WriteTextFile writes m to path in the WriteText format, replacing any
// existing file. Repeated calls with equal matrices produce byte-identical
// files.
//
// Implementation:
//   - Stage 1: validate the matrix (no file is touched on invalid input).
//   - Stage 2: pick the mode: the existing target's, else newFileMode.
//   - Stage 3: create a uniquely named temp file in filepath.Dir(path) and
//     WriteText into it.
//   - Stage 4: close, then rename over path.
//
// Errors: validation sentinels as in WriteText; ErrIO for file-system failures.
func WriteTextFile(path string, m Matrix) (err error) {
	if err = ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteTextFile, err)
	}
	if err = ValidateBinary(m); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteTextFile, err)
	}

	mode, keep := newFileMode, false
	if fi, statErr := os.Stat(path); statErr == nil && fi.Mode().IsRegular() {
		mode, keep = fi.Mode().Perm(), true
	}

	tmp := filepath.Join(filepath.Dir(path), tempPrefix+uuid.NewString()+tempSuffix)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return ioErrorf(ctxWriteTextFile, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close() // no-op error if already closed
			_ = os.Remove(tmp)
		}
	}()

	if err = WriteText(f, m); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteTextFile, err)
	}
	if err = f.Close(); err != nil {
		return ioErrorf(ctxWriteTextFile, err)
	}
	// OpenFile applies the umask; an existing target's bits are restored as-is.
	if keep {
		if err = os.Chmod(tmp, mode); err != nil {
			return ioErrorf(ctxWriteTextFile, err)
		}
	}
	if err = os.Rename(tmp, path); err != nil {
		return ioErrorf(ctxWriteTextFile, err)
	}

	return nil
}

// ReadText parses the WriteText format back into a *Dense.
// Whitespace between tokens is not significant; blank lines are skipped.
//
// Errors:
//   - ErrNonBinary for a token other than "0" or "1".
//   - ErrDimensionMismatch when a row length differs from the row count.
//   - ErrIO when the reader fails.
//
// Complexity: O(n²) time and space.
func ReadText(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30) // rows of large graphs are long

	var rows [][]float64
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			switch tok {
			case "0":
			case "1":
				row[j] = 1
			default:
				return nil, fmt.Errorf("%s: row %d col %d token %q: %w", ctxReadText, len(rows), j, tok, ErrNonBinary)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, ioErrorf(ctxReadText, err)
	}

	n := len(rows)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReadText, err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxReadText, i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}
