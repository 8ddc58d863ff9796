// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - On an adjacency matrix RowSums is the degree vector (self-loops count as 1);
//     vertex-transitive graphs (Johnson, Kneser) have all entries equal.

package matrix

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Deterministic j-order per row; *Dense reads the flat buffer directly.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("RowSums", err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out[i] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("ColSums", err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[j] += v
		}
	}

	return out, nil
}
