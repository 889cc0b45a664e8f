// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dense is a row-major matrix: data[i*cols + j] holds entry (i,j).
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero-initialized r×c matrix.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Dense{rows: r, cols: c, data: make([]float64, r*c)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns entry (i,j).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Set assigns entry (i,j).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Clone returns an independent deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// Mul returns the product d·other as a fresh matrix.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	if d.cols != other.rows {
		return nil, fmt.Errorf("Dense.Mul: %dx%d by %dx%d: %w",
			d.rows, d.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	out := &Dense{rows: d.rows, cols: other.cols, data: make([]float64, d.rows*other.cols)}
	// Fixed i,k,j order: row-major friendly on both operands.
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			a := d.data[i*d.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*other.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}

	return out, nil
}
