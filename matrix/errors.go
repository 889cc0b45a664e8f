// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set. All public operations return these
// sentinels (possibly wrapped with context via %w); tests match them with
// errors.Is.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrGraphNil indicates a nil *core.Graph was passed to an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadWalkLength indicates a negative walk length.
	ErrBadWalkLength = errors.New("matrix: negative walk length")
)
