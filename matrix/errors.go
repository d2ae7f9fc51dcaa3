// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so diagnostics can be grepped
// across logs and console output.
//
// ERROR PRIORITY (enforced in tests):
// nil -> no data -> name -> shape -> size bound -> operand compatibility.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoData indicates a matrix whose storage was released (or never allocated).
	// Zero-length storage is a terminal state for every operation.
	ErrNoData = errors.New("matrix: no data")

	// ErrEmptyName is returned when a matrix name is empty.
	ErrEmptyName = errors.New("matrix: empty name")

	// ErrNameTooLong is returned when len(name)+1 exceeds MaxNameLen.
	ErrNameTooLong = errors.New("matrix: name too long")

	// ErrInvalidDimensions indicates that requested dimensions are zero.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrTooLarge indicates rows*cols above the configured cell bound.
	ErrTooLarge = errors.New("matrix: too many cells")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadDirection is returned for a shift direction other than left/right.
	ErrBadDirection = errors.New("matrix: invalid shift direction")

	// ErrInvalidRange is returned by Randomize when the span is zero.
	ErrInvalidRange = errors.New("matrix: invalid random range")

	// ErrCopyMismatch signals that a duplicate did not verify as equal.
	ErrCopyMismatch = errors.New("matrix: copy verification failed")
)
