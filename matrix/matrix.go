// SPDX-License-Identifier: MIT

// Package matrix - named uint32 storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a named, row-major uint32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Model an explicit lifecycle: New allocates, Destroy releases; a released
//     matrix has no data and every operation rejects it.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Destroy: O(1).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"   // ctor tag used in error wrappers
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxClone = "Clone" // method tag used in error wrappers
)

// Matrix is a named row-major matrix of uint32 values.
//   - rows,cols hold dimensions; both are > 0 for any matrix built by New.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//   - data == nil marks a destroyed matrix ("no data").
type Matrix struct {
	name       string   // 1..MaxNameLen-1 bytes
	rows, cols uint32   // logical shape
	data       []uint32 // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a zero-filled rows×cols matrix called name.
// MAIN DESCRIPTION:
//   - Public constructor with strict name and shape validation.
//
// Implementation:
//   - Stage 1: validate name (non-empty, fits MaxNameLen with terminator).
//   - Stage 2: validate shape (rows>0, cols>0, rows*cols <= max cells).
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrEmptyName, ErrNameTooLong, ErrInvalidDimensions, ErrTooLarge.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(name string, rows, cols uint32, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateName(name); err != nil {
		return nil, fmt.Errorf("%s(%q): %w", ctxNew, name, err)
	}
	if err := ValidateShape(rows, cols, o.maxCells); err != nil {
		return nil, fmt.Errorf("%s(%q,%d,%d): %w", ctxNew, name, rows, cols, err)
	}

	return &Matrix{
		name: name,
		rows: rows,
		cols: cols,
		data: make([]uint32, int(rows)*int(cols)),
	}, nil
}

// Destroy releases the storage. The matrix keeps its name and shape for
// diagnostics but has no data afterwards.
// Calling Destroy twice is a no-op that reports ErrNoData; a nil receiver
// reports ErrNilMatrix.
func (m *Matrix) Destroy() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.data == nil {
		return ErrNoData
	}
	m.data = nil

	return nil
}

// Name returns the matrix name.
func (m *Matrix) Name() string { return m.name }

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() uint32 { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() uint32 { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols uint32) { return m.rows, m.cols }

// Len returns the number of stored elements (0 once destroyed).
func (m *Matrix) Len() int { return len(m.data) }

// HasData reports whether m is non-nil and still owns storage.
func (m *Matrix) HasData() bool { return m != nil && len(m.data) > 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix) indexOf(row, col uint32) (int, error) {
	if row >= m.rows || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return int(row)*int(m.cols) + int(col), nil
}

// At returns the value at (row, col).
// Errors: ErrNilMatrix, ErrNoData, ErrOutOfRange (wrapped with coordinates).
func (m *Matrix) At(row, col uint32) (uint32, error) {
	if err := ValidateLive(m); err != nil {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrNoData, ErrOutOfRange (wrapped with coordinates).
func (m *Matrix) Set(row, col, v uint32) error {
	if err := ValidateLive(m); err != nil {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the row-major storage (nil once destroyed).
func (m *Matrix) Data() []uint32 {
	if m == nil || m.data == nil {
		return nil
	}
	cp := make([]uint32, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns an independent copy of m registered under name.
// The copy never shares storage with m.
// Errors: ErrNilMatrix, ErrNoData, name validation errors.
func (m *Matrix) Clone(name string) (*Matrix, error) {
	if err := ValidateLive(m); err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxClone, err)
	}
	if err := ValidateName(name); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%q): %w", ctxClone, name, err)
	}
	cp := make([]uint32, len(m.data))
	copy(cp, m.data)

	return &Matrix{name: name, rows: m.rows, cols: m.cols, data: cp}, nil
}

// FromData builds a matrix over a copy of data (len must be rows*cols).
// Used by decoders and tests that need non-zero content.
func FromData(name string, rows, cols uint32, data []uint32, opts ...Option) (*Matrix, error) {
	m, err := New(name, rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("FromData(%q,%d,%d): len %d: %w", name, rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}
