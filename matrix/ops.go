// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise operations over live matrices: Equal, Duplicate, Add.
//   - Every operation validates operands up front and touches no storage
//     on failure, so a rejected call never writes out of bounds.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 over row-major storage).
//   - No allocations beyond what the caller asked for.

package matrix

import "fmt"

// Equal reports whether a and b hold the same shape and the same elements.
//
// Errors: ErrNilMatrix / ErrNoData for either operand.
// Differently-shaped operands compare unequal (no error).
// Complexity: O(r*c).
func Equal(a, b *Matrix) (bool, error) {
	if err := ValidateLive(a); err != nil {
		return false, fmt.Errorf("Equal: first: %w", err)
	}
	if err := ValidateLive(b); err != nil {
		return false, fmt.Errorf("Equal: second: %w", err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false, nil
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false, nil
		}
	}

	return true, nil
}

// Duplicate copies src's elements into dest, then verifies with Equal.
// MAIN DESCRIPTION:
//   - dest must already exist with src's shape; only storage is copied,
//     dest keeps its own name.
//
// Implementation:
//   - Stage 1: validate both operands live and same-shaped.
//   - Stage 2: copy the flat buffer.
//   - Stage 3: verify equality; ErrCopyMismatch otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNoData, ErrDimensionMismatch, ErrCopyMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Duplicate(src, dest *Matrix) error {
	if err := ValidateBinarySameShape(src, dest); err != nil {
		return fmt.Errorf("Duplicate: %w", err)
	}
	copy(dest.data, src.data)

	ok, err := Equal(src, dest)
	if err != nil {
		return fmt.Errorf("Duplicate: %w", err)
	}
	if !ok {
		return fmt.Errorf("Duplicate(%q,%q): %w", src.name, dest.name, ErrCopyMismatch)
	}

	return nil
}

// Add writes c[i][j] = a[i][j] + b[i][j] with uint32 wraparound.
//
// a and b must share both dimensions; c must already exist with the same
// shape. c may alias a or b.
// Errors: ErrNilMatrix, ErrNoData, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b, c *Matrix) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return fmt.Errorf("Add: operands: %w", err)
	}
	if err := ValidateLive(c); err != nil {
		return fmt.Errorf("Add: result: %w", err)
	}
	if err := ValidateSameShape(a, c); err != nil {
		return fmt.Errorf("Add: result: %w", err)
	}
	for i := range a.data {
		c.data[i] = a.data[i] + b.data[i]
	}

	return nil
}
