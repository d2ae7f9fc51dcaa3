// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep operations minimal by delegating nil/data/shape checks here.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil -> HasData -> Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateName ensures name is non-empty and fits MaxNameLen (with terminator).
// Complexity: O(1).
func ValidateName(name string) error {
	if name == "" {
		return validatorErrorf("ValidateName", ErrEmptyName)
	}
	if len(name)+1 > MaxNameLen {
		return validatorErrorf("ValidateName", ErrNameTooLong)
	}

	return nil
}

// ValidateShape ensures rows and cols are positive and rows*cols fits maxCells.
// Complexity: O(1).
func ValidateShape(rows, cols uint32, maxCells uint64) error {
	if rows == 0 || cols == 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if uint64(rows)*uint64(cols) > maxCells {
		return validatorErrorf("ValidateShape", ErrTooLarge)
	}

	return nil
}

// ValidateLive ensures m is non-nil and still owns its storage.
// Complexity: O(1).
func ValidateLive(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if len(m.data) == 0 {
		return validatorErrorf("ValidateLive", ErrNoData)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite Live(a) -> Live(b) -> SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
