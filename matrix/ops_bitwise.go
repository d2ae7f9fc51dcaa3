// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Direction selects the bitwise shift direction.
type Direction uint8

const (
	// Left shifts every element towards the high-order bits.
	Left Direction = iota + 1
	// Right shifts every element towards the low-order bits.
	Right
)

// String returns "left"/"right" for valid directions.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps a token to a Direction by its first character,
// 'l' or 'r' in either case ("l", "left", "R", ...).
func ParseDirection(tok string) (Direction, error) {
	if tok == "" {
		return 0, fmt.Errorf("ParseDirection(%q): %w", tok, ErrBadDirection)
	}
	switch strings.ToLower(tok[:1]) {
	case "l":
		return Left, nil
	case "r":
		return Right, nil
	}

	return 0, fmt.Errorf("ParseDirection(%q): %w", tok, ErrBadDirection)
}

// Shift shifts every element of m in place by amount bits.
//
// Both directions walk the full rows×cols grid in row-major order.
// Amounts of 32 or more clear every element. Shift by 0 is the identity.
// Errors: ErrNilMatrix, ErrNoData, ErrBadDirection.
// Complexity: O(r*c).
func Shift(m *Matrix, dir Direction, amount uint32) error {
	if err := ValidateLive(m); err != nil {
		return fmt.Errorf("Shift: %w", err)
	}

	rows, cols := int(m.rows), int(m.cols)
	var i, j, base int
	switch dir {
	case Left:
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				m.data[base+j] <<= amount
			}
		}
	case Right:
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				m.data[base+j] >>= amount
			}
		}
	default:
		return fmt.Errorf("Shift(%q, %v): %w", m.name, dir, ErrBadDirection)
	}

	return nil
}
