// SPDX-License-Identifier: MIT
// Package matrix - RNG utilities for Randomize.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; callers that want clock seeding
//     pass a clock-derived seed explicitly.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.

package matrix

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Randomize fills every cell with rng.Uint32()%end + start.
// MAIN DESCRIPTION:
//   - The span is end values wide starting at start: [start, start+end).
//     It is NOT the inclusive range [start, end]. Sums past 2^32 wrap.
//
// Implementation:
//   - Stage 1: validate m live and end > 0.
//   - Stage 2: row-major fill from rng (nil ⇒ default deterministic stream).
//
// Errors:
//   - ErrNilMatrix, ErrNoData, ErrInvalidRange (end == 0).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Randomize(m *Matrix, start, end uint32, rng *rand.Rand) error {
	if err := ValidateLive(m); err != nil {
		return fmt.Errorf("Randomize: %w", err)
	}
	if end == 0 {
		return fmt.Errorf("Randomize(%q,%d,%d): %w", m.name, start, end, ErrInvalidRange)
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}
	for i := range m.data {
		m.data[i] = r.Uint32()%end + start
	}

	return nil
}
