// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// MaxNameLen bounds a matrix name, counting one terminator byte:
	// a valid name satisfies len(name)+1 <= MaxNameLen.
	MaxNameLen = 50

	// DefaultMaxCells caps rows*cols for a single matrix (4 MiB of storage).
	DefaultMaxCells = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCellsInvalid = "matrix: WithMaxCells: limit must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxCells uint64 // > 0; DefaultMaxCells
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{maxCells: DefaultMaxCells}
}

// WithMaxCells bounds rows*cols for matrices built under these options.
// Panics if n == 0 (programmer error: no matrix could ever be created).
func WithMaxCells(n uint64) Option {
	if n == 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// MaxCells reports the effective cell bound for opts. Decoders use it to
// reject oversized payloads before allocating.
func MaxCells(opts ...Option) uint64 {
	return gatherOptions(opts...).maxCells
}
