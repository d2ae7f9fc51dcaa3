// SPDX-License-Identifier: MIT

// Package registry declares the fixed-capacity matrix Registry.
//
// A Registry owns up to Capacity matrices in numbered slots. Insertion does
// not look at names: a rotating cursor picks slot cursor%Capacity, destroys
// whatever lives there, and advances. Lookup is a linear first-match scan by
// exact name, so duplicate names are allowed and the lowest slot wins.
//
// All methods take a single sync.Mutex; the cursor therefore has exactly one
// writer at a time even when the Registry is shared.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/matrix"
)

const (
	// DefaultCapacity is the number of slots used by the shell.
	DefaultCapacity = 10

	// MaxCapacity bounds New's capacity argument.
	MaxCapacity = 1024

	// NotFound is the slot index returned alongside ErrNotFound.
	NotFound = -1
)

// Sentinel errors for registry operations.
var (
	// ErrBadCapacity indicates a capacity outside [1, MaxCapacity].
	ErrBadCapacity = errors.New("registry: capacity out of range")

	// ErrNotFound indicates no occupied slot holds the requested name.
	ErrNotFound = errors.New("registry: matrix not found")

	// ErrAlreadyOwned indicates the matrix already occupies a slot.
	ErrAlreadyOwned = errors.New("registry: matrix already registered")

	// ErrSlotRange indicates a slot index outside [0, Capacity).
	ErrSlotRange = errors.New("registry: slot index out of range")
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes eviction and teardown events to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// Registry is a fixed array of optional matrix slots.
type Registry struct {
	mu     sync.Mutex
	slots  []*matrix.Matrix
	cursor uint64 // incremented on every successful Insert
	log    logrus.FieldLogger
}

// Slot describes an occupied slot, as returned by Entries.
type Slot struct {
	Index      int
	Name       string
	Rows, Cols uint32
}

// New returns an empty Registry with the given capacity.
// Errors: ErrBadCapacity when capacity is outside [1, MaxCapacity].
func New(capacity int, opts ...Option) (*Registry, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity)
	}
	r := &Registry{
		slots: make([]*matrix.Matrix, capacity),
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Capacity returns the number of slots.
func (r *Registry) Capacity() int { return len(r.slots) }

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, m := range r.slots {
		if m != nil {
			n++
		}
	}

	return n
}

// Insert places m at slot cursor%Capacity and advances the cursor.
// An occupant of that slot is destroyed first.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNoData, ErrAlreadyOwned.
// Complexity: O(Capacity) for the ownership check.
func (r *Registry) Insert(m *matrix.Matrix) (int, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return NotFound, fmt.Errorf("Insert: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, held := range r.slots {
		if held == m {
			return NotFound, fmt.Errorf("Insert(%q): slot %d: %w", m.Name(), i, ErrAlreadyOwned)
		}
	}

	pos := int(r.cursor % uint64(len(r.slots)))
	if old := r.slots[pos]; old != nil {
		r.log.WithFields(logrus.Fields{"slot": pos, "evicted": old.Name(), "by": m.Name()}).Debug("evicting matrix")
		_ = old.Destroy()
	}
	r.slots[pos] = m
	r.cursor++

	return pos, nil
}

// IndexOf returns the lowest slot whose matrix name equals name exactly.
// Errors: matrix.ErrEmptyName, ErrNotFound (index is NotFound).
func (r *Registry) IndexOf(name string) (int, error) {
	if name == "" {
		return NotFound, fmt.Errorf("IndexOf: %w", matrix.ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.indexOfLocked(name)
}

func (r *Registry) indexOfLocked(name string) (int, error) {
	for i, m := range r.slots {
		if m != nil && m.Name() == name {
			return i, nil
		}
	}

	return NotFound, fmt.Errorf("IndexOf(%q): %w", name, ErrNotFound)
}

// Get returns the first matrix named name.
func (r *Registry) Get(name string) (*matrix.Matrix, error) {
	if name == "" {
		return nil, fmt.Errorf("Get: %w", matrix.ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOfLocked(name)
	if err != nil {
		return nil, err
	}

	return r.slots[i], nil
}

// At returns the occupant of slot i (nil for an empty slot).
func (r *Registry) At(i int) (*matrix.Matrix, error) {
	if i < 0 || i >= len(r.slots) {
		return nil, fmt.Errorf("At(%d): %w", i, ErrSlotRange)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.slots[i], nil
}

// Entries lists occupied slots in index order.
func (r *Registry) Entries() []Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Slot, 0, len(r.slots))
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		out = append(out, Slot{Index: i, Name: m.Name(), Rows: m.Rows(), Cols: m.Cols()})
	}

	return out
}

// Teardown destroys every occupant, clears all slots and resets the cursor.
// It returns the number of matrices destroyed; empty slots are skipped.
func (r *Registry) Teardown() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		if err := m.Destroy(); err != nil {
			r.log.WithError(err).WithField("slot", i).Debug("slot already released")
		} else {
			n++
		}
		r.slots[i] = nil
	}
	r.cursor = 0
	r.log.WithField("destroyed", n).Debug("registry torn down")

	return n
}
