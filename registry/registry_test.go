// SPDX-License-Identifier: MIT

package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// RegistrySuite exercises slot rotation, lookup and teardown.
type RegistrySuite struct {
	suite.Suite
	reg *registry.Registry
}

func (s *RegistrySuite) SetupTest() {
	reg, err := registry.New(registry.DefaultCapacity)
	require.NoError(s.T(), err)
	s.reg = reg
}

func (s *RegistrySuite) mat(name string) *matrix.Matrix {
	m, err := matrix.New(name, 2, 2)
	require.NoError(s.T(), err)

	return m
}

// TestRotatingCursor verifies slots are filled in order 0..N-1.
func (s *RegistrySuite) TestRotatingCursor() {
	for i := 0; i < registry.DefaultCapacity; i++ {
		pos, err := s.reg.Insert(s.mat(fmt.Sprintf("m%d", i)))
		require.NoError(s.T(), err)
		require.Equal(s.T(), i, pos)
	}
	require.Equal(s.T(), registry.DefaultCapacity, s.reg.Len())
}

// TestEvictionOnWrap checks that insert N+1 destroys slot 0's original.
func (s *RegistrySuite) TestEvictionOnWrap() {
	first := s.mat("first")
	_, err := s.reg.Insert(first)
	require.NoError(s.T(), err)
	for i := 1; i < registry.DefaultCapacity; i++ {
		_, err := s.reg.Insert(s.mat(fmt.Sprintf("m%d", i)))
		require.NoError(s.T(), err)
	}

	pos, err := s.reg.Insert(s.mat("late"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, pos)
	require.False(s.T(), first.HasData(), "evicted matrix must be destroyed")

	idx, err := s.reg.IndexOf("first")
	require.ErrorIs(s.T(), err, registry.ErrNotFound)
	require.Equal(s.T(), registry.NotFound, idx)

	idx, err = s.reg.IndexOf("late")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, idx)
}

// TestFirstMatchWins checks duplicate names resolve to the lowest slot.
func (s *RegistrySuite) TestFirstMatchWins() {
	a := s.mat("dup")
	b := s.mat("dup")
	_, _ = s.reg.Insert(a)
	_, _ = s.reg.Insert(b)

	got, err := s.reg.Get("dup")
	require.NoError(s.T(), err)
	require.Same(s.T(), a, got)
}

// TestExactNameMatch checks that prefixes and extensions do not match.
func (s *RegistrySuite) TestExactNameMatch() {
	_, _ = s.reg.Insert(s.mat("A"))

	_, err := s.reg.IndexOf("AB")
	require.ErrorIs(s.T(), err, registry.ErrNotFound)
	_, _ = s.reg.Insert(s.mat("ABC"))
	_, err = s.reg.IndexOf("AB")
	require.ErrorIs(s.T(), err, registry.ErrNotFound)

	idx, err := s.reg.IndexOf("ABC")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, idx)
}

// TestInsertRejects covers nil, destroyed and already-owned matrices.
func (s *RegistrySuite) TestInsertRejects() {
	_, err := s.reg.Insert(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	gone := s.mat("gone")
	require.NoError(s.T(), gone.Destroy())
	_, err = s.reg.Insert(gone)
	require.ErrorIs(s.T(), err, matrix.ErrNoData)

	m := s.mat("once")
	_, err = s.reg.Insert(m)
	require.NoError(s.T(), err)
	_, err = s.reg.Insert(m)
	require.ErrorIs(s.T(), err, registry.ErrAlreadyOwned)
	require.True(s.T(), m.HasData())
	require.Equal(s.T(), 1, s.reg.Len(), "rejected inserts must not advance")
}

// TestLookupEdgeCases covers empty names and slot bounds.
func (s *RegistrySuite) TestLookupEdgeCases() {
	_, err := s.reg.IndexOf("")
	require.ErrorIs(s.T(), err, matrix.ErrEmptyName)
	_, err = s.reg.Get("")
	require.ErrorIs(s.T(), err, matrix.ErrEmptyName)
	_, err = s.reg.Get("missing")
	require.ErrorIs(s.T(), err, registry.ErrNotFound)

	m, err := s.reg.At(3)
	require.NoError(s.T(), err)
	require.Nil(s.T(), m)
	_, err = s.reg.At(registry.DefaultCapacity)
	require.ErrorIs(s.T(), err, registry.ErrSlotRange)
	_, err = s.reg.At(-1)
	require.ErrorIs(s.T(), err, registry.ErrSlotRange)
}

// TestTeardown destroys everything and resets the cursor.
func (s *RegistrySuite) TestTeardown() {
	held := []*matrix.Matrix{s.mat("a"), s.mat("b"), s.mat("c")}
	for _, m := range held {
		_, _ = s.reg.Insert(m)
	}

	require.Equal(s.T(), 3, s.reg.Teardown())
	require.Zero(s.T(), s.reg.Len())
	for _, m := range held {
		require.False(s.T(), m.HasData())
	}
	require.Empty(s.T(), s.reg.Entries())

	pos, err := s.reg.Insert(s.mat("fresh"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, pos, "cursor resets after teardown")

	require.Equal(s.T(), 1, s.reg.Teardown())
	require.Zero(s.T(), s.reg.Teardown(), "empty registry tears down cleanly")
}

// TestEntries lists occupied slots in order.
func (s *RegistrySuite) TestEntries() {
	_, _ = s.reg.Insert(s.mat("x"))
	_, _ = s.reg.Insert(s.mat("y"))

	require.Equal(s.T(), []registry.Slot{
		{Index: 0, Name: "x", Rows: 2, Cols: 2},
		{Index: 1, Name: "y", Rows: 2, Cols: 2},
	}, s.reg.Entries())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func TestNew_Capacity(t *testing.T) {
	for _, c := range []int{0, -1, registry.MaxCapacity + 1} {
		_, err := registry.New(c)
		require.ErrorIs(t, err, registry.ErrBadCapacity, "capacity=%d", c)
	}
	r, err := registry.New(1)
	require.NoError(t, err)
	require.Equal(t, 1, r.Capacity())
}

func TestInsert_Concurrent(t *testing.T) {
	const capacity, workers, perWorker = 4, 8, 50
	r, err := registry.New(capacity)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m, err := matrix.New(fmt.Sprintf("w%d-%d", w, i), 1, 1)
				if err != nil {
					t.Error(err)
					return
				}
				if _, err := r.Insert(m); err != nil {
					t.Error(err)
					return
				}
				_, _ = r.IndexOf(m.Name())
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, capacity, r.Len())
	for _, e := range r.Entries() {
		m, err := r.At(e.Index)
		require.NoError(t, err)
		require.True(t, m.HasData(), "live occupants keep their storage")
	}
}
