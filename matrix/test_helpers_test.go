// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix operations.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

// MustNew allocates a zero-filled matrix or fails the test.
func MustNew(t *testing.T, name string, r, c uint32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, r, c)
	require.NoError(t, err, "New(%q,%d,%d)", name, r, c)

	return m
}

// MustFilled builds a matrix from a row-major slice or fails the test.
func MustFilled(t *testing.T, name string, r, c uint32, data []uint32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromData(name, r, c, data)
	require.NoError(t, err, "FromData(%q,%d,%d)", name, r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j uint32) uint32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// Seq returns [start, start+1, ..., start+n-1].
func Seq(start uint32, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = start + uint32(i)
	}

	return out
}
