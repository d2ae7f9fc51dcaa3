// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Matrix lifecycle and accessors.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

func TestNew_ZeroFilled(t *testing.T) {
	m := MustNew(t, "A", 3, 4)
	require.Equal(t, "A", m.Name())
	rows, cols := m.Shape()
	require.Equal(t, uint32(3), rows)
	require.Equal(t, uint32(4), cols)
	require.Equal(t, 12, m.Len())
	require.True(t, m.HasData())
	for _, v := range m.Data() {
		require.Zero(t, v)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name       string
		matName    string
		rows, cols uint32
		want       error
	}{
		{"empty name", "", 2, 2, matrix.ErrEmptyName},
		{"name at bound", strings.Repeat("n", matrix.MaxNameLen-1), 1, 1, nil},
		{"name over bound", strings.Repeat("n", matrix.MaxNameLen), 1, 1, matrix.ErrNameTooLong},
		{"zero rows", "z", 0, 3, matrix.ErrInvalidDimensions},
		{"zero cols", "z", 3, 0, matrix.ErrInvalidDimensions},
		{"too large", "big", 1 << 11, 1 << 11, matrix.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.matName, tc.rows, tc.cols)
			if tc.want == nil {
				require.NoError(t, err)
				require.NotNil(t, m)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestNew_WithMaxCells(t *testing.T) {
	_, err := matrix.New("m", 4, 4, matrix.WithMaxCells(15))
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	m, err := matrix.New("m", 4, 4, matrix.WithMaxCells(16))
	require.NoError(t, err)
	require.Equal(t, 16, m.Len())
}

func TestDestroy_Idempotent(t *testing.T) {
	m := MustNew(t, "D", 2, 2)
	require.NoError(t, m.Destroy())
	require.False(t, m.HasData())
	require.Zero(t, m.Len())
	require.ErrorIs(t, m.Destroy(), matrix.ErrNoData)

	var nilM *matrix.Matrix
	require.ErrorIs(t, nilM.Destroy(), matrix.ErrNilMatrix)
	require.False(t, nilM.HasData())
}

func TestDestroyed_RejectedEverywhere(t *testing.T) {
	m := MustNew(t, "D", 2, 2)
	other := MustNew(t, "O", 2, 2)
	require.NoError(t, m.Destroy())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNoData)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNoData)
	_, err = matrix.Equal(m, other)
	require.ErrorIs(t, err, matrix.ErrNoData)
	require.ErrorIs(t, matrix.Duplicate(other, m), matrix.ErrNoData)
	require.ErrorIs(t, matrix.Add(m, other, other), matrix.ErrNoData)
	require.ErrorIs(t, matrix.Shift(m, matrix.Left, 1), matrix.ErrNoData)
	require.ErrorIs(t, matrix.Randomize(m, 0, 5, nil), matrix.ErrNoData)
	require.ErrorIs(t, m.Format(&strings.Builder{}), matrix.ErrNoData)
	_, err = m.Clone("C")
	require.ErrorIs(t, err, matrix.ErrNoData)
	require.Nil(t, m.Data())
}

func TestAtSet_Bounds(t *testing.T) {
	m := MustNew(t, "B", 2, 3)
	require.NoError(t, m.Set(1, 2, 42))
	require.Equal(t, uint32(42), MustAt(t, m, 1, 2))
	require.Equal(t, uint32(42), m.Data()[1*3+2], "row-major offset i*cols+j")

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestData_IsCopy(t *testing.T) {
	m := MustFilled(t, "C", 1, 3, []uint32{1, 2, 3})
	d := m.Data()
	d[0] = 99
	require.Equal(t, uint32(1), MustAt(t, m, 0, 0))
}

func TestClone_Independent(t *testing.T) {
	src := MustFilled(t, "S", 2, 2, []uint32{1, 2, 3, 4})
	cp, err := src.Clone("T")
	require.NoError(t, err)
	require.Equal(t, "T", cp.Name())
	require.Equal(t, src.Data(), cp.Data())

	require.NoError(t, cp.Set(0, 0, 100))
	require.Equal(t, uint32(1), MustAt(t, src, 0, 0))

	_, err = src.Clone("")
	require.ErrorIs(t, err, matrix.ErrEmptyName)
}

func TestFromData_LengthMismatch(t *testing.T) {
	_, err := matrix.FromData("F", 2, 2, []uint32{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFormat_ZeroGrid(t *testing.T) {
	m := MustNew(t, "Z", 2, 3)
	var b strings.Builder
	require.NoError(t, m.Format(&b))
	require.Equal(t, "\nMatrix Contents (Z):\nDIM = (2,3)\n0 0 0 \n0 0 0 \n\n", b.String())
	require.Equal(t, b.String(), m.String())
}

func TestString_Markers(t *testing.T) {
	var nilM *matrix.Matrix
	require.Equal(t, "<nil matrix>", nilM.String())

	m := MustNew(t, "gone", 1, 1)
	require.NoError(t, m.Destroy())
	require.Equal(t, "<matrix gone: no data>", m.String())
}
