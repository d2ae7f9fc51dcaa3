// SPDX-License-Identifier: MIT
// Package: codec
//
// Layout (native byte order, no padding, checksum, magic or version):
//
//	[u32 name_length][name bytes][u32 rows][u32 cols][rows*cols u32, row-major][sentinel 0xFF]
//
// The sentinel byte is appended on write and not counted in any length field.

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/matshell/matrix"
)

// Sentinel is the trailing marker byte (EOF as an unsigned char).
const Sentinel byte = 0xFF

const u32 = 4

// byteOrder is the host order; files are not portable across endianness.
var byteOrder = binary.NativeEndian

// EncodedLen returns the encoded size of m: 4 + len(name) + 4 + 4 + rows*cols*4 + 1.
func EncodedLen(m *matrix.Matrix) int {
	return u32 + len(m.Name()) + u32 + u32 + m.Len()*u32 + 1
}

// Encode builds the flat byte layout of m.
// Errors: matrix.ErrNilMatrix, matrix.ErrNoData.
func Encode(m *matrix.Matrix) ([]byte, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	name := m.Name()
	buf := make([]byte, 0, EncodedLen(m))
	buf = byteOrder.AppendUint32(buf, uint32(len(name)))
	buf = append(buf, name...)
	buf = byteOrder.AppendUint32(buf, m.Rows())
	buf = byteOrder.AppendUint32(buf, m.Cols())
	for _, v := range m.Data() {
		buf = byteOrder.AppendUint32(buf, v)
	}
	buf = append(buf, Sentinel)

	return buf, nil
}

// Decode reconstructs a matrix from the layout produced by Encode.
// Any short field yields ErrTruncated and no matrix. Bytes after the data
// block (the sentinel included) are ignored.
func Decode(b []byte, opts ...matrix.Option) (*matrix.Matrix, error) {
	return load(b, opts...)
}

// reader walks b field by field.
type reader struct {
	b   []byte
	off int
}

func (r *reader) next(n int, field string) ([]byte, error) {
	if n < 0 || len(r.b)-r.off < n {
		return nil, fmt.Errorf("%s at offset %d: %w", field, r.off, ErrTruncated)
	}
	p := r.b[r.off : r.off+n]
	r.off += n

	return p, nil
}

func (r *reader) uint32(field string) (uint32, error) {
	p, err := r.next(u32, field)
	if err != nil {
		return 0, err
	}

	return byteOrder.Uint32(p), nil
}

// load decodes every field in order, validating lengths against the bytes
// that remain before allocating the matrix.
func load(b []byte, opts ...matrix.Option) (*matrix.Matrix, error) {
	r := &reader{b: b}

	nameLen, err := r.uint32("name length")
	if err != nil {
		return nil, err
	}
	if nameLen == 0 || nameLen > matrix.MaxNameLen {
		return nil, fmt.Errorf("name length %d: %w", nameLen, ErrBadName)
	}
	raw, err := r.next(int(nameLen), "name")
	if err != nil {
		return nil, err
	}
	name := string(raw)
	// Files written with a terminator carry one trailing NUL.
	if name[len(name)-1] == 0 {
		name = name[:len(name)-1]
	}

	rows, err := r.uint32("rows")
	if err != nil {
		return nil, err
	}
	cols, err := r.uint32("cols")
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateShape(rows, cols, matrix.MaxCells(opts...)); err != nil {
		return nil, err
	}

	cells := int(rows) * int(cols)
	block, err := r.next(cells*u32, "data")
	if err != nil {
		return nil, err
	}
	data := make([]uint32, cells)
	for i := range data {
		data[i] = byteOrder.Uint32(block[i*u32:])
	}

	m, err := matrix.FromData(name, rows, cols, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("name %q: %w", name, err)
	}

	return m, nil
}
