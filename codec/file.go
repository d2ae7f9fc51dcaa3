// SPDX-License-Identifier: MIT

package codec

import (
	"io"
	"os"

	"github.com/katalvlaran/matshell/matrix"
)

// FileMode is the permission used when Save creates a file.
const FileMode os.FileMode = 0o644

// Save writes the encoding of m to path, creating or truncating the file.
// A failed write leaves whatever bytes were flushed before the failure.
func Save(path string, m *matrix.Matrix) error {
	buf, err := Encode(m)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return ioErrorf("open", path, err)
	}
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return ioErrorf("write", path, err)
	}
	if err := f.Close(); err != nil {
		return ioErrorf("close", path, err)
	}

	return nil
}

// Load opens path read-only and decodes one matrix from it.
// Errors are *IOError; decode failures carry Op "decode" and wrap
// ErrTruncated, ErrBadName or the matrix validation sentinel.
func Load(path string, opts ...matrix.Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("open", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, ioErrorf("read", path, err)
	}
	m, err := load(b, opts...)
	if err != nil {
		return nil, ioErrorf("decode", path, err)
	}

	return m, nil
}
