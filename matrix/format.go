// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader = "\nMatrix Contents (%s):\nDIM = (%d,%d)\n"
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// Format writes the human-readable dump of m to w: a header with the name
// and dimensions, one line per row with every value followed by a space,
// and a trailing blank line.
//
// Errors: ErrNilMatrix, ErrNoData, or the first write error from w.
// Complexity: O(r*c).
func (m *Matrix) Format(w io.Writer) error {
	if err := ValidateLive(m); err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	_, err := io.WriteString(w, m.render())

	return err
}

// String renders the same text as Format; destroyed matrices render a short
// marker instead.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil matrix>"
	}
	if m.data == nil {
		return fmt.Sprintf("<matrix %s: no data>", m.name)
	}

	return m.render()
}

func (m *Matrix) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtHeader, m.name, m.rows, m.cols)
	rows, cols := int(m.rows), int(m.cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			b.WriteString(strconv.FormatUint(uint64(m.data[base+j]), 10))
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowEnd)
	}
	b.WriteString(_fmtRowEnd)

	return b.String()
}
