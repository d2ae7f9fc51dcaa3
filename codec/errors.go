// SPDX-License-Identifier: MIT
// Package codec: sentinel error set and the I/O error-kind enumeration.

package codec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

var (
	// ErrTruncated is returned when a field ends before its declared length.
	ErrTruncated = errors.New("codec: truncated matrix data")

	// ErrBadName is returned when the stored name length is zero or exceeds
	// matrix.MaxNameLen.
	ErrBadName = errors.New("codec: invalid stored name")
)

// Kind classifies an I/O failure for diagnostics. Recovery never depends on it.
type Kind uint8

const (
	// KindOther is any failure not covered below.
	KindOther Kind = iota
	// KindPermission: access to the file was denied.
	KindPermission
	// KindInUse: the file is busy.
	KindInUse
	// KindBadDescriptor: the handle was closed or invalid.
	KindBadDescriptor
	// KindExists: the file already exists.
	KindExists
	// KindNotFound: the file does not exist.
	KindNotFound
	// KindTruncated: the file ended before a field boundary.
	KindTruncated
)

var kindText = [...]string{
	KindOther:         "i/o failure",
	KindPermission:    "do not have access to file",
	KindInUse:         "file already in use",
	KindBadDescriptor: "bad file descriptor",
	KindExists:        "file exists",
	KindNotFound:      "file not found",
	KindTruncated:     "file is truncated",
}

// String returns the diagnostic text for k.
func (k Kind) String() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IOError reports a failed open/read/write/close/decode on Path.
type IOError struct {
	Op   string // "open", "read", "write", "close", "decode"
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("codec: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *IOError) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindOther when err is not an
// *IOError.
func KindOf(err error) Kind {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return ioe.Kind
	}

	return KindOther
}

// classify maps err onto the closed Kind set using portable sentinels.
func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrTruncated), errors.Is(err, io.ErrUnexpectedEOF):
		return KindTruncated
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, os.ErrClosed), errors.Is(err, syscall.EBADF):
		return KindBadDescriptor
	case errors.Is(err, syscall.EBUSY):
		return KindInUse
	default:
		return KindOther
	}
}

func ioErrorf(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Kind: classify(err), Err: err}
}
