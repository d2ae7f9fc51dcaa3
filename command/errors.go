// SPDX-License-Identifier: MIT

package command

import "errors"

// Sentinel errors for parsing and dispatch.
var (
	// ErrEmptyInput indicates a line with no tokens (blank or whitespace only).
	ErrEmptyInput = errors.New("command: empty input")

	// ErrTokenTooLong indicates a token longer than the parser's MaxTokenLen.
	ErrTokenTooLong = errors.New("command: token too long")

	// ErrNotACommand indicates an unknown verb or a wrong argument count.
	ErrNotACommand = errors.New("command: not a command")

	// ErrBadArgument indicates an argument of the wrong type (e.g. a
	// non-numeric dimension).
	ErrBadArgument = errors.New("command: invalid argument")

	// ErrExit is returned by the exit verb; the session loop stops on it.
	ErrExit = errors.New("command: exit requested")
)
