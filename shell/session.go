// SPDX-License-Identifier: MIT

// Package shell runs the interactive read-dispatch loop and the startup
// bootstrap over a command.Dispatcher.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/command"
)

// DefaultPrompt is printed before every line when Session.Prompt is empty.
const DefaultPrompt = "> "

// exitLine ends the session before the line reaches the parser.
const exitLine = "exit"

// Session reads commands from In and writes prompts and diagnostics to Out.
// Dispatcher output goes wherever the Dispatcher was built to write.
type Session struct {
	Dispatcher *command.Dispatcher
	Parser     command.Parser
	In         io.Reader
	Out        io.Writer
	Prompt     string
	Log        logrus.FieldLogger
}

// Run loops until a line equals "exit", a command returns command.ErrExit,
// In reaches EOF or ctx is cancelled. Failed commands never stop the loop.
// It returns ctx.Err() on cancellation, the scanner error on a read
// failure, and nil otherwise.
//
// Lines are read on a separate goroutine so cancellation does not wait for
// the next line. On cancellation that goroutine stays blocked in In until
// In yields a line, EOF or an error.
func (s *Session) Run(ctx context.Context) error {
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	log := s.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := scanLines(s.In, done)

	n := 0
	defer func() { log.WithField("lines", n).Debug("session ended") }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := *scanErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = l
		}
		n++
		if line == exitLine {
			return nil
		}

		cmd, err := s.Parser.Parse(line)
		if err != nil {
			fmt.Fprint(out, "Failed at parsing command\n\n")
			log.WithError(err).WithField("line", n).Debug("parse failed")
			continue
		}
		if err := s.Dispatcher.Dispatch(cmd); errors.Is(err, command.ErrExit) {
			return nil
		}
	}
}

// scanLines feeds lines from r until EOF, a read error or done is closed.
// The returned error pointer is set before the channel closes.
func scanLines(r io.Reader, done <-chan struct{}) (<-chan string, *error) {
	lines := make(chan string)
	scanErr := new(error)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		*scanErr = sc.Err()
	}()

	return lines, scanErr
}
