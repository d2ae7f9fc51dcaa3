// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// Handler runs one verb. args excludes the verb and always has the
// registered arity.
type Handler func(d *Dispatcher, args []string) error

type verb struct {
	arity int
	usage string
	run   Handler
}

// Options carries the Dispatcher's collaborators. Zero fields get defaults:
// io.Discard output, a seed-0 RNG, no data directory, a discarding logger
// and matrix.DefaultMaxCells.
type Options struct {
	Out      io.Writer
	RNG      *rand.Rand
	DataDir  string // relative read/write paths resolve against it
	MaxCells uint64
	Log      logrus.FieldLogger
}

// Dispatcher maps verbs to handlers operating on one Registry.
// It is not safe for concurrent use.
type Dispatcher struct {
	reg     *registry.Registry
	out     io.Writer
	rng     *rand.Rand
	dataDir string
	matOpts []matrix.Option
	log     logrus.FieldLogger

	verbs map[string]verb
	order []string
}

// NewDispatcher returns a Dispatcher with every built-in verb registered.
func NewDispatcher(reg *registry.Registry, opts Options) *Dispatcher {
	d := &Dispatcher{
		reg:     reg,
		out:     opts.Out,
		rng:     opts.RNG,
		dataDir: opts.DataDir,
		log:     opts.Log,
		verbs:   make(map[string]verb),
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.rng == nil {
		d.rng = matrix.NewRNG(0)
	}
	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}
	if opts.MaxCells > 0 {
		d.matOpts = append(d.matOpts, matrix.WithMaxCells(opts.MaxCells))
	}
	registerBuiltins(d)

	return d
}

// Register adds verb name with a fixed argument count. It panics if name
// is already registered.
func (d *Dispatcher) Register(name string, arity int, usage string, h Handler) {
	if _, exists := d.verbs[name]; exists {
		panic(fmt.Sprintf("command %s already registered", name))
	}
	d.verbs[name] = verb{arity: arity, usage: usage, run: h}
	d.order = append(d.order, name)
}

// Lookup returns the handler and arity for name and whether it exists.
func (d *Dispatcher) Lookup(name string) (Handler, int, bool) {
	v, ok := d.verbs[name]
	return v.run, v.arity, ok
}

// Registry returns the registry the Dispatcher mutates.
func (d *Dispatcher) Registry() *registry.Registry { return d.reg }

// RNG returns the random source used by the random verb.
func (d *Dispatcher) RNG() *rand.Rand { return d.rng }

// MatrixOptions returns the options applied to every matrix the
// Dispatcher creates or loads.
func (d *Dispatcher) MatrixOptions() []matrix.Option {
	return append([]matrix.Option(nil), d.matOpts...)
}

// Path resolves p against the data directory unless p is absolute.
func (d *Dispatcher) Path(p string) string {
	if d.dataDir == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(d.dataDir, p)
}

// Dispatch runs cmd. Unknown verbs and arity mismatches print a
// diagnostic and return ErrNotACommand without touching the registry.
// Every other failure except ErrExit prints exactly one diagnostic line
// to the Dispatcher's writer and is logged at Info.
func (d *Dispatcher) Dispatch(cmd *Command) error {
	if cmd.Len() == 0 {
		return ErrEmptyInput
	}
	name, args := cmd.Verb(), cmd.Args()
	v, ok := d.verbs[name]
	if !ok || len(args) != v.arity {
		d.printf("Not a command in this application\n")
		return fmt.Errorf("%q with %d args: %w", name, len(args), ErrNotACommand)
	}

	// Handlers print their own diagnostic; the log line is for operators.
	err := v.run(d, args)
	if err != nil && !errors.Is(err, ErrExit) {
		d.log.WithError(err).WithFields(logrus.Fields{"verb": name, "args": args}).Info("command failed")
	}

	return err
}

// Usage returns the usage line of every verb in registration order.
func (d *Dispatcher) Usage() []string {
	out := make([]string, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.verbs[name].usage)
	}

	return out
}

func (d *Dispatcher) printf(format string, a ...any) {
	fmt.Fprintf(d.out, format, a...)
}
