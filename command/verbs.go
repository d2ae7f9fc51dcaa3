// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

func registerBuiltins(d *Dispatcher) {
	d.Register("display", 1, "display <name>", runDisplay)
	d.Register("create", 3, "create <name> <rows> <cols>", runCreate)
	d.Register("add", 3, "add <name1> <name2> <out>", runAdd)
	d.Register("duplicate", 2, "duplicate <name> <out>", runDuplicate)
	d.Register("equal", 2, "equal <name1> <name2>", runEqual)
	d.Register("shift", 3, "shift <name> <l|r> <amount>", runShift)
	d.Register("read", 1, "read <path>", runRead)
	d.Register("write", 1, "write <name>", runWrite)
	d.Register("random", 3, "random <name> <start> <end>", runRandom)
	d.Register("list", 0, "list", runList)
	d.Register("help", 0, "help", runHelp)
	d.Register("exit", 0, "exit", runExit)
}

// parseUint32 accepts decimal tokens only; signs and garbage are rejected.
func parseUint32(field, tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, tok, ErrBadArgument)
	}

	return uint32(v), nil
}

// fail prints a one-line diagnostic ending in err and returns err.
// Every handler error other than ErrExit goes through here or lookup.
func (d *Dispatcher) fail(err error, format string, a ...any) error {
	d.printf(format+": %v\n", append(a, err)...)
	return err
}

// lookup resolves name or prints the missing-matrix diagnostic.
func (d *Dispatcher) lookup(name string) (*matrix.Matrix, error) {
	m, err := d.reg.Get(name)
	if err == nil {
		return m, nil
	}
	if errors.Is(err, registry.ErrNotFound) || errors.Is(err, matrix.ErrEmptyName) {
		d.printf("Matrix (%s) doesn't exist\n", name)
		return nil, err
	}

	return nil, d.fail(err, "Lookup of %s failed", name)
}

// insert stores m, destroying m if the registry refuses it.
func (d *Dispatcher) insert(m *matrix.Matrix) error {
	if _, err := d.reg.Insert(m); err != nil {
		_ = m.Destroy()
		return d.fail(err, "Failed to add matrix %s to the list of matrices", m.Name())
	}

	return nil
}

func runDisplay(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	if err = m.Format(d.out); err != nil {
		return d.fail(err, "Display of %s failed", args[0])
	}

	return nil
}

func runCreate(d *Dispatcher, args []string) error {
	rows, err := parseUint32("rows", args[1])
	if err != nil {
		return d.fail(err, "Failed to create matrix %s", args[0])
	}
	cols, err := parseUint32("cols", args[2])
	if err != nil {
		return d.fail(err, "Failed to create matrix %s", args[0])
	}
	m, err := matrix.New(args[0], rows, cols, d.matOpts...)
	if err != nil {
		return d.fail(err, "Failed to create matrix %s", args[0])
	}
	if err = d.insert(m); err != nil {
		return err
	}
	d.printf("Created Matrix (%s,%d,%d)\n", args[0], rows, cols)

	return nil
}

// runAdd computes into a fresh matrix and inserts only on success, so a
// rejected add never leaves a half-built slot behind.
func runAdd(d *Dispatcher, args []string) error {
	a, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	b, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	if err = matrix.ValidateSameShape(a, b); err != nil {
		return d.fail(err, "Failure to add %s with %s into %s", args[0], args[1], args[2])
	}

	out, err := matrix.New(args[2], a.Rows(), a.Cols(), d.matOpts...)
	if err != nil {
		return d.fail(err, "Failure to create the result Matrix (%s)", args[2])
	}
	if err = matrix.Add(a, b, out); err != nil {
		_ = out.Destroy()
		return d.fail(err, "Failure to add %s with %s into %s", args[0], args[1], args[2])
	}
	if err = d.insert(out); err != nil {
		return err
	}
	d.printf("Matrix (%s) is the sum of (%s) and (%s)\n", args[2], args[0], args[1])

	return nil
}

func runDuplicate(d *Dispatcher, args []string) error {
	src, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	dest, err := matrix.New(args[1], src.Rows(), src.Cols(), d.matOpts...)
	if err != nil {
		return d.fail(err, "Duplication Failed")
	}
	if err = matrix.Duplicate(src, dest); err != nil {
		_ = dest.Destroy()
		return d.fail(err, "Duplication Failed")
	}
	if err = d.insert(dest); err != nil {
		return err
	}
	d.printf("Duplication of %s into %s finished\n", args[0], args[1])

	return nil
}

func runEqual(d *Dispatcher, args []string) error {
	a, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	b, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	same, err := matrix.Equal(a, b)
	if err != nil {
		return d.fail(err, "Equal Failed")
	}
	if same {
		d.printf("SAME DATA IN BOTH\n")
	} else {
		d.printf("DIFFERENT DATA IN BOTH\n")
	}

	return nil
}

func runShift(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	dir, err := matrix.ParseDirection(args[1])
	if err != nil {
		return d.fail(fmt.Errorf("direction: %w: %w", ErrBadArgument, err), "Matrix shift failed")
	}
	amount, err := parseUint32("amount", args[2])
	if err != nil {
		return d.fail(err, "Matrix shift failed")
	}
	if err = matrix.Shift(m, dir, amount); err != nil {
		return d.fail(err, "Matrix shift failed")
	}
	d.printf("Matrix (%s) has been shifted by %d\n", args[0], amount)

	return nil
}

func runRead(d *Dispatcher, args []string) error {
	path := d.Path(args[0])
	m, err := codec.Load(path, d.matOpts...)
	if err != nil {
		return d.fail(err, "Read Failed")
	}
	if err = d.insert(m); err != nil {
		return err
	}
	d.log.WithFields(logrus.Fields{"path": path, "name": m.Name()}).Info("matrix loaded")
	d.printf("Matrix (%s) is read from the filesystem\n", args[0])

	return nil
}

func runWrite(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	path := d.Path(m.Name())
	if err = codec.Save(path, m); err != nil {
		return d.fail(err, "Write Failed")
	}
	d.log.WithFields(logrus.Fields{"path": path, "name": m.Name()}).Info("matrix saved")
	d.printf("Matrix (%s) is written out to the filesystem\n", args[0])

	return nil
}

func runRandom(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[0])
	if err != nil {
		return err
	}
	start, err := parseUint32("start", args[1])
	if err != nil {
		return d.fail(err, "Randomization of %s failed", args[0])
	}
	end, err := parseUint32("end", args[2])
	if err != nil {
		return d.fail(err, "Randomization of %s failed", args[0])
	}
	if err = matrix.Randomize(m, start, end, d.rng); err != nil {
		return d.fail(err, "Randomization of %s failed", args[0])
	}
	d.printf("Matrix (%s) is randomized between %d %d\n", args[0], start, end)

	return nil
}

func runList(d *Dispatcher, _ []string) error {
	for _, s := range d.reg.Entries() {
		d.printf("%d: %s (%d x %d)\n", s.Index, s.Name, s.Rows, s.Cols)
	}

	return nil
}

func runHelp(d *Dispatcher, _ []string) error {
	for _, u := range d.Usage() {
		d.printf("%s\n", u)
	}

	return nil
}

func runExit(*Dispatcher, []string) error { return ErrExit }
