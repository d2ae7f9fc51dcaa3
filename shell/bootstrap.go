// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/command"
	"github.com/katalvlaran/matshell/matrix"
)

// BootstrapConfig names the matrix created before the first prompt.
type BootstrapConfig struct {
	Name       string
	Rows, Cols uint32
	Start, End uint32
	Log        logrus.FieldLogger
}

// DefaultBootstrap is a 5x5 "temp_mat" randomized from 10 over a span of 15.
func DefaultBootstrap() BootstrapConfig {
	return BootstrapConfig{Name: "temp_mat", Rows: 5, Cols: 5, Start: 10, End: 15}
}

// Bootstrap creates cfg.Name, inserts it into the Dispatcher's registry,
// randomizes it and saves it under its own name in the data directory.
// Any failure is returned; the caller treats it as fatal.
func Bootstrap(ctx context.Context, d *command.Dispatcher, cfg BootstrapConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := matrix.New(cfg.Name, cfg.Rows, cfg.Cols, d.MatrixOptions()...)
	if err != nil {
		return fmt.Errorf("bootstrap create: %w", err)
	}
	if _, err = d.Registry().Insert(m); err != nil {
		_ = m.Destroy()
		return fmt.Errorf("bootstrap insert: %w", err)
	}
	// Look the matrix up again so a registry that lost it fails here.
	m, err = d.Registry().Get(cfg.Name)
	if err != nil {
		return fmt.Errorf("bootstrap lookup: %w", err)
	}
	if err = matrix.Randomize(m, cfg.Start, cfg.End, d.RNG()); err != nil {
		return fmt.Errorf("bootstrap randomize: %w", err)
	}
	path := d.Path(cfg.Name)
	if err = codec.Save(path, m); err != nil {
		return fmt.Errorf("bootstrap save: %w", err)
	}

	if cfg.Log != nil {
		cfg.Log.WithFields(logrus.Fields{
			"name": cfg.Name,
			"rows": cfg.Rows,
			"cols": cfg.Cols,
			"path": path,
		}).Info("bootstrap matrix saved")
	}

	return nil
}
