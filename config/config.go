// SPDX-License-Identifier: MIT

// Package config resolves matshell settings from built-in defaults, an
// optional TOML file and MATSHELL_* environment variables, in that order.
// Command-line flags are applied by the caller after Load.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matshell/command"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the fully resolved process configuration.
type Config struct {
	Capacity int    `toml:"capacity"  env:"MATSHELL_CAPACITY"`
	DataDir  string `toml:"data_dir"  env:"MATSHELL_DATA_DIR"`
	Prompt   string `toml:"prompt"    env:"MATSHELL_PROMPT"`
	Seed     int64  `toml:"seed"      env:"MATSHELL_SEED"` // 0 seeds from the clock
	LogLevel string `toml:"log_level" env:"MATSHELL_LOG_LEVEL"`
	MaxCells uint64 `toml:"max_cells" env:"MATSHELL_MAX_CELLS"`

	Parser    Parser    `toml:"parser"`
	Bootstrap Bootstrap `toml:"bootstrap"`
}

// Parser bounds the tokenizer.
type Parser struct {
	MaxTokens   int `toml:"max_tokens"    env:"MATSHELL_PARSER_MAX_TOKENS"`
	MaxTokenLen int `toml:"max_token_len" env:"MATSHELL_PARSER_MAX_TOKEN_LEN"`
}

// Bootstrap describes the matrix created and saved at startup.
type Bootstrap struct {
	Enabled bool   `toml:"enabled" env:"MATSHELL_BOOTSTRAP_ENABLED"`
	Name    string `toml:"name"    env:"MATSHELL_BOOTSTRAP_NAME"`
	Rows    uint32 `toml:"rows"    env:"MATSHELL_BOOTSTRAP_ROWS"`
	Cols    uint32 `toml:"cols"    env:"MATSHELL_BOOTSTRAP_COLS"`
	Start   uint32 `toml:"start"   env:"MATSHELL_BOOTSTRAP_START"`
	End     uint32 `toml:"end"     env:"MATSHELL_BOOTSTRAP_END"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: registry.DefaultCapacity,
		DataDir:  ".",
		Prompt:   "> ",
		LogLevel: "warn",
		MaxCells: matrix.DefaultMaxCells,
		Parser: Parser{
			MaxTokens:   command.DefaultMaxTokens,
			MaxTokenLen: command.DefaultMaxTokenLen,
		},
		Bootstrap: Bootstrap{
			Enabled: true,
			Name:    "temp_mat",
			Rows:    5,
			Cols:    5,
			Start:   10,
			End:     15,
		},
	}
}

// Load starts from Default, overlays the TOML file at path (skipped when
// path is empty) and then the environment. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges. Every failure wraps ErrInvalid.
func (c Config) Validate() error {
	if c.Capacity < 1 || c.Capacity > registry.MaxCapacity {
		return fmt.Errorf("capacity %d outside [1,%d]: %w", c.Capacity, registry.MaxCapacity, ErrInvalid)
	}
	if c.MaxCells == 0 {
		return fmt.Errorf("max_cells must be positive: %w", ErrInvalid)
	}
	if c.Parser.MaxTokens < 1 || c.Parser.MaxTokenLen < 1 {
		return fmt.Errorf("parser limits (%d,%d) must be positive: %w",
			c.Parser.MaxTokens, c.Parser.MaxTokenLen, ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, errors.Join(err, ErrInvalid))
	}
	if !c.Bootstrap.Enabled {
		return nil
	}
	if err := matrix.ValidateName(c.Bootstrap.Name); err != nil {
		return fmt.Errorf("bootstrap name: %w", errors.Join(err, ErrInvalid))
	}
	if err := matrix.ValidateShape(c.Bootstrap.Rows, c.Bootstrap.Cols, c.MaxCells); err != nil {
		return fmt.Errorf("bootstrap shape: %w", errors.Join(err, ErrInvalid))
	}
	if c.Bootstrap.End == 0 {
		return fmt.Errorf("bootstrap end must be positive: %w", ErrInvalid)
	}

	return nil
}
