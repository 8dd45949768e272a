// Package config loads the oracle HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Benchmark modes.
const (
	ModeScalar   = "scalar"
	ModeBatch    = "batch"
	ModeParallel = "parallel"
)

// Modes lists the accepted benchmark modes.
var Modes = []string{ModeScalar, ModeBatch, ModeParallel}

// Config is the complete oracle configuration.
type Config struct {
	Bench BenchSettings `hcl:"bench,block"`
	Log   LogSettings   `hcl:"log,block"`
}

// BenchSettings configures the throughput harness.
type BenchSettings struct {
	Hands   int    `hcl:"hands,optional"`
	Seed    int    `hcl:"seed,optional"`
	Rounds  int    `hcl:"rounds,optional"`
	Mode    string `hcl:"mode,optional"`
	Workers int    `hcl:"workers,optional"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// fileConfig mirrors Config with optional blocks so either may be omitted.
type fileConfig struct {
	Bench *BenchSettings `hcl:"bench,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Bench: BenchSettings{
			Hands:  1_000_000,
			Seed:   12345,
			Rounds: 5,
			Mode:   ModeScalar,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; omitted attributes are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if b := fc.Bench; b != nil {
		if b.Hands != 0 {
			cfg.Bench.Hands = b.Hands
		}
		if b.Seed != 0 {
			cfg.Bench.Seed = b.Seed
		}
		if b.Rounds != 0 {
			cfg.Bench.Rounds = b.Rounds
		}
		if b.Mode != "" {
			cfg.Bench.Mode = b.Mode
		}
		cfg.Bench.Workers = b.Workers
	}
	if l := fc.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		if l.Format != "" {
			cfg.Log.Format = l.Format
		}
	}
	return cfg, nil
}

// Validate checks the configuration for values the tools cannot run with.
func (c *Config) Validate() error {
	if c.Bench.Hands < 1 {
		return fmt.Errorf("bench hands must be positive: %d", c.Bench.Hands)
	}
	if c.Bench.Rounds < 1 {
		return fmt.Errorf("bench rounds must be positive: %d", c.Bench.Rounds)
	}
	if c.Bench.Seed < 0 {
		return fmt.Errorf("bench seed must not be negative: %d", c.Bench.Seed)
	}
	if c.Bench.Workers < 0 {
		return fmt.Errorf("bench workers must not be negative: %d", c.Bench.Workers)
	}
	if !slices.Contains(Modes, c.Bench.Mode) {
		return fmt.Errorf("invalid bench mode %q, must be one of %v", c.Bench.Mode, Modes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}
