package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/oracle/internal/config"
	"github.com/lox/oracle/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `short:"c" default:"oracle.hcl" help:"Path to HCL configuration file"`
	Debug     bool   `short:"d" help:"Enable debug logging"`
	LogFormat string `help:"Log format (text, json or logfmt), overrides config"`

	out   io.Writer    `kong:"-"`
	clock quartz.Clock `kong:"-"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Rank 5 or 7 card hands"`
	Bench   BenchCmd         `cmd:"" help:"Measure evaluation throughput"`
	Census  CensusCmd        `cmd:"" help:"Evaluate every 5 card hand and check the category counts"`
	Tables  TablesCmd        `cmd:"" help:"Build the rank tables and print their statistics"`
}

// setup loads the configuration file and builds the logger, applying flag
// overrides on top of the file.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

func (g *Globals) clockOrReal() quartz.Clock {
	if g.clock == nil {
		return quartz.NewReal()
	}
	return g.clock
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("oracle"),
		kong.Description("Lookup table poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
