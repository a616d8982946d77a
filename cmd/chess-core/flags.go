// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chess-core-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	// Position
	fen    string
	moves  string
	remove string

	// Queries
	square string
	all    bool
	perft  int
	divide bool

	// Configuration
	configFile string
	workers    int
	strict     bool

	// Output
	jsonOutput bool
	board      bool
	logFile    string
	verbosity  int

	version bool

	// set records the flags given explicitly, so they override the config file.
	set map[string]bool
}

// newFlagSet defines the command-line flags on a fresh FlagSet.
func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("chess-core", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.fen, "fen", "", "Starting position in FEN (default: standard initial position)")
	fs.StringVar(&opts.moves, "moves", "", "UCI moves to play first, space separated (e.g. \"e2e4 e7e5\")")

	fs.StringVar(&opts.remove, "remove", "", "Comma separated squares to clear after the moves are played")

	fs.StringVar(&opts.square, "square", "", "List the legal moves of the piece on this square")
	fs.BoolVar(&opts.all, "all", false, "List all legal moves of the side to move")
	fs.IntVar(&opts.perft, "perft", -1, "Count move paths to depth N (-1: off)")
	fs.BoolVar(&opts.divide, "divide", false, "Break the perft count down by root move")

	fs.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	fs.IntVar(&opts.workers, "workers", 0, "Perft worker goroutines (default: number of CPUs)")
	fs.BoolVar(&opts.strict, "strict", false, "Refuse removal of the last king of a colour")

	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")
	fs.BoolVar(&opts.board, "board", false, "Print a board diagram")
	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to this file (default: stderr)")
	fs.IntVar(&opts.verbosity, "v", 1, "Verbosity: 0=quiet, 1=errors, 2=progress")

	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chess-core [options]\n\n")
		fmt.Fprintf(stderr, "Inspect chess positions: legal moves, status and perft counts.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs, opts
}

// parseFlags parses args and records which flags were given.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.perft < -1 {
		fs.Usage()
		return nil, fmt.Errorf("invalid perft depth %d: must be 0 or more", opts.perft)
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// applyFlags copies explicitly given flags onto cfg.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.set["workers"] {
		cfg.Perft.Workers = opts.workers
	}
	if opts.set["strict"] {
		cfg.Rules.StrictKingRemoval = opts.strict
	}
	if opts.set["J"] {
		cfg.Output.Format = config.Text
		if opts.jsonOutput {
			cfg.Output.Format = config.JSON
		}
	}
	if opts.set["board"] {
		cfg.Output.ShowBoard = opts.board
	}
	if opts.set["v"] {
		cfg.Verbosity = opts.verbosity
	}
}
