// chess-core inspects chess positions: legal moves, game status and perft counts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/ffi"
	"github.com/lgbarn/chess-core-go/internal/output"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "chess-core-go version %s\n", programVersion)
		return exitOK
	}

	cfg, closeLog, err := setupConfig(opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := output.NewResultWriter(cfg.OutputFile, cfg)
	if err := execute(ctx, cfg, opts, w); err != nil {
		cfg.Logf(1, "Error: %v", err)
		if jw, ok := w.(*output.JSONWriter); ok {
			jw.SetError(err)
		}
		w.Close() //nolint:errcheck // already failing
		return exitError
	}
	if err := w.Close(); err != nil {
		cfg.Logf(1, "Error writing output: %v", err)
		return exitError
	}
	return exitOK
}

// setupConfig builds the configuration from defaults, the config file and
// flags, in that order of precedence.
func setupConfig(opts *options, stdout, stderr io.Writer) (*config.Config, func(), error) {
	cfg := config.NewConfigBuilder().
		WithOutput(stdout).
		WithLog(stderr).
		Build()
	closeLog := func() {}

	if opts.configFile != "" {
		if err := cfg.LoadFile(opts.configFile); err != nil {
			return nil, closeLog, err
		}
	}
	applyFlags(cfg, opts)

	if opts.logFile != "" {
		file, err := os.Create(opts.logFile)
		if err != nil {
			return nil, closeLog, fmt.Errorf("creating log file %s: %w", opts.logFile, err)
		}
		cfg.SetLog(file)
		closeLog = func() { file.Close() }
	}

	if err := cfg.Validate(); err != nil {
		closeLog()
		return nil, func() {}, err
	}
	return cfg, closeLog, nil
}

// execute sets up the position and answers the requested queries.
func execute(ctx context.Context, cfg *config.Config, opts *options, w output.ResultWriter) error {
	game, err := setupGame(cfg, opts)
	if err != nil {
		return err
	}
	board := game.Board()

	if err := w.WritePosition(board); err != nil {
		return err
	}

	switch {
	case opts.square != "":
		pos, err := chess.ParsePosition(opts.square)
		if err != nil {
			return err
		}
		moves, err := game.LegalMovesFrom(pos)
		if err != nil {
			return err
		}
		if err := w.WriteMoves(moves); err != nil {
			return err
		}
	case opts.all:
		if err := w.WriteMoves(game.LegalMoves()); err != nil {
			return err
		}
	}

	if opts.perft >= 0 {
		return runPerft(ctx, cfg, board, opts, w)
	}
	return nil
}

// setupGame creates the game and plays the -moves list.
func setupGame(cfg *config.Config, opts *options) (*engine.Game, error) {
	game := engine.NewGame()
	if opts.fen != "" {
		var err error
		if game, err = engine.NewGameFromFEN(opts.fen); err != nil {
			return nil, err
		}
	}

	for _, text := range strings.Fields(opts.moves) {
		m, err := game.PlayUCI(text)
		if err != nil {
			return nil, err
		}
		cfg.Logf(2, "played %s (%s)", m, m.Kind)
	}
	switch {
	case game.FivefoldRepetition():
		cfg.Logf(1, "position has occurred %d times (fivefold repetition)", game.RepetitionCount())
	case game.ThreefoldRepetition():
		cfg.Logf(2, "position has occurred %d times", game.RepetitionCount())
	}
	if len(game.Moves()) > 0 {
		cfg.Logf(2, "%d distinct positions, most repeated %d times",
			game.DistinctPositions(), game.MaxRepetition())
	}

	if opts.remove == "" {
		return game, nil
	}
	return removePieces(cfg, game, strings.Split(opts.remove, ","))
}

// removePieces clears squares through the board-editing interface, which
// enforces strict king removal, and starts a new game from the result.
func removePieces(cfg *config.Config, game *engine.Game, squares []string) (*engine.Game, error) {
	adapter := ffi.NewAdapter(cfg)
	h, err := adapter.BoardNewFromFEN(game.FEN())
	if err != nil {
		return nil, err
	}
	defer adapter.BoardFree(h)

	for _, name := range squares {
		pos, err := chess.ParsePosition(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if err := adapter.BoardDestroyPieceAt(h, ffi.Position{X: pos.File, Y: pos.Rank}); err != nil {
			return nil, err
		}
		cfg.Logf(2, "removed piece on %s", pos)
	}

	fen, err := adapter.BoardFEN(h)
	if err != nil {
		return nil, err
	}
	return engine.NewGameFromFEN(fen)
}

// runPerft counts move paths from board and writes the result. An interrupt
// abandons the count.
func runPerft(ctx context.Context, cfg *config.Config, board *chess.Board, opts *options, w output.ResultWriter) error {
	depth := opts.perft
	if depth > config.MaxPerftDepth {
		return fmt.Errorf("perft depth %d exceeds %d: %w", depth, config.MaxPerftDepth, chesserrors.ErrInvalidConfig)
	}

	start := time.Now()
	var (
		nodes  uint64
		divide []engine.DivideEntry
	)
	if depth == 0 {
		nodes = engine.Perft(board, 0)
		cfg.Logf(2, "perft(0): %d nodes", nodes)
	} else {
		var (
			stats engine.PerftStats
			err   error
		)
		divide, stats, err = engine.ParallelDivideContext(ctx, board, depth, engine.ParallelOptions{
			Workers:   cfg.Perft.Workers,
			TableSize: cfg.Perft.TableSize,
		})
		if err != nil {
			return fmt.Errorf("perft(%d) interrupted after %d nodes: %w", depth, stats.Nodes, err)
		}
		nodes = stats.Nodes
		cfg.Logf(2, "perft(%d): %d nodes in %s with %d workers",
			depth, nodes, time.Since(start).Round(time.Millisecond), stats.Workers)
		cfg.Logf(2, "perft cache: %d entries, %d hits", stats.CacheEntries, stats.CacheHits)
		if stats.CacheFull {
			cfg.Logf(1, "perft cache is full at %d entries; raise table_size for deeper runs", stats.CacheEntries)
		}
	}

	if !opts.divide {
		divide = nil
	} else if divide == nil {
		divide = []engine.DivideEntry{}
	}
	return w.WritePerft(depth, nodes, divide)
}
