package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// ResultWriter is the interface for writing command results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WritePosition writes the position summary, with a diagram if enabled.
	WritePosition(board *chess.Board) error

	// WriteMoves writes a list of moves.
	WriteMoves(moves []chess.Move) error

	// WritePerft writes a perft count and optional divide breakdown.
	WritePerft(depth int, nodes uint64, divide []engine.DivideEntry) error

	// Close writes any pending output.
	Close() error
}

// NewResultWriter returns the writer for the configured output format.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes results as plain text as they arrive.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the board diagram (if enabled) and position summary.
func (tw *TextWriter) WritePosition(board *chess.Board) error {
	if tw.cfg.Output.ShowBoard {
		WriteBoard(tw.w, board)
	}
	WritePosition(tw.w, board)
	return nil
}

// WriteMoves writes a wrapped UCI move list.
func (tw *TextWriter) WriteMoves(moves []chess.Move) error {
	WriteMoves(tw.w, moves)
	return nil
}

// WritePerft writes a perft result.
func (tw *TextWriter) WritePerft(depth int, nodes uint64, divide []engine.DivideEntry) error {
	WritePerft(tw.w, depth, nodes, divide)
	return nil
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter collects results and writes them as one JSON document on Close.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	report JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WritePosition records the position.
func (jw *JSONWriter) WritePosition(board *chess.Board) error {
	jw.report.Position = PositionToJSON(board, jw.cfg.Output.ShowBoard)
	return nil
}

// WriteMoves records a move list.
func (jw *JSONWriter) WriteMoves(moves []chess.Move) error {
	jw.report.Moves = MovesToJSON(moves)
	return nil
}

// WritePerft records a perft result.
func (jw *JSONWriter) WritePerft(depth int, nodes uint64, divide []engine.DivideEntry) error {
	jw.report.Perft = PerftToJSON(depth, nodes, divide)
	return nil
}

// SetError records a failure message in the report.
func (jw *JSONWriter) SetError(err error) {
	if err != nil {
		jw.report.Error = err.Error()
	}
}

// Close encodes the collected report.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jw.report)
}
