// Package output formats positions, move lists and perft results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// BoardRows renders the board as eight rank lines, rank 8 first, with empty
// squares shown as '.'.
func BoardRows(board *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			piece := board.Get(chess.Position{File: file, Rank: rank})
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.Letter())
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// WriteBoard writes a diagram of the board with rank and file labels.
func WriteBoard(w io.Writer, board *chess.Board) {
	for i, row := range BoardRows(board) {
		fmt.Fprintf(w, "%d %s\n", chess.BoardSize-i, row)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// WritePosition writes the FEN, side to move and status of a position.
func WritePosition(w io.Writer, board *chess.Board) {
	fmt.Fprintf(w, "FEN: %s\n", engine.BoardToFEN(board))
	fmt.Fprintf(w, "To move: %s\n", board.ToMove)

	status := engine.Status(board).String()
	if status == engine.Ongoing.String() && engine.IsInCheck(board, board.ToMove) {
		status += " (check)"
	}
	fmt.Fprintf(w, "Status: %s\n", status)

	if draws := drawNotes(board); len(draws) > 0 {
		fmt.Fprintf(w, "Draw: %s\n", strings.Join(draws, ", "))
	}
}

// drawNotes lists the draw rules the position satisfies.
func drawNotes(board *chess.Board) []string {
	var notes []string
	if engine.HasInsufficientMaterial(board) {
		notes = append(notes, "insufficient material")
	}
	if engine.SeventyFiveMoveRule(board) {
		notes = append(notes, "seventy-five-move rule")
	} else if engine.FiftyMoveRule(board) {
		notes = append(notes, "fifty-move rule")
	}
	return notes
}

// WriteMoves writes moves in UCI form, wrapped at 80 columns.
func WriteMoves(w io.Writer, moves []chess.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(w, "(no moves)")
		return
	}
	ow := NewOutputWriter(w, 80)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// WritePerft writes a perft count, preceded by the per-move breakdown when
// divide is non-nil.
func WritePerft(w io.Writer, depth int, nodes uint64, divide []engine.DivideEntry) {
	for _, e := range divide {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
	if divide != nil {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes)
}
