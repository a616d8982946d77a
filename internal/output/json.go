package output

import (
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN     string   `json:"fen"`
	ToMove  string   `json:"toMove"` // "white" or "black"
	Status  string   `json:"status"`
	InCheck bool     `json:"inCheck"`
	Draws   []string `json:"draws,omitempty"`
	Board   []string `json:"board,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Color     string `json:"color"`
	Kind      string `json:"kind"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Side      string `json:"side,omitempty"`
}

// JSONDivideEntry is one root move of a divide.
type JSONDivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONPerft represents a perft result in JSON format.
type JSONPerft struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide []JSONDivideEntry `json:"divide,omitempty"`
}

// JSONReport is the single document written by a JSONWriter.
type JSONReport struct {
	Position *JSONPosition `json:"position,omitempty"`
	Moves    []JSONMove    `json:"moves,omitempty"`
	Perft    *JSONPerft    `json:"perft,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// PositionToJSON converts a board to JSON format.
func PositionToJSON(board *chess.Board, withBoard bool) *JSONPosition {
	jp := &JSONPosition{
		FEN:     engine.BoardToFEN(board),
		ToMove:  colorName(board.ToMove),
		Status:  engine.Status(board).String(),
		InCheck: engine.IsInCheck(board, board.ToMove),
		Draws:   drawNotes(board),
	}
	if withBoard {
		jp.Board = BoardRows(board)
	}
	return jp
}

// MoveToJSON converts a move to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.Piece.Type),
		Color: colorName(m.Piece.Colour),
		Kind:  strings.ToLower(m.Kind.String()),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Type)
	}
	switch m.Kind {
	case chess.Promotion:
		jm.Promotion = pieceTypeName(m.Promotion)
	case chess.Castle:
		jm.Side = strings.ToLower(m.Side.String())
	}
	return jm
}

// MovesToJSON converts a move list, keeping an empty list non-nil.
func MovesToJSON(moves []chess.Move) []JSONMove {
	out := make([]JSONMove, len(moves))
	for i, m := range moves {
		out[i] = MoveToJSON(m)
	}
	return out
}

// PerftToJSON converts a perft result to JSON format.
func PerftToJSON(depth int, nodes uint64, divide []engine.DivideEntry) *JSONPerft {
	jp := &JSONPerft{Depth: depth, Nodes: nodes}
	for _, e := range divide {
		jp.Divide = append(jp.Divide, JSONDivideEntry{Move: e.Move.String(), Nodes: e.Nodes})
	}
	return jp
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(p chess.PieceType) string {
	return strings.ToLower(p.String())
}
