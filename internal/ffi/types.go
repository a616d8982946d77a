package ffi

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Chessboard is an opaque handle to a board owned by an Adapter.
// The zero handle is never issued.
type Chessboard uint64

// Color mirrors the C Color enum.
type Color int32

const (
	Black Color = iota
	White
)

// PieceType mirrors the C PieceType enum. Its values are not those of
// chess.PieceType, which reserves zero for an empty square.
type PieceType int32

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	King
	Queen
)

// MoveKind mirrors the C MoveKind enum.
type MoveKind int32

const (
	Normal MoveKind = iota
	Castle
	EnPassant
	Promotion
)

// Position is a square as (file, rank), each expected in [0,8).
type Position struct {
	X int
	Y int
}

// Piece is a coloured piece as it crosses the boundary.
type Piece struct {
	Ty    PieceType
	Color Color
}

// Move is a generated move as it crosses the boundary. Captured is
// meaningful only when HasCapture is set and Promotion only when Kind is
// Promotion.
type Move struct {
	From       Position
	To         Position
	Piece      Piece
	Captured   Piece
	HasCapture bool
	Kind       MoveKind
	Promotion  PieceType
}

// PossibleMoves is a move buffer owned by the caller until MovesDestroy.
type PossibleMoves struct {
	ID    uint64
	Moves []Move
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// toPosition validates p before it reaches the engine.
func toPosition(p Position) (chess.Position, error) {
	pos := chess.Position{File: p.X, Rank: p.Y}
	if err := chess.CheckPosition(pos); err != nil {
		return chess.Position{}, err
	}
	return pos, nil
}

func fromPosition(p chess.Position) Position {
	return Position{X: p.File, Y: p.Rank}
}

func toPiece(p Piece) (chess.Piece, error) {
	if p.Ty < Pawn || p.Ty > Queen || (p.Color != Black && p.Color != White) {
		return chess.NoPiece, errors.Wrapf(errors.ErrInvalidPiece, "type %d colour %d", p.Ty, p.Color)
	}
	return chess.NewPiece(chess.Colour(p.Color), toPieceType(p.Ty)), nil
}

func fromPiece(p chess.Piece) Piece {
	return Piece{Ty: fromPieceType(p.Type), Color: Color(p.Colour)}
}

func toPieceType(t PieceType) chess.PieceType {
	return chess.PieceType(t) + chess.Pawn
}

func fromPieceType(t chess.PieceType) PieceType {
	return PieceType(t - chess.Pawn)
}

func fromMove(m chess.Move) Move {
	out := Move{
		From:  fromPosition(m.From),
		To:    fromPosition(m.To),
		Piece: fromPiece(m.Piece),
		Kind:  MoveKind(m.Kind),
	}
	if m.IsCapture() {
		out.HasCapture = true
		out.Captured = fromPiece(m.Captured)
	}
	if m.Kind == chess.Promotion {
		out.Promotion = fromPieceType(m.Promotion)
	}
	return out
}
