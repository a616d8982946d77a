package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// GameStatus classifies a position from the side to move's point of view.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Status reports whether the side to move is checkmated, stalemated or can play on.
func Status(board *chess.Board) GameStatus {
	colour := board.ToMove
	if HasLegalMoves(board, colour) {
		return Ongoing
	}
	if IsInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}
