package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ApplyMove plays move on the board and updates the board state.
//
// The move is matched by origin, destination and promotion piece against the
// legal moves of the side to move; the matching generated move is what gets
// applied, so the caller's Kind, Piece and Captured fields are ignored.
// Errors are *errors.MoveError values wrapping ErrInvalidPosition,
// ErrNoPieceAtSquare or ErrIllegalMove. The board is unchanged on error.
func ApplyMove(board *chess.Board, move chess.Move) error {
	_, err := playMove(board, move)
	return err
}

// playMove is ApplyMove returning the generated move that was applied.
func playMove(board *chess.Board, move chess.Move) (chess.Move, error) {
	legal, err := matchLegalMove(board, move.From, move.To, move.Promotion)
	if err != nil {
		return chess.Move{}, &errors.MoveError{
			Err:  err,
			Ply:  plyNumber(board),
			From: move.From.String(),
			To:   move.To.String(),
		}
	}
	makeMove(board, legal)
	return legal, nil
}

// ResolveMove converts UCI move text such as "e2e4" or "e7e8q" into the
// matching legal move of the side to move.
func ResolveMove(board *chess.Board, text string) (chess.Move, error) {
	from, to, promotion, err := chess.ParseMoveText(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: plyNumber(board), MoveText: text}
	}
	m, err := matchLegalMove(board, from, to, promotion)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: plyNumber(board), MoveText: text}
	}
	return m, nil
}

// matchLegalMove finds the legal move of the side to move with the given
// squares and promotion piece.
func matchLegalMove(board *chess.Board, from, to chess.Position, promotion chess.PieceType) (chess.Move, error) {
	if err := chess.CheckPosition(from); err != nil {
		return chess.Move{}, err
	}
	if err := chess.CheckPosition(to); err != nil {
		return chess.Move{}, err
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return chess.Move{}, errors.Wrapf(errors.ErrNoPieceAtSquare, "square %s", from)
	}
	if piece.Colour != board.ToMove {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s to move", board.ToMove)
	}

	moves, err := LegalMovesFrom(board, from)
	if err != nil {
		return chess.Move{}, err
	}
	i := slices.IndexFunc(moves, func(m chess.Move) bool {
		return m.To == to && m.Promotion == promotion
	})
	if i < 0 {
		return chess.Move{}, errors.ErrIllegalMove
	}
	return moves[i], nil
}

// makeMove applies a generated move without any legality check. It is used
// both for the real state transition and on scratch copies by the legality
// filter.
func makeMove(board *chess.Board, m chess.Move) {
	colour := m.Piece.Colour
	piece := board.Get(m.From)
	captured := board.Get(m.To)

	switch m.Kind {
	case chess.EnPassant:
		// The captured pawn sits beside the destination, not on it.
		captured = board.Get(chess.Position{File: m.To.File, Rank: m.From.Rank})
		board.Set(chess.Position{File: m.To.File, Rank: m.From.Rank}, chess.NoPiece)
	case chess.Promotion:
		piece = chess.NewPiece(colour, m.Promotion)
	case chess.Castle:
		applyCastleRook(board, colour, m.Side)
	}

	board.Set(m.From, chess.NoPiece)
	board.Set(m.To, piece)

	updateCastlingRights(board, m.From, m.To)
	if m.Piece.Type == chess.King {
		board.RevokeCastling(chess.ColourCastling(colour))
	}

	// En passant target is valid for exactly one reply.
	board.EnPassant = false
	if m.Piece.Type == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		board.EnPassant = true
		board.EPTarget = chess.Position{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if m.Piece.Type == chess.Pawn || !captured.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// plyNumber returns the 1-based ply that the side to move is about to play.
func plyNumber(board *chess.Board) int {
	ply := 2*int(board.MoveNumber) - 1
	if board.ToMove == chess.Black {
		ply++
	}
	return ply
}
