package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// LegalMovesFrom returns every legal move of the piece on pos.
//
// The piece need not belong to the side to move; its moves are computed as if
// it did, except that en passant is only ever offered to the side to move.
// An empty square yields an empty list and a position off the board yields
// ErrInvalidPosition.
func LegalMovesFrom(board *chess.Board, pos chess.Position) ([]chess.Move, error) {
	if err := chess.CheckPosition(pos); err != nil {
		return nil, err
	}
	return filterLegal(board, pseudoLegalMoves(board, pos, nil)), nil
}

// LegalMoves returns every legal move available to the side to move,
// ordered by origin square from a1 to h8.
func LegalMoves(board *chess.Board) []chess.Move {
	var pseudo []chess.Move
	for _, pos := range board.PiecePositions(board.ToMove) {
		pseudo = pseudoLegalMoves(board, pos, pseudo)
	}
	return filterLegal(board, pseudo)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, pos := range board.PiecePositions(colour) {
		for _, m := range pseudoLegalMoves(board, pos, nil) {
			if leavesKingSafe(board, m) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
// It filters in place.
func filterLegal(board *chess.Board, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	if legal == nil {
		return []chess.Move{}
	}
	return legal
}

// leavesKingSafe applies m to a scratch copy of the board and reports whether
// the mover's king is then free of attack.
func leavesKingSafe(board *chess.Board, m chess.Move) bool {
	scratch := board.Copy()
	makeMove(scratch, m)
	return !IsInCheck(scratch, m.Piece.Colour)
}
