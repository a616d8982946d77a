package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// generateStepMoves appends the moves of a knight or king (without castling):
// fixed offsets filtered to the board and to squares not held by a friendly piece.
func generateStepMoves(board *chess.Board, from chess.Position, piece chess.Piece, offsets [8][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.IsValid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour == piece.Colour {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
	}
	return moves
}

// generateSlidingMoves appends the moves of a bishop, rook or queen. Each ray
// runs until the board edge, stops before a friendly piece, and stops on
// (capturing) an enemy piece.
func generateSlidingMoves(board *chess.Board, from chess.Position, piece chess.Piece, diagonal, straight bool, moves []chess.Move) []chess.Move {
	if diagonal {
		for _, dir := range diagonalDirs {
			moves = castRay(board, from, piece, dir, moves)
		}
	}
	if straight {
		for _, dir := range straightDirs {
			moves = castRay(board, from, piece, dir, moves)
		}
	}
	return moves
}

func castRay(board *chess.Board, from chess.Position, piece chess.Piece, dir [2]int, moves []chess.Move) []chess.Move {
	for to := from.Offset(dir[0], dir[1]); to.IsValid(); to = to.Offset(dir[0], dir[1]) {
		target := board.Get(to)
		if target.IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
			continue
		}
		if target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
		break // Blocked
	}
	return moves
}
