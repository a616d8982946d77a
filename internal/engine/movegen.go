package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// PseudoLegalMoves returns the moves of the piece on pos that obey its movement
// rules, without checking whether the mover's own king is left in check.
// An empty square yields no moves.
func PseudoLegalMoves(board *chess.Board, pos chess.Position) ([]chess.Move, error) {
	if err := chess.CheckPosition(pos); err != nil {
		return nil, err
	}
	return pseudoLegalMoves(board, pos, nil), nil
}

// pseudoLegalMoves appends the pseudo-legal moves of the piece on pos to moves.
// pos must be on the board.
func pseudoLegalMoves(board *chess.Board, pos chess.Position, moves []chess.Move) []chess.Move {
	piece := board.Get(pos)

	switch piece.Type {
	case chess.Pawn:
		return generatePawnMoves(board, pos, piece, moves)
	case chess.Knight:
		return generateStepMoves(board, pos, piece, knightOffsets, moves)
	case chess.Bishop:
		return generateSlidingMoves(board, pos, piece, true, false, moves)
	case chess.Rook:
		return generateSlidingMoves(board, pos, piece, false, true, moves)
	case chess.Queen:
		return generateSlidingMoves(board, pos, piece, true, true, moves)
	case chess.King:
		moves = generateStepMoves(board, pos, piece, kingOffsets, moves)
		return generateCastlingMoves(board, pos, piece, moves)
	default:
		return moves
	}
}
