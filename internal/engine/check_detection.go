package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// Direction and jump tables shared by attack detection and move generation.
var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	pawnCaptureDirs = [2]int{-1, 1}
)

// IsInCheck returns true if the given colour's king is in check.
// A colour without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := board.KingPosition(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingPos, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// This is the only threat routine in the engine; castling eligibility and check
// detection both go through it.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	// Pawns attack diagonally forward only. A pawn of byColour attacks pos
	// from one rank behind it, relative to the pawn's direction of travel.
	pawn := chess.NewPiece(byColour, chess.Pawn)
	pawnRank := pos.Rank - chess.ColourOffset(byColour)
	for _, df := range pawnCaptureDirs {
		if board.Get(chess.Position{File: pos.File + df, Rank: pawnRank}) == pawn {
			return true
		}
	}

	knight := chess.NewPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(pos.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(pos.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(byColour, chess.Queen)

	// Check sliding pieces (bishop, queen) along diagonals
	bishop := chess.NewPiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := firstPieceOnRay(board, pos, dir); p == bishop || p == queen {
			return true
		}
	}

	// Check sliding pieces (rook, queen) along straight lines
	rook := chess.NewPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstPieceOnRay(board, pos, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay walks from pos (exclusive) in dir and returns the first piece
// met, or NoPiece if the ray reaches the edge of the board.
func firstPieceOnRay(board *chess.Board, pos chess.Position, dir [2]int) chess.Piece {
	for p := pos.Offset(dir[0], dir[1]); p.IsValid(); p = p.Offset(dir[0], dir[1]) {
		if piece := board.Get(p); !piece.IsEmpty() {
			return piece
		}
	}
	return chess.NoPiece
}
