package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// Draw thresholds. They are reported, never enforced.
const (
	FiftyMoveHalfmoves       = 100
	SeventyFiveMoveHalfmoves = 150
	ThreefoldRepetitionCount = 3
	FivefoldRepetitionCount  = 5
)

// FiftyMoveRule reports whether a draw may be claimed under the fifty-move rule.
func FiftyMoveRule(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveHalfmoves
}

// SeventyFiveMoveRule reports whether 75 moves by each side have passed
// without a pawn move or capture.
func SeventyFiveMoveRule(board *chess.Board) bool {
	return board.HalfmoveClock >= SeventyFiveMoveHalfmoves
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, pos := range board.PiecePositions(colour) {
			pieceType := board.Get(pos).Type

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = isLightSquare(pos)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = isLightSquare(pos)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(pos chess.Position) bool {
	return (pos.File+pos.Rank)%2 == 1
}
