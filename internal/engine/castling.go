package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// castleKingFile and castleRookFile are the destination files of king and rook.
var (
	castleKingFile = [2]int{chess.Kingside: 6, chess.Queenside: 2}
	castleRookFile = [2]int{chess.Kingside: 5, chess.Queenside: 3}
)

// generateCastlingMoves appends the castling moves available to the king on from.
// A side is offered only when its right is still held, king and rook stand on
// their home squares, every square between them is empty, and none of the
// squares the king starts on, passes over or lands on is attacked.
func generateCastlingMoves(board *chess.Board, from chess.Position, king chess.Piece, moves []chess.Move) []chess.Move {
	colour := king.Colour
	if from != chess.KingHome(colour) {
		return moves
	}

	enemy := colour.Opposite()
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !board.CanCastle(colour, side) {
			continue
		}
		rookHome := chess.RookHome(colour, side)
		if board.Get(rookHome) != chess.NewPiece(colour, chess.Rook) {
			continue
		}
		if !isPathClear(board, from, rookHome) {
			continue
		}

		to := chess.Position{File: castleKingFile[side], Rank: from.Rank}
		if !kingPathSafe(board, from, to, enemy) {
			continue
		}

		moves = append(moves, chess.Move{
			From:  from,
			To:    to,
			Piece: king,
			Kind:  chess.Castle,
			Side:  side,
		})
	}
	return moves
}

// kingPathSafe reports whether every square from the king's start to its
// destination, both inclusive, is free of attack by enemy.
func kingPathSafe(board *chess.Board, from, to chess.Position, enemy chess.Colour) bool {
	step := sign(to.File - from.File)
	for pos := from; ; pos = pos.Offset(step, 0) {
		if IsSquareAttacked(board, pos, enemy) {
			return false
		}
		if pos == to {
			return true
		}
	}
}

// applyCastleRook relocates the rook that accompanies a castling king.
func applyCastleRook(board *chess.Board, colour chess.Colour, side chess.CastleSide) {
	rookFrom := chess.RookHome(colour, side)
	rookTo := chess.Position{File: castleRookFile[side], Rank: rookFrom.Rank}
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)
}

// updateCastlingRights removes castling rights when a king or rook leaves its
// home square, or when anything lands on a rook's home square (capturing it).
func updateCastlingRights(board *chess.Board, from, to chess.Position) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if from == chess.KingHome(colour) {
			board.RevokeCastling(chess.ColourCastling(colour))
		}
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			rookHome := chess.RookHome(colour, side)
			if from == rookHome || to == rookHome {
				board.RevokeCastling(chess.CastlingRight(colour, side))
			}
		}
	}
}
