package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// generatePawnMoves appends the pseudo-legal moves of a pawn: single push,
// double push from the pawn's start rank, diagonal captures, en passant, and
// one move per promotion piece when the destination is the farthest rank.
func generatePawnMoves(board *chess.Board, from chess.Position, pawn chess.Piece, moves []chess.Move) []chess.Move {
	colour := pawn.Colour
	dir := chess.ColourOffset(colour)

	// Forward moves
	one := from.Offset(0, dir)
	if one.IsValid() && board.Get(one).IsEmpty() {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: pawn})

		two := from.Offset(0, 2*dir)
		if from.Rank == chess.PawnRank(colour) && board.Get(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
		}
	}

	// Captures
	for _, df := range pawnCaptureDirs {
		to := from.Offset(df, dir)
		if !to.IsValid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() {
			if target.Colour != colour {
				moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target})
			}
			continue
		}
		if m, ok := enPassantMove(board, from, to, pawn); ok {
			moves = append(moves, m)
		}
	}

	return moves
}

// appendPawnMove appends m, expanding it into the four promotion choices when
// it reaches the farthest rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank != chess.PromotionRank(m.Piece.Colour) {
		return append(moves, m)
	}
	for _, pt := range chess.PromotionTypes {
		promo := m
		promo.Kind = chess.Promotion
		promo.Promotion = pt
		moves = append(moves, promo)
	}
	return moves
}

// enPassantMove builds the en passant capture onto the empty square to, if the
// board's en passant target allows it. The target belongs to the side to move
// only, and the pawn being captured must stand beside the capturing pawn.
func enPassantMove(board *chess.Board, from, to chess.Position, pawn chess.Piece) (chess.Move, bool) {
	if !board.EnPassant || board.EPTarget != to || pawn.Colour != board.ToMove {
		return chess.Move{}, false
	}
	victimPos := chess.Position{File: to.File, Rank: from.Rank}
	victim := board.Get(victimPos)
	if victim != chess.NewPiece(pawn.Colour.Opposite(), chess.Pawn) {
		return chess.Move{}, false
	}
	return chess.Move{From: from, To: to, Piece: pawn, Captured: victim, Kind: chess.EnPassant}, true
}
