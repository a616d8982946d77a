// Package hashing provides Zobrist position keys, repetition counting and the
// shared perft cache.
package hashing

import "github.com/lgbarn/chess-core-go/internal/chess"

// Zobrist keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [2][chess.NumPieceTypes][chess.BoardSize][chess.BoardSize]uint64 // [Colour][PieceType][File][Rank]
	zobristEnPassant  [chess.BoardSize]uint64                                          // One per file
	zobristCastling   [16]uint64                                                       // All 16 castling combinations
	zobristSideToMove uint64                                                           // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for c := chess.Black; c <= chess.White; c++ {
		for pt := chess.Pawn; pt <= chess.Queen; pt++ {
			for file := 0; file < chess.BoardSize; file++ {
				for rank := 0; rank < chess.BoardSize; rank++ {
					zobristPiece[c][pt][file][rank] = rng.next()
				}
			}
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// GenerateZobristHash computes the Zobrist key of a position: pieces, side to
// move, castling rights and the en passant file when a capture is available.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, pos := range board.PiecePositions(colour) {
			hash ^= zobristPiece[colour][board.Get(pos).Type][pos.File][pos.Rank]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[board.Castling()]
	if enPassantCapturable(board) {
		hash ^= zobristEnPassant[board.EPTarget.File]
	}
	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the pawn that just passed over the en passant target. Pins are not
// checked.
func enPassantCapturable(board *chess.Board) bool {
	if !board.EnPassant {
		return false
	}
	rank := board.EPTarget.Rank - chess.ColourOffset(board.ToMove)
	victim := chess.Position{File: board.EPTarget.File, Rank: rank}
	if board.Get(victim) != chess.NewPiece(board.ToMove.Opposite(), chess.Pawn) {
		return false
	}
	pawn := chess.NewPiece(board.ToMove, chess.Pawn)
	for _, df := range []int{-1, 1} {
		pos := victim.Offset(df, 0)
		if pos.IsValid() && board.Get(pos) == pawn {
			return true
		}
	}
	return false
}

// PerftKey combines a position key with a remaining depth so that the perft
// table can hold counts for several depths of the same position.
func PerftKey(board *chess.Board, depth int) uint64 {
	return GenerateZobristHash(board) ^ (uint64(depth) * 0x9E3779B97F4A7C15)
}
