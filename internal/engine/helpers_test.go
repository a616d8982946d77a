package engine

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// mustBoard parses fen, failing the test on error.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// mustPlay plays UCI moves in order, failing the test on the first error.
func mustPlay(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := ResolveMove(board, text)
		if err != nil {
			t.Fatalf("ResolveMove(%q) error: %v", text, err)
		}
		if err := ApplyMove(board, m); err != nil {
			t.Fatalf("ApplyMove(%q) error: %v", text, err)
		}
	}
}
