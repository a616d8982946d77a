package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.KingHome(chess.White)) == chess.W(chess.King) &&
					b.Get(chess.KingHome(chess.Black)) == chess.B(chess.King) &&
					b.Get(chess.Position{File: 3, Rank: 7}) == chess.B(chess.Queen) &&
					b.ToMove == chess.White &&
					b.Castling() == chess.AllCastling
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Position{File: 4, Rank: 3}) == chess.W(chess.Pawn) &&
					b.Get(chess.Position{File: 4, Rank: 1}).IsEmpty() &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPTarget == chess.Position{File: 4, Rank: 2}
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling() == chess.NoCastling
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && b.MoveNumber == 1 && !b.EnPassant &&
					b.Castling() == chess.NoCastling
			},
		},
		{
			name: "clocks",
			fen:  position5FEN,
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 1 && b.MoveNumber == 8
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed; got %s", tt.fen, BoardToFEN(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too long", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"piece past h-file", "8/8/8/8/8/8/8/8K w - - 0 1"},
		{"bad piece letter", "8/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant", "8/8/8/8/8/8/8/4K3 w - e4 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "8/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"extra field", InitialFEN + " extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}

	t.Run("parse error carries field", func(t *testing.T) {
		_, err := NewBoardFromFEN("8/8/8/8/8/8/8/4K3 q - - 0 1")
		var perr *chesserrors.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("error %v is not a *ParseError", err)
		}
		testutil.AssertEqual(t, perr.Field, "side to move")
		testutil.AssertEqual(t, perr.Got, "q")
	})
}

func TestBoardToFEN(t *testing.T) {
	// FEN -> Board -> FEN must reproduce the input exactly.
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			testutil.AssertEqual(t, BoardToFEN(mustBoard(t, fen)), fen)
		})
	}
}

func TestBoardToFEN_Initial(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(chess.New()), InitialFEN)
}
