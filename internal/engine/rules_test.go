package engine

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "5b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "5b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"standard starting position", "", false}, // empty fen means use initial board
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var board *chess.Board
			if tt.fen == "" {
				board = chess.New()
			} else {
				var err error
				board, err = NewBoardFromFEN(tt.fen)
				if err != nil {
					t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
				}
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveCountRules(t *testing.T) {
	tests := []struct {
		halfmoves    uint
		wantFifty    bool
		wantSeventy5 bool
	}{
		{0, false, false},
		{99, false, false},
		{100, true, false},
		{149, true, false},
		{150, true, true},
	}

	for _, tt := range tests {
		board := chess.New()
		board.HalfmoveClock = tt.halfmoves
		if got := FiftyMoveRule(board); got != tt.wantFifty {
			t.Errorf("FiftyMoveRule(clock %d) = %v, want %v", tt.halfmoves, got, tt.wantFifty)
		}
		if got := SeventyFiveMoveRule(board); got != tt.wantSeventy5 {
			t.Errorf("SeventyFiveMoveRule(clock %d) = %v, want %v", tt.halfmoves, got, tt.wantSeventy5)
		}
	}
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		square string
		want   bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"e4", true},
		{"d4", false},
	}

	for _, tt := range tests {
		if got := isLightSquare(testutil.Sq(t, tt.square)); got != tt.want {
			t.Errorf("isLightSquare(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}
}

func TestIsPathClear(t *testing.T) {
	board := chess.New()
	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a8", false}, // pawn on a2
		{"a3", "a6", true},
		{"a3", "h3", true},
		{"c1", "h6", false}, // pawn on d2
		{"c3", "f6", true},
		{"e1", "h1", false}, // bishop and knight between
		{"a3", "b5", false}, // not a line
		{"e4", "e5", true},  // adjacent
	}

	for _, tt := range tests {
		from, to := testutil.Sq(t, tt.from), testutil.Sq(t, tt.to)
		if got := isPathClear(board, from, to); got != tt.want {
			t.Errorf("isPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
