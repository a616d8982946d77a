package ffi

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/config"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func newTestAdapter(t *testing.T) (*Adapter, *bytes.Buffer) {
	t.Helper()
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(2).Build()
	return NewAdapter(cfg), &log
}

func sq(t *testing.T, name string) Position {
	t.Helper()
	return fromPosition(testutil.Sq(t, name))
}

// destinations returns the move targets ordered by rank, then file.
func destinations(moves []Move) []Position {
	out := make([]Position, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestBoardNew_InitialPosition(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	tests := []struct {
		square string
		want   *Piece
	}{
		{"e1", &Piece{Ty: King, Color: White}},
		{"d8", &Piece{Ty: Queen, Color: Black}},
		{"a2", &Piece{Ty: Pawn, Color: White}},
		{"c8", &Piece{Ty: Bishop, Color: Black}},
		{"g1", &Piece{Ty: Knight, Color: White}},
		{"h8", &Piece{Ty: Rook, Color: Black}},
		{"e4", nil},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			testutil.AssertEqual(t, a.BoardGetPieceAt(h, sq(t, tt.square)), tt.want)
		})
	}
}

func TestBoardNew_DistinctHandles(t *testing.T) {
	a, _ := newTestAdapter(t)
	h1 := a.BoardNew()
	h2 := a.BoardNew()
	if h1 == h2 || h1 == 0 || h2 == 0 {
		t.Fatalf("handles %d and %d should be distinct and non-zero", h1, h2)
	}

	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h1, sq(t, "e2")))
	if a.BoardGetPieceAt(h2, sq(t, "e2")) == nil {
		t.Error("editing one board changed another")
	}
}

func TestBoardGetPieceAt_InvalidCollapsesToNil(t *testing.T) {
	a, log := newTestAdapter(t)
	h := a.BoardNew()

	if p := a.BoardGetPieceAt(h, sq(t, "e4")); p != nil {
		t.Fatalf("empty square = %+v, want nil", p)
	}
	testutil.AssertNoError(t, a.LastError(), "empty square is not an error")

	if p := a.BoardGetPieceAt(h, Position{X: 8, Y: 0}); p != nil {
		t.Fatalf("invalid square = %+v, want nil", p)
	}
	testutil.AssertErrorIs(t, a.LastError(), chesserrors.ErrInvalidPosition)
	testutil.AssertContains(t, log.String(), "board_get_piece_at")

	if p := a.BoardGetPieceAt(h+100, sq(t, "e1")); p != nil {
		t.Fatalf("unknown handle = %+v, want nil", p)
	}
	testutil.AssertErrorIs(t, a.LastError(), chesserrors.ErrUnknownHandle)
}

func TestBoardSetPieceAt(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	queen := Piece{Ty: Queen, Color: Black}
	testutil.AssertNoError(t, a.BoardSetPieceAt(h, sq(t, "e4"), queen))
	testutil.AssertEqual(t, a.BoardGetPieceAt(h, sq(t, "e4")), &queen)

	tests := []struct {
		name   string
		pos    Position
		piece  Piece
		target error
	}{
		{"file too large", Position{X: 8, Y: 3}, queen, chesserrors.ErrInvalidPosition},
		{"negative rank", Position{X: 3, Y: -1}, queen, chesserrors.ErrInvalidPosition},
		{"unknown type", Position{X: 3, Y: 3}, Piece{Ty: 6, Color: White}, chesserrors.ErrInvalidPiece},
		{"unknown colour", Position{X: 3, Y: 3}, Piece{Ty: Rook, Color: 2}, chesserrors.ErrInvalidPiece},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.BoardSetPieceAt(h, tt.pos, tt.piece)
			testutil.AssertErrorIs(t, err, tt.target)
			testutil.AssertErrorIs(t, a.LastError(), tt.target)
		})
	}
	if a.BoardGetPieceAt(h, Position{X: 3, Y: 3}) != nil {
		t.Error("a rejected piece reached the board")
	}
}

func TestBoardDestroyPieceAt(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h, sq(t, "d1")))
	if a.BoardGetPieceAt(h, sq(t, "d1")) != nil {
		t.Error("d1 should be empty")
	}
	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h, sq(t, "d4")), "clearing an empty square")
	testutil.AssertErrorIs(t, a.BoardDestroyPieceAt(h, Position{X: -1, Y: 0}), chesserrors.ErrInvalidPosition)

	// Without strict mode kings may be removed.
	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h, sq(t, "e8")))
	if a.BoardGetPieceAt(h, sq(t, "e8")) != nil {
		t.Error("e8 should be empty")
	}
}

func TestBoardDestroyPieceAt_StrictKingRemoval(t *testing.T) {
	cfg := config.NewConfigBuilder().WithStrictKingRemoval(true).WithVerbosity(0).Build()
	a := NewAdapter(cfg)
	h := a.BoardNew()

	err := a.BoardDestroyPieceAt(h, sq(t, "e1"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalKingRemoval)
	if a.BoardGetPieceAt(h, sq(t, "e1")) == nil {
		t.Fatal("the last white king was removed")
	}

	// A second king of the same colour makes one removable.
	testutil.AssertNoError(t, a.BoardSetPieceAt(h, sq(t, "e4"), Piece{Ty: King, Color: White}))
	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h, sq(t, "e1")))
	testutil.AssertErrorIs(t, a.BoardDestroyPieceAt(h, sq(t, "e4")), chesserrors.ErrIllegalKingRemoval)

	testutil.AssertNoError(t, a.BoardDestroyPieceAt(h, sq(t, "d8")), "other pieces are unaffected")
}

func TestBoardGetPossibleMoves_StartingPosition(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	tests := []struct {
		square string
		want   []string
	}{
		{"e2", []string{"e3", "e4"}},
		{"a2", []string{"a3", "a4"}},
		{"b1", []string{"a3", "c3"}},
		{"g1", []string{"f3", "h3"}},
		{"g8", []string{"f6", "h6"}},
		{"a1", nil},
		{"e4", nil},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			pm, err := a.BoardGetPossibleMoves(h, sq(t, tt.square))
			testutil.AssertNoError(t, err)
			defer a.MovesDestroy(pm)

			want := make([]Position, len(tt.want))
			for i, s := range tt.want {
				want[i] = sq(t, s)
			}
			testutil.AssertEqual(t, destinations(pm.Moves), want)
		})
	}
}

func TestBoardGetPossibleMoves_Errors(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	_, err := a.BoardGetPossibleMoves(h, Position{X: 0, Y: 8})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPosition)

	_, err = a.BoardGetPossibleMoves(Chessboard(999), sq(t, "e2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrUnknownHandle)

	if a.Outstanding() != 0 {
		t.Errorf("failed calls left %d buffers outstanding", a.Outstanding())
	}
}

func TestBoardGetPossibleMoves_Promotion(t *testing.T) {
	a, _ := newTestAdapter(t)
	h, err := a.BoardNewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	pm, err := a.BoardGetPossibleMoves(h, sq(t, "a7"))
	testutil.AssertNoError(t, err)
	defer a.MovesDestroy(pm)

	if len(pm.Moves) != 4 {
		t.Fatalf("got %d promotion moves, want 4", len(pm.Moves))
	}
	seen := make(map[PieceType]bool)
	for _, m := range pm.Moves {
		if m.Kind != Promotion || m.To != sq(t, "a8") || m.HasCapture {
			t.Errorf("unexpected move %+v", m)
		}
		seen[m.Promotion] = true
	}
	testutil.AssertEqual(t, seen, map[PieceType]bool{Queen: true, Rook: true, Bishop: true, Knight: true})
}

func TestBoardGetPossibleMoves_CaptureAndCastle(t *testing.T) {
	a, _ := newTestAdapter(t)
	h, err := a.BoardNewFromFEN("4k3/8/8/8/8/8/8/R3K2r w Q - 0 1")
	testutil.AssertNoError(t, err)

	pm, err := a.BoardGetPossibleMoves(h, sq(t, "a1"))
	testutil.AssertNoError(t, err)
	defer a.MovesDestroy(pm)
	for _, m := range pm.Moves {
		if m.Piece != (Piece{Ty: Rook, Color: White}) {
			t.Errorf("moving piece = %+v", m.Piece)
		}
	}

	// The king is in check from h1, so it cannot castle and must step off the rank.
	km, err := a.BoardGetPossibleMoves(h, sq(t, "e1"))
	testutil.AssertNoError(t, err)
	defer a.MovesDestroy(km)
	for _, m := range km.Moves {
		if m.Kind == Castle {
			t.Errorf("castled out of check: %+v", m)
		}
		if m.To.Y == 0 {
			t.Errorf("king stayed on an attacked rank: %+v", m)
		}
	}

	testutil.AssertNoError(t, a.BoardSetPieceAt(h, sq(t, "h1"), Piece{Ty: Knight, Color: Black}))
	testutil.AssertNoError(t, a.BoardSetPieceAt(h, sq(t, "g2"), Piece{Ty: Pawn, Color: Black}))
	cm, err := a.BoardGetPossibleMoves(h, sq(t, "e1"))
	testutil.AssertNoError(t, err)
	defer a.MovesDestroy(cm)

	var castle, capture bool
	for _, m := range cm.Moves {
		if m.Kind == Castle && m.To == sq(t, "c1") {
			castle = true
		}
		if m.To == sq(t, "f2") {
			t.Errorf("f2 is covered by the knight on h1: %+v", m)
		}
		if m.HasCapture {
			capture = true
		}
	}
	testutil.AssertTrue(t, castle, "queenside castle should be offered")
	testutil.AssertFalse(t, capture, "no captures are available to the king")
}

func TestMovesDestroy_Idempotent(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	pm1, err := a.BoardGetPossibleMoves(h, sq(t, "e2"))
	testutil.AssertNoError(t, err)
	pm2, err := a.BoardGetPossibleMoves(h, sq(t, "e4"))
	testutil.AssertNoError(t, err)

	if pm2.Moves == nil || len(pm2.Moves) != 0 {
		t.Errorf("empty square buffer = %#v, want empty non-nil", pm2.Moves)
	}
	if pm1.ID == pm2.ID {
		t.Fatal("buffers share an ID")
	}
	testutil.AssertEqual(t, a.Outstanding(), 2)

	a.MovesDestroy(pm1)
	a.MovesDestroy(pm1)
	testutil.AssertEqual(t, a.Outstanding(), 1)

	a.MovesDestroy(pm2)
	testutil.AssertEqual(t, a.Outstanding(), 0)
}

func TestBoardFree(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()
	testutil.AssertEqual(t, a.Boards(), 1)

	a.BoardFree(h)
	a.BoardFree(h)
	testutil.AssertEqual(t, a.Boards(), 0)

	err := a.BoardSetPieceAt(h, sq(t, "e4"), Piece{Ty: Pawn, Color: White})
	testutil.AssertErrorIs(t, err, chesserrors.ErrUnknownHandle)
}

func TestBoardApplyMove(t *testing.T) {
	a, _ := newTestAdapter(t)
	h := a.BoardNew()

	testutil.AssertNoError(t, a.BoardApplyMove(h, sq(t, "e2"), sq(t, "e4"), Queen))
	fen, err := a.BoardFEN(h)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fen, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	err = a.BoardApplyMove(h, sq(t, "e4"), sq(t, "e5"), Queen)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove, "white cannot move twice")

	err = a.BoardApplyMove(h, sq(t, "e5"), sq(t, "e4"), Queen)
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoPieceAtSquare)

	err = a.BoardApplyMove(h, Position{X: 4, Y: 9}, sq(t, "e4"), Queen)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPosition)

	after, _ := a.BoardFEN(h)
	testutil.AssertEqual(t, after, fen, "rejected moves leave the board alone")
}

func TestBoardApplyMove_Promotion(t *testing.T) {
	a, _ := newTestAdapter(t)
	h, err := a.BoardNewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertErrorIs(t, a.BoardApplyMove(h, sq(t, "a7"), sq(t, "a8"), King), chesserrors.ErrInvalidPiece)
	testutil.AssertErrorIs(t, a.BoardApplyMove(h, sq(t, "a7"), sq(t, "a8"), Pawn), chesserrors.ErrInvalidPiece)

	testutil.AssertNoError(t, a.BoardApplyMove(h, sq(t, "a7"), sq(t, "a8"), Knight))
	testutil.AssertEqual(t, a.BoardGetPieceAt(h, sq(t, "a8")), &Piece{Ty: Knight, Color: White})
}

func TestBoardNewFromFEN_Invalid(t *testing.T) {
	a, _ := newTestAdapter(t)
	_, err := a.BoardNewFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	testutil.AssertEqual(t, a.Boards(), 0)
}

func TestPieceTypeMapping(t *testing.T) {
	for ty := Pawn; ty <= Queen; ty++ {
		for _, c := range []Color{Black, White} {
			p := Piece{Ty: ty, Color: c}
			cp, err := toPiece(p)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, fromPiece(cp), p)
		}
	}
}

func TestAdapter_ConcurrentHandles(t *testing.T) {
	a := NewAdapter(config.NewConfigBuilder().WithVerbosity(0).Build())

	const n = 32
	var wg sync.WaitGroup
	handles := make([]Chessboard, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := a.BoardNew()
			handles[i] = h
			pm, err := a.BoardGetPossibleMoves(h, Position{X: 1, Y: 0})
			if err == nil {
				a.MovesDestroy(pm)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[Chessboard]bool)
	for _, h := range handles {
		if seen[h] {
			t.Fatalf("handle %d issued twice", h)
		}
		seen[h] = true
	}
	testutil.AssertEqual(t, a.Boards(), n)
	testutil.AssertEqual(t, a.Outstanding(), 0)
}

func TestDefaultAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.toml")
	if err := os.WriteFile(path, []byte("verbosity = 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	testutil.AssertNoError(t, LoadConfig(path))
	testutil.AssertEqual(t, defaultAdapter.config().Verbosity, 0)

	h := BoardNew()
	defer BoardFree(h)

	pm, err := BoardGetPossibleMoves(h, Position{X: 6, Y: 0})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(pm.Moves), 2)
	MovesDestroy(pm)

	if p := BoardGetPieceAt(h, Position{X: 9, Y: 9}); p != nil {
		t.Error("invalid position should yield nil")
	}
	if !errors.Is(LastError(), chesserrors.ErrInvalidPosition) {
		t.Errorf("LastError() = %v", LastError())
	}
	if !strings.Contains(Position{X: 9, Y: 9}.String(), "9") {
		t.Error("Position.String should show raw coordinates")
	}
}
