package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

var crossCheckFENs = []string{
	InitialFEN,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
}

// dragontoothPerft counts leaf nodes with an independent bitboard generator.
func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesDragontooth(t *testing.T) {
	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			reference := dragontoothmg.ParseFen(fen)
			for depth := 1; depth <= 2; depth++ {
				want := dragontoothPerft(&reference, depth)
				if got := Perft(board, depth); got != want {
					t.Errorf("Perft(%d) = %d; dragontoothmg counts %d", depth, got, want)
				}
			}
		})
	}
}

// notnilMoves returns the UCI text of every legal move notnil/chess finds,
// grouped by origin square.
func notnilMoves(t *testing.T, fen string) map[string][]string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q) error: %v", fen, err)
	}
	game := notnil.NewGame(opt)

	bySquare := make(map[string][]string)
	for _, m := range game.ValidMoves() {
		text := m.S1().String() + m.S2().String()
		if m.Promo() != notnil.NoPieceType {
			text += m.Promo().String()
		}
		from := m.S1().String()
		bySquare[from] = append(bySquare[from], text)
	}
	return bySquare
}

func TestLegalMovesFromMatchesNotnil(t *testing.T) {
	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			want := notnilMoves(t, fen)

			for _, pos := range board.PiecePositions(board.ToMove) {
				moves, err := LegalMovesFrom(board, pos)
				testutil.AssertNoError(t, err)
				expected := want[pos.String()]
				if expected == nil {
					expected = []string{}
				}
				testutil.AssertMoveSet(t, moves, expected, "square %s", pos)
			}

			// Squares of the side not to move never appear in the reference.
			for _, pos := range board.PiecePositions(board.ToMove.Opposite()) {
				if len(want[pos.String()]) != 0 {
					t.Errorf("reference lists moves from %s", pos)
				}
			}
			testutil.AssertEqual(t, len(LegalMoves(board)), countAll(want))
		})
	}
}

func countAll(bySquare map[string][]string) int {
	n := 0
	for _, moves := range bySquare {
		n += len(moves)
	}
	return n
}

func TestCheckmateMatchesNotnil(t *testing.T) {
	fen := "k3r3/8/8/8/8/8/4q3/4K3 w - - 0 1"
	opt, err := notnil.FEN(fen)
	testutil.AssertNoError(t, err)
	game := notnil.NewGame(opt)

	testutil.AssertEqual(t, game.Position().Status() == notnil.Checkmate, Status(mustBoard(t, fen)) == Checkmate)
	testutil.AssertEqual(t, game.Position().Turn() == notnil.White, mustBoard(t, fen).ToMove == chess.White)
}
