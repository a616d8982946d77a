package engine

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/hashing"
)

// Game is a board plus the moves played on it. It records history for Undo
// and counts positions for repetition reporting; draw rules are reported,
// never enforced.
type Game struct {
	board     *chess.Board
	moves     []chess.Move
	states    []chess.BoardState
	positions *hashing.PositionCounter
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return NewGameFromBoard(chess.New())
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board), nil
}

// NewGameFromBoard starts a game from a copy of board.
func NewGameFromBoard(board *chess.Board) *Game {
	g := &Game{
		board:     board.Copy(),
		positions: hashing.NewPositionCounter(),
	}
	g.positions.Add(g.board)
	return g
}

// Board returns the current position. Callers must not mutate it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Play applies move if it is legal for the side to move.
func (g *Game) Play(move chess.Move) error {
	state := g.board.SaveState()
	legal, err := playMove(g.board, move)
	if err != nil {
		return err
	}
	g.record(state, legal)
	return nil
}

// PlayUCI resolves UCI move text and plays it.
func (g *Game) PlayUCI(text string) (chess.Move, error) {
	m, err := ResolveMove(g.board, text)
	if err != nil {
		return chess.Move{}, err
	}
	state := g.board.SaveState()
	makeMove(g.board, m)
	g.record(state, m)
	return m, nil
}

func (g *Game) record(state chess.BoardState, m chess.Move) {
	g.states = append(g.states, state)
	g.moves = append(g.moves, m)
	g.positions.Add(g.board)
}

// Undo takes back the last move. It returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	n := len(g.states)
	if n == 0 {
		return false
	}
	g.board.RestoreState(g.states[n-1])
	g.states = g.states[:n-1]
	g.moves = g.moves[:n-1]
	g.positions.RemoveLast()
	return true
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(g.board)
}

// LegalMovesFrom returns the legal moves of the piece on pos.
func (g *Game) LegalMovesFrom(pos chess.Position) ([]chess.Move, error) {
	return LegalMovesFrom(g.board, pos)
}

// Status reports checkmate, stalemate or ongoing for the side to move.
func (g *Game) Status() GameStatus {
	return Status(g.board)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.board, g.board.ToMove)
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.positions.Count(g.board)
}

// ThreefoldRepetition reports whether the current position has occurred at
// least three times.
func (g *Game) ThreefoldRepetition() bool {
	return g.RepetitionCount() >= ThreefoldRepetitionCount
}

// FivefoldRepetition reports whether the current position has occurred at
// least five times.
func (g *Game) FivefoldRepetition() bool {
	return g.RepetitionCount() >= FivefoldRepetitionCount
}

// MaxRepetition returns the highest occurrence count of any position so far.
func (g *Game) MaxRepetition() int {
	return g.positions.MaxCount()
}

// DistinctPositions returns how many different positions the game has reached.
func (g *Game) DistinctPositions() int {
	return g.positions.UniqueCount()
}

// FiftyMoveRule reports whether a fifty-move draw may be claimed.
func (g *Game) FiftyMoveRule() bool {
	return FiftyMoveRule(g.board)
}

// InsufficientMaterial reports whether neither side can mate.
func (g *Game) InsufficientMaterial() bool {
	return HasInsufficientMaterial(g.board)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}
