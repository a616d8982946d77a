// Package ffi is the Go side of the flat foreign interface: opaque board
// handles, plain-old-data pieces and moves, and caller-owned move buffers.
//
// The handle tables are guarded, so handles may be created and released from
// any goroutine. Board contents are not: callers serialize mutation of a
// board against reads of it.
package ffi

import (
	"sync"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Adapter owns the boards and move buffers handed out across the boundary.
type Adapter struct {
	cfg *config.Config

	mu         sync.Mutex
	boards     map[Chessboard]*chess.Board
	buffers    map[uint64]struct{}
	nextBoard  Chessboard
	nextBuffer uint64
	lastErr    error
}

// NewAdapter creates an adapter using cfg for strictness and logging.
func NewAdapter(cfg *config.Config) *Adapter {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Adapter{
		cfg:     cfg,
		boards:  make(map[Chessboard]*chess.Board),
		buffers: make(map[uint64]struct{}),
	}
}

// SetConfig replaces the configuration used by later calls.
func (a *Adapter) SetConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
}

func (a *Adapter) config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// board looks up a live handle.
func (a *Adapter) board(h Chessboard) (*chess.Board, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.boards[h]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownHandle, "handle %d", h)
	}
	return b, nil
}

// record stores the outcome of the latest call for LastError.
func (a *Adapter) record(err error) error {
	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()
	return err
}

// LastError returns the error of the most recent call, or nil if it succeeded.
func (a *Adapter) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// LoadConfig reads a TOML config file and uses it for later calls. On error
// the current configuration is kept.
func (a *Adapter) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return a.record(err)
	}
	a.SetConfig(cfg)
	return a.record(nil)
}

// BoardNew creates a board in the standard starting position.
func (a *Adapter) BoardNew() Chessboard {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextBoard++
	a.boards[a.nextBoard] = chess.New()
	a.lastErr = nil
	return a.nextBoard
}

// BoardNewFromFEN creates a board from a FEN position.
func (a *Adapter) BoardNewFromFEN(fen string) (Chessboard, error) {
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return 0, a.record(err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextBoard++
	a.boards[a.nextBoard] = b
	a.lastErr = nil
	return a.nextBoard, nil
}

// BoardFree releases a board handle. Freeing an unknown handle is a no-op.
func (a *Adapter) BoardFree(h Chessboard) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.boards, h)
	a.lastErr = nil
}

// BoardGetPieceAt returns the piece on pos, or nil when the square is empty
// or the call is invalid. Invalid calls are distinguishable through
// LastError and are logged at verbosity 2.
func (a *Adapter) BoardGetPieceAt(h Chessboard, pos Position) *Piece {
	b, err := a.board(h)
	if err != nil {
		a.collapse("board_get_piece_at", h, pos, err)
		return nil
	}
	p, err := toPosition(pos)
	if err != nil {
		a.collapse("board_get_piece_at", h, pos, err)
		return nil
	}
	a.record(nil)

	piece := b.Get(p)
	if piece.IsEmpty() {
		return nil
	}
	out := fromPiece(piece)
	return &out
}

func (a *Adapter) collapse(call string, h Chessboard, pos Position, err error) {
	a.record(err)
	a.config().Logf(2, "ffi: %s(%d, %s): %v", call, h, pos, err)
}

// BoardSetPieceAt places piece on pos, replacing anything there.
func (a *Adapter) BoardSetPieceAt(h Chessboard, pos Position, piece Piece) error {
	b, err := a.board(h)
	if err != nil {
		return a.record(err)
	}
	p, err := toPosition(pos)
	if err != nil {
		return a.record(err)
	}
	cp, err := toPiece(piece)
	if err != nil {
		return a.record(err)
	}
	return a.record(b.SetPieceAt(p, cp))
}

// BoardDestroyPieceAt clears pos. With strict king removal configured,
// removing the last king of a colour fails with ErrIllegalKingRemoval.
func (a *Adapter) BoardDestroyPieceAt(h Chessboard, pos Position) error {
	b, err := a.board(h)
	if err != nil {
		return a.record(err)
	}
	p, err := toPosition(pos)
	if err != nil {
		return a.record(err)
	}

	piece := b.Get(p)
	if a.config().Rules.StrictKingRemoval && piece.Type == chess.King && b.Count(piece) == 1 {
		return a.record(errors.Wrapf(errors.ErrIllegalKingRemoval, "%s king on %s", piece.Colour, p))
	}
	return a.record(b.DestroyPieceAt(p))
}

// BoardGetPossibleMoves returns the legal moves of the piece on pos in a new
// buffer. An empty square yields an empty buffer; an invalid position fails
// with ErrInvalidPosition. Every returned buffer must be passed to MovesDestroy.
func (a *Adapter) BoardGetPossibleMoves(h Chessboard, pos Position) (PossibleMoves, error) {
	b, err := a.board(h)
	if err != nil {
		return PossibleMoves{}, a.record(err)
	}
	p, err := toPosition(pos)
	if err != nil {
		return PossibleMoves{}, a.record(err)
	}
	moves, err := engine.LegalMovesFrom(b, p)
	if err != nil {
		return PossibleMoves{}, a.record(err)
	}

	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = fromMove(m)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextBuffer++
	a.buffers[a.nextBuffer] = struct{}{}
	a.lastErr = nil
	return PossibleMoves{ID: a.nextBuffer, Moves: out}, nil
}

// MovesDestroy releases a move buffer. Releasing a buffer twice is a no-op.
func (a *Adapter) MovesDestroy(pm PossibleMoves) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.buffers, pm.ID)
	a.lastErr = nil
}

// BoardApplyMove plays the legal move from -> to. Promotion is read only when
// the move promotes. Moves outside the legal set are rejected.
func (a *Adapter) BoardApplyMove(h Chessboard, from, to Position, promotion PieceType) error {
	b, err := a.board(h)
	if err != nil {
		return a.record(err)
	}
	f, err := toPosition(from)
	if err != nil {
		return a.record(err)
	}
	t, err := toPosition(to)
	if err != nil {
		return a.record(err)
	}

	move := chess.Move{From: f, To: t}
	if piece := b.Get(f); piece.Type == chess.Pawn && t.Rank == chess.PromotionRank(piece.Colour) {
		if promotion < Bishop || promotion > Queen || promotion == King {
			return a.record(errors.Wrapf(errors.ErrInvalidPiece, "promotion to %d", promotion))
		}
		move.Promotion = toPieceType(promotion)
	}
	return a.record(engine.ApplyMove(b, move))
}

// BoardFEN returns the position of a board as FEN.
func (a *Adapter) BoardFEN(h Chessboard) (string, error) {
	b, err := a.board(h)
	if err != nil {
		return "", a.record(err)
	}
	a.record(nil)
	return engine.BoardToFEN(b), nil
}

// Boards reports how many board handles are live.
func (a *Adapter) Boards() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.boards)
}

// Outstanding reports how many move buffers have not been released.
func (a *Adapter) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffers)
}
