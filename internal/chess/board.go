package chess

import "github.com/lgbarn/chess-core-go/internal/errors"

// Board represents a chess board with all state needed for the game.
//
// A Board has no internal locking; callers serialize mutation against reads.
type Board struct {
	// The board squares, indexed [file][rank].
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling flags; these can only be cleared once set.
	castling CastlingRights

	// Is EnPassant capture possible? If so then EPTarget is the square
	// the double-stepping pawn passed over.
	EnPassant bool
	EPTarget  Position

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return NewBoardWithRights(NoCastling)
}

// NewBoardWithRights creates an empty board holding the given castling rights.
// It is used when setting up a position from a description such as FEN.
func NewBoardWithRights(rights CastlingRights) *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		castling:   rights & AllCastling,
	}
}

// New creates a board holding the standard starting position.
func New() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}

	b.castling = AllCastling
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPTarget = Position{}
	b.HalfmoveClock = 0
}

// Get returns the piece at pos, or NoPiece for empty or off-board squares.
func (b *Board) Get(pos Position) Piece {
	if !pos.IsValid() {
		return NoPiece
	}
	return b.squares[pos.File][pos.Rank]
}

// Set places a piece at pos. Off-board positions are ignored.
func (b *Board) Set(pos Position, piece Piece) {
	if pos.IsValid() {
		b.squares[pos.File][pos.Rank] = piece
	}
}

// PieceAt returns the piece at pos. An empty square yields NoPiece and a nil
// error; a position off the board yields ErrInvalidPosition.
func (b *Board) PieceAt(pos Position) (Piece, error) {
	if err := CheckPosition(pos); err != nil {
		return NoPiece, err
	}
	return b.squares[pos.File][pos.Rank], nil
}

// SetPieceAt overwrites the square at pos. It is a setup operation: castling
// rights, the en passant target and the side to move are left untouched.
func (b *Board) SetPieceAt(pos Position, piece Piece) error {
	if err := CheckPosition(pos); err != nil {
		return err
	}
	if !piece.IsValid() {
		return errors.Wrapf(errors.ErrInvalidPiece, "%v", piece)
	}
	b.squares[pos.File][pos.Rank] = piece
	return nil
}

// DestroyPieceAt clears the square at pos. Clearing an empty square is a no-op.
func (b *Board) DestroyPieceAt(pos Position) error {
	if err := CheckPosition(pos); err != nil {
		return err
	}
	b.squares[pos.File][pos.Rank] = NoPiece
	return nil
}

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights {
	return b.castling
}

// CanCastle reports whether the right for colour and side is still held.
func (b *Board) CanCastle(colour Colour, side CastleSide) bool {
	return b.castling.Has(colour, side)
}

// RevokeCastling clears the given flags. Flags are never set again.
func (b *Board) RevokeCastling(rights CastlingRights) {
	b.castling &^= rights
}

// KingPosition finds the king of the given colour.
func (b *Board) KingPosition(colour Colour) (Position, bool) {
	king := NewPiece(colour, King)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] == king {
				return Position{File: file, Rank: rank}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many copies of piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] == piece {
				n++
			}
		}
	}
	return n
}

// PiecePositions returns the squares occupied by the given colour,
// rank by rank from a1 to h8.
func (b *Board) PiecePositions(colour Colour) []Position {
	positions := make([]Position, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				positions = append(positions, Position{File: file, Rank: rank})
			}
		}
	}
	return positions
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// This is more efficient than Copy() when you need to temporarily modify
// the board and then restore it (e.g., undoing a move).
type BoardState struct {
	board Board
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{board: *b}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	*b = s.board
}
