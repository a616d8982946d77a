package chess

import "github.com/lgbarn/chess-core-go/internal/errors"

// MoveKind tags the special semantics of a move.
type MoveKind int

const (
	Normal MoveKind = iota
	Castle
	EnPassant
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Castle:
		return "Castle"
	case EnPassant:
		return "EnPassant"
	case Promotion:
		return "Promotion"
	default:
		return "Normal"
	}
}

// Move describes a single ply. Moves are produced by the engine's generator;
// a caller-built Move is only accepted once matched against the legal set.
type Move struct {
	// Source and destination squares. For castling these are the king's squares.
	From Position
	To   Position

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if not a capture). For en passant this is
	// the pawn beside the destination.
	Captured Piece

	// Kind of move (normal, castle, en passant, promotion).
	Kind MoveKind

	// Castling side, meaningful only when Kind is Castle.
	Side CastleSide

	// The piece type promoted to, meaningful only when Kind is Promotion.
	Promotion PieceType
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castle
}

// String returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// ParseMoveText splits UCI move text such as "e2e4" or "a7a8n" into its squares
// and optional promotion piece type.
func ParseMoveText(text string) (from, to Position, promotion PieceType, err error) {
	if len(text) != 4 && len(text) != 5 {
		return from, to, NoPieceType, &errors.ParseError{
			Err:      errors.ErrIllegalMove,
			Field:    "move",
			Expected: "UCI move such as e2e4",
			Got:      text,
		}
	}
	if from, err = ParsePosition(text[0:2]); err != nil {
		return from, to, NoPieceType, err
	}
	if to, err = ParsePosition(text[2:4]); err != nil {
		return from, to, NoPieceType, err
	}
	if len(text) == 5 {
		promotion = PieceTypeFromLetter(text[4])
		if promotion == NoPieceType || promotion == Pawn || promotion == King {
			return from, to, NoPieceType, &errors.ParseError{
				Err:      errors.ErrIllegalMove,
				Field:    "promotion",
				Expected: "one of q, r, b, n",
				Got:      text[4:],
			}
		}
	}
	return from, to, promotion, nil
}
