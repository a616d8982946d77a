// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// IsValid reports whether c is Black or White.
func (c Colour) IsValid() bool {
	return c == Black || c == White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index on which the colour's king and rooks start.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index on which the colour's pawns start.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank for the colour's pawns.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PieceType represents a chess piece type.
// The zero value NoPieceType marks an empty square.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	King
	Queen
	NumPieceTypes
)

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Bishop", "Knight", "Rook", "King", "Queen"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'B', 'N', 'R', 'K', 'Q'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsValid reports whether p names a real piece.
func (p PieceType) IsValid() bool {
	return p >= Pawn && p <= Queen
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is NoPiece, an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given colour and type.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// IsValid reports whether p is a real piece of a real colour.
func (p Piece) IsValid() bool {
	return p.Type.IsValid() && p.Colour.IsValid()
}

// Letter returns the FEN letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Position is a square on the board as a (file, rank) pair, each in [0,8).
// File 0 is the a-file and rank 0 is White's home rank.
type Position struct {
	File int
	Rank int
}

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Offset returns the position shifted by the given file and rank deltas.
// The result may be off the board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// String returns the algebraic name of the square (e.g. "e4"),
// or the raw coordinates for positions off the board.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("(%d, %d)", p.File, p.Rank)
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// ParsePosition converts an algebraic square name such as "e4" to a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Field:    "square",
			Expected: "a1..h8",
			Got:      s,
		}
	}
	return Position{File: int(s[0] - FileBase), Rank: int(s[1] - RankBase)}, nil
}

// CheckPosition returns an ErrInvalidPosition-wrapped error when pos is off the board.
func CheckPosition(pos Position) error {
	if !pos.IsValid() {
		return errors.Wrapf(errors.ErrInvalidPosition, "square %s", pos)
	}
	return nil
}

// CastleSide selects kingside or queenside castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns "kingside" or "queenside".
func (s CastleSide) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// CastlingRights is a set of the four castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// NoCastling and AllCastling are the empty and full rights sets.
const (
	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the single flag for a colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// ColourCastling returns both flags of a colour.
func ColourCastling(colour Colour) CastlingRights {
	return CastlingRight(colour, Kingside) | CastlingRight(colour, Queenside)
}

// Has reports whether the flag for colour and side is set.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	return r&CastlingRight(colour, side) != 0
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (r CastlingRights) String() string {
	var out []byte
	if r&WhiteKingside != 0 {
		out = append(out, 'K')
	}
	if r&WhiteQueenside != 0 {
		out = append(out, 'Q')
	}
	if r&BlackKingside != 0 {
		out = append(out, 'k')
	}
	if r&BlackQueenside != 0 {
		out = append(out, 'q')
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// RookHome returns the home square of the rook involved in castling.
func RookHome(colour Colour, side CastleSide) Position {
	file := BoardSize - 1
	if side == Queenside {
		file = 0
	}
	return Position{File: file, Rank: HomeRank(colour)}
}

// KingHome returns the home square of the colour's king.
func KingHome(colour Colour) Position {
	return Position{File: 4, Rank: HomeRank(colour)}
}
