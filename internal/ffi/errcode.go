package ffi

import (
	"errors"

	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
)

// ErrorCode mirrors the C ChessError enum reported by chess_last_error.
type ErrorCode int32

const (
	CodeOK ErrorCode = iota
	CodeInvalidPosition
	CodeUnknownHandle
	CodeIllegalMove
	CodeNoPieceAtSquare
	CodeIllegalKingRemoval
	CodeInvalidPiece
	CodeInvalidFEN
	CodeInvalidConfig
	CodeOther
)

var codeNames = [...]string{
	CodeOK:                 "CHESS_OK",
	CodeInvalidPosition:    "CHESS_INVALID_POSITION",
	CodeUnknownHandle:      "CHESS_UNKNOWN_HANDLE",
	CodeIllegalMove:        "CHESS_ILLEGAL_MOVE",
	CodeNoPieceAtSquare:    "CHESS_NO_PIECE_AT_SQUARE",
	CodeIllegalKingRemoval: "CHESS_ILLEGAL_KING_REMOVAL",
	CodeInvalidPiece:       "CHESS_INVALID_PIECE",
	CodeInvalidFEN:         "CHESS_INVALID_FEN",
	CodeInvalidConfig:      "CHESS_INVALID_CONFIG",
	CodeOther:              "CHESS_ERROR_OTHER",
}

// String returns the C enumerator name.
func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "CHESS_ERROR_OTHER"
	}
	return codeNames[c]
}

// codeOrder lists the sentinels from most to least specific; an error
// wrapping several maps to the first match.
var codeOrder = []struct {
	err  error
	code ErrorCode
}{
	{chesserrors.ErrUnknownHandle, CodeUnknownHandle},
	{chesserrors.ErrIllegalKingRemoval, CodeIllegalKingRemoval},
	{chesserrors.ErrNoPieceAtSquare, CodeNoPieceAtSquare},
	{chesserrors.ErrIllegalMove, CodeIllegalMove},
	{chesserrors.ErrInvalidPiece, CodeInvalidPiece},
	{chesserrors.ErrInvalidFEN, CodeInvalidFEN},
	{chesserrors.ErrInvalidConfig, CodeInvalidConfig},
	{chesserrors.ErrInvalidPosition, CodeInvalidPosition},
}

// CodeOf classifies err by the sentinel it wraps.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	for _, c := range codeOrder {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeOther
}

// LastErrorCode returns CodeOf(LastError()).
func (a *Adapter) LastErrorCode() ErrorCode {
	return CodeOf(a.LastError())
}
