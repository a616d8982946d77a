package ffi

// defaultAdapter backs the package-level functions used by the C exports.
var defaultAdapter = NewAdapter(nil)

func BoardNew() Chessboard {
	return defaultAdapter.BoardNew()
}

func BoardNewFromFEN(fen string) (Chessboard, error) {
	return defaultAdapter.BoardNewFromFEN(fen)
}

func BoardFree(h Chessboard) {
	defaultAdapter.BoardFree(h)
}

func BoardGetPieceAt(h Chessboard, pos Position) *Piece {
	return defaultAdapter.BoardGetPieceAt(h, pos)
}

func BoardSetPieceAt(h Chessboard, pos Position, piece Piece) error {
	return defaultAdapter.BoardSetPieceAt(h, pos, piece)
}

func BoardDestroyPieceAt(h Chessboard, pos Position) error {
	return defaultAdapter.BoardDestroyPieceAt(h, pos)
}

func BoardGetPossibleMoves(h Chessboard, pos Position) (PossibleMoves, error) {
	return defaultAdapter.BoardGetPossibleMoves(h, pos)
}

func MovesDestroy(pm PossibleMoves) {
	defaultAdapter.MovesDestroy(pm)
}

func BoardApplyMove(h Chessboard, from, to Position, promotion PieceType) error {
	return defaultAdapter.BoardApplyMove(h, from, to, promotion)
}

func BoardFEN(h Chessboard) (string, error) {
	return defaultAdapter.BoardFEN(h)
}

func LastError() error {
	return defaultAdapter.LastError()
}

func LastErrorCode() ErrorCode {
	return defaultAdapter.LastErrorCode()
}

func LoadConfig(path string) error {
	return defaultAdapter.LoadConfig(path)
}

func Outstanding() int {
	return defaultAdapter.Outstanding()
}
