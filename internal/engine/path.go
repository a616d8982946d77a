package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// isPathClear reports whether every square strictly between from and to is empty.
// from and to must share a rank, a file or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)

	if df != 0 && dr != 0 && abs(to.File-from.File) != abs(to.Rank-from.Rank) {
		return false
	}

	for pos := from.Offset(df, dr); pos != to; pos = pos.Offset(df, dr) {
		if !pos.IsValid() {
			return false
		}
		if !board.Get(pos).IsEmpty() {
			return false
		}
	}
	return true
}
