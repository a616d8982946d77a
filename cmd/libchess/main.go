// Command libchess builds the rules engine as a C shared library:
//
//	go build -buildmode=c-shared -o libchess.so ./cmd/libchess
//
// chess.h declares the exported symbols.
package main

/*
#include <stdlib.h>
#include "chess_types.h"
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/lgbarn/chess-core-go/internal/ffi"
)

const squares = 64

var (
	mu sync.Mutex

	// pieceSlots holds the C memory board_get_piece_at points into, one
	// slot per square of each board.
	pieceSlots = make(map[ffi.Chessboard]*C.Piece)

	// buffers maps each live move buffer to its ffi buffer ID.
	buffers = make(map[uintptr]uint64)
)

func main() {}

func handle(board *C.Chessboard) ffi.Chessboard {
	if board == nil {
		return 0
	}
	return ffi.Chessboard(board.handle)
}

func goPosition(pos C.Position) ffi.Position {
	return ffi.Position{X: int(pos.x), Y: int(pos.y)}
}

func cPosition(pos ffi.Position) C.Position {
	return C.Position{x: C.intptr_t(pos.X), y: C.intptr_t(pos.Y)}
}

func cPiece(p ffi.Piece) C.Piece {
	return C.Piece{ty: C.PieceType(p.Ty), color: C.Color(p.Color)}
}

//export board_new
func board_new() C.Chessboard {
	return C.Chessboard{handle: C.uint64_t(ffi.BoardNew())}
}

//export board_new_from_fen
func board_new_from_fen(fen *C.char) C.Chessboard {
	var text string
	if fen != nil {
		text = C.GoString(fen)
	}
	h, err := ffi.BoardNewFromFEN(text)
	if err != nil {
		return C.Chessboard{}
	}
	return C.Chessboard{handle: C.uint64_t(h)}
}

//export board_free
func board_free(board *C.Chessboard) {
	h := handle(board)
	mu.Lock()
	if slots, ok := pieceSlots[h]; ok {
		C.free(unsafe.Pointer(slots))
		delete(pieceSlots, h)
	}
	mu.Unlock()
	ffi.BoardFree(h)
}

//export board_get_piece_at
func board_get_piece_at(board *C.Chessboard, pos C.Position) *C.Piece {
	h := handle(board)
	p := ffi.BoardGetPieceAt(h, goPosition(pos))
	if p == nil {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	slots, ok := pieceSlots[h]
	if !ok {
		slots = (*C.Piece)(C.malloc(C.size_t(squares) * C.size_t(unsafe.Sizeof(C.Piece{}))))
		pieceSlots[h] = slots
	}
	slot := &unsafe.Slice(slots, squares)[int(pos.y)*8+int(pos.x)]
	*slot = cPiece(*p)
	return slot
}

//export board_set_piece_at
func board_set_piece_at(board *C.Chessboard, pos C.Position, piece C.Piece) {
	ffi.BoardSetPieceAt(handle(board), goPosition(pos), ffi.Piece{ //nolint:errcheck // reported through LastError
		Ty:    ffi.PieceType(piece.ty),
		Color: ffi.Color(piece.color),
	})
}

//export board_destroy_piece_at
func board_destroy_piece_at(board *C.Chessboard, pos C.Position) {
	ffi.BoardDestroyPieceAt(handle(board), goPosition(pos)) //nolint:errcheck // reported through LastError
}

//export board_get_possible_moves
func board_get_possible_moves(board *C.Chessboard, pos C.Position) C.PossibleMoves {
	pm, err := ffi.BoardGetPossibleMoves(handle(board), goPosition(pos))
	if err != nil {
		return C.PossibleMoves{}
	}
	if len(pm.Moves) == 0 {
		ffi.MovesDestroy(pm)
		return C.PossibleMoves{}
	}

	n := len(pm.Moves)
	ptr := (*C.Move)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.Move{}))))
	for i, m := range pm.Moves {
		out := &unsafe.Slice(ptr, n)[i]
		out.from = cPosition(m.From)
		out.to = cPosition(m.To)
		out.piece = cPiece(m.Piece)
		out.captured = cPiece(m.Captured)
		out.has_capture = C.bool(m.HasCapture)
		out.kind = C.MoveKind(m.Kind)
		out.promotion = C.PieceType(m.Promotion)
	}

	mu.Lock()
	buffers[uintptr(unsafe.Pointer(ptr))] = pm.ID
	mu.Unlock()
	return C.PossibleMoves{ptr: ptr, len: C.size_t(n)}
}

//export moves_destroy
func moves_destroy(moves C.PossibleMoves) {
	if moves.ptr == nil {
		return
	}
	key := uintptr(unsafe.Pointer(moves.ptr))

	mu.Lock()
	id, ok := buffers[key]
	delete(buffers, key)
	mu.Unlock()
	if !ok {
		return
	}
	C.free(unsafe.Pointer(moves.ptr))
	ffi.MovesDestroy(ffi.PossibleMoves{ID: id})
}

//export board_apply_move
func board_apply_move(board *C.Chessboard, from, to C.Position, promotion C.PieceType) C.bool {
	err := ffi.BoardApplyMove(handle(board), goPosition(from), goPosition(to), ffi.PieceType(promotion))
	return C.bool(err == nil)
}

//export chess_load_config
func chess_load_config(path *C.char) C.bool {
	var name string
	if path != nil {
		name = C.GoString(path)
	}
	return C.bool(ffi.LoadConfig(name) == nil)
}

//export chess_last_error
func chess_last_error() C.ChessError {
	return C.ChessError(ffi.LastErrorCode())
}
