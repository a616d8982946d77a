package engine

import (
	"context"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/hashing"
	"github.com/lgbarn/chess-core-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	return perft(board, depth, nil)
}

func perft(board *chess.Board, depth int, table *hashing.ThreadSafePerftTable) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var key uint64
	if table != nil {
		key = hashing.PerftKey(board, depth)
		if nodes, ok := table.Lookup(key); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		makeMove(child, m)
		nodes += perft(child, depth-1, table)
	}

	if table != nil {
		table.Store(key, nodes)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, in generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := LegalMoves(board)
	entries := make([]DivideEntry, len(moves))
	for i, m := range moves {
		child := board.Copy()
		makeMove(child, m)
		entries[i] = DivideEntry{Move: m, Nodes: Perft(child, depth-1)}
	}
	return entries
}

// ParallelOptions tunes ParallelDivide.
type ParallelOptions struct {
	// Workers is the number of goroutines; values below 1 mean 1.
	Workers int
	// TableSize caps the shared perft cache; 0 means unlimited and a
	// negative value disables the cache.
	TableSize int
}

// PerftStats describes a parallel divide run.
type PerftStats struct {
	Nodes        uint64
	Workers      int
	CacheEntries int
	CacheHits    uint64
	CacheFull    bool
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
// Each worker gets its own copy of the position, so no board is shared; the
// optional perft cache is.
func ParallelDivide(board *chess.Board, depth int, opts ParallelOptions) []DivideEntry {
	entries, _, _ := ParallelDivideContext(context.Background(), board, depth, opts)
	return entries
}

// ParallelDivideContext is ParallelDivide with cancellation and run
// statistics. When ctx is done the pool skips the root moves it has not
// started and ctx.Err() is returned with the subtrees that had finished.
func ParallelDivideContext(ctx context.Context, board *chess.Board, depth int, opts ParallelOptions) ([]DivideEntry, PerftStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, PerftStats{}, err
	}
	if depth < 1 {
		return nil, PerftStats{}, nil
	}

	var table *hashing.ThreadSafePerftTable
	if opts.TableSize >= 0 {
		table = hashing.NewThreadSafePerftTable(opts.TableSize)
	}

	moves := LegalMoves(board)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		child := board.Copy()
		makeMove(child, m)
		items[i] = worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i}
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: perft(item.Board, item.Depth, table),
		}
	}
	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(len(items)))

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()
	results := pool.RunAll(items)
	close(done)

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}

	stats := PerftStats{Nodes: TotalNodes(entries), Workers: pool.NumWorkers()}
	if table != nil {
		stats.CacheEntries = table.Len()
		stats.CacheHits = table.Hits()
		stats.CacheFull = table.IsFull()
	}
	if len(results) < len(items) {
		return entries, stats, ctx.Err()
	}
	return entries, stats, nil
}

// TotalNodes sums the counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
