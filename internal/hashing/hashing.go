package hashing

import "github.com/lgbarn/chess-core-go/internal/chess"

// PositionCounter tracks how often each position has occurred in a game.
// It backs repetition reporting; nothing is enforced.
type PositionCounter struct {
	// counts maps Zobrist keys to occurrence counts
	counts map[uint64]int
	// history records keys in the order they were added, for Remove
	history []uint64
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records an occurrence of board and returns its count so far.
func (c *PositionCounter) Add(board *chess.Board) int {
	key := GenerateZobristHash(board)
	c.counts[key]++
	c.history = append(c.history, key)
	return c.counts[key]
}

// RemoveLast forgets the most recently added occurrence.
func (c *PositionCounter) RemoveLast() {
	if len(c.history) == 0 {
		return
	}
	key := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	if c.counts[key] <= 1 {
		delete(c.counts, key)
	} else {
		c.counts[key]--
	}
}

// Count returns how many times board has occurred.
func (c *PositionCounter) Count(board *chess.Board) int {
	return c.counts[GenerateZobristHash(board)]
}

// MaxCount returns the highest occurrence count of any position.
func (c *PositionCounter) MaxCount() int {
	max := 0
	for _, n := range c.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// UniqueCount returns the number of distinct positions seen.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}
