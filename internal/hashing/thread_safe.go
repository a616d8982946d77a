package hashing

import "sync"

// ThreadSafePerftTable caches perft node counts keyed by PerftKey.
// It is shared by the perft workers and guarded by a RWMutex.
type ThreadSafePerftTable struct {
	entries     map[uint64]uint64
	maxCapacity int
	hits        uint64
	mu          sync.RWMutex
}

// NewThreadSafePerftTable creates a new table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &ThreadSafePerftTable{
		entries:     make(map[uint64]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached count for key.
func (t *ThreadSafePerftTable) Lookup(key uint64) (uint64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		t.mu.Lock()
		t.hits++
		t.mu.Unlock()
	}
	return nodes, ok
}

// Store records a count. Once the table is full new keys are dropped;
// existing keys are still updated.
func (t *ThreadSafePerftTable) Store(key, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok && t.isFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of cached entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFull()
}

func (t *ThreadSafePerftTable) isFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
