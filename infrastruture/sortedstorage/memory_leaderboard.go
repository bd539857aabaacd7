package sortedstorage

import (
	"context"
	"sync"
)

// MemoryLeaderboard keeps the best score for the life of the process.
type MemoryLeaderboard struct {
	best int
	sync.RWMutex
}

// NewMemoryLeaderboard creates an empty leaderboard.
func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{}
}

// Best returns the highest score, or 0 when nothing was submitted.
func (ml *MemoryLeaderboard) Best(context.Context) (int, error) {
	ml.RLock()
	defer ml.RUnlock()
	return ml.best, nil
}

// Submit records score and reports whether it is a new best.
func (ml *MemoryLeaderboard) Submit(_ context.Context, _ string, score int) (bool, error) {
	ml.Lock()
	defer ml.Unlock()

	if score > ml.best {
		ml.best = score
		return true, nil
	}
	return false, nil
}
