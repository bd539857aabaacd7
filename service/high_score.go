package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/google/uuid"
)

// ErrNilLogger is returned when a service is created without a logger.
var ErrNilLogger = errors.New("logger is nil")

// HighScoreKeeper loads and saves the high score. When the store fails it
// falls back to the best score seen by this process.
type HighScoreKeeper struct {
	store  i.HighScoreStore
	logger i.Logger
	best   int
	sync.Mutex
}

// NewHighScoreKeeper creates a keeper over store. A nil store keeps scores in memory only.
func NewHighScoreKeeper(store i.HighScoreStore, logger i.Logger) (*HighScoreKeeper, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &HighScoreKeeper{store: store, logger: logger}, nil
}

// Load returns the high score, or 0 if none has been saved.
func (k *HighScoreKeeper) Load(ctx context.Context) int {
	k.Lock()
	defer k.Unlock()

	if k.store == nil {
		return k.best
	}

	best, err := k.store.Best(ctx)
	if err != nil {
		k.logger.Warning(fmt.Sprintf("loading high score: %s", err))
		return k.best
	}
	k.best = max(k.best, best)
	return k.best
}

// Save submits candidate and reports whether it beats the stored high score.
func (k *HighScoreKeeper) Save(ctx context.Context, candidate int) bool {
	return k.SaveRun(ctx, uuid.New(), candidate)
}

// SaveRun submits the score of a run and reports whether it is a new high score.
func (k *HighScoreKeeper) SaveRun(ctx context.Context, runID uuid.UUID, score int) bool {
	k.Lock()
	defer k.Unlock()

	beats := score > k.best
	if beats {
		k.best = score
	}

	if k.store == nil {
		return beats
	}

	ok, err := k.store.Submit(ctx, runID.String(), score)
	if err != nil {
		k.logger.Warning(fmt.Sprintf("saving high score: %s", err))
		return beats
	}
	return ok
}
