package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-paradox/domain"
	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/google/uuid"
)

// GameSession drives a game and exposes it to presentation clients.
type GameSession interface {
	// StartRun ends the current run, if any, and starts a new one.
	StartRun(ctx context.Context) (uuid.UUID, error)

	// Pause and Resume report whether the run changed state.
	Pause(ctx context.Context) (bool, error)
	Resume(ctx context.Context) (bool, error)

	// SetDirection queues the player's desired heading.
	SetDirection(game.Direction)

	// Snapshot returns the state published by the latest tick.
	Snapshot() game.Snapshot

	// HighScore returns the best score known to the session.
	HighScore() int

	// Runs returns up to limit finished runs, best first.
	Runs(ctx context.Context, limit int64) ([]*dmn.Run, error)

	// Subscribe returns a stream of per-tick frames and a func that ends it.
	Subscribe() (<-chan game.Frame, func())
}
