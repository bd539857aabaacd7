package i

import "context"

// HighScoreStore keeps submitted scores and answers with the best one.
type HighScoreStore interface {
	// Best returns the highest stored score, or 0 when nothing is stored.
	Best(ctx context.Context) (int, error)

	// Submit stores score under member and reports whether it beats every
	// score stored before it.
	Submit(ctx context.Context, member string, score int) (bool, error)
}
