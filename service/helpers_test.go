package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	dmn "github.com/beka-birhanu/vinom-paradox/domain"
	"github.com/beka-birhanu/vinom-paradox/game"
)

var errStoreDown = errors.New("store down")

type fakeLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Info(m string)    { l.mu.Lock(); l.infos = append(l.infos, m); l.mu.Unlock() }
func (l *fakeLogger) Warning(m string) { l.mu.Lock(); l.warnings = append(l.warnings, m); l.mu.Unlock() }
func (l *fakeLogger) Error(m string)   { l.mu.Lock(); l.errors = append(l.errors, m); l.mu.Unlock() }

func (l *fakeLogger) warningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

type fakeStore struct {
	mu     sync.Mutex
	scores map[string]int
	err    error
}

func newFakeStore() *fakeStore { return &fakeStore{scores: make(map[string]int)} }

func (s *fakeStore) Best(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	best := 0
	for _, v := range s.scores {
		best = max(best, v)
	}
	return best, nil
}

func (s *fakeStore) Submit(ctx context.Context, member string, score int) (bool, error) {
	best, err := s.Best(ctx)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[member] = score
	return score > best, nil
}

type fakeRunRepo struct {
	mu   sync.Mutex
	runs []*dmn.Run
}

func (r *fakeRunRepo) Save(_ context.Context, run *dmn.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRunRepo) Top(_ context.Context, limit int64) ([]*dmn.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(r.runs)
	slices.SortFunc(out, func(a, b *dmn.Run) int { return b.Score - a.Score })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRunRepo) saved() []*dmn.Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.runs)
}

// ambushGame returns a game whose first tick walks the player into a wanderer.
func ambushGame() *game.Game {
	l := game.Layout{
		Width:         7,
		Height:        3,
		PlayerStart:   game.Cell{X: 1, Y: 1},
		PlayerHeading: game.Right,
		Wanderers: []game.WandererSpec{
			{Name: "blinky", Home: game.Cell{X: 3, Y: 1}, Heading: game.Left, Color: "#ff0000", Speed: 1},
		},
	}
	for x := 0; x < l.Width; x++ {
		l.Walls = append(l.Walls, game.Cell{X: x, Y: 0}, game.Cell{X: x, Y: 2})
	}
	l.Walls = append(l.Walls, game.Cell{X: 0, Y: 1}, game.Cell{X: 6, Y: 1})
	for x := 2; x < 6; x++ {
		l.Dots = append(l.Dots, game.Cell{X: x, Y: 1})
	}

	t := game.DefaultTuning()
	t.PlayerSpeed = 1
	g, err := game.New(l, t, nil)
	if err != nil {
		panic(err)
	}
	return g
}
