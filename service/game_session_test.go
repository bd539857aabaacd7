package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, store *fakeStore, runs *fakeRunRepo) (*GameSession, *fakeLogger) {
	t.Helper()
	logger := &fakeLogger{}
	var scores i.HighScoreStore
	if store != nil {
		scores = store
	}
	keeper, err := NewHighScoreKeeper(scores, logger)
	require.NoError(t, err)

	c := &SessionConfig{Game: ambushGame(), TickRate: 100, Keeper: keeper, Logger: logger}
	if runs != nil {
		c.Runs = runs
	}
	s, err := NewGameSession(c)
	require.NoError(t, err)
	return s, logger
}

func TestNewGameSession(t *testing.T) {
	keeper, _ := NewHighScoreKeeper(nil, &fakeLogger{})

	tests := []struct {
		name   string
		config SessionConfig
		err    error
	}{
		{name: "Nil game", config: SessionConfig{Keeper: keeper, Logger: &fakeLogger{}}, err: ErrNilGame},
		{name: "Nil keeper", config: SessionConfig{Game: ambushGame(), Logger: &fakeLogger{}}, err: ErrNilKeeper},
		{name: "Nil logger", config: SessionConfig{Game: ambushGame(), Keeper: keeper}, err: ErrNilLogger},
		{name: "Negative tick rate", config: SessionConfig{Game: ambushGame(), Keeper: keeper, Logger: &fakeLogger{}, TickRate: -1}, err: ErrInvalidTickRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewGameSession(&tt.config)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, s)
		})
	}

	t.Run("Default tick rate", func(t *testing.T) {
		s, err := NewGameSession(&SessionConfig{Game: ambushGame(), Keeper: keeper, Logger: &fakeLogger{}})
		require.NoError(t, err)
		assert.Equal(t, time.Second/60, s.interval)
		assert.Equal(t, game.StatusIdle, s.Snapshot().Status)
	})
}

func TestGameSessionControls(t *testing.T) {
	t.Run("Start pause resume", func(t *testing.T) {
		s, _ := newTestSession(t, nil, nil)

		res := s.handleControl(controlStart)
		assert.True(t, res.changed)
		assert.Equal(t, res.runID.String(), s.Snapshot().RunID)
		assert.Equal(t, game.StatusPlaying, s.Snapshot().Status)

		assert.True(t, s.handleControl(controlPause).changed)
		assert.Equal(t, game.StatusPaused, s.Snapshot().Status)
		assert.False(t, s.handleControl(controlPause).changed)

		s.tick()
		assert.Zero(t, s.Snapshot().Elapsed)

		assert.True(t, s.handleControl(controlResume).changed)
		assert.Equal(t, game.StatusPlaying, s.Snapshot().Status)
	})

	t.Run("Game over persists the run", func(t *testing.T) {
		store := newFakeStore()
		runs := &fakeRunRepo{}
		s, _ := newTestSession(t, store, runs)
		frames, unsubscribe := s.Subscribe()
		defer unsubscribe()

		res := s.handleControl(controlStart)
		<-frames
		s.tick()

		frame := <-frames
		require.NotNil(t, frame.Snapshot)
		assert.Equal(t, game.StatusOver, frame.Snapshot.Status)
		require.Len(t, frame.Events, 1)
		assert.Equal(t, game.EventGameOver, frame.Events[0].Type)

		assert.Equal(t, 10, s.HighScore())
		assert.Equal(t, 10, frame.Snapshot.HighScore)
		assert.Equal(t, 10, store.scores[res.runID.String()])

		saved := runs.saved()
		require.Len(t, saved, 1)
		assert.Equal(t, res.runID.String(), saved[0].ID)
		assert.Equal(t, 10, saved[0].Score)
		assert.Equal(t, 0.01, saved[0].Duration)

		top, err := s.Runs(context.Background(), 5)
		require.NoError(t, err)
		assert.Len(t, top, 1)
	})

	t.Run("Runs without history", func(t *testing.T) {
		s, _ := newTestSession(t, nil, nil)
		_, err := s.Runs(context.Background(), 5)
		assert.ErrorIs(t, err, ErrNoRunHistory)
	})

	t.Run("Slow subscriber drops frames", func(t *testing.T) {
		s, _ := newTestSession(t, nil, nil)
		frames, unsubscribe := s.Subscribe()

		for n := 0; n < subscriberBuffer*3; n++ {
			s.publish(nil)
		}
		assert.Len(t, frames, subscriberBuffer)

		unsubscribe()
		unsubscribe()
		for range frames {
		}
	})

	t.Run("Direction intents beyond the buffer are dropped", func(t *testing.T) {
		s, logger := newTestSession(t, nil, nil)
		for n := 0; n < intentBuffer+2; n++ {
			s.SetDirection(game.Up)
		}
		assert.Equal(t, 2, logger.warningCount())
	})
}

func TestGameSessionLoop(t *testing.T) {
	s, _ := newTestSession(t, nil, &fakeRunRepo{})
	frames, unsubscribe := s.Subscribe()
	defer unsubscribe()

	go s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	id, err := s.StartRun(ctx)
	require.NoError(t, err)

	var over bool
	for !over {
		select {
		case f := <-frames:
			for _, e := range f.Events {
				if e.Type == game.EventGameOver {
					assert.Equal(t, id.String(), e.RunID)
					over = true
				}
			}
		case <-ctx.Done():
			t.Fatal("no game over frame")
		}
	}

	s.Stop()
	<-s.Done()

	_, err = s.StartRun(ctx)
	assert.ErrorIs(t, err, ErrSessionStopped)

	for range frames {
	}
	closed, _ := s.Subscribe()
	_, ok := <-closed
	assert.False(t, ok)
}
