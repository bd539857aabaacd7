package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-paradox/domain"
	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/google/uuid"
)

const (
	defaultTickRate  = 60
	intentBuffer     = 16
	subscriberBuffer = 8
	persistTimeout   = 2 * time.Second
)

// Session errors.
var (
	ErrNilGame         = errors.New("game is nil")
	ErrNilKeeper       = errors.New("high score keeper is nil")
	ErrInvalidTickRate = errors.New("tick rate must be positive")
	ErrSessionStopped  = errors.New("session is stopped")
	ErrNoRunHistory    = errors.New("run history is not configured")
)

type controlKind int

const (
	controlStart controlKind = iota
	controlPause
	controlResume
)

type control struct {
	kind  controlKind
	reply chan controlResult
}

type controlResult struct {
	runID   uuid.UUID
	changed bool
}

// GameSession owns a game and runs the only goroutine that touches it. Clients
// talk to it through channels and read the snapshot published after each tick.
type GameSession struct {
	game     *game.Game
	interval time.Duration
	dt       float64
	keeper   *HighScoreKeeper
	runs     i.RunRepo
	logger   i.Logger

	intents  chan game.Direction
	controls chan control
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	snapMu    sync.RWMutex
	snapshot  game.Snapshot
	highScore int

	subMu       sync.Mutex
	subscribers map[uuid.UUID]chan game.Frame
}

// SessionConfig holds what a GameSession is built from.
type SessionConfig struct {
	Game     *game.Game
	TickRate int // Ticks per second; 0 means 60.
	Keeper   *HighScoreKeeper
	Runs     i.RunRepo // Optional run history.
	Logger   i.Logger
}

// NewGameSession creates a session for c.Game. Call Start to run it.
func NewGameSession(c *SessionConfig) (*GameSession, error) {
	if c.Game == nil {
		return nil, ErrNilGame
	}
	if c.Keeper == nil {
		return nil, ErrNilKeeper
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	rate := c.TickRate
	if rate == 0 {
		rate = defaultTickRate
	}
	if rate < 0 {
		return nil, ErrInvalidTickRate
	}

	s := &GameSession{
		game:        c.Game,
		interval:    time.Second / time.Duration(rate),
		dt:          1 / float64(rate),
		keeper:      c.Keeper,
		runs:        c.Runs,
		logger:      c.Logger,
		intents:     make(chan game.Direction, intentBuffer),
		controls:    make(chan control),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		subscribers: make(map[uuid.UUID]chan game.Frame),
	}
	s.snapshot = s.game.Snapshot()
	return s, nil
}

// Start loads the high score and runs the tick loop until Stop is called.
func (s *GameSession) Start() {
	defer s.shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	s.setHighScore(s.keeper.Load(ctx))
	cancel()
	s.publish(nil)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case d := <-s.intents:
			s.game.SetDirection(d)
		case c := <-s.controls:
			c.reply <- s.handleControl(c.kind)
		case <-ticker.C:
			s.tick()
		}
	}
}

// Stop ends the tick loop. Subscriptions are closed once the loop exits.
func (s *GameSession) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Done is closed once the loop has exited.
func (s *GameSession) Done() <-chan struct{} { return s.done }

// StartRun implements i.GameSession.
func (s *GameSession) StartRun(ctx context.Context) (uuid.UUID, error) {
	res, err := s.send(ctx, controlStart)
	return res.runID, err
}

// Pause implements i.GameSession.
func (s *GameSession) Pause(ctx context.Context) (bool, error) {
	res, err := s.send(ctx, controlPause)
	return res.changed, err
}

// Resume implements i.GameSession.
func (s *GameSession) Resume(ctx context.Context) (bool, error) {
	res, err := s.send(ctx, controlResume)
	return res.changed, err
}

// SetDirection implements i.GameSession. Intents beyond the buffer are dropped.
func (s *GameSession) SetDirection(d game.Direction) {
	select {
	case s.intents <- d:
	default:
		s.logger.Warning(fmt.Sprintf("dropped direction intent: %s", d))
	}
}

// Snapshot implements i.GameSession.
func (s *GameSession) Snapshot() game.Snapshot {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

// HighScore implements i.GameSession.
func (s *GameSession) HighScore() int {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.highScore
}

// Runs implements i.GameSession.
func (s *GameSession) Runs(ctx context.Context, limit int64) ([]*dmn.Run, error) {
	if s.runs == nil {
		return nil, ErrNoRunHistory
	}
	return s.runs.Top(ctx, limit)
}

// Subscribe implements i.GameSession. A subscriber that falls behind misses frames.
func (s *GameSession) Subscribe() (<-chan game.Frame, func()) {
	id := uuid.New()
	ch := make(chan game.Frame, subscriberBuffer)

	s.subMu.Lock()
	select {
	case <-s.done:
		close(ch)
	default:
		s.subscribers[id] = ch
	}
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			if c, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(c)
			}
		})
	}
}

func (s *GameSession) send(ctx context.Context, kind controlKind) (controlResult, error) {
	c := control{kind: kind, reply: make(chan controlResult, 1)}
	select {
	case s.controls <- c:
	case <-s.done:
		return controlResult{}, ErrSessionStopped
	case <-ctx.Done():
		return controlResult{}, ctx.Err()
	}

	select {
	case res := <-c.reply:
		return res, nil
	case <-s.done:
		return controlResult{}, ErrSessionStopped
	case <-ctx.Done():
		return controlResult{}, ctx.Err()
	}
}

func (s *GameSession) handleControl(kind controlKind) controlResult {
	var res controlResult
	switch kind {
	case controlStart:
		prev := s.game.Run()
		res.runID = s.game.StartRun()
		res.changed = true
		if prev.Status == game.StatusPlaying || prev.Status == game.StatusPaused {
			s.logger.Info(fmt.Sprintf("abandoned run %s at score %d", prev.ID, prev.Score))
		}
		s.logger.Info(fmt.Sprintf("started run %s", res.runID))
	case controlPause:
		res.changed = s.game.Pause()
	case controlResume:
		res.changed = s.game.Resume()
	}
	s.publish(nil)
	return res
}

func (s *GameSession) tick() {
	if s.game.Run().Status != game.StatusPlaying {
		return
	}

	events := s.game.Step(s.dt)
	for _, e := range events {
		if e.Type == game.EventGameOver {
			s.finishRun(s.game.Run())
		}
	}
	s.publish(events)
}

// finishRun persists a run that just ended.
func (s *GameSession) finishRun(run game.RunState) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if s.keeper.SaveRun(ctx, run.ID, run.Score) {
		s.logger.Info(fmt.Sprintf("new high score %d by run %s", run.Score, run.ID))
	}
	s.setHighScore(max(s.HighScore(), run.Score))

	s.logger.Info(fmt.Sprintf("run %s over: score %d, %d clones", run.ID, run.Score, run.SpawnCount))
	if s.runs == nil {
		return
	}

	record := &dmn.Run{
		ID:            run.ID.String(),
		Score:         run.Score,
		Duration:      run.Elapsed,
		ClonesSpawned: run.SpawnCount,
		EndedAt:       time.Now().UTC(),
	}
	if err := s.runs.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("saving run %s: %s", run.ID, err))
	}
}

func (s *GameSession) setHighScore(v int) {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()
	s.highScore = v
}

// publish stores the current snapshot and fans it out with events.
func (s *GameSession) publish(events []game.Event) {
	snap := s.game.Snapshot()

	s.snapMu.Lock()
	snap.HighScore = max(s.highScore, snap.Score)
	s.snapshot = snap
	s.snapMu.Unlock()

	frame := game.Frame{Snapshot: &snap, Events: events}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- frame:
		default:
		}
	}
}

func (s *GameSession) shutdown() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	close(s.done)
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}

	if run := s.game.Run(); run.Status == game.StatusPlaying || run.Status == game.StatusPaused {
		s.game.EndRun()
		s.logger.Info(fmt.Sprintf("session stopped during run %s", run.ID))
	}
}
