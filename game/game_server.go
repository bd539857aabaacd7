package game

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrNoDots        = errors.New("layout has no dots")
	ErrPickupInWall  = errors.New("pickup is inside a wall")
	ErrPursuerInWall = errors.New("pursuer home is inside a wall")
)

// Layout is the static description of a maze and what starts on it.
type Layout struct {
	Width         int
	Height        int
	Walls         []Cell
	PlayerStart   Cell
	PlayerHeading Direction
	Dots          []Cell
	PowerPellets  []Cell
	Wanderers     []WandererSpec
}

// Game runs the simulation of one maze across successive runs.
// It is not safe for concurrent use; one goroutine must own it.
type Game struct {
	layout  Layout
	tuning  Tuning
	grid    *Grid
	world   World
	player  *Player
	spawner *Spawner

	wanderers []*Wanderer
	clones    []*Clone
	dots      map[Cell]struct{}
	pellets   map[Cell]struct{}
	recorder  *Recorder
	power     *PowerMode

	run      RunState
	clock    simClock
	gapIndex int        // Index of the next spawn gap.
	pending  *Direction // Heading queued by input, applied at the start of the next tick.
}

// New creates a game for the layout. Returns an error if the layout or tuning
// violate their constraints. The random source drives wanderer choices.
func New(l Layout, t Tuning, rnd *rand.Rand) (*Game, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(l.Width, l.Height, l.Walls)
	if err != nil {
		return nil, err
	}
	if !grid.InBound(l.PlayerStart) || grid.IsWall(l.PlayerStart) {
		return nil, ErrStartInWall
	}
	if len(l.Dots) == 0 {
		return nil, ErrNoDots
	}
	for _, c := range append(slices.Clone(l.Dots), l.PowerPellets...) {
		if !grid.InBound(c) || grid.IsWall(c) {
			return nil, ErrPickupInWall
		}
	}
	for _, w := range l.Wanderers {
		if !grid.InBound(w.Home) || grid.IsWall(w.Home) {
			return nil, ErrPursuerInWall
		}
		if !validSpeed(w.Speed) {
			return nil, ErrInvalidTuning
		}
	}

	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}

	g := &Game{
		layout:   l,
		tuning:   t,
		grid:     grid,
		world:    World{Grid: grid, Rand: rnd},
		player:   NewPlayer(l.PlayerStart, l.PlayerHeading, t.PlayerSpeed),
		spawner:  NewSpawner(t),
		recorder: NewRecorder(t.RecordingWindow),
		power:    NewPowerMode(t.PowerDuration),
		run:      RunState{Status: StatusIdle},
	}
	for _, spec := range l.Wanderers {
		g.wanderers = append(g.wanderers, NewWanderer(spec))
	}
	g.populatePickups()
	return g, nil
}

// Grid returns the maze.
func (g *Game) Grid() *Grid { return g.grid }

// Run returns a copy of the current run state.
func (g *Game) Run() RunState { return g.run }

// Player returns the player agent.
func (g *Game) Player() *Player { return g.player }

// Clones returns the clones on the board.
func (g *Game) Clones() []*Clone { return slices.Clone(g.clones) }

// Wanderers returns the random-walk pursuers.
func (g *Game) Wanderers() []*Wanderer { return slices.Clone(g.wanderers) }

// Pursuers returns every pursuer, wanderers first.
func (g *Game) Pursuers() []Pursuer {
	out := make([]Pursuer, 0, len(g.wanderers)+len(g.clones))
	for _, w := range g.wanderers {
		out = append(out, w)
	}
	for _, c := range g.clones {
		out = append(out, c)
	}
	return out
}

// StartRun discards the current run, if any, and starts a fresh one.
func (g *Game) StartRun() uuid.UUID {
	if g.run.Status == StatusPlaying || g.run.Status == StatusPaused {
		g.EndRun()
	}

	g.run = RunState{
		ID:        uuid.New(),
		Status:    StatusPlaying,
		Recording: true,
	}
	g.clock = simClock{}
	g.gapIndex = 0
	g.pending = nil
	g.clones = nil
	g.recorder.Reset()
	g.power.Reset()
	g.player.respawn(g.layout.PlayerStart, g.layout.PlayerHeading)
	for _, w := range g.wanderers {
		w.respawn()
	}
	g.populatePickups()
	g.recorder.Record(g.player.Position(), g.player.Heading(), 0)
	return g.run.ID
}

// EndRun stops the current run and voids its scheduled spawns.
func (g *Game) EndRun() {
	if g.run.Status == StatusIdle || g.run.Status == StatusOver {
		return
	}
	g.run.Status = StatusOver
	g.spawner.Cancel(g.run.ID)
}

// Pause suspends a playing run. No simulated time passes while paused.
func (g *Game) Pause() bool {
	if g.run.Status != StatusPlaying {
		return false
	}
	g.run.Status = StatusPaused
	return true
}

// Resume continues a paused run.
func (g *Game) Resume() bool {
	if g.run.Status != StatusPaused {
		return false
	}
	g.run.Status = StatusPlaying
	return true
}

// SetDirection queues the player's desired heading for the next tick.
func (g *Game) SetDirection(d Direction) {
	g.pending = &d
}

// Step advances a playing run by one tick of dt simulated seconds and returns
// the events the tick produced.
func (g *Game) Step(dt float64) []Event {
	if g.run.Status != StatusPlaying {
		return nil
	}

	var events []Event
	g.run.Elapsed = g.clock.advance(dt)

	if g.pending != nil {
		g.player.SetDirection(*g.pending)
		g.pending = nil
	}

	g.player.Advance(&g.world)
	for _, w := range g.wanderers {
		w.Advance(&g.world)
	}
	for _, c := range g.clones {
		c.Advance(&g.world)
	}

	events = g.updateRecording(events)
	events = g.fireScheduledSpawns(events)
	events = g.collectPickups(events)

	events, over := g.resolveCollisions(events)
	if over {
		return events
	}

	if len(g.dots) == 0 {
		g.run.Score += PointsBoardClear
		g.populateDots()
		events = append(events, g.event(EventBoardCleared))
	}

	if g.power.Decay(dt, g.Pursuers()) {
		events = append(events, g.event(EventPowerEnded))
	}
	return events
}

// updateRecording records the player's cell while the window is open and
// spawns the first clone when it closes.
func (g *Game) updateRecording(events []Event) []Event {
	if !g.recorder.Active() {
		return events
	}

	g.recorder.Record(g.player.Position(), g.player.Heading(), g.run.Elapsed)
	if !g.recorder.Elapsed(g.run.Elapsed) {
		return events
	}

	g.recorder.Freeze()
	g.run.Recording = false
	events = g.spawnClone(events)
	g.scheduleNext()
	return events
}

func (g *Game) fireScheduledSpawns(events []Event) []Event {
	for n := g.spawner.Due(g.run.ID, g.run.Elapsed); n > 0; n-- {
		events = g.spawnClone(events)
		g.scheduleNext()
	}
	return events
}

func (g *Game) scheduleNext() {
	g.spawner.Schedule(g.run.ID, g.run.Elapsed+g.spawner.Gap(g.gapIndex))
	g.gapIndex++
}

func (g *Game) spawnClone(events []Event) []Event {
	c := NewClone(uuid.NewString(), g.layout.PlayerStart, g.layout.PlayerHeading, g.tuning.CloneSpeed, g.recorder.Snapshot())
	g.clones = append(g.clones, c)
	g.run.SpawnCount++
	g.run.ActiveClones++

	spawned := g.event(EventCloneSpawned)
	spawned.CloneID = c.ID()
	flash := g.event(EventFlash)
	flash.Color, flash.Millis = spawnFlashColor, spawnFlashMillis
	return append(events, spawned, flash)
}

func (g *Game) collectPickups(events []Event) []Event {
	pos := g.player.Position()
	if _, ok := g.dots[pos]; ok {
		delete(g.dots, pos)
		g.run.Score += PointsDot
	}
	if _, ok := g.pellets[pos]; ok {
		delete(g.pellets, pos)
		g.run.Score += PointsPower
		g.power.Activate(g.Pursuers())

		flash := g.event(EventFlash)
		flash.Color, flash.Millis = powerFlashColor, powerFlashMillis
		events = append(events, g.event(EventPowerStarted), flash)
	}
	return events
}

// resolveCollisions handles every pursuer sharing the player's cell. It
// reports true when a collision ended the run.
func (g *Game) resolveCollisions(events []Event) ([]Event, bool) {
	pos := g.player.Position()

	for _, w := range g.wanderers {
		if w.Position() != pos {
			continue
		}
		if !g.collectible(w) {
			return append(events, g.gameOver()), true
		}
		g.run.Score += PointsWanderer
		w.respawn()
	}

	kept := g.clones[:0]
	for i, c := range g.clones {
		if c.Position() != pos {
			kept = append(kept, c)
			continue
		}
		if !g.collectible(c) {
			kept = append(kept, g.clones[i:]...)
			g.clones = kept
			return append(events, g.gameOver()), true
		}
		g.run.Score += PointsClone
		g.run.ActiveClones = max(0, g.run.ActiveClones-1)
	}
	g.clones = kept
	return events, false
}

func (g *Game) collectible(p Pursuer) bool {
	return g.power.Active() && p.Vulnerable()
}

func (g *Game) gameOver() Event {
	g.EndRun()
	return g.event(EventGameOver)
}

func (g *Game) event(t EventType) Event {
	return Event{
		Type:    t,
		RunID:   g.run.ID.String(),
		SimTime: g.run.Elapsed,
		Score:   g.run.Score,
	}
}

func (g *Game) populatePickups() {
	g.populateDots()
	g.pellets = make(map[Cell]struct{}, len(g.layout.PowerPellets))
	for _, c := range g.layout.PowerPellets {
		g.pellets[c] = struct{}{}
	}
}

func (g *Game) populateDots() {
	g.dots = make(map[Cell]struct{}, len(g.layout.Dots))
	for _, c := range g.layout.Dots {
		g.dots[c] = struct{}{}
	}
}

// DotsLeft returns the number of dots still on the board.
func (g *Game) DotsLeft() int { return len(g.dots) }

// Snapshot returns the read-only render state of the current tick.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Status:         g.run.Status,
		Score:          g.run.Score,
		Elapsed:        g.run.Elapsed,
		Recording:      g.run.Recording,
		PowerActive:    g.power.Active(),
		PowerRemaining: g.power.Remaining(),
		ActiveClones:   g.run.ActiveClones,
		SpawnCount:     g.run.SpawnCount,
		Width:          g.grid.Width(),
		Height:         g.grid.Height(),
		Player:         viewOf(g.player, "player", "player", playerColor, false),
		Dots:           sortedCells(g.dots),
		PowerPellets:   sortedCells(g.pellets),
	}
	if g.run.ID != uuid.Nil {
		s.RunID = g.run.ID.String()
	}
	s.Label = statusLabel(s.PowerActive, s.PowerRemaining, s.Recording, g.recorder.Remaining(g.run.Elapsed), s.ActiveClones)

	for _, p := range g.Pursuers() {
		s.Pursuers = append(s.Pursuers, viewOf(p, p.ID(), string(p.Kind()), p.Color(), p.Vulnerable()))
	}
	return s
}

func sortedCells(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}
