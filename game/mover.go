package game

import "math/rand"

// World is what a mover may look at while advancing.
type World struct {
	Grid *Grid
	Rand *rand.Rand
}

// Mover is the shared motion contract of the player and every pursuer.
type Mover interface {
	Position() Cell
	Heading() Direction
	// Advance runs one tick of the mover and reports whether it reached a commit tick.
	Advance(w *World) bool
}

// PursuerKind tells the pursuer variants apart.
type PursuerKind string

// Pursuer kinds.
const (
	KindWanderer PursuerKind = "wanderer"
	KindClone    PursuerKind = "clone"
)

// Pursuer is a mover that ends the run on contact unless it is vulnerable.
type Pursuer interface {
	Mover
	ID() string
	Kind() PursuerKind
	Vulnerable() bool
	SetVulnerable(bool)
	Color() string
}

// motion is the position, heading and speed accumulator every mover embeds.
type motion struct {
	pos     Cell
	heading Direction
	speed   float64
	acc     float64
}

func newMotion(pos Cell, heading Direction, speed float64) motion {
	return motion{pos: pos, heading: heading, speed: speed}
}

// Position returns the current cell.
func (m *motion) Position() Cell { return m.pos }

// Heading returns the current heading.
func (m *motion) Heading() Direction { return m.heading }

// Accumulator exposes the speed accumulator; it stays in [0,1) between ticks.
func (m *motion) Accumulator() float64 { return m.acc }

// tick adds speed to the accumulator and reports a commit when it reaches 1.
// The remainder is dropped on commit.
func (m *motion) tick() bool {
	m.acc += m.speed
	if m.acc >= 1 {
		m.acc = 0
		return true
	}
	return false
}

// step moves one cell along d if the target is open.
func (m *motion) step(g *Grid, d Direction) bool {
	next, ok := g.Target(m.pos, d)
	if !ok {
		return false
	}
	m.pos = next
	return true
}

// reset places the mover back at pos with an empty accumulator.
func (m *motion) reset(pos Cell, heading Direction) {
	m.pos = pos
	m.heading = heading
	m.acc = 0
}
