package game

// Player is the agent steered by input.
type Player struct {
	motion
	desired Direction
}

// NewPlayer creates a player at start facing heading.
func NewPlayer(start Cell, heading Direction, speed float64) *Player {
	return &Player{
		motion:  newMotion(start, heading, speed),
		desired: heading,
	}
}

// SetDirection queues the heading to take at the next commit where it is open.
func (p *Player) SetDirection(d Direction) {
	p.desired = d
}

// Desired returns the queued heading.
func (p *Player) Desired() Direction { return p.desired }

// Advance turns toward the desired heading when possible and then moves.
// A blocked desired heading stays queued and is retried next commit.
func (p *Player) Advance(w *World) bool {
	if !p.tick() {
		return false
	}
	if _, ok := w.Grid.Target(p.pos, p.desired); ok {
		p.heading = p.desired
	}
	p.step(w.Grid, p.heading)
	return true
}

func (p *Player) respawn(start Cell, heading Direction) {
	p.reset(start, heading)
	p.desired = heading
}
