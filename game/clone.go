package game

// Clone replays a snapshot of the player's movement history, looping forever.
type Clone struct {
	motion
	id         string
	history    []Sample
	cursor     int
	vulnerable bool
}

// NewClone creates a clone at spawn. The history is copied so the caller may
// keep mutating its own buffer.
func NewClone(id string, spawn Cell, heading Direction, speed float64, history []Sample) *Clone {
	buf := make([]Sample, len(history))
	copy(buf, history)
	return &Clone{
		motion:  newMotion(spawn, heading, speed),
		id:      id,
		history: buf,
	}
}

// ID implements Pursuer.
func (c *Clone) ID() string { return c.id }

// Kind implements Pursuer.
func (c *Clone) Kind() PursuerKind { return KindClone }

// Vulnerable implements Pursuer.
func (c *Clone) Vulnerable() bool { return c.vulnerable }

// SetVulnerable implements Pursuer.
func (c *Clone) SetVulnerable(v bool) { c.vulnerable = v }

// Color implements Pursuer.
func (c *Clone) Color() string {
	if c.vulnerable {
		return vulnerableColor
	}
	return cloneColor
}

// Cursor returns the index of the next sample to replay.
func (c *Clone) Cursor() int { return c.cursor }

// HistoryLen returns the length of the replay buffer.
func (c *Clone) HistoryLen() int { return len(c.history) }

// Advance teleports the clone to the next recorded sample on a commit tick.
// An empty history holds the clone at its spawn cell.
func (c *Clone) Advance(_ *World) bool {
	if !c.tick() {
		return false
	}
	if len(c.history) == 0 {
		return true
	}
	if c.cursor < 0 || c.cursor >= len(c.history) {
		c.cursor = 0
	}

	s := c.history[c.cursor]
	c.pos = s.Position
	c.heading = s.Heading
	c.cursor++
	if c.cursor == len(c.history) {
		c.cursor = 0
	}
	return true
}
