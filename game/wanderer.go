package game

// Wanderer is a random-walk pursuer. It keeps its heading while it can and
// otherwise picks uniformly among the open headings.
type Wanderer struct {
	motion
	id          string
	color       string
	home        Cell
	homeHeading Direction
	vulnerable  bool
}

// WandererSpec describes a wanderer in a layout.
type WandererSpec struct {
	Name    string
	Home    Cell
	Heading Direction
	Color   string
	Speed   float64
}

// NewWanderer creates a wanderer standing on its home cell.
func NewWanderer(s WandererSpec) *Wanderer {
	return &Wanderer{
		motion:      newMotion(s.Home, s.Heading, s.Speed),
		id:          s.Name,
		color:       s.Color,
		home:        s.Home,
		homeHeading: s.Heading,
	}
}

// ID returns the wanderer's name.
func (w *Wanderer) ID() string { return w.id }

// Kind implements Pursuer.
func (w *Wanderer) Kind() PursuerKind { return KindWanderer }

// Vulnerable implements Pursuer.
func (w *Wanderer) Vulnerable() bool { return w.vulnerable }

// SetVulnerable implements Pursuer.
func (w *Wanderer) SetVulnerable(v bool) { w.vulnerable = v }

// Color implements Pursuer.
func (w *Wanderer) Color() string {
	if w.vulnerable {
		return vulnerableColor
	}
	return w.color
}

// Advance implements Mover.
func (w *Wanderer) Advance(world *World) bool {
	if !w.tick() {
		return false
	}

	open := world.Grid.OpenDirections(w.pos)
	if len(open) == 0 {
		return true
	}
	for _, d := range open {
		if d == w.heading {
			w.step(world.Grid, d)
			return true
		}
	}

	w.heading = open[world.Rand.Intn(len(open))]
	w.step(world.Grid, w.heading)
	return true
}

// respawn sends the wanderer home and clears its vulnerability.
func (w *Wanderer) respawn() {
	w.reset(w.home, w.homeHeading)
	w.vulnerable = false
}
