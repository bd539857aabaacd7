package game

import "math/rand"

// boxLayout returns a width x height layout walled on every edge with the
// player at (1,1) facing right and a dot on every other open cell.
func boxLayout(width, height int) Layout {
	l := Layout{
		Width:         width,
		Height:        height,
		PlayerStart:   Cell{X: 1, Y: 1},
		PlayerHeading: Right,
	}
	for x := 0; x < width; x++ {
		l.Walls = append(l.Walls, Cell{X: x, Y: 0}, Cell{X: x, Y: height - 1})
	}
	for y := 1; y < height-1; y++ {
		l.Walls = append(l.Walls, Cell{X: 0, Y: y}, Cell{X: width - 1, Y: y})
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if c := (Cell{X: x, Y: y}); c != l.PlayerStart {
				l.Dots = append(l.Dots, c)
			}
		}
	}
	return l
}

// fastTuning moves the player and clones one cell per tick.
func fastTuning() Tuning {
	t := DefaultTuning()
	t.PlayerSpeed = 1
	t.CloneSpeed = 1
	return t
}

func newTestGame(l Layout, t Tuning) *Game {
	g, err := New(l, t, rand.New(rand.NewSource(7)))
	if err != nil {
		panic(err)
	}
	return g
}

func stepN(g *Game, n int, dt float64) []Event {
	var events []Event
	for i := 0; i < n; i++ {
		events = append(events, g.Step(dt)...)
	}
	return events
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
