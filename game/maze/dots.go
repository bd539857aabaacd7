package maze

import (
	"github.com/beka-birhanu/vinom-paradox/game"
)

// PopulateDots places a dot on every open cell reachable from the player
// start, skipping the start itself and the power pellets. Open cells walled
// off from the start get no dot, so the board can always be cleared.
func PopulateDots(l *game.Layout) error {
	grid, err := game.NewGrid(l.Width, l.Height, l.Walls)
	if err != nil {
		return err
	}
	if !grid.InBound(l.PlayerStart) || grid.IsWall(l.PlayerStart) {
		return game.ErrStartInWall
	}

	skip := map[game.Cell]struct{}{l.PlayerStart: {}}
	for _, p := range l.PowerPellets {
		skip[p] = struct{}{}
	}

	visited := map[game.Cell]struct{}{l.PlayerStart: {}}
	stack := []game.Cell{l.PlayerStart}
	l.Dots = nil

	for len(stack) > 0 {
		cell := pop(&stack)
		if _, skipped := skip[cell]; !skipped {
			l.Dots = append(l.Dots, cell)
		}

		for _, d := range game.Directions {
			next, open := grid.Target(cell, d)
			if !open {
				continue
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	return nil
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]game.Cell) game.Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
