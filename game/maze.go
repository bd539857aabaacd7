package game

import (
	"cmp"
	"errors"
)

// Maze-related errors.
var (
	ErrInvalidDimension = errors.New("maze dimension is not big enough")
	ErrStartInWall      = errors.New("start position is inside a wall")
	ErrOutOfMaze        = errors.New("position is out of the maze")
)

const minDimension = 3 // Minimum maze dimension (width or height).

// Direction is one of the four grid headings.
type Direction uint8

// Headings in the order pursuers evaluate them.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in evaluation order.
var Directions = [...]Direction{Up, Down, Left, Right}

var directionNames = [...]string{"up", "down", "left", "right"}

// String returns the lower-case name of the heading.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection converts a heading name back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// Delta returns the unit offset of the heading. Up decreases Y.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Add returns the cell offset by delta.
func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Grid is the static obstacle set shared by every mover.
type Grid struct {
	width  int
	height int
	walls  map[Cell]struct{}
}

// NewGrid builds a grid of the given size with the given walls.
// Walls outside the bounds are rejected.
func NewGrid(width, height int, walls []Cell) (*Grid, error) {
	if width < minDimension || height < minDimension {
		return nil, ErrInvalidDimension
	}

	g := &Grid{
		width:  width,
		height: height,
		walls:  make(map[Cell]struct{}, len(walls)),
	}
	for _, w := range walls {
		if !g.InBound(w) {
			return nil, ErrOutOfMaze
		}
		g.walls[w] = struct{}{}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBound reports whether the cell lies inside the grid.
func (g *Grid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsWall reports whether the cell is an obstacle.
func (g *Grid) IsWall(c Cell) bool {
	_, ok := g.walls[c]
	return ok
}

// Wrap folds a cell that left the grid back onto the opposite edge.
func (g *Grid) Wrap(c Cell) Cell {
	c.X = ((c.X % g.width) + g.width) % g.width
	c.Y = ((c.Y % g.height) + g.height) % g.height
	return c
}

// IsOpen reports whether a mover may occupy the cell. Cells past an edge are
// wrapped first, so edges without a wall behave as tunnels.
func (g *Grid) IsOpen(c Cell) bool {
	return !g.IsWall(g.Wrap(c))
}

// Target returns the wrapped cell one step from c along d and whether it is open.
func (g *Grid) Target(c Cell, d Direction) (Cell, bool) {
	next := g.Wrap(c.Add(d.Delta()))
	return next, !g.IsWall(next)
}

// OpenDirections returns, in evaluation order, every heading leading to an open cell.
func (g *Grid) OpenDirections(c Cell) []Direction {
	open := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if _, ok := g.Target(c, d); ok {
			open = append(open, d)
		}
	}
	return open
}

// compareCells orders cells row-major.
func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
