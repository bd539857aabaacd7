/*
Package maze provides the static maze layouts the game is played on.

Layouts are stored as YAML documents whose rows draw the maze in ASCII. The
package parses them into a game.Layout, places the dots on every cell the
player can reach and renders a layout back to text for debugging.
*/
package maze

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-paradox/game"
	"gopkg.in/yaml.v3"
)

// Layout symbols.
const (
	wallSymbol   = '#'
	floorSymbol  = '.'
	startSymbol  = 'P'
	pelletSymbol = 'o'
)

var (
	ErrInvalidLayout = errors.New("invalid maze layout")

	//go:embed paradox.yaml
	paradoxYAML []byte
)

// document mirrors the YAML layout file.
type document struct {
	Name   string `yaml:"name"`
	Player struct {
		Heading string `yaml:"heading"`
	} `yaml:"player"`
	Wanderers []struct {
		Name    string    `yaml:"name"`
		Home    game.Cell `yaml:"home"`
		Heading string    `yaml:"heading"`
		Color   string    `yaml:"color"`
		Speed   float64   `yaml:"speed"`
	} `yaml:"wanderers"`
	Rows []string `yaml:"rows"`
}

// Paradox returns the stock 28x31 layout with its dots placed.
func Paradox() (game.Layout, error) {
	return Parse(paradoxYAML)
}

// Parse builds a layout from a YAML document and places its dots.
func Parse(b []byte) (game.Layout, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return game.Layout{}, fmt.Errorf("parsing maze layout: %w", err)
	}
	if len(doc.Rows) == 0 || len(doc.Rows[0]) == 0 {
		return game.Layout{}, ErrInvalidLayout
	}

	l := game.Layout{
		Width:         len(doc.Rows[0]),
		Height:        len(doc.Rows),
		PlayerHeading: game.Right,
	}
	if doc.Player.Heading != "" {
		d, ok := game.ParseDirection(doc.Player.Heading)
		if !ok {
			return game.Layout{}, fmt.Errorf("%w: unknown player heading %q", ErrInvalidLayout, doc.Player.Heading)
		}
		l.PlayerHeading = d
	}

	starts := 0
	for y, row := range doc.Rows {
		if len(row) != l.Width {
			return game.Layout{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, y, len(row), l.Width)
		}
		for x, r := range row {
			c := game.Cell{X: x, Y: y}
			switch r {
			case wallSymbol:
				l.Walls = append(l.Walls, c)
			case startSymbol:
				l.PlayerStart = c
				starts++
			case pelletSymbol:
				l.PowerPellets = append(l.PowerPellets, c)
			case floorSymbol:
			default:
				return game.Layout{}, fmt.Errorf("%w: unknown symbol %q at %d,%d", ErrInvalidLayout, r, x, y)
			}
		}
	}
	if starts != 1 {
		return game.Layout{}, fmt.Errorf("%w: want exactly one player start, got %d", ErrInvalidLayout, starts)
	}

	for _, w := range doc.Wanderers {
		d, ok := game.ParseDirection(w.Heading)
		if !ok {
			return game.Layout{}, fmt.Errorf("%w: unknown heading %q for %s", ErrInvalidLayout, w.Heading, w.Name)
		}
		l.Wanderers = append(l.Wanderers, game.WandererSpec{
			Name:    w.Name,
			Home:    w.Home,
			Heading: d,
			Color:   w.Color,
			Speed:   w.Speed,
		})
	}

	if err := PopulateDots(&l); err != nil {
		return game.Layout{}, err
	}
	return l, nil
}
