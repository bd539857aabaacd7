package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplesAlongRow(n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Position: Cell{X: i + 1, Y: 1}, Heading: Right, SimTime: float64(i)}
	}
	return out
}

func TestClone(t *testing.T) {
	t.Run("Replays the buffer and loops", func(t *testing.T) {
		history := samplesAlongRow(3)
		c := NewClone("c", Cell{X: 1, Y: 1}, Right, 1, history)

		var got []Cell
		for i := 0; i < 2*len(history); i++ {
			c.Advance(nil)
			got = append(got, c.Position())
		}

		var want []Cell
		for i := 0; i < 2; i++ {
			for _, s := range history {
				want = append(want, s.Position)
			}
		}
		assert.Equal(t, want, got)
		assert.Equal(t, 0, c.Cursor())
	})

	t.Run("Heading follows the samples", func(t *testing.T) {
		c := NewClone("c", Cell{}, Right, 1, []Sample{{Position: Cell{X: 1, Y: 2}, Heading: Down}})
		c.Advance(nil)
		assert.Equal(t, Down, c.Heading())
	})

	t.Run("Only moves on commit ticks", func(t *testing.T) {
		c := NewClone("c", Cell{X: 5, Y: 5}, Right, 0.5, samplesAlongRow(2))
		c.Advance(nil)
		assert.Equal(t, Cell{X: 5, Y: 5}, c.Position())
		c.Advance(nil)
		assert.Equal(t, Cell{X: 1, Y: 1}, c.Position())
	})

	t.Run("Empty history holds spawn", func(t *testing.T) {
		c := NewClone("c", Cell{X: 1, Y: 1}, Right, 1, nil)
		for i := 0; i < 5; i++ {
			c.Advance(nil)
		}
		assert.Equal(t, Cell{X: 1, Y: 1}, c.Position())
		assert.Equal(t, 0, c.HistoryLen())
	})

	t.Run("Buffer is a private copy", func(t *testing.T) {
		history := samplesAlongRow(2)
		c := NewClone("c", Cell{}, Right, 1, history)
		history[0].Position = Cell{X: 20, Y: 20}

		c.Advance(nil)
		assert.Equal(t, Cell{X: 1, Y: 1}, c.Position())
	})

	t.Run("Corrupt cursor wraps to start", func(t *testing.T) {
		c := NewClone("c", Cell{}, Right, 1, samplesAlongRow(3))
		c.cursor = 42
		c.Advance(nil)
		assert.Equal(t, Cell{X: 1, Y: 1}, c.Position())

		c.cursor = -1
		c.Advance(nil)
		assert.Equal(t, Cell{X: 1, Y: 1}, c.Position())
	})

	t.Run("Color tracks vulnerability", func(t *testing.T) {
		c := NewClone("c", Cell{}, Right, 1, nil)
		assert.Equal(t, cloneColor, c.Color())
		c.SetVulnerable(true)
		assert.Equal(t, vulnerableColor, c.Color())
		assert.Equal(t, KindClone, c.Kind())
	})
}
