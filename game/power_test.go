package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerMode(t *testing.T) {
	pursuers := func() []Pursuer {
		return []Pursuer{
			NewWanderer(WandererSpec{Name: "w", Color: "#ff0000", Speed: 0.1}),
			NewClone("c", Cell{}, Right, 0.1, nil),
		}
	}

	t.Run("Activate makes every pursuer vulnerable", func(t *testing.T) {
		p := NewPowerMode(10)
		ps := pursuers()
		p.Activate(ps)

		assert.True(t, p.Active())
		assert.Equal(t, 10.0, p.Remaining())
		for _, ps := range ps {
			assert.True(t, ps.Vulnerable())
			assert.Equal(t, vulnerableColor, ps.Color())
		}
	})

	t.Run("Reactivation resets instead of stacking", func(t *testing.T) {
		p := NewPowerMode(10)
		ps := pursuers()
		p.Activate(ps)
		p.Decay(7, ps)
		assert.Equal(t, 3.0, p.Remaining())

		p.Activate(ps)
		assert.Equal(t, 10.0, p.Remaining())
	})

	t.Run("Expiry clears vulnerability", func(t *testing.T) {
		p := NewPowerMode(10)
		ps := pursuers()
		p.Activate(ps)

		assert.False(t, p.Decay(9.5, ps))
		assert.True(t, p.Decay(0.5, ps))
		assert.False(t, p.Active())
		for _, ps := range ps {
			assert.False(t, ps.Vulnerable())
		}
		assert.Equal(t, "#ff0000", ps[0].Color())
		assert.Equal(t, cloneColor, ps[1].Color())
	})

	t.Run("Decay while inactive does nothing", func(t *testing.T) {
		p := NewPowerMode(10)
		assert.False(t, p.Decay(1, pursuers()))
		assert.Equal(t, 0.0, p.Remaining())
	})
}
