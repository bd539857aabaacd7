package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionFromKey(t *testing.T) {
	for key, want := range map[string]Direction{
		"ArrowUp": Up, "ArrowDown": Down, "ArrowLeft": Left, "ArrowRight": Right,
		"w": Up, "s": Down, "a": Left, "d": Right,
	} {
		d, ok := DirectionFromKey(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, d, key)
	}

	_, ok := DirectionFromKey("Enter")
	assert.False(t, ok)
}

func TestDirectionFromSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
		ok     bool
	}{
		{name: "Right", dx: 40, dy: 5, want: Right, ok: true},
		{name: "Left", dx: -31, dy: 0, want: Left, ok: true},
		{name: "Down", dx: 3, dy: 50, want: Down, ok: true},
		{name: "Up", dx: 0, dy: -80, want: Up, ok: true},
		{name: "Tie goes vertical", dx: 40, dy: -40, want: Up, ok: true},
		{name: "Too short", dx: 30, dy: 2},
		{name: "No movement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DirectionFromSwipe(tt.dx, tt.dy)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, d)
			}
		})
	}
}
