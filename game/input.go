package game

import "math"

// MinSwipeDistance is the displacement a swipe must exceed on its dominant axis.
const MinSwipeDistance = 30.0

var keyDirections = map[string]Direction{
	"ArrowUp":    Up,
	"ArrowDown":  Down,
	"ArrowLeft":  Left,
	"ArrowRight": Right,
	"w":          Up,
	"s":          Down,
	"a":          Left,
	"d":          Right,
}

// DirectionFromKey maps a keyboard key name to a heading.
func DirectionFromKey(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// DirectionFromSwipe maps a touch displacement to a heading. The axis with the
// larger absolute delta wins; ties go to the vertical axis. Swipes not longer
// than MinSwipeDistance on that axis are ignored.
func DirectionFromSwipe(dx, dy float64) (Direction, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		if math.Abs(dx) <= MinSwipeDistance {
			return 0, false
		}
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}

	if math.Abs(dy) <= MinSwipeDistance {
		return 0, false
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}
