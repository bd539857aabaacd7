package game

import "errors"

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Score awards.
const (
	PointsDot         = 10
	PointsPower       = 50
	PointsWanderer    = 200
	PointsClone       = 300
	PointsBoardClear  = 1000
	vulnerableColor   = "#0000ff"
	cloneColor        = "#ff00ff"
	playerColor       = "#ffff00"
	spawnFlashColor   = "#ff00ff"
	powerFlashColor   = "#ffff00"
	spawnFlashMillis  = 200
	powerFlashMillis  = 300
	defaultPlayerSpd  = 0.15
	defaultCloneSpeed = 0.15
)

// Tuning holds the constants a run is played with. Times are in simulated seconds.
type Tuning struct {
	RecordingWindow float64 // How long the player's movement is recorded.
	PowerDuration   float64 // Length of Power-Mode.
	SpawnBaseGap    float64 // First gap between clone spawns.
	SpawnMinGap     float64 // Floor for the gap between clone spawns.
	SpawnGapDecay   float64 // How much each gap shrinks relative to the previous one.
	PlayerSpeed     float64 // Cells per tick fraction for the player.
	CloneSpeed      float64 // Cells per tick fraction for clones.
}

// DefaultTuning returns the stock arcade tuning.
func DefaultTuning() Tuning {
	return Tuning{
		RecordingWindow: 25,
		PowerDuration:   10,
		SpawnBaseGap:    30,
		SpawnMinGap:     15,
		SpawnGapDecay:   2,
		PlayerSpeed:     defaultPlayerSpd,
		CloneSpeed:      defaultCloneSpeed,
	}
}

// Validate checks that every value is usable.
func (t Tuning) Validate() error {
	if t.RecordingWindow < 0 || t.PowerDuration <= 0 {
		return ErrInvalidTuning
	}
	if t.SpawnMinGap <= 0 || t.SpawnBaseGap < t.SpawnMinGap || t.SpawnGapDecay < 0 {
		return ErrInvalidTuning
	}
	if !validSpeed(t.PlayerSpeed) || !validSpeed(t.CloneSpeed) {
		return ErrInvalidTuning
	}
	return nil
}

func validSpeed(s float64) bool {
	return s > 0 && s <= 1
}
