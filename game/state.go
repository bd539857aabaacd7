package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a run.
type Status string

// Run statuses.
const (
	StatusIdle    Status = "idle"
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
	StatusOver    Status = "over"
)

// RunState is the mutable bookkeeping of one run.
type RunState struct {
	ID           uuid.UUID
	Status       Status
	Score        int
	Elapsed      float64
	SpawnCount   int // Clones spawned so far; never decreases.
	ActiveClones int // Clones still on the board.
	Recording    bool
}

// EntityView is the read-only render data of one mover.
type EntityView struct {
	ID         string `json:"id" msgpack:"id"`
	Kind       string `json:"kind" msgpack:"kind"`
	Position   Cell   `json:"position" msgpack:"position"`
	Heading    string `json:"heading" msgpack:"heading"`
	Color      string `json:"color" msgpack:"color"`
	Vulnerable bool   `json:"vulnerable" msgpack:"vulnerable"`
}

// Snapshot is everything the presentation needs to draw one tick.
type Snapshot struct {
	RunID          string       `json:"runId" msgpack:"runId"`
	Status         Status       `json:"status" msgpack:"status"`
	Score          int          `json:"score" msgpack:"score"`
	HighScore      int          `json:"highScore" msgpack:"highScore"`
	Elapsed        float64      `json:"elapsed" msgpack:"elapsed"`
	Label          string       `json:"label" msgpack:"label"`
	Recording      bool         `json:"recording" msgpack:"recording"`
	PowerActive    bool         `json:"powerActive" msgpack:"powerActive"`
	PowerRemaining float64      `json:"powerRemaining" msgpack:"powerRemaining"`
	ActiveClones   int          `json:"activeClones" msgpack:"activeClones"`
	SpawnCount     int          `json:"spawnCount" msgpack:"spawnCount"`
	Width          int          `json:"width" msgpack:"width"`
	Height         int          `json:"height" msgpack:"height"`
	Player         EntityView   `json:"player" msgpack:"player"`
	Pursuers       []EntityView `json:"pursuers" msgpack:"pursuers"`
	Dots           []Cell       `json:"dots" msgpack:"dots"`
	PowerPellets   []Cell       `json:"powerPellets" msgpack:"powerPellets"`
}

// statusLabel renders the HUD line: power countdown first, then recording
// countdown, then the clone count.
func statusLabel(powerActive bool, powerLeft float64, recording bool, recordLeft float64, clones int) string {
	switch {
	case powerActive:
		return fmt.Sprintf("POWER: %ds", int(math.Ceil(powerLeft)))
	case recording:
		return fmt.Sprintf("RECORDING: %ds", int(math.Ceil(recordLeft)))
	default:
		return fmt.Sprintf("CLONES: %d", clones)
	}
}

func viewOf(m Mover, id, kind, color string, vulnerable bool) EntityView {
	return EntityView{
		ID:         id,
		Kind:       kind,
		Position:   m.Position(),
		Heading:    m.Heading().String(),
		Color:      color,
		Vulnerable: vulnerable,
	}
}
