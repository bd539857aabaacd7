package game

// EventType names a discrete notification emitted by a tick.
type EventType string

// Event types.
const (
	EventCloneSpawned EventType = "clone_spawned"
	EventFlash        EventType = "flash"
	EventPowerStarted EventType = "power_started"
	EventPowerEnded   EventType = "power_ended"
	EventBoardCleared EventType = "board_cleared"
	EventGameOver     EventType = "game_over"
)

// Event is a transient notification for the presentation layer.
type Event struct {
	Type    EventType `json:"type" msgpack:"type"`
	RunID   string    `json:"runId" msgpack:"runId"`
	SimTime float64   `json:"simTime" msgpack:"simTime"`
	Score   int       `json:"score" msgpack:"score"`
	CloneID string    `json:"cloneId,omitempty" msgpack:"cloneId,omitempty"`
	Color   string    `json:"color,omitempty" msgpack:"color,omitempty"`
	Millis  int       `json:"millis,omitempty" msgpack:"millis,omitempty"`
}
