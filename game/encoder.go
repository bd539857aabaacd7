package game

// Frame is what one tick sends to a presentation client: the snapshot plus any
// events the tick produced.
type Frame struct {
	Snapshot *Snapshot `json:"snapshot,omitempty" msgpack:"snapshot,omitempty"`
	Events   []Event   `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Encoder serializes the frames the presentation layer consumes.
type Encoder interface {
	MarshalFrame(Frame) ([]byte, error)
	UnmarshalFrame([]byte) (Frame, error)
}
