package game

// Sample is one entry of the player's movement history.
type Sample struct {
	Position Cell      `json:"position" msgpack:"position"`
	Heading  Direction `json:"heading" msgpack:"heading"`
	SimTime  float64   `json:"simTime" msgpack:"simTime"`
}

// Recorder captures the player's movement during the recording window.
// Stationary ticks are not recorded, so consecutive samples never share a cell.
type Recorder struct {
	window  float64
	samples []Sample
	frozen  bool
}

// NewRecorder creates a recorder that stays open for window simulated seconds.
func NewRecorder(window float64) *Recorder {
	return &Recorder{window: window}
}

// Record appends a sample when the buffer is empty or the cell changed since the
// last sample. It reports whether a sample was appended.
func (r *Recorder) Record(pos Cell, heading Direction, simTime float64) bool {
	if r.frozen {
		return false
	}
	if n := len(r.samples); n > 0 && r.samples[n-1].Position == pos {
		return false
	}
	r.samples = append(r.samples, Sample{Position: pos, Heading: heading, SimTime: simTime})
	return true
}

// Active reports whether recording is still running.
func (r *Recorder) Active() bool { return !r.frozen }

// Elapsed reports whether the window is over at the given run time.
func (r *Recorder) Elapsed(simTime float64) bool {
	return simTime+timeEpsilon >= r.window
}

// Remaining returns the seconds left in the window, never below zero.
func (r *Recorder) Remaining(simTime float64) float64 {
	return max(0, r.window-simTime)
}

// Freeze stops recording for the rest of the run.
func (r *Recorder) Freeze() { r.frozen = true }

// Len returns the number of recorded samples.
func (r *Recorder) Len() int { return len(r.samples) }

// Snapshot returns a copy of the history that later recording cannot touch.
func (r *Recorder) Snapshot() []Sample {
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Reset clears the history and reopens the window.
func (r *Recorder) Reset() {
	r.samples = nil
	r.frozen = false
}
