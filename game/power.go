package game

// PowerMode is the countdown during which pursuers can be collected.
type PowerMode struct {
	duration  float64
	active    bool
	remaining float64
}

// NewPowerMode creates an inactive timer that lasts duration once activated.
func NewPowerMode(duration float64) *PowerMode {
	return &PowerMode{duration: duration}
}

// Active reports whether Power-Mode is running.
func (p *PowerMode) Active() bool { return p.active }

// Remaining returns the seconds left.
func (p *PowerMode) Remaining() float64 { return p.remaining }

// Activate starts Power-Mode or restarts it at the full duration, and makes
// every pursuer vulnerable.
func (p *PowerMode) Activate(pursuers []Pursuer) {
	p.active = true
	p.remaining = p.duration
	for _, ps := range pursuers {
		ps.SetVulnerable(true)
	}
}

// Decay counts down by dt. It reports true on the tick Power-Mode ends, after
// clearing every pursuer's vulnerability.
func (p *PowerMode) Decay(dt float64, pursuers []Pursuer) bool {
	if !p.active {
		return false
	}
	p.remaining -= dt
	if p.remaining > timeEpsilon {
		return false
	}

	p.active = false
	p.remaining = 0
	for _, ps := range pursuers {
		ps.SetVulnerable(false)
	}
	return true
}

// Reset turns Power-Mode off without touching pursuers.
func (p *PowerMode) Reset() {
	p.active = false
	p.remaining = 0
}
