package game

// timeEpsilon absorbs float rounding when simulated times are compared.
const timeEpsilon = 1e-6

// simClock derives run time from a tick count so a fixed dt never drifts.
// A change of dt rebases the count on the time reached so far.
type simClock struct {
	base  float64
	dt    float64
	ticks int
}

// advance moves the clock one tick of dt and returns the new run time.
func (c *simClock) advance(dt float64) float64 {
	if dt != c.dt {
		c.base = c.now()
		c.dt = dt
		c.ticks = 0
	}
	c.ticks++
	return c.now()
}

func (c *simClock) now() float64 {
	return c.base + float64(c.ticks)*c.dt
}
