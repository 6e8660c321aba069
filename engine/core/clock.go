package core

import "time"

type Clock struct {
	now       func() time.Time
	startTime time.Time
	elapsed   float64
	lastTick  float64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if !c.startTime.IsZero() {
		c.elapsed = c.now().Sub(c.startTime).Seconds()
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.elapsed = 0
	c.lastTick = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Tick updates the clock and returns the seconds since the previous Tick,
// Resync or Start.
func (c *Clock) Tick() float64 {
	c.Update()
	delta := c.elapsed - c.lastTick
	c.lastTick = c.elapsed
	return delta
}

// Resync drops the time since the previous tick, so the next Tick does not
// report time spent suspended.
func (c *Clock) Resync() {
	c.Update()
	c.lastTick = c.elapsed
}
