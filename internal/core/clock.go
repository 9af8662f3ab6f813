package core

import "math"

const (
	// DefaultStep is the fixed simulation step in seconds.
	DefaultStep = 1.0 / 20.0

	// MaxFrameTime caps how much scaled frame time a single Advance may
	// consume. A stalled render loop then causes at most a couple of
	// catch-up steps instead of a burst.
	MaxFrameTime = 0.1
)

// Clock converts variable render frame times into a whole number of
// fixed simulation steps. Leftover time stays in the accumulator and is
// reported as the interpolation alpha, so rendering can blend between
// the last two simulation states.
type Clock struct {
	dt          float64
	timeScale   float64
	accumulator float64
	elapsed     float64
	steps       int
}

// NewClock creates a clock with the given fixed step in seconds.
func NewClock(dt float64) *Clock {
	if dt <= 0 {
		panic("core: clock step must be positive")
	}
	return &Clock{
		dt:        dt,
		timeScale: 1.0,
	}
}

// Advance feeds one render frame of real time to the clock and returns
// how many fixed steps to run plus the interpolation alpha in [0, 1).
// The same total frame time yields the same total step count no matter
// how it is sliced, as long as no slice hits the MaxFrameTime clamp.
// A negative time scale consumes steps backwards; the returned count is
// always non-negative, the direction shows up in Elapsed.
func (c *Clock) Advance(frame float64) (int, float64) {
	scaled := frame * c.timeScale
	if math.Abs(scaled) > MaxFrameTime {
		scaled = math.Copysign(MaxFrameTime, scaled)
	}
	c.accumulator += scaled

	steps := 0
	for math.Abs(c.accumulator) >= c.dt {
		step := math.Copysign(c.dt, c.accumulator)
		c.accumulator -= step
		c.elapsed += step
		c.steps++
		steps++
	}
	return steps, math.Abs(c.accumulator) / c.dt
}

// SetTimeScale changes the simulation speed multiplier. 1.0 is real
// time, 0 pauses, negative values run the clock backwards.
func (c *Clock) SetTimeScale(scale float64) {
	c.timeScale = scale
}

// TimeScale returns the current speed multiplier.
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// Elapsed returns the total simulated time consumed so far.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Steps returns the total number of fixed steps consumed so far.
func (c *Clock) Steps() int {
	return c.steps
}

// Reset clears accumulated time and counters. The time scale is kept,
// so a restarted game keeps the speed the player chose.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.elapsed = 0
	c.steps = 0
}
