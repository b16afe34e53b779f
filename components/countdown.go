package components

import (
	"math"
	"time"
)

// Countdown is a cancellable repeating wall-clock timer that is polled
// rather than scheduled. There is exactly one accumulator, so starting it
// again can never leave a second run behind.
type Countdown struct {
	Duration float64
	Step     float64
	Interval time.Duration

	running bool
	ticks   int
	total   int
	last    time.Time
}

// NewCountdown creates a stopped countdown at full duration.
func NewCountdown(duration, step float64, interval time.Duration) Countdown {
	c := Countdown{
		Duration: duration,
		Step:     step,
		Interval: interval,
	}
	if step > 0 {
		// tolerance absorbs representation error in duration/step
		c.total = int(math.Ceil(duration/step - 1e-9))
	}
	return c
}

// Start cancels any run in progress and starts again from full duration.
func (c *Countdown) Start(now time.Time) {
	c.Stop()
	c.Reset()
	c.running = true
	c.last = now
}

// Stop cancels the run. Remaining keeps its value until Reset.
func (c *Countdown) Stop() {
	c.running = false
}

// Reset returns the display to full duration without starting.
func (c *Countdown) Reset() {
	c.ticks = 0
}

// Running reports whether the countdown is active.
func (c *Countdown) Running() bool {
	return c.running
}

// Poll applies every whole interval elapsed since the last applied tick
// and returns how many were applied. Reaching zero stops the countdown.
func (c *Countdown) Poll(now time.Time) int {
	if !c.running || c.Interval <= 0 {
		return 0
	}
	elapsed := now.Sub(c.last)
	if elapsed < c.Interval {
		return 0
	}

	n := int(elapsed / c.Interval)
	if left := c.total - c.ticks; n > left {
		n = left
	}
	c.last = c.last.Add(time.Duration(n) * c.Interval)
	c.ticks += n
	if c.ticks >= c.total {
		c.running = false
	}
	return n
}

// Done reports whether the countdown has run down to zero.
func (c *Countdown) Done() bool {
	return c.ticks >= c.total
}

// Remaining is the displayed time left, floored at zero.
func (c *Countdown) Remaining() float64 {
	if c.Done() {
		return 0
	}
	return math.Max(0, c.Duration-float64(c.ticks)*c.Step)
}

// Ticks returns how many ticks have been applied in this run.
func (c *Countdown) Ticks() int {
	return c.ticks
}
