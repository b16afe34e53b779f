package components

import (
	"time"

	"github.com/automoto/tumbang-preso/clock"
	"github.com/yohamta/donburi"
)

// ClockData is the scene's wall-clock source. Singleton. Now and Delta are
// refreshed once per frame by Tick so every system sees the same instant.
type ClockData struct {
	Provider clock.Provider
	Now      time.Time
	Delta    float64 // seconds since the previous Tick

	last time.Time
}

var Clock = donburi.NewComponentType[ClockData]()

// Tick samples the provider. The first call yields a zero delta, and a
// clock that goes backwards is treated as no time passing.
func (c *ClockData) Tick() {
	now := c.Provider.Now()
	c.Delta = 0
	if !c.last.IsZero() {
		if d := now.Sub(c.last).Seconds(); d > 0 {
			c.Delta = d
		}
	}
	c.last = now
	c.Now = now
}
