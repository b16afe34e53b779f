package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds HUD animation state. Singleton.
type HUDData struct {
	WarningPulse *gween.Tween // loops while the countdown is in warning
	Pulse        float32      // 0..1 warning intensity

	ScorePop   *gween.Tween // runs once after each point
	ScoreScale float32
	LastScore  int
}

var HUD = donburi.NewComponentType[HUDData]()
