package config

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// TuningItem is the gdata item key players can drop overrides into.
const TuningItem = "tuning"

// Tuning holds the player-editable presentation overrides. Gameplay rules
// (countdown, foul line, launch speed) are not tunable.
type Tuning struct {
	MouseSensitivity *float64 `json:"mouseSensitivity,omitempty"`
	ShowTrajectory   *bool    `json:"showTrajectory,omitempty"`
	WindowScale      *float64 `json:"windowScale,omitempty"`
	SpinSeed         *uint64  `json:"spinSeed,omitempty"`
	SFXVolume        *float64 `json:"sfxVolume,omitempty"`
	Muted            *bool    `json:"muted,omitempty"`
}

// LoadTuning reads the tuning item from the app data directory, if any,
// and applies it. A missing item is not an error. Nothing is ever written.
func LoadTuning(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open app data: %w", err)
	}

	data, err := m.LoadItem(TuningItem)
	if err != nil {
		return fmt.Errorf("load %s: %w", TuningItem, err)
	}
	if data == nil {
		return nil
	}
	return ApplyTuning(data)
}

// ApplyTuning decodes a JSON tuning document and applies the fields present.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}

	if t.MouseSensitivity != nil && *t.MouseSensitivity > 0 {
		Player.MouseSensitivity = *t.MouseSensitivity
	}
	if t.ShowTrajectory != nil {
		Trajectory.Enabled = *t.ShowTrajectory
	}
	if t.WindowScale != nil && *t.WindowScale > 0 {
		C.Width = int(float64(C.Width) * *t.WindowScale)
		C.Height = int(float64(C.Height) * *t.WindowScale)
	}
	if t.SpinSeed != nil {
		Throw.SpinSeed = *t.SpinSeed
	}
	if t.SFXVolume != nil && *t.SFXVolume >= 0 && *t.SFXVolume <= 1 {
		Audio.SFXVolume = *t.SFXVolume
	}
	if t.Muted != nil {
		Audio.Muted = *t.Muted
	}
	return nil
}
