package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/fonts"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD advances the HUD tweens: a looping pulse while the countdown is
// in warning, and a one-shot pop when the score goes up.
func UpdateHUD(ecs *ecs.ECS) {
	hud := components.HUD.Get(components.HUD.MustFirst(ecs.World))
	round := getRound(ecs)
	dt := float32(getClock(ecs).Delta)

	if round.Warning(cfg.Round.WarningThreshold) {
		v, done := hud.WarningPulse.Update(dt)
		hud.Pulse = v
		if done {
			hud.WarningPulse.Reset()
		}
	} else {
		hud.WarningPulse.Reset()
		hud.Pulse = 0
	}

	if round.Score > hud.LastScore {
		hud.ScorePop.Reset()
	}
	hud.LastScore = round.Score
	scale, _ := hud.ScorePop.Update(dt)
	hud.ScoreScale = scale
}

// DrawHUD renders score, phase, countdown, zone status and prompts.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := getRound(ecs)
	hud := components.HUD.Get(components.HUD.MustFirst(ecs.World))
	face := fonts.Regular.Get()
	large := fonts.Large.Get()
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	m := cfg.HUD.Margin

	drawText(screen, fmt.Sprintf("Score %d", round.Score), large, m, m, cfg.HUD.TextColor, float64(hud.ScoreScale))
	drawText(screen, round.Phase.String(), face, m, m+2*cfg.HUD.LineHeight, cfg.HUD.TextColor, 1)

	if round.Phase == cfg.PhaseAwaitingReset || round.Phase == cfg.PhaseExpired {
		clr := cfg.HUD.TextColor
		if round.Warning(cfg.Round.WarningThreshold) {
			clr = lerpColor(cfg.HUD.TextColor, cfg.HUD.WarningColor, 1-hud.Pulse)
		}
		label := fmt.Sprintf("%.1f", round.CountdownRemaining())
		w, _ := text.Measure(label, large, 0)
		drawText(screen, label, large, (width-w)/2, m, clr, 1)
	}

	zone, zoneColor := "FOUL", cfg.HUD.FoulColor
	if round.InZone {
		zone, zoneColor = "IN", cfg.HUD.InZoneColor
	}
	zw, _ := text.Measure(zone, face, 0)
	drawText(screen, zone, face, width-zw-m, m, zoneColor, 1)

	if prompt := hudPrompt(ecs, round); prompt != "" {
		pw, _ := text.Measure(prompt, face, 0)
		drawText(screen, prompt, face, (width-pw)/2, height-m-cfg.HUD.LineHeight, cfg.HUD.TextColor, 1)
	}

	// Crosshair
	cx, cy := float32(width/2), float32(height/2)
	vector.FillRect(screen, cx-6, cy, 12, 1, cfg.HUD.TextColor, false)
	vector.FillRect(screen, cx, cy-6, 1, 12, cfg.HUD.TextColor, false)

	if round.Phase == cfg.PhaseExpired {
		drawExpiredOverlay(screen, round, width, height)
	}
}

func hudPrompt(ecs *ecs.ECS, round *components.RoundData) string {
	if round.Phase == cfg.PhaseExpired {
		return ""
	}
	if input := getInput(ecs); input.Released {
		return "Click to resume"
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return ""
	}
	player := components.Player.Get(playerEntry)
	if player.Slipper == nil || !player.Slipper.Valid() {
		return ""
	}
	slipper := components.Slipper.Get(player.Slipper)
	if !slipper.IsHeld() && player.Position.Sub(slipper.Body.Position).Len() <= cfg.Slipper.PickupRadius {
		return "E: pick up slipper"
	}
	if slipper.IsHeld() && !round.InZone {
		return "Get behind the line to throw"
	}
	return ""
}

func drawExpiredOverlay(screen *ebiten.Image, round *components.RoundData, width, height float64) {
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	large := fonts.Large.Get()
	face := fonts.Regular.Get()
	title := "TIME UP"
	tw, _ := text.Measure(title, large, 0)
	drawText(screen, title, large, (width-tw)/2, height/2-2*cfg.HUD.LineHeight, cfg.HUD.WarningColor, 1)

	score := fmt.Sprintf("Final score %d", round.Score)
	sw, _ := text.Measure(score, face, 0)
	drawText(screen, score, face, (width-sw)/2, height/2, cfg.HUD.TextColor, 1)

	hint := "R / Enter: restart"
	hw, _ := text.Measure(hint, face, 0)
	drawText(screen, hint, face, (width-hw)/2, height/2+cfg.HUD.LineHeight, cfg.HUD.TextColor, 1)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
