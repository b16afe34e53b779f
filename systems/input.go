package systems

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayer and UpdateThrow in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Swap()

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		input.TrackCursor(ebiten.CursorPosition())
	} else {
		input.ForgetCursor()
	}
}

// UpdateCursor keeps the OS cursor captured while the round wants input.
// Escape lets go; a click while released takes it back without throwing.
func UpdateCursor(ecs *ecs.ECS) {
	input := getInput(ecs)
	round := getRound(ecs)

	if input.Action(cfg.ActionReleaseCursor).JustPressed {
		input.Released = true
	}
	if input.Released && round.InputCaptured && input.Action(cfg.ActionThrow).JustPressed {
		input.Released = false
		input.Consume(cfg.ActionThrow)
	}

	want := ebiten.CursorModeVisible
	if inputActive(round, input) {
		want = ebiten.CursorModeCaptured
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
		input.ForgetCursor()
	}
}

// WithCaptureCheck wraps a system to skip execution while the round has
// released input (expired) or the player has let go of the cursor.
func WithCaptureCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !inputActive(getRound(e), getInput(e)) {
			return
		}
		system(e)
	}
}

func inputActive(round *components.RoundData, input *components.InputData) bool {
	return round.InputCaptured && !input.Released
}

func getInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

func getRound(ecs *ecs.ECS) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(ecs.World))
}
