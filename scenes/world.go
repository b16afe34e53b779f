package scenes

import (
	"sync"

	"github.com/automoto/tumbang-preso/clock"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/systems"
	"github.com/automoto/tumbang-preso/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TumbangScene is the single play scene: one can, one slipper, one holder.
type TumbangScene struct {
	ecs   *ecs.ECS
	clock clock.Provider
	once  sync.Once
}

// NewTumbangScene creates the scene. The world is built lazily on the first
// Update so window setup has finished first.
func NewTumbangScene(provider clock.Provider) *TumbangScene {
	return &TumbangScene{clock: provider}
}

func (ts *TumbangScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TumbangScene) Draw(screen *ebiten.Image) {
	if ts.ecs == nil {
		screen.Fill(cfg.Sky)
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TumbangScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and raw input first; everything below reads them
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCursor)

	// Holder actions, skipped while input is released
	ecs.AddSystem(systems.WithCaptureCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithCaptureCheck(systems.UpdateThrow))

	// Step, re-sync visuals, then sample for the round
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateTransforms)
	ecs.AddSystem(systems.UpdateRound)
	ecs.AddSystem(systems.UpdateRestart)
	ecs.AddSystem(systems.UpdateAim)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	factory.CreateGame(ecs, ts.clock, cfg.Throw.SpinSeed)
	ts.ecs = ecs
}
