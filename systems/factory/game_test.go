package factory

import (
	"testing"
	"time"

	"github.com/automoto/tumbang-preso/clock"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateGame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := CreateGame(e, clock.NewMock(time.Unix(0, 0)), 7)
	world := components.PhysicsWorld.Get(components.PhysicsWorld.MustFirst(e.World)).World

	canEntry, ok := tags.Can.First(e.World)
	if !ok {
		t.Fatalf("no can")
	}
	can := components.Can.Get(canEntry)
	if !world.Has(can.Body) {
		t.Errorf("can body not in the world")
	}
	if !can.Body.IsSleeping() {
		t.Errorf("can should start asleep")
	}
	if can.Body.Position != cfg.Can.Position {
		t.Errorf("can at %v, want %v", can.Body.Position, cfg.Can.Position)
	}

	p := components.Player.Get(player)
	if p.Position != cfg.Player.Spawn || !p.InZone(cfg.Field.FoulLineZ) {
		t.Errorf("player at %v should spawn behind the line", p.Position)
	}
	if p.Slipper == nil {
		t.Fatalf("player has no slipper")
	}
	s := components.Slipper.Get(p.Slipper)
	if !s.IsHeld() || world.Has(s.Body) || s.Body.Mass() != 0 {
		t.Errorf("slipper should start held and out of the simulation")
	}

	walls := 0
	tags.Wall.Each(e.World, func(*donburi.Entry) { walls++ })
	if walls != 4 {
		t.Errorf("walls = %d, want 4", walls)
	}

	space := components.Space.Get(components.Space.MustFirst(e.World))
	if got := len(space.Objects()); got != 6 {
		t.Errorf("space objects = %d, want 4 walls + can + player", got)
	}

	round := components.Round.Get(components.Round.MustFirst(e.World))
	if round.Phase != cfg.PhaseIdle || !round.InputCaptured {
		t.Errorf("round should start idle with input captured")
	}
}

func TestFieldSpaceRoundTrip(t *testing.T) {
	sx, sy := cfg.Field.ToSpace(cfg.Player.Spawn.X(), cfg.Player.Spawn.Z())
	x, z := cfg.Field.FromSpace(sx, sy)
	if x != cfg.Player.Spawn.X() || z != cfg.Player.Spawn.Z() {
		t.Errorf("round trip gave (%v, %v)", x, z)
	}
	w, h := cfg.Field.SpaceSize()
	if sx < 0 || sy < 0 || sx > float64(w) || sy > float64(h) {
		t.Errorf("spawn (%v, %v) outside the %dx%d space", sx, sy, w, h)
	}
}
