package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/tumbang-preso/clock"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/systems/factory"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = time.Second / 60

type testGame struct {
	ecs    *ecs.ECS
	clock  *clock.Mock
	player *donburi.Entry
}

func newTestGame(t *testing.T, seed uint64) *testGame {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewMock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	player := factory.CreateGame(e, clk, seed)
	g := &testGame{ecs: e, clock: clk, player: player}
	UpdateClock(e)
	return g
}

// step runs the simulation half of the frame loop for n frames.
func (g *testGame) step(n int) {
	for i := 0; i < n; i++ {
		g.clock.Advance(frame)
		UpdateClock(g.ecs)
		WithCaptureCheck(UpdatePlayer)(g.ecs)
		WithCaptureCheck(UpdateThrow)(g.ecs)
		UpdatePhysics(g.ecs)
		UpdateTransforms(g.ecs)
		UpdateRound(g.ecs)
		UpdateRestart(g.ecs)
		UpdateAim(g.ecs)
		UpdateHUD(g.ecs)
		getInput(g.ecs).Swap()
	}
}

// press holds an action for the next frame only.
func (g *testGame) press(id cfg.ActionID) {
	in := getInput(g.ecs)
	in.Previous[id] = false
	in.Current[id] = true
}

func (g *testGame) playerData() *components.PlayerData {
	return components.Player.Get(g.player)
}

func (g *testGame) slipper() *components.SlipperData {
	return components.Slipper.Get(g.playerData().Slipper)
}

func (g *testGame) can() *components.CanData {
	e, _ := tags.Can.First(g.ecs.World)
	return components.Can.Get(e)
}

func (g *testGame) round() *components.RoundData {
	return getRound(g.ecs)
}

func (g *testGame) moveTo(z float64) {
	p := g.playerData()
	p.Position = mgl64.Vec3{p.Position.X(), p.Position.Y(), z}
}

func (g *testGame) tipCan() {
	can := g.can()
	can.Body.Orientation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})
	can.Body.Position = mgl64.Vec3{0, cfg.Can.Radius, 0}
}

func TestKnockdownThenScore(t *testing.T) {
	g := newTestGame(t, 1)
	if g.round().Phase != cfg.PhaseIdle {
		t.Fatalf("phase = %v, want Idle", g.round().Phase)
	}

	g.tipCan()
	g.step(1)
	if g.round().Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("phase = %v, want AwaitingReset", g.round().Phase)
	}
	if got := g.round().CountdownRemaining(); got != cfg.Round.Duration {
		t.Fatalf("countdown = %v, want %v", got, cfg.Round.Duration)
	}

	// Held slipper, standing at the spawn behind the line
	g.moveTo(-150)
	g.step(1)

	r := g.round()
	if r.Phase != cfg.PhaseIdle {
		t.Errorf("phase = %v, want Idle", r.Phase)
	}
	if r.Score != 1 {
		t.Errorf("score = %d, want 1", r.Score)
	}
	if r.CountdownRemaining() != cfg.Round.Duration {
		t.Errorf("countdown = %v, want %v", r.CountdownRemaining(), cfg.Round.Duration)
	}
	can := g.can()
	if can.Fallen || can.Body.Position != cfg.Can.Position || !can.Body.IsSleeping() {
		t.Errorf("can not reset: fallen=%v pos=%v sleeping=%v", can.Fallen, can.Body.Position, can.Body.IsSleeping())
	}
}

func TestNoScoreInFrontOfFoulLine(t *testing.T) {
	g := newTestGame(t, 1)
	g.tipCan()
	g.step(1)

	g.moveTo(-50)
	g.step(30)

	r := g.round()
	if r.Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("phase = %v, want AwaitingReset", r.Phase)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, want 0", r.Score)
	}
	if r.CountdownRemaining() >= cfg.Round.Duration {
		t.Errorf("countdown not depleting: %v", r.CountdownRemaining())
	}
	if r.InZone {
		t.Errorf("zone status = in, want foul")
	}
}

func TestThrowFromPastFoulLineIsSwallowed(t *testing.T) {
	g := newTestGame(t, 1)
	g.moveTo(-50)
	g.press(cfg.ActionThrow)
	g.step(1)

	s := g.slipper()
	if !s.IsHeld() {
		t.Fatalf("slipper left the hand past the foul line")
	}
	if getPhysicsWorld(g.ecs).Has(s.Body) {
		t.Errorf("slipper admitted to the world")
	}
	if s.Body.Velocity != (mgl64.Vec3{}) {
		t.Errorf("velocity assigned: %v", s.Body.Velocity)
	}
}

func TestThrowLaunchesAlongAim(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.playerData()
	want := p.Forward().Mul(cfg.Throw.LaunchSpeed)
	wantPos, _ := p.Attach(cfg.Slipper.GripOffset, g.slipper().Grip.Rotation)

	in := getInput(g.ecs)
	in.Current[cfg.ActionThrow] = true
	UpdateThrow(g.ecs)

	s := g.slipper()
	if s.IsHeld() {
		t.Fatalf("slipper still held after an in-zone throw")
	}
	if !getPhysicsWorld(g.ecs).Has(s.Body) {
		t.Errorf("thrown slipper not in the world")
	}
	if !s.Body.Velocity.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("velocity = %v, want %v", s.Body.Velocity, want)
	}
	if !s.Body.Position.ApproxEqualThreshold(wantPos, 1e-9) {
		t.Errorf("release position = %v, want grip %v", s.Body.Position, wantPos)
	}
	if w := s.Body.AngularVelocity; math.Abs(math.Abs(w.Y())-cfg.Throw.SpinMagnitude) > 1e-9 {
		t.Errorf("spin = %v, want ±%v", w.Y(), cfg.Throw.SpinMagnitude)
	}
}

func TestSpinIsReproducibleWithSeed(t *testing.T) {
	throw := func() mgl64.Vec3 {
		g := newTestGame(t, 42)
		getInput(g.ecs).Current[cfg.ActionThrow] = true
		UpdateThrow(g.ecs)
		return g.slipper().Body.AngularVelocity
	}
	a, b := throw(), throw()
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestThrownSlipperKnocksCanDown(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.slipper()
	launch := components.LaunchParams{Velocity: mgl64.Vec3{0, 0, 150}}
	if !s.Release(getPhysicsWorld(g.ecs), true, mgl64.Vec3{0, 10, -20}, mgl64.QuatIdent(), launch) {
		t.Fatalf("release failed")
	}

	for i := 0; i < 180 && g.round().Phase == cfg.PhaseIdle; i++ {
		g.step(1)
	}
	if g.round().Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("phase = %v after the hit, want AwaitingReset", g.round().Phase)
	}
	if !g.can().Fallen {
		t.Errorf("can not classified as fallen")
	}
}

func TestPickupAfterLanding(t *testing.T) {
	g := newTestGame(t, 1)
	g.press(cfg.ActionThrow)
	g.step(1)
	if g.slipper().IsHeld() {
		t.Fatalf("throw did not happen")
	}

	// Too far away to reach it
	g.step(120)
	g.press(cfg.ActionPickup)
	g.step(1)
	if g.slipper().IsHeld() {
		t.Fatalf("picked up from the spawn point")
	}

	landed := g.slipper().Body.Position
	p := g.playerData()
	p.Position = mgl64.Vec3{landed.X(), landed.Y() + 10, landed.Z()}
	g.press(cfg.ActionPickup)
	g.step(1)

	s := g.slipper()
	if !s.IsHeld() {
		t.Fatalf("pickup within reach failed")
	}
	if getPhysicsWorld(g.ecs).Has(s.Body) {
		t.Errorf("picked up slipper still simulated")
	}
}

func TestExpiryFreezesInputUntilRestart(t *testing.T) {
	g := newTestGame(t, 1)
	g.press(cfg.ActionThrow)
	g.step(1)
	g.tipCan()
	g.step(1)
	if g.round().Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("phase = %v, want AwaitingReset", g.round().Phase)
	}

	// Restart is ignored while the round is live
	g.press(cfg.ActionRestart)
	g.step(1)
	if g.round().Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("restart acted mid-round")
	}

	g.step(int(cfg.Round.Duration*60) + 30)
	r := g.round()
	if r.Phase != cfg.PhaseExpired {
		t.Fatalf("phase = %v, want Expired", r.Phase)
	}
	if r.InputCaptured {
		t.Errorf("input still captured after expiry")
	}
	if r.CountdownRemaining() != 0 {
		t.Errorf("countdown = %v, want 0", r.CountdownRemaining())
	}

	// Holder actions are ignored while frozen
	before := g.playerData().Position
	g.playerData().Position = g.slipper().Body.Position
	g.press(cfg.ActionPickup)
	g.step(1)
	if g.slipper().IsHeld() {
		t.Errorf("pickup went through while expired")
	}
	g.playerData().Position = before

	g.press(cfg.ActionRestart)
	g.step(1)
	r = g.round()
	if r.Phase != cfg.PhaseIdle || r.Score != 0 || !r.InputCaptured {
		t.Errorf("after restart phase=%v score=%d captured=%v", r.Phase, r.Score, r.InputCaptured)
	}
	s := g.slipper()
	if !s.IsHeld() || getPhysicsWorld(g.ecs).Has(s.Body) {
		t.Errorf("slipper not back in hand")
	}
	if g.can().Fallen {
		t.Errorf("can still down after restart")
	}
	if g.playerData().Position != cfg.Player.Spawn {
		t.Errorf("player at %v, want spawn %v", g.playerData().Position, cfg.Player.Spawn)
	}
}

func TestAimPreview(t *testing.T) {
	g := newTestGame(t, 1)
	g.step(1)
	aim := components.Aim.Get(components.Aim.MustFirst(g.ecs.World))

	if !aim.Visible || len(aim.Points) < 2 {
		t.Fatalf("preview hidden at the spawn: visible=%v points=%d", aim.Visible, len(aim.Points))
	}
	if !aim.HasImpact {
		t.Fatalf("no ground impact on the preview")
	}
	if aim.Impact.Z() <= g.playerData().Position.Z() {
		t.Errorf("impact %v is behind the holder", aim.Impact)
	}
	if aim.Range <= 0 || aim.Range > cfg.Throw.LaunchSpeed*cfg.Trajectory.Horizon {
		t.Errorf("aim range = %v", aim.Range)
	}

	g.moveTo(-50)
	g.step(1)
	if aim.Visible {
		t.Errorf("preview shown past the foul line")
	}

	g.moveTo(-150)
	g.press(cfg.ActionTogglePreview)
	g.step(1)
	if aim.Visible || aim.Enabled {
		t.Errorf("toggle did not hide the preview")
	}
}

func TestPlayerStopsAtFieldWall(t *testing.T) {
	g := newTestGame(t, 1)
	in := getInput(g.ecs)
	for i := 0; i < 300; i++ {
		in.Current[cfg.ActionMoveBack] = true
		g.clock.Advance(frame)
		UpdateClock(g.ecs)
		UpdatePlayer(g.ecs)
		in.Swap()
	}
	z := g.playerData().Position.Z()
	if z < cfg.Field.MinZ {
		t.Errorf("walked through the back wall to z=%v", z)
	}
	if z > cfg.Field.MinZ+cfg.Player.FootprintSize {
		t.Errorf("stopped short of the wall at z=%v", z)
	}
}

func TestScorePopsHUD(t *testing.T) {
	g := newTestGame(t, 1)
	g.step(1)
	hud := components.HUD.Get(components.HUD.MustFirst(g.ecs.World))
	if hud.ScoreScale != 1 {
		t.Fatalf("score scale = %v before any point, want 1", hud.ScoreScale)
	}

	g.tipCan()
	g.step(1)
	g.step(1)
	if g.round().Score != 1 {
		t.Fatalf("score = %d, want 1", g.round().Score)
	}
	if hud.ScoreScale <= 1 {
		t.Errorf("score scale = %v right after a point, want > 1", hud.ScoreScale)
	}
}

func TestRoundEventsQueueSounds(t *testing.T) {
	g := newTestGame(t, 1)
	queued := func() []cfg.SoundID {
		return getAudio(g.ecs).Drain()
	}

	g.press(cfg.ActionThrow)
	g.step(1)
	if got := queued(); len(got) == 0 || got[0] != cfg.SoundThrow {
		t.Errorf("after throw queued %v, want throw first", got)
	}

	g.tipCan()
	g.step(1)
	if got := queued(); len(got) != 1 || got[0] != cfg.SoundKnockdown {
		t.Errorf("after knockdown queued %v, want knockdown", got)
	}

	// One tick per whole second under the warning threshold
	g.step(int((cfg.Round.Duration - cfg.Round.WarningThreshold) * 60))
	queued()
	g.step(int(cfg.Round.WarningThreshold*60) - 30)
	ticks := 0
	for _, id := range queued() {
		if id == cfg.SoundWarningTick {
			ticks++
		}
	}
	if ticks < 4 || ticks > 5 {
		t.Errorf("warning ticks = %d, want one per second", ticks)
	}

	g.step(60)
	if got := queued(); len(got) == 0 || got[len(got)-1] != cfg.SoundExpired {
		t.Errorf("after expiry queued %v, want expired last", got)
	}

	UpdateAudio(g.ecs)
	if len(getAudio(g.ecs).PendingSFX) != 0 {
		t.Errorf("UpdateAudio left cues queued")
	}
}

// walkTo moves the holder's footprint toward x, z through the field space,
// sliding along walls and the can the way UpdatePlayer does.
func (g *testGame) walkTo(x, z float64) {
	p := g.playerData()
	obj := components.Object.Get(g.player).Object
	for i := 0; i < 2000; i++ {
		d := mgl64.Vec3{x - p.Position.X(), 0, z - p.Position.Z()}
		if d.Len() < 0.25 {
			return
		}
		if d.Len() > 1 {
			d = d.Normalize()
		}
		movePlayerObject(obj, d.X(), d.Z())
		px, pz := cfg.Field.FromSpace(obj.X+obj.W/2, obj.Y+obj.H/2)
		p.Position = mgl64.Vec3{px, p.Position.Y(), pz}
	}
}

// recoverSlipper walks to the resting slipper along a lane clear of the can
// and picks it up.
func (g *testGame) recoverSlipper(t *testing.T) {
	t.Helper()
	rest := g.slipper().Body.Position
	f := cfg.Field
	if rest.X() < f.MinX || rest.X() > f.MaxX || rest.Z() < f.MinZ || rest.Z() > f.MaxZ {
		t.Fatalf("slipper came to rest outside the field at %v", rest)
	}

	const lane = -40
	g.walkTo(lane, g.playerData().Position.Z())
	g.walkTo(lane, rest.Z())
	g.walkTo(rest.X(), rest.Z())

	if d := g.playerData().Position.Sub(g.slipper().Body.Position).Len(); d > cfg.Slipper.PickupRadius {
		t.Fatalf("closest approach %.1f to slipper at %v exceeds pickup radius", d, g.slipper().Body.Position)
	}
	g.press(cfg.ActionPickup)
	g.step(1)
	if !g.slipper().IsHeld() {
		t.Fatalf("pickup failed next to the slipper at %v", g.slipper().Body.Position)
	}
}

func TestMissedThrowsCanBeRecovered(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float64
		pitch float64
	}{
		{"lofted over the can", math.Pi, 0.3},
		{"steep lob", math.Pi, 0.6},
		{"sideways miss", math.Pi / 2, 0.3},
		{"sideways miss other side", 3 * math.Pi / 2, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			p := g.playerData()
			p.Yaw, p.Pitch = tt.yaw, tt.pitch

			g.press(cfg.ActionThrow)
			g.step(1)
			if g.slipper().IsHeld() {
				t.Fatalf("throw did not happen")
			}

			// Long enough to settle, short of a countdown running out
			g.step(8 * 60)
			g.recoverSlipper(t)
		})
	}
}

func TestScoredCanIsRedrawnUpright(t *testing.T) {
	g := newTestGame(t, 1)
	canEntry, _ := tags.Can.First(g.ecs.World)
	tr := components.Transform.Get(canEntry)

	g.tipCan()
	g.step(1)
	if g.round().Phase != cfg.PhaseAwaitingReset {
		t.Fatalf("phase = %v, want AwaitingReset", g.round().Phase)
	}
	if tr.Orientation != g.can().Body.Orientation {
		t.Errorf("transform not re-synced before the round sampled the can")
	}

	g.step(1)
	if g.round().Score != 1 {
		t.Fatalf("score = %d, want 1", g.round().Score)
	}
	if tr.Position != cfg.Can.Position || tr.Orientation != mgl64.QuatIdent() {
		t.Errorf("scored can drawn at %v %v, want rest pose", tr.Position, tr.Orientation)
	}
}
