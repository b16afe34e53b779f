package systems

import (
	"log"
	"math"

	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound samples the can, slipper and holder and advances the round.
// Runs after the transforms are re-synced. A point stands the can back up
// and re-syncs it in the same frame.
func UpdateRound(ecs *ecs.ECS) {
	round := getRound(ecs)
	canEntry, ok := tags.Can.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	can := components.Can.Get(canEntry)
	player := components.Player.Get(playerEntry)

	sample := components.RoundSample{
		Fallen: can.CheckFallen(),
		InZone: player.InZone(cfg.Field.FoulLineZ),
	}
	if player.Slipper != nil && player.Slipper.Valid() {
		sample.Held = components.Slipper.Get(player.Slipper).IsHeld()
	}

	event := round.Advance(sample, getClock(ecs).Now)
	switch event {
	case components.RoundKnockdown:
		queueSound(ecs, cfg.SoundKnockdown)
		log.Printf("Can down, countdown started (%.1fs)", round.CountdownRemaining())
	case components.RoundScored:
		can.Reset()
		syncCan(canEntry)
		queueSound(ecs, cfg.SoundScore)
		log.Printf("Scored, score=%d", round.Score)
	case components.RoundExpired:
		queueSound(ecs, cfg.SoundExpired)
		log.Printf("Countdown expired, final score=%d", round.Score)
	}

	announceWarning(ecs, round)
}

// announceWarning ticks once per whole second while the countdown is in
// its warning range.
func announceWarning(ecs *ecs.ECS, round *components.RoundData) {
	sfx := getAudio(ecs)
	if !round.Warning(cfg.Round.WarningThreshold) {
		sfx.LastTickSecond = 0
		return
	}
	sec := int(math.Ceil(round.CountdownRemaining()))
	if sec != sfx.LastTickSecond {
		sfx.LastTickSecond = sec
		sfx.Queue(cfg.SoundWarningTick)
	}
}

// UpdateRestart handles the restart command. Only an expired round can be
// restarted; the press is ignored otherwise.
func UpdateRestart(ecs *ecs.ECS) {
	if !getInput(ecs).Action(cfg.ActionRestart).JustPressed {
		return
	}
	if RestartRound(ecs) {
		log.Println("Round restarted")
	}
}

// RestartRound resets an expired round to a fresh Idle one: score zero, can
// standing, slipper in hand and the holder back at the spawn point.
func RestartRound(ecs *ecs.ECS) bool {
	round := getRound(ecs)
	if !round.Restart() {
		return false
	}

	if canEntry, ok := tags.Can.First(ecs.World); ok {
		components.Can.Get(canEntry).Reset()
		syncCan(canEntry)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return true
	}
	player := components.Player.Get(playerEntry)
	if player.Slipper != nil && player.Slipper.Valid() {
		components.Slipper.Get(player.Slipper).ForceHeld(getPhysicsWorld(ecs))
	}
	respawnPlayer(playerEntry)
	getInput(ecs).Released = false
	return true
}

func respawnPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.Position = cfg.Player.Spawn
	player.Yaw = cfg.Player.SpawnYaw
	player.Pitch = 0

	obj := components.Object.Get(playerEntry).Object
	sx, sy := cfg.Field.ToSpace(player.Position.X(), player.Position.Z())
	obj.X = sx - obj.W/2
	obj.Y = sy - obj.H/2
	obj.Update()
}
