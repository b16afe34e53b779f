package config

// RoundPhaseID identifies the phase of a tumbang round.
type RoundPhaseID int

const (
	// PhaseIdle is normal play: the can is standing or freshly reset.
	PhaseIdle RoundPhaseID = iota
	// PhaseAwaitingReset starts when the can goes down; the countdown runs
	// until the player is back behind the foul line holding the slipper.
	PhaseAwaitingReset
	// PhaseExpired is terminal until an explicit restart.
	PhaseExpired
)

var phaseNames = map[RoundPhaseID]string{
	PhaseIdle:          "Idle",
	PhaseAwaitingReset: "AwaitingReset",
	PhaseExpired:       "Expired",
}

func (p RoundPhaseID) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// SlipperModeID is the display/debug form of the slipper's mode.
type SlipperModeID int

const (
	SlipperHeld SlipperModeID = iota
	SlipperThrown
)

func (m SlipperModeID) String() string {
	if m == SlipperThrown {
		return "Thrown"
	}
	return "Held"
}
