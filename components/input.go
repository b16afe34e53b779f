package components

import (
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the mouse-look delta. JustPressed/JustReleased are computed
// on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	LookDX float64
	LookDY float64

	// Released is set when the player lets go of the cursor mid-round.
	Released bool

	cursorX, cursorY int
	cursorKnown      bool
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of an action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Swap makes the current frame the previous one and clears the current.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.LookDX, in.LookDY = 0, 0
}

// TrackCursor turns absolute cursor positions into a look delta. The first
// reading after Forget only records the position.
func (in *InputData) TrackCursor(x, y int) {
	if in.cursorKnown {
		in.LookDX = float64(x - in.cursorX)
		in.LookDY = float64(y - in.cursorY)
	}
	in.cursorX, in.cursorY = x, y
	in.cursorKnown = true
}

// ForgetCursor drops the last cursor position so a capture change does not
// produce a jump.
func (in *InputData) ForgetCursor() {
	in.cursorKnown = false
}

// Consume marks an action as already seen this frame, so a press used for
// something else (like recapturing the cursor) does not also fire it.
func (in *InputData) Consume(id cfg.ActionID) {
	in.Previous[id] = in.Current[id]
}
