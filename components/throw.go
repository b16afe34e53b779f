package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// ThrowData holds the spin source and a running throw count. Singleton.
type ThrowData struct {
	Rng    *rand.Rand
	Throws int
}

var Throw = donburi.NewComponentType[ThrowData]()

// NewThrowData seeds the spin source. The same seed replays the same tumble
// sequence.
func NewThrowData(seed uint64) ThrowData {
	return ThrowData{Rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
