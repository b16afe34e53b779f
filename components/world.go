package components

import (
	"github.com/automoto/tumbang-preso/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData wraps the rigid-body world. Singleton.
type PhysicsWorldData struct {
	*physics.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// Space is the ground-plane collision space used for player movement.
// Singleton.
var Space = donburi.NewComponentType[resolv.Space]()

// ObjectData links an entity to its footprint in the field space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
