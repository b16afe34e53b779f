package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Can     = donburi.NewTag().SetName("Can")
	Slipper = donburi.NewTag().SetName("Slipper")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the field space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvCan    = "Can"
)
