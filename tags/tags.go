package tags

import "github.com/yohamta/donburi"

var (
	Tracked    = donburi.NewTag().SetName("Tracked")
	Controlled = donburi.NewTag().SetName("Controlled")
)

// Resolv tags for the proximity broad phase
const (
	ResolvBody       = "body"
	ResolvTracked    = "tracked"
	ResolvControlled = "controlled"
)
