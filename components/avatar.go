package components

import "github.com/yohamta/donburi"

type AvatarData struct {
	Speed float64 // world units per tick along the longer world axis
}

var Avatar = donburi.NewComponentType[AvatarData]()
