package components

import (
	"github.com/Gllitch404/TrabalhoCG/shared/trajdata"
	"github.com/yohamta/donburi"
)

type TrajectoryData struct {
	*trajdata.Trajectory
}

var Trajectory = donburi.NewComponentType[TrajectoryData]()
