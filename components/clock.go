package components

import "github.com/yohamta/donburi"

// Playback directions
const (
	Forward  = 1
	Backward = -1
)

// ClockData is the ping-pong frame counter. Frame stays within [0, Ceiling].
type ClockData struct {
	Frame     int
	Direction int
	Ceiling   int // largest frame index in any trajectory
}

var Clock = donburi.NewComponentType[ClockData]()
