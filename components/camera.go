package components

import "github.com/yohamta/donburi"

// CameraData translates the world layer. X is the negated character X.
type CameraData struct {
	X float64
}

var Camera = donburi.NewComponentType[CameraData]()
