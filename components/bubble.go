package components

import "github.com/yohamta/donburi"

type BubbleData struct {
	Direction float64 // +1 right, -1 left
	OriginX   float64
	MaxRange  float64
	Speed     float64
	// Fixed when the bubble is created
	Poisoned       bool
	MarkForRemoval bool
}

var Bubble = donburi.NewComponentType[BubbleData]()
