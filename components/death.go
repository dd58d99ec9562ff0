package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DeathMode int

const (
	DeathNone DeathMode = iota
	// Death frames once, final frame, then an endless float
	DeathFloat
	// Death frames once, then hold the final frame
	DeathFreeze
	// Death frames, then drift up until off screen
	DeathFlyAway
	// Fall, spin and fade
	DeathSpiral
)

// DeathData tracks an entity's death sequence. HasDied and IsFlyingAway
// are latches and never reset within a match.
type DeathData struct {
	HasDied          bool
	IsFlyingAway     bool
	Mode             DeathMode
	FramesDone       bool
	MarkedForRemoval bool

	// Float
	FloatBaseY float64
	FloatUp    bool
	FloatTween *gween.Tween

	// Spiral
	SpeedY float64
}

var Death = donburi.NewComponentType[DeathData]()
