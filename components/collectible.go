package components

import (
	"time"

	"github.com/automoto/sharkie/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CollectState int

const (
	CollectIdle CollectState = iota
	CollectBeingCollected
	CollectRemoved
)

type CollectibleData struct {
	Kind  config.EntityKind // KindCoin or KindPoison
	State CollectState

	// Collect float
	StartY float64
	Tween  *gween.Tween

	// Coins rest between idle cycles
	RestUntil time.Duration
}

var Collectible = donburi.NewComponentType[CollectibleData]()
