package components

import (
	"github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

// EnemyData is shared by every enemy variant. Kind selects the variant
// component (PufferFish, Jelly or Endboss) that carries its behaviour.
type EnemyData struct {
	Kind   config.EntityKind
	Damage int
}

var Enemy = donburi.NewComponentType[EnemyData]()

type PufferFishData struct {
	Speed     float64
	Direction float64 // -1 left, +1 right
	MinX      float64
	MaxX      float64
}

var PufferFish = donburi.NewComponentType[PufferFishData]()

type JellyData struct {
	Speed     float64
	MovingUp  bool
	MinY      float64
	MaxY      float64
	Dangerous bool
	IsDead    bool
}

var Jelly = donburi.NewComponentType[JellyData]()
