package components

import (
	"github.com/automoto/sharkie/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	*assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
