package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/assets"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin extends the resolv space past the level so projectiles and
// the boss near the right edge still register.
const spaceMargin = 1024

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level})
	return entry
}

// PopulateLevel builds every entity of level in a fresh world: the space,
// camera, decorations, enemies, collectibles, HUD bars and the character.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level, rng *rand.Rand) error {
	CreateLevel(ecs, level)
	CreateSpace(ecs, level.Width+spaceMargin, level.Height+spaceMargin, 16, 16)
	CreateCamera(ecs)

	for _, bg := range level.Backgrounds {
		CreateBackground(ecs, bg.Image, bg.X, bg.Y, bg.W, bg.H)
	}
	for _, l := range level.Lights {
		CreateLight(ecs, l.X, l.Y, l.W, l.H)
	}
	for _, s := range level.Enemies {
		if _, err := CreateEnemy(ecs, s.Kind, s.X, s.Y, rng); err != nil {
			return fmt.Errorf("populate level %s: %w", level.Name, err)
		}
	}
	for _, s := range level.Coins {
		CreateCoin(ecs, s.X, s.Y)
	}
	for _, s := range level.Poison {
		CreatePoison(ecs, s.X, s.Y)
	}

	CreateStatusBars(ecs)
	CreateCharacter(ecs, cfg.Character.StartX, cfg.Character.StartY)
	return nil
}
