package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCharacter(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	setObject(ecs, character, cfg.KindCharacter, x, y, cfg.Character.Width, cfg.Character.Height,
		cfg.Character.Offset, tags.ResolvCharacter)
	components.Character.SetValue(character, components.CharacterData{
		Speed: cfg.Character.Speed,
	})
	setEnergy(character, cfg.Character.Energy)
	setAnimation(character, cfg.KindCharacter, cfg.Idle)
	setTimers(character)

	return character
}
