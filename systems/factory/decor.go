package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBackground(ecs *ecs.ECS, image string, x, y, w, h float64) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	setObject(ecs, bg, cfg.KindBackground, x, y, w, h, cfg.Offset{})
	components.Object.Get(bg).Image = image
	return bg
}

func CreateLight(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	setObject(ecs, light, cfg.KindLight, x, y, w, h, cfg.Offset{})
	setAnimation(light, cfg.KindLight, cfg.Static)
	return light
}
