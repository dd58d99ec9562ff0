package archetypes

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Energy,
		components.Death,
		components.Animation,
		components.Timers,
	)
	PufferFish = newArchetype(
		tags.Enemy,
		tags.PufferFish,
		components.Enemy,
		components.PufferFish,
		components.Object,
		components.Energy,
		components.Death,
		components.Animation,
		components.Timers,
	)
	JellyFish = newArchetype(
		tags.Enemy,
		tags.JellyFish,
		components.Enemy,
		components.Jelly,
		components.Object,
		components.Energy,
		components.Death,
		components.Animation,
		components.Timers,
	)
	DangerousJellyFish = newArchetype(
		tags.Enemy,
		tags.DangerousJellyFish,
		components.Enemy,
		components.Jelly,
		components.Object,
		components.Energy,
		components.Death,
		components.Animation,
		components.Timers,
	)
	Endboss = newArchetype(
		tags.Enemy,
		tags.Endboss,
		components.Enemy,
		components.Endboss,
		components.Object,
		components.Energy,
		components.Death,
		components.Animation,
		components.Timers,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Collectible,
		components.Object,
		components.Animation,
		components.Timers,
	)
	Poison = newArchetype(
		tags.Poison,
		components.Collectible,
		components.Object,
		components.Animation,
		components.Timers,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Bubble,
		components.Object,
		components.Animation,
	)
	Background = newArchetype(
		tags.Background,
		components.Object,
	)
	Light = newArchetype(
		tags.Light,
		components.Object,
		components.Animation,
	)
	StatusBar = newArchetype(
		components.StatusBar,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Match = newArchetype(
		components.Match,
	)
	Services = newArchetype(
		components.Services,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
