package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the enemy variant named by kind.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EntityKind, x, y float64, rng *rand.Rand) (*donburi.Entry, error) {
	switch kind {
	case cfg.KindPufferFish:
		return CreatePufferFish(ecs, x, y, rng), nil
	case cfg.KindJellyFish:
		return CreateJellyFish(ecs, x, y, false, rng), nil
	case cfg.KindDangerousJellyFish:
		return CreateJellyFish(ecs, x, y, true, rng), nil
	case cfg.KindEndboss:
		return CreateEndboss(ecs, x, y), nil
	}
	return nil, fmt.Errorf("unknown enemy kind %s", kind)
}

func CreatePufferFish(ecs *ecs.ECS, x, y float64, rng *rand.Rand) *donburi.Entry {
	c := cfg.PufferFish
	puffer := archetypes.PufferFish.Spawn(ecs)

	setObject(ecs, puffer, cfg.KindPufferFish, x, y, c.Width, c.Height, c.Offset,
		tags.ResolvEnemy, tags.ResolvPufferFish)
	components.Enemy.SetValue(puffer, components.EnemyData{
		Kind:   cfg.KindPufferFish,
		Damage: c.Damage,
	})
	components.PufferFish.SetValue(puffer, components.PufferFishData{
		Speed:     c.MinSpeed + rng.Float64()*c.SpeedRange,
		Direction: -1,
		MinX:      c.MinX,
		MaxX:      c.MaxX - c.Width,
	})
	setEnergy(puffer, 1)
	setAnimation(puffer, cfg.KindPufferFish, cfg.Idle)
	setTimers(puffer)

	return puffer
}

func CreateJellyFish(ecs *ecs.ECS, x, y float64, dangerous bool, rng *rand.Rand) *donburi.Entry {
	c := cfg.Jelly
	kind, variant, archetype := cfg.KindJellyFish, c.Normal, archetypes.JellyFish
	resolvTags := []string{tags.ResolvEnemy, tags.ResolvJellyFish}
	if dangerous {
		kind, variant, archetype = cfg.KindDangerousJellyFish, c.Dangerous, archetypes.DangerousJellyFish
	}
	jelly := archetype.Spawn(ecs)

	setObject(ecs, jelly, kind, x, y, c.Width, c.Height, c.Offset, resolvTags...)
	components.Enemy.SetValue(jelly, components.EnemyData{
		Kind:   kind,
		Damage: variant.Damage,
	})
	components.Jelly.SetValue(jelly, components.JellyData{
		Speed:     variant.MinSpeed + rng.Float64()*variant.SpeedRange,
		MovingUp:  true,
		MinY:      c.MinY,
		MaxY:      c.MaxY,
		Dangerous: dangerous,
	})
	setEnergy(jelly, 1)
	setAnimation(jelly, kind, cfg.Idle)
	setTimers(jelly)

	return jelly
}

func CreateEndboss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Endboss
	boss := archetypes.Endboss.Spawn(ecs)

	setObject(ecs, boss, cfg.KindEndboss, x, y, c.Width, c.Height, c.Offset,
		tags.ResolvEnemy, tags.ResolvEndboss)
	components.Enemy.SetValue(boss, components.EnemyData{
		Kind:   cfg.KindEndboss,
		Damage: c.Damage,
	})
	components.Endboss.SetValue(boss, components.EndbossData{
		Phase:       components.BossDormant,
		AttackSpeed: c.AttackSpeed,
		ReturnSpeed: c.ReturnSpeed,
		OriginalX:   x,
	})
	setEnergy(boss, c.Energy)
	// Dormant until the character comes close; nothing is drawn until then
	components.Animation.SetValue(boss, components.NewAnimationData(cfg.KindEndboss, cfg.StateNone))
	setTimers(boss)

	return boss
}
