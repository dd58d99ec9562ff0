package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Collectible
	coin := archetypes.Coin.Spawn(ecs)

	setObject(ecs, coin, cfg.KindCoin, x, y, c.CoinWidth, c.CoinHeight, cfg.Offset{}, tags.ResolvCollectible)
	components.Collectible.SetValue(coin, components.CollectibleData{Kind: cfg.KindCoin})
	setAnimation(coin, cfg.KindCoin, cfg.Idle)
	setTimers(coin)

	return coin
}

func CreatePoison(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Collectible
	poison := archetypes.Poison.Spawn(ecs)

	setObject(ecs, poison, cfg.KindPoison, x, y, c.PoisonWidth, c.PoisonHeight, c.PoisonOffset, tags.ResolvCollectible)
	components.Collectible.SetValue(poison, components.CollectibleData{Kind: cfg.KindPoison})
	setAnimation(poison, cfg.KindPoison, cfg.Idle)
	setTimers(poison)

	return poison
}
