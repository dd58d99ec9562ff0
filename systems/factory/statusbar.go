package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStatusBars spawns the four HUD bars. The boss bar stays hidden
// until the boss has spawned.
func CreateStatusBars(ecs *ecs.ECS) {
	b := cfg.Bars
	createBar(ecs, components.BarLife, b.Life, 0, 100, true)
	createBar(ecs, components.BarCoin, b.Coin, b.CoinMax, 0, true)
	createBar(ecs, components.BarPoison, b.Poison, b.PoisonMax, 0, true)
	createBar(ecs, components.BarBoss, b.Boss, 0, 100, false)
}

func createBar(ecs *ecs.ECS, kind components.BarKind, rect cfg.BarRect, maxItems int, percentage float64, visible bool) *donburi.Entry {
	bar := archetypes.StatusBar.Spawn(ecs)
	components.StatusBar.SetValue(bar, components.StatusBarData{
		Kind:       kind,
		Percentage: percentage,
		Max:        maxItems,
		Rect:       rect,
		Visible:    visible,
	})
	return bar
}
