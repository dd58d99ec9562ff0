package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collect starts the pickup float of an idle collectible. It reports
// whether the pickup started.
func Collect(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Collectible) {
		return false
	}
	c := components.Collectible.Get(e)
	if c.State != components.CollectIdle {
		return false
	}
	obj := components.Object.Get(e)

	c.State = components.CollectBeingCollected
	c.StartY = obj.Y
	c.Tween = gween.New(
		float32(obj.Y),
		float32(obj.Y+cfg.Collectible.CollectRise),
		float32(cfg.Collectible.CollectDuration.Seconds()),
		ease.OutQuad,
	)
	return true
}

// UpdateCollectibles advances pickup floats. A finished float leaves the
// collectible Removed for UpdateRemovals.
func UpdateCollectibles(ecs *ecs.ECS) {
	dt := float32(cfg.C.Step().Seconds())
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		if c.State != components.CollectBeingCollected || c.Tween == nil {
			return
		}
		y, finished := c.Tween.Update(dt)
		components.Object.Get(e).Y = float64(y)
		if finished {
			c.State = components.CollectRemoved
		}
	})
}
