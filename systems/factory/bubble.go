package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBubble spawns a projectile moving right when direction > 0 and
// left otherwise. poisoned is fixed for the bubble's lifetime.
func CreateBubble(ecs *ecs.ECS, x, y, direction float64, poisoned bool) *donburi.Entry {
	c := cfg.Bubble
	bubble := archetypes.Bubble.Spawn(ecs)

	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	setObject(ecs, bubble, cfg.KindBubble, x, y, c.Width, c.Height, cfg.Offset{}, tags.ResolvBubble)
	components.Bubble.SetValue(bubble, components.BubbleData{
		Direction: direction,
		OriginX:   x,
		MaxRange:  c.MaxRange,
		Speed:     c.Speed,
		Poisoned:  poisoned,
	})
	state := cfg.Idle
	if poisoned {
		state = cfg.Poisoned
	}
	setAnimation(bubble, cfg.KindBubble, state)

	return bubble
}
