package systems

import (
	"github.com/automoto/sharkie/components"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePufferFish patrols every live puffer fish between its bounds.
func UpdatePufferFish(ecs *ecs.ECS) {
	tags.PufferFish.Each(ecs.World, func(e *donburi.Entry) {
		if !isLive(e) {
			return
		}
		p := components.PufferFish.Get(e)
		obj := components.Object.Get(e)

		obj.X += p.Direction * p.Speed
		if obj.X <= p.MinX {
			p.Direction = 1
		} else if obj.X >= p.MaxX {
			p.Direction = -1
		}
		// The sprite faces left
		obj.Mirrored = p.Direction > 0
		SyncObject(e)
	})
}

// UpdateJellyFish bobs every live jellyfish between its Y bounds.
func UpdateJellyFish(ecs *ecs.ECS) {
	components.Jelly.Each(ecs.World, func(e *donburi.Entry) {
		j := components.Jelly.Get(e)
		if j.IsDead || !isLive(e) {
			return
		}
		obj := components.Object.Get(e)

		if j.MovingUp {
			obj.Y -= j.Speed
			if obj.Y <= j.MinY {
				j.MovingUp = false
			}
		} else {
			obj.Y += j.Speed
			if obj.Y >= j.MaxY {
				j.MovingUp = true
			}
		}
		SyncObject(e)
	})
}
