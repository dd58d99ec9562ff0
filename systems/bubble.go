package systems

import (
	"math"

	"github.com/automoto/sharkie/components"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBubbles moves every bubble and marks the ones past their range.
func UpdateBubbles(ecs *ecs.ECS) {
	tags.Bubble.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bubble.Get(e)
		if b.MarkForRemoval {
			return
		}
		obj := components.Object.Get(e)
		obj.X += b.Direction * b.Speed
		if math.Abs(obj.X-b.OriginX) > b.MaxRange {
			b.MarkForRemoval = true
		}
		SyncObject(e)
	})
}

// RemoveMarkedBubbles deletes bubbles that hit something or ran out of range.
func RemoveMarkedBubbles(ecs *ecs.ECS) {
	var marked []*donburi.Entry
	tags.Bubble.Each(ecs.World, func(e *donburi.Entry) {
		if components.Bubble.Get(e).MarkForRemoval {
			marked = append(marked, e)
		}
	})
	for _, e := range marked {
		removeEntry(ecs, e)
	}
}
