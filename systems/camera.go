package systems

import (
	"github.com/automoto/sharkie/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the character at the left edge of the view.
func UpdateCamera(ecs *ecs.ECS) {
	e, ok := characterEntry(ecs.World)
	if !ok {
		return
	}
	GetOrCreateCamera(ecs.World).X = -components.Object.Get(e).X
}
