package factory

import (
	"github.com/automoto/sharkie/archetypes"
	"github.com/automoto/sharkie/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
