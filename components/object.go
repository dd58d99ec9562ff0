package components

import (
	"github.com/automoto/sharkie/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the sprite rectangle of an entity. Body is its hitbox in
// the resolv space, refreshed by systems.SyncObject.
type ObjectData struct {
	Kind config.EntityKind

	X, Y, W, H float64
	Offset     config.Offset
	Mirrored   bool

	// Render only
	Rotation float64 // degrees
	Opacity  float64
	Image    string // static image handle; animated entities use Animation

	Body *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
