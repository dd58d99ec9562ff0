package components

import (
	"time"

	"github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

type EnergyData struct {
	Current int
	Max     int

	// Last successful hit on the game clock
	HasBeenHit bool
	LastHit    time.Duration
	// Weak reference; the source may already be gone
	LastSource     donburi.Entity
	LastSourceKind config.EntityKind
}

var Energy = donburi.NewComponentType[EnergyData]()
