package components

import (
	"github.com/automoto/sharkie/timing"
	"github.com/yohamta/donburi"
)

// TimersData owns every scheduled task of one entity. Started is set once
// the entity's recurring behaviour tasks are registered.
type TimersData struct {
	*timing.Scheduler
	Started bool
}

var Timers = donburi.NewComponentType[TimersData]()
