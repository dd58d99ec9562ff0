package factory

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/timing"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// setObject fills the Object component of e and registers its hitbox in the
// resolv space, if the world has one.
func setObject(ecs *ecs.ECS, e *donburi.Entry, kind cfg.EntityKind, x, y, w, h float64, offset cfg.Offset, resolvTags ...string) {
	data := components.ObjectData{
		Kind:    kind,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Offset:  offset,
		Opacity: 1,
	}

	if len(resolvTags) > 0 {
		o := offset
		body := resolv.NewObject(x-o.Left, y-o.Top, max(0, w+o.Left+o.Right), max(0, h+o.Top+o.Bottom), resolvTags...)
		body.Data = e
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Add(body)
		}
		data.Body = body
	}

	components.Object.SetValue(e, data)
}

func setAnimation(e *donburi.Entry, kind cfg.EntityKind, initial cfg.StateID) {
	components.Animation.SetValue(e, components.NewAnimationData(kind, initial))
}

func setTimers(e *donburi.Entry) {
	components.Timers.SetValue(e, components.TimersData{Scheduler: timing.NewScheduler()})
}

func setEnergy(e *donburi.Entry, energy int) {
	components.Energy.SetValue(e, components.EnergyData{Current: energy, Max: energy})
}
