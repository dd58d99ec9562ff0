package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/tags"
	"github.com/automoto/sharkie/timing"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateServices returns the singleton Services component, creating
// silent defaults if the host has not installed any.
func GetOrCreateServices(w donburi.World) *components.ServicesData {
	if _, ok := components.Services.First(w); !ok {
		ent := w.Entry(w.Create(components.Services))
		components.Services.SetValue(ent, components.ServicesData{
			Keyboard: &ports.Keyboard{},
			Sound:    ports.NopSound{},
			Notifier: ports.NopNotifier{},
			Clock:    timing.NewClock(),
			Rand:     rand.New(rand.NewSource(cfg.C.Seed)),
		})
	}

	ent, _ := components.Services.First(w)
	return components.Services.Get(ent)
}

// GetOrCreateMatch returns the singleton Match component, creating if needed.
func GetOrCreateMatch(w donburi.World) *components.MatchData {
	if _, ok := components.Match.First(w); !ok {
		ent := w.Entry(w.Create(components.Match))
		components.Match.SetValue(ent, components.MatchData{
			Tasks: timing.NewScheduler(),
		})
	}

	ent, _ := components.Match.First(w)
	return components.Match.Get(ent)
}

// GetOrCreateCamera returns the singleton Camera component, creating if needed.
func GetOrCreateCamera(w donburi.World) *components.CameraData {
	if _, ok := components.Camera.First(w); !ok {
		w.Create(components.Camera)
	}

	ent, _ := components.Camera.First(w)
	return components.Camera.Get(ent)
}

func now(w donburi.World) time.Duration {
	return GetOrCreateServices(w).Clock.Now()
}

func playSound(w donburi.World, id cfg.SoundID) {
	if s := GetOrCreateServices(w).Sound; s != nil {
		s.Play(id)
	}
}

func notify(w donburi.World, kind ports.NotifyKind) {
	if n := GetOrCreateServices(w).Notifier; n != nil {
		n.Notify(kind)
	}
}

func characterEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Character.First(w)
}

func endbossEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Endboss.First(w)
}

func spaceOf(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}

func levelOf(w donburi.World) *components.LevelData {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}

// schedulerOf returns the entity's scheduler, or nil if it has none.
func schedulerOf(e *donburi.Entry) *timing.Scheduler {
	if !e.HasComponent(components.Timers) {
		return nil
	}
	return components.Timers.Get(e).Scheduler
}

// entryFn resolves entity at call time so scheduled tasks never touch a
// removed entity.
func entryFn(w donburi.World, entity donburi.Entity, fn func(e *donburi.Entry)) func() {
	return func() {
		if !w.Valid(entity) {
			return
		}
		fn(w.Entry(entity))
	}
}

func isLive(e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	if !e.HasComponent(components.Death) {
		return true
	}
	d := components.Death.Get(e)
	return !d.HasDied && !d.IsFlyingAway && !d.MarkedForRemoval
}

// UpdateClock advances the game clock by one step.
func UpdateClock(e *ecs.ECS) {
	GetOrCreateServices(e.World).Clock.Advance(cfg.C.Step())
}
