package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/tags"
	"github.com/automoto/sharkie/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution while the match is
// paused or stopped.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if match := GetOrCreateMatch(e.World); match.Paused || match.Stopped {
			return
		}
		system(e)
	}
}

// WithLogicTick wraps a system to run on the logic interval instead of
// every step, and only while the match is running.
func WithLogicTick(system ecs.System) ecs.System {
	return WithGameplayChecks(func(e *ecs.ECS) {
		match := GetOrCreateMatch(e.World)
		match.SinceLogic += cfg.C.Step()
		for match.SinceLogic >= cfg.C.LogicInterval {
			match.SinceLogic -= cfg.C.LogicInterval
			if !match.Running {
				continue
			}
			match.LogicTicks++
			system(e)
		}
	})
}

// StartMatch sets a fresh match running and starts the ambient loop.
func StartMatch(e *ecs.ECS) {
	match := GetOrCreateMatch(e.World)
	if match.Running || match.Stopped || match.Outcome != cfg.OutcomeNone {
		return
	}
	match.Running = true
	GetOrCreateServices(e.World).Sound.PlayLoop(cfg.SoundAmbient)
}

// EndMatch stops the match logic at once, tells the host the outcome after
// the end-screen delay, and tears the match down shortly after.
func EndMatch(e *ecs.ECS, outcome cfg.Outcome) {
	match := GetOrCreateMatch(e.World)
	if !match.Running {
		return
	}
	match.Running = false
	match.Outcome = outcome

	kind := ports.NotifyGameLost
	if outcome == cfg.OutcomeWin {
		kind = ports.NotifyGameWon
	}
	match.Tasks.After(cfg.C.EndScreenDelay, func() {
		notify(e.World, kind)
		match.Tasks.After(cfg.C.TeardownDelay, func() {
			StopGame(e)
		})
	})
}

// StopGame cancels every scheduled task and silences all sound. A stopped
// match cannot be resumed.
func StopGame(e *ecs.ECS) {
	match := GetOrCreateMatch(e.World)
	if match.Stopped {
		return
	}
	match.Stopped = true
	match.Running = false

	eachScheduler(e.World, (*timing.Scheduler).CancelAll)
	GetOrCreateServices(e.World).Sound.StopAll()
}

// PauseMatch suspends the clock and every scheduler.
func PauseMatch(e *ecs.ECS) {
	match := GetOrCreateMatch(e.World)
	if match.Stopped || match.Paused {
		return
	}
	match.Paused = true
	GetOrCreateServices(e.World).Clock.Pause()
	eachScheduler(e.World, (*timing.Scheduler).Pause)
}

// ResumeMatch continues a paused match.
func ResumeMatch(e *ecs.ECS) {
	match := GetOrCreateMatch(e.World)
	if match.Stopped || !match.Paused {
		return
	}
	match.Paused = false
	GetOrCreateServices(e.World).Clock.Resume()
	eachScheduler(e.World, (*timing.Scheduler).Resume)
}

func eachScheduler(w donburi.World, fn func(s *timing.Scheduler)) {
	var scheds []*timing.Scheduler
	components.Timers.Each(w, func(e *donburi.Entry) {
		scheds = append(scheds, components.Timers.Get(e).Scheduler)
	})
	scheds = append(scheds, GetOrCreateMatch(w).Tasks)
	for _, s := range scheds {
		fn(s)
	}
}

// UpdateTimers advances every scheduler by one step, firing frame cadence
// tasks, attack timers and end-of-match tasks.
func UpdateTimers(e *ecs.ECS) {
	step := cfg.C.Step()
	eachScheduler(e.World, func(s *timing.Scheduler) {
		s.Advance(step)
	})
}

// UpdateRemovals deletes enemies whose death sequence finished, picked-up
// collectibles and spent bubbles.
func UpdateRemovals(e *ecs.ECS) {
	var doomed []*donburi.Entry
	components.Death.Each(e.World, func(entry *donburi.Entry) {
		if components.Death.Get(entry).MarkedForRemoval && !entry.HasComponent(tags.Endboss) {
			doomed = append(doomed, entry)
		}
	})
	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		if components.Collectible.Get(entry).State == components.CollectRemoved {
			doomed = append(doomed, entry)
		}
	})
	tags.Bubble.Each(e.World, func(entry *donburi.Entry) {
		if components.Bubble.Get(entry).MarkForRemoval {
			doomed = append(doomed, entry)
		}
	})
	for _, entry := range doomed {
		removeEntry(e, entry)
	}
}

func removeEntry(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if space := spaceOf(e.World); space != nil {
		if obj := components.Object.Get(entry); obj.Body != nil && obj.Body.Space != nil {
			space.Remove(obj.Body)
		}
	}
	if sched := schedulerOf(entry); sched != nil {
		sched.CancelAll()
	}
	e.World.Remove(entry.Entity())
}

// IsMatchStopped reports whether StopGame has run.
func IsMatchStopped(e *ecs.ECS) bool {
	return GetOrCreateMatch(e.World).Stopped
}
