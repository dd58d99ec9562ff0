package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameTicks dispatches the frame-cadence behaviour of each entity kind.
var frameTicks = map[cfg.EntityKind]func(e *donburi.Entry){
	cfg.KindCharacter:          characterFrame,
	cfg.KindPufferFish:         pufferFrame,
	cfg.KindJellyFish:          jellyFrame,
	cfg.KindDangerousJellyFish: jellyFrame,
	cfg.KindEndboss:            endbossFrame,
	cfg.KindCoin:               coinFrame,
	cfg.KindPoison:             loopFrame,
}

// UpdateBehaviours registers the recurring tasks of every entity that has
// not been started yet. Entities start with the match.
func UpdateBehaviours(ecs *ecs.ECS) {
	if !GetOrCreateMatch(ecs.World).Running {
		return
	}

	var pending []*donburi.Entry
	components.Timers.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Timers.Get(e).Started {
			pending = append(pending, e)
		}
	})
	for _, e := range pending {
		startBehaviour(e)
	}
}

func startBehaviour(e *donburi.Entry) {
	timers := components.Timers.Get(e)
	timers.Started = true

	kind := kindOf(e)
	if tick, ok := frameTicks[kind]; ok {
		timers.Every(cfg.C.FrameInterval, entryFn(e.World, e.Entity(), tick))
	}
	if kind == cfg.KindEndboss {
		boss := components.Endboss.Get(e)
		boss.AttackTask = timers.Every(cfg.Endboss.AttackInterval, entryFn(e.World, e.Entity(), endbossAttack))
	}
}

// playFrame shows state, advancing one frame if it was already showing.
func playFrame(anim *components.AnimationData, state cfg.StateID) {
	if anim.CurrentSheet == state && anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Advance()
		return
	}
	anim.PlayAnimation(state)
}

func loopFrame(e *donburi.Entry) {
	if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Advance()
	}
}

func jellyFrame(e *donburi.Entry) {
	if advanceDeathFrames(e) {
		return
	}
	loopFrame(e)
}

// pufferFrame cycles the idle set. The fish puffs up on part of the cycle,
// and its hitbox follows.
func pufferFrame(e *donburi.Entry) {
	if advanceDeathFrames(e) {
		return
	}
	loopFrame(e)
	applyPufferOffset(e)
}

func applyPufferOffset(e *donburi.Entry) {
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e)
	obj.Offset = cfg.PufferFish.Offset
	if anim.CurrentAnimation != nil {
		if f := anim.CurrentAnimation.Frame(); f >= cfg.PufferFish.InflatedFirst && f <= cfg.PufferFish.InflatedLast {
			obj.Offset = cfg.PufferFish.InflatedOffset
		}
	}
	SyncObject(e)
}

// coinFrame plays the coin cycle, then rests before the next one.
func coinFrame(e *donburi.Entry) {
	c := components.Collectible.Get(e)
	t := now(e.World)
	if t < c.RestUntil {
		return
	}
	anim := components.Animation.Get(e)
	if anim.CurrentAnimation == nil {
		return
	}
	anim.CurrentAnimation.Advance()
	if anim.CurrentAnimation.Frame() == 0 {
		c.RestUntil = t + cfg.Collectible.CoinCyclePause
	}
}
