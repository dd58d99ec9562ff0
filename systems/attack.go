package systems

import (
	"time"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FinAttack starts a melee slap. Every live puffer fish inside the widened
// attack box is knocked out at once. It reports whether the attack started.
func FinAttack(ecs *ecs.ECS) bool {
	e, ok := beginAttack(ecs, cfg.FinSlap)
	if !ok {
		return false
	}

	obj := components.Object.Get(e)
	obj.Offset = cfg.Character.AttackOffset
	SyncObject(e)
	playSound(ecs.World, cfg.SoundFinSlap)

	for _, target := range Overlapping(e, tags.ResolvPufferFish) {
		if isLive(target) {
			Spiral(target)
		}
	}

	schedulerOf(e).After(cfg.Character.MeleeDuration, entryFn(ecs.World, e.Entity(), func(e *donburi.Entry) {
		components.Object.Get(e).Offset = cfg.Character.Offset
		SyncObject(e)
		endAttack(e)
	}))
	return true
}

// BubbleAttack starts the bubble trap. The bubble leaves the mouth part way
// through the animation; it is poisoned if every bottle has been collected
// by then. It reports whether the attack started.
func BubbleAttack(ecs *ecs.ECS) bool {
	e, ok := beginAttack(ecs, cfg.BubbleTrap)
	if !ok {
		return false
	}
	playSound(ecs.World, cfg.SoundBubbleAttack)

	c := cfg.Character
	sched := schedulerOf(e)
	spawnAt := time.Duration(float64(c.BubbleDuration) * c.BubbleSpawnAt)
	sched.After(spawnAt, entryFn(ecs.World, e.Entity(), func(e *donburi.Entry) {
		if isLive(e) {
			spawnBubble(ecs, e)
		}
	}))
	sched.After(c.BubbleDuration, entryFn(ecs.World, e.Entity(), endAttack))
	return true
}

func beginAttack(ecs *ecs.ECS, attack cfg.StateID) (*donburi.Entry, bool) {
	e, ok := characterEntry(ecs.World)
	if !ok || !isLive(e) || schedulerOf(e) == nil {
		return nil, false
	}
	char := components.Character.Get(e)
	if char.IsAttacking {
		return nil, false
	}
	char.IsAttacking = true
	char.Attack = attack
	markInput(e)
	components.Animation.Get(e).PlayAnimation(attack)
	return e, true
}

func endAttack(e *donburi.Entry) {
	char := components.Character.Get(e)
	char.IsAttacking = false
	char.Attack = cfg.StateNone
}

func spawnBubble(ecs *ecs.ECS, e *donburi.Entry) *donburi.Entry {
	c := cfg.Character
	obj := components.Object.Get(e)
	char := components.Character.Get(e)

	x, direction := obj.X+c.BubbleOffsetRight, 1.0
	if obj.Mirrored {
		x, direction = obj.X+c.BubbleOffsetLeft, -1.0
	}
	poisoned := char.PoisonBottles >= c.MaxPoison
	return factory.CreateBubble(ecs, x, obj.Y+c.BubbleOffsetY, direction, poisoned)
}
