package systems

import (
	"math"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

// endbossFrame runs the boss on its frame cadence: the spawn sequence once
// the character comes close, then attack and return movement.
func endbossFrame(e *donburi.Entry) {
	if advanceDeathFrames(e) {
		return
	}

	boss := components.Endboss.Get(e)
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e)

	switch boss.Phase {
	case components.BossDormant:
		c, ok := characterEntry(e.World)
		if ok && components.Object.Get(c).X > cfg.Endboss.TriggerX {
			boss.HadFirstContact = true
			boss.Phase = components.BossSpawning
			anim.PlayAnimation(cfg.Spawning)
		}
		return
	case components.BossSpawning:
		if anim.CurrentAnimation == nil || anim.CurrentAnimation.Played() >= cfg.Endboss.SpawnFrames {
			boss.SpawnCompleted = true
			boss.Phase = components.BossActive
			anim.PlayAnimation(cfg.Idle)
			showBossBar(e.World)
			return
		}
		anim.CurrentAnimation.Advance()
		return
	case components.BossDead:
		return
	}

	switch {
	case boss.IsAttacking:
		obj.X += attackDirection(e) * boss.AttackSpeed
	case boss.IsReturning:
		returnStep(boss, obj)
	}
	SyncObject(e)

	state := cfg.Idle
	if boss.IsAttacking {
		state = cfg.Attack
	}
	if boss.Hurting {
		if anim.CurrentAnimation != nil && !anim.CurrentAnimation.Finished() {
			anim.CurrentAnimation.Advance()
			return
		}
		boss.Hurting = false
		anim.PlayAnimation(state)
		return
	}
	playFrame(anim, state)
}

// returnStep moves the boss one frame toward its home X and snaps onto it
// when the step would reach or pass it.
func returnStep(boss *components.EndbossData, obj *components.ObjectData) {
	dx := boss.OriginalX - obj.X
	if math.Abs(dx) <= boss.ReturnSpeed {
		obj.X = boss.OriginalX
		boss.IsReturning = false
		return
	}
	obj.X += math.Copysign(boss.ReturnSpeed, dx)
}

func attackDirection(e *donburi.Entry) float64 {
	c, ok := characterEntry(e.World)
	if !ok {
		return -1
	}
	if components.Object.Get(c).X > components.Object.Get(e).X {
		return 1
	}
	return -1
}

// endbossAttack fires on the attack interval. The boss bites toward the
// character for the attack duration, then swims home.
func endbossAttack(e *donburi.Entry) {
	boss := components.Endboss.Get(e)
	if !boss.SpawnCompleted || boss.IsAttacking || boss.IsReturning || !isLive(e) {
		return
	}
	boss.IsAttacking = true
	GetOrCreateServices(e.World).Sound.PlayLoop(cfg.SoundEndbossBite)

	boss.AttackEnd = schedulerOf(e).After(cfg.Endboss.AttackDuration, entryFn(e.World, e.Entity(), func(e *donburi.Entry) {
		boss := components.Endboss.Get(e)
		if !isLive(e) {
			return
		}
		boss.IsAttacking = false
		boss.IsReturning = true
		GetOrCreateServices(e.World).Sound.Stop(cfg.SoundEndbossBite)
	}))
}

func startBossHurt(e *donburi.Entry) {
	boss := components.Endboss.Get(e)
	if boss.Phase != components.BossActive {
		return
	}
	boss.Hurting = true
	components.Animation.Get(e).PlayAnimation(cfg.Hurt)
}
