package systems

import (
	"math"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/timing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Die starts the death sequence of a character or boss. It only acts once.
// The character floats after its death frames; the boss holds its last one.
func Die(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Death) {
		return
	}
	death := components.Death.Get(e)
	if death.HasDied {
		return
	}
	death.HasDied = true
	death.Mode = components.DeathFloat

	if e.HasComponent(components.Endboss) {
		death.Mode = components.DeathFreeze
		boss := components.Endboss.Get(e)
		if boss.IsAttacking {
			GetOrCreateServices(e.World).Sound.Stop(cfg.SoundEndbossBite)
		}
		boss.Phase = components.BossDead
		boss.IsAttacking = false
		boss.IsReturning = false
		boss.Hurting = false
	}
	if e.HasComponent(components.Character) {
		components.Character.Get(e).IsAttacking = false
	}
	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).PlayAnimation(cfg.Dead)
	}
}

// Dead sends a projectile-killed enemy flying up and off the screen.
func Dead(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Death) {
		return
	}
	death := components.Death.Get(e)
	if death.IsFlyingAway || death.HasDied {
		return
	}
	death.IsFlyingAway = true
	death.HasDied = true
	death.Mode = components.DeathFlyAway
	if e.HasComponent(components.Jelly) {
		components.Jelly.Get(e).IsDead = true
	}
	if e.HasComponent(components.Energy) {
		components.Energy.Get(e).Current = 0
	}
	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).PlayAnimation(cfg.Dead)
	}
}

// Spiral knocks a melee-killed enemy into a falling spin that fades out.
func Spiral(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Death) {
		return
	}
	death := components.Death.Get(e)
	if death.IsFlyingAway || death.HasDied {
		return
	}
	death.IsFlyingAway = true
	death.HasDied = true
	death.Mode = components.DeathSpiral
	death.SpeedY = cfg.Death.SpiralSpeedY
	if e.HasComponent(components.Energy) {
		components.Energy.Get(e).Current = 0
	}

	sched := schedulerOf(e)
	if sched == nil {
		death.MarkedForRemoval = true
		return
	}
	var h timing.Handle
	h = sched.Every(cfg.Death.SpiralInterval, entryFn(e.World, e.Entity(), func(e *donburi.Entry) {
		if spiralStep(e) {
			schedulerOf(e).Cancel(h)
		}
	}))
}

// spiralStep moves one spiral interval and reports whether the sequence is
// over.
func spiralStep(e *donburi.Entry) bool {
	obj := components.Object.Get(e)
	death := components.Death.Get(e)
	d := cfg.Death

	obj.Y += death.SpeedY
	death.SpeedY += d.SpiralGravity
	obj.Rotation += d.SpiralRotation
	obj.Opacity -= d.SpiralFade

	if obj.Opacity <= 0 || obj.Y > d.SpiralMaxY {
		obj.Opacity = math.Max(0, obj.Opacity)
		death.MarkedForRemoval = true
		return true
	}
	return false
}

// advanceDeathFrames plays the death set of e on its frame cadence and
// reports whether e is in a death sequence.
func advanceDeathFrames(e *donburi.Entry) bool {
	death := components.Death.Get(e)
	switch death.Mode {
	case components.DeathNone:
		return false
	case components.DeathSpiral:
		return true
	}

	anim := components.Animation.Get(e)
	if death.Mode == components.DeathFlyAway {
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Advance()
		}
		return true
	}

	if death.FramesDone {
		return true
	}
	if anim.CurrentAnimation == nil || anim.CurrentAnimation.Finished() {
		death.FramesDone = true
		if death.Mode == components.DeathFloat {
			startFloat(e)
		}
		return true
	}
	anim.CurrentAnimation.Advance()
	return true
}

func startFloat(e *donburi.Entry) {
	obj := components.Object.Get(e)
	death := components.Death.Get(e)
	death.FloatBaseY = obj.Y
	death.FloatUp = true
	// First quarter period rises from the resting position
	a := float32(cfg.Death.FloatAmplitude)
	quarter := float32(cfg.Death.FloatPeriod.Seconds() / 4)
	death.FloatTween = gween.New(float32(obj.Y), float32(obj.Y)-a, quarter, ease.OutSine)
}

// newFloatTween eases one half period of the float: from the lower bound
// to the upper one, or back.
func newFloatTween(death *components.DeathData) *gween.Tween {
	a := float32(cfg.Death.FloatAmplitude)
	half := float32(cfg.Death.FloatPeriod.Seconds() / 2)
	base := float32(death.FloatBaseY)
	if death.FloatUp {
		return gween.New(base+a, base-a, half, ease.InOutSine)
	}
	return gween.New(base-a, base+a, half, ease.InOutSine)
}

// UpdateDeaths moves entities through their death motion: the upward
// drift of fly-away kills and the endless float after Die.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := float32(cfg.C.Step().Seconds())
	screenTop := 0.0

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		obj := components.Object.Get(e)

		switch death.Mode {
		case components.DeathFlyAway:
			if death.MarkedForRemoval {
				return
			}
			obj.Y -= cfg.Jelly.FlyAwaySpeed
			if obj.Y+obj.H < screenTop {
				death.MarkedForRemoval = true
			}
		case components.DeathFloat:
			if death.FloatTween == nil {
				return
			}
			y, finished := death.FloatTween.Update(dt)
			obj.Y = float64(y)
			if finished {
				death.FloatUp = !death.FloatUp
				death.FloatTween = newFloatTween(death)
			}
		}
	})
}
