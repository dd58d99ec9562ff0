package systems

import (
	"math"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacter moves the character from the keyboard record.
func UpdateCharacter(ecs *ecs.ECS) {
	e, ok := characterEntry(ecs.World)
	if !ok || !isLive(e) {
		return
	}

	svc := GetOrCreateServices(ecs.World)
	kb := svc.Keyboard
	obj := components.Object.Get(e)
	char := components.Character.Get(e)

	levelEnd := math.Inf(1)
	if level := levelOf(ecs.World); level != nil && level.Level != nil {
		levelEnd = level.LevelEndX
	}

	moved := false
	if kb.Right && obj.X < levelEnd {
		obj.X += char.Speed
		obj.Mirrored = false
		moved = true
	}
	if kb.Left && obj.X > 0 {
		obj.X -= char.Speed
		obj.Mirrored = true
		moved = true
	}
	if kb.Up && obj.Y > cfg.Character.TopLimit {
		obj.Y -= char.Speed
		moved = true
	}
	if kb.Down && obj.Y < cfg.Character.BottomLimit {
		obj.Y += char.Speed
		moved = true
	}

	if moved {
		svc.Sound.Play(cfg.SoundSwim)
		markInput(e)
	}
	SyncObject(e)
}

func markInput(e *donburi.Entry) {
	char := components.Character.Get(e)
	char.LastInput = now(e.World)
	char.Snoring = false
}

// characterFrame picks the character's animation on the frame cadence:
// dead, hurt, attacking, swimming, inactive, then idle.
func characterFrame(e *donburi.Entry) {
	if advanceDeathFrames(e) {
		return
	}

	char := components.Character.Get(e)
	anim := components.Animation.Get(e)
	kb := GetOrCreateServices(e.World).Keyboard

	switch {
	case IsHurt(e):
		markInput(e)
		state := cfg.HurtShocked
		if components.Energy.Get(e).LastSourceKind == cfg.KindPufferFish {
			state = cfg.HurtPoisoned
		}
		playFrame(anim, state)
	case char.IsAttacking:
		playFrame(anim, char.Attack)
	case kb.AnyDirection():
		playFrame(anim, cfg.Swim)
	case now(e.World)-char.LastInput > cfg.C.InactivityDelay:
		if !char.Snoring {
			char.Snoring = true
			playSound(e.World, cfg.SoundSnoring)
		}
		playFrame(anim, cfg.Inactive)
	default:
		playFrame(anim, cfg.Idle)
	}
}
