package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLogic is one logic tick: the ordered interaction passes between the
// character, enemies, collectibles and bubbles.
func UpdateLogic(ecs *ecs.ECS) {
	CheckGameState(ecs)
	if !GetOrCreateMatch(ecs.World).Running {
		return
	}
	CheckEnemyCollisions(ecs)
	CheckCollectables(ecs)
	CheckThrowObjects(ecs)
	CheckAttack(ecs)
	CheckBubbleEnemyCollision(ecs)
	CheckBubbleEndbossCollision(ecs)
	RemoveMarkedBubbles(ecs)
}

// CheckGameState ends a running match when the character or the boss has
// died.
func CheckGameState(ecs *ecs.ECS) {
	if !GetOrCreateMatch(ecs.World).Running {
		return
	}
	if c, ok := characterEntry(ecs.World); ok && components.Death.Get(c).HasDied {
		EndMatch(ecs, cfg.OutcomeLose)
		return
	}
	if b, ok := endbossEntry(ecs.World); ok && IsDead(b) {
		EndMatch(ecs, cfg.OutcomeWin)
	}
}

// CheckEnemyCollisions damages the character on contact with a live enemy.
// An attacking character takes no contact damage.
func CheckEnemyCollisions(ecs *ecs.ECS) {
	c, ok := characterEntry(ecs.World)
	if !ok || !isLive(c) || components.Character.Get(c).IsAttacking {
		return
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, enemy := range enemies {
		if !isLive(enemy) || !isVisibleEnemy(enemy) || !IsColliding(c, enemy) {
			continue
		}
		if Hit(c, components.Enemy.Get(enemy).Damage, enemy) {
			playSound(ecs.World, cfg.SoundHurt)
		}
		setBar(ecs.World, components.BarLife, float64(components.Energy.Get(c).Current))
	}
}

// isVisibleEnemy is false for a boss that has not appeared yet.
func isVisibleEnemy(e *donburi.Entry) bool {
	if !e.HasComponent(components.Endboss) {
		return true
	}
	return components.Endboss.Get(e).Phase != components.BossDormant
}

// CheckCollectables picks up every idle coin and bottle the character
// touches.
func CheckCollectables(ecs *ecs.ECS) {
	c, ok := characterEntry(ecs.World)
	if !ok || !isLive(c) {
		return
	}

	var touched []*donburi.Entry
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		if components.Collectible.Get(e).State == components.CollectIdle && IsColliding(c, e) {
			touched = append(touched, e)
		}
	})

	char := components.Character.Get(c)
	for _, e := range touched {
		if !Collect(e) {
			continue
		}
		switch components.Collectible.Get(e).Kind {
		case cfg.KindCoin:
			playSound(ecs.World, cfg.SoundCollectedCoin)
			char.Coins++
			addBarItem(ecs.World, components.BarCoin)
		case cfg.KindPoison:
			playSound(ecs.World, cfg.SoundCollectedPoison)
			if char.PoisonBottles < cfg.Character.MaxPoison {
				char.PoisonBottles++
			}
			addBarItem(ecs.World, components.BarPoison)
			if char.PoisonBottles == cfg.Character.MaxPoison && !char.AllPoisonCollected {
				char.AllPoisonCollected = true
				playSound(ecs.World, cfg.SoundAllPoisonCollected)
				notify(ecs.World, ports.NotifyPowerUp)
			}
		}
	}
}

// CheckThrowObjects starts a bubble attack while D is held.
func CheckThrowObjects(ecs *ecs.ECS) {
	if GetOrCreateServices(ecs.World).Keyboard.D {
		BubbleAttack(ecs)
	}
}

// CheckAttack starts a fin slap on each new press of space.
func CheckAttack(ecs *ecs.ECS) {
	kb := GetOrCreateServices(ecs.World).Keyboard
	match := GetOrCreateMatch(ecs.World)

	if !kb.Space {
		match.SpaceKeyPressed = false
		return
	}
	if match.SpaceKeyPressed {
		return
	}
	if c, ok := characterEntry(ecs.World); ok && components.Character.Get(c).IsAttacking {
		return
	}
	match.SpaceKeyPressed = true
	FinAttack(ecs)
}

func liveBubbles(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Bubble.Each(w, func(e *donburi.Entry) {
		if !components.Bubble.Get(e).MarkForRemoval {
			out = append(out, e)
		}
	})
	return out
}

// CheckBubbleEnemyCollision kills every jellyfish a bubble touches and pops
// the bubble.
func CheckBubbleEnemyCollision(ecs *ecs.ECS) {
	for _, bubble := range liveBubbles(ecs.World) {
		for _, target := range Overlapping(bubble, tags.ResolvJellyFish) {
			if !isLive(target) {
				continue
			}
			Dead(target)
			components.Bubble.Get(bubble).MarkForRemoval = true
		}
	}
}

// CheckBubbleEndbossCollision lets poisoned bubbles damage the boss. Plain
// bubbles, and every bubble before the boss has finished spawning, pass
// through it.
func CheckBubbleEndbossCollision(ecs *ecs.ECS) {
	boss, ok := endbossEntry(ecs.World)
	if !ok || IsDead(boss) || !components.Endboss.Get(boss).SpawnCompleted {
		return
	}
	for _, bubble := range liveBubbles(ecs.World) {
		b := components.Bubble.Get(bubble)
		if !b.Poisoned || !IsColliding(bubble, boss) {
			continue
		}
		b.MarkForRemoval = true
		if !Hit(boss, cfg.Bubble.Damage, bubble) {
			continue
		}
		playSound(ecs.World, cfg.SoundBubbleHit)
		setBar(ecs.World, components.BarBoss, float64(components.Energy.Get(boss).Current))
	}
}
