package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

// Hit applies damage to e unless it is dead, still invulnerable from its
// last hit, or an end boss that has not finished spawning. It reports
// whether the hit landed.
func Hit(e *donburi.Entry, damage int, source *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Energy) {
		return false
	}
	if !isLive(e) {
		return false
	}
	if e.HasComponent(components.Endboss) && !components.Endboss.Get(e).SpawnCompleted {
		return false
	}

	energy := components.Energy.Get(e)
	t := now(e.World)
	if energy.HasBeenHit && t-energy.LastHit < cfg.C.Invulnerability {
		return false
	}

	energy.Current = clampEnergy(energy.Current-damage, energy.Max)
	energy.HasBeenHit = true
	energy.LastHit = t
	if source != nil && source.Valid() {
		energy.LastSource = source.Entity()
		energy.LastSourceKind = kindOf(source)
	}

	if e.HasComponent(components.Endboss) {
		startBossHurt(e)
	}
	if energy.Current == 0 {
		Die(e)
	}
	return true
}

// IsHurt reports whether e was hit within the invulnerability window.
func IsHurt(e *donburi.Entry) bool {
	if !e.HasComponent(components.Energy) {
		return false
	}
	energy := components.Energy.Get(e)
	return energy.HasBeenHit && now(e.World)-energy.LastHit < cfg.C.Invulnerability
}

// IsDead reports whether e has no energy left.
func IsDead(e *donburi.Entry) bool {
	return e.HasComponent(components.Energy) && components.Energy.Get(e).Current == 0
}

func clampEnergy(v, maxEnergy int) int {
	if v < 0 {
		return 0
	}
	if maxEnergy > 0 && v > maxEnergy {
		return maxEnergy
	}
	return v
}

func kindOf(e *donburi.Entry) cfg.EntityKind {
	if e.HasComponent(components.Object) {
		return components.Object.Get(e).Kind
	}
	return cfg.KindNone
}
