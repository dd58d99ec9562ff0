package components

import (
	"github.com/automoto/sharkie/timing"
	"github.com/yohamta/donburi"
)

type BossPhase int

const (
	BossDormant BossPhase = iota
	BossSpawning
	BossActive
	BossDead
)

func (p BossPhase) String() string {
	switch p {
	case BossDormant:
		return "dormant"
	case BossSpawning:
		return "spawning"
	case BossActive:
		return "active"
	case BossDead:
		return "dead"
	}
	return "unknown"
}

type EndbossData struct {
	Phase           BossPhase
	HadFirstContact bool
	SpawnCompleted  bool

	IsAttacking bool
	IsReturning bool
	AttackSpeed float64
	ReturnSpeed float64
	OriginalX   float64

	// Hurt frames interrupt the idle/attack set without touching the timers
	Hurting bool

	AttackTask timing.Handle
	AttackEnd  timing.Handle
}

var Endboss = donburi.NewComponentType[EndbossData]()
