package components

import (
	"time"

	"github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Speed float64

	Coins         int
	PoisonBottles int
	// Latched when the fifth bottle is picked up
	AllPoisonCollected bool

	IsAttacking bool
	Attack      config.StateID // FinSlap or BubbleTrap while attacking

	LastInput time.Duration
	Snoring   bool
}

var Character = donburi.NewComponentType[CharacterData]()
