package components

import (
	"time"

	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/timing"
	"github.com/yohamta/donburi"
)

// MatchData is the singleton state of one running level.
type MatchData struct {
	Running bool
	Paused  bool
	// Latched by StopGame; a stopped match is never resumed
	Stopped bool
	Outcome cfg.Outcome

	// Edge detection for the melee key
	SpaceKeyPressed bool

	// Logic tick accumulator and count
	SinceLogic time.Duration
	LogicTicks int

	// End-of-match tasks
	Tasks *timing.Scheduler
}

var Match = donburi.NewComponentType[MatchData]()
