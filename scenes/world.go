package scenes

import (
	"fmt"
	"math/rand"

	"github.com/automoto/sharkie/assets"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/automoto/sharkie/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions configures a match. Zero values fall back to the embedded
// first level and silent ports.
type WorldOptions struct {
	Level    *assets.Level
	Keyboard *ports.Keyboard
	Sound    ports.Sound
	Notifier ports.Notifier
	Seed     int64

	// PollInput reads ebiten keys and gamepads each step. Only valid
	// inside a running ebiten game.
	PollInput bool
}

// World owns one match: its ECS, services and system order.
type World struct {
	ecs      *ecs.ECS
	keyboard *ports.Keyboard
}

// NewWorld builds a populated, not yet running match.
func NewWorld(opts WorldOptions) (*World, error) {
	level := opts.Level
	if level == nil {
		var err error
		level, err = assets.LoadEmbeddedLevel("level1")
		if err != nil {
			return nil, fmt.Errorf("load level: %w", err)
		}
	}
	if opts.Keyboard == nil {
		opts.Keyboard = &ports.Keyboard{}
	}
	if opts.Sound == nil {
		opts.Sound = ports.NopSound{}
	}
	if opts.Notifier == nil {
		opts.Notifier = ports.NopNotifier{}
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.C.Seed
	}

	w := &World{
		ecs:      ecs.NewECS(donburi.NewWorld()),
		keyboard: opts.Keyboard,
	}

	svc := systems.GetOrCreateServices(w.ecs.World)
	svc.Keyboard = opts.Keyboard
	svc.Sound = opts.Sound
	svc.Notifier = opts.Notifier
	svc.Clock = timing.NewClock()
	svc.Rand = rand.New(rand.NewSource(opts.Seed))

	w.register(opts.PollInput)

	if err := factory.PopulateLevel(w.ecs, level, svc.Rand); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) register(pollInput bool) {
	e := w.ecs
	if pollInput {
		e.AddSystem(systems.UpdateInput)
	}

	e.AddSystem(systems.UpdateClock)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacter))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePufferFish))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateJellyFish))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBubbles))

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBehaviours))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTimers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))

	e.AddSystem(systems.WithLogicTick(systems.UpdateLogic))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRemovals))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
}

// Start sets the match running and starts the ambient loop.
func (w *World) Start() {
	systems.StartMatch(w.ecs)
}

// StopGame cancels every task and silences all sound for good.
func (w *World) StopGame() {
	systems.StopGame(w.ecs)
}

// PauseAllAnimations freezes the clock and every scheduled task.
func (w *World) PauseAllAnimations() {
	systems.PauseMatch(w.ecs)
}

// ResumeAllAnimations continues a paused match.
func (w *World) ResumeAllAnimations() {
	systems.ResumeMatch(w.ecs)
}

// Reset stops the match and releases every key. A new match needs a new
// World.
func (w *World) Reset() {
	w.StopGame()
	w.keyboard.Reset()
}

// Update runs one fixed step.
func (w *World) Update() {
	w.ecs.Update()
}

// Draw paints the world and HUD layers.
func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}

// Frame returns the draw list of the current state.
func (w *World) Frame() systems.Frame {
	return systems.CollectFrame(w.ecs)
}

func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

func (w *World) Keyboard() *ports.Keyboard {
	return w.keyboard
}

func (w *World) Paused() bool {
	return systems.GetOrCreateMatch(w.ecs.World).Paused
}

func (w *World) Stopped() bool {
	return systems.IsMatchStopped(w.ecs)
}

func (w *World) Outcome() cfg.Outcome {
	return systems.GetOrCreateMatch(w.ecs.World).Outcome
}
