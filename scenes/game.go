package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/fonts"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const powerUpText = "All poison collected! Your bubbles are poisoned."

// GameScene runs one match and reacts to its notifications.
type GameScene struct {
	session *Session
	world   *World
	once    sync.Once

	bannerSteps int
	ended       cfg.Outcome
}

func NewGameScene(s *Session) *GameScene {
	return &GameScene{session: s}
}

func (gs *GameScene) configure() {
	if gs.session.BeforeMatch != nil {
		gs.session.BeforeMatch()
	}

	world, err := NewWorld(WorldOptions{
		Level:     gs.session.Level,
		Sound:     gs.session.sound(),
		Notifier:  ports.NotifierFunc(gs.notify),
		PollInput: true,
	})
	if err != nil {
		log.Printf("Warning: Could not build match: %v", err)
		gs.session.Changer.ChangeScene(NewMenuScene(gs.session))
		return
	}
	gs.world = world
	gs.world.Start()
}

func (gs *GameScene) notify(kind ports.NotifyKind) {
	switch kind {
	case ports.NotifyPowerUp:
		gs.bannerSteps = int(cfg.C.PowerUpBanner / cfg.C.Step())
	case ports.NotifyGameWon:
		gs.ended = cfg.OutcomeWin
	case ports.NotifyGameLost:
		gs.ended = cfg.OutcomeLose
	}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	if gs.world == nil {
		return
	}

	gs.world.Update()

	input := systems.GetOrCreateInput(gs.world.ECS().World)
	if systems.GetAction(input, cfg.ActionPause).JustPressed && gs.world.Outcome() == cfg.OutcomeNone {
		if gs.world.Paused() {
			gs.world.ResumeAllAnimations()
		} else {
			gs.world.PauseAllAnimations()
		}
	}
	if systems.GetAction(input, cfg.ActionMute).JustPressed {
		gs.session.ToggleMute()
	}

	if gs.bannerSteps > 0 && !gs.world.Paused() {
		gs.bannerSteps--
	}

	if gs.finished() {
		gs.world.Reset()
		gs.session.Changer.ChangeScene(NewGameOverScene(gs.session, gs.ended))
	}
}

// finished reports whether the match has told its outcome and torn itself
// down.
func (gs *GameScene) finished() bool {
	return gs.ended != cfg.OutcomeNone && gs.world.Stopped()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.world == nil {
		return
	}
	gs.world.Draw(screen)

	if !fonts.Loaded(fonts.Banner) {
		return
	}
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	if gs.bannerSteps > 0 {
		vector.DrawFilledRect(screen, 0, h/2-30, w, 50, cfg.BlackOverlay, false)
		text.Draw(screen, powerUpText, fonts.Banner.Get(), 20, int(h/2)+5, cfg.Yellow)
	}
	if gs.world.Paused() {
		vector.DrawFilledRect(screen, 0, 0, w, h, cfg.BlackOverlay, false)
		text.Draw(screen, "PAUSED", fonts.Title.Get(), int(w/2)-75, int(h/2), cfg.White)
	}
}
