package scenes

import (
	"image/color"

	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene is the end screen for a won or lost match.
type GameOverScene struct {
	session *Session
	screen  *ui.ScreenUI
}

// NewGameOverScene creates the end screen for outcome
func NewGameOverScene(s *Session, outcome cfg.Outcome) *GameOverScene {
	title, line := "GAME OVER", "Sharkie ran out of energy."
	if outcome == cfg.OutcomeWin {
		title, line = "YOU WIN", "The end boss is defeated."
	}

	gs := &GameOverScene{session: s}
	gs.screen = ui.NewScreenUI(title, []string{line}, []ui.Action{
		{Label: "Try again", OnClick: func() {
			s.Changer.ChangeScene(NewGameScene(s))
		}},
		{Label: "Back to start", OnClick: func() {
			s.Changer.ChangeScene(NewMenuScene(s))
		}},
	})
	return gs
}

func (gs *GameOverScene) Update() {
	gs.screen.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	gs.screen.Draw(screen)
}
