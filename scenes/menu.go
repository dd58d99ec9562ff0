package scenes

import (
	"image/color"

	"github.com/automoto/sharkie/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var instructions = []string{
	"Arrow keys: swim",
	"Space: fin slap",
	"D: blow a bubble",
	"P: pause   M: mute",
}

// MenuScene is the start screen.
type MenuScene struct {
	session *Session
	screen  *ui.ScreenUI
}

// NewMenuScene creates the start screen
func NewMenuScene(s *Session) *MenuScene {
	ms := &MenuScene{session: s}
	ms.build()
	return ms
}

func (ms *MenuScene) build() {
	ms.screen = ui.NewScreenUI("SHARKIE", instructions, []ui.Action{
		{Label: "Play", OnClick: func() {
			ms.session.Changer.ChangeScene(NewGameScene(ms.session))
		}},
		{Label: muteLabel(ms.session.Muted()), OnClick: func() {
			ms.session.ToggleMute()
			ms.build()
		}},
	})
}

func (ms *MenuScene) Update() {
	ms.screen.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ms.screen.Draw(screen)
}
