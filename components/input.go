package components

import (
	cfg "github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

// ActionState is the temporal state of an action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds this step's and the previous step's pressed actions,
// merged across keyboard and gamepads.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Gamepad  bool // last input came from a gamepad
}

var Input = donburi.NewComponentType[InputData]()
