package components

import (
	"github.com/automoto/sharkie/assets/animations"
	"github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to state, restarting it only when it changes.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}
	a.PlayAnimation(state)
}

// PlayAnimation switches to state and always restarts it.
func (a *AnimationData) PlayAnimation(state config.StateID) {
	anim, ok := a.Animations[state]
	a.CurrentSheet = state
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	anim.Restart()
}

// Image is the handle of the frame on screen.
func (a *AnimationData) Image() string {
	if a.CurrentAnimation == nil {
		return ""
	}
	return a.CurrentAnimation.Image()
}

// NewAnimationData builds the image-set cache of an entity kind.
func NewAnimationData(kind config.EntityKind, initial config.StateID) AnimationData {
	sets := make(map[config.StateID]*animations.Animation, len(config.Animations[kind]))
	for state, def := range config.Animations[kind] {
		sets[state] = animations.NewAnimation(def)
	}
	a := AnimationData{Animations: sets}
	a.PlayAnimation(initial)
	return a
}

var Animation = donburi.NewComponentType[AnimationData]()
