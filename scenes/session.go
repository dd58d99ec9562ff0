package scenes

import (
	"log"

	"github.com/automoto/sharkie/assets"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is the host state shared by every scene: where scenes go, the
// sound sink and the level to play.
type Session struct {
	Changer SceneChanger
	Sound   *systems.EbitenSound // nil runs silent
	Level   *assets.Level        // nil plays the embedded first level

	// BeforeMatch runs right before each match is built.
	BeforeMatch func()
}

func (s *Session) sound() ports.Sound {
	if s.Sound == nil {
		return ports.NopSound{}
	}
	return s.Sound
}

// Muted reports the current mute state.
func (s *Session) Muted() bool {
	return s.Sound != nil && s.Sound.Muted()
}

// ToggleMute flips the mute state and stores it.
func (s *Session) ToggleMute() {
	if s.Sound == nil {
		return
	}
	muted := !s.Sound.Muted()
	s.Sound.SetMuted(muted)
	if err := systems.SaveSettings(&systems.SavedSettings{Muted: muted}); err != nil {
		log.Printf("Warning: Could not store mute setting: %v", err)
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "Unmute"
	}
	return "Mute"
}
