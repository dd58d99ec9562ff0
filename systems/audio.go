package systems

import (
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/automoto/sharkie/assets"
	cfg "github.com/automoto/sharkie/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context - created once and shared by every match
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// EbitenSound plays the game's sounds through ebiten's audio context.
// Missing or undecodable files are logged once and then stay silent.
type EbitenSound struct {
	loader *assets.AudioLoader
	volume float64
	muted  bool

	shots    map[cfg.SoundID]*audio.Player
	lastShot map[cfg.SoundID]time.Time
	loops    map[cfg.SoundID]*audio.Player
	failed   map[cfg.SoundID]bool
}

// NewEbitenSound creates a sound sink reading audio files from fsys.
func NewEbitenSound(fsys fs.FS) *EbitenSound {
	initGlobalAudio()
	return &EbitenSound{
		loader:   assets.NewAudioLoader(globalAudioContext, fsys),
		volume:   cfg.Audio.Volume,
		shots:    make(map[cfg.SoundID]*audio.Player),
		lastShot: make(map[cfg.SoundID]time.Time),
		loops:    make(map[cfg.SoundID]*audio.Player),
		failed:   make(map[cfg.SoundID]bool),
	}
}

// PreloadAll decodes every sound up front to avoid lag on first play.
func (s *EbitenSound) PreloadAll() {
	for id, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.fail(id, err)
		}
	}
}

func (s *EbitenSound) fail(id cfg.SoundID, err error) {
	if !s.failed[id] {
		log.Printf("Warning: sound %s unavailable: %v", id, err)
	}
	s.failed[id] = true
}

// throttled reports whether id is still inside its cooldown. A zero
// cooldown means the sound is not restarted while it is still playing.
func (s *EbitenSound) throttled(id cfg.SoundID) bool {
	cooldown, ok := cfg.Sound.Cooldowns[id]
	if !ok {
		return false
	}
	if cooldown == 0 {
		p := s.shots[id]
		return p != nil && p.IsPlaying()
	}
	return time.Since(s.lastShot[id]) < cooldown
}

func (s *EbitenSound) Play(id cfg.SoundID) {
	if s.muted || s.failed[id] || s.throttled(id) {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	player, err := s.loader.LoadSFX(path)
	if err != nil {
		s.fail(id, err)
		return
	}
	player.SetVolume(s.volume)
	player.Play()
	s.shots[id] = player
	s.lastShot[id] = time.Now()
}

func (s *EbitenSound) PlayLoop(id cfg.SoundID) {
	if p, ok := s.loops[id]; ok {
		if !s.muted {
			p.Play()
		}
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || s.failed[id] {
		return
	}
	player, err := s.loader.LoadLoop(path)
	if err != nil {
		s.fail(id, err)
		return
	}
	player.SetVolume(s.volume)
	s.loops[id] = player
	if !s.muted {
		player.Play()
	}
}

func (s *EbitenSound) Stop(id cfg.SoundID) {
	if p, ok := s.loops[id]; ok {
		_ = p.Close()
		delete(s.loops, id)
	}
	if p, ok := s.shots[id]; ok {
		p.Pause()
	}
}

func (s *EbitenSound) StopAll() {
	for id := range s.loops {
		s.Stop(id)
	}
	for _, p := range s.shots {
		p.Pause()
	}
}

// SetMuted silences or restores all sound. Loops requested while muted
// start playing on unmute.
func (s *EbitenSound) SetMuted(muted bool) {
	s.muted = muted
	for _, p := range s.loops {
		if muted {
			p.Pause()
		} else {
			p.Play()
		}
	}
	if muted {
		for _, p := range s.shots {
			p.Pause()
		}
	}
}

// Muted reports the current mute state.
func (s *EbitenSound) Muted() bool {
	return s.muted
}
