// Package ports defines the contracts between the simulation core and its
// host: the key-state record the host writes, and the sound and
// notification sinks the core calls fire-and-forget.
package ports

import "github.com/automoto/sharkie/config"

// Keyboard is the input record. The host sets and clears the flags; the
// simulation only reads them.
type Keyboard struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Space bool
	D     bool
}

// Reset clears every key.
func (k *Keyboard) Reset() {
	*k = Keyboard{}
}

// AnyDirection reports whether a movement key is held.
func (k *Keyboard) AnyDirection() bool {
	return k.Left || k.Right || k.Up || k.Down
}

// Sound plays named effects. Implementations must ignore unknown IDs and
// stay silent while muted.
type Sound interface {
	Play(id config.SoundID)
	PlayLoop(id config.SoundID)
	Stop(id config.SoundID)
	StopAll()
}

// NotifyKind is a host-facing signal.
type NotifyKind int

const (
	NotifyPowerUp NotifyKind = iota + 1
	NotifyGameWon
	NotifyGameLost
)

func (k NotifyKind) String() string {
	switch k {
	case NotifyPowerUp:
		return "power-up"
	case NotifyGameWon:
		return "game-won"
	case NotifyGameLost:
		return "game-lost"
	}
	return "unknown"
}

// Notifier receives power-up and end-of-match signals.
type Notifier interface {
	Notify(kind NotifyKind)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(kind NotifyKind)

func (f NotifierFunc) Notify(kind NotifyKind) {
	f(kind)
}

// NopSound discards every call.
type NopSound struct{}

func (NopSound) Play(config.SoundID)     {}
func (NopSound) PlayLoop(config.SoundID) {}
func (NopSound) Stop(config.SoundID)     {}
func (NopSound) StopAll()                {}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(NotifyKind) {}
