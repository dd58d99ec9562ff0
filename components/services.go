package components

import (
	"math/rand"

	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/timing"
	"github.com/yohamta/donburi"
)

// ServicesData is the singleton that hands the host ports to systems.
type ServicesData struct {
	Keyboard *ports.Keyboard
	Sound    ports.Sound
	Notifier ports.Notifier
	Clock    *timing.Clock
	Rand     *rand.Rand
}

var Services = donburi.NewComponentType[ServicesData]()
