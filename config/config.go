package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order is decided by the renderers.
const Default ecs.LayerID = 0

// Offset insets a sprite rectangle down to its hitbox. Negative values
// shrink the box, positive values grow it.
type Offset struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`

	LogicInterval   time.Duration `yaml:"logicInterval"`
	FrameInterval   time.Duration `yaml:"frameInterval"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	InactivityDelay time.Duration `yaml:"inactivityDelay"`

	// End of match
	EndScreenDelay time.Duration `yaml:"endScreenDelay"`
	TeardownDelay  time.Duration `yaml:"teardownDelay"`

	PowerUpBanner time.Duration `yaml:"powerUpBanner"`
	Seed          int64         `yaml:"seed"`
}

// Step is the duration of one fixed simulation step.
func (c *Config) Step() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// DebugConfig toggles developer overlays in the host.
type DebugConfig struct {
	DrawHitboxes bool
	SkipMenu     bool
}

// Colour palette for placeholder sprites and the HUD.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Green        = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	Purple       = color.RGBA{R: 150, G: 60, B: 200, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Pink         = color.RGBA{R: 240, G: 120, B: 200, A: 255}
	DeepBlue     = color.RGBA{R: 10, G: 40, B: 90, A: 255}
	Teal         = color.RGBA{R: 20, G: 110, B: 140, A: 255}
	LightBlue    = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightOverlay = color.RGBA{R: 255, G: 255, B: 200, A: 40}
)

// Global configuration instances
var C *Config
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  720,
		Height: 480,
		TPS:    60,

		LogicInterval:   50 * time.Millisecond,
		FrameInterval:   150 * time.Millisecond,
		Invulnerability: time.Second,
		InactivityDelay: 15 * time.Second,

		EndScreenDelay: 2 * time.Second,
		TeardownDelay:  500 * time.Millisecond,

		PowerUpBanner: 3 * time.Second,
		Seed:          1,
	}

	Debug = DebugConfig{}
}
