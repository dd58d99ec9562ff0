package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables is the file form of every numeric gameplay value. A tunables
// file only needs to list the values it changes.
type Tunables struct {
	Game        Config            `yaml:"game"`
	Character   CharacterConfig   `yaml:"character"`
	PufferFish  PufferFishConfig  `yaml:"pufferFish"`
	Jelly       JellyConfig       `yaml:"jelly"`
	Endboss     EndbossConfig     `yaml:"endboss"`
	Bubble      BubbleConfig      `yaml:"bubble"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Death       DeathConfig       `yaml:"death"`
	Bars        BarsConfig        `yaml:"bars"`
}

// defaults holds the compiled-in values. Every other config file sorts
// before this one, so their init functions have already run.
var defaults Tunables

func init() {
	defaults = Current()
}

// Defaults returns the compiled-in values.
func Defaults() Tunables {
	return defaults
}

// Current snapshots the active values.
func Current() Tunables {
	return Tunables{
		Game:        *C,
		Character:   Character,
		PufferFish:  PufferFish,
		Jelly:       Jelly,
		Endboss:     Endboss,
		Bubble:      Bubble,
		Collectible: Collectible,
		Death:       Death,
		Bars:        Bars,
	}
}

// Apply makes t the active configuration. Call it between matches only.
func Apply(t Tunables) {
	game := t.Game
	C = &game
	Character = t.Character
	PufferFish = t.PufferFish
	Jelly = t.Jelly
	Endboss = t.Endboss
	Bubble = t.Bubble
	Collectible = t.Collectible
	Death = t.Death
	Bars = t.Bars
}

// ParseTunables decodes YAML on top of base, so absent keys keep base values.
func ParseTunables(data []byte, base Tunables) (Tunables, error) {
	out := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return base, fmt.Errorf("decode tunables: %w", err)
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// LoadTunables reads a tunables file on top of the current values.
func LoadTunables(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Current(), fmt.Errorf("read tunables %s: %w", path, err)
	}
	return ParseTunables(data, Current())
}

// Validate rejects values the simulation cannot run with.
func (t Tunables) Validate() error {
	switch {
	case t.Game.TPS <= 0:
		return fmt.Errorf("tunables: game.tps must be positive, got %d", t.Game.TPS)
	case t.Game.LogicInterval <= 0 || t.Game.FrameInterval <= 0:
		return fmt.Errorf("tunables: logic and frame intervals must be positive")
	case t.Character.MaxPoison <= 0:
		return fmt.Errorf("tunables: character.maxPoison must be positive")
	case t.Character.BubbleSpawnAt < 0 || t.Character.BubbleSpawnAt > 1:
		return fmt.Errorf("tunables: character.bubbleSpawnAt must be within [0,1], got %v", t.Character.BubbleSpawnAt)
	case t.Endboss.SpawnFrames <= 0:
		return fmt.Errorf("tunables: endboss.spawnFrames must be positive")
	case t.Bars.CoinMax <= 0 || t.Bars.PoisonMax <= 0:
		return fmt.Errorf("tunables: bar maximums must be positive")
	}
	return nil
}
