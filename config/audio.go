package config

import "time"

// SoundID represents a logical sound effect
type SoundID string

const (
	SoundAmbient            SoundID = "ambient"
	SoundSwim               SoundID = "swim"
	SoundCollectedCoin      SoundID = "collectedCoin"
	SoundCollectedPoison    SoundID = "collectedPoison"
	SoundSnoring            SoundID = "snoring"
	SoundFinSlap            SoundID = "finSlap"
	SoundBubbleAttack       SoundID = "bubbleAttack"
	SoundAllPoisonCollected SoundID = "allPoisonCollected"
	SoundBubbleHit          SoundID = "bubbleHit"
	SoundEndbossBite        SoundID = "endbossBite"
	SoundHurt               SoundID = "hurt"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths  map[SoundID]string
	Cooldowns map[SoundID]time.Duration
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.3,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundAmbient:            "audio/underwater-ambient-sound.mp3",
			SoundSwim:               "audio/swim.mp3",
			SoundCollectedCoin:      "audio/collect-coin.mp3",
			SoundCollectedPoison:    "audio/collect-poison.mp3",
			SoundSnoring:            "audio/snoring.mp3",
			SoundFinSlap:            "audio/hit.mp3",
			SoundBubbleAttack:       "audio/bubble.mp3",
			SoundAllPoisonCollected: "audio/all-poisen-collected.mp3",
			SoundBubbleHit:          "audio/bubble-hit.mp3",
			SoundEndbossBite:        "audio/endboss-bite.mp3",
			SoundHurt:               "audio/hurt.mp3",
		},
		Cooldowns: map[SoundID]time.Duration{
			SoundSwim: 0,
			SoundHurt: 500 * time.Millisecond,
		},
	}
}
