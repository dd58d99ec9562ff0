package config

import "fmt"

// AnimationDef is an ordered list of image handles. Once plays the set a
// single time and holds the last frame.
type AnimationDef struct {
	Frames []string
	Once   bool
}

func frames(pattern string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(pattern, i+1)
	}
	return out
}

// Animations maps an entity kind to its animation sets.
var Animations = map[EntityKind]map[StateID]AnimationDef{
	KindCharacter: {
		Idle:         {Frames: frames("img/character/idle/%d.png", 18)},
		Inactive:     {Frames: frames("img/character/inactive/sharkie-inactive-%d.png", 14)},
		Swim:         {Frames: frames("img/character/swim/character-swim-%d.png", 6)},
		Dead:         {Frames: frames("img/character/dead/%d.png", 12), Once: true},
		HurtPoisoned: {Frames: frames("img/character/hurt/poisoned/%d.png", 5)},
		HurtShocked:  {Frames: frames("img/character/hurt/shocked/shocked-%d.png", 5)},
		FinSlap:      {Frames: frames("img/character/attack/fin-slap/%d.png", 8), Once: true},
		BubbleTrap:   {Frames: frames("img/character/attack/bubble-trap/%d.png", 8), Once: true},
	},
	KindPufferFish: {
		Idle: {Frames: frames("img/enemies/puffer-fish/idle/puffer-fish-idle-%d.png", 20)},
	},
	KindJellyFish: {
		Idle: {Frames: frames("img/enemies/jelly-fish/idle/jelly-fish-idle-%d.png", 4)},
		Dead: {Frames: frames("img/enemies/jelly-fish/dead/jelly-fish-dead-%d.png", 4)},
	},
	KindDangerousJellyFish: {
		Idle: {Frames: frames("img/enemies/jelly-fish/dangerous/idle/dangerous-jelly-fish-idle-%d.png", 4)},
		Dead: {Frames: frames("img/enemies/jelly-fish/dangerous/dead/dangerous-jelly-fish-dead-%d.png", 4)},
	},
	KindEndboss: {
		Spawning: {Frames: frames("img/endboss/spawn/%d.png", 10), Once: true},
		Idle:     {Frames: frames("img/endboss/idle/%d.png", 13)},
		Attack:   {Frames: frames("img/endboss/attack/%d.png", 6)},
		Hurt:     {Frames: frames("img/endboss/hurt/%d.png", 4), Once: true},
		Dead:     {Frames: frames("img/endboss/dead/endboss-dead-%d.png", 5), Once: true},
	},
	KindCoin: {
		Idle: {Frames: frames("img/collectables/coins/coin-%d.png", 4)},
	},
	KindPoison: {
		Idle: {Frames: frames("img/collectables/poison/poison-%d.png", 8)},
	},
	KindBubble: {
		Idle:     {Frames: []string{"img/bubble/bubble.png"}},
		Poisoned: {Frames: []string{"img/bubble/poisoned-bubble.png"}},
	},
	KindLight: {
		Static: {Frames: []string{"img/background/light.png"}},
	},
}

// BarImage returns the image handle of a status bar at a visual bucket (0..5).
func BarImage(bar string, bucket int) string {
	if bucket < 0 {
		bucket = 0
	}
	if bucket > 5 {
		bucket = 5
	}
	return fmt.Sprintf("img/status-bars/%s-bar/%d-%s-bar.png", bar, bucket*20, bar)
}
