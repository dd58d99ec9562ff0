package config

// StateID names an animation set of an entity.
type StateID int

const (
	StateNone StateID = iota

	// Shared
	Idle
	Dead

	// Character
	Inactive
	Swim
	HurtPoisoned
	HurtShocked
	FinSlap
	BubbleTrap

	// Endboss
	Spawning
	Attack
	Hurt

	// Bubble
	Poisoned

	// Single-frame sprites
	Static
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Idle:         "idle",
	Dead:         "dead",
	Inactive:     "inactive",
	Swim:         "swim",
	HurtPoisoned: "hurt-poisoned",
	HurtShocked:  "hurt-shocked",
	FinSlap:      "fin-slap",
	BubbleTrap:   "bubble-trap",
	Spawning:     "spawning",
	Attack:       "attack",
	Hurt:         "hurt",
	Poisoned:     "poisoned",
	Static:       "static",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EntityKind is the tagged variant carried by every simulated entity.
type EntityKind int

const (
	KindNone EntityKind = iota
	KindCharacter
	KindPufferFish
	KindJellyFish
	KindDangerousJellyFish
	KindEndboss
	KindCoin
	KindPoison
	KindBubble
	KindBackground
	KindLight
)

var kindNames = map[EntityKind]string{
	KindNone:               "none",
	KindCharacter:          "character",
	KindPufferFish:         "puffer-fish",
	KindJellyFish:          "jelly-fish",
	KindDangerousJellyFish: "dangerous-jelly-fish",
	KindEndboss:            "endboss",
	KindCoin:               "coin",
	KindPoison:             "poison",
	KindBubble:             "bubble",
	KindBackground:         "background",
	KindLight:              "light",
}

func (k EntityKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEntityKind maps a level object name onto its kind.
func ParseEntityKind(s string) (EntityKind, bool) {
	for k, name := range kindNames {
		if name == s && k != KindNone {
			return k, true
		}
	}
	return KindNone, false
}

// Outcome is the result of a finished match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)
