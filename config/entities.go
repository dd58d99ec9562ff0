package config

import "time"

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Energy int     `yaml:"energy"`

	Offset       Offset `yaml:"offset"`
	AttackOffset Offset `yaml:"attackOffset"`

	// Vertical swim limits
	TopLimit    float64 `yaml:"topLimit"`
	BottomLimit float64 `yaml:"bottomLimit"`

	// Attacks
	MeleeDuration     time.Duration `yaml:"meleeDuration"`
	BubbleDuration    time.Duration `yaml:"bubbleDuration"`
	BubbleSpawnAt     float64       `yaml:"bubbleSpawnAt"` // fraction of BubbleDuration
	BubbleOffsetRight float64       `yaml:"bubbleOffsetRight"`
	BubbleOffsetLeft  float64       `yaml:"bubbleOffsetLeft"`
	BubbleOffsetY     float64       `yaml:"bubbleOffsetY"`

	MaxPoison int `yaml:"maxPoison"`
}

type PufferFishConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MinX       float64 `yaml:"minX"`
	MaxX       float64 `yaml:"maxX"` // right bound of the sprite's left edge is MaxX - Width
	MinSpeed   float64 `yaml:"minSpeed"`
	SpeedRange float64 `yaml:"speedRange"`
	Damage     int     `yaml:"damage"`

	Offset         Offset `yaml:"offset"`
	InflatedOffset Offset `yaml:"inflatedOffset"`
	// 0-based frame range of the idle cycle that uses InflatedOffset
	InflatedFirst int `yaml:"inflatedFirst"`
	InflatedLast  int `yaml:"inflatedLast"`
}

// JellyTypeConfig holds the per-variant jellyfish values.
type JellyTypeConfig struct {
	MinSpeed   float64 `yaml:"minSpeed"`
	SpeedRange float64 `yaml:"speedRange"`
	Damage     int     `yaml:"damage"`
}

type JellyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinY   float64 `yaml:"minY"`
	MaxY   float64 `yaml:"maxY"`
	Offset Offset  `yaml:"offset"`

	// Upward displacement per step once the death frames have played
	FlyAwaySpeed float64 `yaml:"flyAwaySpeed"`

	Normal    JellyTypeConfig `yaml:"normal"`
	Dangerous JellyTypeConfig `yaml:"dangerous"`
}

type EndbossConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Energy int     `yaml:"energy"`
	Damage int     `yaml:"damage"`
	Offset Offset  `yaml:"offset"`

	// Spawning starts once the character passes TriggerX
	TriggerX    float64 `yaml:"triggerX"`
	SpawnFrames int     `yaml:"spawnFrames"`

	AttackInterval time.Duration `yaml:"attackInterval"`
	AttackDuration time.Duration `yaml:"attackDuration"`
	// Pixels per boss frame
	AttackSpeed float64 `yaml:"attackSpeed"`
	ReturnSpeed float64 `yaml:"returnSpeed"`
}

type BubbleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"` // pixels per step
	MaxRange float64 `yaml:"maxRange"`
	Damage   int     `yaml:"damage"` // poisoned bubble vs boss
}

type CollectibleConfig struct {
	CoinWidth    float64 `yaml:"coinWidth"`
	CoinHeight   float64 `yaml:"coinHeight"`
	PoisonWidth  float64 `yaml:"poisonWidth"`
	PoisonHeight float64 `yaml:"poisonHeight"`
	PoisonOffset Offset  `yaml:"poisonOffset"`

	CollectRise     float64       `yaml:"collectRise"`
	CollectDuration time.Duration `yaml:"collectDuration"`
	// Coins rest between idle cycles
	CoinCyclePause time.Duration `yaml:"coinCyclePause"`
}

// DeathConfig holds the motion parameters of the three death sequences.
type DeathConfig struct {
	// Melee spiral (fall, spin, fade)
	SpiralInterval time.Duration `yaml:"spiralInterval"`
	SpiralSpeedY   float64       `yaml:"spiralSpeedY"`
	SpiralGravity  float64       `yaml:"spiralGravity"`
	SpiralRotation float64       `yaml:"spiralRotation"` // degrees per interval
	SpiralFade     float64       `yaml:"spiralFade"`
	SpiralMaxY     float64       `yaml:"spiralMaxY"`

	// Float after die()
	FloatAmplitude float64       `yaml:"floatAmplitude"`
	FloatPeriod    time.Duration `yaml:"floatPeriod"`
}

type BarRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BarsConfig struct {
	Life      BarRect `yaml:"life"`
	Coin      BarRect `yaml:"coin"`
	Poison    BarRect `yaml:"poison"`
	Boss      BarRect `yaml:"boss"`
	CoinMax   int     `yaml:"coinMax"`
	PoisonMax int     `yaml:"poisonMax"`

	CoinCounterX   float64 `yaml:"coinCounterX"`
	PoisonCounterX float64 `yaml:"poisonCounterX"`
	CounterY       float64 `yaml:"counterY"`
	BossLabelX     float64 `yaml:"bossLabelX"`
	BossLabelY     float64 `yaml:"bossLabelY"`
}

var Character CharacterConfig
var PufferFish PufferFishConfig
var Jelly JellyConfig
var Endboss EndbossConfig
var Bubble BubbleConfig
var Collectible CollectibleConfig
var Death DeathConfig
var Bars BarsConfig

func init() {
	Character = CharacterConfig{
		StartX: 20,
		StartY: 200,
		Width:  200,
		Height: 200,
		Speed:  2,
		Energy: 100,

		Offset:       Offset{Top: -110, Left: -50, Right: -50, Bottom: -50},
		AttackOffset: Offset{Top: -110, Left: -10, Right: -10, Bottom: -50},

		TopLimit:    -30,
		BottomLimit: 300,

		MeleeDuration:     800 * time.Millisecond,
		BubbleDuration:    800 * time.Millisecond,
		BubbleSpawnAt:     0.2,
		BubbleOffsetRight: 120,
		BubbleOffsetLeft:  -10,
		BubbleOffsetY:     90,

		MaxPoison: 5,
	}

	PufferFish = PufferFishConfig{
		Width:      100,
		Height:     100,
		MinX:       50,
		MaxX:       720,
		MinSpeed:   0.15,
		SpeedRange: 0.25,
		Damage:     10,

		Offset:         Offset{Top: -15, Left: -15, Right: -30, Bottom: -35},
		InflatedOffset: Offset{Top: -5, Left: -15, Right: -30, Bottom: -5},
		InflatedFirst:  10,
		InflatedLast:   14,
	}

	Jelly = JellyConfig{
		Width:        100,
		Height:       100,
		MinY:         10,
		MaxY:         380,
		Offset:       Offset{Top: -15, Left: -10, Right: -10, Bottom: -15},
		FlyAwaySpeed: 3,

		Normal:    JellyTypeConfig{MinSpeed: 1, SpeedRange: 0.25, Damage: 10},
		Dangerous: JellyTypeConfig{MinSpeed: 0.25, SpeedRange: 2, Damage: 20},
	}

	Endboss = EndbossConfig{
		X:      1750,
		Y:      0,
		Width:  400,
		Height: 400,
		Energy: 100,
		Damage: 40,
		Offset: Offset{Top: -200, Left: -30, Right: -40, Bottom: -80},

		TriggerX:    1250,
		SpawnFrames: 10,

		AttackInterval: 8 * time.Second,
		AttackDuration: 2 * time.Second,
		AttackSpeed:    20,
		ReturnSpeed:    30,
	}

	Bubble = BubbleConfig{
		Width:    70,
		Height:   70,
		Speed:    4,
		MaxRange: 500,
		Damage:   20,
	}

	Collectible = CollectibleConfig{
		CoinWidth:    40,
		CoinHeight:   40,
		PoisonWidth:  50,
		PoisonHeight: 60,
		PoisonOffset: Offset{Top: -25, Left: -10, Right: -10, Bottom: 0},

		CollectRise:     -50,
		CollectDuration: 150 * time.Millisecond,
		CoinCyclePause:  1500 * time.Millisecond,
	}

	Death = DeathConfig{
		SpiralInterval: 30 * time.Millisecond,
		SpiralSpeedY:   -10,
		SpiralGravity:  1,
		SpiralRotation: 10,
		SpiralFade:     0.05,
		SpiralMaxY:     600,

		FloatAmplitude: 10,
		FloatPeriod:    2 * time.Second,
	}

	Bars = BarsConfig{
		Life:      BarRect{X: 10, Y: 0, Width: 200, Height: 60},
		Coin:      BarRect{X: 20, Y: 60, Width: 200, Height: 60},
		Poison:    BarRect{X: 460, Y: 10, Width: 200, Height: 60},
		Boss:      BarRect{X: 460, Y: 60, Width: 200, Height: 60},
		CoinMax:   10,
		PoisonMax: 5,

		CoinCounterX:   310,
		PoisonCounterX: 515,
		CounterY:       42,
		BossLabelX:     535,
		BossLabelY:     83,
	}
}
