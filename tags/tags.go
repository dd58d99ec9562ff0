package tags

import "github.com/yohamta/donburi"

var (
	Character          = donburi.NewTag().SetName("Character")
	Enemy              = donburi.NewTag().SetName("Enemy")
	PufferFish         = donburi.NewTag().SetName("PufferFish")
	JellyFish          = donburi.NewTag().SetName("JellyFish")
	DangerousJellyFish = donburi.NewTag().SetName("DangerousJellyFish")
	Endboss            = donburi.NewTag().SetName("Endboss")
	Coin               = donburi.NewTag().SetName("Coin")
	Poison             = donburi.NewTag().SetName("Poison")
	Bubble             = donburi.NewTag().SetName("Bubble")
	Background         = donburi.NewTag().SetName("Background")
	Light              = donburi.NewTag().SetName("Light")
)

// Resolv tags for broad-phase queries
const (
	ResolvCharacter   = "Character"
	ResolvEnemy       = "Enemy"
	ResolvPufferFish  = "PufferFish"
	ResolvJellyFish   = "JellyFish"
	ResolvEndboss     = "Endboss"
	ResolvCollectible = "Collectible"
	ResolvBubble      = "Bubble"
)
