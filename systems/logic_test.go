package systems

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubbleKillsJellyFish(t *testing.T) {
	f := newFixture(t)
	jelly := factory.CreateJellyFish(f.ecs, 300, 100, true, f.rng)
	bubble := factory.CreateBubble(f.ecs, 320, 120, 1, false)

	CheckBubbleEnemyCollision(f.ecs)

	assert.True(t, components.Death.Get(jelly).IsFlyingAway)
	assert.True(t, components.Bubble.Get(bubble).MarkForRemoval)

	RemoveMarkedBubbles(f.ecs)
	assert.False(t, bubble.Valid())
}

func TestPlainBubblePassesThroughBoss(t *testing.T) {
	f := newFixture(t)
	boss := f.spawnedBoss(1000, 0)
	bubble := factory.CreateBubble(f.ecs, 1100, 230, 1, false)

	CheckBubbleEndbossCollision(f.ecs)

	assert.Equal(t, cfg.Endboss.Energy, components.Energy.Get(boss).Current)
	assert.False(t, components.Bubble.Get(bubble).MarkForRemoval)
	assert.Zero(t, f.sound.Count(cfg.SoundBubbleHit))
}

func TestPoisonedBubbleDamagesBoss(t *testing.T) {
	f := newFixture(t)
	boss := f.spawnedBoss(1000, 0)
	showBossBar(f.ecs.World)
	bubble := factory.CreateBubble(f.ecs, 1100, 230, 1, true)

	CheckBubbleEndbossCollision(f.ecs)

	assert.Equal(t, cfg.Endboss.Energy-cfg.Bubble.Damage, components.Energy.Get(boss).Current)
	assert.True(t, components.Bubble.Get(bubble).MarkForRemoval)
	assert.Equal(t, 1, f.sound.Count(cfg.SoundBubbleHit))
	assert.Equal(t, 80.0, GetBar(f.ecs.World, components.BarBoss).Percentage)
}

func TestDormantBossIgnoresBubbles(t *testing.T) {
	f := newFixture(t)
	boss := factory.CreateEndboss(f.ecs, 1000, 0)
	bubble := factory.CreateBubble(f.ecs, 1100, 230, 1, true)

	CheckBubbleEndbossCollision(f.ecs)

	assert.Equal(t, cfg.Endboss.Energy, components.Energy.Get(boss).Current)
	assert.False(t, components.Bubble.Get(bubble).MarkForRemoval)
}

func TestSpawningBossLetsBubblesPass(t *testing.T) {
	f := newFixture(t)
	boss := factory.CreateEndboss(f.ecs, 1000, 0)
	components.Endboss.Get(boss).Phase = components.BossSpawning
	bubble := factory.CreateBubble(f.ecs, 1100, 230, 1, true)

	CheckBubbleEndbossCollision(f.ecs)

	assert.Equal(t, cfg.Endboss.Energy, components.Energy.Get(boss).Current)
	assert.False(t, components.Bubble.Get(bubble).MarkForRemoval)
	assert.Zero(t, f.sound.Count(cfg.SoundBubbleHit))
}

func TestBubbleDuringInvulnerabilityIsSilent(t *testing.T) {
	f := newFixture(t)
	boss := f.spawnedBoss(1000, 0)

	factory.CreateBubble(f.ecs, 1100, 230, 1, true)
	CheckBubbleEndbossCollision(f.ecs)
	RemoveMarkedBubbles(f.ecs)

	second := factory.CreateBubble(f.ecs, 1100, 230, 1, true)
	CheckBubbleEndbossCollision(f.ecs)

	assert.True(t, components.Bubble.Get(second).MarkForRemoval)
	assert.Equal(t, cfg.Endboss.Energy-cfg.Bubble.Damage, components.Energy.Get(boss).Current)
	assert.Equal(t, 1, f.sound.Count(cfg.SoundBubbleHit))
}

func TestBossTakesSixPoisonedBubbles(t *testing.T) {
	f := newFixture(t)
	boss := f.spawnedBoss(1000, 0)

	for i := 0; i < 6; i++ {
		factory.CreateBubble(f.ecs, 1100, 230, 1, true)
		CheckBubbleEndbossCollision(f.ecs)
		RemoveMarkedBubbles(f.ecs)
		f.advance(cfg.C.Invulnerability)
	}

	assert.Equal(t, 0, components.Energy.Get(boss).Current)
	assert.True(t, components.Death.Get(boss).HasDied)
	assert.Equal(t, 5, f.sound.Count(cfg.SoundBubbleHit), "a dead boss stops popping bubbles")
}

func TestFifthPoisonBottleTriggersOnce(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	for i := 0; i < 6; i++ {
		factory.CreatePoison(f.ecs, 60, 80)
	}

	CheckCollectables(f.ecs)
	CheckCollectables(f.ecs)

	char := components.Character.Get(c)
	assert.Equal(t, cfg.Character.MaxPoison, char.PoisonBottles)
	assert.True(t, char.AllPoisonCollected)
	assert.Equal(t, 6, f.sound.Count(cfg.SoundCollectedPoison))
	assert.Equal(t, 1, f.sound.Count(cfg.SoundAllPoisonCollected))
	assert.Equal(t, 1, f.notes.Count(ports.NotifyPowerUp))

	bar := GetBar(f.ecs.World, components.BarPoison)
	assert.Equal(t, 100.0, bar.Percentage)
	assert.Equal(t, 5, bar.Bucket())
}

func TestCoinPickup(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	coin := factory.CreateCoin(f.ecs, 100, 120)

	CheckCollectables(f.ecs)
	assert.Equal(t, 1, components.Character.Get(c).Coins)
	assert.Equal(t, components.CollectBeingCollected, components.Collectible.Get(coin).State)
	assert.Equal(t, 10.0, GetBar(f.ecs.World, components.BarCoin).Percentage)
	assert.False(t, Collect(coin), "a coin is collected once")

	for i := 0; i < stepsFor(cfg.Collectible.CollectDuration)+1; i++ {
		UpdateCollectibles(f.ecs)
	}
	assert.InDelta(t, 120+cfg.Collectible.CollectRise, components.Object.Get(coin).Y, 0.01)
	assert.Equal(t, components.CollectRemoved, components.Collectible.Get(coin).State)

	UpdateRemovals(f.ecs)
	assert.False(t, coin.Valid())
	assert.Equal(t, 1, f.sound.Count(cfg.SoundCollectedCoin))
}

func TestEnemyContactHurtsCharacter(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	factory.CreateJellyFish(f.ecs, 100, 50, false, f.rng)

	CheckEnemyCollisions(f.ecs)
	assert.Equal(t, 100-cfg.Jelly.Normal.Damage, components.Energy.Get(c).Current)
	assert.Equal(t, 1, f.sound.Count(cfg.SoundHurt))
	assert.Equal(t, 90.0, GetBar(f.ecs.World, components.BarLife).Percentage)

	CheckEnemyCollisions(f.ecs)
	assert.Equal(t, 1, f.sound.Count(cfg.SoundHurt), "still invulnerable")
}

func TestNoContactDamageWhileAttacking(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	factory.CreateJellyFish(f.ecs, 100, 50, false, f.rng)
	components.Character.Get(c).IsAttacking = true

	CheckEnemyCollisions(f.ecs)
	assert.Equal(t, cfg.Character.Energy, components.Energy.Get(c).Current)
}

func TestDormantBossHasNoContact(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	factory.CreateEndboss(f.ecs, -50, -200)

	CheckEnemyCollisions(f.ecs)
	assert.Equal(t, cfg.Character.Energy, components.Energy.Get(c).Current)
}

func TestSpaceIsEdgeTriggered(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	sched := schedulerOf(c)

	f.kb.Space = true
	CheckAttack(f.ecs)
	require.True(t, components.Character.Get(c).IsAttacking)
	sched.Advance(cfg.Character.MeleeDuration)
	require.False(t, components.Character.Get(c).IsAttacking)

	CheckAttack(f.ecs)
	assert.Equal(t, 1, f.sound.Count(cfg.SoundFinSlap), "held key does not repeat")

	f.kb.Space = false
	CheckAttack(f.ecs)
	f.kb.Space = true
	CheckAttack(f.ecs)
	assert.Equal(t, 2, f.sound.Count(cfg.SoundFinSlap))
}

func TestDKeyThrowsBubble(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)

	f.kb.D = true
	CheckThrowObjects(f.ecs)
	assert.True(t, components.Character.Get(c).IsAttacking)
	assert.Equal(t, cfg.BubbleTrap, components.Character.Get(c).Attack)
}
