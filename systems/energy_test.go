package systems

import (
	"testing"
	"time"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEnergyStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		c := f.character(0, 0)

		hits := rapid.SliceOfN(rapid.IntRange(-50, 150), 1, 20).Draw(rt, "hits")
		for _, dmg := range hits {
			Hit(c, dmg, nil)
			f.advance(cfg.C.Invulnerability)

			got := components.Energy.Get(c).Current
			if got < 0 || got > cfg.Character.Energy {
				rt.Fatalf("energy %d out of range after damage %d", got, dmg)
			}
		}
	})
}

func TestInvulnerabilityWindow(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)

	require.True(t, Hit(c, 10, nil))
	assert.True(t, IsHurt(c))

	f.advance(cfg.C.Invulnerability - time.Millisecond)
	assert.False(t, Hit(c, 10, nil), "hit inside the window is ignored")
	assert.Equal(t, 90, components.Energy.Get(c).Current)

	f.advance(time.Millisecond)
	assert.False(t, IsHurt(c))
	assert.True(t, Hit(c, 10, nil))
	assert.Equal(t, 80, components.Energy.Get(c).Current)
}

func TestSixHitsOfTwenty(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)

	for i := 0; i < 6; i++ {
		Hit(c, 20, nil)
		f.advance(cfg.C.Invulnerability)
	}

	assert.Equal(t, 0, components.Energy.Get(c).Current)
	assert.True(t, IsDead(c))
	d := components.Death.Get(c)
	assert.True(t, d.HasDied)
	assert.Equal(t, components.DeathFloat, d.Mode)
}

func TestHitRecordsSourceKind(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	puffer := factory.CreatePufferFish(f.ecs, 500, 0, f.rng)

	require.True(t, Hit(c, 10, puffer))
	energy := components.Energy.Get(c)
	assert.Equal(t, puffer.Entity(), energy.LastSource)
	assert.Equal(t, cfg.KindPufferFish, energy.LastSourceKind)
}

func TestBossNotDamageableBeforeSpawn(t *testing.T) {
	f := newFixture(t)
	boss := factory.CreateEndboss(f.ecs, 1750, 0)

	assert.False(t, Hit(boss, 20, nil))
	assert.Equal(t, cfg.Endboss.Energy, components.Energy.Get(boss).Current)

	components.Endboss.Get(boss).Phase = components.BossSpawning
	assert.False(t, Hit(boss, 20, nil))

	components.Endboss.Get(boss).SpawnCompleted = true
	components.Endboss.Get(boss).Phase = components.BossActive
	assert.True(t, Hit(boss, 20, nil))
	assert.Equal(t, cfg.Endboss.Energy-20, components.Energy.Get(boss).Current)
	assert.True(t, components.Endboss.Get(boss).Hurting)
}

func TestDeadEntityIgnoresHits(t *testing.T) {
	f := newFixture(t)
	jelly := factory.CreateJellyFish(f.ecs, 300, 100, false, f.rng)
	Dead(jelly)

	assert.False(t, Hit(jelly, 1, nil))
	assert.False(t, Hit(nil, 1, nil))
}
