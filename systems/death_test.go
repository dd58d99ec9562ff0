package systems

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDieIsIdempotent(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 200)

	Die(c)
	anim := components.Animation.Get(c)
	require.Equal(t, cfg.Dead, anim.CurrentSheet)

	// Play every death frame, which starts the float exactly once.
	for i := 0; i < 20; i++ {
		characterFrame(c)
	}
	d := components.Death.Get(c)
	require.True(t, d.FramesDone)
	tween := d.FloatTween
	require.NotNil(t, tween)

	Die(c)
	assert.Same(t, tween, d.FloatTween, "second Die must not restart the float")
	assert.Equal(t, cfg.Dead, anim.CurrentSheet)
}

func TestFloatStaysNearRestingY(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 200)
	Die(c)
	for i := 0; i < 20; i++ {
		characterFrame(c)
	}

	amp := cfg.Death.FloatAmplitude
	for i := 0; i < stepsFor(2*cfg.Death.FloatPeriod); i++ {
		UpdateDeaths(f.ecs)
		y := components.Object.Get(c).Y
		assert.InDelta(t, 200, y, amp+0.001)
	}
}

func TestBossDeathFreezes(t *testing.T) {
	f := newFixture(t)
	boss := f.spawnedBoss(1750, 0)
	components.Endboss.Get(boss).IsAttacking = true

	Die(boss)
	assert.Equal(t, components.DeathFreeze, components.Death.Get(boss).Mode)
	assert.Equal(t, components.BossDead, components.Endboss.Get(boss).Phase)
	assert.Contains(t, f.sound.Calls, soundCall("stop", cfg.SoundEndbossBite))

	for i := 0; i < 20; i++ {
		endbossFrame(boss)
	}
	d := components.Death.Get(boss)
	assert.True(t, d.FramesDone)
	assert.Nil(t, d.FloatTween)
}

func TestDeadFliesAwayAndIsRemoved(t *testing.T) {
	f := newFixture(t)
	jelly := factory.CreateJellyFish(f.ecs, 300, 100, false, f.rng)

	Dead(jelly)
	Dead(jelly)
	assert.True(t, components.Jelly.Get(jelly).IsDead)
	assert.False(t, isLive(jelly))

	startY := components.Object.Get(jelly).Y
	UpdateDeaths(f.ecs)
	assert.Less(t, components.Object.Get(jelly).Y, startY, "drifts up at once")

	for i := 0; i < 200 && !components.Death.Get(jelly).MarkedForRemoval; i++ {
		UpdateDeaths(f.ecs)
	}
	require.True(t, components.Death.Get(jelly).MarkedForRemoval)

	UpdateRemovals(f.ecs)
	assert.False(t, jelly.Valid())
}

func TestSpiralFadesOut(t *testing.T) {
	f := newFixture(t)
	puffer := factory.CreatePufferFish(f.ecs, 300, 100, f.rng)

	Spiral(puffer)
	sched := schedulerOf(puffer)
	for i := 0; i < 100 && !components.Death.Get(puffer).MarkedForRemoval; i++ {
		sched.Advance(cfg.Death.SpiralInterval)
	}

	obj := components.Object.Get(puffer)
	assert.True(t, components.Death.Get(puffer).MarkedForRemoval)
	assert.NotZero(t, obj.Rotation)
	assert.True(t, obj.Opacity <= 0 || obj.Y > cfg.Death.SpiralMaxY)
	assert.Zero(t, sched.Len(), "spiral task cancels itself")
}
