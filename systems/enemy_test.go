package systems

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestPufferFishTurnsAtBounds(t *testing.T) {
	f := newFixture(t)
	puffer := factory.CreatePufferFish(f.ecs, cfg.PufferFish.MinX+0.1, 100, f.rng)
	p := components.PufferFish.Get(puffer)
	obj := components.Object.Get(puffer)

	speed := p.Speed
	assert.GreaterOrEqual(t, speed, cfg.PufferFish.MinSpeed)
	assert.LessOrEqual(t, speed, cfg.PufferFish.MinSpeed+cfg.PufferFish.SpeedRange)

	UpdatePufferFish(f.ecs)
	assert.Equal(t, 1.0, p.Direction)
	assert.True(t, obj.Mirrored)

	obj.X = p.MaxX - 0.01
	UpdatePufferFish(f.ecs)
	assert.Equal(t, -1.0, p.Direction)
	assert.False(t, obj.Mirrored)
	assert.Equal(t, cfg.PufferFish.MaxX-cfg.PufferFish.Width, p.MaxX)
}

func TestJellyFishBobsBetweenBounds(t *testing.T) {
	f := newFixture(t)
	jelly := factory.CreateJellyFish(f.ecs, 300, cfg.Jelly.MinY+0.5, false, f.rng)
	j := components.Jelly.Get(jelly)
	obj := components.Object.Get(jelly)

	UpdateJellyFish(f.ecs)
	assert.False(t, j.MovingUp)

	obj.Y = cfg.Jelly.MaxY - 0.5
	UpdateJellyFish(f.ecs)
	assert.True(t, j.MovingUp)

	before := obj.Y
	UpdateJellyFish(f.ecs)
	assert.Less(t, obj.Y, before)
}

func TestDeadJellyStopsBobbing(t *testing.T) {
	f := newFixture(t)
	jelly := factory.CreateJellyFish(f.ecs, 300, 200, true, f.rng)
	Dead(jelly)

	y := components.Object.Get(jelly).Y
	UpdateJellyFish(f.ecs)
	assert.Equal(t, y, components.Object.Get(jelly).Y)
}
