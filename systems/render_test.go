package systems

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(sprites []Sprite) []cfg.EntityKind {
	out := make([]cfg.EntityKind, 0, len(sprites))
	for _, s := range sprites {
		out = append(out, s.Kind)
	}
	return out
}

func TestCollectFramePaintOrder(t *testing.T) {
	f := newFixture(t)
	f.character(0, 0)
	factory.CreatePoison(f.ecs, 300, 80)
	factory.CreateCoin(f.ecs, 200, 80)
	factory.CreatePufferFish(f.ecs, 400, 80, f.rng)
	factory.CreateEndboss(f.ecs, 1750, 0)
	gone := factory.CreateBubble(f.ecs, 100, 100, 1, false)
	components.Bubble.Get(gone).MarkForRemoval = true

	frame := CollectFrame(f.ecs)
	assert.Equal(t, []cfg.EntityKind{
		cfg.KindPufferFish,
		cfg.KindCoin,
		cfg.KindPoison,
		cfg.KindCharacter,
	}, kinds(frame.World), "dormant boss and removed bubbles are not drawn")
}

func TestCollectFrameUsesAnimationImage(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)

	frame := CollectFrame(f.ecs)
	require.Len(t, frame.World, 1)
	assert.Equal(t, components.Animation.Get(c).Image(), frame.World[0].Image)
	assert.False(t, frame.World[0].Hurt)

	Hit(c, 10, nil)
	assert.True(t, CollectFrame(f.ecs).World[0].Hurt)
}

func TestCollectFrameHUD(t *testing.T) {
	f := newFixture(t)
	boss := factory.CreateEndboss(f.ecs, 1750, 0)

	frame := CollectFrame(f.ecs)
	require.Len(t, frame.HUD, 3)
	assert.Equal(t, cfg.BarImage("life", 5), frame.HUD[0].Image)
	assert.Equal(t, cfg.BarImage("coin", 0), frame.HUD[1].Image)
	require.Len(t, frame.Labels, 2)
	assert.Equal(t, "0 / 10", frame.Labels[0].Text)
	assert.Equal(t, "0 / 5", frame.Labels[1].Text)

	addBarItem(f.ecs.World, components.BarPoison)
	addBarItem(f.ecs.World, components.BarPoison)
	setBar(f.ecs.World, components.BarLife, 50)
	components.Endboss.Get(boss).Phase = components.BossActive
	showBossBar(f.ecs.World)

	frame = CollectFrame(f.ecs)
	require.Len(t, frame.HUD, 4)
	assert.Equal(t, cfg.BarImage("life", 2), frame.HUD[0].Image)
	assert.Equal(t, cfg.BarImage("poison", 1), frame.HUD[2].Image)
	assert.Equal(t, cfg.BarImage("boss", 5), frame.HUD[3].Image)
	require.Len(t, frame.Labels, 3)
	assert.Equal(t, "2 / 5", frame.Labels[1].Text)
	assert.Equal(t, "Endboss", frame.Labels[2].Text)
	assert.Contains(t, kinds(frame.World), cfg.KindEndboss)
}
