package scenes

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T) (*World, *ports.RecordingSound, *ports.RecordingNotifier) {
	t.Helper()
	sound := ports.NewRecordingSound()
	notes := &ports.RecordingNotifier{}
	w, err := NewWorld(WorldOptions{Sound: sound, Notifier: notes})
	require.NoError(t, err)
	return w, sound, notes
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func characterObject(t *testing.T, w *World) *components.ObjectData {
	t.Helper()
	c, ok := tags.Character.First(w.ECS().World)
	require.True(t, ok)
	return components.Object.Get(c)
}

func TestNewWorldPopulatesLevel(t *testing.T) {
	w, _, _ := newTestWorld(t)

	assert.Equal(t, 1, count(w.ECS(), tags.Character))
	assert.Equal(t, 8, count(w.ECS(), tags.Enemy))
	assert.Equal(t, 10, count(w.ECS(), tags.Coin))
	assert.Equal(t, 5, count(w.ECS(), tags.Poison))
	assert.Len(t, w.Frame().HUD, 3, "boss bar hidden")

	obj := characterObject(t, w)
	assert.Equal(t, cfg.Character.StartX, obj.X)
	assert.Equal(t, cfg.Character.StartY, obj.Y)
}

func TestWorldMovesCharacter(t *testing.T) {
	w, sound, _ := newTestWorld(t)
	w.Start()
	assert.True(t, sound.Looping[cfg.SoundAmbient])

	w.Keyboard().Right = true
	for i := 0; i < 10; i++ {
		w.Update()
	}
	assert.Equal(t, cfg.Character.StartX+10*cfg.Character.Speed, characterObject(t, w).X)
	assert.Positive(t, sound.Count(cfg.SoundSwim))
}

func TestWorldPauseFreezesMovement(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Start()
	w.PauseAllAnimations()
	require.True(t, w.Paused())

	w.Keyboard().Right = true
	w.Update()
	assert.Equal(t, cfg.Character.StartX, characterObject(t, w).X)

	w.ResumeAllAnimations()
	assert.False(t, w.Paused())
	w.Update()
	assert.Equal(t, cfg.Character.StartX+cfg.Character.Speed, characterObject(t, w).X)
}

func TestWorldResetStopsForGood(t *testing.T) {
	w, sound, _ := newTestWorld(t)
	w.Start()
	w.Keyboard().Left = true

	w.Reset()
	assert.True(t, w.Stopped())
	assert.False(t, w.Keyboard().Left)
	assert.Contains(t, sound.Calls, ports.SoundCall{Op: "stopAll"})
	assert.Equal(t, cfg.OutcomeNone, w.Outcome())

	w.Start()
	w.Keyboard().Right = true
	w.Update()
	assert.Equal(t, cfg.Character.StartX, characterObject(t, w).X)
}
