package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedTunablesMatchDefaults(t *testing.T) {
	data, err := os.ReadFile("tunables.yaml")
	require.NoError(t, err)

	parsed, err := ParseTunables(data, Tunables{})
	require.NoError(t, err)
	assert.Equal(t, Current(), parsed)
}

func TestParseTunablesPartialKeepsBase(t *testing.T) {
	base := Current()
	parsed, err := ParseTunables([]byte("game:\n  invulnerability: 2s\nendboss:\n  attackInterval: 5s\n"), base)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, parsed.Game.Invulnerability)
	assert.Equal(t, 5*time.Second, parsed.Endboss.AttackInterval)
	assert.Equal(t, base.Game.LogicInterval, parsed.Game.LogicInterval)
	assert.Equal(t, base.Endboss.Damage, parsed.Endboss.Damage)
}

func TestParseTunablesRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "game:\n  nope: 1\n"},
		{"zero tps", "game:\n  tps: 0\n"},
		{"spawn fraction out of range", "character:\n  bubbleSpawnAt: 1.5\n"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Current()
			got, err := ParseTunables([]byte(tt.yaml), base)
			assert.Error(t, err)
			assert.Equal(t, base, got)
		})
	}
}

func TestLoadTunablesAndApply(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bubble:\n  maxRange: 320\n"), 0o644))

	loaded, err := LoadTunables(path)
	require.NoError(t, err)
	Apply(loaded)

	assert.Equal(t, 320.0, Bubble.MaxRange)
	assert.Equal(t, saved.Bubble.Speed, Bubble.Speed)

	_, err = LoadTunables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStepDuration(t *testing.T) {
	c := Config{TPS: 60}
	assert.Equal(t, time.Second/60, c.Step())
	c.TPS = 0
	assert.Equal(t, time.Second/60, c.Step())
}

func TestBarImageClampsBucket(t *testing.T) {
	assert.Equal(t, "img/status-bars/life-bar/100-life-bar.png", BarImage("life", 9))
	assert.Equal(t, "img/status-bars/coin-bar/0-coin-bar.png", BarImage("coin", -1))
	assert.Equal(t, "img/status-bars/poison-bar/60-poison-bar.png", BarImage("poison", 3))
}

func TestParseEntityKind(t *testing.T) {
	k, ok := ParseEntityKind("dangerous-jelly-fish")
	assert.True(t, ok)
	assert.Equal(t, KindDangerousJellyFish, k)

	_, ok = ParseEntityKind("none")
	assert.False(t, ok)
	_, ok = ParseEntityKind("shark")
	assert.False(t, ok)
}

func TestWatcherSlotKeepsNewest(t *testing.T) {
	tw := &TunablesWatcher{}
	_, ok := tw.Take()
	assert.False(t, ok)

	first, second := Defaults(), Defaults()
	first.Bubble.Speed = 1
	second.Bubble.Speed = 2
	tw.Offer(first)
	tw.Offer(second)

	got, ok := tw.Take()
	require.True(t, ok)
	assert.Equal(t, 2.0, got.Bubble.Speed)

	_, ok = tw.Take()
	assert.False(t, ok)
}

func TestWatcherReloadParsesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endboss:\n  spawnFrames: 12\n"), 0o644))

	tw := &TunablesWatcher{path: path}
	tw.reload()
	got, ok := tw.Take()
	require.True(t, ok)
	assert.Equal(t, 12, got.Endboss.SpawnFrames)
	assert.Equal(t, Defaults().Endboss.Damage, got.Endboss.Damage)

	require.NoError(t, os.WriteFile(path, []byte("endboss:\n  spawnFrames: 0\n"), 0o644))
	tw.reload()
	_, ok = tw.Take()
	assert.False(t, ok, "invalid file must not replace the slot")
}
