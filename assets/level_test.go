package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/sharkie/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedLevel1(t *testing.T) {
	level, err := LoadEmbeddedLevel("level1")
	require.NoError(t, err)

	assert.Equal(t, "level1", level.Name)
	assert.Equal(t, 2160, level.Width)
	assert.Equal(t, 480, level.Height)
	assert.Equal(t, 1425.0, level.LevelEndX)

	counts := map[config.EntityKind]int{}
	for _, s := range level.Enemies {
		counts[s.Kind]++
	}
	assert.Equal(t, 3, counts[config.KindPufferFish])
	assert.Equal(t, 3, counts[config.KindJellyFish])
	assert.Equal(t, 1, counts[config.KindDangerousJellyFish])
	assert.Equal(t, 1, counts[config.KindEndboss])

	assert.Len(t, level.Coins, 10)
	assert.Len(t, level.Poison, 5)
	assert.Len(t, level.Lights, 1)
	assert.Len(t, level.Backgrounds, 12)

	boss := level.Enemies[len(level.Enemies)-1]
	assert.Equal(t, config.KindEndboss, boss.Kind)
	assert.Equal(t, 1750.0, boss.X)

	for _, bg := range level.Backgrounds {
		assert.NotEmpty(t, bg.Image)
		assert.Contains(t, []float64{0, 720, 1440}, bg.X)
	}
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "level1")
}

const tmxHead = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="48" tileheight="48" infinite="0">
`

func TestLoadLevelRejectsUnknownEnemy(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": {Data: []byte(tmxHead + ` <objectgroup id="1" name="Level">
  <object id="1" name="level-end" x="400" y="0" width="1" height="1"/>
 </objectgroup>
 <objectgroup id="2" name="Enemies">
  <object id="2" name="shark" x="10" y="10" width="100" height="100"/>
 </objectgroup>
</map>
`)},
	}
	_, err := LoadLevel(fsys, "bad.tmx")
	assert.ErrorContains(t, err, "unknown enemy")
}

func TestLoadLevelRequiresLevelEnd(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(tmxHead + "</map>\n")},
	}
	_, err := LoadLevel(fsys, "empty.tmx")
	assert.ErrorContains(t, err, "level-end")

	_, err = LoadLevel(fsys, "missing.tmx")
	assert.Error(t, err)
}
