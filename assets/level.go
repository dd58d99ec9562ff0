package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/sharkie/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// Spawn is one placed object of a level.
type Spawn struct {
	Kind       config.EntityKind
	X, Y, W, H float64
	Image      string // backgrounds only
}

// Level is the immutable content of one level file.
type Level struct {
	Name        string
	Width       int
	Height      int
	LevelEndX   float64
	Enemies     []Spawn
	Coins       []Spawn
	Poison      []Spawn
	Lights      []Spawn
	Backgrounds []Spawn
}

// LoadLevel parses a TMX file. It takes an fs.FS so the host can pass the
// embedded levels or a directory on disk.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Level":
			for _, o := range og.Objects {
				if o.Name == "level-end" {
					level.LevelEndX = o.X
				}
			}
		case "Backgrounds":
			for _, o := range og.Objects {
				level.Backgrounds = append(level.Backgrounds, Spawn{
					Kind:  config.KindBackground,
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Image: o.Properties.GetString("image"),
				})
			}
		case "Lights":
			for _, o := range og.Objects {
				level.Lights = append(level.Lights, spawnOf(config.KindLight, o))
			}
		case "Enemies":
			for _, o := range og.Objects {
				kind, ok := config.ParseEntityKind(o.Name)
				if !ok || !isEnemy(kind) {
					return nil, fmt.Errorf("level %s: object %d: unknown enemy %q", tmxPath, o.ID, o.Name)
				}
				level.Enemies = append(level.Enemies, spawnOf(kind, o))
			}
		case "Coins":
			for _, o := range og.Objects {
				level.Coins = append(level.Coins, spawnOf(config.KindCoin, o))
			}
		case "Poison":
			for _, o := range og.Objects {
				level.Poison = append(level.Poison, spawnOf(config.KindPoison, o))
			}
		}
	}

	if level.LevelEndX <= 0 {
		return nil, fmt.Errorf("level %s: missing level-end object", tmxPath)
	}

	// Left to right, so spawn order does not depend on the editor's object IDs
	for _, spawns := range [][]Spawn{level.Enemies, level.Coins, level.Poison} {
		sort.SliceStable(spawns, func(i, j int) bool {
			return spawns[i].X < spawns[j].X
		})
	}

	return level, nil
}

// LoadEmbeddedLevel loads one of the levels shipped in the binary.
func LoadEmbeddedLevel(name string) (*Level, error) {
	return LoadLevel(levelFS, filepath.ToSlash(filepath.Join("levels", name+".tmx")))
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	return names, nil
}

func spawnOf(kind config.EntityKind, o *tiled.Object) Spawn {
	return Spawn{Kind: kind, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func isEnemy(kind config.EntityKind) bool {
	switch kind {
	case config.KindPufferFish, config.KindJellyFish, config.KindDangerousJellyFish, config.KindEndboss:
		return true
	}
	return false
}
