package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/sharkie/assets"
	"github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/fonts"
	"github.com/automoto/sharkie/scenes"
	"github.com/automoto/sharkie/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	session.Changer = g

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(session)
	} else {
		g.scene = scenes.NewMenuScene(session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	assetDir := flag.String("assets", "assets", "directory holding img/ and audio/")
	tunablesPath := flag.String("tunables", "", "YAML file overriding gameplay tunables")
	watch := flag.Bool("watch", false, "reload the tunables file on change; applies from the next match")
	levelName := flag.String("level", "level1", "embedded level to play")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "draw hitboxes")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start playing immediately")
	flag.Parse()

	if *tunablesPath != "" {
		t, err := config.LoadTunables(*tunablesPath)
		if err != nil {
			log.Printf("Warning: Could not load tunables, using defaults: %v", err)
		} else {
			config.Apply(t)
		}
	}

	session := &scenes.Session{}

	if *watch && *tunablesPath != "" {
		watcher, err := config.WatchTunables(*tunablesPath)
		if err != nil {
			log.Printf("Warning: Could not watch tunables: %v", err)
		} else {
			defer watcher.Close()
			session.BeforeMatch = func() {
				if t, ok := watcher.Take(); ok {
					config.Apply(t)
					log.Printf("tunables reloaded from %s", *tunablesPath)
				}
			}
		}
	}

	level, err := assets.LoadEmbeddedLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", *levelName, err)
	}
	session.Level = level

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	assetFS := os.DirFS(*assetDir)
	systems.UseAssets(assetFS)
	session.Sound = systems.NewEbitenSound(assetFS)
	session.Sound.PreloadAll()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		session.Sound.SetMuted(saved.Muted)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sharkie")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
