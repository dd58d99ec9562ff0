package systems

import (
	"fmt"
	"image/color"
	"io/fs"
	"math"

	"github.com/automoto/sharkie/assets"
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/fonts"
	"github.com/automoto/sharkie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sprite is one quad of the draw list.
type Sprite struct {
	Kind       cfg.EntityKind
	Image      string
	X, Y, W, H float64
	Mirrored   bool
	Rotation   float64 // degrees
	Opacity    float64
	Hurt       bool
}

// Label is HUD text anchored at its baseline.
type Label struct {
	Text string
	X, Y float64
}

// Frame is everything the host draws for one render tick.
type Frame struct {
	CameraX float64
	World   []Sprite
	HUD     []Sprite
	Labels  []Label
}

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	imageLoader  = assets.NewImageLoader(nil)
	hurtTint     = []float32{1, 0.2, 0.2, 0.5}
	placeholders = map[cfg.EntityKind]color.RGBA{
		cfg.KindBackground:         cfg.DeepBlue,
		cfg.KindLight:              cfg.LightOverlay,
		cfg.KindCharacter:          cfg.Orange,
		cfg.KindPufferFish:         cfg.Green,
		cfg.KindJellyFish:          cfg.Purple,
		cfg.KindDangerousJellyFish: cfg.Pink,
		cfg.KindEndboss:            cfg.Gray,
		cfg.KindCoin:               cfg.Yellow,
		cfg.KindPoison:             cfg.Teal,
		cfg.KindBubble:             cfg.LightBlue,
	}
)

// UseAssets points the renderers at an image directory. Without one every
// sprite is drawn as a placeholder rectangle.
func UseAssets(fsys fs.FS) {
	imageLoader = assets.NewImageLoader(fsys)
}

// CollectFrame builds the draw list in paint order.
func CollectFrame(ecs *ecs.ECS) Frame {
	hud, labels := collectHUD(ecs.World)
	return Frame{
		CameraX: GetOrCreateCamera(ecs.World).X,
		World:   collectWorld(ecs.World),
		HUD:     hud,
		Labels:  labels,
	}
}

func collectWorld(w donburi.World) []Sprite {
	var out []Sprite
	add := func(e *donburi.Entry) {
		out = append(out, spriteOf(e))
	}

	tags.Background.Each(w, add)
	tags.Light.Each(w, add)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Death.Get(e).MarkedForRemoval || !isVisibleEnemy(e) {
			return
		}
		add(e)
	})
	tags.Bubble.Each(w, func(e *donburi.Entry) {
		if !components.Bubble.Get(e).MarkForRemoval {
			add(e)
		}
	})
	tags.Coin.Each(w, add)
	tags.Poison.Each(w, add)
	tags.Character.Each(w, add)
	return out
}

func spriteOf(e *donburi.Entry) Sprite {
	obj := components.Object.Get(e)
	s := Sprite{
		Kind:     obj.Kind,
		Image:    obj.Image,
		X:        obj.X,
		Y:        obj.Y,
		W:        obj.W,
		H:        obj.H,
		Mirrored: obj.Mirrored,
		Rotation: obj.Rotation,
		Opacity:  obj.Opacity,
	}
	if e.HasComponent(components.Animation) {
		if img := components.Animation.Get(e).Image(); img != "" {
			s.Image = img
		}
	}
	if e.HasComponent(components.Energy) && isLive(e) {
		s.Hurt = IsHurt(e)
	}
	return s
}

func collectHUD(w donburi.World) ([]Sprite, []Label) {
	var sprites []Sprite
	var labels []Label

	for _, kind := range []components.BarKind{components.BarLife, components.BarCoin, components.BarPoison, components.BarBoss} {
		bar := GetBar(w, kind)
		if bar == nil || !bar.Visible {
			continue
		}
		sprites = append(sprites, Sprite{
			Image:   cfg.BarImage(kind.String(), bar.Bucket()),
			X:       bar.Rect.X,
			Y:       bar.Rect.Y,
			W:       bar.Rect.Width,
			H:       bar.Rect.Height,
			Opacity: 1,
		})

		switch kind {
		case components.BarCoin:
			labels = append(labels, Label{fmt.Sprintf("%d / %d", bar.Collected, bar.Max), cfg.Bars.CoinCounterX, cfg.Bars.CounterY + bar.Rect.Y})
		case components.BarPoison:
			labels = append(labels, Label{fmt.Sprintf("%d / %d", bar.Collected, bar.Max), cfg.Bars.PoisonCounterX, cfg.Bars.CounterY + bar.Rect.Y})
		case components.BarBoss:
			labels = append(labels, Label{"Endboss", cfg.Bars.BossLabelX, cfg.Bars.BossLabelY})
		}
	}
	return sprites, labels
}

// DrawWorld paints the camera-translated layer.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := GetOrCreateCamera(ecs.World).X
	for _, s := range collectWorld(ecs.World) {
		drawSprite(screen, s, camX)
	}
	if cfg.Debug.DrawHitboxes {
		drawHitboxes(ecs, screen, camX)
	}
}

// DrawHUD paints the status bars and their text.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sprites, labels := collectHUD(ecs.World)
	for _, s := range sprites {
		drawSprite(screen, s, 0)
	}
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	for _, l := range labels {
		text.Draw(screen, l.Text, face, int(l.X), int(l.Y), cfg.White)
	}
}

func drawSprite(screen *ebiten.Image, s Sprite, camX float64) {
	if s.Opacity <= 0 || s.W <= 0 || s.H <= 0 {
		return
	}
	img := imageLoader.Image(s.Image)
	if img == nil {
		c := placeholders[s.Kind]
		if s.Image != "" && c == (color.RGBA{}) {
			c = cfg.Gray
		}
		c.A = uint8(float64(c.A) * math.Min(1, s.Opacity))
		vector.DrawFilledRect(screen, float32(s.X+camX), float32(s.Y), float32(s.W), float32(s.H), c, false)
		return
	}

	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	geo := ebiten.GeoM{}
	geo.Scale(s.W/float64(bw), s.H/float64(bh))
	if s.Mirrored {
		geo.Scale(-1, 1)
		geo.Translate(s.W, 0)
	}
	if s.Rotation != 0 {
		geo.Translate(-s.W/2, -s.H/2)
		geo.Rotate(s.Rotation * math.Pi / 180)
		geo.Translate(s.W/2, s.H/2)
	}
	geo.Translate(s.X+camX, s.Y)

	if s.Hurt && assets.TintShader != nil {
		shaderOp.GeoM = geo
		shaderOp.ColorScale.Reset()
		shaderOp.ColorScale.ScaleAlpha(float32(s.Opacity))
		shaderOp.Images[0] = img
		shaderOp.Uniforms = map[string]any{"Tint": hurtTint}
		screen.DrawRectShader(bw, bh, assets.TintShader, shaderOp)
		return
	}

	drawOp.GeoM = geo
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(float32(s.Opacity))
	screen.DrawImage(img, drawOp)
}

func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image, camX float64) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Body == nil {
			return
		}
		b := BoxOf(obj)
		vector.StrokeRect(screen, float32(b.X+camX), float32(b.Y), float32(b.W), float32(b.H), 1, cfg.Red, false)
	})
}
