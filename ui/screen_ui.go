package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Action is one button of a screen.
type Action struct {
	Label   string
	OnClick func()
}

// ScreenUI is a full-screen panel with a title, a few lines of text and a
// row of buttons. The start and end screens are built from it.
type ScreenUI struct {
	UI *ebitenui.UI

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewScreenUI(title string, lines []string, actions []Action) *ScreenUI {
	ui := &ScreenUI{}
	ui.loadFonts()
	ui.buildUI(title, lines, actions)
	return ui
}

func (ui *ScreenUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *ScreenUI) buildUI(title string, lines []string, actions []Action) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 40, 90, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 0, 255},
		}),
	))
	for _, line := range lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 220, 255, 255},
			}),
		))
	}
	contentContainer.AddChild(ui.buildButtons(actions))

	rootContainer.AddChild(contentContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ScreenUI) buildButtons(actions []Action) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	for _, action := range actions {
		onClick := action.OnClick
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 36)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{20, 110, 140, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{40, 150, 180, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{10, 80, 100, 255}),
			}),
			widget.ButtonOpts.Text(action.Label, &ui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		container.AddChild(btn)
	}

	return container
}

func (ui *ScreenUI) Update() {
	ui.UI.Update()
}

func (ui *ScreenUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
