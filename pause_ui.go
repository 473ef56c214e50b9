package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuPanelColor = color.NRGBA{A: 200}
	menuButton     = imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	menuButtonDown = imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
)

// NewPauseUI builds the pause menu: Resume, Restart and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	winW, winH := g.world.Config().Camera.WindowSize()
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(winW/2, winH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", &face, menuTextColor),
		widget.TextOpts.WidgetOpts(centeredInRow()),
	))
	panel.AddChild(menuEntry("Resume", &face, func() { g.paused = false }))
	panel.AddChild(menuEntry("Restart", &face, g.restart))
	panel.AddChild(menuEntry("Quit", &face, func() { g.quit = true }))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func menuEntry(label string, face *ebtext.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: menuButton, Hover: menuButton, Pressed: menuButtonDown}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: menuTextColor}),
		widget.ButtonOpts.WidgetOpts(centeredInRow()),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func centeredInRow() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}
