package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/wirecubes/config"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// WindowsUI is the HUD panel for managing virtual windows
type WindowsUI struct {
	UI *ebitenui.UI

	OnAdd    func()
	OnRemove func()
	OnReset  func()

	panel       *widget.Container
	countLabel  *widget.Label
	removeBtn   *widget.Button
	normalFace  text.Face
	smallFace   text.Face
	lastCount   int
	lastRemove  bool
	initialized bool
}

func NewWindowsUI(onAdd, onRemove, onReset func()) (*WindowsUI, error) {
	ui := &WindowsUI{
		OnAdd:    onAdd,
		OnRemove: onRemove,
		OnReset:  onReset,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *WindowsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (ui *WindowsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(config.HUD.PanelPadding)
	ui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(config.HUD.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ui.countLabel = widget.NewLabel(
		widget.LabelOpts.Text(countText(0), &ui.normalFace, &widget.LabelColor{
			Idle: config.HUD.LabelColor,
		}),
	)
	ui.panel.AddChild(ui.countLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	buttons.AddChild(ui.newButton("Add", func() {
		if ui.OnAdd != nil {
			ui.OnAdd()
		}
	}))
	ui.removeBtn = ui.newButton("Remove", func() {
		if ui.OnRemove != nil {
			ui.OnRemove()
		}
	})
	buttons.AddChild(ui.removeBtn)
	buttons.AddChild(ui.newButton("Reset view", func() {
		if ui.OnReset != nil {
			ui.OnReset()
		}
	}))
	ui.panel.AddChild(buttons)

	rootContainer.AddChild(ui.panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *WindowsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     eimage.NewNineSliceColor(config.HUD.ButtonIdle),
			Hover:    eimage.NewNineSliceColor(config.HUD.ButtonHover),
			Pressed:  eimage.NewNineSliceColor(config.HUD.ButtonPress),
			Disabled: eimage.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
			Idle:     config.HUD.TextColor,
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetState refreshes the window count and whether Remove is available.
func (ui *WindowsUI) SetState(count int, canRemove bool) {
	if ui.initialized && count == ui.lastCount && canRemove == ui.lastRemove {
		return
	}
	ui.initialized = true
	ui.lastCount = count
	ui.lastRemove = canRemove

	ui.countLabel.Label = countText(count)
	ui.removeBtn.GetWidget().Disabled = !canRemove
}

// Contains reports whether the screen position lies on the panel.
func (ui *WindowsUI) Contains(x, y int) bool {
	if ui.panel == nil {
		return false
	}
	return image.Pt(x, y).In(ui.panel.GetWidget().Rect)
}

func (ui *WindowsUI) Update() {
	ui.UI.Update()
}

func countText(n int) string {
	if n == 1 {
		return "1 window"
	}
	return fmt.Sprintf("%d windows", n)
}
