package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI is the collision editor's toolbar: save/load/clear for the
// painted override grid and a cell-size toggle.
type EditorUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSave       func()
	OnRevert     func()
	OnClear      func()
	OnToggleCell func()

	stageLabel *widget.Label
	cellLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewEditorUI creates the toolbar with the given action callbacks.
func NewEditorUI(onSave, onRevert, onClear, onToggleCell func()) *EditorUI {
	eui := &EditorUI{
		OnSave:       onSave,
		OnRevert:     onRevert,
		OnClear:      onClear,
		OnToggleCell: onToggleCell,
	}

	eui.loadFonts()
	eui.buildUI()

	return eui
}

func (eui *EditorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	eui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	eui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (eui *EditorUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	toolbar.AddChild(eui.actionButton("Save", eui.OnSave))
	toolbar.AddChild(eui.actionButton("Revert", eui.OnRevert))
	toolbar.AddChild(eui.actionButton("Clear", eui.OnClear))
	toolbar.AddChild(eui.actionButton("Cell size", eui.OnToggleCell))

	eui.cellLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	toolbar.AddChild(eui.cellLabel)

	eui.stageLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	toolbar.AddChild(eui.stageLabel)

	rootContainer.AddChild(toolbar)

	eui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (eui *EditorUI) actionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 20)),
		widget.ButtonOpts.Image(eui.buttonImage()),
		widget.ButtonOpts.Text(label, &eui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (eui *EditorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetStatus updates the toolbar labels.
func (eui *EditorUI) SetStatus(stage string, cellSize float64, cells int) {
	eui.stageLabel.Label = fmt.Sprintf("%s  (%d painted)", stage, cells)
	eui.cellLabel.Label = fmt.Sprintf("cell %.0f", cellSize)
}
