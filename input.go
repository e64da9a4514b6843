package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled per-frame input state.
type Input struct {
	// PanX/PanY are -1, 0 or +1 per axis while the arrow keys are held.
	PanX float64
	PanY float64
	// ZoomInPressed/ZoomOutPressed are true only on the frame the key went down.
	ZoomInPressed  bool
	ZoomOutPressed bool
	// QuitRequested is true once the user asked to close, either with Escape
	// or the window close button.
	QuitRequested bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the window close request.
func (i *Input) Update() {
	i.PanX, i.PanY = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.PanX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.PanX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		i.PanY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		i.PanY += 1
	}

	i.ZoomInPressed = inpututil.IsKeyJustPressed(ebiten.KeyEqual) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPAdd)
	i.ZoomOutPressed = inpututil.IsKeyJustPressed(ebiten.KeyMinus) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract)

	i.QuitRequested = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		ebiten.IsWindowBeingClosed()
}
