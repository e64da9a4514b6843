package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// tileRange is an inclusive range of tile indices visible this frame.
// A range with endX < startX (or endY < startY) is empty.
type tileRange struct {
	startX, endX int
	startY, endY int
}

// visibleTileRange computes the tile indices intersecting the view. The +2
// margin on the visible count hides pop-in at the right/bottom edges while
// panning. Results are clamped to [0, lastCol] x [0, lastRow]; when the
// camera sits past the map the range comes back empty.
func visibleTileRange(targetX, targetY, zoom float64, tileSize, screenW, screenH, lastCol, lastRow int) tileRange {
	startX := int(math.Floor(targetX / float64(tileSize)))
	if startX < 0 {
		startX = 0
	}
	startY := int(math.Floor(targetY / float64(tileSize)))
	if startY < 0 {
		startY = 0
	}

	visibleX := int(float64(screenW)/zoom/float64(tileSize)) + 2
	visibleY := int(float64(screenH)/zoom/float64(tileSize)) + 2

	endX := startX + visibleX
	if endX > lastCol {
		endX = lastCol
	}
	endY := startY + visibleY
	if endY > lastRow {
		endY = lastRow
	}

	return tileRange{startX: startX, endX: endX, startY: startY, endY: endY}
}

// Renderer draws the visible slice of a TileMap through a Camera. When the
// map has no tileset texture (or a tile has id 0) it falls back to flat
// colored squares, one pixel larger than the grid step so zoomed rendering
// shows no seams.
type Renderer struct {
	solidTile *ebiten.Image
	openTile  *ebiten.Image
}

func NewRenderer(tileSize int) *Renderer {
	solid := ebiten.NewImage(tileSize+1, tileSize+1)
	solid.Fill(colornames.Gray)
	open := ebiten.NewImage(tileSize+1, tileSize+1)
	open.Fill(colornames.Lightgray)
	return &Renderer{solidTile: solid, openTile: open}
}

// Draw renders every tile in the visible range and returns that range for
// the debug overlay.
func (r *Renderer) Draw(screen *ebiten.Image, m *TileMap, cam *Camera) tileRange {
	bounds := screen.Bounds()
	vr := visibleTileRange(cam.TargetX, cam.TargetY, cam.Zoom(),
		m.TileSize(), bounds.Dx(), bounds.Dy(), m.Width()-1, m.Height()-1)

	tileset := m.Tileset()
	for y := vr.startY; y <= vr.endY; y++ {
		for x := vr.startX; x <= vr.endX; x++ {
			tile := m.TileAt(x, y)
			wx, wy := m.TileToScreen(x, y)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(wx), float64(wy))
			cam.Apply(&op.GeoM)

			if tileset != nil && tile.ID != 0 {
				src := m.TileSourceRect(tile.ID)
				screen.DrawImage(tileset.SubImage(src).(*ebiten.Image), op)
				continue
			}

			img := r.openTile
			if tile.Solid {
				img = r.solidTile
			}
			screen.DrawImage(img, op)
		}
	}
	return vr
}
