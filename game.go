package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game wires the settings, tile map, camera and input together and runs the
// input -> update -> render loop.
type Game struct {
	settings *Settings

	tileMap  *TileMap
	camera   *Camera
	input    *Input
	renderer *Renderer
	watcher  *MapWatcher

	running bool
	debug   bool
	frames  int
}

func NewGame(settings *Settings, debug bool) (*Game, error) {
	m, err := NewTileMapFromCSV(settings.Map.Tiles, settings.Map.Collision, settings.TileSize)
	if err != nil {
		return nil, err
	}

	if err := m.LoadTileset(settings.Tileset.Path, settings.Tileset.Columns); err != nil {
		// No tileset is fine: the renderer falls back to flat-colored tiles.
		log.Printf("tileset unavailable, using flat tiles: %v", err)
	}

	g := &Game{
		settings: settings,
		tileMap:  m,
		camera:   NewCamera(settings.Camera.PanSpeed, settings.Camera.ZoomStep, settings.Camera.MinZoom),
		input:    NewInput(),
		renderer: NewRenderer(settings.TileSize),
		running:  true,
		debug:    debug,
	}

	if settings.Watch {
		w, err := NewMapWatcher(settings.Map.Tiles, settings.Map.Collision)
		if err != nil {
			log.Printf("map watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.camera.Pan(g.input.PanX, g.input.PanY)
	if g.input.ZoomInPressed {
		g.camera.ZoomIn()
	}
	if g.input.ZoomOutPressed {
		g.camera.ZoomOut()
	}

	if g.watcher != nil {
		g.drainWatcher()
	}

	if g.input.QuitRequested {
		g.running = false
	}
	if !g.running {
		return ebiten.Termination
	}
	return nil
}

// drainWatcher consumes pending file events without blocking the frame.
func (g *Game) drainWatcher() {
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("map file changed: %s", path)
			g.reloadMap()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("map watcher: %v", err)
		default:
			return
		}
	}
}

// reloadMap rebuilds the tile map from disk, keeping the current tileset
// texture. A failed reload keeps the previous map.
func (g *Game) reloadMap() {
	m, err := NewTileMapFromCSV(g.settings.Map.Tiles, g.settings.Map.Collision, g.settings.TileSize)
	if err != nil {
		log.Printf("map reload failed, keeping previous map: %v", err)
		return
	}
	if img := g.tileMap.Tileset(); img != nil {
		m.SetTileset(img, g.tileMap.TilesetColumns())
	}
	g.tileMap = m
}

func (g *Game) Draw(screen *ebiten.Image) {
	vr := g.renderer.Draw(screen, g.tileMap, g.camera)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  target: (%.1f, %.1f)  zoom: %.1f  tiles: [%d..%d]x[%d..%d]",
			ebiten.ActualFPS(), g.camera.TargetX, g.camera.TargetY, g.camera.Zoom(),
			vr.startX, vr.endX, vr.startY, vr.endY))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}

// Close releases everything the game acquired at startup.
func (g *Game) Close() error {
	if img := g.tileMap.Tileset(); img != nil {
		img.Deallocate()
	}
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
