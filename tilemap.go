package main

import (
	"encoding/csv"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tile is a single grid cell: a tileset index plus a solidity flag.
// The zero value is the empty, walkable tile.
type Tile struct {
	ID    int
	Solid bool
}

// TileMap is a fixed-size grid of tiles plus the tileset metadata needed
// to draw them. The grid never resizes after creation; cells are only
// overwritten through SetTile.
type TileMap struct {
	tiles    [][]Tile // row-major: tiles[y][x]
	width    int
	height   int
	tileSize int

	tileset        *ebiten.Image
	tilesetColumns int
}

// NewTileMap allocates a height x width grid of empty tiles.
func NewTileMap(width, height, tileSize int) *TileMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &TileMap{
		tiles:          tiles,
		width:          width,
		height:         height,
		tileSize:       tileSize,
		tilesetColumns: 1,
	}
}

// NewTileMapFromCSV builds a map sized by the tile-id file and populates it
// from both files.
func NewTileMapFromCSV(tilePath, collisionPath string, tileSize int) (*TileMap, error) {
	ids, flags, err := readMapGrids(tilePath, collisionPath)
	if err != nil {
		return nil, err
	}

	width := 0
	if len(ids) > 0 {
		width = len(ids[0])
	}
	m := NewTileMap(width, len(ids), tileSize)
	m.fill(ids, flags)
	return m, nil
}

func (m *TileMap) Width() int { return m.width }

func (m *TileMap) Height() int { return m.height }

func (m *TileMap) TileSize() int { return m.tileSize }

// Tileset returns the loaded tileset image, or nil when none is loaded.
func (m *TileMap) Tileset() *ebiten.Image { return m.tileset }

func (m *TileMap) TilesetColumns() int { return m.tilesetColumns }

// SetTileset installs an already-loaded tileset image. Used when a reloaded
// map takes over the previous map's texture.
func (m *TileMap) SetTileset(img *ebiten.Image, columns int) {
	if columns < 1 {
		columns = 1
	}
	m.tileset = img
	m.tilesetColumns = columns
}

// LoadTileset decodes a PNG from path and slices it into columns cells per
// row. The caller may treat a failure as non-fatal; the renderer falls back
// to flat-colored tiles while the tileset is nil.
func (m *TileMap) LoadTileset(path string, columns int) error {
	if columns < 1 {
		return fmt.Errorf("tileset: columns must be >= 1, got %d", columns)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tileset: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("tileset: decode %s: %w", path, err)
	}

	m.SetTileset(ebiten.NewImageFromImage(img), columns)
	return nil
}

// SetTile overwrites the tile at (x, y). Out-of-range coordinates are
// silently ignored.
func (m *TileMap) SetTile(x, y, id int, solid bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.tiles[y][x] = Tile{ID: id, Solid: solid}
}

// TileAt returns the tile at (x, y), or the zero tile when the coordinate
// is out of range.
func (m *TileMap) TileAt(x, y int) Tile {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Tile{}
	}
	return m.tiles[y][x]
}

// TileToScreen returns the top-left world pixel of the tile at (tx, ty).
func (m *TileMap) TileToScreen(tx, ty int) (int, int) {
	return tx * m.tileSize, ty * m.tileSize
}

// ScreenToTile returns the grid coordinate containing the world pixel
// (sx, sy).
func (m *TileMap) ScreenToTile(sx, sy int) (int, int) {
	return sx / m.tileSize, sy / m.tileSize
}

// TileSourceRect returns the tileset sub-rectangle holding the graphic for
// the given tile id. Ids index the tileset left to right, top to bottom and
// must be non-negative; CSV loading rejects negative ids.
func (m *TileMap) TileSourceRect(id int) image.Rectangle {
	col := id % m.tilesetColumns
	row := id / m.tilesetColumns
	x := col * m.tileSize
	y := row * m.tileSize
	return image.Rect(x, y, x+m.tileSize, y+m.tileSize)
}

// LoadCSV populates the grid from a tile-id file and a collision file of
// the same shape. Collision cells are 0 or 1; 1 marks the tile solid.
// Writes go through SetTile, so cells beyond the grid are dropped.
func (m *TileMap) LoadCSV(tilePath, collisionPath string) error {
	ids, flags, err := readMapGrids(tilePath, collisionPath)
	if err != nil {
		return err
	}
	m.fill(ids, flags)
	return nil
}

func (m *TileMap) fill(ids, flags [][]int) {
	for y, row := range ids {
		for x, id := range row {
			m.SetTile(x, y, id, flags[y][x] != 0)
		}
	}
}

// readMapGrids parses both CSV files and requires them to have the same
// shape and non-negative tile ids. A bad file is a startup error, not a
// panic (or an off-tileset source rect) later.
func readMapGrids(tilePath, collisionPath string) ([][]int, [][]int, error) {
	ids, err := readCSVGrid(tilePath)
	if err != nil {
		return nil, nil, err
	}
	flags, err := readCSVGrid(collisionPath)
	if err != nil {
		return nil, nil, err
	}

	if len(ids) != len(flags) {
		return nil, nil, fmt.Errorf("tilemap: %s has %d rows but %s has %d", tilePath, len(ids), collisionPath, len(flags))
	}
	for y, row := range ids {
		if len(row) != len(flags[y]) {
			return nil, nil, fmt.Errorf("tilemap: row %d: %s has %d columns but %s has %d", y+1, tilePath, len(row), collisionPath, len(flags[y]))
		}
		for x, id := range row {
			if id < 0 {
				return nil, nil, fmt.Errorf("tilemap: %s row %d col %d: negative tile id %d", tilePath, y+1, x+1, id)
			}
		}
	}
	return ids, flags, nil
}

// readCSVGrid parses a file of comma-separated integers into rows.
func readCSVGrid(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tilemap: read %s: %w", path, err)
	}

	grid := make([][]int, 0, len(records))
	for i, record := range records {
		row := make([]int, len(record))
		for j, field := range record {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("tilemap: %s row %d col %d: %w", path, i+1, j+1, err)
			}
			row[j] = n
		}
		grid = append(grid, row)
	}
	return grid, nil
}
