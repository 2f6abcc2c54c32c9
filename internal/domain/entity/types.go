package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current stage's tile data.
// Tile rows run top to bottom, spawn coordinates are in pixels from the top-left.
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// TileTypeByName maps a tile type name from stage data. Unknown names are empty.
func TileTypeByName(name string) TileType {
	if name == "wall" {
		return TileWall
	}
	return TileEmpty
}

// NewStage builds a width-tile wide grid from collision rows, one rune per tile.
// Longer rows are clipped, shorter ones padded with empty tiles, and runes
// missing from legend are empty.
func NewStage(rows []string, width, tileSize int, legend map[rune]Tile) *Stage {
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]Tile, width)
		x := 0
		for _, ch := range row {
			if x >= width {
				break
			}
			tiles[y][x] = legend[ch]
			x++
		}
	}
	return &Stage{
		Width:    width,
		Height:   len(rows),
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// TileRect is a block of solid tiles in tile coordinates
type TileRect struct {
	X, Y int
	W, H int
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := px / s.TileSize
	ty := py / s.TileSize
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// SolidRects merges solid tiles into as few rectangles as a greedy
// row-then-column sweep finds. Every solid tile is covered exactly once.
func (s *Stage) SolidRects() []TileRect {
	processed := make([]bool, s.Width*s.Height)
	var rects []TileRect

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			idx := y*s.Width + x
			if processed[idx] {
				continue
			}
			if !s.GetTile(x, y).Solid {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < s.Width {
				idx2 := y*s.Width + x + w
				if processed[idx2] || !s.GetTile(x+w, y).Solid {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < s.Height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*s.Width + xi
					if processed[idx2] || !s.GetTile(xi, y+h).Solid {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*s.Width+xx] = true
				}
			}
			rects = append(rects, TileRect{X: x, Y: y, W: w, H: h})
		}
	}

	return rects
}
