package world

// Tile represents the glyph drawn for a board cell.
type Tile rune

const (
	// TileEmpty is open floor, interior or outside the walls.
	TileEmpty Tile = ' '
	// TileWallH is a horizontal wall segment.
	TileWallH Tile = '─'
	// TileWallV is a vertical wall segment.
	TileWallV Tile = '│'

	TileCornerUL Tile = '┌'
	TileCornerUR Tile = '┐'
	TileCornerLL Tile = '└'
	TileCornerLR Tile = '┘'
)

// IsWall returns true for any wall or corner tile.
func (t Tile) IsWall() bool {
	return t != TileEmpty
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
