package world

import "math/rand"

// Wall lines of the play area in screen coordinates.
const (
	DefaultX1 = 5
	DefaultY1 = 2
	DefaultX2 = 50
	DefaultY2 = 20
)

// Board is the rectangle enclosed by four wall lines. Cells strictly between
// the lines form the interior; the lines themselves are walls.
type Board struct {
	X1, Y1 int // Top-left wall corner
	X2, Y2 int // Bottom-right wall corner
}

// DefaultBoard returns the fixed board used by the game.
func DefaultBoard() Board {
	return Board{X1: DefaultX1, Y1: DefaultY1, X2: DefaultX2, Y2: DefaultY2}
}

// Center returns the cell in the middle of the board.
func (b Board) Center() Cell {
	return Cell{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// InInterior returns true if c lies strictly inside the walls.
func (b Board) InInterior(c Cell) bool {
	return c.X > b.X1 && c.X < b.X2 && c.Y > b.Y1 && c.Y < b.Y2
}

// HitsWall returns true if c is on or beyond any wall line.
func (b Board) HitsWall(c Cell) bool {
	return !b.InInterior(c)
}

// InteriorWidth returns the number of playable columns.
func (b Board) InteriorWidth() int {
	return b.X2 - b.X1 - 1
}

// InteriorHeight returns the number of playable rows.
func (b Board) InteriorHeight() int {
	return b.Y2 - b.Y1 - 1
}

// InteriorCells returns every interior cell, row by row.
func (b Board) InteriorCells() []Cell {
	cells := make([]Cell, 0, b.InteriorWidth()*b.InteriorHeight())
	for y := b.Y1 + 1; y < b.Y2; y++ {
		for x := b.X1 + 1; x < b.X2; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// RandomInteriorCell returns a uniformly random interior cell.
func (b Board) RandomInteriorCell(rng *rand.Rand) Cell {
	return Cell{
		X: b.X1 + 1 + rng.Intn(b.InteriorWidth()),
		Y: b.Y1 + 1 + rng.Intn(b.InteriorHeight()),
	}
}

// TileAt returns the border tile drawn at (x, y), or TileEmpty off the walls.
func (b Board) TileAt(x, y int) Tile {
	onLeft, onRight := x == b.X1, x == b.X2
	onTop, onBottom := y == b.Y1, y == b.Y2
	inX := x >= b.X1 && x <= b.X2
	inY := y >= b.Y1 && y <= b.Y2

	switch {
	case onTop && onLeft:
		return TileCornerUL
	case onTop && onRight:
		return TileCornerUR
	case onBottom && onLeft:
		return TileCornerLL
	case onBottom && onRight:
		return TileCornerLR
	case (onTop || onBottom) && inX:
		return TileWallH
	case (onLeft || onRight) && inY:
		return TileWallV
	default:
		return TileEmpty
	}
}
