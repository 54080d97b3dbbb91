package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardInterior(t *testing.T) {
	b := DefaultBoard()

	tests := []struct {
		cell     Cell
		interior bool
	}{
		{Cell{6, 3}, true},
		{Cell{49, 19}, true},
		{Cell{27, 11}, true},
		{Cell{5, 10}, false},  // left wall
		{Cell{50, 10}, false}, // right wall
		{Cell{20, 2}, false},  // top wall
		{Cell{20, 20}, false}, // bottom wall
		{Cell{51, 10}, false},
		{Cell{-1, -1}, false},
	}

	for _, tt := range tests {
		if got := b.InInterior(tt.cell); got != tt.interior {
			t.Errorf("InInterior(%v) = %v, want %v", tt.cell, got, tt.interior)
		}
		if got := b.HitsWall(tt.cell); got == tt.interior {
			t.Errorf("HitsWall(%v) = %v, want %v", tt.cell, got, !tt.interior)
		}
	}
}

func TestBoardDimensions(t *testing.T) {
	b := DefaultBoard()

	assert.Equal(t, 44, b.InteriorWidth())
	assert.Equal(t, 17, b.InteriorHeight())
	assert.Equal(t, Cell{27, 11}, b.Center())

	cells := b.InteriorCells()
	assert.Len(t, cells, 44*17)
	for _, c := range cells {
		assert.True(t, b.InInterior(c), "cell %v should be interior", c)
	}
}

func TestRandomInteriorCellStaysInside(t *testing.T) {
	b := DefaultBoard()
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 5000; i++ {
		c := b.RandomInteriorCell(rng)
		if !b.InInterior(c) {
			t.Fatalf("RandomInteriorCell() = %v, outside interior", c)
		}
	}
}

func TestRandomInteriorCellReproducible(t *testing.T) {
	b := DefaultBoard()
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		assert.Equal(t, b.RandomInteriorCell(rng1), b.RandomInteriorCell(rng2))
	}
}

func TestBoardTileAt(t *testing.T) {
	b := DefaultBoard()

	tests := []struct {
		x, y int
		want Tile
	}{
		{5, 2, TileCornerUL},
		{50, 2, TileCornerUR},
		{5, 20, TileCornerLL},
		{50, 20, TileCornerLR},
		{20, 2, TileWallH},
		{20, 20, TileWallH},
		{5, 10, TileWallV},
		{50, 10, TileWallV},
		{20, 10, TileEmpty},
		{0, 0, TileEmpty},
		{60, 2, TileEmpty},
	}

	for _, tt := range tests {
		if got := b.TileAt(tt.x, tt.y); got != tt.want {
			t.Errorf("TileAt(%d,%d) = %q, want %q", tt.x, tt.y, got.Rune(), tt.want.Rune())
		}
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{North, South, West, East} {
		assert.True(t, d.Valid(), "%v should be valid", d)
		assert.True(t, d.Opposite().Valid())
		assert.Equal(t, d, d.Opposite().Opposite())
	}

	assert.False(t, Direction{}.Valid())
	assert.False(t, Direction{DX: 1, DY: 1}.Valid())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, "none", Direction{}.String())
	assert.Equal(t, Cell{6, 2}, Cell{5, 2}.Add(East))
	assert.Equal(t, Cell{5, 1}, Cell{5, 2}.Add(North))
}
