package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/entity"
	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// DrawFrame paints the background, the walls and the title.
func (r *Renderer) DrawFrame(board world.Board) {
	r.screen.SetStyle(r.theme.Background)
	r.screen.Clear()

	width, height := r.screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', r.theme.Background)
		}
	}

	for y := board.Y1; y <= board.Y2; y++ {
		for x := board.X1; x <= board.X2; x++ {
			if tile := board.TileAt(x, y); tile.IsWall() {
				r.screen.SetContent(x, y, tile.Rune(), r.theme.Border)
			}
		}
	}

	r.DrawText(board.X1, board.Y1, r.theme.Title, r.theme.Border)
}

// DrawScore writes the score readout into the top-right of the border.
func (r *Renderer) DrawScore(board world.Board, score entity.Score) {
	r.DrawText(board.X2-9, board.Y1, fmt.Sprintf("Score: %d", score), r.theme.Border)
}

// DrawSnakeCell paints one snake segment.
func (r *Renderer) DrawSnakeCell(c world.Cell) {
	r.screen.SetContent(c.X, c.Y, ' ', r.theme.Snake)
}

// DrawSnake paints every segment of the snake.
func (r *Renderer) DrawSnake(s *entity.Snake) {
	for _, c := range s.Body {
		r.DrawSnakeCell(c)
	}
}

// EraseCell restores a cell to the background.
func (r *Renderer) EraseCell(c world.Cell) {
	r.screen.SetContent(c.X, c.Y, ' ', r.theme.Background)
}

// DrawApple paints the apple glyph.
func (r *Renderer) DrawApple(c world.Cell) {
	r.screen.SetContent(c.X, c.Y, r.theme.Apple, r.theme.Background)
}

// DrawLoss displays the loss message below the board.
func (r *Renderer) DrawLoss(board world.Board) {
	r.DrawText(board.X1+1, board.Y2+2, r.theme.LostMessage, r.theme.Background)
}

// DrawText writes msg starting at (x, y).
func (r *Renderer) DrawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}
