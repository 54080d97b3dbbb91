package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeFile is the name of the embedded theme definition.
const ThemeFile = "theme.json"

// ThemeDef is the raw theme as stored in theme.json.
type ThemeDef struct {
	Title       string    `json:"title"`
	LostMessage string    `json:"lostMessage"`
	Apple       string    `json:"apple"`
	Background  ColorPair `json:"background"`
	Snake       ColorPair `json:"snake"`
	Border      ColorPair `json:"border"`
}

// Theme holds the resolved styles and glyphs used by the renderer.
type Theme struct {
	Title       string
	LostMessage string
	Apple       rune

	Background tcell.Style
	Snake      tcell.Style
	Border     tcell.Style
}

// LoadTheme loads and resolves the embedded theme.
func LoadTheme() (*Theme, error) {
	def, err := Load[ThemeDef](ThemeFile)
	if err != nil {
		return nil, err
	}
	return def.Resolve()
}

// Resolve parses colors and glyphs into a Theme.
func (d ThemeDef) Resolve() (*Theme, error) {
	apple := []rune(d.Apple)
	if len(apple) == 0 {
		return nil, errors.New("theme: apple glyph is empty")
	}

	t := &Theme{
		Title:       d.Title,
		LostMessage: d.LostMessage,
		Apple:       apple[0],
	}

	pairs := []struct {
		name string
		pair ColorPair
		dst  *tcell.Style
	}{
		{"background", d.Background, &t.Background},
		{"snake", d.Snake, &t.Snake},
		{"border", d.Border, &t.Border},
	}
	for _, p := range pairs {
		style, err := p.pair.Style()
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", p.name, err)
		}
		*p.dst = style
	}

	return t, nil
}
