package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorPair is a foreground/background pair as stored in theme.json.
type ColorPair struct {
	FG string `json:"fg"`
	BG string `json:"bg"`
}

// Style converts the pair into a tcell style.
func (p ColorPair) Style() (tcell.Style, error) {
	fg, err := ParseHexColor(p.FG)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseHexColor(p.BG)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("background: %w", err)
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg), nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	r := int32(rgb >> 16 & 0xFF)
	g := int32(rgb >> 8 & 0xFF)
	b := int32(rgb & 0xFF)
	return tcell.NewRGBColor(r, g, b), nil
}
