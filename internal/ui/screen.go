// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MinColors is the palette size the game needs to tell snake from background.
const MinColors = 8

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	closed bool
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state. Safe to call twice.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// Colors returns the number of colors the terminal supports.
func (s *Screen) Colors() int {
	return s.screen.Colors()
}

// HasColor reports whether the terminal has enough colors for the game.
func (s *Screen) HasColor() bool {
	return s.Colors() >= MinColors
}

// SetStyle sets the default style used when clearing.
func (s *Screen) SetStyle(style tcell.Style) {
	s.screen.SetStyle(style)
}

// PollKey returns the next pending key event without blocking.
// Resize events are handled and skipped.
func (s *Screen) PollKey() (*tcell.EventKey, bool) {
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return nil, false
		}
	}
	return nil, false
}

// Flush discards all pending input.
func (s *Screen) Flush() {
	for {
		if _, ok := s.PollKey(); !ok {
			return
		}
	}
}

// WaitKey blocks until a key is pressed. It returns nil once the screen is finalized.
func (s *Screen) WaitKey() *tcell.EventKey {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return nil
		}
	}
}

// PostEvent queues an event as if it came from the terminal.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}
