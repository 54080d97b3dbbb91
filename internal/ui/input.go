package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/world"
)

// Command is the result of one key press: a new heading, a quit request, or neither.
type Command struct {
	Direction world.Direction // Zero when the key does not steer
	Quit      bool
}

// Steers reports whether the command changes the snake's heading.
func (c Command) Steers() bool {
	return c.Direction.Valid()
}

// KeyCommand maps a key event to a command. Unknown keys yield the zero Command.
func KeyCommand(ev *tcell.EventKey) Command {
	if ev == nil {
		return Command{}
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}
	case tcell.KeyUp:
		return Command{Direction: world.North}
	case tcell.KeyDown:
		return Command{Direction: world.South}
	case tcell.KeyLeft:
		return Command{Direction: world.West}
	case tcell.KeyRight:
		return Command{Direction: world.East}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Command{Quit: true}
		case 'w':
			return Command{Direction: world.North}
		case 's':
			return Command{Direction: world.South}
		case 'a':
			return Command{Direction: world.West}
		case 'd':
			return Command{Direction: world.East}
		}
	}
	return Command{}
}

// ReadCommand takes at most one key from the queue, then drops the rest so
// input cannot pile up faster than the game ticks.
func (s *Screen) ReadCommand() Command {
	ev, ok := s.PollKey()
	s.Flush()
	if !ok {
		return Command{}
	}
	return KeyCommand(ev)
}

// WaitQuit blocks until a quit key is pressed. Other keys are ignored.
func (s *Screen) WaitQuit() {
	for {
		ev := s.WaitKey()
		if ev == nil || KeyCommand(ev).Quit {
			return
		}
	}
}
