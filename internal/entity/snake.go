// Package entity provides the snake and its score.
package entity

import "github.com/samdwyer/snake/internal/world"

// MinLength is the number of segments a snake starts with and never drops below.
const MinLength = 2

// Snake is an ordered body of cells. Index 0 is the tail, the last element is the head.
type Snake struct {
	Body      []world.Cell
	Direction world.Direction
}

// NewSnake creates a two-segment snake with its tail at tail, pointing dir.
// The head sits one step from the tail in dir.
func NewSnake(tail world.Cell, dir world.Direction) *Snake {
	return &Snake{
		Body:      []world.Cell{tail, tail.Add(dir)},
		Direction: dir,
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Head returns the most recently added segment.
func (s *Snake) Head() world.Cell {
	return s.Body[len(s.Body)-1]
}

// Tail returns the least recently added segment.
func (s *Snake) Tail() world.Cell {
	return s.Body[0]
}

// SetDirection changes the heading. Invalid directions are ignored.
// Reversals are allowed; they end the game through self-collision.
func (s *Snake) SetDirection(d world.Direction) {
	if d.Valid() {
		s.Direction = d
	}
}

// Advance drops the tail and appends a new head one step along Direction.
// It returns the vacated cell and the new head.
func (s *Snake) Advance() (vacated, head world.Cell) {
	vacated = s.Body[0]
	head = s.Head().Add(s.Direction)
	s.Body = append(s.Body[1:], head)
	return vacated, head
}

// HitsSelf returns true if the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, c := range s.Body[:len(s.Body)-1] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies returns true if any segment is at c.
func (s *Snake) Occupies(c world.Cell) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

// Grow extends the snake by one segment past its tail and returns the new segment.
func (s *Snake) Grow() world.Cell {
	var dir world.Direction
	if len(s.Body) >= 2 {
		dir = GrowthDirection(s.Body[0], s.Body[1])
	} else {
		dir = s.Direction.Opposite()
	}

	seg := s.Tail().Add(dir)
	s.Body = append([]world.Cell{seg}, s.Body...)
	return seg
}

// GrowthDirection returns the unit step that continues the line from next
// through tail, away from the body. Segments on the same row give a
// horizontal step; anything else gives a vertical one.
func GrowthDirection(tail, next world.Cell) world.Direction {
	if tail.Y == next.Y {
		if tail.X > next.X {
			return world.East
		}
		return world.West
	}
	if tail.Y > next.Y {
		return world.South
	}
	return world.North
}
