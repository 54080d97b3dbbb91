package game

import (
	"math/rand"

	"github.com/samdwyer/snake/internal/entity"
	"github.com/samdwyer/snake/internal/world"
)

// Round holds everything that changes while one game is played.
type Round struct {
	Board world.Board
	Snake *entity.Snake
	Apple world.Cell
	Score entity.Score
	State State
	Ticks int

	rng *rand.Rand
}

// TickResult describes what one Step changed, so the caller can redraw only that.
type TickResult struct {
	Moved   bool       // False when the round was not running
	Vacated world.Cell // Cell the tail left
	Head    world.Cell // New head position
	Lost    bool       // Head hit a wall or the body

	Ate   bool       // Head landed on the apple
	Grown world.Cell // Segment added behind the tail, valid when Ate
	Apple world.Cell // Newly spawned apple, valid when Ate
}

// NewRound places a two-segment snake in the middle of board heading east and
// spawns the first apple.
func NewRound(board world.Board, rng *rand.Rand) *Round {
	r := &Round{
		Board: board,
		Snake: entity.NewSnake(board.Center(), world.East),
		State: StateRunning,
		rng:   rng,
	}
	r.Apple = r.spawnApple()
	return r
}

// Steer changes the snake's heading. It has no effect once the round is over.
func (r *Round) Steer(d world.Direction) {
	if r.State != StateRunning {
		return
	}
	r.Snake.SetDirection(d)
}

// Step advances the round by one tick.
func (r *Round) Step() TickResult {
	if r.State != StateRunning {
		return TickResult{}
	}
	r.Ticks++

	res := TickResult{Moved: true}
	res.Vacated, res.Head = r.Snake.Advance()

	if r.Board.HitsWall(res.Head) || r.Snake.HitsSelf() {
		r.State = StateLost
		res.Lost = true
		return res
	}

	if res.Head == r.Apple {
		r.Score.Inc()
		res.Ate = true
		res.Grown = r.Snake.Grow()
		r.Apple = r.spawnApple()
		res.Apple = r.Apple
	}

	return res
}

// Close ends the round.
func (r *Round) Close() {
	r.State = StateClosed
}

// spawnApple picks a uniformly random interior cell the snake does not cover.
// A board with no free cell falls back to any interior cell.
func (r *Round) spawnApple() world.Cell {
	cells := r.Board.InteriorCells()
	free := cells[:0]
	for _, c := range cells {
		if !r.Snake.Occupies(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return r.Board.RandomInteriorCell(r.rng)
	}
	return free[r.rng.Intn(len(free))]
}
