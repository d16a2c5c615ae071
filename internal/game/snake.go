// Package game implements the snake game-state engine: the snake's movement
// and input buffering, food placement, collision detection and the
// playing/game-over phase machine. It never draws; renderers read State.
package game

import "github.com/vovakirdan/tui-snake/internal/core"

const (
	// InitialLength is the body length of a freshly spawned snake.
	InitialLength = 3

	// MaxPendingDirections caps how many turns can be buffered ahead of movement.
	MaxPendingDirections = 2
)

// Snake is the player-controlled entity.
type Snake struct {
	grid      core.Grid
	body      []core.Cell // Head at index 0
	direction core.Direction
	pending   []core.Direction // FIFO, at most MaxPendingDirections
	score     int
}

// NewSnake spawns a three-cell snake at the grid center, heading right.
func NewSnake(grid core.Grid) *Snake {
	head := grid.Center()
	body := make([]core.Cell, InitialLength)
	for i := range body {
		body[i] = core.Cell{X: head.X - i, Y: head.Y}
	}

	return &Snake{
		grid:      grid,
		body:      body,
		direction: core.Right,
		pending:   make([]core.Direction, 0, MaxPendingDirections),
	}
}

// ChangeDirection buffers a turn for a later Move.
// The turn is dropped when the buffer is full or when it reverses the
// direction the snake will be heading when the turn applies: the last
// buffered turn if there is one, otherwise the live direction.
// Returns whether the turn was buffered.
func (s *Snake) ChangeDirection(d core.Direction) bool {
	if len(s.pending) >= MaxPendingDirections {
		return false
	}

	effective := s.direction
	if n := len(s.pending); n > 0 {
		effective = s.pending[n-1]
	}

	if d == effective.Reverse() {
		return false
	}

	s.pending = append(s.pending, d)
	return true
}

// Move applies at most one buffered turn and advances the snake one cell.
// Length is unchanged. The new head may leave the grid; CheckCollision reports it.
func (s *Snake) Move() {
	if len(s.pending) > 0 {
		s.direction = s.pending[0]
		s.pending = s.pending[1:]
	}

	newHead := s.Head().Add(s.direction)
	s.body = append([]core.Cell{newHead}, s.body[:len(s.body)-1]...)
}

// Grow advances the head one more cell in the current direction and keeps
// the tail, so length increases by exactly one. Buffered turns are untouched.
func (s *Snake) Grow() {
	newHead := s.Head().Add(s.direction)
	s.body = append([]core.Cell{newHead}, s.body...)
}

// CheckCollision reports whether the head is outside the grid or on the body.
// The boundary is checked first.
func (s *Snake) CheckCollision() bool {
	head := s.Head()
	if !s.grid.Contains(head) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the live movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns a copy of the buffered turns, oldest first.
func (s *Snake) Pending() []core.Direction {
	out := make([]core.Direction, len(s.pending))
	copy(out, s.pending)
	return out
}

// Score returns the number of food items eaten.
func (s *Snake) Score() int {
	return s.score
}

// addScore increments the score by one.
func (s *Snake) addScore() {
	s.score++
}

// Occupied returns the body as a set, for food placement.
func (s *Snake) Occupied() core.CellSet {
	return core.NewCellSet(s.body)
}
