package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the compact game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Best     int
	SnakeLen int
	Head     core.Cell
	Dir      core.Direction
	Pending  int
	Food     core.Cell
	HasFood  bool
	Phase    Phase
	Outcome  Outcome
	Stopped  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		Tick:     l.tick,
		Score:    l.snake.Score(),
		Best:     l.best,
		SnakeLen: l.snake.Len(),
		Head:     l.snake.Head(),
		Dir:      l.snake.Direction(),
		Pending:  len(l.snake.pending),
		Food:     l.food.Position(),
		HasFood:  l.food.Placed(),
		Phase:    l.phase,
		Outcome:  l.outcome,
		Stopped:  l.stopped,
	}
}

// DebugState returns a string representation of the game state.
func (l *Loop) DebugState() string {
	s := l.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Best: %d\n", s.Tick, s.Score, s.Best)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %d\n", s.SnakeLen, s.Dir, s.Pending)
	fmt.Fprintf(&b, "Head: %s, Food: %s (placed: %v)\n", s.Head, s.Food, s.HasFood)
	fmt.Fprintf(&b, "Phase: %s, Outcome: %s, Stopped: %v\n", s.Phase, s.Outcome, s.Stopped)
	return b.String()
}
