package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings configure a session. They are fixed for its lifetime.
type Settings struct {
	Grid            core.Grid
	Seed            int64 // RNG seed; equal seeds and inputs replay identically
	MaxFoodAttempts int   // Random samples before scanning free cells, 0 = default
}

// Validate checks that the grid can hold a fresh snake plus one food cell.
func (s Settings) Validate() error {
	// The initial body extends two cells left of center.
	if s.Grid.Width < InitialLength+1 || s.Grid.Height < 1 {
		return fmt.Errorf("game: grid %dx%d too small, need at least %dx1",
			s.Grid.Width, s.Grid.Height, InitialLength+1)
	}
	if s.MaxFoodAttempts < 0 {
		return fmt.Errorf("game: negative food attempts %d", s.MaxFoodAttempts)
	}
	return nil
}

// Loop owns one game session: the snake, the food and the phase.
// It is driven one Tick at a time and is not safe for concurrent use.
type Loop struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64
	best     int

	snake   *Snake
	food    *Food
	phase   Phase
	outcome Outcome
	stopped bool
}

// New creates a session in the playing phase.
func New(settings Settings) (*Loop, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	l := &Loop{
		settings: settings,
		rng:      rand.New(rand.NewSource(settings.Seed)),
	}
	if err := l.startRound(); err != nil {
		return nil, err
	}
	return l, nil
}

// newRound builds a fresh snake and places food for it.
func (l *Loop) newRound() (*Snake, *Food, error) {
	snake := NewSnake(l.settings.Grid)
	food := NewFood(l.settings.Grid, l.rng, l.settings.MaxFoodAttempts)
	if err := food.RandomizePosition(snake.Occupied()); err != nil {
		return nil, nil, fmt.Errorf("game: cannot place initial food: %w", err)
	}
	return snake, food, nil
}

// startRound discards the previous snake and food and starts playing with
// fresh ones. On error the current round is left untouched.
func (l *Loop) startRound() error {
	snake, food, err := l.newRound()
	if err != nil {
		return err
	}
	l.snake = snake
	l.food = food
	l.phase = PhasePlaying
	l.outcome = OutcomeNone
	return nil
}

// Tick advances the session by one step.
//
// Commands are applied in order. Quit ends the session at once, before any
// movement. Restart is honored only after game over, turns only while playing.
// Then, if still playing, the snake moves, eats and is checked for collision.
func (l *Loop) Tick(frame core.InputFrame) StepResult {
	if l.stopped {
		return StepResult{State: l.State(), Quit: true}
	}

	l.tick++
	var events []Event

	for _, cmd := range frame.Commands() {
		switch cmd {
		case core.CommandQuit:
			l.stopped = true
			events = append(events, l.event(EventQuit, l.snake.Head()))
			return StepResult{State: l.State(), Events: events, Quit: true}

		case core.CommandRestart:
			if l.phase != PhaseGameOver {
				continue
			}
			// Settings guarantee room on a fresh board; if not, stay over.
			if err := l.startRound(); err != nil {
				l.outcome = OutcomeBoardFull
				events = append(events, l.event(EventBoardFull, l.snake.Head()))
				continue
			}
			events = append(events, l.event(EventRestarted, l.snake.Head()))

		default:
			if dir, ok := cmd.Direction(); ok && l.phase == PhasePlaying {
				l.snake.ChangeDirection(dir)
			}
		}
	}

	if l.phase == PhasePlaying {
		events = l.advance(events)
	}

	return StepResult{State: l.State(), Events: events}
}

// advance moves the snake, handles eating and detects the end of the round.
func (l *Loop) advance(events []Event) []Event {
	l.snake.Move()

	boardFull := false
	if l.food.Placed() && l.snake.Head() == l.food.Position() {
		eaten := l.food.Position()
		l.snake.Grow()
		l.snake.addScore()
		l.best = max(l.best, l.snake.Score())
		events = append(events, l.event(EventAte, eaten))

		if err := l.food.RandomizePosition(l.snake.Occupied()); errors.Is(err, ErrBoardFull) {
			boardFull = true
		}
	}

	switch {
	case l.snake.CheckCollision():
		l.phase = PhaseGameOver
		l.outcome = OutcomeCollision
		events = append(events, l.event(EventCollided, l.snake.Head()))
	case boardFull:
		l.phase = PhaseGameOver
		l.outcome = OutcomeBoardFull
		events = append(events, l.event(EventBoardFull, l.snake.Head()))
	}

	return events
}

func (l *Loop) event(kind EventKind, cell core.Cell) Event {
	return Event{
		Kind:   kind,
		Tick:   l.tick,
		Score:  l.snake.Score(),
		Length: l.snake.Len(),
		Cell:   cell,
	}
}

// State returns a snapshot of everything a renderer needs.
func (l *Loop) State() State {
	return State{
		Grid:    l.settings.Grid,
		Body:    l.snake.Body(),
		Food:    l.food.Position(),
		HasFood: l.food.Placed(),
		Score:   l.snake.Score(),
		Best:    l.best,
		Phase:   l.phase,
		Outcome: l.outcome,
		Tick:    l.tick,
	}
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Stopped reports whether Quit has been received.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Seed returns the RNG seed the session was created with.
func (l *Loop) Seed() int64 {
	return l.settings.Seed
}
