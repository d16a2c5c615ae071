package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Phase is the coarse game state gating which commands are accepted.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome records why a round ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Round still running
	OutcomeCollision                // Head hit the boundary or the body
	OutcomeBoardFull                // Snake filled the board, nowhere to place food
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCollision:
		return "collision"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// State is the read-only view of a session exposed to renderers.
type State struct {
	Grid    core.Grid
	Body    []core.Cell // Head first
	Food    core.Cell
	HasFood bool // False once the board is full
	Score   int
	Best    int // Best score this session, across restarts
	Phase   Phase
	Outcome Outcome
	Tick    uint64
}

// Head returns the head cell.
func (s State) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[0]
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventAte EventKind = iota
	EventCollided
	EventBoardFull
	EventRestarted
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventBoardFull:
		return "board_full"
	case EventRestarted:
		return "restarted"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick for the platform to log or react to.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Score  int
	Length int
	Cell   core.Cell // Head for collisions, eaten cell for EventAte
}

// StepResult is returned by Loop.Tick after each simulation tick.
type StepResult struct {
	State  State
	Events []Event
	Quit   bool // Session ended; no further ticks have effect
}
