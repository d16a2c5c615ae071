package core

// Command represents an abstract game command, decoupled from physical key presses.
// The platform layer produces commands; the game loop consumes them.
type Command int

const (
	CommandNone Command = iota
	CommandTurnUp
	CommandTurnDown
	CommandTurnLeft
	CommandTurnRight
	CommandRestart // Accepted only after game over
	CommandQuit    // Ends the session regardless of phase
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandTurnUp:
		return "TurnUp"
	case CommandTurnDown:
		return "TurnDown"
	case CommandTurnLeft:
		return "TurnLeft"
	case CommandTurnRight:
		return "TurnRight"
	case CommandRestart:
		return "Restart"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the turn direction carried by a turn command.
// The second result is false for commands that are not turns.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandTurnUp:
		return Up, true
	case CommandTurnDown:
		return Down, true
	case CommandTurnLeft:
		return Left, true
	case CommandTurnRight:
		return Right, true
	default:
		return Direction{}, false
	}
}

// InputFrame holds the commands received during one simulation tick.
// Order matters: two quick turns in one tick are applied in the order pressed.
type InputFrame struct {
	commands []Command
}

// NewInputFrame creates a frame holding the given commands in order.
func NewInputFrame(cmds ...Command) InputFrame {
	f := InputFrame{}
	for _, c := range cmds {
		f.Push(c)
	}
	return f
}

// Push appends a command. CommandNone is ignored.
func (f *InputFrame) Push(c Command) {
	if c == CommandNone {
		return
	}
	f.commands = append(f.commands, c)
}

// Commands returns the buffered commands in the order received.
func (f InputFrame) Commands() []Command {
	return f.commands
}

// Len returns the number of buffered commands.
func (f InputFrame) Len() int {
	return len(f.commands)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.commands = f.commands[:0]
}

