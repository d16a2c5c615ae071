package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame(CommandTurnUp, CommandNone, CommandTurnLeft)

	got := f.Commands()
	if len(got) != 2 {
		t.Fatalf("Expected 2 commands (None dropped), got %d", len(got))
	}
	if got[0] != CommandTurnUp || got[1] != CommandTurnLeft {
		t.Errorf("Commands() = %v, expected [TurnUp TurnLeft]", got)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame(CommandRestart, CommandQuit)
	cmds := f.Commands()

	f.Clear()
	if f.Len() != 0 || len(f.Commands()) != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}

	// Capacity is reused for the next tick
	f.Push(CommandTurnUp)
	if got := f.Commands(); len(got) != 1 || got[0] != CommandTurnUp || cap(got) != cap(cmds) {
		t.Errorf("Commands() after Push = %v (cap %d), expected [TurnUp] reusing cap %d", got, cap(got), cap(cmds))
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd    Command
		dir    Direction
		isTurn bool
	}{
		{CommandTurnUp, Up, true},
		{CommandTurnDown, Down, true},
		{CommandTurnLeft, Left, true},
		{CommandTurnRight, Right, true},
		{CommandRestart, Direction{}, false},
		{CommandQuit, Direction{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.cmd.String(), func(t *testing.T) {
			dir, ok := tc.cmd.Direction()
			if ok != tc.isTurn || dir != tc.dir {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", dir, ok, tc.dir, tc.isTurn)
			}
		})
	}
}
