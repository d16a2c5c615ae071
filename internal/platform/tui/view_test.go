package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func testState() game.State {
	return game.State{
		Grid:    core.Grid{Width: 25, Height: 20},
		Body:    []core.Cell{{X: 12, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 10}},
		Food:    core.Cell{X: 0, Y: 0},
		HasFood: true,
		Score:   3,
		Best:    7,
		Phase:   game.PhasePlaying,
	}
}

// screenPos converts a grid cell to the screen column/row of its first glyph.
func screenPos(c core.Cell, cellSize int) (int, int) {
	return 1 + c.X*cellSize, hudHeight + 1 + c.Y
}

func TestRenderContextSize(t *testing.T) {
	rc := NewRenderContext(core.Grid{Width: 25, Height: 20}, 2)
	w, h := rc.Size()

	if w != 52 || h != 23 {
		t.Errorf("Size() = %dx%d, expected 52x23", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	rc := NewRenderContext(core.Grid{Width: 25, Height: 20}, 2)
	rc.Draw(testState())
	s := rc.Screen()

	if !strings.Contains(s.Row(0), "Score: 3") || !strings.Contains(s.Row(0), "Best: 7") {
		t.Errorf("HUD row = %q", s.Row(0))
	}

	hx, hy := screenPos(core.Cell{X: 12, Y: 10}, 2)
	if s.GetCell(hx, hy).Rune != glyphHead || s.GetCell(hx+1, hy).Rune != glyphHead {
		t.Errorf("Head should span two columns at (%d,%d), row = %q", hx, hy, s.Row(hy))
	}
	if s.GetCell(hx, hy).Color != core.ColorBrightGreen {
		t.Error("Head should be bright green")
	}

	bx, by := screenPos(core.Cell{X: 10, Y: 10}, 2)
	if s.GetCell(bx, by).Rune != glyphBody {
		t.Errorf("Expected body glyph at (%d,%d), got %q", bx, by, s.GetCell(bx, by).Rune)
	}

	fx, fy := screenPos(core.Cell{X: 0, Y: 0}, 2)
	if s.GetCell(fx, fy).Rune != glyphFood {
		t.Errorf("Expected food glyph at (%d,%d), got %q", fx, fy, s.GetCell(fx, fy).Rune)
	}

	// Border corners
	if s.GetCell(0, hudHeight).Rune != '┌' || s.GetCell(51, 22).Rune != '┘' {
		t.Error("Board border not drawn")
	}
}

func TestDrawHidesMissingFood(t *testing.T) {
	rc := NewRenderContext(core.Grid{Width: 25, Height: 20}, 1)
	st := testState()
	st.HasFood = false
	rc.Draw(st)

	fx, fy := screenPos(st.Food, 1)
	if rc.Screen().GetCell(fx, fy).Rune == glyphFood {
		t.Error("Food should not be drawn when unplaced")
	}
}

func TestDrawOffGridHeadKeepsBorder(t *testing.T) {
	rc := NewRenderContext(core.Grid{Width: 25, Height: 20}, 1)
	st := testState()
	st.Body = []core.Cell{{X: -1, Y: 5}, {X: 0, Y: 5}, {X: 1, Y: 5}}
	st.Phase = game.PhaseGameOver
	st.Outcome = game.OutcomeCollision
	rc.Draw(st)

	if got := rc.Screen().GetCell(0, hudHeight+1+5).Rune; got != '│' {
		t.Errorf("Left border overwritten with %q", got)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	tests := []struct {
		name    string
		outcome game.Outcome
		title   string
	}{
		{"collision", game.OutcomeCollision, "GAME OVER!"},
		{"board full", game.OutcomeBoardFull, "BOARD FULL!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rc := NewRenderContext(core.Grid{Width: 25, Height: 20}, 2)
			st := testState()
			st.Phase = game.PhaseGameOver
			st.Outcome = tc.outcome
			rc.Draw(st)

			out := rc.Screen().String()
			for _, want := range []string{tc.title, "Final Score: 3", "Press R to Restart"} {
				if !strings.Contains(out, want) {
					t.Errorf("overlay missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderScreenKeepsRows(t *testing.T) {
	rc := NewRenderContext(core.Grid{Width: 10, Height: 5}, 2)
	rc.Draw(testState())

	out := RenderScreen(rc.Screen())
	_, h := rc.Size()
	if lines := strings.Count(out, "\n") + 1; lines != h {
		t.Errorf("RenderScreen produced %d lines, expected %d", lines, h)
	}
	if !strings.Contains(out, "Score: 3") {
		t.Error("RenderScreen should contain the HUD text")
	}
}
