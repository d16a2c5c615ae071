package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Board glyphs.
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
)

// hudHeight is the number of rows above the board.
const hudHeight = 1

// RenderContext holds everything needed to draw a game state: the screen
// buffer and the board geometry. It is built once per session and passed to
// the model, keeping drawing state out of the game package.
type RenderContext struct {
	screen   *core.Screen
	grid     core.Grid
	cellSize int
	board    core.Rect // Board frame in screen coordinates, border included
}

// NewRenderContext sizes a screen for the grid. Each grid cell is cellSize
// columns wide and one row tall.
func NewRenderContext(grid core.Grid, cellSize int) *RenderContext {
	cellSize = max(cellSize, 1)
	board := core.NewRect(0, hudHeight, grid.Width*cellSize+2, grid.Height+2)
	return &RenderContext{
		screen:   core.NewScreen(board.Right(), board.Bottom()),
		grid:     grid,
		cellSize: cellSize,
		board:    board,
	}
}

// Size returns the screen dimensions the board needs.
func (rc *RenderContext) Size() (width, height int) {
	return rc.screen.Width(), rc.screen.Height()
}

// Screen returns the underlying buffer.
func (rc *RenderContext) Screen() *core.Screen {
	return rc.screen
}

// Draw renders the state into the screen buffer.
func (rc *RenderContext) Draw(st game.State) {
	s := rc.screen
	s.Clear()

	// HUD
	hud := fmt.Sprintf(" Score: %d  Best: %d", st.Score, st.Best)
	s.DrawTextColored(0, 0, hud, core.ColorWhite)

	s.DrawBox(rc.board, core.ColorGray)

	if st.HasFood {
		rc.fillCell(st.Food, glyphFood, core.ColorBrightRed)
	}

	// Draw tail first so the head stays visible on overlap
	for i := len(st.Body) - 1; i >= 0; i-- {
		if i == 0 {
			rc.fillCell(st.Body[i], glyphHead, core.ColorBrightGreen)
		} else {
			rc.fillCell(st.Body[i], glyphBody, core.ColorGreen)
		}
	}

	if st.Phase == game.PhaseGameOver {
		title := "GAME OVER!"
		if st.Outcome == game.OutcomeBoardFull {
			title = "BOARD FULL!"
		}
		rc.drawOverlay(title, fmt.Sprintf("Final Score: %d", st.Score), "Press R to Restart")
	}
}

// fillCell paints one grid cell. Cells outside the grid are skipped so a
// head that crashed through the wall does not overwrite the border.
func (rc *RenderContext) fillCell(c core.Cell, r rune, color core.Color) {
	if !rc.grid.Contains(c) {
		return
	}
	x := rc.board.X + 1 + c.X*rc.cellSize
	y := rc.board.Y + 1 + c.Y
	rc.screen.DrawRect(core.NewRect(x, y, rc.cellSize, 1), r, color)
}

// drawOverlay draws a boxed message centered on the board.
func (rc *RenderContext) drawOverlay(lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := min(width+4, rc.screen.Width())
	boxH := len(lines) + 2
	cx, cy := rc.board.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	rc.screen.DrawRect(box, ' ', core.ColorDefault)
	rc.screen.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		rc.screen.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightRed)
	}
}
