package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no grid cell is free for food.
var ErrBoardFull = errors.New("game: board full, no free cell for food")

// attemptsPerCell sets the default sampling budget relative to grid area.
const attemptsPerCell = 4

// Food is the single item the snake eats.
type Food struct {
	grid        core.Grid
	rng         *rand.Rand
	maxAttempts int
	position    core.Cell
	placed      bool
}

// NewFood creates an unplaced food item. maxAttempts bounds random sampling
// in RandomizePosition; 0 or less means four samples per grid cell.
func NewFood(grid core.Grid, rng *rand.Rand, maxAttempts int) *Food {
	if maxAttempts <= 0 {
		maxAttempts = attemptsPerCell * grid.Area()
	}
	return &Food{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
		position:    core.Cell{X: -1, Y: -1},
	}
}

// RandomizePosition moves the food to a uniformly random cell outside forbidden.
// The caller must pass the current forbidden set on every call.
//
// Random sampling is tried up to the attempt budget; after that the free
// cells are enumerated and one is drawn from the same RNG. If no cell is free
// the position is kept, the food is marked unplaced and ErrBoardFull is returned.
func (f *Food) RandomizePosition(forbidden core.CellSet) error {
	if forbidden.CountIn(f.grid) >= f.grid.Area() {
		f.placed = false
		return ErrBoardFull
	}

	for range f.maxAttempts {
		c := core.Cell{X: f.rng.Intn(f.grid.Width), Y: f.rng.Intn(f.grid.Height)}
		if !forbidden.Has(c) {
			f.set(c)
			return nil
		}
	}

	// Crowded board: pick among the remaining free cells directly
	free := make([]core.Cell, 0, f.grid.Area()-forbidden.CountIn(f.grid))
	for y := range f.grid.Height {
		for x := range f.grid.Width {
			c := core.Cell{X: x, Y: y}
			if !forbidden.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		f.placed = false
		return ErrBoardFull
	}

	f.set(free[f.rng.Intn(len(free))])
	return nil
}

func (f *Food) set(c core.Cell) {
	f.position = c
	f.placed = true
}

// Position returns the food cell. Meaningful only while Placed is true.
func (f *Food) Position() core.Cell {
	return f.position
}

// Placed reports whether the food currently sits on the board.
func (f *Food) Placed() bool {
	return f.placed
}
