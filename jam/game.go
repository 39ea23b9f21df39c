package jam

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/statespace/search"
)

// Observer receives a message and the current board after every game action.
// The board is the zero State until a puzzle has been loaded.
type Observer func(msg string, board State)

// Game is the interactive play mode: load a puzzle, select a car cell and
// then the free cell it should slide into, ask for hints, or reset.
// A Game is not safe for concurrent use.
type Game struct {
	path      string
	current   State
	loaded    bool
	selected  bool
	selRow    int
	selCol    int
	observers []Observer
	opts      []search.Option
}

// NewGame returns an empty game. The options are passed to every hint search.
func NewGame(opts ...search.Option) *Game {
	return &Game{opts: opts}
}

// Observe registers fn to be called after every action.
func (g *Game) Observe(fn Observer) {
	if fn != nil {
		g.observers = append(g.observers, fn)
	}
}

// Current returns the board being played.
func (g *Game) Current() (State, bool) {
	return g.current, g.loaded
}

// Load reads a new puzzle. On failure the previous puzzle stays active.
func (g *Game) Load(path string) error {
	s, err := LoadFile(path)
	if err != nil {
		g.notify(fmt.Sprintf("Failed to load: %s", path))
		return err
	}
	g.path, g.current, g.loaded, g.selected = path, s, true, false
	g.notify("Loaded: " + filepath.Base(path))
	return nil
}

// Reset reloads the current puzzle file.
func (g *Game) Reset() error {
	if !g.loaded {
		g.notify("No puzzle loaded")
		return nil
	}
	s, err := LoadFile(g.path)
	if err != nil {
		g.notify(fmt.Sprintf("Failed to reset: %s", g.path))
		return err
	}
	g.current, g.selected = s, false
	g.notify("Puzzle reset!")
	return nil
}

// Hint advances the board one step along a shortest solution.
func (g *Game) Hint() error {
	if !g.loaded {
		g.notify("No puzzle loaded")
		return nil
	}
	next, err := search.Hint(g.current, g.opts...)
	switch {
	case errors.Is(err, search.ErrAlreadySolved):
		g.notify("Already solved!")
	case errors.Is(err, search.ErrNoSolution):
		g.notify("No solution!")
	case err != nil:
		g.notify(fmt.Sprintf("Hint failed: %v", err))
		return err
	default:
		g.current, g.selected = next, false
		g.notify("Next step!")
	}
	return nil
}

// Select handles one click. The first click picks a cell covered by a car;
// the second picks the free neighbouring cell the car should slide into.
func (g *Game) Select(row, col int) {
	switch {
	case !g.loaded:
		g.notify("No puzzle loaded")
	case g.current.IsGoal():
		g.notify("Already solved!")
	case !g.selected:
		g.first(row, col)
	default:
		g.second(row, col)
	}
}

func (g *Game) first(row, col int) {
	if !g.current.InBounds(row, col) {
		g.notify(fmt.Sprintf("Invalid selection (%d, %d)", row, col))
		return
	}
	if g.current.Cell(row, col) == Empty {
		g.notify(fmt.Sprintf("No car at (%d, %d)", row, col))
		return
	}
	g.selected, g.selRow, g.selCol = true, row, col
	g.notify(fmt.Sprintf("Selected (%d, %d)", row, col))
}

func (g *Game) second(row, col int) {
	g.selected = false
	car, _ := g.current.CarAt(g.selRow, g.selCol)
	fail := fmt.Sprintf("Can't move from (%d, %d) to (%d, %d)", g.selRow, g.selCol, row, col)

	var d Direction
	switch dr, dc := row-g.selRow, col-g.selCol; {
	case dr == -1 && dc == 0:
		d = Up
	case dr == 1 && dc == 0:
		d = Down
	case dr == 0 && dc == -1:
		d = Left
	case dr == 0 && dc == 1:
		d = Right
	default:
		g.notify(fail)
		return
	}
	if fr, fc := frontier(car, d); fr != row || fc != col {
		g.notify(fail)
		return
	}
	next, err := g.current.Move(car.ID, d)
	if err != nil {
		g.notify(fail)
		return
	}
	g.current = next
	g.notify(fmt.Sprintf("Moved from (%d, %d) to (%d, %d)", g.selRow, g.selCol, row, col))
}

func (g *Game) notify(msg string) {
	for _, fn := range g.observers {
		fn(msg, g.current)
	}
}
