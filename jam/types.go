package jam

import (
	"errors"
	"fmt"
)

const (
	// TargetID identifies the car that must reach the right edge.
	TargetID rune = 'X'
	// Empty marks an unoccupied cell in the grid view.
	Empty rune = '.'
	// MaxCells bounds rows*cols for a single board.
	MaxCells = 1 << 20
)

// Sentinel errors for jam boards.
var (
	// ErrUsage indicates the wrong number of arguments.
	ErrUsage = errors.New("jam: usage: jam filename")
	// ErrMalformedInput indicates an unreadable puzzle definition.
	ErrMalformedInput = errors.New("jam: malformed input")
	// ErrInvariant indicates a structurally invalid board.
	ErrInvariant = errors.New("jam: invariant violation")

	// ErrNotAligned indicates a car that is neither horizontal nor vertical.
	ErrNotAligned = fmt.Errorf("%w: car is not axis-aligned", ErrInvariant)
	// ErrOutOfBounds indicates a car extending past the grid.
	ErrOutOfBounds = fmt.Errorf("%w: car outside the grid", ErrInvariant)
	// ErrOverlap indicates two cars sharing a cell.
	ErrOverlap = fmt.Errorf("%w: cars overlap", ErrInvariant)
	// ErrDuplicateCar indicates two cars with the same id.
	ErrDuplicateCar = fmt.Errorf("%w: duplicate car id", ErrInvariant)
	// ErrTooLarge indicates a grid with more than MaxCells cells.
	ErrTooLarge = fmt.Errorf("%w: grid too large", ErrInvariant)
	// ErrNoTarget indicates the board has no target car.
	ErrNoTarget = fmt.Errorf("%w: no target car %q", ErrInvariant, TargetID)

	// ErrNoCar is returned by Move for an unknown car id.
	ErrNoCar = errors.New("jam: no such car")
	// ErrIllegalMove is returned by Move for a blocked or off-axis slide.
	ErrIllegalMove = errors.New("jam: illegal move")
)

// InputError reports a malformed puzzle definition with its line number.
type InputError struct {
	Line int
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("jam: line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error { return e.Err }

// Car is an axis-aligned block spanning StartRow..EndRow × StartCol..EndCol
// (inclusive). Two cars are equal only when every field matches.
type Car struct {
	ID       rune
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Horizontal reports whether the car lies in a single row.
func (c Car) Horizontal() bool { return c.StartRow == c.EndRow }

// Vertical reports whether the car lies in a single column.
func (c Car) Vertical() bool { return c.StartCol == c.EndCol }

// Len returns the number of cells the car occupies.
func (c Car) Len() int {
	return (c.EndRow - c.StartRow + 1) * (c.EndCol - c.StartCol + 1)
}

// Occupies reports whether (row, col) is one of the car's cells.
func (c Car) Occupies(row, col int) bool {
	return row >= c.StartRow && row <= c.EndRow && col >= c.StartCol && col <= c.EndCol
}

func (c Car) shift(d Direction) Car {
	dr, dc := d.delta()
	c.StartRow += dr
	c.EndRow += dr
	c.StartCol += dc
	c.EndCol += dc
	return c
}

func (c Car) String() string {
	return fmt.Sprintf("%c %d %d %d %d", c.ID, c.StartRow, c.StartCol, c.EndRow, c.EndCol)
}

// Direction is a one-cell slide.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
