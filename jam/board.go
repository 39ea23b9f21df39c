package jam

import (
	"fmt"
	"slices"
	"unicode"
)

// State is one arrangement of cars on a board. It is immutable: Successors
// and Move return new states and never touch the receiver.
type State struct {
	rows, cols int
	cars       []Car  // input order, shared read-only with ancestors until replaced
	grid       []rune // rows*cols cells, row-major
	target     int    // index of the target car in cars
	key        string
}

// New validates the cars against a rows×cols grid and returns the board.
// The cars slice is copied.
func New(rows, cols int, cars []Car) (State, error) {
	if rows <= 0 || cols <= 0 {
		return State{}, fmt.Errorf("%w: grid must be at least 1x1 (got %dx%d)", ErrInvariant, rows, cols)
	}
	if err := checkSize(rows, cols); err != nil {
		return State{}, err
	}
	s := State{
		rows:   rows,
		cols:   cols,
		cars:   slices.Clone(cars),
		grid:   make([]rune, rows*cols),
		target: -1,
	}
	for i := range s.grid {
		s.grid[i] = Empty
	}

	seen := make(map[rune]bool, len(cars))
	for i, c := range s.cars {
		if c.ID == Empty || unicode.IsSpace(c.ID) || c.ID == 0 {
			return State{}, fmt.Errorf("%w: car %d has invalid id %q", ErrInvariant, i+1, c.ID)
		}
		if seen[c.ID] {
			return State{}, fmt.Errorf("%w: %c", ErrDuplicateCar, c.ID)
		}
		seen[c.ID] = true
		if c.StartRow > c.EndRow || c.StartCol > c.EndCol {
			return State{}, fmt.Errorf("%w: car %c start (%d, %d) is after end (%d, %d)",
				ErrInvariant, c.ID, c.StartRow, c.StartCol, c.EndRow, c.EndCol)
		}
		if !c.Horizontal() && !c.Vertical() {
			return State{}, fmt.Errorf("%w: %v", ErrNotAligned, c)
		}
		if !s.InBounds(c.StartRow, c.StartCol) || !s.InBounds(c.EndRow, c.EndCol) {
			return State{}, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, c, rows, cols)
		}
		for r := c.StartRow; r <= c.EndRow; r++ {
			for col := c.StartCol; col <= c.EndCol; col++ {
				at := s.index(r, col)
				if s.grid[at] != Empty {
					return State{}, fmt.Errorf("%w: %c and %c at (%d, %d)", ErrOverlap, s.grid[at], c.ID, r, col)
				}
				s.grid[at] = c.ID
			}
		}
		if c.ID == TargetID {
			s.target = i
		}
	}
	if s.target < 0 {
		return State{}, ErrNoTarget
	}
	s.key = string(s.grid)

	return s, nil
}

// checkSize rejects grids above MaxCells without computing rows*cols,
// which may overflow.
func checkSize(rows, cols int) error {
	if rows > 0 && cols > 0 && rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, rows, cols, MaxCells)
	}
	return nil
}

// InBounds reports whether (row, col) lies within the grid.
func (s State) InBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

func (s State) index(row, col int) int { return row*s.cols + col }

// Successors returns every single-cell slide of every car, cars in input
// order, Right/Left for horizontal cars and Up/Down for vertical ones.
func (s State) Successors() []State {
	out := make([]State, 0, 2*len(s.cars))
	for i, c := range s.cars {
		if c.Horizontal() {
			out = s.appendSlide(out, i, Right)
			out = s.appendSlide(out, i, Left)
		}
		if c.Vertical() {
			out = s.appendSlide(out, i, Up)
			out = s.appendSlide(out, i, Down)
		}
	}
	return out
}

func (s State) appendSlide(out []State, i int, d Direction) []State {
	if s.canSlide(s.cars[i], d) {
		out = append(out, s.slide(i, d))
	}
	return out
}

// frontier returns the cell just beyond the car's leading edge in d.
func frontier(c Car, d Direction) (row, col int) {
	switch d {
	case Up:
		return c.StartRow - 1, c.StartCol
	case Down:
		return c.EndRow + 1, c.EndCol
	case Left:
		return c.StartRow, c.StartCol - 1
	default:
		return c.EndRow, c.EndCol + 1
	}
}

// trailing returns the cell the car vacates when sliding in d.
func trailing(c Car, d Direction) (row, col int) {
	switch d {
	case Up:
		return c.EndRow, c.EndCol
	case Down:
		return c.StartRow, c.StartCol
	case Left:
		return c.EndRow, c.EndCol
	default:
		return c.StartRow, c.StartCol
	}
}

func (s State) canSlide(c Car, d Direction) bool {
	switch d {
	case Up, Down:
		if !c.Vertical() {
			return false
		}
	default:
		if !c.Horizontal() {
			return false
		}
	}
	r, col := frontier(c, d)
	return s.InBounds(r, col) && s.grid[s.index(r, col)] == Empty
}

// slide builds the successor with car i shifted one cell in d. Only the
// car list entry and the two affected grid cells differ from the parent.
func (s State) slide(i int, d Direction) State {
	c := s.cars[i]
	cars := slices.Clone(s.cars)
	cars[i] = c.shift(d)

	grid := slices.Clone(s.grid)
	fr, fc := frontier(c, d)
	tr, tc := trailing(c, d)
	grid[s.index(fr, fc)] = c.ID
	grid[s.index(tr, tc)] = Empty

	return State{
		rows:   s.rows,
		cols:   s.cols,
		cars:   cars,
		grid:   grid,
		target: s.target,
		key:    string(grid),
	}
}

// Move slides the car with the given id one cell in d.
// Returns ErrNoCar for an unknown id and ErrIllegalMove when the car lies
// on the other axis or the destination cell is blocked or off the grid.
func (s State) Move(id rune, d Direction) (State, error) {
	i := slices.IndexFunc(s.cars, func(c Car) bool { return c.ID == id })
	if i < 0 {
		return State{}, fmt.Errorf("%w: %q", ErrNoCar, id)
	}
	if !s.canSlide(s.cars[i], d) {
		return State{}, fmt.Errorf("%w: %c cannot slide %v", ErrIllegalMove, id, d)
	}
	return s.slide(i, d), nil
}

// IsGoal reports whether the target car touches the right edge.
func (s State) IsGoal() bool {
	return s.cars[s.target].EndCol == s.cols-1
}

// Key is the grid content, row-major, one rune per cell.
func (s State) Key() string { return s.key }

// Rows returns the grid height.
func (s State) Rows() int { return s.rows }

// Cols returns the grid width.
func (s State) Cols() int { return s.cols }

// Cars returns a copy of the cars in input order.
func (s State) Cars() []Car { return slices.Clone(s.cars) }

// Target returns the target car.
func (s State) Target() Car { return s.cars[s.target] }

// Cell returns the car id at (row, col), Empty for a free cell.
// It panics when (row, col) is outside the grid.
func (s State) Cell(row, col int) rune {
	if !s.InBounds(row, col) {
		panic(fmt.Sprintf("jam: cell (%d, %d) outside %dx%d grid", row, col, s.rows, s.cols))
	}
	return s.grid[s.index(row, col)]
}

// CarAt returns the car covering (row, col).
func (s State) CarAt(row, col int) (Car, bool) {
	if !s.InBounds(row, col) {
		return Car{}, false
	}
	id := s.grid[s.index(row, col)]
	if id == Empty {
		return Car{}, false
	}
	for _, c := range s.cars {
		if c.ID == id {
			return c, true
		}
	}
	return Car{}, false
}

// Board returns the grid as rows of ids.
func (s State) Board() [][]rune {
	out := make([][]rune, s.rows)
	for r := range out {
		out[r] = slices.Clone(s.grid[r*s.cols : (r+1)*s.cols])
	}
	return out
}

// String renders the board as Rows lines of Cols space-separated tokens.
func (s State) String() string {
	return Renderer{}.Render(s)
}
