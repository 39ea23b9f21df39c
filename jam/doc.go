// Package jam models the sliding-block ("car jam") puzzle as a search.State.
//
// A board is a Rows×Cols grid holding axis-aligned cars. Each car occupies
// a contiguous run of cells in one row (horizontal) or one column
// (vertical) and can only slide along that axis, one cell at a time, into
// an empty in-bounds cell. A single-cell car lies on both axes and may
// slide either way. Exactly one car, identified by TargetID, must be driven
// to the right edge: the board is solved when its rightmost cell sits in
// column Cols−1.
//
// Grid view
//
//	The grid (cell → car id or Empty) is derived from the cars once, when a
//	State is built, and its content is the State's Key. Two boards that list
//	the same cars in a different order therefore compare equal.
//
// Successor order
//
//	Cars are visited in input order. Horizontal cars try Right then Left,
//	vertical cars try Up then Down. A successor copies the parent's car list
//	and grid and rewrites only the two cells that changed.
//
// Input format
//
//	rows cols numCars
//	<id> startRow startCol endRow endCol     (numCars lines, inclusive bounds)
//
//	4 5 3
//	A 0 0 1 0
//	X 2 0 2 1
//	B 1 3 3 3
//
// Errors
//
//   - ErrMalformedInput     unreadable header or car line (wrapped in *InputError).
//   - ErrInvariant          structural violation; ErrNotAligned, ErrOutOfBounds,
//     ErrOverlap, ErrDuplicateCar and ErrNoTarget all wrap it.
//   - ErrNoCar, ErrIllegalMove from Move.
package jam
