package water

import "errors"

// Sentinel errors for water puzzle construction and parsing.
var (
	// ErrUsage indicates the wrong number of arguments.
	ErrUsage = errors.New("water: usage: water amount bucket1 bucket2 ...")
	// ErrMalformedInput indicates an argument that is not an integer.
	ErrMalformedInput = errors.New("water: malformed input")
	// ErrInvariant indicates a negative goal or capacity.
	ErrInvariant = errors.New("water: invariant violation")
	// ErrNoBuckets indicates an empty capacity list.
	ErrNoBuckets = errors.New("water: at least one bucket is required")
)

// State is one water-jug configuration. It is immutable; the zero value is
// not usable, build states with New or Parse.
type State struct {
	levels     []int
	capacities []int // shared between all states of a run, never written
	goal       int
	key        string
}
