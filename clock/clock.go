// Package clock models reachability on a modular clock face as a search.State.
//
// Positions run 1..Hours. From position p the hand may move back one tick
// (p−1, wrapping from 1 to Hours) or forward one tick (p+1, wrapping from
// Hours to 1). The goal is reached when the hand points at End.
package clock

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for clock construction and parsing.
var (
	// ErrUsage indicates the wrong number of arguments.
	ErrUsage = errors.New("clock: usage: clock hours start end")
	// ErrMalformedInput indicates an argument that is not an integer.
	ErrMalformedInput = errors.New("clock: malformed input")
	// ErrInvariant indicates hours, start or end out of range.
	ErrInvariant = errors.New("clock: invariant violation")
)

// State is one hand position on a clock with a fixed number of hours.
type State struct {
	hours    int
	start    int
	end      int
	position int
}

// New validates the clock and returns the state with the hand at start.
//
// All values must be non-negative, hours must be at least 1 and start must
// lie on the face (1..hours). An end outside the face is accepted; such a
// clock simply has no solution.
func New(hours, start, end int) (State, error) {
	if hours < 0 || start < 0 || end < 0 {
		return State{}, fmt.Errorf("%w: hours, start and end must be non-negative (%d, %d, %d)",
			ErrInvariant, hours, start, end)
	}
	if hours == 0 {
		return State{}, fmt.Errorf("%w: a clock needs at least one hour", ErrInvariant)
	}
	if start < 1 || start > hours {
		return State{}, fmt.Errorf("%w: start %d is not on a %d-hour face", ErrInvariant, start, hours)
	}
	return State{hours: hours, start: start, end: end, position: start}, nil
}

// Parse builds the start state from "hours start end" arguments.
func Parse(args []string) (State, error) {
	if len(args) != 3 {
		return State{}, fmt.Errorf("%w (got %d arguments)", ErrUsage, len(args))
	}
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return State{}, fmt.Errorf("%w: argument %d %q is not an integer", ErrMalformedInput, i+1, a)
		}
		v[i] = n
	}
	return New(v[0], v[1], v[2])
}

// Successors returns the backward tick then the forward tick.
func (s State) Successors() []State {
	back := s.position - 1
	if back == 0 {
		back = s.hours
	}
	fwd := s.position + 1
	if fwd > s.hours {
		fwd = 1
	}
	return []State{s.at(back), s.at(fwd)}
}

func (s State) at(p int) State {
	s.position = p
	return s
}

// IsGoal reports whether the hand points at the end hour.
func (s State) IsGoal() bool { return s.position == s.end }

// Key identifies the state by hand position alone.
func (s State) Key() string { return strconv.Itoa(s.position) }

// String renders the hand position.
func (s State) String() string { return strconv.Itoa(s.position) }

// Position returns the current hand position.
func (s State) Position() int { return s.position }

// Hours returns the size of the clock face.
func (s State) Hours() int { return s.hours }

// Start returns the initial hand position.
func (s State) Start() int { return s.start }

// End returns the target hand position.
func (s State) End() int { return s.end }
