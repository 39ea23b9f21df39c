package water

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// New returns the all-empty configuration for the given capacities.
// The capacities slice is copied. Returns ErrNoBuckets for an empty list
// and ErrInvariant for a negative goal or capacity.
func New(goal int, capacities []int) (State, error) {
	if len(capacities) == 0 {
		return State{}, ErrNoBuckets
	}
	if goal < 0 {
		return State{}, fmt.Errorf("%w: goal amount cannot be negative (%d)", ErrInvariant, goal)
	}
	for i, c := range capacities {
		if c < 0 {
			return State{}, fmt.Errorf("%w: bucket %d capacity cannot be negative (%d)", ErrInvariant, i+1, c)
		}
	}
	caps := slices.Clone(capacities)

	return newState(make([]int, len(caps)), caps, goal), nil
}

// newState takes ownership of levels.
func newState(levels, capacities []int, goal int) State {
	return State{
		levels:     levels,
		capacities: capacities,
		goal:       goal,
		key:        render(levels),
	}
}

// Successors returns fill, empty and pour results for every bucket in
// index order. Results equal to the receiver are included.
func (s State) Successors() []State {
	n := len(s.levels)
	out := make([]State, 0, 2*n+n*(n-1))
	for i := 0; i < n; i++ {
		fill := slices.Clone(s.levels)
		fill[i] = s.capacities[i]
		out = append(out, newState(fill, s.capacities, s.goal))

		empty := slices.Clone(s.levels)
		empty[i] = 0
		out = append(out, newState(empty, s.capacities, s.goal))

		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			pour := slices.Clone(s.levels)
			amount := min(s.capacities[j]-pour[j], pour[i])
			pour[j] += amount
			pour[i] -= amount
			out = append(out, newState(pour, s.capacities, s.goal))
		}
	}
	return out
}

// IsGoal reports whether any bucket holds exactly the goal amount.
func (s State) IsGoal() bool {
	return slices.Contains(s.levels, s.goal)
}

// Key identifies the configuration by its level vector.
func (s State) Key() string { return s.key }

// String renders the levels as "[a, b, c]".
func (s State) String() string { return s.key }

// Levels returns a copy of the current bucket levels.
func (s State) Levels() []int { return slices.Clone(s.levels) }

// Capacities returns a copy of the bucket capacities.
func (s State) Capacities() []int { return slices.Clone(s.capacities) }

// Goal returns the target amount.
func (s State) Goal() int { return s.goal }

// render formats a vector the way the drivers print it.
func render(v []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatCapacities renders a capacity list like a level vector.
func FormatCapacities(caps []int) string { return render(caps) }
