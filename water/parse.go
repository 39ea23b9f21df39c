package water

import (
	"fmt"
	"strconv"
)

// Parse builds the start state from "amount bucket1 bucket2 ..." arguments.
// Every argument is checked before any state is built.
func Parse(args []string) (State, error) {
	if len(args) < 2 {
		return State{}, fmt.Errorf("%w (got %d arguments)", ErrUsage, len(args))
	}
	nums := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return State{}, fmt.Errorf("%w: argument %d %q is not an integer", ErrMalformedInput, i+1, a)
		}
		if v < 0 {
			return State{}, fmt.Errorf("%w: argument %d cannot be negative (%d)", ErrInvariant, i+1, v)
		}
		nums[i] = v
	}
	return New(nums[0], nums[1:])
}
