// Package search provides a generic breadth-first solver over implicit
// state spaces, returning the shortest sequence of states from a start
// configuration to the first goal configuration it reaches.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a start state.
//   - Deduplicate states through a predecessor map keyed by State.Key().
//   - Returns a Result containing:
//   - Outcome: Found or NotFound
//   - Path: start → goal inclusive (nil when NotFound)
//   - TotalEdges: every successor produced, revisits included
//   - UniqueStates: states inserted into the predecessor map, start excluded
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a newly discovered state joins the frontier)
//   - OnDequeue (immediately before the goal test of a frontier state)
//   - Honors an expansion budget (n>0) or explicit “no limit” (n==0).
//
// Why
//
//   - Puzzles such as water jugs, modular clocks and sliding blocks have state
//     spaces that are never materialized as a graph; successors are computed
//     on demand, so the solver works on the State contract instead of a core.Graph.
//
// The State contract
//
//	type State[S any] interface {
//	    Successors() []S // every state one legal action away, fixed order
//	    IsGoal() bool    // pure predicate
//	    Key() string     // equal keys ⇔ equal configurations
//	}
//
//	Key must be computed from the externally observable configuration only
//	(bucket levels, clock position, occupied grid cells) and must never change
//	after construction; it is used as the visited-set key.
//
// Determinism
//
//	The frontier is FIFO and successors are enqueued in the order the State
//	returns them, so when several shortest paths exist the returned one depends
//	only on each state's successor order, never on map iteration order.
//
// Complexity (V = unique states, E = successor edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (frontier, predecessor map)
//
// Usage
//
//	res, err := search.Solve(start)
//	if err != nil {
//	    // only with WithContext / WithMaxExpansions / invalid options
//	}
//	if res.Found() {
//	    for i, s := range res.Path {
//	        fmt.Printf("Step %d: %v\n", i, s)
//	    }
//	}
//
//	// With functional options:
//	res, err := search.Solve(start,
//	    search.WithContext(ctx),
//	    search.WithMaxExpansions(1_000_000),
//	    search.WithOnDequeue(func(key string, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative budget).
//   - ErrBudgetExceeded    if WithMaxExpansions is exhausted before the search ends.
//   - ctx.Err()            if the context passed via WithContext is cancelled.
//   - ErrNoSolution, ErrAlreadySolved from Hint only.
//
// Absence of a solution is not an error: Solve returns a Result whose
// Outcome is NotFound.
package search
