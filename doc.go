// Package statespace is a toolkit for solving puzzles whose configurations
// form an implicit graph: each configuration knows its neighbours, and the
// solver finds the fewest moves from a start to any goal.
//
// What is inside?
//
//	search/  generic breadth-first solver: shortest path, edge and
//	         unique-state counters, hooks, budgets, cancellation
//	clock/   move a clock hand one hour at a time to a target hour
//	water/   fill, empty and pour buckets until one holds an amount
//	jam/     slide cars on a grid until the target car exits right,
//	         plus an interactive Game with hints
//
// Command-line drivers live under cmd/: puzzles (all solvers as
// subcommands) and one standalone binary per puzzle.
//
// Quick start:
//
//	start, _ := water.New(4, []int{5, 3})
//	res, err := search.Solve(start)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, s := range res.Path {
//		fmt.Printf("Step %d: %s\n", i, s)
//	}
//
// Any type can be solved by implementing search.State: Successors,
// IsGoal and a Key that is equal for equal configurations.
package statespace
