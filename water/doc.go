// Package water models the water-jug puzzle as a search.State.
//
// A configuration is the fill level of every bucket. Capacities and the goal
// amount are fixed for the whole run and shared by every state; only the
// levels differ. From any configuration the legal actions are, for each
// bucket i in index order:
//
//	fill i      levels[i] = capacities[i]
//	empty i     levels[i] = 0
//	pour i→j    move min(capacities[j]-levels[j], levels[i]) units, for every j ≠ i
//
// so a state with n buckets has at most 2n + n(n−1) successors. A
// configuration is a goal when any bucket holds exactly the goal amount.
//
// Equality is by levels only: Key renders the level vector, computed once
// when the state is built.
package water
