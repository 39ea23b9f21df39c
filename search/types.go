// Package search provides tunable options, error definitions and result
// types for breadth-first solving over a State space.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when the expansion budget runs out
	// before the frontier is exhausted or a goal is dequeued.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")

	// ErrNoSolution is returned by Hint when no goal is reachable.
	ErrNoSolution = errors.New("search: no solution")

	// ErrAlreadySolved is returned by Hint when the start state is a goal.
	ErrAlreadySolved = errors.New("search: already solved")
)

// State is the contract every puzzle configuration satisfies.
//
// Implementations are immutable after construction. Successors returns
// brand-new states in a fixed, reproducible order and may contain
// duplicates; Key identifies the externally observable configuration.
type State[S any] interface {
	Successors() []S
	IsGoal() bool
	Key() string
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeued state.
	Ctx context.Context

	// OnEnqueue is called when a newly discovered state is enqueued.
	// Receives the state key and its depth from the start.
	OnEnqueue func(key string, depth int)

	// OnDequeue is called immediately before the goal test of a state.
	OnDequeue func(key string, depth int)

	// MaxExpansions, if > 0, bounds the number of dequeued states.
	// A value of 0 explicitly disables the budget.
	MaxExpansions int

	// Logger receives debug records for search start and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion budget (MaxExpansions == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
//   - slog.Default() logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnEnqueue:     func(string, int) {},
		OnDequeue:     func(string, int) {},
		MaxExpansions: 0,
		Logger:        slog.Default(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxExpansions stops the search after n dequeued states.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// WithLogger routes search debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Outcome tells whether a search reached a goal.
type Outcome int

const (
	// NotFound means the frontier emptied without dequeuing a goal.
	NotFound Outcome = iota
	// Found means a goal was dequeued and Path leads to it.
	Found
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "not_found"
}

// Result holds the outcome of a search:
//   - Outcome: Found or NotFound.
//   - Path: states from start to goal inclusive; nil unless Found.
//   - TotalEdges: successors produced, including revisits.
//   - UniqueStates: states first discovered, start excluded.
//   - Expanded: states dequeued from the frontier.
type Result[S any] struct {
	Outcome      Outcome
	Path         []S
	TotalEdges   int
	UniqueStates int
	Expanded     int
}

// Found reports whether a goal was reached.
func (r *Result[S]) Found() bool {
	return r.Outcome == Found
}

// Steps returns the number of transitions on the path, or -1 when NotFound.
func (r *Result[S]) Steps() int {
	if r.Outcome != Found {
		return -1
	}
	return len(r.Path) - 1
}

// Goal returns the last state of the path.
func (r *Result[S]) Goal() (S, bool) {
	var zero S
	if r.Outcome != Found || len(r.Path) == 0 {
		return zero, false
	}
	return r.Path[len(r.Path)-1], true
}
