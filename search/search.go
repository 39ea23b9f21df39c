package search

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable search state. The frontier and the
// predecessor map are owned exclusively by the walker; states are shared
// read-only between them.
type walker[S State[S]] struct {
	opts     Options
	ctx      context.Context
	start    S
	startKey string
	queue    []queueItem[S]
	pred     map[string]S
	res      *Result[S]
}

// Solve runs breadth-first search from start, applying any number of
// functional Options.
//
// The returned Result always carries the counters gathered so far. The
// error is non-nil only for ErrOptionViolation, ErrBudgetExceeded or a
// cancelled context; an unreachable goal is reported as Outcome NotFound.
func Solve[S State[S]](start S, opts ...Option) (*Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := tracer.Start(o.Ctx, "search.Solve")
	defer span.End()
	began := time.Now()

	startKey := start.Key()
	w := &walker[S]{
		opts:     o,
		ctx:      ctx,
		start:    start,
		startKey: startKey,
		queue:    make([]queueItem[S], 0, 64),
		pred:     make(map[string]S, 64),
		res:      &Result[S]{Outcome: NotFound},
	}
	// self-mapping sentinel: the start has no further predecessor
	w.pred[startKey] = start
	w.opts.OnEnqueue(startKey, 0)
	w.queue = append(w.queue, queueItem[S]{state: start, depth: 0})

	o.Logger.Debug("search started", "start", startKey, "max_expansions", o.MaxExpansions)

	goal, found, err := w.loop()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordSolveMetrics(ctx, "error", time.Since(began), w.res)
		o.Logger.Debug("search aborted", "error", err, "expanded", w.res.Expanded)
		return w.res, err
	}
	if found {
		w.res.Outcome = Found
		w.res.Path = w.pathTo(goal)
	}

	span.SetAttributes(
		attribute.String("search.outcome", w.res.Outcome.String()),
		attribute.Int("search.total_edges", w.res.TotalEdges),
		attribute.Int("search.unique_states", w.res.UniqueStates),
		attribute.Int("search.steps", w.res.Steps()),
	)
	recordSolveMetrics(ctx, w.res.Outcome.String(), time.Since(began), w.res)
	o.Logger.Debug("search finished",
		"outcome", w.res.Outcome.String(),
		"total", w.res.TotalEdges,
		"unique", w.res.UniqueStates,
		"expanded", w.res.Expanded,
		"steps", w.res.Steps(),
	)

	return w.res, nil
}

// Hint solves from start and returns the state one step along a shortest
// path. It returns ErrAlreadySolved when start is itself a goal and
// ErrNoSolution when no goal is reachable.
func Hint[S State[S]](start S, opts ...Option) (S, error) {
	var zero S
	if start.IsGoal() {
		return zero, ErrAlreadySolved
	}
	res, err := Solve(start, opts...)
	if err != nil {
		return zero, err
	}
	if !res.Found() {
		return zero, ErrNoSolution
	}
	return res.Path[1], nil
}

// loop processes the frontier until a goal is dequeued, the frontier
// empties, the budget runs out, or the context is cancelled.
func (w *walker[S]) loop() (S, bool, error) {
	var zero S
	for len(w.queue) > 0 {
		// cancellation check (once per dequeued state)
		select {
		case <-w.ctx.Done():
			return zero, false, w.ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return zero, false, fmt.Errorf("%w: %d states expanded", ErrBudgetExceeded, w.res.Expanded)
		}

		item := w.dequeue()
		if item.state.IsGoal() {
			return item.state, true, nil
		}
		w.expand(item)
	}
	return zero, false, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	var empty queueItem[S]
	w.queue[0] = empty
	w.queue = w.queue[1:]
	w.res.Expanded++
	w.opts.OnDequeue(item.state.Key(), item.depth)
	return item
}

// expand counts every successor of item and enqueues the unseen ones.
func (w *walker[S]) expand(item queueItem[S]) {
	for _, next := range item.state.Successors() {
		w.res.TotalEdges++
		key := next.Key()
		if _, seen := w.pred[key]; seen {
			continue
		}
		w.res.UniqueStates++
		w.pred[key] = item.state
		w.opts.OnEnqueue(key, item.depth+1)
		w.queue = append(w.queue, queueItem[S]{state: next, depth: item.depth + 1})
	}
}

// pathTo walks the predecessor map from goal back to the start and
// returns the path in start → goal order.
func (w *walker[S]) pathTo(goal S) []S {
	path := []S{}
	for cur := goal; ; {
		path = append(path, cur)
		key := cur.Key()
		if key == w.startKey {
			break
		}
		cur = w.pred[key]
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
