package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/clock"
	"github.com/katalvlaran/statespace/jam"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/water"
)

func (a *app) clockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock hours start end",
		Short: "Reach the end hour on a clock face one tick at a time",
		Args:  exactArgs(3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			start, err := clock.Parse(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Hours: %d, Start: %d, End: %d\n\n", start.Hours(), start.Start(), start.End())

			res, err := solve(a, cmd, start)
			if err != nil {
				return err
			}
			report(w, res, func(i int, s clock.State) {
				fmt.Fprintf(w, "Step %d: %s\n", i, s)
			})
			return nil
		}),
	}
}

func (a *app) waterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "water amount bucket1 [bucket2 ...]",
		Short: "Measure an amount with fill, empty and pour moves",
		Args:  minArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			start, err := water.Parse(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Amount: %d, Buckets: %s\n\n", start.Goal(), water.FormatCapacities(start.Capacities()))

			res, err := solve(a, cmd, start)
			if err != nil {
				return err
			}
			report(w, res, func(i int, s water.State) {
				fmt.Fprintf(w, "Step %d: %s\n", i, s)
			})
			return nil
		}),
	}
}

func (a *app) jamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jam file",
		Short: "Slide cars until the target car reaches the right edge",
		Args:  exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			start, err := jam.LoadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			r := jam.Renderer{Style: targetStyle(a.cfg.Color, w)}
			fmt.Fprintf(w, "File: %s\n", args[0])
			fmt.Fprint(w, r.Render(start))

			res, err := solve(a, cmd, start)
			if err != nil {
				return err
			}
			report(w, res, func(i int, s jam.State) {
				fmt.Fprintf(w, "Step %d:\n%s\n", i, r.Render(s))
			})
			return nil
		}),
	}
	cmd.AddCommand(a.playCmd())
	return cmd
}

// solve runs one search with the configured budget, deadline and logger.
func solve[S search.State[S]](a *app, cmd *cobra.Command, start S) (*search.Result[S], error) {
	opts, cancel := a.searchOptions(cmd.Context())
	defer cancel()

	a.log.Info("solving", "start", start.Key())
	res, err := search.Solve(start, opts...)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	a.log.Info("solved",
		"outcome", res.Outcome.String(),
		"total", res.TotalEdges,
		"unique", res.UniqueStates,
		"steps", res.Steps(),
	)
	return res, nil
}

// report prints the counters followed by either the path or "No Solution!".
func report[S any](w io.Writer, res *search.Result[S], step func(i int, s S)) {
	fmt.Fprintf(w, "Total configs: %d\n", res.TotalEdges)
	fmt.Fprintf(w, "Unique configs: %d\n", res.UniqueStates)
	if !res.Found() {
		fmt.Fprintln(w, "No Solution!")
		return
	}
	for i, s := range res.Path {
		step(i, s)
	}
}
