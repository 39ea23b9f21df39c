package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/jam"
	"github.com/katalvlaran/statespace/search"
)

// ErrBatchFailed is returned when at least one batch puzzle could not be solved.
var ErrBatchFailed = errors.New("batch: some puzzles failed")

// batchLine is the summary of one puzzle; results keep input order.
type batchLine struct {
	file string
	res  *search.Result[jam.State]
	err  error
}

func (l batchLine) String() string {
	switch {
	case l.err != nil:
		return fmt.Sprintf("%s: error: %v", l.file, l.err)
	case !l.res.Found():
		return fmt.Sprintf("%s: No Solution! total=%d unique=%d", l.file, l.res.TotalEdges, l.res.UniqueStates)
	default:
		return fmt.Sprintf("%s: steps=%d total=%d unique=%d", l.file, l.res.Steps(), l.res.TotalEdges, l.res.UniqueStates)
	}
}

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch file...",
		Short: "Solve many jam puzzles concurrently and print one summary line each",
		Args:  minArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			lines := make([]batchLine, len(args))

			var g errgroup.Group
			g.SetLimit(a.cfg.BatchWorkers)
			for i, file := range args {
				i, file := i, file
				g.Go(func() error {
					lines[i] = a.solveFile(cmd, file)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			w := cmd.OutOrStdout()
			for _, l := range lines {
				fmt.Fprintln(w, l)
				if l.err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(args))
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&a.workers, "workers", a.workers, "maximum puzzles solved at once")
	return cmd
}

func (a *app) solveFile(cmd *cobra.Command, file string) batchLine {
	start, err := jam.LoadFile(file)
	if err != nil {
		return batchLine{file: file, err: err}
	}
	opts, cancel := a.searchOptions(cmd.Context())
	defer cancel()

	res, err := search.Solve(start, append(opts, search.WithLogger(a.log.With("file", file)))...)
	if err != nil {
		return batchLine{file: file, err: err}
	}
	return batchLine{file: file, res: res}
}
