package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/jam"
	"github.com/katalvlaran/statespace/search"
)

const playHelp = `h(int)              -- hint next move
l(oad) filename     -- load new puzzle file
s(elect) r c        -- select cell at r, c
q(uit)              -- quit the game
r(eset)             -- reset the current game
`

func (a *app) playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play file",
		Short: "Play a jam puzzle interactively",
		Long: `Loads a puzzle and reads commands from standard input:

` + playHelp,
		Args: exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			// no deadline here: a timeout would expire over the session
			// rather than per hint
			g := jam.NewGame(
				search.WithContext(cmd.Context()),
				search.WithMaxExpansions(a.cfg.MaxExpansions),
				search.WithLogger(a.log),
			)
			if err := g.Load(args[0]); err != nil {
				return err
			}
			p := &player{
				game: g,
				in:   cmd.InOrStdin(),
				out:  cmd.OutOrStdout(),
				r:    jam.Renderer{Framed: true, Style: targetStyle(a.cfg.Color, cmd.OutOrStdout())},
			}
			return p.loop()
		}),
	}
}

// player drives a jam.Game from line-oriented text commands.
type player struct {
	game *jam.Game
	in   io.Reader
	out  io.Writer
	r    jam.Renderer
}

func (p *player) show(msg string, board jam.State) {
	fmt.Fprintln(p.out, msg)
	if _, ok := p.game.Current(); ok {
		fmt.Fprint(p.out, p.r.Render(board))
	}
}

func (p *player) loop() error {
	p.game.Observe(p.show)
	cur, _ := p.game.Current()
	fmt.Fprint(p.out, playHelp)
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, p.r.Render(cur))

	sc := bufio.NewScanner(p.in)
	for {
		fmt.Fprint(p.out, "Jam game command: ")
		if !sc.Scan() {
			fmt.Fprintln(p.out)
			return sc.Err()
		}
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		switch strings.ToLower(words[0][:1]) {
		case "h":
			_ = p.game.Hint()
		case "l":
			if len(words) < 2 {
				fmt.Fprint(p.out, playHelp)
				continue
			}
			_ = p.game.Load(words[1])
		case "s":
			row, col, ok := cell(words[1:])
			if !ok {
				fmt.Fprint(p.out, playHelp)
				continue
			}
			p.game.Select(row, col)
		case "r":
			_ = p.game.Reset()
		case "q":
			return nil
		default:
			fmt.Fprint(p.out, playHelp)
		}
	}
}

// cell parses "r c".
func cell(words []string) (row, col int, ok bool) {
	if len(words) < 2 {
		return 0, 0, false
	}
	row, err := strconv.Atoi(words[0])
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(words[1])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
