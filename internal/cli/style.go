package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/statespace/jam"
)

// colorEnabled decides whether board output to w is highlighted.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// targetStyle returns a jam.Renderer style that prints the target car in
// bold red, or nil when color is disabled.
func targetStyle(mode string, w io.Writer) func(id rune, token string) string {
	if !colorEnabled(mode, w) {
		return nil
	}
	r := lipgloss.NewRenderer(w)
	// the renderer probes w itself; a forced mode must not be downgraded
	r.SetColorProfile(termenv.ANSI256)
	target := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	return func(id rune, token string) string {
		if id != jam.TargetID {
			return token
		}
		return target.Render(token)
	}
}
