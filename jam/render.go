package jam

import (
	"strconv"
	"strings"
)

// Renderer formats boards for terminals.
//
// With Framed set, a column index header and row labels are added, the way
// the interactive game shows the board. Style, when non-nil, decorates the
// token of every occupied cell.
type Renderer struct {
	Framed bool
	Style  func(id rune, token string) string
}

// Render returns the board text; every line ends with a newline.
func (r Renderer) Render(s State) string {
	var b strings.Builder
	if r.Framed {
		b.WriteString("  ")
		for c := 0; c < s.cols; c++ {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteString("\n  ")
		b.WriteString(strings.Repeat("--", s.cols))
		b.WriteByte('\n')
	}
	for row := 0; row < s.rows; row++ {
		if r.Framed {
			b.WriteString(strconv.Itoa(row))
			b.WriteString("| ")
		}
		for col := 0; col < s.cols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			id := s.grid[s.index(row, col)]
			token := string(id)
			if id != Empty && r.Style != nil {
				token = r.Style(id, token)
			}
			b.WriteString(token)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
