package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps board colors to terminal styles. Missing entries render unstyled.
var palette = map[core.Color]lipgloss.Style{
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen turns the glyph buffer into styled terminal text.
// Each row is split into runs of one color so a run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var (
		out strings.Builder
		run strings.Builder
		cur core.Color
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style, ok := palette[cur]; ok {
			out.WriteString(style.Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}

	for x := range s.Width() {
		g := s.GetCell(x, y)
		if g.Color != cur {
			flush()
			cur = g.Color
		}
		run.WriteRune(g.Rune)
	}
	flush()
	return out.String()
}
