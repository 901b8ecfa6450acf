package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devmabbott/Invaders/internal/core"
)

// colorStyles holds one lipgloss style per core.Color, indexed by color.
var colorStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.ColorGray+1)
	for c := range styles {
		style := lipgloss.NewStyle()
		if n := core.Color(c).ANSI(); n >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(n)))
		}
		styles[c] = style
	}
	return styles
}()

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame draws the playfield inside a border with the footer below it.
func RenderFrame(playfield, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Render(playfield),
		footerStyle.Render(footer),
	)
}
