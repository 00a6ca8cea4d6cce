package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// colorStyles maps semantic colours to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle(),
	core.ColorBird:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleFor returns the style for a colour, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one style to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
