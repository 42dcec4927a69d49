package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// ansiColors maps core colors to ANSI 256 palette indices. Terminals
// without color support fall back to plain runes.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
}

// colorStyles caches one lipgloss style per core color.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiColors)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiColors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are rendered as one run, and blank runs
// are written unstyled, keeping ANSI escape output small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			blank := start.Rune == ' '

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cell.Rune == ' ') != blank || (!blank && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Color).Render(run.String()))
		}
	}
	return sb.String()
}
