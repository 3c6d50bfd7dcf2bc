package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles for the local terminal.
var colorStyles = NewColorStyles(lipgloss.DefaultRenderer())

// NewColorStyles builds the color table for a renderer. SSH sessions pass
// their own renderer so colors follow the remote terminal's profile.
func NewColorStyles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          r.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       r.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:         r.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorCyan:         r.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:        r.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightRed:    r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorBrightCyan:   r.NewStyle().Foreground(lipgloss.Color("14")),
		core.ColorBrightWhite:  r.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorOrange:       r.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:         r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreenWith converts a Screen buffer to a styled string using the
// given style table. Adjacent cells with the same color share one styled
// run; colors missing from styles fall back to the default style.
func RenderScreenWith(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
