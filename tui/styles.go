package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pinder/session"
)

const (
	// cellWidth is the number of columns each board cell occupies.
	cellWidth = 3
	menuWidth = 30
)

var (
	colorGrey   = lipgloss.Color("#4b4b4b")
	colorWhite  = lipgloss.Color("#ffffff")
	colorRed    = lipgloss.Color("#ff0000")
	colorGreen  = lipgloss.Color("#00ff00")
	colorYellow = lipgloss.Color("#ffff00")
	colorCyan   = lipgloss.Color("#00ffff")

	activePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite)
	inactivePane = activePane.BorderForeground(colorGrey)

	menuItemStyle     = lipgloss.NewStyle()
	menuCurrentStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	menuDisabledStyle = lipgloss.NewStyle().Foreground(colorGrey)

	statusStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	glyphStyles = map[rune]lipgloss.Style{
		'S':                lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		'G':                lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		'#':                lipgloss.NewStyle().Foreground(colorRed),
		':':                lipgloss.NewStyle().Foreground(colorYellow),
		session.GlyphPath:  lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		session.ArrowLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f00")),
		session.ArrowUp:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00a0ff")),
		session.ArrowRight: lipgloss.NewStyle().Foreground(lipgloss.Color("#df00ff")),
		session.ArrowDown:  lipgloss.NewStyle().Foreground(lipgloss.Color("#21ff00")),
	}
)

func init() {
	for i := 0; i <= session.MaxCostDigit; i++ {
		glyphStyles[rune('0'+i)] = lipgloss.NewStyle().Foreground(costColor(i))
	}
}

// costColor steps from RGB(110,220,25) at 0 to RGB(218,112,25) at 9.
func costColor(i int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", 110+i*12, 220-i*12, 25))
}

// styleFor returns the style a board glyph is drawn with.
func styleFor(r rune) lipgloss.Style {
	if s, ok := glyphStyles[r]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
