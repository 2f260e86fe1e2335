package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptogram/cryptogram/internal/game"
	"github.com/cryptogram/cryptogram/internal/render"
)

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // purple
	colorSecondary = lipgloss.Color("#10B981") // green
	colorWarning   = lipgloss.Color("#F59E0B") // yellow
	colorMuted     = lipgloss.Color("#6B7280") // gray
	colorText      = lipgloss.Color("#F9FAFB") // white

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	attributionStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			MarginTop(1)

	variantEnhancedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000000")).
				Background(colorSecondary).
				Padding(0, 1)

	variantLegacyStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000000")).
				Background(colorWarning).
				Padding(0, 1)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Board cells
	defaultCellStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	guessedCellStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Reverse(true)
)

// VariantStyle returns the status bar badge style for a variant.
func VariantStyle(v game.Variant) lipgloss.Style {
	if v == game.Legacy {
		return variantLegacyStyle
	}
	return variantEnhancedStyle
}

// CellStyles maps each cell state to a style. The enhanced variant
// underlines the cursor cell.
func CellStyles(v game.Variant) map[render.State]lipgloss.Style {
	cur := cursorStyle
	if v == game.Enhanced {
		cur = cur.Underline(true)
	}
	return map[render.State]lipgloss.Style{
		render.Default:     defaultCellStyle,
		render.Guessed:     guessedCellStyle,
		render.Highlighted: cur,
	}
}
