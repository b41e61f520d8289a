package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const bannerFull = `┌───┐ ┌───┐ ┌───┐
│ + │ │ − │ │ × │
└───┘ └───┘ └───┘`

const bannerCompact = "+  −  ×"

// renderBanner returns the operator banner, or a one-line version on short
// terminals.
func renderBanner(width int, compact bool) string {
	art := bannerFull
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(art)
}
