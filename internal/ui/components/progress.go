package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// ProgressBar displays how far through a drill the user is.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// Percent returns the filled fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the bar followed by a done/total count.
func (p ProgressBar) View() string {
	label := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := max(p.Width-len(label), 4)

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
