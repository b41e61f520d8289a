package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// renderTask renders the current task with the answer input.
func (s *DrillScreen) renderTask(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	bar := components.ProgressBar{Done: s.run.Served - 1, Total: s.run.Total, Width: min(width-8, 50)}
	b.WriteString(layout.Centered(bar.View(), width))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Task %d of %d", s.run.Served, s.run.Total)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Card.Render(theme.Task.Render(s.task.Text+" = ?")), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered("Answer: "+s.input.View(), width))
	b.WriteString("\n")

	if s.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Incorrect.Render(s.inputErr), width))
	}

	return b.String()
}

// renderFeedback renders Right!/Wrong for the answered task.
func (s *DrillScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.run.LastCorrect {
		b.WriteString(layout.Centered(theme.Correct.Render("Right!"), width))
	} else {
		b.WriteString(layout.Centered(theme.Incorrect.Render("Wrong"), width))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Task.Render(
		fmt.Sprintf("%s = %s", s.task.Text, taskgen.FormatNumber(s.task.Answer()))), width))
	b.WriteString("\n")
	if !s.run.LastCorrect {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"You answered "+s.input.Value()), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	next := "Press any key for the next task..."
	if s.run.Done() {
		next = "Press any key to see your score..."
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(next))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(theme.Body.Bold(true).Render("End drill early?"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("This run will not be scored."), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, back to menu"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going"), width))
	return b.String()
}

// renderError renders a failure that ends the drill.
func renderError(width int, msg string) string {
	return "\n\n" + layout.Centered(theme.Incorrect.Render("Something went wrong"), width) +
		"\n\n" + layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg), width) +
		"\n\n" + theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to go back")
}
