package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen shows the result of a finished drill.
type SummaryScreen struct {
	summary drl.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. When again is not nil the menu offers to
// run the same drill once more, replacing this screen with again().
func New(sum drl.Summary, again func() screen.Screen) *SummaryScreen {
	var items []components.MenuItem
	if again != nil {
		items = append(items, components.MenuItem{
			Label:  "Run the drill again",
			Action: func() tea.Cmd { return router.Replace(again()) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Back to main menu",
		Action: router.Pop,
	})

	return &SummaryScreen{summary: sum, menu: components.NewMenu(items)}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, router.Pop()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Drill complete!"))
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if sum.Right < sum.Total {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	b.WriteString(layout.Centered(scoreStyle.Render(sum.Score()), width))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Accuracy: %.0f%%", sum.Accuracy()*100)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(sum.TimeTaken()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(s.menu.View(), width))
	return b.String()
}
