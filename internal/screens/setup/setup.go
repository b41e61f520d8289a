package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	drillscreen "github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// phase is the step of the setup flow being shown.
type phase int

const (
	phaseList phase = iota
	phaseNegative
	phaseOperation
	phaseMax
	phaseCount
)

// pickMsg carries the index chosen from the current phase's menu.
type pickMsg int

// SetupScreen collects the operations and task count for a drill.
type SetupScreen struct {
	defaults drl.Plan
	plan     drl.Plan
	pending  drl.OperationSpec

	phase  phase
	menu   components.Menu
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. Count, seed and attempt cap come from defaults;
// its operations are ignored.
func New(defaults drl.Plan) *SetupScreen {
	s := &SetupScreen{defaults: defaults, plan: defaults}
	s.plan.Operations = nil
	s.enter(phaseList)
	return s
}

// Plan returns the plan collected so far.
func (s *SetupScreen) Plan() drl.Plan {
	return s.plan
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Drill"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseMax, phaseCount:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func pick(i int) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return pickMsg(i) }
	}
}

func menuOf(labels ...string) components.Menu {
	items := make([]components.MenuItem, len(labels))
	for i, label := range labels {
		items[i] = components.MenuItem{Label: label, Action: pick(i)}
	}
	return components.NewMenu(items)
}

// enter switches to p and prepares its menu or input.
func (s *SetupScreen) enter(p phase) tea.Cmd {
	s.phase = p
	switch p {
	case phaseList:
		s.menu = menuOf("Add operation", "Start drill", "Back to main menu")
	case phaseNegative:
		s.menu = menuOf("No", "Yes")
	case phaseOperation:
		labels := make([]string, 0, len(drl.Operations)+1)
		for _, op := range drl.Operations {
			labels = append(labels, op.Label())
		}
		s.menu = menuOf(append(labels, "Cancel")...)
	case phaseMax:
		s.input = components.NewNumberInput(s.pending.Op.MaxPrompt(), false)
		return s.input.Init()
	case phaseCount:
		s.input = components.NewNumberInput(fmt.Sprintf("%d", s.defaultCount()), false)
		return s.input.Init()
	}
	return nil
}

func (s *SetupScreen) defaultCount() int {
	if s.defaults.Count > 0 {
		return s.defaults.Count
	}
	return drl.DefaultTaskCount
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pickMsg:
		return s.handlePick(int(msg))

	case tea.KeyMsg:
		key := msg.String()
		if key == "esc" {
			if s.phase == phaseList {
				return s, router.Pop()
			}
			s.errMsg = ""
			return s, s.enter(phaseList)
		}
		if s.phase == phaseMax || s.phase == phaseCount {
			if key == "enter" {
				return s.submitInput()
			}
			s.errMsg = ""
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.phase == phaseMax || s.phase == phaseCount {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handlePick(i int) (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch s.phase {
	case phaseList:
		switch i {
		case 0:
			return s, s.enter(phaseNegative)
		case 1:
			if len(s.plan.Operations) == 0 {
				s.errMsg = capitalize(drl.ErrNoOperations.Error()) + "."
				return s, nil
			}
			return s, s.enter(phaseCount)
		default:
			return s, router.Pop()
		}

	case phaseNegative:
		s.pending = drl.OperationSpec{Negative: i == 1}
		return s, s.enter(phaseOperation)

	case phaseOperation:
		if i >= len(drl.Operations) {
			return s, s.enter(phaseList)
		}
		s.pending.Op = drl.Operations[i]
		return s, s.enter(phaseMax)
	}
	return s, nil
}

func (s *SetupScreen) submitInput() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	if s.phase == phaseCount && value == "" {
		value = fmt.Sprintf("%d", s.defaultCount())
	}

	n, err := taskgen.ParseNumber[int64](value)
	if err != nil {
		s.errMsg = "Please enter a whole number."
		return s, nil
	}
	if n <= 0 {
		s.errMsg = "Error: Must be greater than zero."
		return s, nil
	}

	if s.phase == phaseMax {
		spec := s.pending
		spec.Max = n
		if err := spec.Validate(); err != nil {
			s.errMsg = "Error: " + err.Error()
			return s, nil
		}
		s.plan.Operations = append(s.plan.Operations, spec)
		return s, s.enter(phaseList)
	}

	s.plan.Count = int(n)
	ds, err := drillscreen.FromPlan(s.plan)
	if err != nil {
		s.errMsg = "Error: " + err.Error()
		return s, nil
	}
	return s, router.Replace(ds)
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.phase {
	case phaseList:
		b.WriteString(theme.Title.Width(width).Render("Setup tasks"))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("You have selected %d mathematical operations.", len(s.plan.Operations))))
		b.WriteString("\n\n")
		if len(s.plan.Operations) > 0 {
			var ops strings.Builder
			for _, spec := range s.plan.Operations {
				ops.WriteString(theme.Body.Render("• "+spec.String()) + "\n")
			}
			b.WriteString(layout.Centered(ops.String(), width))
			b.WriteString("\n")
		}
		b.WriteString(layout.Centered(s.menu.View(), width))
	case phaseNegative:
		b.WriteString(theme.Title.Width(width).Render("Do you want to include negative numbers?"))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(s.menu.View(), width))
	case phaseOperation:
		b.WriteString(theme.Title.Width(width).Render("Select mathematical operation"))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(s.menu.View(), width))
	case phaseMax:
		b.WriteString(theme.Title.Width(width).Render(s.pending.Op.Label()))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(s.pending.Op.MaxPrompt()+": "+s.input.View(), width))
		b.WriteString("\n")
	case phaseCount:
		b.WriteString(theme.Title.Width(width).Render("Number of tasks"))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered("Tasks: "+s.input.View(), width))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg), width))
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

