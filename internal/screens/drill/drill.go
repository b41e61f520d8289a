package drill

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// DrillScreen asks the tasks of one run and shows Right!/Wrong after each.
type DrillScreen struct {
	run   *drl.Run
	task  taskgen.Task[drl.Number]
	input components.TextInput

	showingFeedback    bool
	showingQuitConfirm bool
	inputErr           string
	errMsg             string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)

// New creates a DrillScreen for run.
func New(run *drl.Run) *DrillScreen {
	return &DrillScreen{run: run}
}

// FromPlan builds the generator for plan and starts a run of plan.Count tasks.
func FromPlan(plan drl.Plan) (*DrillScreen, error) {
	gen, err := plan.Generator()
	if err != nil {
		return nil, err
	}
	return New(drl.NewRun(gen, plan.Count)), nil
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(s.nextTask(), tickCmd(s.run.ID))
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) Status() string {
	return fmt.Sprintf("✓ %d   %s", s.run.Right, clock(s.run.Elapsed()))
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *DrillScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	}
	return s.renderTask(width)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.runID != s.run.ID || s.run.Done() {
			return s, nil
		}
		return s, tickCmd(s.run.ID)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DrillScreen) answering() bool {
	return s.errMsg == "" && !s.showingFeedback && !s.showingQuitConfirm
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, router.Pop()
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, router.Pop()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.advance()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	s.inputErr = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	if value == "" {
		return s, nil
	}

	answer, err := taskgen.ParseNumber[drl.Number](value)
	if err != nil {
		s.inputErr = "Please enter a whole number."
		return s, nil
	}

	correct, err := s.run.Answer(answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Submit(correct)
	s.showingFeedback = true
	return s, nil
}

// advance moves past the feedback to the next task or, after the last one,
// to the summary.
func (s *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.run.Done() {
		return s, router.Replace(summary.New(s.run.Summary(), s.again))
	}
	return s, s.nextTask()
}

// again restarts the run for another pass with the same settings.
func (s *DrillScreen) again() screen.Screen {
	s.run.Restart()
	return New(s.run)
}

func (s *DrillScreen) nextTask() tea.Cmd {
	task, err := s.run.Next()
	if err != nil {
		if !errors.Is(err, drl.ErrRunComplete) {
			s.errMsg = err.Error()
		}
		return nil
	}
	s.task = task
	s.inputErr = ""
	s.input = components.NewNumberInput("Type your answer...", true)
	return s.input.Init()
}

func tickCmd(runID string) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{runID: runID, at: t}
	})
}

// clock formats d as m:ss for the header.
func clock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
