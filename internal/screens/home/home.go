package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	drillscreen "github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/setup"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	defaults drl.Plan
	menu     components.Menu
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. A defaults plan that already names operations,
// such as one loaded from a preset, gets its own menu entry.
func New(defaults drl.Plan) *HomeScreen {
	h := &HomeScreen{defaults: defaults}

	var items []components.MenuItem
	if len(defaults.Operations) > 0 {
		items = append(items, components.MenuItem{Label: "Start preset drill", Action: h.startPreset})
	}
	items = append(items,
		components.MenuItem{Label: "New drill", Action: func() tea.Cmd {
			return router.Push(setup.New(defaults))
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startPreset() tea.Cmd {
	ds, err := drillscreen.FromPlan(h.defaults)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	return router.Push(ds)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		h.errMsg = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 16

	var sections []string
	sections = append(sections, renderBanner(width, compact))
	sections = append(sections, theme.Title.Width(width).Render("Hello and Welcome!"))

	if len(h.defaults.Operations) > 0 {
		var ops []string
		for _, spec := range h.defaults.Operations {
			ops = append(ops, spec.String())
		}
		sections = append(sections, theme.Subtitle.Width(width).Render(strings.Join(ops, "\n")))
	}

	sections = append(sections, layout.Centered(h.menu.View(), width))

	if h.errMsg != "" {
		sections = append(sections, layout.Centered(
			lipgloss.NewStyle().Foreground(theme.Error).Render(h.errMsg), width))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
