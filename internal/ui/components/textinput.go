package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Mathdrill styling.
type TextInput struct {
	Model         textinput.Model
	NumericOnly   bool
	AllowNegative bool
	submitted     bool
	valid         bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

// NewNumberInput creates a focused input that accepts a whole number,
// optionally signed.
func NewNumberInput(placeholder string, allowNegative bool) TextInput {
	t := NewTextInput(placeholder, true, 20)
	t.AllowNegative = allowNegative
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Numeric inputs drop printable keys other than
// digits and a leading minus sign.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok && !t.accepts(kmsg.String()) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) accepts(key string) bool {
	if key == "space" {
		return false
	}
	if len(key) != 1 {
		return true
	}
	c := key[0]
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' && t.AllowNegative && t.Model.Value() == ""
}

// View renders the input with a check mark or cross once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
