package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drl "github.com/abhisek/mathdrill/internal/drill"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})

	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_RendersHomeFrame(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	frame := m.render()
	assert.Contains(t, frame, "Mathdrill")
	assert.Contains(t, frame, "Home")
	assert.Contains(t, frame, "New drill")
}

func TestAppModel_NavigatesToSetup(t *testing.T) {
	m := newAppModel(Options{Defaults: drl.Plan{Count: 5}})
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := update(m, keyPress('1'))
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.render(), "New Drill")
	assert.Contains(t, m.render(), "Esc")
}
