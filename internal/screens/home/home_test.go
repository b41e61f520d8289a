package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(drl.Plan{})

	view := h.View(80, 24)
	assert.Contains(t, view, "Hello and Welcome!")
	assert.Contains(t, view, "New drill")
	assert.Contains(t, view, "Quit")
	assert.NotContains(t, view, "Start preset drill")
}

func TestHomeScreen_NewDrill(t *testing.T) {
	h := New(drl.Plan{})

	_, cmd := h.Update(keyPress('1'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "New Drill", msg.Screen.Title())
}

func TestHomeScreen_PresetDrill(t *testing.T) {
	h := New(drl.Plan{
		Operations: []drl.OperationSpec{{Op: drl.OpSubtraction, Max: 10}},
		Count:      5,
	})
	assert.Contains(t, h.View(80, 24), "Start preset drill")

	_, cmd := h.Update(keyPress('1'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Drill", msg.Screen.Title())
}

func TestHomeScreen_PresetError(t *testing.T) {
	h := New(drl.Plan{Operations: []drl.OperationSpec{{Op: drl.OpAddition, Max: 10}}})

	_, cmd := h.Update(keyPress('1'))
	assert.Nil(t, cmd)
	assert.Contains(t, h.View(80, 24), drl.ErrInvalidCount.Error())
}

func TestHomeScreen_Quit(t *testing.T) {
	h := New(drl.Plan{})

	_, cmd := h.Update(keyPress('2'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
