package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drl "github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// send delivers msg and feeds any pickMsg the menu produces back in, the
// way the program loop would.
func send(s screen.Screen, msg tea.Msg) (screen.Screen, tea.Cmd) {
	s, cmd := s.Update(msg)
	if cmd == nil {
		return s, nil
	}
	if pm, ok := cmd().(pickMsg); ok {
		return s.Update(pm)
	}
	return s, cmd
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

// addOperation walks add -> negative -> op -> max from the list phase.
func addOperation(t *testing.T, s screen.Screen, negative, op int, max string) screen.Screen {
	t.Helper()
	s, _ = send(s, keyPress('1'))
	require.Equal(t, phaseNegative, s.(*SetupScreen).phase)
	s, _ = send(s, keyPress(rune('1'+negative)))
	require.Equal(t, phaseOperation, s.(*SetupScreen).phase)
	s, _ = send(s, keyPress(rune('1'+op)))
	require.Equal(t, phaseMax, s.(*SetupScreen).phase)
	s = typeText(s, max)
	s, _ = send(s, specialKey(tea.KeyEnter))
	return s
}

func TestSetupScreen_StartWithoutOperations(t *testing.T) {
	var s screen.Screen = New(drl.Plan{Count: 5})

	s, cmd := send(s, keyPress('2'))
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(80, 24), "You need to select at least one type of mathematical operation.")
}

func TestSetupScreen_AddOperations(t *testing.T) {
	var s screen.Screen = New(drl.Plan{Count: 5})

	s = addOperation(t, s, 0, 0, "20")
	s = addOperation(t, s, 1, 2, "9")

	ss := s.(*SetupScreen)
	assert.Equal(t, phaseList, ss.phase)
	assert.Equal(t, []drl.OperationSpec{
		{Op: drl.OpAddition, Max: 20},
		{Op: drl.OpMultiplication, Max: 9, Negative: true},
	}, ss.Plan().Operations)
	assert.Contains(t, ss.View(80, 24), "You have selected 2 mathematical operations.")
}

func TestSetupScreen_MaxMustBePositive(t *testing.T) {
	var s screen.Screen = New(drl.Plan{})

	s = addOperation(t, s, 0, 1, "0")
	ss := s.(*SetupScreen)
	assert.Equal(t, phaseMax, ss.phase)
	assert.Contains(t, ss.View(80, 24), "Error: Must be greater than zero.")
}

func TestSetupScreen_CancelOperation(t *testing.T) {
	var s screen.Screen = New(drl.Plan{})

	s, _ = send(s, keyPress('1'))
	s, _ = send(s, keyPress('1'))
	s, _ = send(s, keyPress('4'))

	ss := s.(*SetupScreen)
	assert.Equal(t, phaseList, ss.phase)
	assert.Empty(t, ss.Plan().Operations)
}

func TestSetupScreen_EscGoesBack(t *testing.T) {
	var s screen.Screen = New(drl.Plan{})

	s, _ = send(s, keyPress('1'))
	s, _ = send(s, specialKey(tea.KeyEscape))
	assert.Equal(t, phaseList, s.(*SetupScreen).phase)

	_, cmd := send(s, specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSetupScreen_StartDrill(t *testing.T) {
	var s screen.Screen = New(drl.Plan{Count: 4, Seed: 9})

	s = addOperation(t, s, 0, 0, "10")
	s, _ = send(s, keyPress('2'))
	require.Equal(t, phaseCount, s.(*SetupScreen).phase)

	// Empty count keeps the default.
	s, cmd := send(s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Drill", msg.Screen.Title())
	assert.Equal(t, 4, s.(*SetupScreen).Plan().Count)
}

func TestSetupScreen_CustomCount(t *testing.T) {
	var s screen.Screen = New(drl.Plan{})

	s = addOperation(t, s, 0, 0, "10")
	s, _ = send(s, keyPress('2'))
	s = typeText(s, "12")
	s, cmd := send(s, specialKey(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.Equal(t, 12, s.(*SetupScreen).Plan().Count)
}

func TestSetupScreen_KeyHints(t *testing.T) {
	s := New(drl.Plan{})
	assert.NotEmpty(t, s.KeyHints())
}
