package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starties/calculators/internal/config"
	"github.com/Starties/calculators/internal/programmer"
	"github.com/Starties/calculators/internal/scientific"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends each character as its own key press
func typeKeys(app *App, s string) {
	for _, r := range s {
		app.Update(runes(string(r)))
	}
}

// exec runs cmd and feeds its message back into the app
func exec(t *testing.T, app *App, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	app.Update(msg)
	return msg
}

func TestAppStartsInCatalog(t *testing.T) {
	app := NewApp(nil, ViewCatalog)
	assert.Equal(t, ViewCatalog, app.Current())
	assert.Len(t, app.Menu().Visible(), 4)
	assert.Contains(t, app.View(), "SC-30XII Standard")
	assert.Contains(t, app.View(), "coming soon")
}

func TestCatalogOpensActiveModel(t *testing.T) {
	app := NewApp(nil, ViewCatalog)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := exec(t, app, cmd)
	selected, ok := msg.(ModelSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "scientific", selected.Model.ID)
	assert.Equal(t, ViewScientific, app.Current())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, ViewCatalog, app.Current())
}

func TestCatalogInactiveModel(t *testing.T) {
	app := NewApp(nil, ViewCatalog)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, ViewCatalog, app.Current())
	assert.Contains(t, app.View(), "Quantum Plotter 84 is coming soon")
}

func TestCatalogSearch(t *testing.T) {
	app := NewApp(nil, ViewCatalog)

	typeKeys(app, "hex")
	assert.Equal(t, "hex", app.Menu().Query())
	visible := app.Menu().Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "programmer", visible[0].ID)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	exec(t, app, cmd)
	assert.Equal(t, ViewProgrammer, app.Current())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, app.Menu().Query())
	assert.Len(t, app.Menu().Visible(), 4)

	typeKeys(app, "zzzz")
	assert.Empty(t, app.Menu().Visible())
	assert.Contains(t, app.View(), "No models match")
}

func TestQuit(t *testing.T) {
	app := NewApp(nil, ViewScientific)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestScientificKeys(t *testing.T) {
	app := NewApp(nil, ViewScientific)

	typeKeys(app, "2+2")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := app.Scientific().State()
	assert.Equal(t, "4", s.Result)
	assert.Contains(t, app.View(), "4")

	typeKeys(app, "*3=")
	assert.Equal(t, "12", app.Scientific().State().Result)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", app.Scientific().State().Buffer)

	typeKeys(app, "s90)=")
	assert.Equal(t, "1", app.Scientific().State().Result)

	typeKeys(app, "d")
	assert.Equal(t, scientific.Radians, app.Scientific().State().Angle)
	assert.Contains(t, app.View(), "RAD")
}

func TestScientificShiftedShortcut(t *testing.T) {
	app := NewApp(nil, ViewScientific)

	typeKeys(app, "e")
	s := app.Scientific().State()
	assert.Equal(t, "e", s.Buffer)
	assert.False(t, s.Shift)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, app.Scientific().State().Shift)
	assert.Contains(t, app.View(), "sin⁻¹")
}

func TestScientificSyntaxError(t *testing.T) {
	app := NewApp(nil, ViewScientific)
	typeKeys(app, "5/0=")
	s := app.Scientific().State()
	assert.True(t, s.Error)
	assert.Equal(t, "5÷0", s.Buffer)

	app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "5÷", app.Scientific().State().Buffer)
}

func TestScientificCopy(t *testing.T) {
	var copied string
	prev := clipboardWriter
	clipboardWriter = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWriter = prev }()

	app := NewApp(nil, ViewScientific)

	_, cmd := app.Update(runes("y"))
	assert.Nil(t, cmd)
	assert.Contains(t, app.View(), "Nothing to copy")

	typeKeys(app, "6*7=")
	_, cmd = app.Update(runes("y"))
	exec(t, app, cmd)
	assert.Equal(t, "42", copied)
	assert.Contains(t, app.View(), "Copied 42")
}

func TestCopyFailure(t *testing.T) {
	prev := clipboardWriter
	clipboardWriter = func(string) error { return errors.New("no display") }
	defer func() { clipboardWriter = prev }()

	app := NewApp(nil, ViewProgrammer)
	_, cmd := app.Update(runes("y"))
	msg := exec(t, app, cmd)
	assert.False(t, msg.(ClipboardCopyMsg).Success)
	assert.Contains(t, app.View(), "no display")
}

func TestProgrammerKeys(t *testing.T) {
	app := NewApp(nil, ViewProgrammer)
	assert.Equal(t, programmer.Dec, app.Programmer().Register().Base)

	typeKeys(app, "255")
	assert.Equal(t, int64(255), app.Programmer().Register().Value)
	view := app.View()
	assert.Contains(t, view, "FF")
	assert.Contains(t, view, "377")
	assert.Contains(t, view, "11111111")

	// DEC -> OCT -> BIN
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, programmer.Bin, app.Programmer().Register().Base)

	typeKeys(app, "2")
	assert.Equal(t, int64(255), app.Programmer().Register().Value)
	assert.Contains(t, app.View(), "invalid digit")

	typeKeys(app, "~")
	assert.Equal(t, int64(-256), app.Programmer().Register().Value)
	typeKeys(app, "~<")
	assert.Equal(t, int64(510), app.Programmer().Register().Value)
	typeKeys(app, ">")
	assert.Equal(t, int64(255), app.Programmer().Register().Value)

	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, programmer.Oct, app.Programmer().Register().Base)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, programmer.Hex, app.Programmer().Register().Base)
	typeKeys(app, "a")
	assert.Equal(t, "FFA", app.Programmer().Register().Text())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Zero(t, app.Programmer().Register().Value)
}

func TestProgrammerBitmap(t *testing.T) {
	m := NewProgrammerModel(programmer.Dec)
	m.Press("5")
	view := m.View()
	assert.Contains(t, view, "31..24")
	assert.Contains(t, view, "7..0")
}

func TestHelpToggle(t *testing.T) {
	app := NewApp(nil, ViewScientific)
	app.Update(runes("?"))
	assert.Contains(t, app.View(), "Keyboard reference")

	// keys do not reach the calculator while help is open
	typeKeys(app, "1")
	assert.Empty(t, app.Scientific().State().Buffer)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, app.View(), "Keyboard reference")
}

func TestKeyReference(t *testing.T) {
	ref := KeyReference()
	assert.True(t, strings.HasPrefix(ref, "# Keyboard reference"))
	assert.Contains(t, ref, "## Scientific")
	assert.Contains(t, ref, "## Programmer")
	assert.Contains(t, ref, "| `S` | sin⁻¹ | insert |")
	assert.Contains(t, ref, "| `~` | NOT | not |")
}

func TestConfigChanged(t *testing.T) {
	app := NewApp(nil, ViewScientific)

	cfg := config.DefaultConfig()
	cfg.Precision = 3
	app.Update(ConfigChangedMsg{Config: cfg})

	typeKeys(app, "1/3=")
	assert.Equal(t, "0.333", app.Scientific().State().Result)
}

func TestViewFor(t *testing.T) {
	v, ok := ViewFor("programmer")
	assert.True(t, ok)
	assert.Equal(t, ViewProgrammer, v)

	_, ok = ViewFor("finance")
	assert.False(t, ok)
}
