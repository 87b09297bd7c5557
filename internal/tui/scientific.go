package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Starties/calculators/internal/keypad"
	"github.com/Starties/calculators/internal/logger"
	"github.com/Starties/calculators/internal/scientific"
)

// scientificLayout is the on-screen keypad, row by row
var scientificLayout = [][]keypad.Button{
	{keypad.BtnShift, keypad.BtnAngleMode, keypad.BtnFracDec, keypad.BtnClear, keypad.BtnBackspace},
	{keypad.BtnSin, keypad.BtnCos, keypad.BtnTan, keypad.BtnPi, keypad.BtnDivide},
	{keypad.BtnSquare, keypad.BtnLog, keypad.BtnLn, keypad.BtnPower, keypad.BtnMultiply},
	{keypad.Btn7, keypad.Btn8, keypad.Btn9, keypad.BtnOpenParen, keypad.BtnSubtract},
	{keypad.Btn4, keypad.Btn5, keypad.Btn6, keypad.BtnCloseParen, keypad.BtnAdd},
	{keypad.Btn1, keypad.Btn2, keypad.Btn3, keypad.BtnNegate, keypad.BtnEquals},
	{keypad.Btn0, keypad.BtnDecimal},
}

// ScientificModel is the scientific calculator view
type ScientificModel struct {
	calc      *scientific.Calculator
	state     scientific.State
	width     int
	showHelp  bool
	help      string
	status    string
	statusErr bool
	log       *logger.Logger
}

// NewScientificModel creates the view around a calculator
func NewScientificModel(calc *scientific.Calculator, angle scientific.AngleMode) *ScientificModel {
	return &ScientificModel{
		calc:  calc,
		state: scientific.NewState(angle),
		width: 80,
		log:   logger.Global().WithPrefix("tui:scientific"),
	}
}

// State returns the engine state
func (m *ScientificModel) State() scientific.State {
	return m.state
}

// SetCalculator swaps the calculator, used after a config reload
func (m *ScientificModel) SetCalculator(calc *scientific.Calculator) {
	m.calc = calc
}

// Press applies a keypad button
func (m *ScientificModel) Press(b keypad.Button) {
	m.state = m.calc.Press(m.state, b)
}

// pressShifted applies a button's secondary function without leaving the
// 2nd state changed.
func (m *ScientificModel) pressShifted(b keypad.Button) {
	if m.state.Shift {
		m.Press(b)
		return
	}
	m.state.Shift = true
	m.Press(b)
	m.state.Shift = false
}

// Update handles key presses and clipboard results
func (m *ScientificModel) Update(msg tea.Msg) (*ScientificModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help = ""

	case ClipboardCopyMsg:
		m.status, m.statusErr = statusFor(msg)

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, globalKeys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, globalKeys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, globalKeys.Copy):
			if !m.state.HasResult() {
				m.status, m.statusErr = "Nothing to copy", true
				return m, nil
			}
			return m, copyToClipboard(m.state.Result)
		}

		m.status = ""
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
			b, _ := keypad.DigitButton(msg.Runes[0])
			m.Press(b)
			return m, nil
		}
		kp, ok := scientificKeys[msg.String()]
		if !ok {
			return m, nil
		}
		if kp.shifted {
			m.pressShifted(kp.button)
		} else {
			m.Press(kp.button)
		}
		if m.state.Error {
			m.log.Debug("syntax error for %q", m.state.Buffer)
		}
	}
	return m, nil
}

// View renders the display, the keypad and the help line
func (m *ScientificModel) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SC-30XII Standard"))
	b.WriteString("\n")
	b.WriteString(m.renderDisplay())
	b.WriteString("\n")
	b.WriteString(m.renderKeypad())
	b.WriteString("\n")
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine(globalKeys.Copy, globalKeys.Help, globalKeys.Back, globalKeys.Quit)))
	return b.String()
}

func (m *ScientificModel) renderDisplay() string {
	shift := dimIndicatorStyle.Render("2ND")
	if m.state.Shift {
		shift = indicatorStyle.Render("2ND")
	}
	indicators := shift + "  " + indicatorStyle.Render(m.state.Angle.String())

	result := resultLineStyle.Render(m.state.ResultLine())
	if m.state.Error {
		result = errorLineStyle.Render(m.state.ResultLine())
	}

	width := 40
	lines := lipgloss.JoinVertical(lipgloss.Right,
		lipgloss.PlaceHorizontal(width, lipgloss.Left, indicators),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, inputLineStyle.Render(m.state.InputLine())),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, result),
	)
	return lcdStyle.Render(lines)
}

func (m *ScientificModel) renderKeypad() string {
	rows := make([]string, 0, len(scientificLayout))
	for _, row := range scientificLayout {
		cells := make([]string, 0, len(row))
		for _, btn := range row {
			a, err := keypad.Lookup(btn, m.state.Shift)
			if err != nil {
				continue
			}
			style := keyStyle
			if m.state.Shift && keypad.HasSecondary(btn) {
				style = shiftedKeyStyle
			}
			cells = append(cells, style.Render(a.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *ScientificModel) renderHelp() string {
	if m.help == "" {
		rendered, err := RenderKeyReference(m.width)
		if err != nil {
			m.log.Warn("render key reference: %v", err)
			rendered = KeyReference()
		}
		m.help = rendered
	}
	return m.help + "\n" + helpStyle.Render("?/esc: close")
}
