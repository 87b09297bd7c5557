package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Starties/calculators/internal/consts"
	"github.com/Starties/calculators/internal/keypad"
	"github.com/Starties/calculators/internal/logger"
	"github.com/Starties/calculators/internal/programmer"
)

var programmerLayout = [][]keypad.Button{
	{keypad.BtnD, keypad.BtnE, keypad.BtnF, keypad.BtnNot, keypad.BtnClear},
	{keypad.BtnA, keypad.BtnB, keypad.BtnC, keypad.BtnShiftLeft, keypad.BtnBackspace},
	{keypad.Btn7, keypad.Btn8, keypad.Btn9, keypad.BtnShiftRight},
	{keypad.Btn4, keypad.Btn5, keypad.Btn6},
	{keypad.Btn1, keypad.Btn2, keypad.Btn3},
	{keypad.Btn0},
}

// ProgrammerModel is the base converter and bitwise view
type ProgrammerModel struct {
	reg       programmer.Register
	width     int
	showHelp  bool
	help      string
	status    string
	statusErr bool
	log       *logger.Logger
}

// NewProgrammerModel creates the view with an empty register
func NewProgrammerModel(base programmer.Base) *ProgrammerModel {
	return &ProgrammerModel{
		reg:   programmer.NewRegister(base),
		width: 80,
		log:   logger.Global().WithPrefix("tui:programmer"),
	}
}

// Register returns the engine state
func (m *ProgrammerModel) Register() programmer.Register {
	return m.reg
}

// Press applies a keypad button
func (m *ProgrammerModel) Press(b keypad.Button) {
	m.reg = m.reg.Press(b)
}

func (m *ProgrammerModel) cycleBase(forward bool) {
	next := m.reg.Base.Next()
	if !forward {
		// three steps forward is one back
		next = next.Next().Next()
	}
	m.reg = m.reg.SetBase(next)
}

// Update handles key presses and clipboard results
func (m *ProgrammerModel) Update(msg tea.Msg) (*ProgrammerModel, tea.Cmd) {
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
			return m, copyToClipboard(m.reg.Text())
		case key.Matches(msg, globalKeys.NextBase):
			m.cycleBase(true)
			return m, nil
		case key.Matches(msg, globalKeys.PrevBase):
			m.cycleBase(false)
			return m, nil
		}

		m.status = ""
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if b, ok := keypad.DigitButton(msg.Runes[0]); ok {
				if err := m.reg.CheckDigit(msg.Runes[0]); err != nil {
					m.status, m.statusErr = err.Error(), true
					m.log.Debug("%v", err)
					return m, nil
				}
				m.Press(b)
				return m, nil
			}
		}
		if kp, ok := programmerKeys[msg.String()]; ok {
			m.Press(kp.button)
		}
	}
	return m, nil
}

// View renders the base rows, the bitmap and the keypad
func (m *ProgrammerModel) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Bitwise Commander"))
	b.WriteString("\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderBitmap())
	b.WriteString("\n\n")
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
	b.WriteString(helpStyle.Render(helpLine(globalKeys.NextBase, globalKeys.Copy, globalKeys.Help, globalKeys.Back, globalKeys.Quit)))
	return b.String()
}

func (m *ProgrammerModel) renderRows() string {
	lines := make([]string, 0, 4)
	for _, row := range m.reg.Rows() {
		label := dimIndicatorStyle.Render(row.Base.String())
		text := inputLineStyle.Render(row.Text)
		if row.Base == m.reg.Base {
			label = indicatorStyle.Render(row.Base.String())
			text = resultLineStyle.Render(row.Text)
		}
		lines = append(lines, label+"  "+lipgloss.PlaceHorizontal(36, lipgloss.Right, text))
	}
	return lcdStyle.Render(strings.Join(lines, "\n"))
}

// renderBitmap shows the low 32 bits, one byte per group, bit 31 first.
func (m *ProgrammerModel) renderBitmap() string {
	const groupBits = 8
	var header, cells []string
	for hi := consts.BitmapWidth - 1; hi >= 0; hi -= groupBits {
		lo := hi - groupBits + 1
		header = append(header, bitIndexStyle.Render(fmt.Sprintf("%-*s", groupBits, fmt.Sprintf("%d..%d", hi, lo))))

		var group strings.Builder
		for i := hi; i >= lo; i-- {
			if m.reg.Bit(i) {
				group.WriteString(bitOnStyle.Render("1"))
			} else {
				group.WriteString(bitOffStyle.Render("0"))
			}
		}
		cells = append(cells, group.String())
	}
	return strings.Join(header, " ") + "\n" + strings.Join(cells, " ")
}

func (m *ProgrammerModel) renderKeypad() string {
	rows := make([]string, 0, len(programmerLayout))
	for _, row := range programmerLayout {
		cells := make([]string, 0, len(row))
		for _, btn := range row {
			a, err := keypad.Lookup(btn, false)
			if err != nil {
				continue
			}
			style := keyStyle
			if !m.reg.Enabled(btn) {
				style = disabledKeyStyle
			}
			cells = append(cells, style.Render(a.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *ProgrammerModel) renderHelp() string {
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
