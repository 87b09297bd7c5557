package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Starties/calculators/internal/keypad"
)

// keyPress is a keyboard key decoded into a keypad button. Shifted presses
// use the button's secondary function regardless of the 2nd state.
type keyPress struct {
	button  keypad.Button
	shifted bool
}

// scientificKeys maps typed characters and named keys to keypad buttons.
var scientificKeys = map[string]keyPress{
	".":         {button: keypad.BtnDecimal},
	"+":         {button: keypad.BtnAdd},
	"-":         {button: keypad.BtnSubtract},
	"*":         {button: keypad.BtnMultiply},
	"x":         {button: keypad.BtnMultiply},
	"/":         {button: keypad.BtnDivide},
	"^":         {button: keypad.BtnPower},
	"(":         {button: keypad.BtnOpenParen},
	")":         {button: keypad.BtnCloseParen},
	"_":         {button: keypad.BtnNegate},
	"p":         {button: keypad.BtnPi},
	"e":         {button: keypad.BtnPi, shifted: true},
	"s":         {button: keypad.BtnSin},
	"S":         {button: keypad.BtnSin, shifted: true},
	"c":         {button: keypad.BtnCos},
	"C":         {button: keypad.BtnCos, shifted: true},
	"t":         {button: keypad.BtnTan},
	"T":         {button: keypad.BtnTan, shifted: true},
	"q":         {button: keypad.BtnSquare},
	"r":         {button: keypad.BtnSquare, shifted: true},
	"l":         {button: keypad.BtnLog},
	"L":         {button: keypad.BtnLog, shifted: true},
	"n":         {button: keypad.BtnLn},
	"N":         {button: keypad.BtnLn, shifted: true},
	"tab":       {button: keypad.BtnShift},
	"d":         {button: keypad.BtnAngleMode},
	"f":         {button: keypad.BtnFracDec},
	"=":         {button: keypad.BtnEquals},
	"enter":     {button: keypad.BtnEquals},
	"backspace": {button: keypad.BtnBackspace},
	"esc":       {button: keypad.BtnClear},
}

// programmerKeys maps named keys for the register view; digits are decoded
// with keypad.DigitButton.
var programmerKeys = map[string]keyPress{
	"~":         {button: keypad.BtnNot},
	"<":         {button: keypad.BtnShiftLeft},
	">":         {button: keypad.BtnShiftRight},
	"backspace": {button: keypad.BtnBackspace},
	"esc":       {button: keypad.BtnClear},
}

// globalKeyMap holds the bindings every calculator view shares.
type globalKeyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Copy      key.Binding
	Help      key.Binding
	NextBase  key.Binding
	PrevBase  key.Binding
	MenuOpen  key.Binding
	MenuClear key.Binding
}

var globalKeys = globalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "back to models"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "keys"),
	),
	NextBase: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next base"),
	),
	PrevBase: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous base"),
	),
	MenuOpen: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	MenuClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}

// helpLine renders bindings as "key: desc • key: desc".
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
