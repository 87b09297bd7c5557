// Package keypad defines the closed set of calculator buttons and the table
// that maps a button press, together with the shift state, to an action.
package keypad

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownButton is returned by Lookup for buttons outside the keypad.
var ErrUnknownButton = errors.New("unknown button")

// Button identifies a physical key by what it does, not where it sits.
type Button string

// Digits and hex digits
const (
	Btn0 Button = "0"
	Btn1 Button = "1"
	Btn2 Button = "2"
	Btn3 Button = "3"
	Btn4 Button = "4"
	Btn5 Button = "5"
	Btn6 Button = "6"
	Btn7 Button = "7"
	Btn8 Button = "8"
	Btn9 Button = "9"
	BtnA Button = "A"
	BtnB Button = "B"
	BtnC Button = "C"
	BtnD Button = "D"
	BtnE Button = "E"
	BtnF Button = "F"
)

// Expression keys
const (
	BtnDecimal    Button = "decimal"
	BtnNegate     Button = "negate"
	BtnAdd        Button = "add"
	BtnSubtract   Button = "subtract"
	BtnMultiply   Button = "multiply"
	BtnDivide     Button = "divide"
	BtnPower      Button = "power"
	BtnOpenParen  Button = "open-paren"
	BtnCloseParen Button = "close-paren"
	BtnPi         Button = "pi"     // shifted: e
	BtnSin        Button = "sin"    // shifted: sin⁻¹
	BtnCos        Button = "cos"    // shifted: cos⁻¹
	BtnTan        Button = "tan"    // shifted: tan⁻¹
	BtnSquare     Button = "square" // shifted: √
	BtnLog        Button = "log"    // shifted: 10^x
	BtnLn         Button = "ln"     // shifted: e^x
)

// Mode and edit keys
const (
	BtnShift      Button = "2nd"
	BtnAngleMode  Button = "drg"
	BtnClear      Button = "clear"
	BtnBackspace  Button = "backspace"
	BtnEquals     Button = "equals"
	BtnFracDec    Button = "frac-dec"
	BtnBin        Button = "BIN"
	BtnOct        Button = "OCT"
	BtnDec        Button = "DEC"
	BtnHex        Button = "HEX"
	BtnNot        Button = "NOT"
	BtnShiftLeft  Button = "LSHIFT"
	BtnShiftRight Button = "RSHIFT"
)

// Kind classifies what an action does to engine state.
type Kind int

const (
	// KindInsert appends Action.Token to the expression or register
	KindInsert Kind = iota
	// KindShift toggles the 2nd-function state
	KindShift
	// KindAngleMode toggles degrees and radians
	KindAngleMode
	// KindClear resets the engine
	KindClear
	// KindBackspace removes the last character
	KindBackspace
	// KindEvaluate evaluates the expression
	KindEvaluate
	// KindFraction toggles the result between decimal and fraction
	KindFraction
	// KindBase switches the active base to Action.Token
	KindBase
	// KindNot complements the register
	KindNot
	// KindShiftLeft shifts the register one bit left
	KindShiftLeft
	// KindShiftRight shifts the register one bit right
	KindShiftRight
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindShift:
		return "shift"
	case KindAngleMode:
		return "angle-mode"
	case KindClear:
		return "clear"
	case KindBackspace:
		return "backspace"
	case KindEvaluate:
		return "evaluate"
	case KindFraction:
		return "fraction"
	case KindBase:
		return "base"
	case KindNot:
		return "not"
	case KindShiftLeft:
		return "shift-left"
	case KindShiftRight:
		return "shift-right"
	default:
		return "unknown"
	}
}

// Scope says which engine a button belongs to.
type Scope int

const (
	// ScopeExpression buttons only act on the scientific engine
	ScopeExpression Scope = 1 << iota
	// ScopeRegister buttons only act on the base/bitwise engine
	ScopeRegister
	// ScopeBoth buttons act on either engine
	ScopeBoth = ScopeExpression | ScopeRegister
)

// Action is what a button press means in the current shift state.
type Action struct {
	Kind     Kind
	Token    string // text inserted for KindInsert, base name for KindBase
	Label    string // keycap legend
	Operator bool   // binary operator; continues from the previous result
	Scope    Scope
}

// In reports whether the action applies to an engine of the given scope.
func (a Action) In(scope Scope) bool {
	return a.Scope&scope != 0
}

type binding struct {
	button  Button
	shifted bool
}

func digit(token string) Action {
	return Action{Kind: KindInsert, Token: token, Label: token, Scope: ScopeBoth}
}

func hexDigit(token string) Action {
	return Action{Kind: KindInsert, Token: token, Label: token, Scope: ScopeRegister}
}

func insert(token, label string) Action {
	return Action{Kind: KindInsert, Token: token, Label: label, Scope: ScopeExpression}
}

func operator(token, label string) Action {
	return Action{Kind: KindInsert, Token: token, Label: label, Operator: true, Scope: ScopeExpression}
}

func control(kind Kind, label string, scope Scope) Action {
	return Action{Kind: kind, Label: label, Scope: scope}
}

func base(name string) Action {
	return Action{Kind: KindBase, Token: name, Label: name, Scope: ScopeRegister}
}

// table holds every (button, shift) pair with its own meaning. Buttons
// without a shifted entry behave the same in both states.
var table = map[binding]Action{
	{Btn0, false}: digit("0"),
	{Btn1, false}: digit("1"),
	{Btn2, false}: digit("2"),
	{Btn3, false}: digit("3"),
	{Btn4, false}: digit("4"),
	{Btn5, false}: digit("5"),
	{Btn6, false}: digit("6"),
	{Btn7, false}: digit("7"),
	{Btn8, false}: digit("8"),
	{Btn9, false}: digit("9"),
	{BtnA, false}: hexDigit("A"),
	{BtnB, false}: hexDigit("B"),
	{BtnC, false}: hexDigit("C"),
	{BtnD, false}: hexDigit("D"),
	{BtnE, false}: hexDigit("E"),
	{BtnF, false}: hexDigit("F"),

	{BtnDecimal, false}:    insert(".", "."),
	{BtnNegate, false}:     insert(NegateGlyph, "(-)"),
	{BtnAdd, false}:        operator("+", "+"),
	{BtnSubtract, false}:   operator(MinusGlyph, MinusGlyph),
	{BtnMultiply, false}:   operator(TimesGlyph, TimesGlyph),
	{BtnDivide, false}:     operator(DivideGlyph, DivideGlyph),
	{BtnPower, false}:      operator("^", "^"),
	{BtnOpenParen, false}:  insert("(", "("),
	{BtnCloseParen, false}: insert(")", ")"),

	{BtnPi, false}:     insert(PiGlyph, PiGlyph),
	{BtnPi, true}:      insert("e", "e"),
	{BtnSin, false}:    insert("sin(", "sin"),
	{BtnSin, true}:     insert("asin(", "sin⁻¹"),
	{BtnCos, false}:    insert("cos(", "cos"),
	{BtnCos, true}:     insert("acos(", "cos⁻¹"),
	{BtnTan, false}:    insert("tan(", "tan"),
	{BtnTan, true}:     insert("atan(", "tan⁻¹"),
	{BtnSquare, false}: operator("^2", "x²"),
	{BtnSquare, true}:  insert(RootGlyph+"(", RootGlyph),
	{BtnLog, false}:    insert("log(", "log"),
	{BtnLog, true}:     insert("10^(", "10ˣ"),
	{BtnLn, false}:     insert("ln(", "ln"),
	{BtnLn, true}:      insert("e^(", "eˣ"),

	{BtnShift, false}:     control(KindShift, "2nd", ScopeExpression),
	{BtnAngleMode, false}: control(KindAngleMode, "DRG", ScopeExpression),
	{BtnClear, false}:     control(KindClear, "CLR", ScopeBoth),
	{BtnBackspace, false}: control(KindBackspace, "DEL", ScopeBoth),
	{BtnEquals, false}:    control(KindEvaluate, "=", ScopeExpression),
	{BtnFracDec, false}:   control(KindFraction, "F◂▸D", ScopeExpression),

	{BtnBin, false}:        base("BIN"),
	{BtnOct, false}:        base("OCT"),
	{BtnDec, false}:        base("DEC"),
	{BtnHex, false}:        base("HEX"),
	{BtnNot, false}:        control(KindNot, "NOT", ScopeRegister),
	{BtnShiftLeft, false}:  control(KindShiftLeft, "<<", ScopeRegister),
	{BtnShiftRight, false}: control(KindShiftRight, ">>", ScopeRegister),
}

// Lookup resolves a button press. A shifted press of a button without a
// secondary function resolves to its primary action.
func Lookup(b Button, shifted bool) (Action, error) {
	if shifted {
		if a, ok := table[binding{b, true}]; ok {
			return a, nil
		}
	}
	if a, ok := table[binding{b, false}]; ok {
		return a, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownButton, string(b))
}

// HasSecondary reports whether the button has a distinct shifted action.
func HasSecondary(b Button) bool {
	_, ok := table[binding{b, true}]
	return ok
}

// Buttons returns every button on the keypad in a stable order.
func Buttons() []Button {
	seen := make(map[Button]bool, len(table))
	out := make([]Button, 0, len(table))
	for k := range table {
		if seen[k.button] {
			continue
		}
		seen[k.button] = true
		out = append(out, k.button)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DigitButton returns the button for a digit character, accepting lower-case
// hex digits.
func DigitButton(r rune) (Button, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Button(string(r)), true
	case r >= 'A' && r <= 'F':
		return Button(string(r)), true
	case r >= 'a' && r <= 'f':
		return Button(string(r - 'a' + 'A')), true
	}
	return "", false
}
