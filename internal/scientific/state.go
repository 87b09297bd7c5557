// Package scientific implements the expression engine of the scientific
// calculator: buffer assembly, normalization into evaluator syntax,
// evaluation, result formatting and the fraction/decimal toggle.
//
// State is a plain value. Every operation returns a new State and never
// fails; evaluation errors become the syntax-error result.
package scientific

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Starties/calculators/internal/consts"
	"github.com/Starties/calculators/internal/keypad"
)

// AngleMode selects how trigonometric arguments are interpreted.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

// String returns the display name of the mode
func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// ParseAngleMode accepts "deg"/"degrees" and "rad"/"radians" in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle mode %q", s)
}

// State is the expression engine's state between key presses.
type State struct {
	Buffer string    // expression being typed, in display glyphs
	Result string    // formatted result of the last evaluation, "" when none
	Error  bool      // Result holds the syntax-error sentinel
	Shift  bool      // next key uses its secondary function
	Angle  AngleMode // DEG or RAD, independent of Shift
}

// NewState returns an empty state in the given angle mode
func NewState(angle AngleMode) State {
	return State{Angle: angle}
}

// HasResult reports whether a usable result is present. The syntax-error
// sentinel is not one: it cannot be continued from or converted.
func (s State) HasResult() bool {
	return s.Result != "" && !s.Error
}

// AppendToken applies the continuation rule and appends token. After a
// result, an operator continues from it and anything else starts a fresh
// expression. After a syntax error the buffer is kept so it can be fixed.
func (s State) AppendToken(token string, isOperator bool) State {
	switch {
	case s.Error:
		s.Buffer += token
	case s.HasResult() && isOperator:
		s.Buffer = continuation(s.Result) + token
	case s.HasResult():
		s.Buffer = token
	default:
		s.Buffer += token
	}
	s.Result = ""
	s.Error = false
	return s
}

// continuation returns the text a new expression starts with when it
// continues from result. Exponent forms are spelled out as powers of ten
// so "e" in the buffer only ever means the constant. Negative, fractional
// and exponent results are grouped so the next operator applies to the
// whole value.
func continuation(result string) string {
	if strings.HasPrefix(result, "-") || strings.Contains(result, "/") {
		return "(" + expandExponent(result) + ")"
	}
	return expandExponent(result)
}

var exponentLiteral = regexp.MustCompile(`(\d+(?:\.\d+)?)e([+-]?)(\d+)`)

// expandExponent rewrites number literals in exponent form ("1.5e+21",
// "2e-7", "1e21") into display notation ("(1.5×10^(21))").
func expandExponent(s string) string {
	return exponentLiteral.ReplaceAllStringFunc(s, func(m string) string {
		parts := exponentLiteral.FindStringSubmatch(m)
		exp := parts[3]
		if parts[2] == "-" {
			exp = "-" + exp
		}
		return "(" + parts[1] + keypad.TimesGlyph + "10^(" + exp + "))"
	})
}

// Backspace removes the last character (not byte) of the buffer. The
// displayed result no longer matches the buffer, so it is dropped.
func (s State) Backspace() State {
	r := []rune(s.Buffer)
	if len(r) > 0 {
		s.Buffer = string(r[:len(r)-1])
	}
	s.Result = ""
	s.Error = false
	return s
}

// Clear resets buffer, result and shift. The angle mode is kept.
func (s State) Clear() State {
	return State{Angle: s.Angle}
}

// ToggleShift flips between primary and secondary key functions
func (s State) ToggleShift() State {
	s.Shift = !s.Shift
	return s
}

// ToggleAngle flips between degrees and radians
func (s State) ToggleAngle() State {
	if s.Angle == Degrees {
		s.Angle = Radians
	} else {
		s.Angle = Degrees
	}
	return s
}

// InputLine is the upper display line: the buffer, or "0" when empty.
func (s State) InputLine() string {
	if s.Buffer == "" {
		return "0"
	}
	return s.Buffer
}

// ResultLine is the lower display line: the result, "..." while an
// expression is pending, otherwise "0".
func (s State) ResultLine() string {
	switch {
	case s.Result != "":
		return s.Result
	case s.Buffer != "":
		return "..."
	default:
		return "0"
	}
}

func (s State) withError() State {
	s.Result = consts.SyntaxErrorText
	s.Error = true
	return s
}
