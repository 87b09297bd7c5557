package scientific

import (
	"strings"
	"unicode"

	"github.com/Starties/calculators/internal/keypad"
)

// typed maps ASCII spellings to display notation, longest first
var typed = strings.NewReplacer(
	"sqrt(", keypad.RootGlyph+"(",
	"**", "^",
	"pi", keypad.PiGlyph,
	"*", keypad.TimesGlyph,
	"/", keypad.DivideGlyph,
)

// Display converts typed text ("2*pi", "sqrt(2)/3", "1e21") into the
// notation the keypad produces. Whitespace is dropped and number literals
// in exponent form are spelled out as powers of ten.
func Display(text string) string {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return typed.Replace(expandExponent(text))
}

// startsWithOperator reports whether display text opens with a binary
// operator and so continues from a previous result.
func startsWithOperator(text string) bool {
	for _, op := range []string{"+", "-", keypad.MinusGlyph, keypad.TimesGlyph, keypad.DivideGlyph, "^"} {
		if strings.HasPrefix(text, op) {
			return true
		}
	}
	return false
}

// EvaluateText evaluates a typed line. A line starting with an operator
// continues from the current result; anything else is a fresh expression.
func (c *Calculator) EvaluateText(s State, text string) State {
	line := Display(text)
	if line == "" {
		return s
	}
	if s.HasResult() && startsWithOperator(line) {
		s = s.AppendToken(line, true)
	} else {
		s.Buffer = line
		s.Result = ""
		s.Error = false
	}
	return c.Evaluate(s)
}
