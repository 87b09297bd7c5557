package scientific

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starties/calculators/internal/consts"
	"github.com/Starties/calculators/internal/keypad"
)

func press(c *Calculator, s State, buttons ...keypad.Button) State {
	for _, b := range buttons {
		s = c.Press(s, b)
	}
	return s
}

func TestEvaluateBasics(t *testing.T) {
	c := New(nil, DefaultFormatOptions())

	tests := []struct {
		name    string
		buttons []keypad.Button
		want    string
	}{
		{"addition", []keypad.Button{keypad.Btn2, keypad.BtnAdd, keypad.Btn2, keypad.BtnEquals}, "4"},
		{"float noise", []keypad.Button{keypad.Btn0, keypad.BtnDecimal, keypad.Btn1, keypad.BtnAdd, keypad.Btn0, keypad.BtnDecimal, keypad.Btn2, keypad.BtnEquals}, "0.3"},
		{"precedence", []keypad.Button{keypad.Btn2, keypad.BtnAdd, keypad.Btn3, keypad.BtnMultiply, keypad.Btn4, keypad.BtnEquals}, "14"},
		{"power", []keypad.Button{keypad.Btn2, keypad.BtnPower, keypad.Btn1, keypad.Btn0, keypad.BtnEquals}, "1024"},
		{"square", []keypad.Button{keypad.Btn7, keypad.BtnSquare, keypad.BtnEquals}, "49"},
		{"negate", []keypad.Button{keypad.BtnNegate, keypad.Btn3, keypad.BtnSubtract, keypad.Btn2, keypad.BtnEquals}, "-5"},
		{"division", []keypad.Button{keypad.Btn1, keypad.BtnDivide, keypad.Btn3, keypad.BtnEquals}, "0.33333333333333"},
		{"log10", []keypad.Button{keypad.BtnLog, keypad.Btn1, keypad.Btn0, keypad.Btn0, keypad.Btn0, keypad.BtnCloseParen, keypad.BtnEquals}, "3"},
		{"implicit multiplication", []keypad.Button{keypad.Btn2, keypad.BtnOpenParen, keypad.Btn3, keypad.BtnCloseParen, keypad.BtnEquals}, "6"},
		{"negated square", []keypad.Button{keypad.BtnNegate, keypad.Btn2, keypad.BtnSquare, keypad.BtnEquals}, "-4"},
		{"power chain", []keypad.Button{keypad.Btn2, keypad.BtnPower, keypad.Btn3, keypad.BtnPower, keypad.Btn2, keypad.BtnEquals}, "512"},
		{"negative exponent", []keypad.Button{keypad.Btn2, keypad.BtnPower, keypad.BtnNegate, keypad.Btn1, keypad.BtnEquals}, "0.5"},
		{"e times number", []keypad.Button{keypad.Btn2, keypad.BtnShift, keypad.BtnPi, keypad.BtnEquals}, "5.4365636569181"},
		{"e is the constant", []keypad.Button{keypad.Btn2, keypad.BtnShift, keypad.BtnPi, keypad.BtnAdd, keypad.Btn3, keypad.BtnEquals}, "8.4365636569181"},
		{"pi times e", []keypad.Button{keypad.BtnPi, keypad.BtnShift, keypad.BtnPi, keypad.BtnEquals}, "8.5397342226736"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := press(c, NewState(Degrees), tt.buttons...)
			assert.False(t, s.Error)
			assert.Equal(t, tt.want, s.Result)
		})
	}
}

func TestEvaluateErrorKeepsBuffer(t *testing.T) {
	c := New(nil, DefaultFormatOptions())

	s := press(c, NewState(Degrees), keypad.Btn5, keypad.BtnDivide, keypad.Btn0, keypad.BtnEquals)
	assert.True(t, s.Error)
	assert.Equal(t, consts.SyntaxErrorText, s.Result)
	assert.Equal(t, "5"+keypad.DivideGlyph+"0", s.Buffer)
	assert.False(t, s.HasResult())

	// the buffer can be fixed in place
	s = press(c, s, keypad.BtnBackspace, keypad.Btn2, keypad.BtnEquals)
	assert.False(t, s.Error)
	assert.Equal(t, "2.5", s.Result)
}

func TestEvaluateEmptyBuffer(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := c.Evaluate(NewState(Degrees))
	assert.Equal(t, NewState(Degrees), s)
}

func TestAngleModes(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	sin90 := []keypad.Button{keypad.BtnSin, keypad.Btn9, keypad.Btn0, keypad.BtnCloseParen, keypad.BtnEquals}

	s := press(c, NewState(Degrees), sin90...)
	assert.Equal(t, "1", s.Result)

	s = press(c, NewState(Radians), sin90...)
	assert.Equal(t, "0.89399666360056", s.Result)

	s = press(c, NewState(Degrees), keypad.BtnCos, keypad.Btn9, keypad.Btn0, keypad.BtnCloseParen, keypad.BtnEquals)
	assert.Equal(t, "0", s.Result)

	s = press(c, NewState(Degrees), keypad.BtnSin, keypad.Btn1, keypad.Btn8, keypad.Btn0, keypad.BtnCloseParen, keypad.BtnEquals)
	assert.Equal(t, "0", s.Result)

	s = press(c, NewState(Degrees), keypad.BtnAngleMode)
	assert.Equal(t, Radians, s.Angle)
	s = press(c, s, keypad.BtnClear)
	assert.Equal(t, Radians, s.Angle, "clear keeps the angle mode")
}

func TestNestedTrigArgument(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := NewState(Degrees)
	s.Buffer = "sin((45+45))"
	assert.Equal(t, "1", c.Evaluate(s).Result)

	s.Buffer = "2sin(30)"
	assert.Equal(t, "1", c.Evaluate(s).Result)
}

func TestShiftedKeys(t *testing.T) {
	c := New(nil, DefaultFormatOptions())

	s := press(c, NewState(Degrees), keypad.BtnShift, keypad.BtnSin)
	assert.Equal(t, "asin(", s.Buffer)
	assert.True(t, s.Shift)

	s = press(c, s, keypad.Btn1, keypad.BtnCloseParen, keypad.BtnEquals)
	assert.Equal(t, "90", s.Result)
	assert.False(t, s.Shift, "shift is released after a successful evaluation")

	s = press(c, NewState(Degrees), keypad.BtnShift, keypad.BtnSquare, keypad.Btn9, keypad.BtnCloseParen, keypad.BtnEquals)
	assert.Equal(t, "3", s.Result)

	s = press(c, NewState(Degrees), keypad.BtnShift, keypad.BtnLn, keypad.Btn1, keypad.BtnCloseParen, keypad.BtnShift, keypad.BtnEquals)
	assert.Equal(t, "2.718281828459", s.Result)
}

func TestShiftSurvivesFailedEvaluation(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := press(c, NewState(Degrees), keypad.BtnShift, keypad.BtnSquare, keypad.BtnEquals)
	assert.True(t, s.Error)
	assert.True(t, s.Shift)
}

func TestContinuation(t *testing.T) {
	c := New(nil, DefaultFormatOptions())

	s := press(c, NewState(Degrees), keypad.Btn2, keypad.BtnAdd, keypad.Btn3, keypad.BtnEquals)
	require.Equal(t, "5", s.Result)

	cont := press(c, s, keypad.BtnMultiply)
	assert.Equal(t, "5"+keypad.TimesGlyph, cont.Buffer)
	assert.Empty(t, cont.Result)
	cont = press(c, cont, keypad.Btn2, keypad.BtnEquals)
	assert.Equal(t, "10", cont.Result)

	fresh := press(c, s, keypad.Btn7)
	assert.Equal(t, "7", fresh.Buffer)
	assert.Empty(t, fresh.Result)

	neg := press(c, NewState(Degrees), keypad.Btn2, keypad.BtnSubtract, keypad.Btn5, keypad.BtnEquals)
	require.Equal(t, "-3", neg.Result)
	neg = press(c, neg, keypad.BtnPower)
	assert.Equal(t, "(-3)^", neg.Buffer)
	neg = press(c, neg, keypad.Btn2, keypad.BtnEquals)
	assert.Equal(t, "9", neg.Result)
}

func TestContinuationFromFraction(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := press(c, NewState(Degrees), keypad.Btn1, keypad.BtnDivide, keypad.Btn4, keypad.BtnEquals, keypad.BtnFracDec)
	require.Equal(t, "1/4", s.Result)

	s = press(c, s, keypad.BtnSquare, keypad.BtnEquals)
	assert.Equal(t, "0.0625", s.Result)
}

func TestContinuationFromExponentResult(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := NewState(Degrees)
	s.Buffer = "10^21"
	s = c.Evaluate(s)
	require.Equal(t, "1e+21", s.Result)

	s = press(c, s, keypad.BtnMultiply, keypad.Btn2, keypad.BtnEquals)
	assert.Equal(t, "(1×10^(21))×2", s.Buffer)
	assert.Equal(t, "2e+21", s.Result)

	s.Buffer = "1÷10^8"
	s = c.Evaluate(s)
	require.Equal(t, "1e-8", s.Result)
	s = press(c, s, keypad.BtnAdd, keypad.Btn1, keypad.BtnEquals)
	assert.Equal(t, "(1×10^(-8))+1", s.Buffer)
	assert.Equal(t, "1.00000001", s.Result)
}

func TestFractionToggle(t *testing.T) {
	c := New(nil, DefaultFormatOptions())

	s := press(c, NewState(Degrees), keypad.Btn2, keypad.BtnDecimal, keypad.Btn5, keypad.BtnEquals)
	require.Equal(t, "2.5", s.Result)

	s = press(c, s, keypad.BtnFracDec)
	assert.Equal(t, "5/2", s.Result)
	s = press(c, s, keypad.BtnFracDec)
	assert.Equal(t, "2.5", s.Result)

	third := press(c, NewState(Degrees), keypad.BtnNegate, keypad.Btn1, keypad.BtnDivide, keypad.Btn3, keypad.BtnEquals, keypad.BtnFracDec)
	assert.Equal(t, "-1/3", third.Result)

	whole := press(c, NewState(Degrees), keypad.Btn4, keypad.BtnEquals, keypad.BtnFracDec)
	assert.Equal(t, "4", whole.Result)

	none := press(c, NewState(Degrees), keypad.Btn4, keypad.BtnFracDec)
	assert.Empty(t, none.Result)
	assert.Equal(t, "4", none.Buffer)

	bad := press(c, NewState(Degrees), keypad.Btn1, keypad.BtnDivide, keypad.Btn0, keypad.BtnEquals, keypad.BtnFracDec)
	assert.Equal(t, consts.SyntaxErrorText, bad.Result)
}

func TestRegisterButtonsIgnored(t *testing.T) {
	c := New(nil, DefaultFormatOptions())
	s := press(c, NewState(Degrees), keypad.Btn1, keypad.BtnA, keypad.BtnHex, keypad.BtnNot, keypad.Button("nope"))
	assert.Equal(t, "1", s.Buffer)
}

func TestDisplayLines(t *testing.T) {
	s := NewState(Degrees)
	assert.Equal(t, "0", s.InputLine())
	assert.Equal(t, "0", s.ResultLine())

	s = s.AppendToken("1", false)
	assert.Equal(t, "1", s.InputLine())
	assert.Equal(t, "...", s.ResultLine())

	s.Result = "1"
	assert.Equal(t, "1", s.ResultLine())
}

func TestBackspace(t *testing.T) {
	s := NewState(Degrees).AppendToken("2", false).AppendToken(keypad.TimesGlyph, true)
	s = s.Backspace()
	assert.Equal(t, "2", s.Buffer)
	s = s.Backspace().Backspace()
	assert.Equal(t, "", s.Buffer)
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(string) (float64, error) {
	return 0, errors.New("boom")
}

func TestEvaluatorFailureBecomesSyntaxError(t *testing.T) {
	c := New(failingEvaluator{}, FormatOptions{})
	s := press(c, NewState(Degrees), keypad.Btn1, keypad.BtnEquals)
	assert.True(t, s.Error)
	assert.Equal(t, "1", s.Buffer)
	assert.Equal(t, DefaultFormatOptions(), c.Options())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		angle AngleMode
		want  string
	}{
		{"glyphs", "6×2÷3−1", Radians, "6*2/3-1"},
		{"pi", "2π", Radians, "2*pi"},
		{"pi group", "2π(1)", Radians, "2*pi*(1)"},
		{"root", "√(9)", Radians, "sqrt(9)"},
		{"power", "2^3", Radians, "pow(2,3)"},
		{"power chain", "2^3^2", Radians, "pow(2,pow(3,2))"},
		{"negated base", "-2^2", Radians, "-pow(2,2)"},
		{"negative exponent", "2^-1", Radians, "pow(2,-1)"},
		{"grouped base", "(1+1)^2", Radians, "pow((1+1),2)"},
		{"grouped exponent", "e^(2)", Radians, "pow(e,(2))"},
		{"power of call", "sin(30)^2", Degrees, "pow(sin(deg(30)),2)"},
		{"power of root", "√(2)^2", Radians, "pow(sqrt(2),2)"},
		{"power after product", "2×3^2", Radians, "2*pow(3,2)"},
		{"dangling caret", "2^", Radians, "2**"},
		{"e", "2e", Radians, "2*e"},
		{"pi then e", "πe", Radians, "pi*e"},
		{"e group", "e(2)", Radians, "e*(2)"},
		{"logs", "log(100)+ln(e)", Radians, "log10(100)+log(e)"},
		{"implicit call", "2sin(30)", Radians, "2*sin(30)"},
		{"e is never an exponent", "2e+3", Radians, "2*e+3"},
		{"degrees forward", "sin(90)", Degrees, "sin(deg(90))"},
		{"degrees inverse", "acos(0)", Degrees, "todeg(acos(0))"},
		{"degrees nested", "sin(cos(0))", Degrees, "sin(deg(cos(deg(0))))"},
		{"degrees grouped", "tan((45))", Degrees, "tan(deg((45)))"},
		{"degrees unclosed", "sin(90", Degrees, "sin(90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.angle))
		})
	}
}

func TestRulesOrder(t *testing.T) {
	names := make([]string, 0, len(Rules))
	for _, r := range Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"implicit-multiplication", "times", "divide",
		"minus", "pi", "root", "power", "log10", "ln",
	}, names)
}

func TestFormat(t *testing.T) {
	o := DefaultFormatOptions()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{4, "4"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.3"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{0.000001, "0.000001"},
		{1e-7, "0.0000001"},
		{1e-8, "1e-8"},
		{123456789.123456789, "123456789.12346"},
		{-1.5e-10, "-1.5e-10"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, o.Format(tt.in), "%v", tt.in)
	}

	o.Precision = 3
	assert.Equal(t, "3.14", o.Format(math.Pi))
}

func TestApproximate(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		maxDen int64
		num    int64
		den    int64
		ok     bool
	}{
		{"half", 0.5, 1000, 1, 2, true},
		{"negative", -0.75, 1000, -3, 4, true},
		{"whole", 3, 1000, 3, 1, true},
		{"zero", 0, 1000, 0, 1, true},
		{"third", 0.33333333333333, 1_000_000_000, 1, 3, true},
		{"tenth", 0.1, 1000, 1, 10, true},
		{"bounded", math.Pi, 10, 0, 0, false},
		{"nan", math.NaN(), 1000, 0, 0, false},
		{"inf", math.Inf(1), 1000, 0, 0, false},
		{"huge", 1e300, 1000, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, den, ok := Approximate(tt.x, tt.maxDen)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.num, num)
				assert.Equal(t, tt.den, den)
			}
		})
	}
}

func TestParseAngleMode(t *testing.T) {
	m, err := ParseAngleMode(" Radians ")
	require.NoError(t, err)
	assert.Equal(t, Radians, m)
	assert.Equal(t, "RAD", m.String())

	m, err = ParseAngleMode("deg")
	require.NoError(t, err)
	assert.Equal(t, Degrees, m)

	_, err = ParseAngleMode("grad")
	assert.Error(t, err)
}
