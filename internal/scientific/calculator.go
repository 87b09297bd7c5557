package scientific

import (
	"strconv"
	"strings"

	"github.com/Starties/calculators/internal/evaluator"
	"github.com/Starties/calculators/internal/keypad"
	"github.com/Starties/calculators/internal/logger"
)

// Calculator evaluates State buffers with an Evaluator and formats results.
type Calculator struct {
	eval evaluator.Evaluator
	opts FormatOptions
}

// New creates a calculator. A nil evaluator selects the govaluate backend.
func New(eval evaluator.Evaluator, opts FormatOptions) *Calculator {
	if eval == nil {
		eval = evaluator.New()
	}
	defaults := DefaultFormatOptions()
	if opts.Precision == 0 {
		opts.Precision = defaults.Precision
	}
	if opts.LowerExp == 0 && opts.UpperExp == 0 {
		opts.LowerExp = defaults.LowerExp
		opts.UpperExp = defaults.UpperExp
	}
	if opts.MaxDenominator < 1 {
		opts.MaxDenominator = defaults.MaxDenominator
	}
	return &Calculator{eval: eval, opts: opts}
}

// Options returns the formatting options in effect
func (c *Calculator) Options() FormatOptions {
	return c.opts
}

// SetOptions replaces the formatting options, used on config reload
func (c *Calculator) SetOptions(opts FormatOptions) {
	*c = *New(c.eval, opts)
}

// Evaluate computes the buffer. An empty buffer is left alone. On success
// the shift state is released; on failure the buffer is kept and the result
// becomes the syntax-error sentinel.
func (c *Calculator) Evaluate(s State) State {
	if s.Buffer == "" {
		return s
	}

	expr := Normalize(s.Buffer, s.Angle)
	v, err := c.eval.Evaluate(expr)
	if err != nil {
		logger.Debug("scientific: %q (%q): %v", s.Buffer, expr, err)
		return s.withError()
	}

	s.Result = c.opts.Format(v)
	s.Error = false
	s.Shift = false
	return s
}

// ToggleFraction converts the current result between decimal and fraction
// form. Without a result, or when no fraction within the denominator bound
// exists, the state is unchanged. Whole numbers stay as they are.
func (c *Calculator) ToggleFraction(s State) State {
	if !s.HasResult() {
		return s
	}

	if strings.Contains(s.Result, FractionSeparator) {
		v, err := c.eval.Evaluate(s.Result)
		if err != nil {
			logger.Warn("scientific: fraction %q did not evaluate: %v", s.Result, err)
			return s
		}
		s.Result = c.opts.Format(v)
		return s
	}

	v, err := strconv.ParseFloat(s.Result, 64)
	if err != nil {
		return s
	}
	num, den, ok := Approximate(v, c.opts.MaxDenominator)
	if !ok || den == 1 {
		return s
	}
	s.Result = formatFraction(num, den)
	return s
}

// Press applies one button to the state. Buttons that only belong to the
// base/bitwise engine are ignored.
func (c *Calculator) Press(s State, b keypad.Button) State {
	action, err := keypad.Lookup(b, s.Shift)
	if err != nil {
		logger.Debug("scientific: %v", err)
		return s
	}
	if !action.In(keypad.ScopeExpression) {
		return s
	}

	switch action.Kind {
	case keypad.KindInsert:
		return s.AppendToken(action.Token, action.Operator)
	case keypad.KindShift:
		return s.ToggleShift()
	case keypad.KindAngleMode:
		return s.ToggleAngle()
	case keypad.KindClear:
		return s.Clear()
	case keypad.KindBackspace:
		return s.Backspace()
	case keypad.KindEvaluate:
		return c.Evaluate(s)
	case keypad.KindFraction:
		return c.ToggleFraction(s)
	}
	return s
}
