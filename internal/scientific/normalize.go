package scientific

import (
	"regexp"
	"strings"

	"github.com/Starties/calculators/internal/evaluator"
	"github.com/Starties/calculators/internal/keypad"
)

// Rule is one textual rewrite from display notation towards evaluator
// syntax.
type Rule struct {
	Name  string
	apply func(string) string
}

// Apply runs the rule over s
func (r Rule) Apply(s string) string {
	return r.apply(s)
}

func literal(name, old, replacement string) Rule {
	return Rule{Name: name, apply: func(s string) string {
		return strings.ReplaceAll(s, old, replacement)
	}}
}

// repeated applies a regexp replacement until the text stops changing, for
// patterns whose matches may overlap ("2π(" needs two insertions).
func repeated(name, expr, replacement string) Rule {
	re := regexp.MustCompile(expr)
	return Rule{Name: name, apply: func(s string) string {
		for {
			next := re.ReplaceAllString(s, replacement)
			if next == s {
				return s
			}
			s = next
		}
	}}
}

// Rules is the ordered rewrite list. Each rule sees the output of the
// previous one, so precedence is the slice order:
//
//  1. implicit multiplication is made explicit while the glyphs that mark
//     it ("π", "e", "√", "(") are still present
//  2. operator glyphs, then the π glyph, then "√(" become evaluator syntax
//  3. "^" becomes a pow call, see rewritePower
//  4. "log(" becomes the base-10 log before "ln(" is rewritten to the
//     evaluator's natural "log(", otherwise the two would collide
var Rules = []Rule{
	repeated("implicit-multiplication",
		`([0-9.)e`+keypad.PiGlyph+`])([(e`+keypad.PiGlyph+keypad.RootGlyph+`]|a?sin\(|a?cos\(|a?tan\(|log\(|ln\()`,
		"${1}"+keypad.TimesGlyph+"${2}"),
	literal("times", keypad.TimesGlyph, "*"),
	literal("divide", keypad.DivideGlyph, "/"),
	literal("minus", keypad.MinusGlyph, "-"),
	literal("pi", keypad.PiGlyph, evaluator.ConstPi),
	literal("root", keypad.RootGlyph+"(", evaluator.FuncSqrt+"("),
	{Name: "power", apply: rewritePower},
	literal("log10", "log(", evaluator.FuncLog10+"("),
	literal("ln", "ln(", evaluator.FuncLn+"("),
}

// Normalize rewrites a display buffer into evaluator syntax. In degree
// mode trigonometric calls are rewritten last, see rewriteTrig.
func Normalize(buffer string, angle AngleMode) string {
	out := buffer
	for _, rule := range Rules {
		out = rule.Apply(out)
	}
	if angle == Degrees {
		out = rewriteTrig(out)
	}
	return out
}
