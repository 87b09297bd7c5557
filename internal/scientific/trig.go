package scientific

import (
	"strings"

	"github.com/Starties/calculators/internal/evaluator"
)

var (
	forwardTrig = map[string]bool{
		evaluator.FuncSin: true,
		evaluator.FuncCos: true,
		evaluator.FuncTan: true,
	}
	inverseTrig = map[string]bool{
		evaluator.FuncAsin: true,
		evaluator.FuncAcos: true,
		evaluator.FuncAtan: true,
	}
)

// rewriteTrig tags trigonometric calls for a radian-native evaluator:
// sin(x) becomes sin(deg(x)) and asin(x) becomes todeg(asin(x)).
//
// Arguments are found by matching parentheses to their partner, so
// arguments that contain their own groups or calls ("sin((45+45))",
// "sin(2*cos(0))") are rewritten as a whole and nested calls are rewritten
// too. A call whose parenthesis is never closed is left untouched; the
// evaluator rejects it.
func rewriteTrig(expr string) string {
	var b strings.Builder
	b.Grow(len(expr) + 16)

	for i := 0; i < len(expr); {
		if !isLetterByte(expr[i]) {
			b.WriteByte(expr[i])
			i++
			continue
		}

		j := i
		for j < len(expr) && isIdentByte(expr[j]) {
			j++
		}
		name := expr[i:j]

		if j >= len(expr) || expr[j] != '(' || (!forwardTrig[name] && !inverseTrig[name]) {
			b.WriteString(name)
			i = j
			continue
		}

		end := matchParen(expr, j)
		if end < 0 {
			b.WriteString(expr[i:])
			break
		}

		arg := rewriteTrig(expr[j+1 : end])
		if forwardTrig[name] {
			b.WriteString(name + "(" + evaluator.FuncDeg + "(" + arg + "))")
		} else {
			b.WriteString(evaluator.FuncToDeg + "(" + name + "(" + arg + "))")
		}
		i = end + 1
	}
	return b.String()
}

// matchParen returns the index of the parenthesis closing the one at open,
// or -1 when it is never closed.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isLetterByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return c == '_' || isLetterByte(c) || ('0' <= c && c <= '9')
}
