package scientific

import (
	"strings"

	"github.com/Starties/calculators/internal/evaluator"
)

// rewritePower turns every "a^b" into pow(a,b).
//
// Carets are taken from the right, so "2^3^2" becomes pow(2,pow(3,2)). The
// base is the single operand left of the caret and a minus in front of it
// stays outside the call, so "-2^2" is -pow(2,2). The exponent may carry
// its own minus ("2^-1"). A caret with a missing operand is handed on as
// "**" for the evaluator to reject.
func rewritePower(expr string) string {
	for {
		caret := strings.LastIndexByte(expr, '^')
		if caret < 0 {
			return expr
		}
		start := baseStart(expr, caret)
		end := exponentEnd(expr, caret+1)
		if start < 0 || end < 0 {
			expr = expr[:caret] + "**" + expr[caret+1:]
			continue
		}
		expr = expr[:start] + evaluator.FuncPow + "(" + expr[start:caret] + "," + expr[caret+1:end] + ")" + expr[end:]
	}
}

// baseStart returns where the operand ending just before caret begins: a
// number, a name, or a group with the name of the call it belongs to.
func baseStart(s string, caret int) int {
	i := caret - 1
	if i < 0 {
		return -1
	}
	switch c := s[i]; {
	case c == ')':
		open := matchOpenParen(s, i)
		if open < 0 {
			return -1
		}
		for open > 0 && isIdentByte(s[open-1]) {
			open--
		}
		return open
	case isNumberByte(c):
		for i > 0 && isNumberByte(s[i-1]) {
			i--
		}
		return i
	case isLetterByte(c):
		for i > 0 && isIdentByte(s[i-1]) {
			i--
		}
		return i
	}
	return -1
}

// exponentEnd returns the index just past the operand starting at from,
// which may be negated.
func exponentEnd(s string, from int) int {
	i := from
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) {
		return -1
	}
	switch c := s[i]; {
	case c == '(':
		end := matchParen(s, i)
		if end < 0 {
			return -1
		}
		return end + 1
	case isNumberByte(c):
		for i < len(s) && isNumberByte(s[i]) {
			i++
		}
		return i
	case isLetterByte(c):
		for i < len(s) && isIdentByte(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '(' {
			end := matchParen(s, i)
			if end < 0 {
				return -1
			}
			return end + 1
		}
		return i
	}
	return -1
}

// matchOpenParen returns the index of the parenthesis opening the one at
// closing, or -1 when there is none.
func matchOpenParen(s string, closing int) int {
	depth := 0
	for i := closing; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isNumberByte(c byte) bool {
	return c == '.' || ('0' <= c && c <= '9')
}
