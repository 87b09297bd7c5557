// Package evaluator adapts an arithmetic expression library to the
// calculator's needs. Callers hand it a normalized expression string and get
// back a finite number or an error wrapping ErrEvaluation.
package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

// ErrEvaluation is wrapped by every failure the evaluator reports.
var ErrEvaluation = errors.New("evaluation failed")

// Evaluator evaluates normalized expressions. Implementations must not
// panic; every failure is reported as an error.
type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

// Names of the functions and constants the engine may emit.
const (
	FuncSin   = "sin"
	FuncCos   = "cos"
	FuncTan   = "tan"
	FuncAsin  = "asin"
	FuncAcos  = "acos"
	FuncAtan  = "atan"
	FuncSqrt  = "sqrt"
	FuncPow   = "pow"
	FuncLog10 = "log10"
	FuncLn    = "log"
	FuncDeg   = "deg"   // tags a degree argument, converts it to radians
	FuncToDeg = "todeg" // converts a radian result to degrees

	ConstPi = "pi"
	ConstE  = "e"
)

// noiseUlps bounds how far from zero, in units of the argument's last
// place, a trigonometric result may be and still count as an exact zero.
const noiseUlps = 4

// Govaluate evaluates expressions with github.com/Knetic/govaluate. The
// library is radian-native and works in float64 throughout.
type Govaluate struct {
	functions  map[string]govaluate.ExpressionFunction
	parameters map[string]interface{}
}

// New creates an evaluator with the calculator's function table.
func New() *Govaluate {
	return &Govaluate{
		functions: map[string]govaluate.ExpressionFunction{
			FuncSin:   trig(FuncSin, math.Sin),
			FuncCos:   trig(FuncCos, math.Cos),
			FuncTan:   trig(FuncTan, math.Tan),
			FuncAsin:  unary(FuncAsin, math.Asin),
			FuncAcos:  unary(FuncAcos, math.Acos),
			FuncAtan:  unary(FuncAtan, math.Atan),
			FuncSqrt:  unary(FuncSqrt, math.Sqrt),
			FuncPow:   binary(FuncPow, math.Pow),
			FuncLog10: unary(FuncLog10, math.Log10),
			FuncLn:    unary(FuncLn, math.Log),
			FuncDeg:   unary(FuncDeg, func(x float64) float64 { return x * math.Pi / 180 }),
			FuncToDeg: unary(FuncToDeg, func(x float64) float64 { return x * 180 / math.Pi }),
		},
		parameters: map[string]interface{}{
			ConstPi: math.Pi,
			ConstE:  math.E,
		},
	}
}

// Evaluate parses and evaluates expression. Non-numeric and non-finite
// results are failures.
func (g *Govaluate) Evaluate(expression string) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = 0
			err = fmt.Errorf("%w: %v", ErrEvaluation, r)
		}
	}()

	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrEvaluation)
	}

	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, g.functions)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEvaluation, err)
	}

	value, err := expr.Evaluate(g.parameters)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEvaluation, err)
	}

	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: non-numeric result %v", ErrEvaluation, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: result is not finite", ErrEvaluation)
	}
	return f, nil
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a number, got %T", name, args[0])
		}
		return fn(x), nil
	}
}

func binary(name string, fn func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a number, got %T", name, args[0])
		}
		y, ok := args[1].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a number, got %T", name, args[1])
		}
		return fn(x, y), nil
	}
}

// trig wraps a forward trigonometric function. sin(π) and cos(π/2) come out
// of float64 a few ulps away from zero; such results are reported as 0.
func trig(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return unary(name, func(x float64) float64 {
		r := fn(x)
		if math.Abs(r) <= noiseUlps*0x1p-52*math.Abs(x) {
			return 0
		}
		return r
	})
}
