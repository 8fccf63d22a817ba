package eval

import (
	"fmt"
	"math"

	"tlog.app/go/errors"
	"tlog.app/go/loc"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	// MalformedError is a tree invariant violation caught by Checked.
	MalformedError struct {
		Reason string
		From   loc.PC
	}

	malformed struct {
		reason string
		from   loc.PC
	}
)

// Equation evaluates e left to right.
// It panics if e is empty, has even length or has a part of the wrong kind.
// Trees returned by the parser never do.
func Equation(e ast.Equation) float64 {
	checkLen(len(e))

	acc := term(e[0])

	for j := 1; j < len(e); j += 2 {
		op, ok := e[j].(ast.EquationOperator)
		if !ok {
			fail("malformed expression")
		}

		r := term(e[j+1])

		switch op {
		case ast.Plus:
			acc += r
		case ast.Minus:
			acc -= r
		default:
			fail(fmt.Sprintf("malformed expression: operator %v", op))
		}
	}

	return acc
}

// Term evaluates t left to right. It panics the same way Equation does.
func Term(t ast.Term) float64 {
	checkLen(len(t))

	acc := degree(t[0])

	for j := 1; j < len(t); j += 2 {
		op, ok := t[j].(ast.TermOperator)
		if !ok {
			fail("malformed expression")
		}

		r := degree(t[j+1])

		switch op {
		case ast.Times:
			acc *= r
		case ast.Divide:
			acc /= r
		default:
			fail(fmt.Sprintf("malformed expression: operator %v", op))
		}
	}

	return acc
}

// Degree evaluates a number or an exponent chain.
// Power is evaluated first, so 2^3^2 is 2^9.
func Degree(d ast.Degree) float64 {
	switch d := d.(type) {
	case ast.Number:
		return d.Value
	case ast.Exponent:
		return math.Pow(d.Base.Value, Degree(d.Power))
	default:
		panic(malformed{reason: fmt.Sprintf("malformed expression: degree %T", d), from: loc.Caller(0)})
	}
}

// Checked is Equation which returns invariant violations as *MalformedError
// instead of panicking. Other panics are passed through.
func Checked(e ast.Equation) (res float64, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		m, ok := p.(malformed)
		if !ok {
			panic(p)
		}

		err = errors.Wrap(&MalformedError{Reason: m.reason, From: m.from}, "evaluate")
	}()

	return Equation(e), nil
}

func term(p ast.EquationPart) float64 {
	t, ok := p.(ast.Term)
	if !ok {
		fail("malformed expression")
	}

	return Term(t)
}

func degree(p ast.TermPart) float64 {
	d, ok := p.(ast.Degree)
	if !ok {
		fail("malformed expression")
	}

	return Degree(d)
}

func checkLen(n int) {
	if n == 0 || n%2 == 0 {
		fail("malformed equation")
	}
}

func fail(reason string) {
	panic(malformed{reason: reason, from: loc.Caller(1)})
}

func (m malformed) Error() string { return m.reason }

func (e *MalformedError) Error() string { return e.Reason }
