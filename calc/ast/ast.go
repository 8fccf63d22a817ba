package ast

import "fmt"

type (
	Node interface {
	}

	Span struct {
		Pos int
		End int
	}

	// Degree is either a Number or an Exponent.
	Degree interface {
		TermPart
		degree()
	}

	// TermPart is an element of a Term: a Degree or a TermOperator.
	TermPart interface {
		termPart()
	}

	// EquationPart is an element of an Equation: a Term or an EquationOperator.
	EquationPart interface {
		equationPart()
	}

	Number struct {
		Span `tlog:",embed" yaml:",inline"`

		Value float64
	}

	// Exponent is Base^Power. Power is a Degree itself,
	// so chains associate to the right.
	Exponent struct {
		Span `tlog:",embed" yaml:",inline"`

		Base  Number
		Power Degree
	}

	TermOperator byte

	// Term is Degree (TermOperator Degree)*.
	Term []TermPart

	EquationOperator byte

	// Equation is Term (EquationOperator Term)*.
	Equation []EquationPart
)

const (
	Times  TermOperator = '*'
	Divide TermOperator = '/'
)

const (
	Plus  EquationOperator = '+'
	Minus EquationOperator = '-'
)

func (Number) degree()   {}
func (Exponent) degree() {}

func (Number) termPart()       {}
func (Exponent) termPart()     {}
func (TermOperator) termPart() {}

func (Term) equationPart()             {}
func (EquationOperator) equationPart() {}

func (s Span) Len() int { return s.End - s.Pos }

func (op TermOperator) String() string {
	switch op {
	case Times, Divide:
		return string(op)
	default:
		return fmt.Sprintf("TermOperator(%d)", byte(op))
	}
}

func (op EquationOperator) String() string {
	switch op {
	case Plus, Minus:
		return string(op)
	default:
		return fmt.Sprintf("EquationOperator(%d)", byte(op))
	}
}

func (op TermOperator) MarshalYAML() (any, error) { return op.String(), nil }

func (op EquationOperator) MarshalYAML() (any, error) { return op.String(), nil }
