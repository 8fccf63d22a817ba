package parse

import (
	"bytes"
	"context"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	Const []byte

	TermOp struct{}

	EquationOp struct{}
)

func (p Const) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if bytes.HasPrefix(b[st:], p) {
		return Const(b[st : st+len(p)]), st + len(p), nil
	}

	return nil, st, newError(st, "%q expected", []byte(p))
}

func (TermOp) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	if st < len(b) {
		switch op := ast.TermOperator(b[st]); op {
		case ast.Times, ast.Divide:
			return op, st + 1, nil
		}
	}

	return nil, st, newError(st, "'*' or '/' expected")
}

func (EquationOp) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	if st < len(b) {
		switch op := ast.EquationOperator(b[st]); op {
		case ast.Plus, ast.Minus:
			return op, st + 1, nil
		}
	}

	return nil, st, newError(st, "'+' or '-' expected")
}
