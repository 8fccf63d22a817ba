package parse

import (
	"context"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	// Exponent is Number '^' Degree.
	Exponent struct{}

	// Degree is Exponent or Number.
	Degree struct{}

	Term struct{}

	Equation struct{}
)

func (p Exponent) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AllOf{
		Number{},
		Const("^"),
		Commit{},
		Degree{},
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	xt := x.([]ast.Node)

	return ast.Exponent{
		Span: ast.Span{
			Pos: st,
			End: i,
		},
		Base:  xt[0].(ast.Number),
		Power: xt[2].(ast.Degree),
	}, i, nil
}

func (p Degree) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AnyOf{
		Exponent{},
		Number{},
	}

	return r.Parse(ctx, b, st)
}

func (p Term) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := Map{
		Of: Alternating{
			Sep:  TermOp{},
			Item: Degree{},
		},
		To: func(x ast.Node) ast.Node {
			xt := x.([]ast.Node)
			res := make(ast.Term, len(xt))

			for j, y := range xt {
				res[j] = y.(ast.TermPart)
			}

			return res
		},
	}

	return r.Parse(ctx, b, st)
}

func (p Equation) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := Map{
		Of: Alternating{
			Sep:  EquationOp{},
			Item: Term{},
		},
		To: func(x ast.Node) ast.Node {
			xt := x.([]ast.Node)
			res := make(ast.Equation, len(xt))

			for j, y := range xt {
				res[j] = y.(ast.EquationPart)
			}

			return res
		},
	}

	return r.Parse(ctx, b, st)
}
