package calc

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/Arden144/math-interpreter/calc/ast"
	"github.com/Arden144/math-interpreter/calc/eval"
	"github.com/Arden144/math-interpreter/calc/parse"
)

// ErrEmpty is returned when the input has no equation at its start.
var ErrEmpty = errors.New("no equation")

// Eval strips spaces from text, parses and evaluates it.
//
// If only a prefix of the text is an equation, the value of the prefix
// is returned along with parse.PartialReadError.
func Eval(ctx context.Context, text []byte) (res float64, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "calc: eval", "size", len(text))
	defer tr.Finish("err", &err)

	eq, err := Parse(ctx, text)
	if eq == nil {
		return 0, err
	}

	res = eval.Equation(eq)

	if tr.If("eval") {
		tr.Printw("evaluated", "parts", len(eq), "res", res)
	}

	return res, err
}

// EvalString is Eval for a string.
func EvalString(ctx context.Context, text string) (float64, error) {
	return Eval(ctx, []byte(text))
}

// Parse strips spaces from text and parses it.
// It returns ErrEmpty rather than an empty equation.
//
// If only a prefix of the text is an equation, it's returned along with parse.PartialReadError.
func Parse(ctx context.Context, text []byte) (ast.Equation, error) {
	b := parse.SpaceAll.Strip(text)

	tlog.SpanFromContext(ctx).V("parse").Printw("stripped", "size", len(text), "stripped", len(b))

	eq, err := parse.ParseAll(ctx, b)
	if eq == nil && err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	if len(eq) == 0 {
		return nil, ErrEmpty
	}

	return eq, err
}
