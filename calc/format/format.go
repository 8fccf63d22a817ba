package format

import (
	"context"
	"math"
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/Arden144/math-interpreter/calc/ast"
)

// Format appends x as a canonical expression text.
// Parsing the result gives the same tree, except for spans.
// Infinite numbers are written as overflowing literals.
func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	return format(ctx, b, x)
}

// Tree appends x as an indented tree, one node per line.
func Tree(ctx context.Context, b []byte, x any) ([]byte, error) {
	return tree(ctx, b, x, 0)
}

// Result appends v the way the command line prints it.
func Result(b []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(b, "NaN"...)
	case math.IsInf(v, 1):
		return append(b, "inf"...)
	case math.IsInf(v, -1):
		return append(b, "-inf"...)
	}

	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

func format(ctx context.Context, b []byte, x any) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Equation:
		for i, p := range x {
			b, err = format(ctx, b, p)
			if err != nil {
				return nil, errors.Wrap(err, "part %d", i)
			}
		}
	case ast.Term:
		for i, p := range x {
			b, err = format(ctx, b, p)
			if err != nil {
				return nil, errors.Wrap(err, "part %d", i)
			}
		}
	case ast.EquationOperator:
		b = append(b, byte(x))
	case ast.TermOperator:
		b = append(b, byte(x))
	case ast.Exponent:
		b = formatNumber(b, x.Base.Value)
		b = append(b, '^')

		b, err = format(ctx, b, x.Power)
		if err != nil {
			return nil, errors.Wrap(err, "power")
		}
	case ast.Number:
		b = formatNumber(b, x.Value)
	default:
		return nil, errors.New("unsupported node: %T", x)
	}

	return b, nil
}

func tree(ctx context.Context, b []byte, x any, d int) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Equation:
		b = app(b, d, "equation (%d parts)\n", len(x))

		for i, p := range x {
			b, err = tree(ctx, b, p, d+1)
			if err != nil {
				return nil, errors.Wrap(err, "part %d", i)
			}
		}
	case ast.Term:
		b = app(b, d, "term (%d parts)\n", len(x))

		for i, p := range x {
			b, err = tree(ctx, b, p, d+1)
			if err != nil {
				return nil, errors.Wrap(err, "part %d", i)
			}
		}
	case ast.EquationOperator, ast.TermOperator:
		b = app(b, d, "%v\n", x)
	case ast.Exponent:
		b = app(b, d, "exponent %v-%v\n", x.Pos, x.End)

		b, err = tree(ctx, b, x.Base, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "base")
		}

		b, err = tree(ctx, b, x.Power, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "power")
		}
	case ast.Number:
		b = app(b, d, "number %v %v-%v\n", x.Value, x.Pos, x.End)
	default:
		return nil, errors.New("unsupported node: %T", x)
	}

	return b, nil
}

func formatNumber(b []byte, v float64) []byte {
	switch {
	case math.IsInf(v, 1):
		// overflows back to +Inf when parsed
		return append(b, "1e999"...)
	case math.IsInf(v, -1):
		return append(b, "-1e999"...)
	case math.IsNaN(v):
		// no literal parses to NaN
		return Result(b, v)
	}

	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"

	for d > len(tabs) {
		b = append(b, tabs...)
		d -= len(tabs)
	}

	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)

	return b
}
