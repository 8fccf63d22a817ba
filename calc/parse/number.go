package parse

import (
	"context"
	"strconv"

	"tlog.app/go/errors"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	Number struct{}
)

// Parse consumes the longest float literal prefix:
//
//	[+-]? ( digits ('.' digits?)? | '.' digits ) ( [eE] [+-]? digits )?
func (p Number) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st

	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}

	dst := i
	i = skipDigits(b, i)
	ints := i - dst

	if i < len(b) && b[i] == '.' {
		fst := i + 1
		end := skipDigits(b, fst)

		if ints != 0 || end != fst {
			i = end
		}
	}

	if i == dst {
		return nil, st, newError(st, "number expected")
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1

		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}

		if end := skipDigits(b, j); end != j {
			i = end
		}
	}

	v, err := strconv.ParseFloat(string(b[st:i]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, st, newError(st, "bad number %q: %v", b[st:i], err)
	}

	return ast.Number{
		Span: ast.Span{
			Pos: st,
			End: i,
		},
		Value: v,
	}, i, nil
}

func skipDigits(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	return i
}
