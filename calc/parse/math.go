package parse

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	// Alternating parses Item (Sep Item)* into []ast.Node
	// of odd length, or of length 0 if the first Item is absent.
	//
	// A Sep not followed by an Item is not an error:
	// it's left unconsumed and the list ends before it.
	// An Item matching empty input counts as absent.
	Alternating struct {
		Sep  Parser
		Item Parser
	}
)

func (p Alternating) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	x, i, err := p.Item.Parse(ctx, b, st)
	if IsFatal(err) {
		return nil, i, errors.Wrap(err, "first item")
	}
	if err != nil || i == st {
		return []ast.Node{}, st, nil
	}

	res := []ast.Node{x}

	for {
		sep, j, err := p.Sep.Parse(ctx, b, i)
		if IsFatal(err) {
			return nil, j, errors.Wrap(err, "separator")
		}
		if err != nil {
			return res, i, nil
		}

		if j == i {
			return nil, j, newFatal(j, "%T matched empty input", p.Sep)
		}

		x, k, err := p.Item.Parse(ctx, b, j)
		if IsFatal(err) {
			return nil, k, errors.Wrap(err, "item %d", len(res)/2+1)
		}
		if err == nil && k == j {
			err = newError(j, "%T matched empty input", p.Item)
		}
		if err != nil {
			tlog.V("rollback").Printw("dangling separator", "sep", sep, "pos", i, "err", err)

			return res, i, nil
		}

		res = append(res, sep, x)
		i = k
	}
}
