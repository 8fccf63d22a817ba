package parse

import (
	"context"
	"fmt"
	"strings"

	"tlog.app/go/errors"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	// Commit is an AllOf marker.
	// Failures of the following parsers are fatal.
	Commit struct{}

	AllOf []Parser

	AnyOf []Parser

	Map struct {
		Of Parser
		To func(x ast.Node) ast.Node
	}

	// Parens parses Of inside balanced parentheses.
	// The arithmetic grammar doesn't use it.
	Parens struct {
		Of Parser
	}
)

func (Commit) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	return Commit{}, st, nil
}

func (p AllOf) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st

	res := make([]ast.Node, 0, len(p))
	committed := false

	for j, r := range p {
		if _, ok := r.(Commit); ok {
			committed = true
			continue
		}

		x, i, err = r.Parse(ctx, b, i)
		switch {
		case err == nil:
		case IsFatal(err):
			return nil, i, errors.Wrap(err, "%T (%d)", r, j)
		case committed:
			return nil, i, errors.Wrap(commit(err, i), "%T (%d)", r, j)
		default:
			return nil, st, errors.Wrap(err, "%T (%d)", r, j)
		}

		res = append(res, x)
	}

	return res, i, nil
}

func (p AnyOf) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	for _, r := range p {
		x, j, err := r.Parse(ctx, b, st)
		if err == nil {
			return x, j, nil
		}

		if IsFatal(err) {
			return nil, j, errors.Wrap(err, "%T", r)
		}
	}

	return nil, st, newError(st, "expected %v", joinHuman(p...))
}

func (p Map) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = p.Of.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return p.To(x), i, nil
}

func (p Parens) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if st == len(b) || b[st] != '(' {
		return nil, st, newError(st, "'(' expected")
	}

	depth := 1

	for i = st + 1; i < len(b); i++ {
		switch b[i] {
		case '(':
			depth++
		case ')':
			depth--
		}

		if depth == 0 {
			break
		}
	}

	if depth != 0 {
		return nil, i, newFatal(st, "unmatched '('")
	}

	inner := b[:i]

	x, j, err := p.Of.Parse(ctx, inner, st+1)
	if err != nil {
		return nil, j, errors.Wrap(commit(err, j), "inside parens")
	}

	if j != i {
		return nil, j, newFatal(j, "unexpected %q inside parens", inner[j:])
	}

	return x, i + 1, nil
}

func joinHuman(l ...Parser) string {
	switch len(l) {
	case 0:
		return "<none>"
	case 1:
		return fmt.Sprintf("%T", l[0])
	}

	var b strings.Builder

	for i, r := range l {
		if i+1 == len(l) {
			b.WriteString(" or ")
		} else if i != 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%T", r)
	}

	return b.String()
}
