package parse

import (
	"context"
	"fmt"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/Arden144/math-interpreter/calc/ast"
)

type (
	// Parser matches a prefix of b[st:].
	//
	// On success err is nil and i is the end of the match.
	// A failure with i == st and a non fatal error means "no match here",
	// the caller may try something else.
	// A fatal failure (see IsFatal) means the input is malformed and must not be retried.
	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error)
	}

	Error struct {
		Pos    int
		Fatal  bool
		Reason string

		From loc.PC
	}

	PartialReadError struct {
		End  int
		Rest []byte
	}
)

// Parse parses text as an Equation.
// The unconsumed remainder is text[end:].
func Parse(ctx context.Context, text []byte) (eq ast.Equation, end int, err error) {
	x, end, err := Equation{}.Parse(ctx, text, 0)
	if err != nil {
		return nil, end, errors.Wrap(err, "parse equation")
	}

	tlog.SpanFromContext(ctx).V("parse").Printw("parsed", "size", len(text), "end", end, "parts", len(x.(ast.Equation)))

	return x.(ast.Equation), end, nil
}

// ParseAll is Parse which fails with PartialReadError if any input is left.
// The parsed prefix is returned along with the error.
func ParseAll(ctx context.Context, text []byte) (ast.Equation, error) {
	eq, end, err := Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	end = SpaceAll.Skip(text, end)

	if end != len(text) {
		return eq, PartialReadError{End: end, Rest: text[end:]}
	}

	return eq, nil
}

func newError(st int, f string, args ...any) *Error {
	return &Error{
		Pos:    st,
		Reason: fmt.Sprintf(f, args...),
		From:   loc.Caller(1),
	}
}

func newFatal(st int, f string, args ...any) *Error {
	return &Error{
		Pos:    st,
		Fatal:  true,
		Reason: fmt.Sprintf(f, args...),
		From:   loc.Caller(1),
	}
}

// IsFatal reports whether err came from a committed parse.
func IsFatal(err error) bool {
	var e *Error

	return errors.As(err, &e) && e.Fatal
}

// commit turns err into a fatal error at position i unless it already is one.
func commit(err error, i int) error {
	if IsFatal(err) {
		return err
	}

	e := newFatal(i, "%v", err)
	e.From = loc.Caller(1)

	tlog.V("commit").Printw("committed failure", "pos", i, "err", err, "from", e.From)

	return e
}

func (e *Error) Error() string {
	if e.Fatal {
		return fmt.Sprintf("malformed input at %d: %s", e.Pos, e.Reason)
	}

	return fmt.Sprintf("%s at %d", e.Reason, e.Pos)
}

func (e PartialReadError) Error() string {
	return fmt.Sprintf("partial read: unparsed %q at %d", e.Rest, e.End)
}
