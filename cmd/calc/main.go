package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/Arden144/math-interpreter/calc"
	"github.com/Arden144/math-interpreter/calc/format"
	"github.com/Arden144/math-interpreter/calc/gen"
	"github.com/Arden144/math-interpreter/calc/parse"
)

func main() {
	verbosity := cli.NewFlag("verbosity,v", "", "tlog verbosity topics (parse,rollback,commit,eval)")
	partial := cli.NewFlag("partial", false, "print the value of the parsed prefix if some input is left")

	evalCmd := &cli.Command{
		Name:        "eval",
		Description: "evaluate equations given as arguments",
		Action:      evalAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			verbosity,
			partial,
			cli.HelpFlag,
		},
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "print parsed equation trees",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			verbosity,
			cli.NewFlag("format,f", "tree", "output format: text, tree, repr, spew, yaml"),
			cli.HelpFlag,
		},
	}

	genCmd := &cli.Command{
		Name:        "gen",
		Description: "print a random equation",
		Action:      genAct,
		Flags: []*cli.Flag{
			cli.NewFlag("numbers,n", 10, "numbers in the equation"),
			cli.NewFlag("seed", 0, "random seed"),
			cli.NewFlag("small", false, "use one digit numbers"),
			cli.HelpFlag,
		},
	}

	app := &cli.Command{
		Name:        "calc",
		Description: "calc evaluates arithmetic equations read from stdin line by line",
		Action:      replAct,
		Flags: []*cli.Flag{
			verbosity,
			partial,
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			evalCmd,
			parseCmd,
			genCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func setup(c *cli.Command) context.Context {
	tlog.SetVerbosity(c.String("verbosity"))

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	return ctx
}

func replAct(c *cli.Command) (err error) {
	ctx := setup(c)

	return repl(ctx, os.Stdin, os.Stdout, c.Bool("partial"))
}

func repl(ctx context.Context, r io.Reader, w io.Writer, partial bool) error {
	s := bufio.NewScanner(r)

	for {
		fmt.Fprintf(w, "Enter equation: ")

		if !s.Scan() {
			break
		}

		printResult(ctx, w, s.Bytes(), partial)
	}

	if err := s.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}

	fmt.Fprintf(w, "\n")

	return nil
}

func evalAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		printResult(ctx, os.Stdout, []byte(a), c.Bool("partial"))
	}

	return nil
}

func printResult(ctx context.Context, w io.Writer, line []byte, partial bool) {
	b := parse.SpaceAll.Strip(line)
	b = append(b, " = "...)

	res, err := calc.Eval(ctx, line)

	var perr parse.PartialReadError

	switch {
	case err == nil:
		b = format.Result(b, res)
	case partial && errors.As(err, &perr):
		b = format.Result(b, res)
		b = fmt.Appendf(b, " (unparsed %q)", perr.Rest)
	default:
		b = fmt.Appendf(b, "error: %v", err)
	}

	b = append(b, '\n')

	_, _ = w.Write(b)
}

func parseAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		eq, err := calc.Parse(ctx, []byte(a))
		if eq == nil {
			return errors.Wrap(err, "parse %q", a)
		}
		if err != nil {
			tlog.Printw("partial parse", "arg", a, "err", err)
		}

		var b []byte

		switch f := c.String("format"); f {
		case "text":
			b, err = format.Format(ctx, nil, eq)
			b = append(b, '\n')
		case "tree":
			b, err = format.Tree(ctx, nil, eq)
		case "repr":
			b = []byte(repr.String(eq, repr.Indent("  ")) + "\n")
		case "spew":
			b = []byte(spew.Sdump(eq))
		case "yaml":
			b, err = yaml.Marshal(eq)
		default:
			return errors.New("unsupported format: %v", f)
		}
		if err != nil {
			return errors.Wrap(err, "format %q", a)
		}

		_, err = os.Stdout.Write(b)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func genAct(c *cli.Command) (err error) {
	g := gen.Generator{
		Seed:  int64(c.Int("seed")),
		Small: c.Bool("small"),
	}

	b := g.AppendEquation(nil, c.Int("numbers"))
	b = append(b, '\n')

	_, err = os.Stdout.Write(b)

	return err
}
