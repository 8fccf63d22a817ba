package format

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arden144/math-interpreter/calc/ast"
	"github.com/Arden144/math-interpreter/calc/gen"
	"github.com/Arden144/math-interpreter/calc/parse"
)

func TestFormatRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{
		"1",
		"2+3*4",
		"2^3^2",
		"-1--2*-3/4^-5",
		"0.5*1e+21",
	} {
		eq, err := parse.ParseAll(ctx, []byte(in))
		require.NoError(t, err, "%q", in)

		b, err := Format(ctx, nil, eq)
		require.NoError(t, err)
		assert.Equal(t, in, string(b))
	}

	g := gen.Generator{Seed: 1, Small: true}

	for n := 1; n < 50; n++ {
		in := g.Equation(n)

		eq, err := parse.ParseAll(ctx, []byte(in))
		require.NoError(t, err, "%q", in)

		b, err := Format(ctx, nil, eq)
		require.NoError(t, err)
		assert.Equal(t, in, string(b))
	}
}

func TestFormatInfinity(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		in, out string
		inf     int
	}{
		{"326E989", "1e999", 1},
		{"-326E989", "-1e999", -1},
		{"2^1e400", "2^1e999", 1},
	} {
		eq, err := parse.ParseAll(ctx, []byte(tc.in))
		require.NoError(t, err, "%q", tc.in)

		b, err := Format(ctx, nil, eq)
		require.NoError(t, err)
		assert.Equal(t, tc.out, string(b))

		again, err := parse.ParseAll(ctx, b)
		require.NoError(t, err, "%q", b)

		b2, err := Format(ctx, nil, again)
		require.NoError(t, err)
		assert.Equal(t, tc.out, string(b2))

		last := again[0].(ast.Term)[0]
		if x, ok := last.(ast.Exponent); ok {
			last = x.Power
		}

		assert.True(t, math.IsInf(last.(ast.Number).Value, tc.inf), "%q", b)
	}
}

func TestFormatUnsupported(t *testing.T) {
	_, err := Format(context.Background(), nil, ast.Equation{ast.Term{nil}})
	assert.Error(t, err)

	_, err = Tree(context.Background(), nil, 3)
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	ctx := context.Background()

	eq, err := parse.ParseAll(ctx, []byte("1+2^3"))
	require.NoError(t, err)

	b, err := Tree(ctx, nil, eq)
	require.NoError(t, err)

	assert.Equal(t, `equation (3 parts)
	term (1 parts)
		number 1 0-1
	+
	term (1 parts)
		exponent 2-5
			number 2 2-3
			number 3 4-5
`, string(b))
}

func TestResult(t *testing.T) {
	assert.Equal(t, "14", string(Result(nil, 14)))
	assert.Equal(t, "0.25", string(Result(nil, 0.25)))
	assert.Equal(t, "-3", string(Result(nil, -3)))
	assert.Equal(t, "inf", string(Result(nil, math.Inf(1))))
	assert.Equal(t, "-inf", string(Result(nil, math.Inf(-1))))
	assert.Equal(t, "NaN", string(Result(nil, math.NaN())))
	assert.Equal(t, "x = 1e+100", string(Result([]byte("x = "), 1e100)))
}
