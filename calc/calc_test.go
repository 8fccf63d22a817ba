package calc

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/Arden144/math-interpreter/calc/eval"
	"github.com/Arden144/math-interpreter/calc/gen"
	"github.com/Arden144/math-interpreter/calc/parse"
)

func TestEval(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		in  string
		res float64
	}{
		{"5", 5},
		{"2+3*4", 14},
		{"2*3+4", 10},
		{"2^3^2", 512},
		{"2*3^2", 18},
		{"1-2-3", -4},
		{"8/4/2", 1},
		{"-2^2", 4},
		{"2^-1", 0.5},
		{"1e3/10", 100},
		{"1.5*4", 6},
		{" 1 +\t2 * 3\n", 7},
		{"10-2^3*2+1", -5},
	} {
		res, err := EvalString(ctx, tc.in)
		if assert.NoError(t, err, "%q", tc.in) {
			assert.Equal(t, tc.res, res, "%q", tc.in)
		}
	}
}

func TestEvalIEEE(t *testing.T) {
	ctx := context.Background()

	res, err := EvalString(ctx, "1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(res, 1))

	res, err = EvalString(ctx, "-1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(res, -1))

	res, err = EvalString(ctx, "0/0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res))

	res, err = EvalString(ctx, "-8^0.5")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res))
}

func TestEvalErrors(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{"", "   ", "+", "x", "*2"} {
		_, err := EvalString(ctx, in)
		assert.ErrorIs(t, err, ErrEmpty, "%q", in)
	}

	for _, in := range []string{"2^", "1+2^*3", "2^3^"} {
		_, err := EvalString(ctx, in)
		assert.True(t, parse.IsFatal(err), "%q: %v", in, err)
	}

	res, err := EvalString(ctx, "1+2+")
	assert.Equal(t, 3.0, res)

	var perr parse.PartialReadError
	require.True(t, errors.As(err, &perr), "%v", err)
	assert.Equal(t, "+", string(perr.Rest))
}

func TestRoundTripConsumption(t *testing.T) {
	ctx := context.Background()

	g := gen.Generator{Seed: 0}
	text := []byte(g.Equation(100_000))

	eq, end, err := parse.Parse(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, len(text), end)
	assert.NotEmpty(t, eq)

	_, err = eval.Checked(eq)
	assert.NoError(t, err)
}

func TestParseRejectsEmpty(t *testing.T) {
	eq, err := Parse(context.Background(), []byte("*"))
	assert.Nil(t, eq)
	assert.ErrorIs(t, err, ErrEmpty)
}

func BenchmarkParse(b *testing.B) {
	ctx := context.Background()

	g := gen.Generator{Seed: 0}
	text := []byte(g.Equation(10_000))

	b.SetBytes(int64(len(text)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _, err := parse.Parse(ctx, text)
		if err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	ctx := context.Background()

	g := gen.Generator{Seed: 0}
	text := []byte(g.Equation(10_000))

	eq, _, err := parse.Parse(ctx, text)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = eval.Equation(eq)
	}
}

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("2^3^2")
	f.Add("1+2+")
	f.Add("2^")
	f.Add("-1.5e3/0")

	f.Fuzz(func(t *testing.T, s string) {
		_, _ = EvalString(context.Background(), s)
	})
}
