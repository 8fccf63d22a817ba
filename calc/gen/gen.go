// Package gen generates random flat equations for tests and benchmarks.
package gen

import (
	"math/rand"
	"strconv"
)

// Operators are the binary operators a Generator joins numbers with.
var Operators = []byte{'+', '-', '*', '/', '^'}

// A Generator generates random equations like "-12*7^3-1".
type Generator struct {
	// Rand is the source of randomness.
	// If nil, a source seeded with Seed is created.
	Rand *rand.Rand

	// Seed is used when Rand is nil.
	Seed int64

	// Small limits numbers to [-9, 9] instead of the full int32 range.
	Small bool
}

// Equation returns n signed integer literals joined by random operators.
// It returns an empty string if n < 1.
func (g *Generator) Equation(n int) string {
	return string(g.AppendEquation(nil, n))
}

// AppendEquation is Equation appending to b.
func (g *Generator) AppendEquation(b []byte, n int) []byte {
	if n < 1 {
		return b
	}

	if g.Rand == nil {
		g.Rand = rand.New(rand.NewSource(g.Seed))
	}

	b = g.appendNumber(b)

	for i := 1; i < n; i++ {
		b = append(b, Operators[g.Rand.Intn(len(Operators))])
		b = g.appendNumber(b)
	}

	return b
}

func (g *Generator) appendNumber(b []byte) []byte {
	if g.Small {
		return strconv.AppendInt(b, int64(g.Rand.Intn(19)-9), 10)
	}

	return strconv.AppendInt(b, int64(int32(g.Rand.Uint32())), 10)
}
