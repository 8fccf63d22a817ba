package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepl(t *testing.T) {
	var out bytes.Buffer

	in := strings.NewReader("2 + 3 * 4\n1/0\n2^\n\n1+2+\n")

	err := repl(context.Background(), in, &out, false)
	require.NoError(t, err)

	lines := strings.Split(out.String(), "Enter equation: ")
	require.Len(t, lines, 7, "%q", out.String())

	assert.Equal(t, "2+3*4 = 14\n", lines[1])
	assert.Equal(t, "1/0 = inf\n", lines[2])
	assert.Contains(t, lines[3], "2^ = error: ")
	assert.Contains(t, lines[4], " = error: no equation")
	assert.Contains(t, lines[5], "1+2+ = error: ")
	assert.Contains(t, lines[5], "partial read")
	assert.Equal(t, "\n", lines[6])
}

func TestPrintResultPartial(t *testing.T) {
	var out bytes.Buffer

	printResult(context.Background(), &out, []byte("1 + 2 +"), true)

	assert.Equal(t, "1+2+ = 3 (unparsed \"+\")\n", out.String())
}
