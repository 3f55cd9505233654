package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jander/internal/source"
)

func span(line, startCol, endCol int) *source.Location {
	start := source.Position{Line: line, Column: startCol}
	end := source.Position{Line: line, Column: endCol}
	return source.NewLocation(&start, &end)
}

func TestEmitPlain(t *testing.T) {
	bag := NewDiagnosticBag(testFile)
	bag.Add(UndeclaredIdentifier(testFile, span(5, 3, 4), "z"))
	bag.Add(Unsupported(testFile, span(7, 1, 5), MsgTypeDeclUnsupported))

	var buf bytes.Buffer
	require.NoError(t, bag.EmitAllToWriter(&buf, FormatPlain, nil))

	want := "Linha 5: identificador z nao declarado\n" +
		"Linha 7: Declaracoes de tipo customizadas ('tipo') ainda nao sao totalmente implementadas.\n" +
		"Fim da compilacao\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitNothingWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDiagnosticBag(testFile).EmitAllToWriter(&buf, FormatDetailed, nil))
	assert.Empty(t, buf.String())
}

func TestEmitDetailed(t *testing.T) {
	lines := []string{
		"declare x: inteiro",
		"declare x: real",
	}

	bag := NewDiagnosticBag(testFile)
	bag.Add(RedeclaredSymbol(testFile, span(2, 9, 10), span(1, 9, 10), "x"))

	var buf bytes.Buffer
	require.NoError(t, bag.EmitAllToWriter(&buf, FormatDetailed, lines))
	out := buf.String()

	assert.Contains(t, out, "erro[S0001]: identificador x ja declarado anteriormente")
	assert.Contains(t, out, "--> test.alg:2:9")
	assert.Contains(t, out, "2 | declare x: real")
	assert.Contains(t, out, "^ declarado novamente aqui")
	assert.Contains(t, out, "- declarado anteriormente aqui")
	assert.Contains(t, out, "= ajuda:")
	assert.True(t, strings.HasSuffix(out, Sentinel+"\n"))
	assert.NotContains(t, out, "\033[", "no colors unless enabled")
}

func TestEmitDetailedWithColor(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf, FormatDetailed).WithColor(true)
	emitter.SetSourceLines(testFile, []string{"x <- y"})

	require.NoError(t, emitter.EmitAll([]*Diagnostic{UndeclaredIdentifier(testFile, span(1, 6, 7), "y")}))
	assert.Contains(t, buf.String(), "\033[")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmitReportsWriteError(t *testing.T) {
	err := NewEmitter(failingWriter{}, FormatPlain).
		EmitAll([]*Diagnostic{UndeclaredIdentifier(testFile, span(1, 1, 2), "a")})
	assert.EqualError(t, err, "disk full")
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("detailed")
	require.NoError(t, err)
	assert.Equal(t, FormatDetailed, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, format)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}
