package checker

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"jander/internal/diagnostics"
	"jander/internal/frontend/parser"
	"jander/internal/semantics"
	"jander/internal/semantics/collector"
	"jander/internal/semantics/resolver"
)

const testFile = "checker.alg"

type line struct {
	Line    int
	Message string
}

const header = `declare x: inteiro
declare y: inteiro
declare r: real
declare s: literal
declare b: logico
declare p: ^inteiro
algoritmo
`

// check runs declarations and statements of src, dropping the diagnostics
// the declarations produce
func check(t *testing.T, body string) []line {
	t.Helper()

	bag := diagnostics.NewDiagnosticBag(testFile)
	prog, err := parser.ParseSource(testFile, header+body+"\nfim_algoritmo", bag)
	require.NoError(t, err)

	symbols := semantics.NewSymbolTable()
	collector.New(testFile, symbols, bag, resolver.New(testFile, symbols, bag)).CollectDecls(prog.Decls)
	declDiags := bag.Len()

	New(testFile, symbols, bag).CheckStmts(prog.Body.Stmts)

	var out []line
	for _, d := range bag.Diagnostics()[declDiags:] {
		// report lines relative to the body
		out = append(out, line{d.Line() - 7, d.Message})
	}
	return out
}

func expect(t *testing.T, got, want []line) {
	t.Helper()
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestCheckAssignments(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []line
	}{
		{"same type", "x <- y", nil},
		{"integer widens to real", "r <- x * 2", nil},
		{"real into integer", "x <- 3.5", []line{{1, "atribuicao nao compativel para x"}}},
		{"literal into logical", `b <- "sim"`, []line{{1, "atribuicao nao compativel para b"}}},
		{"comparison into logical", "b <- x < r", nil},
		{"literal concatenation", `s <- s + "!"`, nil},
		{"undeclared target", "z <- 1", []line{{1, "identificador z nao declarado"}}},
		{"undeclared value", "x <- w", []line{{1, "identificador w nao declarado"}}},
		{"undeclared target in its own value", "z <- z + 1", []line{{1, "identificador z nao declarado"}}},
		{"target repeated across lines", "z <- z +\n  z", []line{{1, "identificador z nao declarado"}}},
		{"other names still reported", "z <- z + w", []line{
			{1, "identificador z nao declarado"},
			{1, "identificador w nao declarado"},
		}},
		{"each assignment has its own context", "z <- z\nz <- z", []line{
			{1, "identificador z nao declarado"},
			{2, "identificador z nao declarado"},
		}},
		{"operand error stops the assignment", `x <- s * 2`, []line{
			{1, "operandos incompativeis para o operador * (literal e inteiro)"},
		}},
		{"dimension expressions checked", "x[i] <- 1", []line{{1, "identificador i nao declarado"}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expect(t, check(t, test.body), test.want)
		})
	}
}

func TestCheckOperators(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []line
	}{
		{"modulo on reals", "x <- r % 2", []line{{1, "operandos incompativeis para o operador % (real e inteiro)"}}},
		{"logical on integers", "b <- x e y", []line{{1, "operandos incompativeis para o operador e (inteiro e inteiro)"}}},
		{"not on integer", "b <- nao x", []line{{1, "operando incompativel para o operador nao (inteiro)"}}},
		{"negate literal", "x <- -s", []line{{1, "operando incompativel para o operador - (literal)"}}},
		{"literal ordering", `b <- s < "m"`, nil},
		{"mixed equality", "b <- x = r", nil},
		{"nested error reported once", "x <- (s - 1) * 2 + y", []line{
			{1, "operandos incompativeis para o operador - (literal e inteiro)"},
		}},
		{"logical chain", "b <- x > 0 e nao (y = 2) ou verdadeiro", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expect(t, check(t, test.body), test.want)
		})
	}
}

func TestCheckRead(t *testing.T) {
	expect(t, check(t, "leia(x, k, r, m)"), []line{
		{1, "identificador k nao declarado"},
		{1, "identificador m nao declarado"},
	})
}

func TestCheckEachUseReported(t *testing.T) {
	expect(t, check(t, "leia(z, z)\nescreva(w, w)"), []line{
		{1, "identificador z nao declarado"},
		{1, "identificador z nao declarado"},
		{2, "identificador w nao declarado"},
		{2, "identificador w nao declarado"},
	})
}

func TestCheckOtherStatements(t *testing.T) {
	body := `escreva("valor: ", a)
se b entao
  escreva(c)
senao
  x <- 1
fim_se
para i <- 1 ate n faca
  escreva(x)
fim_para
enquanto x < lim faca
  x <- x + 1
fim_enquanto
faca
  y <- y - 1
ate y = fim
caso x seja
  1..3: escreva(d)
senao
  escreva(x)
fim_caso`

	expect(t, check(t, body), []line{
		{1, "identificador a nao declarado"},
		{3, "identificador c nao declarado"},
		{7, "identificador i nao declarado"},
		{7, "identificador n nao declarado"},
		{10, "identificador lim nao declarado"},
		{15, "identificador fim nao declarado"},
		{17, "identificador d nao declarado"},
	})
}

func TestCheckPointers(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []line
	}{
		{"address of declared", "p <- &x", nil},
		{"address of undeclared", "p <- &q", []line{{1, "identificador q nao declarado"}}},
		{"pointer into integer", "x <- &y", []line{{1, "atribuicao nao compativel para x"}}},
		{"dereference in expression", "x <- ^p", []line{{1, diagnostics.MsgPointerOpUnsupported}}},
		{"dereference of undeclared", "x <- ^q", []line{{1, "identificador q nao declarado"}}},
		{"store through pointer", "^p <- 3.5", nil},
		{"store through undeclared pointer", "^q <- 1", []line{{1, "identificador q nao declarado"}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expect(t, check(t, test.body), test.want)
		})
	}
}

func TestCheckCalls(t *testing.T) {
	expect(t, check(t, "x <- f(k)\nx <- y(1)"), []line{
		{1, "identificador k nao declarado"},
		{1, "identificador f nao declarado"},
		{2, "Chamadas de procedimento/funcao ainda nao sao totalmente suportadas: y"},
	})
}
