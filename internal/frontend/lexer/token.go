package lexer

import "jander/internal/source"

type TOKEN string

const (
	EOF_TOKEN        TOKEN = "EOF"
	ERROR_TOKEN      TOKEN = "ERROR"
	IDENTIFIER_TOKEN TOKEN = "IDENT"
	NUM_INT_TOKEN    TOKEN = "NUM_INT"
	NUM_REAL_TOKEN   TOKEN = "NUM_REAL"
	STRING_TOKEN     TOKEN = "CADEIA"

	// Keywords. The kind is spelled like the keyword itself.
	ALGORITMO_TOKEN        TOKEN = "algoritmo"
	FIM_ALGORITMO_TOKEN    TOKEN = "fim_algoritmo"
	DECLARE_TOKEN          TOKEN = "declare"
	CONSTANTE_TOKEN        TOKEN = "constante"
	TIPO_TOKEN             TOKEN = "tipo"
	LITERAL_TOKEN          TOKEN = "literal"
	INTEIRO_TOKEN          TOKEN = "inteiro"
	REAL_TOKEN             TOKEN = "real"
	LOGICO_TOKEN           TOKEN = "logico"
	VERDADEIRO_TOKEN       TOKEN = "verdadeiro"
	FALSO_TOKEN            TOKEN = "falso"
	REGISTRO_TOKEN         TOKEN = "registro"
	FIM_REGISTRO_TOKEN     TOKEN = "fim_registro"
	PROCEDIMENTO_TOKEN     TOKEN = "procedimento"
	FIM_PROCEDIMENTO_TOKEN TOKEN = "fim_procedimento"
	FUNCAO_TOKEN           TOKEN = "funcao"
	FIM_FUNCAO_TOKEN       TOKEN = "fim_funcao"
	VAR_TOKEN              TOKEN = "var"
	LEIA_TOKEN             TOKEN = "leia"
	ESCREVA_TOKEN          TOKEN = "escreva"
	SE_TOKEN               TOKEN = "se"
	ENTAO_TOKEN            TOKEN = "entao"
	SENAO_TOKEN            TOKEN = "senao"
	FIM_SE_TOKEN           TOKEN = "fim_se"
	CASO_TOKEN             TOKEN = "caso"
	SEJA_TOKEN             TOKEN = "seja"
	FIM_CASO_TOKEN         TOKEN = "fim_caso"
	PARA_TOKEN             TOKEN = "para"
	ATE_TOKEN              TOKEN = "ate"
	FACA_TOKEN             TOKEN = "faca"
	FIM_PARA_TOKEN         TOKEN = "fim_para"
	ENQUANTO_TOKEN         TOKEN = "enquanto"
	FIM_ENQUANTO_TOKEN     TOKEN = "fim_enquanto"
	RETORNE_TOKEN          TOKEN = "retorne"
	E_TOKEN                TOKEN = "e"
	OU_TOKEN               TOKEN = "ou"
	NAO_TOKEN              TOKEN = "nao"

	// Punctuation and operators
	COLON_TOKEN         TOKEN = ":"
	COMMA_TOKEN         TOKEN = ","
	OPEN_PAREN          TOKEN = "("
	CLOSE_PAREN         TOKEN = ")"
	OPEN_BRACKET        TOKEN = "["
	CLOSE_BRACKET       TOKEN = "]"
	DOT_TOKEN           TOKEN = "."
	RANGE_TOKEN         TOKEN = ".."
	CARET_TOKEN         TOKEN = "^"
	AMPERSAND_TOKEN     TOKEN = "&"
	ASSIGN_TOKEN        TOKEN = "<-"
	EQUAL_TOKEN         TOKEN = "="
	NOT_EQUAL_TOKEN     TOKEN = "<>"
	LESS_TOKEN          TOKEN = "<"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_TOKEN       TOKEN = ">"
	GREATER_EQUAL_TOKEN TOKEN = ">="
	PLUS_TOKEN          TOKEN = "+"
	MINUS_TOKEN         TOKEN = "-"
	MUL_TOKEN           TOKEN = "*"
	DIV_TOKEN           TOKEN = "/"
	MOD_TOKEN           TOKEN = "%"
)

var keywords = map[string]TOKEN{
	"algoritmo":        ALGORITMO_TOKEN,
	"fim_algoritmo":    FIM_ALGORITMO_TOKEN,
	"declare":          DECLARE_TOKEN,
	"constante":        CONSTANTE_TOKEN,
	"tipo":             TIPO_TOKEN,
	"literal":          LITERAL_TOKEN,
	"inteiro":          INTEIRO_TOKEN,
	"real":             REAL_TOKEN,
	"logico":           LOGICO_TOKEN,
	"verdadeiro":       VERDADEIRO_TOKEN,
	"falso":            FALSO_TOKEN,
	"registro":         REGISTRO_TOKEN,
	"fim_registro":     FIM_REGISTRO_TOKEN,
	"procedimento":     PROCEDIMENTO_TOKEN,
	"fim_procedimento": FIM_PROCEDIMENTO_TOKEN,
	"funcao":           FUNCAO_TOKEN,
	"fim_funcao":       FIM_FUNCAO_TOKEN,
	"var":              VAR_TOKEN,
	"leia":             LEIA_TOKEN,
	"escreva":          ESCREVA_TOKEN,
	"se":               SE_TOKEN,
	"entao":            ENTAO_TOKEN,
	"senao":            SENAO_TOKEN,
	"fim_se":           FIM_SE_TOKEN,
	"caso":             CASO_TOKEN,
	"seja":             SEJA_TOKEN,
	"fim_caso":         FIM_CASO_TOKEN,
	"para":             PARA_TOKEN,
	"ate":              ATE_TOKEN,
	"faca":             FACA_TOKEN,
	"fim_para":         FIM_PARA_TOKEN,
	"enquanto":         ENQUANTO_TOKEN,
	"fim_enquanto":     FIM_ENQUANTO_TOKEN,
	"retorne":          RETORNE_TOKEN,
	"e":                E_TOKEN,
	"ou":               OU_TOKEN,
	"nao":              NAO_TOKEN,
}

// LookupKeyword reports whether word is a reserved word and returns its kind.
func LookupKeyword(word string) (TOKEN, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// IsBasicType reports whether kind is one of the four basic type keywords
func IsBasicType(kind TOKEN) bool {
	switch kind {
	case LITERAL_TOKEN, INTEIRO_TOKEN, REAL_TOKEN, LOGICO_TOKEN:
		return true
	}
	return false
}

// Token is a lexeme with its kind and span. For ERROR tokens Value holds
// the lexical error message.
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

// Loc returns the token span as a location
func (t Token) Loc() *source.Location {
	return source.NewLocation(&t.Start, &t.End)
}
