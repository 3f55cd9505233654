package diagnostics

import (
	"fmt"

	"jander/internal/source"
)

// Fixed messages for constructs the analyzer recognizes but does not support
const (
	MsgTypeDeclUnsupported   = "Declaracoes de tipo customizadas ('tipo') ainda nao sao totalmente implementadas."
	MsgGlobalDeclUnsupported = "Declaracoes globais (procedimentos/funcoes) ainda nao sao totalmente suportadas por este analisador semantico."
	MsgPointerTypePartial    = "Tipos ponteiro (^) sao reconhecidos mas a semantica completa depende de melhorias. O tipo sera marcado como POINTER generico."
	MsgRecordTypeUnsupported = "Tipos registro ainda nao sao totalmente implementados. Assumido tipo INVALIDO."
	MsgUnknownTypeStructure  = "Estrutura de tipo desconhecida na declaracao. Assumido tipo INVALIDO."
	MsgPointerOpUnsupported  = "Operacoes com ponteiros (^) ainda nao sao totalmente suportadas."
)

// Lexer and parser

// LexicalError reports a token the lexer could not recognize
func LexicalError(filepath string, loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrLexical).
		WithPrimaryLabel(filepath, loc, "simbolo invalido")
}

// SyntaxError reports the first token the parser could not accept
func SyntaxError(filepath string, loc *source.Location, near string) *Diagnostic {
	return NewError(fmt.Sprintf("erro sintatico proximo a %s", near)).
		WithCode(ErrSyntax).
		WithPrimaryLabel(filepath, loc, "token inesperado")
}

// Declarations

// RedeclaredSymbol creates a diagnostic for an identifier declared twice
func RedeclaredSymbol(filepath string, newLoc, prevLoc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("identificador %s ja declarado anteriormente", name)).
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(filepath, newLoc, "declarado novamente aqui").
		WithSecondaryLabel(filepath, prevLoc, "declarado anteriormente aqui").
		WithHelp("use outro nome ou remova uma das declaracoes")
}

// UndeclaredIdentifier creates a diagnostic for a use before declaration
func UndeclaredIdentifier(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("identificador %s nao declarado", name)).
		WithCode(ErrUndeclaredIdentifier).
		WithPrimaryLabel(filepath, loc, "nao encontrado")
}

// UndeclaredType creates a diagnostic for a type name with no declaration
func UndeclaredType(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("tipo %s nao declarado", name)).
		WithCode(ErrUndeclaredType).
		WithPrimaryLabel(filepath, loc, "tipo nao encontrado")
}

// UnknownType creates a diagnostic for a constant whose type is not a basic keyword
func UnknownType(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("tipo %s desconhecido", name)).
		WithCode(ErrUnknownType).
		WithPrimaryLabel(filepath, loc, "esperado inteiro, real, literal ou logico")
}

// Unsupported creates a diagnostic for a recognized but unsupported construct
func Unsupported(filepath string, loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrUnsupportedFeature).
		WithPrimaryLabel(filepath, loc, "nao suportado")
}

// UnsupportedCall creates a diagnostic for a call to a declared routine
func UnsupportedCall(filepath string, loc *source.Location, name string) *Diagnostic {
	return Unsupported(filepath, loc,
		fmt.Sprintf("Chamadas de procedimento/funcao ainda nao sao totalmente suportadas: %s", name))
}

// UnknownConstruct reports a syntax tree node the analyzer has no rule for
func UnknownConstruct(filepath string, loc *source.Location, kind string) *Diagnostic {
	return NewError(fmt.Sprintf("Construcao nao reconhecida pelo analisador semantico: %s", kind)).
		WithCode(ErrUnknownConstruct).
		WithPrimaryLabel(filepath, loc, "sem regra de analise")
}

// Statements and expressions

// IncompatibleAssignment creates a diagnostic for a value not assignable to its target
func IncompatibleAssignment(filepath string, loc *source.Location, name, target, value string) *Diagnostic {
	return NewError(fmt.Sprintf("atribuicao nao compativel para %s", name)).
		WithCode(ErrIncompatibleAssignment).
		WithPrimaryLabel(filepath, loc, fmt.Sprintf("esperado %s, encontrado %s", target, value))
}

// InvalidOperands creates a diagnostic for a binary operator applied to incompatible types
func InvalidOperands(filepath string, loc *source.Location, op, left, right string) *Diagnostic {
	return NewError(fmt.Sprintf("operandos incompativeis para o operador %s (%s e %s)", op, left, right)).
		WithCode(ErrInvalidOperands).
		WithPrimaryLabel(filepath, loc, "operador aplicado aqui")
}

// InvalidOperand creates a diagnostic for a unary operator applied to an incompatible type
func InvalidOperand(filepath string, loc *source.Location, op, operand string) *Diagnostic {
	return NewError(fmt.Sprintf("operando incompativel para o operador %s (%s)", op, operand)).
		WithCode(ErrInvalidOperands).
		WithPrimaryLabel(filepath, loc, "operador aplicado aqui")
}
