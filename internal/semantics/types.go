package semantics

import (
	"golang.org/x/text/cases"
)

// Type is a resolved semantic type. The set is closed.
type Type int

const (
	// TypeInvalid marks a type that could not be determined. It is assignable
	// to and from everything so one root cause reports once.
	TypeInvalid Type = iota
	TypeInteger
	TypeReal
	TypeLiteral
	TypeLogical
	TypePointer
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "inteiro"
	case TypeReal:
		return "real"
	case TypeLiteral:
		return "literal"
	case TypeLogical:
		return "logico"
	case TypePointer:
		return "ponteiro"
	default:
		return "invalido"
	}
}

func (t Type) IsValid() bool {
	return t != TypeInvalid
}

func (t Type) IsNumeric() bool {
	return t == TypeInteger || t == TypeReal
}

// IsAssignable reports whether a value of type value may be stored in a
// variable of type target. Integers widen to reals, never the reverse.
func IsAssignable(target, value Type) bool {
	switch {
	case target == TypeInvalid || value == TypeInvalid:
		return true
	case target == value:
		return true
	case target == TypeReal && value == TypeInteger:
		return true
	default:
		return false
	}
}

var basicTypes = map[string]Type{
	"inteiro": TypeInteger,
	"real":    TypeReal,
	"literal": TypeLiteral,
	"logico":  TypeLogical,
}

// BasicType maps a basic type keyword to its type, ignoring case.
func BasicType(keyword string) (Type, bool) {
	// a Caser keeps state, so one per call
	t, ok := basicTypes[cases.Fold().String(keyword)]
	return t, ok
}
