package semantics

import (
	"jander/internal/frontend/lexer"
)

// Operator is an expression operator, independent of its spelling
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNot
	OpNeg
)

var operatorSpelling = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
	OpEq:  "=",
	OpNe:  "<>",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
	OpAnd: "e",
	OpOr:  "ou",
	OpNot: "nao",
	OpNeg: "-",
}

func (op Operator) String() string {
	if int(op) < len(operatorSpelling) {
		return operatorSpelling[op]
	}
	return "?"
}

var binaryOperators = map[lexer.TOKEN]Operator{
	lexer.PLUS_TOKEN:          OpAdd,
	lexer.MINUS_TOKEN:         OpSub,
	lexer.MUL_TOKEN:           OpMul,
	lexer.DIV_TOKEN:           OpDiv,
	lexer.MOD_TOKEN:           OpMod,
	lexer.EQUAL_TOKEN:         OpEq,
	lexer.NOT_EQUAL_TOKEN:     OpNe,
	lexer.LESS_TOKEN:          OpLt,
	lexer.LESS_EQUAL_TOKEN:    OpLe,
	lexer.GREATER_TOKEN:       OpGt,
	lexer.GREATER_EQUAL_TOKEN: OpGe,
	lexer.E_TOKEN:             OpAnd,
	lexer.OU_TOKEN:            OpOr,
}

// BinaryOperator maps an infix operator token to its operator
func BinaryOperator(kind lexer.TOKEN) (Operator, bool) {
	op, ok := binaryOperators[kind]
	return op, ok
}

// UnaryOperator maps a prefix operator token to its operator
func UnaryOperator(kind lexer.TOKEN) (Operator, bool) {
	switch kind {
	case lexer.MINUS_TOKEN:
		return OpNeg, true
	case lexer.NAO_TOKEN:
		return OpNot, true
	}
	return 0, false
}

func promote(l, r Type) Type {
	if l == TypeReal || r == TypeReal {
		return TypeReal
	}
	return TypeInteger
}

// BinaryResult computes the result type of l op r. The second result is
// false when the operands are not acceptable for op. An invalid operand
// yields TypeInvalid without a violation.
func BinaryResult(op Operator, l, r Type) (Type, bool) {
	if !l.IsValid() || !r.IsValid() {
		return TypeInvalid, true
	}

	numeric := l.IsNumeric() && r.IsNumeric()

	switch op {
	case OpAdd:
		if numeric {
			return promote(l, r), true
		}
		if l == TypeLiteral && r == TypeLiteral {
			return TypeLiteral, true
		}
	case OpSub, OpMul, OpDiv:
		if numeric {
			return promote(l, r), true
		}
	case OpMod:
		if l == TypeInteger && r == TypeInteger {
			return TypeInteger, true
		}
	case OpEq, OpNe:
		if numeric || l == r {
			return TypeLogical, true
		}
	case OpLt, OpLe, OpGt, OpGe:
		if numeric || (l == TypeLiteral && r == TypeLiteral) {
			return TypeLogical, true
		}
	case OpAnd, OpOr:
		if l == TypeLogical && r == TypeLogical {
			return TypeLogical, true
		}
	}
	return TypeInvalid, false
}

// UnaryResult computes the result type of op x, with the same conventions
// as BinaryResult.
func UnaryResult(op Operator, x Type) (Type, bool) {
	if !x.IsValid() {
		return TypeInvalid, true
	}

	switch op {
	case OpNeg:
		if x.IsNumeric() {
			return x, true
		}
	case OpNot:
		if x == TypeLogical {
			return TypeLogical, true
		}
	}
	return TypeInvalid, false
}
