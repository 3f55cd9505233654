package semantics

import (
	"testing"

	"github.com/nalgeon/be"

	"jander/internal/frontend/lexer"
)

func TestIsAssignable(t *testing.T) {
	tests := []struct {
		target, value Type
		expected      bool
	}{
		{TypeInteger, TypeInteger, true},
		{TypeReal, TypeReal, true},
		{TypeLiteral, TypeLiteral, true},
		{TypeLogical, TypeLogical, true},
		{TypePointer, TypePointer, true},
		{TypeReal, TypeInteger, true},
		{TypeInteger, TypeReal, false},
		{TypeInteger, TypeLiteral, false},
		{TypeLiteral, TypeInteger, false},
		{TypeLogical, TypeInteger, false},
		{TypePointer, TypeInteger, false},
		{TypeInvalid, TypeLiteral, true},
		{TypeLogical, TypeInvalid, true},
		{TypeInvalid, TypeInvalid, true},
	}

	for _, test := range tests {
		t.Run(test.target.String()+"<-"+test.value.String(), func(t *testing.T) {
			be.Equal(t, IsAssignable(test.target, test.value), test.expected)
		})
	}
}

func TestBasicType(t *testing.T) {
	tests := []struct {
		keyword  string
		expected Type
		ok       bool
	}{
		{"inteiro", TypeInteger, true},
		{"real", TypeReal, true},
		{"literal", TypeLiteral, true},
		{"logico", TypeLogical, true},
		{"INTEIRO", TypeInteger, true},
		{"Logico", TypeLogical, true},
		{"ponteiro", TypeInvalid, false},
		{"t", TypeInvalid, false},
		{"", TypeInvalid, false},
	}

	for _, test := range tests {
		typ, ok := BasicType(test.keyword)
		be.Equal(t, ok, test.ok)
		be.Equal(t, typ, test.expected)
	}
}

func TestTypeNames(t *testing.T) {
	be.Equal(t, TypeInteger.String(), "inteiro")
	be.Equal(t, TypeLogical.String(), "logico")
	be.Equal(t, TypePointer.String(), "ponteiro")
	be.Equal(t, TypeInvalid.String(), "invalido")
	be.True(t, !TypeInvalid.IsValid())
	be.True(t, TypeReal.IsNumeric())
	be.True(t, !TypeLiteral.IsNumeric())
}

func TestBinaryResult(t *testing.T) {
	tests := []struct {
		op       Operator
		l, r     Type
		expected Type
		ok       bool
	}{
		{OpAdd, TypeInteger, TypeInteger, TypeInteger, true},
		{OpAdd, TypeInteger, TypeReal, TypeReal, true},
		{OpMul, TypeReal, TypeInteger, TypeReal, true},
		{OpDiv, TypeInteger, TypeInteger, TypeInteger, true},
		{OpAdd, TypeLiteral, TypeLiteral, TypeLiteral, true},
		{OpSub, TypeLiteral, TypeLiteral, TypeInvalid, false},
		{OpAdd, TypeLiteral, TypeInteger, TypeInvalid, false},
		{OpMul, TypeLogical, TypeInteger, TypeInvalid, false},
		{OpMod, TypeInteger, TypeInteger, TypeInteger, true},
		{OpMod, TypeReal, TypeInteger, TypeInvalid, false},
		{OpEq, TypeInteger, TypeReal, TypeLogical, true},
		{OpNe, TypeLiteral, TypeLiteral, TypeLogical, true},
		{OpEq, TypeLogical, TypeLogical, TypeLogical, true},
		{OpEq, TypeLiteral, TypeInteger, TypeInvalid, false},
		{OpLt, TypeInteger, TypeReal, TypeLogical, true},
		{OpGe, TypeLiteral, TypeLiteral, TypeLogical, true},
		{OpGt, TypeLogical, TypeLogical, TypeInvalid, false},
		{OpAnd, TypeLogical, TypeLogical, TypeLogical, true},
		{OpOr, TypeLogical, TypeInteger, TypeInvalid, false},
		// an invalid operand was already reported
		{OpAdd, TypeInvalid, TypeLiteral, TypeInvalid, true},
		{OpAnd, TypeInteger, TypeInvalid, TypeInvalid, true},
	}

	for _, test := range tests {
		typ, ok := BinaryResult(test.op, test.l, test.r)
		be.Equal(t, ok, test.ok)
		be.Equal(t, typ, test.expected)
	}
}

func TestUnaryResult(t *testing.T) {
	tests := []struct {
		op       Operator
		x        Type
		expected Type
		ok       bool
	}{
		{OpNeg, TypeInteger, TypeInteger, true},
		{OpNeg, TypeReal, TypeReal, true},
		{OpNeg, TypeLiteral, TypeInvalid, false},
		{OpNot, TypeLogical, TypeLogical, true},
		{OpNot, TypeInteger, TypeInvalid, false},
		{OpNot, TypeInvalid, TypeInvalid, true},
	}

	for _, test := range tests {
		typ, ok := UnaryResult(test.op, test.x)
		be.Equal(t, ok, test.ok)
		be.Equal(t, typ, test.expected)
	}
}

func TestOperatorTokens(t *testing.T) {
	op, ok := BinaryOperator(lexer.NOT_EQUAL_TOKEN)
	be.True(t, ok)
	be.Equal(t, op, OpNe)
	be.Equal(t, op.String(), "<>")

	op, ok = BinaryOperator(lexer.E_TOKEN)
	be.True(t, ok)
	be.Equal(t, op.String(), "e")

	_, ok = BinaryOperator(lexer.ASSIGN_TOKEN)
	be.True(t, !ok)

	op, ok = UnaryOperator(lexer.MINUS_TOKEN)
	be.True(t, ok)
	be.Equal(t, op, OpNeg)

	op, ok = UnaryOperator(lexer.NAO_TOKEN)
	be.True(t, ok)
	be.Equal(t, op.String(), "nao")

	_, ok = UnaryOperator(lexer.PLUS_TOKEN)
	be.True(t, !ok)
}
