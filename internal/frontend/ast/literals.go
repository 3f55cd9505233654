package ast

import "jander/internal/source"

type LiteralKind int

const (
	INT LiteralKind = iota
	REAL
	STRING
	BOOL
)

func (k LiteralKind) String() string {
	switch k {
	case INT:
		return "NUM_INT"
	case REAL:
		return "NUM_REAL"
	case STRING:
		return "CADEIA"
	case BOOL:
		return "logico"
	default:
		return "unknown"
	}
}

// BasicLit represents a literal of basic type (integer, real, string, logical)
type BasicLit struct {
	Kind  LiteralKind
	Value string // the literal value as written, quotes included for strings
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }
