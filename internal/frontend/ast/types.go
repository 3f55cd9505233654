package ast

import "jander/internal/source"

// BasicType is one of the basic type keywords (inteiro, real, literal, logico)
type BasicType struct {
	Name string
	source.Location
}

func (b *BasicType) INode()                {}
func (b *BasicType) TypeExpr()             {}
func (b *BasicType) Loc() *source.Location { return &b.Location }

// NamedType refers to a user declared type by name
type NamedType struct {
	Name string
	source.Location
}

func (n *NamedType) INode()                {}
func (n *NamedType) TypeExpr()             {}
func (n *NamedType) Loc() *source.Location { return &n.Location }

// PointerType is ^base
type PointerType struct {
	Caret *source.Location
	Base  TypeExpr
	source.Location
}

func (p *PointerType) INode()                {}
func (p *PointerType) TypeExpr()             {}
func (p *PointerType) Loc() *source.Location { return &p.Location }

// RecordType is registro <fields> fim_registro
type RecordType struct {
	Keyword *source.Location
	Fields  []*VarDecl
	source.Location
}

func (r *RecordType) INode()                {}
func (r *RecordType) TypeExpr()             {}
func (r *RecordType) Loc() *source.Location { return &r.Location }

// BadType stands in for a type expression that could not be built
type BadType struct {
	source.Location
}

func (b *BadType) INode()                {}
func (b *BadType) TypeExpr()             {}
func (b *BadType) Loc() *source.Location { return &b.Location }
