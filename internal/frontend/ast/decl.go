package ast

import "jander/internal/source"

// VarDecl: declare a, b[10]: inteiro
type VarDecl struct {
	Names []*IdentifierExpr
	Type  TypeExpr
	source.Location
}

func (v *VarDecl) INode()                {}
func (v *VarDecl) Decl()                 {}
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// ConstDecl: constante PI: real = 3.14
type ConstDecl struct {
	Name  *Ident
	Type  *BasicType
	Value *BasicLit
	source.Location
}

func (c *ConstDecl) INode()                {}
func (c *ConstDecl) Decl()                 {}
func (c *ConstDecl) Loc() *source.Location { return &c.Location }

// TypeDecl: tipo ponto: registro ... fim_registro
type TypeDecl struct {
	Keyword *source.Location
	Name    *Ident
	Type    TypeExpr
	source.Location
}

func (t *TypeDecl) INode()                {}
func (t *TypeDecl) Decl()                 {}
func (t *TypeDecl) Loc() *source.Location { return &t.Location }

type RoutineKind int

const (
	PROCEDURE RoutineKind = iota
	FUNCTION
)

func (k RoutineKind) String() string {
	if k == FUNCTION {
		return "funcao"
	}
	return "procedimento"
}

// Param is one parameter group: var a, b: inteiro
type Param struct {
	ByRef bool
	Names []*IdentifierExpr
	Type  TypeExpr
	source.Location
}

func (p *Param) INode()                {}
func (p *Param) Loc() *source.Location { return &p.Location }

// GlobalDecl is a procedimento or funcao declaration
type GlobalDecl struct {
	Kind    RoutineKind
	Keyword *source.Location
	Name    *Ident
	Params  []*Param
	Result  TypeExpr // nil for procedures
	Decls   []Decl
	Stmts   []Statement
	source.Location
}

func (g *GlobalDecl) INode()                {}
func (g *GlobalDecl) Decl()                 {}
func (g *GlobalDecl) Loc() *source.Location { return &g.Location }
