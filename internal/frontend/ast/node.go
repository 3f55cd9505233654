package ast

import "jander/internal/source"

// Node is implemented by every syntax tree node
type Node interface {
	INode()
	Loc() *source.Location
}

// Decl is a declaration: local (declare, constante, tipo) or global
// (procedimento, funcao).
type Decl interface {
	Node
	Decl()
}

// Statement is an executable command in a body
type Statement interface {
	Node
	Stmt()
}

// Expression is any value-producing node
type Expression interface {
	Node
	Expr()
}

// TypeExpr is the syntactic form of a type in a declaration
type TypeExpr interface {
	Node
	TypeExpr()
}

// Program is the root node: global declarations followed by the
// algoritmo ... fim_algoritmo body.
type Program struct {
	FullPath string
	Decls    []Decl
	Body     *Body
	source.Location
}

func (p *Program) INode()                {}
func (p *Program) Loc() *source.Location { return &p.Location }

// Body holds local declarations followed by commands
type Body struct {
	Decls []Decl
	Stmts []Statement
	source.Location
}

func (b *Body) INode()                {}
func (b *Body) Loc() *source.Location { return &b.Location }

// Ident is a bare name token, used where only a name is allowed
type Ident struct {
	Name string
	source.Location
}

func (i *Ident) INode()                {}
func (i *Ident) Loc() *source.Location { return &i.Location }
