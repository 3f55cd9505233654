package ast

import (
	"strings"

	"jander/internal/frontend/lexer"
	"jander/internal/source"
)

// IdentifierExpr is a variable reference: a dotted path with optional
// dimensions, e.g. ponto.x or v[i].
type IdentifierExpr struct {
	Parts []string
	Dims  []Expression
	source.Location
}

func (i *IdentifierExpr) INode()                {}
func (i *IdentifierExpr) Expr()                 {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// Name is the symbol table key: the dotted path without dimensions
func (i *IdentifierExpr) Name() string {
	return strings.Join(i.Parts, ".")
}

// NewIdentifier builds a single-part identifier at loc
func NewIdentifier(name string, loc *source.Location) *IdentifierExpr {
	id := &IdentifierExpr{Parts: strings.Split(name, ".")}
	if loc != nil {
		id.Location = *loc
	}
	return id
}

// ParenExpr is ( X )
type ParenExpr struct {
	X Expression
	source.Location
}

func (p *ParenExpr) INode()                {}
func (p *ParenExpr) Expr()                 {}
func (p *ParenExpr) Loc() *source.Location { return &p.Location }

// UnaryExpr is - X or nao X
type UnaryExpr struct {
	Op lexer.Token
	X  Expression
	source.Location
}

func (u *UnaryExpr) INode()                {}
func (u *UnaryExpr) Expr()                 {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// BinaryExpr is X Op Y
type BinaryExpr struct {
	X  Expression
	Op lexer.Token
	Y  Expression
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// CallExpr is name(args)
type CallExpr struct {
	Fun  *Ident
	Args []Expression
	source.Location
}

func (c *CallExpr) INode()                {}
func (c *CallExpr) Expr()                 {}
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// AddressExpr is &identifier
type AddressExpr struct {
	X *IdentifierExpr
	source.Location
}

func (a *AddressExpr) INode()                {}
func (a *AddressExpr) Expr()                 {}
func (a *AddressExpr) Loc() *source.Location { return &a.Location }

// DerefExpr is ^identifier
type DerefExpr struct {
	X *IdentifierExpr
	source.Location
}

func (d *DerefExpr) INode()                {}
func (d *DerefExpr) Expr()                 {}
func (d *DerefExpr) Loc() *source.Location { return &d.Location }
