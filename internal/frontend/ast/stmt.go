package ast

import "jander/internal/source"

// AssignStmt: [^]target <- value
type AssignStmt struct {
	Deref  bool
	Target *IdentifierExpr
	Value  Expression
	source.Location
}

func (a *AssignStmt) INode()                {}
func (a *AssignStmt) Stmt()                 {}
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// ReadStmt: leia(a, ^b)
type ReadStmt struct {
	Targets []*IdentifierExpr
	source.Location
}

func (r *ReadStmt) INode()                {}
func (r *ReadStmt) Stmt()                 {}
func (r *ReadStmt) Loc() *source.Location { return &r.Location }

// WriteStmt: escreva(expr, ...)
type WriteStmt struct {
	Args []Expression
	source.Location
}

func (w *WriteStmt) INode()                {}
func (w *WriteStmt) Stmt()                 {}
func (w *WriteStmt) Loc() *source.Location { return &w.Location }

// IfStmt: se cond entao ... senao ... fim_se
type IfStmt struct {
	Cond Expression
	Then []Statement
	Else []Statement
	source.Location
}

func (i *IfStmt) INode()                {}
func (i *IfStmt) Stmt()                 {}
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// CaseRange is a single selector value or an inclusive range lo..hi
type CaseRange struct {
	Lo *BasicLit
	Hi *BasicLit // nil when not a range
}

// CaseClause is one "ranges: commands" arm of a caso statement
type CaseClause struct {
	Ranges []CaseRange
	Body   []Statement
	source.Location
}

func (c *CaseClause) INode()                {}
func (c *CaseClause) Loc() *source.Location { return &c.Location }

// CaseStmt: caso expr seja clauses [senao ...] fim_caso
type CaseStmt struct {
	Selector Expression
	Clauses  []*CaseClause
	Else     []Statement
	source.Location
}

func (c *CaseStmt) INode()                {}
func (c *CaseStmt) Stmt()                 {}
func (c *CaseStmt) Loc() *source.Location { return &c.Location }

// ForStmt: para v <- from ate to faca ... fim_para
type ForStmt struct {
	Var  *IdentifierExpr
	From Expression
	To   Expression
	Body []Statement
	source.Location
}

func (f *ForStmt) INode()                {}
func (f *ForStmt) Stmt()                 {}
func (f *ForStmt) Loc() *source.Location { return &f.Location }

// WhileStmt: enquanto cond faca ... fim_enquanto
type WhileStmt struct {
	Cond Expression
	Body []Statement
	source.Location
}

func (w *WhileStmt) INode()                {}
func (w *WhileStmt) Stmt()                 {}
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// RepeatStmt: faca ... ate cond
type RepeatStmt struct {
	Body  []Statement
	Until Expression
	source.Location
}

func (r *RepeatStmt) INode()                {}
func (r *RepeatStmt) Stmt()                 {}
func (r *RepeatStmt) Loc() *source.Location { return &r.Location }

// CallStmt is a procedure call used as a command
type CallStmt struct {
	Call *CallExpr
	source.Location
}

func (c *CallStmt) INode()                {}
func (c *CallStmt) Stmt()                 {}
func (c *CallStmt) Loc() *source.Location { return &c.Location }

// ReturnStmt: retorne expr
type ReturnStmt struct {
	Value Expression
	source.Location
}

func (r *ReturnStmt) INode()                {}
func (r *ReturnStmt) Stmt()                 {}
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }
