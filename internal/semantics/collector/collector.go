package collector

import (
	"fmt"

	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/semantics"
	"jander/internal/semantics/resolver"
	"jander/internal/source"
)

// Collector walks declarations and fills the symbol table.
// Each identifier it processes ends up either declared or reported, never both.
type Collector struct {
	symbols     *semantics.SymbolTable
	diagnostics *diagnostics.DiagnosticBag
	resolver    *resolver.Resolver
	currentFile string
}

// New creates a new declaration collector
func New(filepath string, symbols *semantics.SymbolTable, diag *diagnostics.DiagnosticBag, res *resolver.Resolver) *Collector {
	return &Collector{
		symbols:     symbols,
		diagnostics: diag,
		resolver:    res,
		currentFile: filepath,
	}
}

// CollectDecls processes declarations in source order
func (c *Collector) CollectDecls(decls []ast.Decl) {
	for _, decl := range decls {
		c.collectDecl(decl)
	}
}

// collectDecl collects a single declaration
func (c *Collector) collectDecl(decl ast.Decl) {
	switch n := decl.(type) {
	case *ast.VarDecl:
		c.collectVarDecl(n)
	case *ast.ConstDecl:
		c.collectConstDecl(n)
	case *ast.TypeDecl:
		c.diagnostics.Add(diagnostics.Unsupported(c.currentFile, n.Keyword, diagnostics.MsgTypeDeclUnsupported))
	case *ast.GlobalDecl:
		c.diagnostics.Add(diagnostics.Unsupported(c.currentFile, n.Keyword, diagnostics.MsgGlobalDeclUnsupported))
	case nil:
	default:
		c.diagnostics.Add(diagnostics.UnknownConstruct(c.currentFile, n.Loc(), fmt.Sprintf("%T", n)))
	}
}

// collectVarDecl collects variable declarations: declare a, b: inteiro
func (c *Collector) collectVarDecl(decl *ast.VarDecl) {
	before := c.resolver.Reports()
	typ := c.resolver.Resolve(decl.Type, decl.Loc())
	explained := c.resolver.Reports() > before

	for _, ident := range decl.Names {
		name := ident.Name()

		if c.redeclared(name, ident.Loc()) {
			continue
		}

		if !typ.IsValid() {
			if !explained {
				c.diagnostics.Add(diagnostics.UndeclaredType(c.currentFile, ident.Loc(), typeName(decl.Type)))
			}
			continue
		}

		c.symbols.Declare(name, semantics.NewSymbol(name, semantics.SymbolVar, typ, ident))
	}
}

// collectConstDecl collects constant declarations: constante PI: real = 3.14
func (c *Collector) collectConstDecl(decl *ast.ConstDecl) {
	typ := c.resolver.ResolveBasic(decl.Type)

	name := decl.Name.Name
	if c.redeclared(name, decl.Name.Loc()) {
		return
	}
	if !typ.IsValid() {
		return
	}

	c.symbols.Declare(name, semantics.NewSymbol(name, semantics.SymbolConst, typ, decl.Name))
}

// redeclared reports name if it is already in the table
func (c *Collector) redeclared(name string, loc *source.Location) bool {
	prev, ok := c.symbols.Lookup(name)
	if !ok {
		return false
	}

	var prevLoc *source.Location
	if prev.Decl != nil {
		prevLoc = prev.Decl.Loc()
	}
	c.diagnostics.Add(diagnostics.RedeclaredSymbol(c.currentFile, loc, prevLoc, name))
	return true
}

// typeName spells a type expression the way it was written
func typeName(t ast.TypeExpr) string {
	switch n := t.(type) {
	case *ast.BasicType:
		return n.Name
	case *ast.NamedType:
		return n.Name
	case *ast.PointerType:
		return "^" + typeName(n.Base)
	case *ast.RecordType:
		return "registro"
	default:
		return "?"
	}
}
