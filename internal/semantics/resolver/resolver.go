package resolver

import (
	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/semantics"
	"jander/internal/source"
)

// Resolver converts AST type expressions to semantic types.
// Every TypeInvalid it returns has been explained by one diagnostic.
type Resolver struct {
	symbols     *semantics.SymbolTable
	diagnostics *diagnostics.DiagnosticBag
	currentFile string
	reports     int
}

// New creates a new type resolver
func New(filepath string, symbols *semantics.SymbolTable, diag *diagnostics.DiagnosticBag) *Resolver {
	return &Resolver{
		symbols:     symbols,
		diagnostics: diag,
		currentFile: filepath,
	}
}

// Reports counts the diagnostics this resolver has issued so far
func (r *Resolver) Reports() int {
	return r.reports
}

func (r *Resolver) report(diag *diagnostics.Diagnostic) {
	r.reports++
	r.diagnostics.Add(diag)
}

// Resolve maps a type expression to a semantic type. site locates the
// declaration when the expression itself is missing.
func (r *Resolver) Resolve(t ast.TypeExpr, site *source.Location) semantics.Type {
	switch n := t.(type) {
	case *ast.BasicType:
		return r.resolveName(n.Name, n.Loc())

	case *ast.NamedType:
		return r.resolveName(n.Name, n.Loc())

	case *ast.PointerType:
		base := r.Resolve(n.Base, n.Loc())
		if !base.IsValid() {
			return semantics.TypeInvalid
		}
		r.report(diagnostics.Unsupported(r.currentFile, n.Caret, diagnostics.MsgPointerTypePartial))
		return semantics.TypePointer

	case *ast.RecordType:
		r.report(diagnostics.Unsupported(r.currentFile, n.Keyword, diagnostics.MsgRecordTypeUnsupported))
		return semantics.TypeInvalid

	case nil:
		r.report(diagnostics.Unsupported(r.currentFile, site, diagnostics.MsgUnknownTypeStructure))
		return semantics.TypeInvalid

	default:
		r.report(diagnostics.Unsupported(r.currentFile, t.Loc(), diagnostics.MsgUnknownTypeStructure))
		return semantics.TypeInvalid
	}
}

// resolveName handles a basic keyword or a user type identifier
func (r *Resolver) resolveName(name string, loc *source.Location) semantics.Type {
	if typ, ok := semantics.BasicType(name); ok {
		return typ
	}

	sym, ok := r.symbols.Lookup(name)
	if !ok {
		r.report(diagnostics.UndeclaredType(r.currentFile, loc, name))
		return semantics.TypeInvalid
	}
	return sym.Type
}

// ResolveBasic accepts only the basic type keywords, as constants do
func (r *Resolver) ResolveBasic(t *ast.BasicType) semantics.Type {
	if typ, ok := semantics.BasicType(t.Name); ok {
		return typ
	}
	r.report(diagnostics.UnknownType(r.currentFile, t.Loc(), t.Name))
	return semantics.TypeInvalid
}
