package checker

import (
	"errors"
	"fmt"

	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/semantics"
)

func (c *Checker) checkExprs(exprs []ast.Expression) {
	for _, expr := range exprs {
		c.checkExpr(expr)
	}
}

// checkExpr computes the type of an expression. Each node is visited once;
// a violation is reported where it occurs and TypeInvalid flows upward
// without further reports.
func (c *Checker) checkExpr(expr ast.Expression) semantics.Type {
	switch n := expr.(type) {
	case *ast.BasicLit:
		if typ, ok := literalType(n); ok {
			return typ
		}
		return c.unknown(n, "literal "+n.Kind.String())
	case *ast.IdentifierExpr:
		return c.checkIdentifier(n)
	case *ast.ParenExpr:
		return c.checkExpr(n.X)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(n)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(n)
	case *ast.CallExpr:
		return c.checkCallExpr(n)
	case *ast.AddressExpr:
		if !c.checkIdentifier(n.X).IsValid() {
			return semantics.TypeInvalid
		}
		return semantics.TypePointer
	case *ast.DerefExpr:
		if c.checkIdentifier(n.X).IsValid() {
			c.diagnostics.Add(diagnostics.Unsupported(c.currentFile, n.Loc(), diagnostics.MsgPointerOpUnsupported))
		}
		return semantics.TypeInvalid
	case nil:
		// absent expression, nothing to check
		return semantics.TypeInvalid
	default:
		return c.unknown(n, fmt.Sprintf("%T", n))
	}
}

// unknown reports a node kind without a rule so the INVALID it yields is explained
func (c *Checker) unknown(node ast.Node, kind string) semantics.Type {
	c.diagnostics.Add(diagnostics.UnknownConstruct(c.currentFile, node.Loc(), kind))
	return semantics.TypeInvalid
}

func literalType(lit *ast.BasicLit) (semantics.Type, bool) {
	switch lit.Kind {
	case ast.INT:
		return semantics.TypeInteger, true
	case ast.REAL:
		return semantics.TypeReal, true
	case ast.STRING:
		return semantics.TypeLiteral, true
	case ast.BOOL:
		return semantics.TypeLogical, true
	default:
		return semantics.TypeInvalid, false
	}
}

// checkIdentifier looks a name up. A missing assignment target used inside
// its own value is reported only once per assignment.
func (c *Checker) checkIdentifier(ident *ast.IdentifierExpr) semantics.Type {
	c.checkExprs(ident.Dims)

	name := ident.Name()
	typ, err := c.symbols.TypeOf(name)
	if errors.Is(err, semantics.ErrSymbolNotFound) {
		if frame := c.targets.top(); frame != nil && frame.name == name {
			if frame.reported {
				return semantics.TypeInvalid
			}
			frame.reported = true
		}
		c.diagnostics.Add(diagnostics.UndeclaredIdentifier(c.currentFile, ident.Loc(), name))
		return semantics.TypeInvalid
	}
	return typ
}

func (c *Checker) checkUnaryExpr(expr *ast.UnaryExpr) semantics.Type {
	operand := c.checkExpr(expr.X)

	op, ok := semantics.UnaryOperator(expr.Op.Kind)
	if !ok {
		return semantics.TypeInvalid
	}

	result, ok := semantics.UnaryResult(op, operand)
	if !ok {
		c.diagnostics.Add(diagnostics.InvalidOperand(c.currentFile, expr.Op.Loc(), op.String(), operand.String()))
	}
	return result
}

func (c *Checker) checkBinaryExpr(expr *ast.BinaryExpr) semantics.Type {
	left := c.checkExpr(expr.X)
	right := c.checkExpr(expr.Y)

	op, ok := semantics.BinaryOperator(expr.Op.Kind)
	if !ok {
		return semantics.TypeInvalid
	}

	result, ok := semantics.BinaryResult(op, left, right)
	if !ok {
		c.diagnostics.Add(diagnostics.InvalidOperands(c.currentFile, expr.Op.Loc(), op.String(),
			left.String(), right.String()))
	}
	return result
}

// checkCallExpr checks the arguments; routine calls themselves are not supported
func (c *Checker) checkCallExpr(call *ast.CallExpr) semantics.Type {
	c.checkExprs(call.Args)

	name := call.Fun.Name
	if !c.symbols.Contains(name) {
		c.diagnostics.Add(diagnostics.UndeclaredIdentifier(c.currentFile, call.Fun.Loc(), name))
	} else {
		c.diagnostics.Add(diagnostics.UnsupportedCall(c.currentFile, call.Fun.Loc(), name))
	}
	return semantics.TypeInvalid
}
