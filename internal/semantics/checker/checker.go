package checker

import (
	"fmt"

	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/semantics"
)

// targetFrame is the variable currently being assigned
type targetFrame struct {
	name     string
	reported bool
}

// targetStack holds at most one frame: assignments do not nest
type targetStack struct {
	frames []targetFrame
}

func (s *targetStack) push(name string) {
	s.frames = append(s.frames, targetFrame{name: name})
}

func (s *targetStack) top() *targetFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *targetStack) clear() {
	s.frames = s.frames[:0]
}

// Checker type checks statements and expressions against the symbol table
type Checker struct {
	symbols     *semantics.SymbolTable
	diagnostics *diagnostics.DiagnosticBag
	currentFile string
	targets     targetStack
}

// New creates a new type checker
func New(filepath string, symbols *semantics.SymbolTable, diag *diagnostics.DiagnosticBag) *Checker {
	return &Checker{
		symbols:     symbols,
		diagnostics: diag,
		currentFile: filepath,
	}
}

// CheckStmts checks statements in source order
func (c *Checker) CheckStmts(stmts []ast.Statement) {
	for _, stmt := range stmts {
		c.checkStmt(stmt)
	}
}

// checkStmt type-checks a single statement
func (c *Checker) checkStmt(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.AssignStmt:
		c.checkAssignStmt(n)
	case *ast.ReadStmt:
		c.checkReadStmt(n)
	case *ast.WriteStmt:
		c.checkExprs(n.Args)
	case *ast.CallStmt:
		c.checkExpr(n.Call)
	case *ast.ReturnStmt:
		c.checkExpr(n.Value)
	case *ast.IfStmt:
		c.checkIfStmt(n)
	case *ast.CaseStmt:
		c.checkCaseStmt(n)
	case *ast.ForStmt:
		c.checkForStmt(n)
	case *ast.WhileStmt:
		c.checkWhileStmt(n)
	case *ast.RepeatStmt:
		c.checkRepeatStmt(n)
	case nil:
	default:
		c.unknown(n, fmt.Sprintf("%T", n))
	}
}

// checkAssignStmt checks target <- value. The value is checked with the
// target on the stack; an invalid value ends the check so one root cause
// is reported once.
func (c *Checker) checkAssignStmt(stmt *ast.AssignStmt) {
	target := stmt.Target
	name := target.Name()

	c.checkExprs(target.Dims)

	c.targets.push(name)
	valueType := c.checkExpr(stmt.Value)
	c.targets.clear()

	if !valueType.IsValid() {
		return
	}

	targetType, err := c.symbols.TypeOf(name)
	if err != nil {
		c.diagnostics.Add(diagnostics.UndeclaredIdentifier(c.currentFile, target.Loc(), name))
		return
	}

	// ^p <- v stores through a pointer whose base type is not tracked
	if stmt.Deref {
		return
	}

	if !semantics.IsAssignable(targetType, valueType) {
		c.diagnostics.Add(diagnostics.IncompatibleAssignment(c.currentFile, target.Loc(), name,
			targetType.String(), valueType.String()))
	}
}

// checkReadStmt checks leia(a, b). Missing names are reported and the
// walk goes on.
func (c *Checker) checkReadStmt(stmt *ast.ReadStmt) {
	for _, target := range stmt.Targets {
		c.checkExprs(target.Dims)
		name := target.Name()
		if !c.symbols.Contains(name) {
			c.diagnostics.Add(diagnostics.UndeclaredIdentifier(c.currentFile, target.Loc(), name))
		}
	}
}
