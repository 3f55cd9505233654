package checker

import (
	"jander/internal/frontend/ast"
)

// Compound statements are walked for their expressions and nested bodies.
// Conditions are not required to be logico and loops are not analyzed.

func (c *Checker) checkIfStmt(stmt *ast.IfStmt) {
	c.checkExpr(stmt.Cond)
	c.CheckStmts(stmt.Then)
	c.CheckStmts(stmt.Else)
}

func (c *Checker) checkCaseStmt(stmt *ast.CaseStmt) {
	c.checkExpr(stmt.Selector)
	for _, clause := range stmt.Clauses {
		c.CheckStmts(clause.Body)
	}
	c.CheckStmts(stmt.Else)
}

// checkForStmt requires the control variable to be declared
func (c *Checker) checkForStmt(stmt *ast.ForStmt) {
	c.checkExpr(stmt.Var)
	c.checkExpr(stmt.From)
	c.checkExpr(stmt.To)
	c.CheckStmts(stmt.Body)
}

func (c *Checker) checkWhileStmt(stmt *ast.WhileStmt) {
	c.checkExpr(stmt.Cond)
	c.CheckStmts(stmt.Body)
}

func (c *Checker) checkRepeatStmt(stmt *ast.RepeatStmt) {
	c.CheckStmts(stmt.Body)
	c.checkExpr(stmt.Until)
}
