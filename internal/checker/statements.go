package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
)

// checkStatement walks one statement, checking its nested expressions
// and declarations and recursing into any nested statement lists.
func (c *Checker) checkStatement(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.VariableStatement:
		c.checkVariableStatement(n)
	case syntaxkind.ExpressionStatement:
		c.checkExpression(n.Expr)
	case syntaxkind.Block:
		for _, stmt := range n.List {
			c.checkStatement(stmt)
		}
	case syntaxkind.IfStatement:
		c.checkExpression(n.Expr)
		c.checkStatement(n.Body)
		c.checkStatement(n.ElseOrAlternate)
	case syntaxkind.DoStatement, syntaxkind.WhileStatement:
		c.checkExpression(n.Expr)
		c.checkStatement(n.Body)
	case syntaxkind.ForStatement:
		if n.Initializer != nil {
			if n.Initializer.Kind == syntaxkind.VariableStatement {
				c.checkVariableStatement(n.Initializer)
			} else {
				c.checkExpression(n.Initializer)
			}
		}
		c.checkExpression(n.Expr)
		c.checkExpression(n.Right)
		c.checkStatement(n.Body)
	case syntaxkind.ForInStatement, syntaxkind.ForOfStatement:
		if n.Initializer != nil && n.Initializer.Kind == syntaxkind.VariableStatement {
			c.checkVariableStatement(n.Initializer)
		}
		c.checkExpression(n.Right)
		c.checkStatement(n.Body)
	case syntaxkind.ReturnStatement:
		if n.Expr != nil {
			c.checkExpression(n.Expr)
		}
	case syntaxkind.ThrowStatement:
		c.checkExpression(n.Expr)
	case syntaxkind.WithStatement:
		c.checkExpression(n.Expr)
		c.checkStatement(n.Body)
	case syntaxkind.SwitchStatement:
		c.checkExpression(n.Expr)
		for _, clause := range n.List {
			if clause.Expr != nil {
				c.checkExpression(clause.Expr)
			}
			for _, stmt := range clause.List {
				c.checkStatement(stmt)
			}
		}
	case syntaxkind.TryStatement:
		c.checkStatement(n.Body)
		if n.Left != nil && n.Left.Body != nil {
			for _, stmt := range n.Left.Body.List {
				c.checkStatement(stmt)
			}
		}
		if n.Right != nil {
			c.checkStatement(n.Right)
		}
	case syntaxkind.LabeledStatement:
		c.checkStatement(n.Body)

	case syntaxkind.FunctionDeclaration:
		c.checkFunctionLikeDeclaration(n)
	case syntaxkind.ClassDeclaration:
		c.checkClassDeclaration(n)
	case syntaxkind.InterfaceDeclaration, syntaxkind.TypeAliasDeclaration:
		// Materializing the symbol's type (triggered lazily, the first
		// time something references it) is all an interface/type-alias
		// declaration needs checked; it carries no executable body.
		if sym, ok := c.declaredSymbol(n); ok {
			c.typeOfSymbolType(sym)
		}
	case syntaxkind.EnumDeclaration:
		for _, member := range n.List {
			if member.Initializer != nil {
				c.checkExpression(member.Initializer)
			}
		}
	case syntaxkind.ExportAssignment:
		c.checkExpression(n.Expr)

	default:
		// Import/export declarations, break/continue/debugger/empty
		// statements carry no expression or nested statement to check.
	}
}

func (c *Checker) checkVariableStatement(n *ast.Node) {
	for _, decl := range n.List {
		c.checkVariableDeclaration(decl)
	}
}

func (c *Checker) checkVariableDeclaration(decl *ast.Node) {
	if decl.Initializer == nil {
		if decl.Type != nil {
			c.typeOfTypeNode(decl.Type)
		}
		return
	}
	initTy := c.checkExpression(decl.Initializer)
	if decl.Type == nil {
		return
	}
	declTy := c.typeOfTypeNode(decl.Type)
	if !c.isAssignableTo(initTy, declTy) {
		c.reportAt(decl.Initializer, diagnostic.MsgTypeNotAssignable, c.typeNameFor(initTy), c.typeNameFor(declTy))
	}
}

func (c *Checker) checkFunctionLikeDeclaration(n *ast.Node) {
	c.signatureOf(n) // materializes parameter/return types, surfacing any nested diagnostics
	if n.Body == nil {
		return
	}
	for _, stmt := range n.Body.List {
		c.checkStatement(stmt)
	}
}

func (c *Checker) checkClassDeclaration(n *ast.Node) {
	if sym, ok := c.declaredSymbol(n); ok {
		c.typeOfSymbolType(sym)
	}
	for _, member := range n.List {
		switch member.Kind {
		case syntaxkind.PropertyDeclaration:
			if member.Initializer != nil {
				initTy := c.checkExpression(member.Initializer)
				if member.Type != nil {
					declTy := c.typeOfTypeNode(member.Type)
					if !c.isAssignableTo(initTy, declTy) {
						c.reportAt(member.Initializer, diagnostic.MsgTypeNotAssignable, c.typeNameFor(initTy), c.typeNameFor(declTy))
					}
				}
			}
		case syntaxkind.MethodDeclaration, syntaxkind.GetAccessor, syntaxkind.SetAccessor, syntaxkind.Constructor:
			c.checkFunctionLikeDeclaration(member)
		}
	}
}

// declaredSymbol returns the SymbolID the binder assigned to n's own
// declaration, by resolving n's name in the scope n itself is declared
// into (its enclosing scope, not the scope n pushes for its own body).
func (c *Checker) declaredSymbol(n *ast.Node) (binder.SymbolID, bool) {
	if n.DeclName == nil {
		return binder.NoSymbol, false
	}
	scope := c.scopeForNode(c.parentOf(n))
	for s := scope; s != nil; s = s.Parent {
		if id, ok := s.Locals[n.DeclName.Name]; ok {
			return id, true
		}
	}
	return binder.NoSymbol, false
}
