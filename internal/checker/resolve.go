package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
)

// scopeForNode finds the Scope that governs n: the Scope pushed by the
// nearest scope-introducing ancestor (Block, function-like, class/
// interface, catch clause, mapped/function type), walking up through
// Parent links since only the construct itself — never an arbitrary
// descendant — is recorded in the binder's node-to-scope table.
func (c *Checker) scopeForNode(n *ast.Node) *binder.Scope {
	for cur := n; cur != nil; cur = c.parentOf(cur) {
		if s := c.bind.ScopeOf(cur); s != nil {
			return s
		}
	}
	return c.bind.FileScope()
}

// resolveIdentifier walks the scope chain from n's innermost enclosing
// scope outward to the source-file scope (spec §4.6: "walk the scope
// chain from innermost outward"), returning the first symbol bound to
// n's name. Reports MsgCannotFindName and returns (NoSymbol, false) if
// no scope in the chain declares it.
func (c *Checker) resolveIdentifier(n *ast.Node) (binder.SymbolID, bool) {
	if id, ok := c.symbolOfNode[n]; ok {
		return id, id != binder.NoSymbol
	}
	for s := c.scopeForNode(n); s != nil; s = s.Parent {
		if id, ok := s.Locals[n.Name]; ok {
			c.symbolOfNode[n] = id
			return id, true
		}
	}
	c.symbolOfNode[n] = binder.NoSymbol
	c.reportAt(n, diagnostic.MsgCannotFindName, nameText(n))
	return binder.NoSymbol, false
}

// resolveEntityName resolves a (possibly dotted) QualifiedName/
// Identifier type-position reference to a symbol, following `.`
// through a namespace's exports one segment at a time.
func (c *Checker) resolveEntityName(n *ast.Node) (binder.SymbolID, bool) {
	if n == nil {
		return binder.NoSymbol, false
	}
	if n.Left != nil && n.Right != nil {
		// QualifiedName: resolve the left side, then look the right
		// side up in its exports/members.
		leftID, ok := c.resolveEntityName(n.Left)
		if !ok {
			return binder.NoSymbol, false
		}
		sym := c.bind.Symbols()[leftID]
		if sym.Exports != nil {
			if id, ok := (*sym.Exports)[n.Right.Name]; ok {
				return id, true
			}
		}
		c.reportAt(n.Right, diagnostic.MsgCannotFindName, nameText(n.Right))
		return binder.NoSymbol, false
	}
	return c.resolveIdentifier(n)
}
