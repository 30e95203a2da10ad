// Package checker performs semantic analysis over a bound source
// file: symbol resolution, type materialization, expression typing,
// assignability, overload resolution, and type inference. It
// generalizes the teacher's internal/analyzer (a Hindley-Milner
// inference pass built for a dynamically-typed scripting language,
// unifying type variables against trait dictionaries) into a
// structural, declaration-based checker that materializes annotations
// into typesystem.TypeId rather than inferring unannotated programs
// from the ground up.
package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

// Checker drives one type-checking pass over a single bound source
// file. Several files may share one TypeTable (a multi-file
// compilation materializes every file's declarations into the same
// arena, per spec §4.6: type identity is TypeId equality within one
// table) but each needs its own Checker since scope chains, resolved
// symbols, and per-node type caches are file-local.
type Checker struct {
	interner *intern.Interner
	diags    *diagnostic.Collection
	fileName string
	sf       *ast.SourceFile
	bind     *binder.Binder
	types    *typesystem.TypeTable

	// typeOfNode/symbolOfNode memoize per-node results so a node
	// visited through more than one path (an identifier both typed as
	// part of an expression and looked up for a later reference) is
	// only resolved/typed once.
	typeOfNode   map[*ast.Node]typesystem.TypeId
	symbolOfNode map[*ast.Node]binder.SymbolID

	// symbolTypes memoizes the TypeId materialized for a symbol's own
	// declaration (an interface's object type, a type alias's target,
	// a function's signature), so every TypeReference/call site that
	// names the same symbol shares one TypeId instead of
	// re-materializing it.
	symbolTypes map[binder.SymbolID]typesystem.TypeId

	// materializing guards against infinite recursion on a
	// self-referential or mutually-recursive type declaration
	// (`interface Tree { children: Tree[] }`): a symbol already being
	// materialized resolves to AnyTypeId for the duration, rather than
	// looping forever.
	materializing map[binder.SymbolID]bool
}

// New returns a Checker ready to check one file. bind must already
// have completed BindSourceFile for sf; types is the arena every
// materialized type is allocated into.
func New(interner *intern.Interner, diags *diagnostic.Collection, fileName string, types *typesystem.TypeTable, bind *binder.Binder) *Checker {
	return &Checker{
		interner:      interner,
		diags:         diags,
		fileName:      fileName,
		bind:          bind,
		types:         types,
		typeOfNode:    make(map[*ast.Node]typesystem.TypeId),
		symbolOfNode:  make(map[*ast.Node]binder.SymbolID),
		symbolTypes:   make(map[binder.SymbolID]typesystem.TypeId),
		materializing: make(map[binder.SymbolID]bool),
	}
}

// CheckSourceFile walks every top-level statement of sf, recording
// diagnostics into the collection passed to New. It never panics: a
// construct the checker cannot make sense of falls back to
// typesystem.AnyTypeId and checking continues (spec §7 — "a checker
// failure downgrades to any and keeps going" rather than aborting the
// whole file).
func (c *Checker) CheckSourceFile(sf *ast.SourceFile) {
	c.sf = sf
	for _, stmt := range sf.Statements {
		c.checkStatement(stmt)
	}
}

// TakeDiagnostics returns every diagnostic accumulated so far.
func (c *Checker) TakeDiagnostics() []diagnostic.Diagnostic {
	return c.diags.Items()
}

// TypeOf returns the type previously computed for n by CheckSourceFile,
// or NoType if n was never visited (e.g. a type annotation node, which
// materialize.go handles through a separate path).
func (c *Checker) TypeOf(n *ast.Node) typesystem.TypeId {
	if t, ok := c.typeOfNode[n]; ok {
		return t
	}
	return typesystem.NoType
}

func (c *Checker) reportAt(n *ast.Node, t diagnostic.Template, args ...string) {
	if n == nil {
		c.diags.Add(diagnostic.New(t, args...))
		return
	}
	c.diags.Add(diagnostic.NewAt(c.fileName, n.Range, t, args...))
}

// parentOf resolves n's NodeID-typed Parent link back to a *ast.Node,
// returning nil at the root or for a node the current file doesn't own.
func (c *Checker) parentOf(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	return c.sf.NodeAt(n.Parent)
}

// nameText decodes an Identifier node's text for diagnostic messages,
// tolerating a missing/nil name.
func nameText(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return n.Text
}
