package binder

// ScopeKind distinguishes the scope-boundary-introducing constructs
// spec §4.5 enumerates, since `var` and type-parameter binding target
// a specific ancestor scope rather than always the innermost one.
type ScopeKind int

const (
	ScopeSourceFile ScopeKind = iota
	ScopeFunction
	ScopeBlock
	ScopeClass
)

// Scope is one link in the singly-linked scope chain walked outward
// during name resolution, grounded on
// original_source/rscript_binder/src/scope.rs's Scope{locals, parent,
// container}.
type Scope struct {
	Locals    SymbolTable
	Parent    *Scope
	Container SymbolID
	Kind      ScopeKind
}

// newScope links a fresh scope of kind onto parent.
func newScope(parent *Scope, kind ScopeKind) *Scope {
	return &Scope{Locals: NewSymbolTable(), Parent: parent, Container: NoSymbol, Kind: kind}
}

// nearestFunctionOrFileScope walks outward to find the scope `var`
// binds in: the nearest enclosing function, or the source-file scope
// if none encloses it (spec §4.5: "var binds in the nearest
// function/module/source-file scope").
func (s *Scope) nearestFunctionOrFileScope() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind == ScopeFunction || cur.Kind == ScopeSourceFile {
			return cur
		}
	}
	return s
}
