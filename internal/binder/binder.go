// Package binder walks a parsed source file and produces symbols and
// scope chains, generalizing the teacher's internal/symbols package
// (a Hindley-Milner type-inference symbol table keyed on trait
// dictionaries) to the declaration-space / merging model a structurally
// typed, class-and-interface-bearing language needs.
package binder

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/syntaxkind"
)

// Binder drives one bind pass over a single source file, assigning
// symbol ids in source order and threading a scope chain that mirrors
// the lexical nesting of the tree. One Binder binds exactly one file;
// a multi-file compilation runs one per file, grounded on the
// teacher's per-file-pipeline-stage shape in internal/pipeline.
type Binder struct {
	interner *intern.Interner
	diags    *diagnostic.Collection
	fileName string

	symbols []Symbol
	scope   *Scope

	// fileScope is retained on Binder so resolution helpers and tests
	// can reach the source-file symbol table without re-walking.
	fileScope *Scope

	// nodeScopes maps a scope-introducing construct (Block, function-
	// like, class/interface, type alias, catch clause, for/for-in/for-of
	// and switch statements, mapped and function/constructor types) to
	// the Scope it pushed, so a later phase (the checker) can resolve an
	// identifier by walking up from its containing construct through
	// Scope.Parent without re-running the bind pass. Mirrors the
	// container-carries-its-own-locals shape the teacher's own
	// single-pass `internal/symbols` assumes, adapted to a
	// pointer-keyed side table since ast.Node carries no back-pointer
	// to its own scope.
	nodeScopes map[*ast.Node]*Scope
}

// New returns a Binder ready to bind one file's tree.
func New(interner *intern.Interner, diags *diagnostic.Collection, fileName string) *Binder {
	return &Binder{interner: interner, diags: diags, fileName: fileName}
}

// Symbols returns every symbol produced by the last BindSourceFile
// call, indexed by SymbolID.
func (b *Binder) Symbols() []Symbol { return b.symbols }

// FileLocals returns the source-file scope's symbol table.
func (b *Binder) FileLocals() SymbolTable { return b.fileScope.Locals }

// FileScope returns the source-file scope produced by the last
// BindSourceFile call.
func (b *Binder) FileScope() *Scope { return b.fileScope }

// ScopeOf returns the Scope that construct n itself pushed (n must be
// one of the kinds that introduces a scope: Block, a function-like
// declaration/expression, a class/interface declaration, a type alias,
// a CatchClause, a for/for-in/for-of or switch statement, a mapped or
// function/constructor type), or nil if n
// introduces no scope of its own.
func (b *Binder) ScopeOf(n *ast.Node) *Scope { return b.nodeScopes[n] }

// BindSourceFile binds every statement of sf, returning the file-level
// scope. Declaration order within sf is preserved in symbol id
// assignment (spec §4.5: "within a file, symbol ids are assigned in
// source order").
func (b *Binder) BindSourceFile(sf *ast.SourceFile) *Scope {
	b.symbols = nil
	b.scope = newScope(nil, ScopeSourceFile)
	b.fileScope = b.scope
	b.nodeScopes = make(map[*ast.Node]*Scope)
	for _, stmt := range sf.Statements {
		b.bindStatement(stmt)
	}
	return b.fileScope
}

// --- symbol table plumbing ---------------------------------------------

// newSymbol allocates and returns the SymbolID of a fresh symbol; it
// does not link the symbol into any scope.
func (b *Binder) newSymbol(name intern.Handle, nameText string, flags SymbolFlags, decl *ast.Node) SymbolID {
	id := SymbolID(len(b.symbols))
	sym := Symbol{
		ID:       id,
		Name:     name,
		NameText: nameText,
		Flags:    flags,
		Parent:   NoSymbol,
	}
	sym.Declarations = append(sym.Declarations, decl)
	if flags.Intersects(SFValue) {
		sym.ValueDeclaration = decl
	}
	b.symbols = append(b.symbols, sym)
	return id
}

func (b *Binder) symbolAt(id SymbolID) *Symbol { return &b.symbols[id] }

// declareSymbol binds name in scope's locals, merging with an existing
// symbol when its flags are merge-compatible with the new declaration
// (spec §4.5's declaration-merging matrix), and reporting a duplicate-
// identifier diagnostic otherwise. It returns the resulting SymbolID.
func (b *Binder) declareSymbol(scope *Scope, name intern.Handle, nameText string, flags SymbolFlags, decl *ast.Node) SymbolID {
	if existingID, ok := scope.Locals[name]; ok {
		existing := b.symbolAt(existingID)
		if canMerge(existing.Flags, flags) {
			existing.Flags |= flags
			existing.Declarations = append(existing.Declarations, decl)
			if flags.Intersects(SFValue) && existing.ValueDeclaration == nil {
				existing.ValueDeclaration = decl
			}
			return existingID
		}
		// Function-scoped `var` redeclaring itself is always fine; any
		// other incompatible pair is left as two distinct symbols and
		// flagged, per the merging matrix's fallback.
		if !(flags.Has(SFFunctionScopedVariable) && existing.Flags.Has(SFFunctionScopedVariable)) {
			b.reportAt(decl, diagnostic.MsgCannotRedeclareBlockVariable, nameText)
		} else {
			existing.Declarations = append(existing.Declarations, decl)
			return existingID
		}
	}
	id := b.newSymbol(name, nameText, flags, decl)
	scope.Locals[name] = id
	return id
}

// declareInto is declareSymbol specialized for a class/interface/enum
// member table rather than a lexical scope, since members live in
// Symbol.Members instead of a Scope.
func (b *Binder) declareInto(table *SymbolTable, name intern.Handle, nameText string, flags SymbolFlags, decl *ast.Node) SymbolID {
	if existingID, ok := (*table)[name]; ok {
		existing := b.symbolAt(existingID)
		if canMerge(existing.Flags, flags) {
			existing.Flags |= flags
			existing.Declarations = append(existing.Declarations, decl)
			if flags.Intersects(SFValue) && existing.ValueDeclaration == nil {
				existing.ValueDeclaration = decl
			}
			return existingID
		}
		b.reportAt(decl, diagnostic.MsgDuplicateIdentifier, nameText)
	}
	id := b.newSymbol(name, nameText, flags, decl)
	(*table)[name] = id
	return id
}

func (b *Binder) reportAt(n *ast.Node, t diagnostic.Template, args ...string) {
	b.diags.Add(diagnostic.NewAt(b.fileName, n.Range, t, args...))
}

// declNameHandleAndText extracts the interned handle and decoded text
// from a declaration's name node, which is always an Identifier for
// every declaration kind the binder names (destructured bindings are
// walked element-by-element by bindBindingName instead).
func declNameHandleAndText(name *ast.Node) (intern.Handle, string) {
	if name == nil {
		return intern.Dummy, ""
	}
	return name.Name, name.Text
}

// --- scope push/pop helpers ---------------------------------------------

func (b *Binder) pushScope(kind ScopeKind, container SymbolID) *Scope {
	s := newScope(b.scope, kind)
	s.Container = container
	b.scope = s
	return s
}

func (b *Binder) popScope() {
	b.scope = b.scope.Parent
}

// pushScopeAt is pushScope plus recording the pushed scope against the
// construct node that introduced it, for later lookup via ScopeOf.
func (b *Binder) pushScopeAt(n *ast.Node, kind ScopeKind, container SymbolID) *Scope {
	s := b.pushScope(kind, container)
	if n != nil {
		b.nodeScopes[n] = s
	}
	return s
}

// --- statement dispatch ---------------------------------------------------

func (b *Binder) bindStatement(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.VariableStatement:
		b.bindVariableStatement(n)
	case syntaxkind.FunctionDeclaration:
		b.bindFunctionLike(n, SFFunction)
	case syntaxkind.ClassDeclaration:
		b.bindClassLike(n)
	case syntaxkind.InterfaceDeclaration:
		b.bindInterfaceDeclaration(n)
	case syntaxkind.TypeAliasDeclaration:
		b.bindSimpleTypeDeclaration(n, SFTypeAlias)
	case syntaxkind.EnumDeclaration:
		b.bindEnumDeclaration(n)
	case syntaxkind.ImportDeclaration:
		b.bindImportDeclaration(n)
	case syntaxkind.ExportDeclaration:
		b.bindExportDeclaration(n)
	case syntaxkind.ExportAssignment:
		b.bindExpression(n.Expr)
	case syntaxkind.Block:
		b.bindBlockBody(n)
	case syntaxkind.IfStatement:
		b.bindExpression(n.Expr)
		b.bindStatement(n.Body)
		b.bindStatement(n.ElseOrAlternate)
	case syntaxkind.DoStatement, syntaxkind.WhileStatement:
		b.bindExpression(n.Expr)
		b.bindStatement(n.Body)
	case syntaxkind.ForStatement:
		b.bindForStatement(n)
	case syntaxkind.ForInStatement, syntaxkind.ForOfStatement:
		b.bindForInOrOfStatement(n)
	case syntaxkind.ReturnStatement, syntaxkind.ThrowStatement:
		b.bindExpression(n.Expr)
	case syntaxkind.ExpressionStatement:
		b.bindExpression(n.Expr)
	case syntaxkind.WithStatement:
		b.bindExpression(n.Expr)
		b.bindStatement(n.Body)
	case syntaxkind.SwitchStatement:
		b.bindSwitchStatement(n)
	case syntaxkind.TryStatement:
		b.bindTryStatement(n)
	default:
		// Statements with no declarative content and no nested scope of
		// their own (break/continue/debugger/empty) need no binding.
	}
}

func (b *Binder) bindBlockBody(n *ast.Node) {
	b.pushScopeAt(n, ScopeBlock, NoSymbol)
	for _, stmt := range n.List {
		b.bindStatement(stmt)
	}
	b.popScope()
}

func (b *Binder) bindVariableStatement(n *ast.Node) {
	blockScoped := n.Flags.Has(syntaxkind.NFLet) || n.Flags.Has(syntaxkind.NFConst)
	target := b.scope
	flags := SFBlockScopedVariable
	if !blockScoped {
		target = b.scope.nearestFunctionOrFileScope()
		flags = SFFunctionScopedVariable
	}
	for _, decl := range n.List {
		b.bindBindingName(decl.DeclName, target, flags, decl)
		b.bindTypeNode(decl.Type)
		b.bindExpression(decl.Initializer)
	}
}

// bindBindingName declares every identifier a (possibly destructured)
// binding name introduces, walking array/object binding patterns
// recursively; each leaf identifier gets its own symbol in target.
func (b *Binder) bindBindingName(name *ast.Node, target *Scope, flags SymbolFlags, decl *ast.Node) {
	if name == nil {
		return
	}
	switch name.Kind {
	case syntaxkind.Identifier:
		handle, text := declNameHandleAndText(name)
		b.declareSymbol(target, handle, text, flags, decl)
	case syntaxkind.ArrayBindingPattern, syntaxkind.ObjectBindingPattern:
		for _, elem := range name.List {
			if elem.Kind != syntaxkind.BindingElement {
				continue // OmittedExpression hole in an array pattern
			}
			b.bindBindingName(elem.DeclName, target, flags, decl)
			b.bindExpression(elem.Initializer)
		}
	}
}

func (b *Binder) bindFunctionLike(n *ast.Node, selfFlags SymbolFlags) SymbolID {
	var id SymbolID = NoSymbol
	if n.DeclName != nil {
		handle, text := declNameHandleAndText(n.DeclName)
		id = b.declareSymbol(b.scope, handle, text, selfFlags, n)
	}
	b.pushScopeAt(n, ScopeFunction, id)
	b.bindTypeParameters(n.TypeParameters)
	for _, param := range n.List {
		b.bindParameter(param)
	}
	b.bindTypeNode(n.Type)
	if n.Body != nil {
		if n.Body.Kind == syntaxkind.Block {
			// The body's top-level statements bind directly into the
			// function scope rather than a nested block scope, per
			// spec §4.5: parameters and the function body share one
			// scope.
			for _, stmt := range n.Body.List {
				b.bindStatement(stmt)
			}
		} else {
			b.bindExpression(n.Body) // concise arrow body
		}
	}
	b.popScope()
	return id
}

func (b *Binder) bindParameter(n *ast.Node) {
	b.bindBindingName(n.DeclName, b.scope, SFFunctionScopedVariable, n)
	b.bindTypeNode(n.Type)
	b.bindExpression(n.Initializer)
}

func (b *Binder) bindTypeParameters(params []*ast.Node) {
	for _, tp := range params {
		handle, text := declNameHandleAndText(tp.DeclName)
		b.declareSymbol(b.scope, handle, text, SFTypeParameter, tp)
		b.bindTypeNode(tp.Type)
		b.bindTypeNode(tp.Initializer)
	}
}

func (b *Binder) bindClassLike(n *ast.Node) {
	var id SymbolID = NoSymbol
	if n.DeclName != nil {
		handle, text := declNameHandleAndText(n.DeclName)
		id = b.declareSymbol(b.scope, handle, text, SFClass, n)
	}
	b.pushScopeAt(n, ScopeClass, id)
	b.bindTypeParameters(n.TypeParameters)

	members := NewSymbolTable()
	for _, member := range n.List {
		b.bindClassMember(member, &members)
	}
	if id != NoSymbol {
		b.symbolAt(id).Members = &members
	}
	b.popScope()
}

func (b *Binder) bindClassMember(n *ast.Node, members *SymbolTable) {
	switch n.Kind {
	case syntaxkind.PropertyDeclaration:
		handle, text := declNameHandleAndText(n.DeclName)
		flags := SFProperty
		if n.Flags.Has(syntaxkind.NFOptional) {
			flags |= SFOptional
		}
		b.declareInto(members, handle, text, flags, n)
		b.bindTypeNode(n.Type)
		b.bindExpression(n.Initializer)
	case syntaxkind.MethodDeclaration, syntaxkind.GetAccessor, syntaxkind.SetAccessor, syntaxkind.Constructor:
		b.bindMethodLikeMember(n, members)
	case syntaxkind.IndexSignature:
		b.bindTypeNode(n.Left)
		b.bindTypeNode(n.Type)
	default:
		// extends/implements heritage clauses appear in n.List ahead of
		// the members and are type references, not declarations.
		b.bindTypeNode(n)
	}
}

func (b *Binder) bindMethodLikeMember(n *ast.Node, members *SymbolTable) {
	var flags SymbolFlags
	switch n.Kind {
	case syntaxkind.GetAccessor:
		flags = SFGetAccessor
	case syntaxkind.SetAccessor:
		flags = SFSetAccessor
	case syntaxkind.Constructor:
		flags = SFConstructor
	default:
		flags = SFMethod
	}
	var id SymbolID = NoSymbol
	if n.DeclName != nil {
		handle, text := declNameHandleAndText(n.DeclName)
		id = b.declareInto(members, handle, text, flags, n)
	}
	b.pushScopeAt(n, ScopeFunction, id)
	b.bindTypeParameters(n.TypeParameters)
	for _, param := range n.List {
		b.bindParameter(param)
	}
	b.bindTypeNode(n.Type)
	if n.Body != nil {
		for _, stmt := range n.Body.List {
			b.bindStatement(stmt)
		}
	}
	b.popScope()
}

func (b *Binder) bindInterfaceDeclaration(n *ast.Node) {
	handle, text := declNameHandleAndText(n.DeclName)
	id := b.declareSymbol(b.scope, handle, text, SFInterface, n)

	b.pushScopeAt(n, ScopeClass, id)
	b.bindTypeParameters(n.TypeParameters)

	sym := b.symbolAt(id)
	members := NewSymbolTable()
	if sym.Members != nil {
		members = *sym.Members
	}
	for _, member := range n.List {
		switch member.Kind {
		case syntaxkind.PropertySignature, syntaxkind.MethodSignature,
			syntaxkind.CallSignature, syntaxkind.ConstructSignature:
			b.bindInterfaceMember(member, &members)
		case syntaxkind.IndexSignature:
			b.bindTypeNode(member.Left)
			b.bindTypeNode(member.Type)
		default:
			b.bindTypeNode(member) // heritage type reference
		}
	}
	// Re-fetch: declaring members appends to b.symbols, which may move it.
	b.symbolAt(id).Members = &members
	b.popScope()
}

func (b *Binder) bindInterfaceMember(n *ast.Node, members *SymbolTable) {
	flags := SFProperty
	if n.Kind == syntaxkind.MethodSignature {
		flags = SFMethod
	}
	if n.DeclName != nil {
		handle, text := declNameHandleAndText(n.DeclName)
		b.declareInto(members, handle, text, flags, n)
	}
	b.bindTypeParameters(n.TypeParameters)
	for _, param := range n.List {
		b.bindTypeNode(param.Type)
	}
	b.bindTypeNode(n.Type)
}

func (b *Binder) bindSimpleTypeDeclaration(n *ast.Node, flags SymbolFlags) {
	handle, text := declNameHandleAndText(n.DeclName)
	id := b.declareSymbol(b.scope, handle, text, flags, n)
	b.pushScopeAt(n, ScopeBlock, id)
	b.bindTypeParameters(n.TypeParameters)
	b.bindTypeNode(n.Type)
	b.popScope()
}

func (b *Binder) bindEnumDeclaration(n *ast.Node) {
	flags := SFRegularEnum
	if n.Flags.Has(syntaxkind.NFConst) {
		flags = SFConstEnum
	}
	handle, text := declNameHandleAndText(n.DeclName)
	id := b.declareSymbol(b.scope, handle, text, flags, n)

	sym := b.symbolAt(id)
	members := NewSymbolTable()
	if sym.Members != nil {
		members = *sym.Members
	}
	for _, member := range n.List {
		mh, mt := declNameHandleAndText(member.DeclName)
		b.declareInto(&members, mh, mt, SFEnumMember, member)
		b.bindExpression(member.Initializer)
	}
	// Re-fetch: declaring members appends to b.symbols, which may move it.
	b.symbolAt(id).Members = &members
}

func (b *Binder) bindImportDeclaration(n *ast.Node) {
	for _, clause := range n.List {
		switch clause.Kind {
		case syntaxkind.ImportSpecifier, syntaxkind.NamespaceImport:
			localName := clause.DeclName
			if clause.Left != nil {
				localName = clause.Left
			}
			handle, text := declNameHandleAndText(localName)
			b.declareSymbol(b.fileScope, handle, text, SFAlias, clause)
		}
	}
}

func (b *Binder) bindExportDeclaration(n *ast.Node) {
	// Re-export specifiers reference names resolved in another file's
	// module graph, which is out of scope for a single-file bind pass;
	// only the clause's shape is walked so nothing underneath is
	// skipped silently.
	for _, spec := range n.List {
		_ = spec
	}
}

func (b *Binder) bindForStatement(n *ast.Node) {
	b.pushScopeAt(n, ScopeBlock, NoSymbol)
	if n.Initializer != nil {
		if n.Initializer.Kind == syntaxkind.VariableStatement {
			b.bindVariableStatement(n.Initializer)
		} else {
			b.bindExpression(n.Initializer)
		}
	}
	b.bindExpression(n.Expr)  // condition
	b.bindExpression(n.Right) // update
	b.bindStatement(n.Body)
	b.popScope()
}

func (b *Binder) bindForInOrOfStatement(n *ast.Node) {
	b.pushScopeAt(n, ScopeBlock, NoSymbol)
	if n.Initializer != nil {
		if n.Initializer.Kind == syntaxkind.VariableStatement {
			b.bindVariableStatement(n.Initializer)
		} else {
			b.bindExpression(n.Initializer)
		}
	}
	b.bindExpression(n.Right)
	b.bindStatement(n.Body)
	b.popScope()
}

func (b *Binder) bindSwitchStatement(n *ast.Node) {
	b.bindExpression(n.Expr)
	b.pushScopeAt(n, ScopeBlock, NoSymbol)
	for _, clause := range n.List {
		b.bindExpression(clause.Expr)
		for _, stmt := range clause.List {
			b.bindStatement(stmt)
		}
	}
	b.popScope()
}

func (b *Binder) bindTryStatement(n *ast.Node) {
	b.bindStatement(n.Body)
	if n.Left != nil { // CatchClause
		catch := n.Left
		b.pushScopeAt(catch, ScopeBlock, NoSymbol)
		if catch.DeclName != nil {
			b.bindBindingName(catch.DeclName, b.scope, SFBlockScopedVariable, catch)
			b.bindTypeNode(catch.Type)
		}
		if catch.Body != nil {
			for _, stmt := range catch.Body.List {
				b.bindStatement(stmt)
			}
		}
		b.popScope()
	}
	if n.Right != nil {
		b.bindStatement(n.Right)
	}
}

// --- expressions and types -------------------------------------------------
//
// The binder does not build symbols from expressions (name resolution
// against the scope chain is the checker's job, per spec §4.6), but it
// still walks into function/class expressions and arrow bodies nested
// inside expressions so their own locals get scoped correctly.

func (b *Binder) bindExpression(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.FunctionExpression:
		b.bindFunctionLike(n, 0)
	case syntaxkind.ArrowFunction:
		b.bindArrowFunction(n)
	case syntaxkind.ClassExpression:
		b.bindClassLike(n)
	default:
		b.bindExpression(n.Expr)
		b.bindExpression(n.Left)
		b.bindExpression(n.Right)
		b.bindExpression(n.ElseOrAlternate)
		for _, child := range n.List {
			b.bindExpression(child)
		}
	}
}

func (b *Binder) bindArrowFunction(n *ast.Node) {
	b.pushScopeAt(n, ScopeFunction, NoSymbol)
	b.bindTypeParameters(n.TypeParameters)
	for _, param := range n.List {
		b.bindParameter(param)
	}
	b.bindTypeNode(n.Type)
	if n.Body != nil {
		if n.Body.Kind == syntaxkind.Block {
			for _, stmt := range n.Body.List {
				b.bindStatement(stmt)
			}
		} else {
			b.bindExpression(n.Body)
		}
	}
	b.popScope()
}

// bindTypeNode walks a type annotation, pushing a scope for each nested
// function/constructor type (holding its type parameters) and mapped
// type (holding its key type parameter). Conditional types and `infer`
// declarations get no scope and no symbol of their own. It never
// declares a value symbol.
func (b *Binder) bindTypeNode(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.FunctionType, syntaxkind.ConstructorType:
		b.pushScopeAt(n, ScopeFunction, NoSymbol)
		b.bindTypeParameters(n.TypeParameters)
		for _, param := range n.List {
			b.bindTypeNode(param.Type)
		}
		b.bindTypeNode(n.Type)
		b.popScope()
	case syntaxkind.MappedType:
		b.pushScopeAt(n, ScopeBlock, NoSymbol)
		if n.DeclName != nil {
			handle, text := declNameHandleAndText(n.DeclName)
			b.declareSymbol(b.scope, handle, text, SFTypeParameter, n)
		}
		b.bindTypeNode(n.Left)
		b.bindTypeNode(n.Type)
		b.popScope()
	default:
		b.bindTypeNode(n.Left)
		b.bindTypeNode(n.Right)
		b.bindTypeNode(n.Type)
		b.bindTypeNode(n.ElseOrAlternate)
		for _, child := range n.List {
			b.bindTypeNode(child)
		}
		for _, tp := range n.TypeParameters {
			b.bindTypeNode(tp)
		}
	}
}
