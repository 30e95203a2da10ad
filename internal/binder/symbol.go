// Package binder walks a parsed source file and produces symbols and
// scope chains, generalizing the teacher's internal/symbols package
// (a Hindley-Milner type-inference symbol table keyed on trait
// dictionaries) to the declaration-space / merging model a structurally
// typed, class-and-interface-bearing language needs.
package binder

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/intern"
)

// SymbolID indexes a Symbol within one Binder's symbol table. Stable
// for the lifetime of a binding pass; assigned in source order within
// a file.
type SymbolID int32

// NoSymbol is the sentinel SymbolID (-1; 0 is a real symbol), used
// for absent optional links.
const NoSymbol SymbolID = -1

// SymbolFlags classifies what kind of declaration space(s) a symbol
// occupies (value, type, namespace) and its specific subkind, mirroring
// the widely-documented flag set a structural, declaration-merging
// checker uses to decide which declarations may merge.
type SymbolFlags uint32

const (
	SFFunctionScopedVariable SymbolFlags = 1 << iota
	SFBlockScopedVariable
	SFProperty
	SFEnumMember
	SFFunction
	SFClass
	SFInterface
	SFRegularEnum
	SFConstEnum
	SFValueModule
	SFNamespaceModule
	SFMethod
	SFConstructor
	SFGetAccessor
	SFSetAccessor
	SFTypeParameter
	SFTypeAlias
	SFAlias
	SFOptional
)

// Composite flag groups, named after the declaration spaces they span.
const (
	SFVariable = SFFunctionScopedVariable | SFBlockScopedVariable
	SFEnum     = SFRegularEnum | SFConstEnum
	SFAccessor = SFGetAccessor | SFSetAccessor
	SFValue    = SFVariable | SFProperty | SFEnumMember | SFFunction | SFClass |
		SFEnum | SFValueModule | SFMethod | SFAccessor | SFConstructor
	SFType      = SFClass | SFInterface | SFEnum | SFTypeParameter | SFTypeAlias
	SFNamespace = SFValueModule | SFNamespaceModule | SFEnum
)

// Has reports whether f has every bit of mask set.
func (f SymbolFlags) Has(mask SymbolFlags) bool { return f&mask == mask }

// Intersects reports whether f shares any bit with mask.
func (f SymbolFlags) Intersects(mask SymbolFlags) bool { return f&mask != 0 }

// Symbol represents one named entity in the program — a variable,
// function, class, interface, type alias, or similar — after
// declaration merging. Grounded on original_source's
// rscript_binder/src/symbol.rs Symbol struct, with members/exports
// lazily allocated only when a declaration populates them.
type Symbol struct {
	ID   SymbolID
	Name intern.Handle

	// NameText is the decoded name, kept alongside the handle so
	// diagnostics never need to round-trip through the interner.
	NameText string

	Flags SymbolFlags

	// Declarations is every AST declaration node that contributed to
	// this symbol, in source order.
	Declarations []*ast.Node

	// ValueDeclaration is the declaration that introduces this
	// symbol's runtime binding, if any (a pure type declaration like an
	// interface-only symbol leaves this nil).
	ValueDeclaration *ast.Node

	// Members holds a class/interface/enum's instance members,
	// populated from its declaration body.
	Members *SymbolTable

	// Exports holds a module/namespace's exported declarations.
	Exports *SymbolTable

	Parent SymbolID
}

// IsTypeAlias reports whether sym was declared with `type Name = ...`.
func (sym *Symbol) IsTypeAlias() bool { return sym.Flags.Has(SFTypeAlias) }

// SymbolTable maps an interned name to the symbol currently bound to
// it. Grounded on rscript_binder's SymbolTable (InternedString →
// SymbolId map); Go's map already gives the has/get/set/len operations
// that file hand-rolls over FxHashMap.
type SymbolTable map[intern.Handle]SymbolID

// NewSymbolTable returns an empty table.
func NewSymbolTable() SymbolTable { return make(SymbolTable) }
