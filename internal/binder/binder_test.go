package binder_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/parser"
)

func bindSource(t *testing.T, src string) (*ast.SourceFile, *binder.Binder, *intern.Interner, *diagnostic.Collection) {
	t.Helper()
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", src)
	if diags.HasErrors() {
		t.Fatalf("parse errored: %v", diags.Items())
	}
	b := binder.New(in, diags, "input.ts")
	b.BindSourceFile(sf)
	return sf, b, in, diags
}

func lookup(t *testing.T, b *binder.Binder, in *intern.Interner, name string) *binder.Symbol {
	t.Helper()
	for handle, id := range b.FileLocals() {
		if in.Resolve(handle) == name {
			sym := b.Symbols()[id]
			return &sym
		}
	}
	t.Fatalf("no top-level symbol named %q", name)
	return nil
}

func TestBinder_InterfaceMerging(t *testing.T) {
	_, b, in, diags := bindSource(t, `
interface A { x: number; }
interface A { y: string; }
`)
	if diags.HasErrors() {
		t.Fatalf("expected merge to succeed without diagnostics, got: %v", diags.Items())
	}

	sym := lookup(t, b, in, "A")
	if len(sym.Declarations) != 2 {
		t.Fatalf("expected 2 declarations merged into one symbol, got %d", len(sym.Declarations))
	}
	if sym.Members == nil {
		t.Fatalf("expected merged interface to carry members")
	}
	for _, want := range []string{"x", "y"} {
		if _, ok := (*sym.Members)[in.Intern(want)]; !ok {
			t.Errorf("expected member %q in merged interface", want)
		}
	}
}

func TestBinder_DuplicateBlockScopedVariableIsAnError(t *testing.T) {
	_, _, _, diags := bindSource(t, `
let x = 1;
let x = 2;
`)
	if !diags.HasErrors() {
		t.Fatalf("expected a redeclaration diagnostic")
	}
}

func TestBinder_RepeatedVarIsNotAnError(t *testing.T) {
	_, _, _, diags := bindSource(t, `
var x = 1;
var x = 2;
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics for repeated var, got: %v", diags.Items())
	}
}

func TestBinder_VarEscapesBlockToFunctionScope(t *testing.T) {
	_, b, in, diags := bindSource(t, `
function f() {
  if (true) {
    var inner = 1;
  }
  return inner;
}
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
	for handle := range b.FileLocals() {
		if in.Resolve(handle) == "inner" {
			t.Fatalf("expected %q to be scoped to f, not the source file", "inner")
		}
	}
}

func TestBinder_ParametersShareFunctionBodyScope(t *testing.T) {
	_, _, _, diags := bindSource(t, `
function add(a: number, b: number): number {
  return a + b;
}
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
}

func TestBinder_ClassMembersPopulateSymbolTable(t *testing.T) {
	_, b, in, diags := bindSource(t, `
class Point {
  x: number;
  y: number;
  constructor(x: number, y: number) {
    this.x = x;
    this.y = y;
  }
  length(): number {
    return this.x;
  }
}
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
	sym := lookup(t, b, in, "Point")
	if sym.Members == nil {
		t.Fatalf("expected class to carry a members table")
	}
	for _, want := range []string{"x", "y", "constructor", "length"} {
		if _, ok := (*sym.Members)[in.Intern(want)]; !ok {
			t.Errorf("expected class member %q", want)
		}
	}
}

func TestBinder_EnumMembersAreDistinctFromTopLevel(t *testing.T) {
	_, b, in, diags := bindSource(t, `enum Color { Red, Green, Blue }`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
	sym := lookup(t, b, in, "Color")
	if sym.Members == nil || len(*sym.Members) != 3 {
		t.Fatalf("expected 3 enum members, got %v", sym.Members)
	}
}

func TestBinder_CatchBindingIsBlockScoped(t *testing.T) {
	_, _, _, diags := bindSource(t, `
try {
  doSomething();
} catch (e) {
  report(e);
}
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
}

func TestBinder_TypeAliasAndFunctionShareADisjointName(t *testing.T) {
	// A type alias is pure type-space and a function is pure value-space,
	// so the two never collide even though they share a name.
	_, b, in, diags := bindSource(t, `
type Box = number;
function Box() {}
`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics for a type alias and function sharing a name, got: %v", diags.Items())
	}
	sym := lookup(t, b, in, "Box")
	if !sym.Flags.Has(binder.SFTypeAlias) || !sym.Flags.Has(binder.SFFunction) {
		t.Fatalf("expected one symbol spanning both SFTypeAlias and SFFunction, got flags %v", sym.Flags)
	}
}

func TestBinder_DuplicateFunctionDeclarationIsAnError(t *testing.T) {
	_, _, _, diags := bindSource(t, `
function f() {}
function f() {}
`)
	if !diags.HasErrors() {
		t.Fatalf("expected duplicate function declarations to be flagged")
	}
}

func TestBinder_InterfaceAndClassMerge(t *testing.T) {
	_, b, in, diags := bindSource(t, `
interface Shape { area(): number; }
class Shape { area(): number { return 0; } }
`)
	if diags.HasErrors() {
		t.Fatalf("expected interface/class merge to succeed, got: %v", diags.Items())
	}
	sym := lookup(t, b, in, "Shape")
	if len(sym.Declarations) != 2 {
		t.Fatalf("expected interface and class declarations to merge into one symbol, got %d", len(sym.Declarations))
	}
	if sym.ValueDeclaration == nil {
		t.Fatalf("expected merged symbol's value declaration to come from the class")
	}
}

func TestBinder_ImportIntroducesAnAliasSymbol(t *testing.T) {
	_, b, in, diags := bindSource(t, `import { a, b as c } from "mod";`)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", diags.Items())
	}
	if _, ok := b.FileLocals()[in.Intern("a")]; !ok {
		t.Errorf("expected import specifier %q to be bound", "a")
	}
	if _, ok := b.FileLocals()[in.Intern("c")]; !ok {
		t.Errorf("expected renamed import specifier %q to be bound", "c")
	}
}
