package checker

import (
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/parser"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/typesystem"
)

// typeAliasTypeNode parses src (expected to be a single `type Name = ...;`
// statement) and returns the alias's type node, ready for typeOfTypeNode.
func typeAliasTypeNode(t *testing.T, src string) *ast.Node {
	t.Helper()
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", src)
	if diags.HasErrors() {
		t.Fatalf("parse errored: %v", diags.Items())
	}
	if len(sf.Statements) != 1 || sf.Statements[0].Kind != syntaxkind.TypeAliasDeclaration {
		t.Fatalf("expected a single type alias declaration, got %#v", sf.Statements)
	}
	return sf.Statements[0].Type
}

func TestTypeOfTemplateLiteralTypeNode_CollapsesToUnionOfLiterals(t *testing.T) {
	typeNode := typeAliasTypeNode(t, `type Greeting = `+"`hello-${\"a\" | \"b\"}`"+`;`)

	diags := &diagnostic.Collection{}
	in := intern.New()
	b := binder.New(in, diags, "input.ts")
	types := typesystem.NewTypeTable()
	c := New(in, diags, "input.ts", types, b)

	got := c.typeOfTypeNode(typeNode)

	ty := types.Get(got)
	if !ty.Flags.Has(typesystem.TFUnion) {
		t.Fatalf("expected a union of string literals, got flags %v", ty.Flags)
	}
	if len(ty.Kind.Types) != 2 {
		t.Fatalf("expected 2 union members, got %d", len(ty.Kind.Types))
	}
	seen := make(map[string]bool)
	for _, m := range ty.Kind.Types {
		mt := types.Get(m)
		if !mt.Flags.Has(typesystem.TFStringLiteral) {
			t.Fatalf("expected every union member to be a string literal, got flags %v", mt.Flags)
		}
		seen[mt.Kind.StringValue] = true
	}
	if !seen["hello-a"] || !seen["hello-b"] {
		t.Fatalf("expected members {hello-a, hello-b}, got %v", seen)
	}
}

func TestTypeOfTemplateLiteralTypeNode_StaysOpenForNonLiteralConstituent(t *testing.T) {
	typeNode := typeAliasTypeNode(t, `type Greeting = `+"`hello-${string}`"+`;`)

	diags := &diagnostic.Collection{}
	in := intern.New()
	b := binder.New(in, diags, "input.ts")
	types := typesystem.NewTypeTable()
	c := New(in, diags, "input.ts", types, b)

	got := c.typeOfTypeNode(typeNode)

	ty := types.Get(got)
	if !ty.Flags.Has(typesystem.TFTemplateLiteral) {
		t.Fatalf("expected an open template literal type, got flags %v", ty.Flags)
	}
	if len(ty.Kind.Texts) != 2 || len(ty.Kind.Types) != 1 {
		t.Fatalf("expected 2 texts and 1 constituent, got texts=%v types=%v", ty.Kind.Texts, ty.Kind.Types)
	}
}
