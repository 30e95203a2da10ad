package printer_test

import (
	"strings"
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/parser"
	"github.com/funvibe/rscript/internal/printer"
	"github.com/funvibe/rscript/internal/typesystem"
)

func TestEmitSourceFile_StripsVariableTypeAnnotation(t *testing.T) {
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", `let x: number = 1;`)
	if diags.HasErrors() {
		t.Fatalf("parse errored: %v", diags.Items())
	}

	out := printer.EmitSourceFile(sf, in)
	if strings.Contains(out, "number") {
		t.Fatalf("expected type annotation stripped, got: %q", out)
	}
	if !strings.Contains(out, "let x = 1;") {
		t.Fatalf("expected stripped declaration text, got: %q", out)
	}
}

func TestEmitSourceFile_DropsInterfaceAndTypeAliasDeclarations(t *testing.T) {
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", `
interface Point { x: number; y: number; }
type Id = string | number;
let p = 1;
`)
	if diags.HasErrors() {
		t.Fatalf("parse errored: %v", diags.Items())
	}

	out := printer.EmitSourceFile(sf, in)
	if strings.Contains(out, "interface") || strings.Contains(out, "type Id") {
		t.Fatalf("expected type-only declarations dropped, got: %q", out)
	}
	if !strings.Contains(out, "let p = 1;") {
		t.Fatalf("expected the value declaration preserved, got: %q", out)
	}
}

func TestEmitSourceFile_FunctionDeclarationDropsParameterAndReturnTypes(t *testing.T) {
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", `
function add(a: number, b: number): number {
  return a + b;
}
`)
	if diags.HasErrors() {
		t.Fatalf("parse errored: %v", diags.Items())
	}

	out := printer.EmitSourceFile(sf, in)
	if strings.Contains(out, ": number") {
		t.Fatalf("expected parameter/return annotations stripped, got: %q", out)
	}
	if !strings.Contains(out, "function add(a, b)") {
		t.Fatalf("expected stripped parameter list, got: %q", out)
	}
}

func TestPrintType_RendersUnionOfPrimitives(t *testing.T) {
	in := intern.New()
	types := typesystem.NewTypeTable()
	u := types.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.NumberTypeId})

	got := printer.PrintType(u, types, in)
	if got != "number | string" && got != "string | number" {
		t.Fatalf("expected a string/number union rendering, got: %q", got)
	}
}

func TestPrintType_RendersObjectMembersSortedByName(t *testing.T) {
	in := intern.New()
	types := typesystem.NewTypeTable()
	obj := types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags: typesystem.OFAnonymous,
		Members: []typesystem.ObjectMember{
			{Name: in.Intern("y"), Type: typesystem.NumberTypeId},
			{Name: in.Intern("x"), Type: typesystem.NumberTypeId},
		},
	})

	got := printer.PrintType(obj, types, in)
	if got != "{ x: number; y: number }" {
		t.Fatalf("expected members sorted x before y, got: %q", got)
	}
}
