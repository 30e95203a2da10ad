package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/parser"
	"github.com/funvibe/rscript/internal/syntaxkind"
)

// parse runs the full parser over input and returns the resulting
// SourceFile alongside whatever diagnostics it raised.
func parse(input string) (*ast.SourceFile, *diagnostic.Collection) {
	diags := &diagnostic.Collection{}
	a := arena.New()
	in := intern.New()
	sf := parser.ParseSourceFile(a, in, diags, "input.ts", input)
	return sf, diags
}

func expectNoErrors(t *testing.T, input string) *ast.SourceFile {
	t.Helper()
	sf, diags := parse(input)
	if diags.HasErrors() {
		var msgs []string
		for _, d := range diags.Items() {
			msgs = append(msgs, d.String())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return sf
}

func expectError(t *testing.T, input string) {
	t.Helper()
	_, diags := parse(input)
	if !diags.HasErrors() {
		t.Fatalf("expected at least one error, got none\ninput: %s", input)
	}
}

// TestParser_WellFormedPrograms checks that a representative sample of
// the grammar parses without diagnostics and produces the expected
// shape of top-level statements.
func TestParser_WellFormedPrograms(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		wantStmtKinds []syntaxkind.Kind
	}{
		{"let_with_type", "let x: number = 1;", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"const_inferred", "const name = \"ok\";", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"definite_assignment", "let x!: string;", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"function_decl", "function add(a: number, b: number): number { return a + b; }", []syntaxkind.Kind{syntaxkind.FunctionDeclaration}},
		{"arrow_assignment", "const f = (x: number): number => x + 1;", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"arrow_shorthand", "const f = x => x;", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"interface_decl", "interface Point { x: number; y: number; }", []syntaxkind.Kind{syntaxkind.InterfaceDeclaration}},
		{"interface_merge_first", "interface Box { value: number; }", []syntaxkind.Kind{syntaxkind.InterfaceDeclaration}},
		{"type_alias", "type ID = string | number;", []syntaxkind.Kind{syntaxkind.TypeAliasDeclaration}},
		{"type_used_as_value", "type = 5;", []syntaxkind.Kind{syntaxkind.ExpressionStatement}},
		{"class_decl", "class Animal implements Named { name: string; constructor(name: string) { this.name = name; } }", []syntaxkind.Kind{syntaxkind.ClassDeclaration}},
		{"enum_decl", "enum Color { Red, Green, Blue }", []syntaxkind.Kind{syntaxkind.EnumDeclaration}},
		{"for_of", "for (const x of items) { print(x); }", []syntaxkind.Kind{syntaxkind.ForOfStatement}},
		{"for_in", "for (const k in obj) { print(k); }", []syntaxkind.Kind{syntaxkind.ForInStatement}},
		{"mapped_type", "type Flags<T> = { [K in keyof T]: boolean };", []syntaxkind.Kind{syntaxkind.TypeAliasDeclaration}},
		{"conditional_type", "type NonNull<T> = T extends null ? never : T;", []syntaxkind.Kind{syntaxkind.TypeAliasDeclaration}},
		{"template_literal", "const s = `hello ${name}!`;", []syntaxkind.Kind{syntaxkind.VariableStatement}},
		{"import_named", `import { a, b as c } from "mod";`, []syntaxkind.Kind{syntaxkind.ImportDeclaration}},
		{"export_star", `export * from "mod";`, []syntaxkind.Kind{syntaxkind.ExportDeclaration}},
		{"export_default_expr", "export default 42;", []syntaxkind.Kind{syntaxkind.ExportAssignment}},
		{"paren_comparison", "const r = (a) < (b);", []syntaxkind.Kind{syntaxkind.VariableStatement}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sf := expectNoErrors(t, tc.input)
			if len(sf.Statements) != len(tc.wantStmtKinds) {
				t.Fatalf("got %d statements, want %d", len(sf.Statements), len(tc.wantStmtKinds))
			}
			for i, want := range tc.wantStmtKinds {
				if got := sf.Statements[i].Kind; got != want {
					t.Errorf("statement %d: got kind %s, want %s", i, got, want)
				}
			}
		})
	}
}

// TestParser_ArrowVsParenthesizedDisambiguation exercises the
// speculative arrow-head lookahead against inputs that look similar on
// their first token(s) but resolve to different grammar productions.
func TestParser_ArrowVsParenthesizedDisambiguation(t *testing.T) {
	cases := []string{
		"const f = (x: number) => x + 1;",
		"const r = (a) < (b);",
		"const g = (a, b) => a + b;",
		"const h = (a: number, b: number): number => { return a + b; };",
		"const one = (1 + 2);",
		"const shorthand = x => x * 2;",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			expectNoErrors(t, input)
		})
	}
}

// TestParser_AutomaticSemicolonInsertion checks that a missing `;`
// before a line break or `}` is not reported as an error.
func TestParser_AutomaticSemicolonInsertion(t *testing.T) {
	cases := []string{
		"let x = 1\nlet y = 2",
		"function f() {\n  return\n}",
		"const a = 1\nconst b = 2",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			expectNoErrors(t, input)
		})
	}
}

// TestParser_RecoversWithDiagnostic checks malformed inputs still
// produce a complete, non-panicking parse with at least one
// diagnostic, per the "never fail outright" parsing contract.
func TestParser_RecoversWithDiagnostic(t *testing.T) {
	cases := []string{
		"let x: = 1;",
		"function () {}",
		"interface { x: number; }",
		"const x = ;",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			expectError(t, input)
		})
	}
}

// TestParser_SpeculationDoesNotLeakDiagnostics ensures a rolled-back
// speculative parse (an arrow head that turns out to be a
// parenthesized comparison) never leaves a phantom diagnostic behind.
func TestParser_SpeculationDoesNotLeakDiagnostics(t *testing.T) {
	expectNoErrors(t, "const cmp = (a) < (b) && (c) > (d);")
}
