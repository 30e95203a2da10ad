package pipeline_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/config"
	"github.com/funvibe/rscript/internal/pipeline"
)

func TestStandardPipeline_ReportsCannotFindName(t *testing.T) {
	ctx := pipeline.NewPipelineContext("input.ts", `let x = y;`, config.Default(), nil, nil)
	ctx = pipeline.StandardPipeline().Run(ctx)

	if !ctx.Diags.HasErrors() {
		t.Fatalf("expected an unresolved-name diagnostic")
	}
	found := false
	for _, d := range ctx.Diags.Items() {
		if d.Code == 2304 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TS2304, got: %v", ctx.Diags.Items())
	}
}

func TestStandardPipeline_CleanFileHasNoDiagnostics(t *testing.T) {
	ctx := pipeline.NewPipelineContext("input.ts", `let x: number = 1;`, config.Default(), nil, nil)
	ctx = pipeline.StandardPipeline().Run(ctx)

	if ctx.Diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", ctx.Diags.Items())
	}
}

func TestCompileProgram_SharesInternerAndTypeTableAcrossFiles(t *testing.T) {
	sources := map[string]string{
		"a.ts": `interface Point { x: number; y: number; }`,
		"b.ts": `let p: number = 1;`,
		"c.ts": `function add(a: number, b: number): number { return a + b; }`,
	}
	prog, err := pipeline.CompileProgram(sources, config.Default())
	if err != nil {
		t.Fatalf("CompileProgram errored: %v", err)
	}
	if len(prog.Contexts) != len(sources) {
		t.Fatalf("expected %d contexts, got %d", len(sources), len(prog.Contexts))
	}
	for name, ctx := range prog.Contexts {
		if ctx.Diags.HasErrors() {
			t.Errorf("%s: unexpected diagnostics: %v", name, ctx.Diags.Items())
		}
		if ctx.SourceFile == nil || ctx.Binder == nil || ctx.Checker == nil {
			t.Errorf("%s: expected every pipeline stage to have run", name)
		}
	}
}
