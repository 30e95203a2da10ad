package pipeline

import (
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/checker"
	"github.com/funvibe/rscript/internal/parser"
)

// ParserProcessor runs the scanner/parser, populating ctx.SourceFile —
// the direct generalization of the teacher's own ParserProcessor,
// which ran New(ctx.TokenStream, ctx).ParseProgram() and stashed the
// result on ctx.AstRoot.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *PipelineContext) *PipelineContext {
	ctx.SourceFile = parser.ParseSourceFile(ctx.Arena, ctx.Interner, ctx.Diags, ctx.FileName, ctx.Source)
	return ctx
}

// BinderProcessor resolves declarations into symbols and scopes,
// populating ctx.Binder. It runs even if the parser produced
// diagnostics, matching the pipeline's continue-on-error contract: a
// syntax error in one statement shouldn't suppress binding (and
// therefore checking) of the statements around it.
type BinderProcessor struct{}

func (BinderProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.SourceFile == nil {
		return ctx
	}
	ctx.Binder = binder.New(ctx.Interner, ctx.Diags, ctx.FileName)
	ctx.Binder.BindSourceFile(ctx.SourceFile)
	return ctx
}

// CheckerProcessor runs semantic analysis, populating ctx.Checker.
type CheckerProcessor struct{}

func (CheckerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.SourceFile == nil || ctx.Binder == nil {
		return ctx
	}
	ctx.Checker = checker.New(ctx.Interner, ctx.Diags, ctx.FileName, ctx.Types, ctx.Binder)
	ctx.Checker.CheckSourceFile(ctx.SourceFile)
	return ctx
}

// StandardPipeline returns the front end's default scan-parse-bind-
// check pipeline, in phase order.
func StandardPipeline() *Pipeline {
	return New(ParserProcessor{}, BinderProcessor{}, CheckerProcessor{})
}
