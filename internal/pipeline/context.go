package pipeline

import (
	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/checker"
	"github.com/funvibe/rscript/internal/config"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

// PipelineContext carries one file through scan → parse → bind →
// check, the way the teacher's own PipelineContext (referenced but not
// retrieved into the pack) threads a token stream and AST root through
// ParserProcessor/EvaluatorProcessor. Every stage reads the fields the
// prior stage populated and adds its own; diagnostics accumulate in
// one shared Collection across every stage rather than being returned
// per-call, so a later stage's failure never hides an earlier one
// (spec: "the checker never aborts the rest of the file").
type PipelineContext struct {
	FileName string
	Source   string
	Options  config.CompilerOptions

	Arena    *arena.Arena
	Interner *intern.Interner
	Diags    *diagnostic.Collection
	Types    *typesystem.TypeTable

	SourceFile *ast.SourceFile
	Binder     *binder.Binder
	Checker    *checker.Checker
}

// NewPipelineContext builds a context ready for ParseProcessor: a
// fresh arena and diagnostic collection of its own, and in is the
// interner every file of one compile must share (spec §5: symbol
// names compare by intern.Handle equality, so two files with separate
// interners could never resolve a cross-file reference); types is
// likewise the table every file's materialized types are added to —
// pass nil for either to get a private one for a standalone compile.
func NewPipelineContext(fileName, source string, opts config.CompilerOptions, in *intern.Interner, types *typesystem.TypeTable) *PipelineContext {
	if in == nil {
		in = intern.New()
	}
	if types == nil {
		types = typesystem.NewTypeTable()
	}
	return &PipelineContext{
		FileName: fileName,
		Source:   source,
		Options:  opts,
		Arena:    arena.New(),
		Interner: in,
		Diags:    &diagnostic.Collection{},
		Types:    types,
	}
}

// Processor is one pipeline stage: it mutates and returns ctx, the
// same signature the teacher's ParserProcessor/EvaluatorProcessor
// implement against their own PipelineContext.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
