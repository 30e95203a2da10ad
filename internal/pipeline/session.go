package pipeline

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/rscript/internal/config"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

// Session is one compilation run, stamped with a UUID so concurrent
// diagnostics/log lines from several files compiled in parallel can be
// correlated back to the Program that produced them.
type Session struct {
	ID uuid.UUID
}

// NewSession returns a Session with a freshly generated ID.
func NewSession() Session {
	return Session{ID: uuid.New()}
}

// Program is the result of compiling every root file of one Session:
// one PipelineContext per file, all sharing the Session's interner and
// type table so a symbol or type materialized while checking one file
// compares correctly against a reference to it from another.
type Program struct {
	Session  Session
	Contexts map[string]*PipelineContext
}

// CompileProgram compiles every (fileName, source) pair concurrently
// through StandardPipeline, sharing one intern.Interner and one
// typesystem.TypeTable across all of them — spec §5's "multiple
// SourceFiles may be compiled in parallel, the only concurrency is
// optional" concurrency model. Each file still gets its own arena,
// diagnostic collection, binder, and checker; only the interner and
// type table are shared, matching the invariant that symbol/type
// identity is handle/TypeId equality within one compile.
//
// The interner and the type table are the shared mutable state every
// goroutine touches (Intern on every identifier it scans, AddType on
// every type it materializes), so each guards itself with its own lock
// rather than this function serializing access.
func CompileProgram(sources map[string]string, opts config.CompilerOptions) (*Program, error) {
	sess := NewSession()
	shared := intern.New()
	types := typesystem.NewTypeTable()

	prog := &Program{Session: sess, Contexts: make(map[string]*PipelineContext, len(sources))}
	pipe := StandardPipeline()

	var g errgroup.Group
	var mu sync.Mutex
	results := make(map[string]*PipelineContext, len(sources))
	for fileName, source := range sources {
		fileName, source := fileName, source
		g.Go(func() error {
			ctx := NewPipelineContext(fileName, source, opts, shared, types)
			ctx = pipe.Run(ctx)
			mu.Lock()
			results[fileName] = ctx
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	prog.Contexts = results
	return prog, nil
}
