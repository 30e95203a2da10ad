// Package config holds the in-memory CompilerOptions bag every phase
// of the front end consults, generalizing the teacher's
// internal/config (a flat bag of scripting-language build/runtime
// constants — source extensions, built-in function/type names, a
// Version string) onto a statically-typed checker/emitter's options
// surface. There is no file loader here (spec: configuration is a
// host-process concern, not this module's); CompilerOptions is built
// by the caller and threaded through, just as the teacher's own
// IsTestMode/IsLSPMode package vars are toggled by the caller rather
// than read from disk.
package config

// EsVersion selects the target-language baseline the checker and
// emitter assume (which syntax forms are legal without polyfilling,
// what the emitter may downlevel).
type EsVersion int

const (
	ES5 EsVersion = iota
	ES2015
	ES2017
	ES2020
	ESNext
)

// ModuleKind selects the module system the emitter targets.
type ModuleKind int

const (
	ModuleNone ModuleKind = iota
	ModuleCommonJS
	ModuleESNext
	ModuleNodeNext
)

// JsxMode selects how the parser/checker treat JSX syntax; Off means
// a `<` at expression-start is always parsed as a comparison operator.
type JsxMode int

const (
	JsxOff JsxMode = iota
	JsxPreserve
	JsxReact
	JsxReactJSX
)

// CompilerOptions is the ambient options bag threaded through the
// scanner (which syntax extensions to accept), checker (target,
// strict-family flags), and emitter (module kind, jsx, declaration,
// source map) — every phase reads only the fields it needs, the same
// way the teacher's evaluator/checker packages read only the handful
// of config.* constants relevant to them rather than a phase-specific
// options type each.
type CompilerOptions struct {
	Target EsVersion
	Module ModuleKind
	Jsx    JsxMode

	// Strict-family flags (spec §6): Strict turns every other
	// strict-family flag on; a flag's own field can turn its check on
	// without Strict but cannot turn it off while Strict is set.
	Strict          bool
	StrictNullChecks bool
	NoImplicitAny   bool

	Declaration bool
	SourceMap   bool
}

// StrictNullChecksEnabled reports whether null/undefined are excluded
// from every type but their own and any union naming them explicitly,
// which holds when either Strict or StrictNullChecks is set; a false
// StrictNullChecks does not disable it while Strict is set.
func (o CompilerOptions) StrictNullChecksEnabled() bool {
	return o.Strict || o.StrictNullChecks
}

// NoImplicitAnyEnabled mirrors StrictNullChecksEnabled for the
// implicit-any diagnostic family.
func (o CompilerOptions) NoImplicitAnyEnabled() bool {
	return o.Strict || o.NoImplicitAny
}

// Default returns the options a bare invocation assumes: modern
// target, no module transformation, JSX off, strict mode on (matching
// this front end's "annotations are load-bearing" design rather than
// the historically loose default).
func Default() CompilerOptions {
	return CompilerOptions{
		Target: ESNext,
		Module: ModuleESNext,
		Jsx:    JsxOff,
		Strict: true,
	}
}

// SourceFileExtensions are the extensions the scanner's entry point
// recognizes as compilable input, carried over unchanged from the
// teacher's own config.SourceFileExtensions convention (a package-level
// slice rather than a function call) and retargeted to this front
// end's own extensions via internal/utils.Extension.
var SourceFileExtensions = []string{".ts", ".tsx", ".mts", ".cts"}
