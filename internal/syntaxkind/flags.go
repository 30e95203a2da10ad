package syntaxkind

// TokenFlags records per-token scanning metadata that does not merit
// its own Kind (spec §4.3): numeric literal format, escape/line-break
// bookkeeping, and unterminated-literal recovery.
type TokenFlags uint32

const (
	TFNone TokenFlags = 0
	// PrecedingLineBreak is set on a token when a line terminator
	// appeared in the trivia immediately before it (drives automatic
	// semicolon insertion, spec §4.4).
	TFPrecedingLineBreak TokenFlags = 1 << iota
	// Unterminated marks a string/template/regex that ended (at EOF, or
	// for a string or regex at a line break) before its closing
	// delimiter. An unterminated comment is reported but not flagged.
	TFUnterminated
	// ContainsSeparator marks a numeric literal using '_' digit
	// separators.
	TFContainsSeparator
	// OctalLegacy marks a legacy (non-0o-prefixed) octal literal like
	// 0755.
	TFOctalLegacy
	// HexSpecifier marks a 0x/0X-prefixed numeric literal.
	TFHexSpecifier
	// BinarySpecifier marks a 0b/0B-prefixed numeric literal.
	TFBinarySpecifier
	// OctalSpecifier marks a 0o/0O-prefixed numeric literal.
	TFOctalSpecifier
	// ContainsInvalidEscape marks a string/template containing an
	// escape sequence the scanner could not decode.
	TFContainsInvalidEscape
	// IsIdentifierUpper names an Identifier token whose first rune is
	// an ASCII uppercase letter. The scanner never sets it and no phase
	// reads it.
	TFIsIdentifierUpper
)

// Has reports whether all bits in want are set in f.
func (f TokenFlags) Has(want TokenFlags) bool { return f&want == want }

// NodeFlags records per-node parse-time metadata that is not part of
// the node's shape: declaration-list kind, modifier presence recorded
// structurally rather than as separate Kinds, and recovery markers.
type NodeFlags uint32

const (
	NFNone NodeFlags = 0
	// Let marks a VariableDeclarationList declared with `let`.
	NFLet NodeFlags = 1 << iota
	// Const marks a VariableDeclarationList declared with `const`.
	NFConst
	// Missing marks a synthesized recovery node standing in for
	// something the parser expected but did not find (spec §4.4/§4.7:
	// "Missing… node carrying the expected kind").
	NFMissing
	// ContainsError marks a node that itself, or one of whose children,
	// triggered a diagnostic during parsing — used by the checker to
	// avoid cascading errors on already-broken syntax.
	NFContainsError
	// Ambient marks a declaration inside a `declare` context.
	NFAmbient
	// Static marks a class member declared `static`.
	NFStatic
	// Abstract marks a class/member declared `abstract`.
	NFAbstract
	// Readonly marks a property/parameter declared `readonly`.
	NFReadonly
	// Optional marks a `?`-suffixed parameter, property, or method.
	NFOptional
	// Async marks a function-like declaration declared `async`.
	NFAsync
	// Generator marks a function-like declaration using `function*`.
	NFGenerator
	// Export marks a top-level statement preceded by `export`.
	NFExport
	// Default marks an `export default` declaration.
	NFDefault
	// Public/Protected/Private record explicit accessibility modifiers.
	NFPublic
	NFProtected
	NFPrivate
	// Override marks a class member declared `override`.
	NFOverride
	// Rest marks a parameter declared with `...`.
	NFRest
	// Variadic marks a tuple element type using `...T[]` spread form.
	NFVariadic
	// Definite marks a variable declaration using the definite-assignment
	// assertion form (`let x!: T`).
	NFDefinite
)

// Has reports whether all bits in want are set in f.
func (f NodeFlags) Has(want NodeFlags) bool { return f&want == want }
