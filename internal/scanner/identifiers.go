package scanner

import "github.com/funvibe/rscript/internal/syntaxkind"

// keywords maps reserved-word and contextual-keyword spellings to
// their Kind. Contextual keywords are still returned with their
// keyword Kind here; the parser is responsible for treating them as
// plain identifiers outside the grammar positions that demand the
// keyword role (spec §4.4).
var keywords = map[string]syntaxkind.Kind{
	"break": syntaxkind.BreakKeyword, "case": syntaxkind.CaseKeyword,
	"catch": syntaxkind.CatchKeyword, "class": syntaxkind.ClassKeyword,
	"const": syntaxkind.ConstKeyword, "continue": syntaxkind.ContinueKeyword,
	"debugger": syntaxkind.DebuggerKeyword, "default": syntaxkind.DefaultKeyword,
	"delete": syntaxkind.DeleteKeyword, "do": syntaxkind.DoKeyword,
	"else": syntaxkind.ElseKeyword, "enum": syntaxkind.EnumKeyword,
	"export": syntaxkind.ExportKeyword, "extends": syntaxkind.ExtendsKeyword,
	"false": syntaxkind.FalseKeyword, "finally": syntaxkind.FinallyKeyword,
	"for": syntaxkind.ForKeyword, "function": syntaxkind.FunctionKeyword,
	"if": syntaxkind.IfKeyword, "import": syntaxkind.ImportKeyword,
	"in": syntaxkind.InKeyword, "instanceof": syntaxkind.InstanceOfKeyword,
	"new": syntaxkind.NewKeyword, "null": syntaxkind.NullKeyword,
	"return": syntaxkind.ReturnKeyword, "super": syntaxkind.SuperKeyword,
	"switch": syntaxkind.SwitchKeyword, "this": syntaxkind.ThisKeyword,
	"throw": syntaxkind.ThrowKeyword, "true": syntaxkind.TrueKeyword,
	"try": syntaxkind.TryKeyword, "typeof": syntaxkind.TypeOfKeyword,
	"var": syntaxkind.VarKeyword, "void": syntaxkind.VoidKeyword,
	"while": syntaxkind.WhileKeyword, "with": syntaxkind.WithKeyword,

	"as": syntaxkind.AsKeyword, "async": syntaxkind.AsyncKeyword,
	"await": syntaxkind.AwaitKeyword, "declare": syntaxkind.DeclareKeyword,
	"from": syntaxkind.FromKeyword, "get": syntaxkind.GetKeyword,
	"infer": syntaxkind.InferKeyword, "interface": syntaxkind.InterfaceKeyword,
	"is": syntaxkind.IsKeyword, "keyof": syntaxkind.KeyOfKeyword,
	"let": syntaxkind.LetKeyword, "module": syntaxkind.ModuleKeyword,
	"namespace": syntaxkind.NamespaceKeyword, "of": syntaxkind.OfKeyword,
	"readonly": syntaxkind.ReadonlyKeyword, "require": syntaxkind.RequireKeyword,
	"satisfies": syntaxkind.SatisfiesKeyword, "set": syntaxkind.SetKeyword,
	"type": syntaxkind.TypeKeyword, "unique": syntaxkind.UniqueKeyword,
	"using": syntaxkind.UsingKeyword, "yield": syntaxkind.YieldKeyword,
	"abstract": syntaxkind.AbstractKeyword,
	"public": syntaxkind.PublicKeyword, "private": syntaxkind.PrivateKeyword,
	"protected": syntaxkind.ProtectedKeyword, "static": syntaxkind.StaticKeyword,
	"implements": syntaxkind.ImplementsKeyword,
	"any": syntaxkind.AnyKeyword,
	"boolean": syntaxkind.BooleanKeyword, "never": syntaxkind.NeverKeyword,
	"number": syntaxkind.NumberKeyword, "object": syntaxkind.ObjectKeyword,
	"string": syntaxkind.StringKeyword, "symbol": syntaxkind.SymbolKeyword,
	"undefined": syntaxkind.UndefinedKeyword, "unknown": syntaxkind.UnknownKeyword,
	"bigint": syntaxkind.BigIntKeyword, "out": syntaxkind.OutKeyword,
	"override": syntaxkind.OverrideKeyword, "global": syntaxkind.GlobalKeyword,
}

// IsContextualKeyword reports whether kind is a contextual (as opposed
// to reserved) keyword — parsed as Identifier unless the grammar
// demands the keyword role.
func IsContextualKeyword(kind syntaxkind.Kind) bool {
	switch kind {
	case syntaxkind.AsKeyword, syntaxkind.AsyncKeyword, syntaxkind.AwaitKeyword,
		syntaxkind.DeclareKeyword, syntaxkind.FromKeyword, syntaxkind.GetKeyword,
		syntaxkind.InferKeyword, syntaxkind.InterfaceKeyword, syntaxkind.IsKeyword,
		syntaxkind.KeyOfKeyword, syntaxkind.LetKeyword, syntaxkind.ModuleKeyword,
		syntaxkind.NamespaceKeyword, syntaxkind.OfKeyword, syntaxkind.ReadonlyKeyword,
		syntaxkind.RequireKeyword, syntaxkind.SatisfiesKeyword, syntaxkind.SetKeyword,
		syntaxkind.TypeKeyword, syntaxkind.UniqueKeyword, syntaxkind.UsingKeyword,
		syntaxkind.YieldKeyword, syntaxkind.AbstractKeyword, syntaxkind.AnyKeyword,
		syntaxkind.BooleanKeyword, syntaxkind.NeverKeyword, syntaxkind.NumberKeyword,
		syntaxkind.ObjectKeyword, syntaxkind.StringKeyword, syntaxkind.SymbolKeyword,
		syntaxkind.UndefinedKeyword, syntaxkind.UnknownKeyword, syntaxkind.BigIntKeyword,
		syntaxkind.OutKeyword, syntaxkind.OverrideKeyword, syntaxkind.GlobalKeyword,
		syntaxkind.PublicKeyword, syntaxkind.PrivateKeyword, syntaxkind.ProtectedKeyword,
		syntaxkind.StaticKeyword, syntaxkind.ImplementsKeyword:
		return true
	default:
		return false
	}
}

func (s *Scanner) scanIdentifierOrKeyword() syntaxkind.Kind {
	start := s.pos
	r, w := s.peekRune()
	hasPrivate := r == '#'
	if hasPrivate {
		s.pos += w
	}
	for !s.atEnd() {
		r, w := s.peekRune()
		if !isIdentifierPart(r) {
			break
		}
		s.pos += w
	}
	text := s.src[start:s.pos]
	s.tokenValue = text

	if hasPrivate {
		return s.finish(syntaxkind.PrivateIdentifier)
	}
	if kind, ok := keywords[text]; ok {
		return s.finish(kind)
	}
	return s.finish(syntaxkind.Identifier)
}
