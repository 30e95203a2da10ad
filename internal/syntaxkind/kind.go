// Package syntaxkind defines the closed tag set covering every token
// and AST node produced by the front end, plus the bit-flag domains
// attached to tokens and nodes.
package syntaxkind

// Kind tags every token and AST node. Token kinds and node kinds share
// one numbering space (spec §3: "Syntax kind... covering tokens...
// and node kinds"), which lets kind-dispatch switch over a single type
// without a separate token/node discriminator.
type Kind uint16

const (
	Unknown Kind = iota
	EndOfFile

	// --- Trivia (not emitted as tokens by Scanner.Scan, but named here
	// for completeness and for diagnostic rendering of skipped input) ---
	WhitespaceTrivia
	LineBreakTrivia
	SingleLineCommentTrivia
	MultiLineCommentTrivia

	// --- Literals ---
	NumericLiteral
	BigIntLiteral
	StringLiteral
	RegularExpressionLiteral
	NoSubstitutionTemplateLiteral
	TemplateHead
	TemplateMiddle
	TemplateTail

	// --- Punctuation ---
	OpenBraceToken
	CloseBraceToken
	OpenParenToken
	CloseParenToken
	OpenBracketToken
	CloseBracketToken
	DotToken
	DotDotDotToken
	SemicolonToken
	CommaToken
	QuestionDotToken
	LessThanToken
	LessThanSlashToken
	GreaterThanToken
	LessThanEqualsToken
	GreaterThanEqualsToken
	EqualsEqualsToken
	ExclamationEqualsToken
	EqualsEqualsEqualsToken
	ExclamationEqualsEqualsToken
	EqualsGreaterThanToken
	PlusToken
	MinusToken
	AsteriskToken
	AsteriskAsteriskToken
	SlashToken
	PercentToken
	PlusPlusToken
	MinusMinusToken
	LessThanLessThanToken
	GreaterThanGreaterThanToken
	GreaterThanGreaterThanGreaterThanToken
	AmpersandToken
	BarToken
	CaretToken
	ExclamationToken
	TildeToken
	AmpersandAmpersandToken
	BarBarToken
	QuestionQuestionToken
	QuestionToken
	ColonToken
	AtToken
	BacktickToken
	EqualsToken
	PlusEqualsToken
	MinusEqualsToken
	AsteriskEqualsToken
	AsteriskAsteriskEqualsToken
	SlashEqualsToken
	PercentEqualsToken
	LessThanLessThanEqualsToken
	GreaterThanGreaterThanEqualsToken
	GreaterThanGreaterThanGreaterThanEqualsToken
	AmpersandEqualsToken
	BarEqualsToken
	CaretEqualsToken
	BarBarEqualsToken
	AmpersandAmpersandEqualsToken
	QuestionQuestionEqualsToken

	// --- Identifiers / keywords ---
	Identifier
	PrivateIdentifier

	BreakKeyword
	CaseKeyword
	CatchKeyword
	ClassKeyword
	ConstKeyword
	ContinueKeyword
	DebuggerKeyword
	DefaultKeyword
	DeleteKeyword
	DoKeyword
	ElseKeyword
	EnumKeyword
	ExportKeyword
	ExtendsKeyword
	FalseKeyword
	FinallyKeyword
	ForKeyword
	FunctionKeyword
	IfKeyword
	ImportKeyword
	InKeyword
	InstanceOfKeyword
	NewKeyword
	NullKeyword
	ReturnKeyword
	SuperKeyword
	SwitchKeyword
	ThisKeyword
	ThrowKeyword
	TrueKeyword
	TryKeyword
	TypeOfKeyword
	VarKeyword
	VoidKeyword
	WhileKeyword
	WithKeyword

	// Contextual keywords — the scanner returns these keyword kinds; the
	// parser treats them as identifiers outside the grammar positions
	// that demand the keyword role (spec §4.4).
	AsKeyword
	AsyncKeyword
	AwaitKeyword
	DeclareKeyword
	FromKeyword
	GetKeyword
	InferKeyword
	InterfaceKeyword
	IsKeyword
	KeyOfKeyword
	LetKeyword
	ModuleKeyword
	NamespaceKeyword
	OfKeyword
	ReadonlyKeyword
	RequireKeyword
	SatisfiesKeyword
	SetKeyword
	TypeKeyword
	UniqueKeyword
	UsingKeyword
	YieldKeyword
	AbstractKeyword
	PublicKeyword
	PrivateKeyword
	ProtectedKeyword
	StaticKeyword
	ImplementsKeyword
	AnyKeyword
	BooleanKeyword
	NeverKeyword
	NumberKeyword
	ObjectKeyword
	StringKeyword
	SymbolKeyword
	UndefinedKeyword
	UnknownKeyword
	BigIntKeyword
	OutKeyword
	OverrideKeyword
	GlobalKeyword

	// --- Expressions ---
	ArrayLiteralExpression
	ObjectLiteralExpression
	PropertyAccessExpression
	ElementAccessExpression
	CallExpression
	NewExpression
	TaggedTemplateExpression
	TypeAssertionExpression
	ParenthesizedExpression
	FunctionExpression
	ArrowFunction
	DeleteExpression
	TypeOfExpression
	VoidExpression
	AwaitExpression
	PrefixUnaryExpression
	PostfixUnaryExpression
	BinaryExpression
	ConditionalExpression
	TemplateExpression
	YieldExpression
	SpreadElement
	ClassExpression
	OmittedExpression
	AsExpression
	NonNullExpression
	MetaProperty
	SatisfiesExpression

	// --- Statements ---
	Block
	EmptyStatement
	VariableStatement
	ExpressionStatement
	IfStatement
	DoStatement
	WhileStatement
	ForStatement
	ForInStatement
	ForOfStatement
	ContinueStatement
	BreakStatement
	ReturnStatement
	WithStatement
	SwitchStatement
	LabeledStatement
	ThrowStatement
	TryStatement
	DebuggerStatement
	MissingDeclaration

	// --- Declarations ---
	VariableDeclaration
	VariableDeclarationList
	FunctionDeclaration
	ClassDeclaration
	InterfaceDeclaration
	TypeAliasDeclaration
	EnumDeclaration
	ModuleDeclaration
	ModuleBlock
	ImportDeclaration
	ImportEqualsDeclaration
	ExportDeclaration
	ExportAssignment
	NamespaceExportDeclaration

	// --- Structural / support nodes ---
	SourceFile
	Parameter
	TypeParameter
	Decorator
	HeritageClause
	ExpressionWithTypeArguments
	CaseClause
	DefaultClause
	CatchClause
	PropertyAssignment
	ShorthandPropertyAssignment
	SpreadAssignment
	BindingElement
	ObjectBindingPattern
	ArrayBindingPattern
	MethodDeclaration
	PropertyDeclaration
	Constructor
	GetAccessor
	SetAccessor
	ImportSpecifier
	ImportClause
	NamedImports
	NamespaceImport
	ExportSpecifier
	NamedExports
	EnumMember
	QualifiedName

	// --- Type nodes ---
	KeywordType // any/unknown/string/number/boolean/void/undefined/null/never/bigint/symbol/object
	TypeReference
	FunctionType
	ConstructorType
	TypeQuery
	TypeLiteral
	ArrayType
	TupleType
	OptionalType
	RestType
	UnionType
	IntersectionType
	ConditionalType
	InferType
	ParenthesizedType
	ThisType
	TypeOperator
	IndexedAccessType
	MappedType
	LiteralType
	NamedTupleMember
	TemplateLiteralType
	TemplateLiteralTypeSpan
	ImportType
	TypePredicate
	IndexSignature
	PropertySignature
	MethodSignature
	CallSignature
	ConstructSignature

	// --- Token-like literal keywords used as expressions ---
	ThisExpression

	// --- Recovery placeholder nodes (spec §4.4: "Missing… node") ---
	MissingExpression
	MissingStatement
	MissingIdentifier
	MissingTypeNode

	kindCount
)

var names = map[Kind]string{
	Unknown:                       "Unknown",
	EndOfFile:                     "EndOfFile",
	WhitespaceTrivia:              "WhitespaceTrivia",
	LineBreakTrivia:               "LineBreakTrivia",
	SingleLineCommentTrivia:       "SingleLineCommentTrivia",
	MultiLineCommentTrivia:        "MultiLineCommentTrivia",
	NumericLiteral:                "NumericLiteral",
	BigIntLiteral:                 "BigIntLiteral",
	StringLiteral:                 "StringLiteral",
	RegularExpressionLiteral:      "RegularExpressionLiteral",
	NoSubstitutionTemplateLiteral: "NoSubstitutionTemplateLiteral",
	TemplateHead:                  "TemplateHead",
	TemplateMiddle:                "TemplateMiddle",
	TemplateTail:                  "TemplateTail",
	Identifier:                    "Identifier",
	PrivateIdentifier:             "PrivateIdentifier",

	OpenBraceToken:    "OpenBraceToken",
	CloseBraceToken:   "CloseBraceToken",
	OpenParenToken:    "OpenParenToken",
	CloseParenToken:   "CloseParenToken",
	OpenBracketToken:  "OpenBracketToken",
	CloseBracketToken: "CloseBracketToken",
	DotToken:          "DotToken",
	DotDotDotToken:    "DotDotDotToken",
	SemicolonToken:    "SemicolonToken",
	CommaToken:        "CommaToken",
	QuestionDotToken:  "QuestionDotToken",
	EqualsGreaterThanToken: "EqualsGreaterThanToken",
	QuestionToken:     "QuestionToken",
	ColonToken:        "ColonToken",
	AtToken:           "AtToken",
	EqualsToken:       "EqualsToken",

	BreakKeyword:      "BreakKeyword",
	CaseKeyword:       "CaseKeyword",
	CatchKeyword:      "CatchKeyword",
	ClassKeyword:       "ClassKeyword",
	ConstKeyword:      "ConstKeyword",
	ContinueKeyword:   "ContinueKeyword",
	DebuggerKeyword:   "DebuggerKeyword",
	DefaultKeyword:    "DefaultKeyword",
	DeleteKeyword:     "DeleteKeyword",
	DoKeyword:         "DoKeyword",
	ElseKeyword:       "ElseKeyword",
	EnumKeyword:       "EnumKeyword",
	ExportKeyword:     "ExportKeyword",
	ExtendsKeyword:    "ExtendsKeyword",
	FalseKeyword:      "FalseKeyword",
	FinallyKeyword:    "FinallyKeyword",
	ForKeyword:        "ForKeyword",
	FunctionKeyword:   "FunctionKeyword",
	IfKeyword:         "IfKeyword",
	ImportKeyword:     "ImportKeyword",
	InKeyword:         "InKeyword",
	InstanceOfKeyword: "InstanceOfKeyword",
	NewKeyword:        "NewKeyword",
	NullKeyword:       "NullKeyword",
	ReturnKeyword:     "ReturnKeyword",
	SuperKeyword:      "SuperKeyword",
	SwitchKeyword:     "SwitchKeyword",
	ThisKeyword:       "ThisKeyword",
	ThrowKeyword:      "ThrowKeyword",
	TrueKeyword:       "TrueKeyword",
	TryKeyword:        "TryKeyword",
	TypeOfKeyword:     "TypeOfKeyword",
	VarKeyword:        "VarKeyword",
	VoidKeyword:       "VoidKeyword",
	WhileKeyword:      "WhileKeyword",
	WithKeyword:       "WithKeyword",

	AsKeyword:        "AsKeyword",
	AsyncKeyword:     "AsyncKeyword",
	AwaitKeyword:     "AwaitKeyword",
	DeclareKeyword:   "DeclareKeyword",
	FromKeyword:      "FromKeyword",
	GetKeyword:       "GetKeyword",
	InferKeyword:     "InferKeyword",
	InterfaceKeyword: "InterfaceKeyword",
	IsKeyword:        "IsKeyword",
	KeyOfKeyword:     "KeyOfKeyword",
	LetKeyword:       "LetKeyword",
	ModuleKeyword:    "ModuleKeyword",
	NamespaceKeyword: "NamespaceKeyword",
	OfKeyword:        "OfKeyword",
	ReadonlyKeyword:  "ReadonlyKeyword",
	RequireKeyword:   "RequireKeyword",
	SatisfiesKeyword: "SatisfiesKeyword",
	SetKeyword:       "SetKeyword",
	TypeKeyword:      "TypeKeyword",
	UniqueKeyword:    "UniqueKeyword",
	UsingKeyword:     "UsingKeyword",
	YieldKeyword:     "YieldKeyword",
	AbstractKeyword:  "AbstractKeyword",
	PublicKeyword:    "PublicKeyword",
	PrivateKeyword:   "PrivateKeyword",
	ProtectedKeyword: "ProtectedKeyword",
	StaticKeyword:    "StaticKeyword",
	ImplementsKeyword: "ImplementsKeyword",
	AnyKeyword:       "AnyKeyword",
	BooleanKeyword:   "BooleanKeyword",
	NeverKeyword:     "NeverKeyword",
	NumberKeyword:    "NumberKeyword",
	ObjectKeyword:    "ObjectKeyword",
	StringKeyword:    "StringKeyword",
	SymbolKeyword:    "SymbolKeyword",
	UndefinedKeyword: "UndefinedKeyword",
	UnknownKeyword:   "UnknownKeyword",
	BigIntKeyword:    "BigIntKeyword",
	OutKeyword:       "OutKeyword",
	OverrideKeyword:  "OverrideKeyword",
	GlobalKeyword:    "GlobalKeyword",

	ArrayLiteralExpression:   "ArrayLiteralExpression",
	ObjectLiteralExpression:  "ObjectLiteralExpression",
	PropertyAccessExpression: "PropertyAccessExpression",
	ElementAccessExpression:  "ElementAccessExpression",
	CallExpression:           "CallExpression",
	NewExpression:            "NewExpression",
	TaggedTemplateExpression: "TaggedTemplateExpression",
	TypeAssertionExpression:  "TypeAssertionExpression",
	ParenthesizedExpression:  "ParenthesizedExpression",
	FunctionExpression:       "FunctionExpression",
	ArrowFunction:            "ArrowFunction",
	DeleteExpression:         "DeleteExpression",
	TypeOfExpression:         "TypeOfExpression",
	VoidExpression:           "VoidExpression",
	AwaitExpression:          "AwaitExpression",
	PrefixUnaryExpression:    "PrefixUnaryExpression",
	PostfixUnaryExpression:   "PostfixUnaryExpression",
	BinaryExpression:         "BinaryExpression",
	ConditionalExpression:    "ConditionalExpression",
	TemplateExpression:       "TemplateExpression",
	YieldExpression:          "YieldExpression",
	SpreadElement:            "SpreadElement",
	ClassExpression:          "ClassExpression",
	OmittedExpression:        "OmittedExpression",
	AsExpression:             "AsExpression",
	NonNullExpression:        "NonNullExpression",
	MetaProperty:             "MetaProperty",
	SatisfiesExpression:      "SatisfiesExpression",
	ThisExpression:           "ThisExpression",

	Block:               "Block",
	EmptyStatement:      "EmptyStatement",
	VariableStatement:   "VariableStatement",
	ExpressionStatement: "ExpressionStatement",
	IfStatement:         "IfStatement",
	DoStatement:         "DoStatement",
	WhileStatement:      "WhileStatement",
	ForStatement:        "ForStatement",
	ForInStatement:      "ForInStatement",
	ForOfStatement:      "ForOfStatement",
	ContinueStatement:   "ContinueStatement",
	BreakStatement:      "BreakStatement",
	ReturnStatement:     "ReturnStatement",
	WithStatement:       "WithStatement",
	SwitchStatement:     "SwitchStatement",
	LabeledStatement:    "LabeledStatement",
	ThrowStatement:      "ThrowStatement",
	TryStatement:        "TryStatement",
	DebuggerStatement:   "DebuggerStatement",
	MissingDeclaration:  "MissingDeclaration",

	VariableDeclaration:       "VariableDeclaration",
	VariableDeclarationList:   "VariableDeclarationList",
	FunctionDeclaration:       "FunctionDeclaration",
	ClassDeclaration:          "ClassDeclaration",
	InterfaceDeclaration:      "InterfaceDeclaration",
	TypeAliasDeclaration:      "TypeAliasDeclaration",
	EnumDeclaration:           "EnumDeclaration",
	ModuleDeclaration:         "ModuleDeclaration",
	ModuleBlock:               "ModuleBlock",
	ImportDeclaration:         "ImportDeclaration",
	ImportEqualsDeclaration:   "ImportEqualsDeclaration",
	ExportDeclaration:         "ExportDeclaration",
	ExportAssignment:          "ExportAssignment",
	NamespaceExportDeclaration: "NamespaceExportDeclaration",

	SourceFile:                  "SourceFile",
	Parameter:                   "Parameter",
	TypeParameter:               "TypeParameter",
	Decorator:                   "Decorator",
	HeritageClause:              "HeritageClause",
	ExpressionWithTypeArguments: "ExpressionWithTypeArguments",
	CaseClause:                  "CaseClause",
	DefaultClause:               "DefaultClause",
	CatchClause:                 "CatchClause",
	PropertyAssignment:          "PropertyAssignment",
	ShorthandPropertyAssignment: "ShorthandPropertyAssignment",
	SpreadAssignment:            "SpreadAssignment",
	BindingElement:              "BindingElement",
	ObjectBindingPattern:        "ObjectBindingPattern",
	ArrayBindingPattern:         "ArrayBindingPattern",
	MethodDeclaration:           "MethodDeclaration",
	PropertyDeclaration:         "PropertyDeclaration",
	Constructor:                 "Constructor",
	GetAccessor:                 "GetAccessor",
	SetAccessor:                 "SetAccessor",
	ImportSpecifier:             "ImportSpecifier",
	ImportClause:                "ImportClause",
	NamedImports:                "NamedImports",
	NamespaceImport:             "NamespaceImport",
	ExportSpecifier:             "ExportSpecifier",
	EnumMember:                  "EnumMember",
	QualifiedName:               "QualifiedName",
	NamedExports:                "NamedExports",

	KeywordType:             "KeywordType",
	TypeReference:           "TypeReference",
	FunctionType:            "FunctionType",
	ConstructorType:         "ConstructorType",
	TypeQuery:               "TypeQuery",
	TypeLiteral:             "TypeLiteral",
	ArrayType:               "ArrayType",
	TupleType:               "TupleType",
	OptionalType:            "OptionalType",
	RestType:                "RestType",
	UnionType:               "UnionType",
	IntersectionType:        "IntersectionType",
	ConditionalType:         "ConditionalType",
	InferType:               "InferType",
	ParenthesizedType:       "ParenthesizedType",
	ThisType:                "ThisType",
	TypeOperator:            "TypeOperator",
	IndexedAccessType:       "IndexedAccessType",
	MappedType:              "MappedType",
	LiteralType:             "LiteralType",
	NamedTupleMember:        "NamedTupleMember",
	TemplateLiteralType:     "TemplateLiteralType",
	TemplateLiteralTypeSpan: "TemplateLiteralTypeSpan",
	ImportType:              "ImportType",
	TypePredicate:           "TypePredicate",
	IndexSignature:          "IndexSignature",
	PropertySignature:       "PropertySignature",
	MethodSignature:         "MethodSignature",
	CallSignature:           "CallSignature",
	ConstructSignature:      "ConstructSignature",

	MissingExpression: "MissingExpression",
	MissingStatement:  "MissingStatement",
	MissingIdentifier: "MissingIdentifier",
	MissingTypeNode:   "MissingTypeNode",
}

// String renders a Kind for diagnostics/debugging. Kinds without an
// explicit name fall back to a numeric form; this keeps the table
// above small while still being safe for every value in range.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	if k >= kindCount {
		return "Kind(invalid)"
	}
	return "Kind(" + itoa(uint16(k)) + ")"
}

func itoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
