// Package typesystem is the type arena the checker materializes and
// compares types through: every type is allocated once into a
// TypeTable and referenced everywhere else by its TypeId, avoiding the
// recursive-type lifetime problems a pointer-based representation runs
// into (two mutually referencing object types, a type alias that
// mentions itself).
package typesystem

import "github.com/funvibe/rscript/internal/intern"

// TypeId indexes a Type within one TypeTable. Stable for the lifetime
// of a checking pass; never reused once assigned.
type TypeId uint32

// NoType is the sentinel for an absent optional type reference (a
// type parameter with no default, a tuple element with no rest type).
const NoType TypeId = 1<<32 - 1

// TypeFlags classifies what broad family a type belongs to, mirroring
// the widely-documented flag set a structural checker tests against
// repeatedly during assignability and narrowing (is this a literal? a
// union? instantiable?) without a full kind switch every time.
type TypeFlags uint32

const (
	TFAny TypeFlags = 1 << iota
	TFUnknown
	TFString
	TFNumber
	TFBoolean
	TFVoid
	TFUndefined
	TFNull
	TFNever
	TFBigInt
	TFESSymbol
	TFNonPrimitive
	TFStringLiteral
	TFNumberLiteral
	TFBooleanLiteral
	TFBigIntLiteral
	TFObject
	TFUnion
	TFIntersection
	TFTypeParameter
	TFIndexedAccess
	TFConditional
	TFSubstitution
	TFTemplateLiteral
	TFTuple
	TFTypeReference
	TFMapped
)

// Composite flag groups, named after the classification they answer.
const (
	TFLiteral      = TFStringLiteral | TFNumberLiteral | TFBooleanLiteral | TFBigIntLiteral
	TFPrimitive    = TFString | TFNumber | TFBoolean | TFVoid | TFUndefined | TFNull |
		TFNever | TFBigInt | TFESSymbol | TFLiteral | TFAny | TFUnknown
	TFStructured   = TFObject | TFUnion | TFIntersection | TFTuple
	TFInstantiable = TFTypeParameter | TFIndexedAccess | TFConditional | TFSubstitution |
		TFTypeReference | TFMapped | TFTemplateLiteral
	TFUnionOrIntersection = TFUnion | TFIntersection
)

// Has reports whether f has every bit of mask set.
func (f TypeFlags) Has(mask TypeFlags) bool { return f&mask == mask }

// Intersects reports whether f shares any bit with mask.
func (f TypeFlags) Intersects(mask TypeFlags) bool { return f&mask != 0 }

// ObjectFlags refines TFObject with which concrete shape an object
// type carries (a class instance, an interface, a structural object
// literal, an anonymous mapped-type result).
type ObjectFlags uint32

const (
	OFClass ObjectFlags = 1 << iota
	OFInterface
	OFObjectLiteral
	OFAnonymous
	OFMapped
	OFReference // instantiation of a generic object type (TypeReference target)
)

// ElementFlags describes one tuple position. Modeled as bit flags
// (rather than a plain enum) so a position can be both Rest and
// Variadic-expanded without a combinatorial explosion of variants.
type ElementFlags uint8

const (
	EFRequired ElementFlags = 1 << iota
	EFOptional
	EFRest
	EFVariadic
)

func (f ElementFlags) Has(mask ElementFlags) bool { return f&mask == mask }

// ObjectMember is one named member of an object type. Members are kept
// as a slice in declaration order rather than a map; PrintType sorts
// them by name before rendering.
type ObjectMember struct {
	Name     intern.Handle
	Type     TypeId
	Optional bool
}

// Signature is a call or construct signature of an object type.
type Signature struct {
	TypeParameters   []TypeId
	Parameters       []SignatureParameter
	ReturnType       TypeId
	MinArgumentCount int
	HasRestParameter bool
}

// SignatureParameter is one parameter of a Signature.
type SignatureParameter struct {
	Name     intern.Handle
	Type     TypeId
	Optional bool
}

// IndexInfo is a string or number index signature (`[key: string]: T`).
type IndexInfo struct {
	KeyType    TypeId
	ValueType  TypeId
	IsReadonly bool
}

// TypeKind is the tagged payload carried by a Type; which fields are
// meaningful is selected by the owning Type's Flags, the same
// single-struct-many-kinds convention internal/ast uses for nodes.
type TypeKind struct {
	// Intrinsic / literal payloads.
	IntrinsicName string
	StringValue   string
	NumberValue   float64
	BigIntValue   string
	BoolValue     bool

	// ObjectType.
	ObjectFlags         ObjectFlags
	Members             []ObjectMember
	CallSignatures      []Signature
	ConstructSignatures []Signature
	IndexInfos          []IndexInfo

	// Union / Intersection / Tuple element lists, and TypeReference's
	// type argument list.
	Types []TypeId

	// TypeParameter.
	Constraint TypeId
	Default    TypeId

	// IndexedAccess.
	ObjectTypeID TypeId
	IndexTypeID  TypeId

	// Conditional.
	CheckType   TypeId
	ExtendsType TypeId
	TrueType    TypeId
	FalseType   TypeId

	// Mapped.
	TypeParameterID TypeId
	ConstraintType  TypeId
	TemplateType    TypeId

	// TemplateLiteral: Texts has len(Types)+1 entries, interleaved
	// literal-segment / substitution-type / literal-segment / ...,
	// mirroring ast.Node's own Texts/List interleaving for the syntax
	// this materializes.
	Texts []string

	// Substitution (conditional-type distribution over a naked type
	// parameter): BaseType is what the parameter actually resolved to
	// for this branch, SubstConstraint is the original constraint kept
	// around so later distribution steps can re-derive it.
	BaseType        TypeId
	SubstConstraint TypeId

	// Tuple.
	ElementTypes []TypeId
	TupleFlags   []ElementFlags

	// TypeReference.
	Target        TypeId
	TypeArguments []TypeId
}

// Type is one entry in a TypeTable.
type Type struct {
	ID    TypeId
	Flags TypeFlags
	// Symbol is the declaring symbol's binder.SymbolID, or -1 if this
	// type has none (a literal type, an anonymous union). Kept as a
	// plain int32 rather than importing internal/binder, since that
	// would make typesystem depend on binder when in the real pipeline
	// it is the checker, sitting above both, that ties a Type to the
	// Symbol that introduced it.
	Symbol int32
	Kind   TypeKind
}
