package typesystem

import "sync"

// TypeTable is the type arena: every Type the checker materializes for
// one compile lives here exactly once, addressed by TypeId. The
// well-known primitive types are preseeded at fixed ids so callers can
// reference them as constants instead of looking them up.
//
// mu guards appends to types: a multi-file compile (pipeline.
// CompileProgram) shares one TypeTable across the goroutines checking
// each file concurrently, and a slice append from two goroutines at
// once is a data race even when their target indices never collide.
type TypeTable struct {
	mu    sync.RWMutex
	types []Type
}

// Fixed ids for the primitive/intrinsic types, preseeded by NewTypeTable
// in this exact order.
const (
	AnyTypeId TypeId = iota
	UnknownTypeId
	StringTypeId
	NumberTypeId
	BooleanTypeId
	VoidTypeId
	UndefinedTypeId
	NullTypeId
	NeverTypeId
	BigIntTypeId
	ESSymbolTypeId
	NonPrimitiveObjectTypeId
	TrueTypeId
	FalseTypeId
)

// NewTypeTable builds a table with the fourteen well-known types already
// installed at the ids above, matching a source-level type table's
// numbering exactly so a checker can hand out AnyTypeId etc. as untyped
// constants.
func NewTypeTable() *TypeTable {
	t := &TypeTable{types: make([]Type, 0, 1024)}
	t.addIntrinsic(TFAny, "any")
	t.addIntrinsic(TFUnknown, "unknown")
	t.addIntrinsic(TFString, "string")
	t.addIntrinsic(TFNumber, "number")
	t.addIntrinsic(TFBoolean, "boolean")
	t.addIntrinsic(TFVoid, "void")
	t.addIntrinsic(TFUndefined, "undefined")
	t.addIntrinsic(TFNull, "null")
	t.addIntrinsic(TFNever, "never")
	t.addIntrinsic(TFBigInt, "bigint")
	t.addIntrinsic(TFESSymbol, "symbol")
	t.addIntrinsic(TFNonPrimitive, "object")
	t.AddType(TFBooleanLiteral, TypeKind{BoolValue: true})
	t.AddType(TFBooleanLiteral, TypeKind{BoolValue: false})
	return t
}

func (t *TypeTable) addIntrinsic(flags TypeFlags, name string) TypeId {
	return t.AddType(flags, TypeKind{IntrinsicName: name})
}

// AddType appends a new type and returns its id.
func (t *TypeTable) AddType(flags TypeFlags, kind TypeKind) TypeId {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := TypeId(len(t.types))
	t.types = append(t.types, Type{ID: id, Flags: flags, Symbol: -1, Kind: kind})
	return id
}

// Get returns the type at id. The returned pointer is safe to read
// without holding a lock: once appended, a Type's fields are never
// mutated in place, only new Types are appended alongside it.
func (t *TypeTable) Get(id TypeId) *Type {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &t.types[id]
}

// Len returns the number of types allocated so far.
func (t *TypeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.types)
}
