package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/typesystem"
)

// typeOfTypeNode materializes a parsed type annotation into a TypeId,
// switching on the node's Kind the way the binder and printer already
// do (spec's single tagged-Node representation lets every phase reuse
// the same dispatch style). A type form this checker does not (yet)
// model falls back to AnyTypeId rather than failing the whole file.
func (c *Checker) typeOfTypeNode(n *ast.Node) typesystem.TypeId {
	if n == nil {
		return typesystem.AnyTypeId
	}
	switch n.Kind {
	case syntaxkind.AnyKeyword:
		return typesystem.AnyTypeId
	case syntaxkind.UnknownKeyword:
		return typesystem.UnknownTypeId
	case syntaxkind.StringKeyword:
		return typesystem.StringTypeId
	case syntaxkind.NumberKeyword:
		return typesystem.NumberTypeId
	case syntaxkind.BooleanKeyword:
		return typesystem.BooleanTypeId
	case syntaxkind.VoidKeyword:
		return typesystem.VoidTypeId
	case syntaxkind.UndefinedKeyword:
		return typesystem.UndefinedTypeId
	case syntaxkind.NullKeyword:
		return typesystem.NullTypeId
	case syntaxkind.NeverKeyword:
		return typesystem.NeverTypeId
	case syntaxkind.BigIntKeyword:
		return typesystem.BigIntTypeId
	case syntaxkind.SymbolKeyword:
		return typesystem.ESSymbolTypeId
	case syntaxkind.ObjectKeyword:
		return typesystem.NonPrimitiveObjectTypeId
	case syntaxkind.ThisKeyword, syntaxkind.ThisType:
		// `this` types need the enclosing class's instance type, which
		// this checker does not thread through type positions yet; any
		// is a sound (if imprecise) stand-in.
		return typesystem.AnyTypeId

	case syntaxkind.LiteralType:
		return c.typeOfLiteralTypeNode(n)
	case syntaxkind.ParenthesizedType:
		return c.typeOfTypeNode(n.Type)
	case syntaxkind.ArrayType:
		elem := c.typeOfTypeNode(n.Type)
		return c.arrayTypeOf(elem)
	case syntaxkind.TupleType:
		return c.typeOfTupleTypeNode(n)
	case syntaxkind.UnionType:
		return c.types.UnionOf(c.typeOfTypeNodeList(n.List))
	case syntaxkind.IntersectionType:
		return c.types.IntersectionOf(c.typeOfTypeNodeList(n.List))
	case syntaxkind.TypeOperator:
		// `keyof`/`unique`/`readonly` operators are accepted
		// syntactically; this checker does not yet compute the
		// key-union a `keyof` needs, so it widens to the operand's own
		// materialization.
		return c.typeOfTypeNode(n.Type)
	case syntaxkind.IndexedAccessType:
		return c.typeOfIndexedAccessTypeNode(n)
	case syntaxkind.ConditionalType:
		return c.typeOfConditionalTypeNode(n)
	case syntaxkind.InferType:
		// A bare `infer T` outside a conditional's extends clause has no
		// meaningful standalone type; treat it as a fresh type parameter.
		return c.types.AddType(typesystem.TFTypeParameter, typesystem.TypeKind{Constraint: typesystem.NoType})
	case syntaxkind.TypeQuery:
		return c.typeOfTypeQueryNode(n)
	case syntaxkind.TypeReference:
		return c.typeOfTypeReferenceNode(n)
	case syntaxkind.TypeLiteral:
		return c.typeOfTypeLiteralNode(n)
	case syntaxkind.MappedType:
		return c.typeOfMappedTypeNode(n)
	case syntaxkind.FunctionType, syntaxkind.ConstructorType:
		return c.typeOfFunctionTypeNode(n)
	case syntaxkind.TemplateLiteralType:
		return c.typeOfTemplateLiteralTypeNode(n)
	default:
		return typesystem.AnyTypeId
	}
}

func (c *Checker) typeOfTypeNodeList(nodes []*ast.Node) []typesystem.TypeId {
	out := make([]typesystem.TypeId, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.typeOfTypeNode(n))
	}
	return out
}

// arrayTypeOf returns the canonical `elem[]` array object type: a
// single-element-type tuple with an open rest, represented as an
// object type carrying a number index signature — the structural
// shape an array's element access and length property need.
func (c *Checker) arrayTypeOf(elem typesystem.TypeId) typesystem.TypeId {
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags: typesystem.OFAnonymous,
		IndexInfos: []typesystem.IndexInfo{
			{KeyType: typesystem.NumberTypeId, ValueType: elem},
		},
	})
}

func (c *Checker) typeOfLiteralTypeNode(n *ast.Node) typesystem.TypeId {
	switch n.Operator {
	case syntaxkind.StringLiteral:
		return c.types.AddType(typesystem.TFStringLiteral, typesystem.TypeKind{StringValue: n.Text})
	case syntaxkind.NumericLiteral:
		return c.types.AddType(typesystem.TFNumberLiteral, typesystem.TypeKind{NumberValue: n.Number})
	case syntaxkind.TrueKeyword:
		return typesystem.TrueTypeId
	case syntaxkind.FalseKeyword:
		return typesystem.FalseTypeId
	default:
		return typesystem.AnyTypeId
	}
}

func (c *Checker) typeOfTupleTypeNode(n *ast.Node) typesystem.TypeId {
	elements := make([]typesystem.TypeId, 0, len(n.List))
	flags := make([]typesystem.ElementFlags, 0, len(n.List))
	for _, el := range n.List {
		if el.Kind == syntaxkind.RestType {
			elements = append(elements, c.typeOfTypeNode(el.Type))
			flags = append(flags, typesystem.EFRest)
			continue
		}
		elements = append(elements, c.typeOfTypeNode(el))
		flags = append(flags, typesystem.EFRequired)
	}
	return c.types.AddType(typesystem.TFTuple, typesystem.TypeKind{ElementTypes: elements, TupleFlags: flags})
}

func (c *Checker) typeOfIndexedAccessTypeNode(n *ast.Node) typesystem.TypeId {
	objTy := c.typeOfTypeNode(n.Type)
	idxTy := c.typeOfTypeNode(n.Left)
	obj := c.types.Get(objTy)
	if obj.Flags.Has(typesystem.TFObject) {
		idx := c.types.Get(idxTy)
		if idx.Flags.Has(typesystem.TFStringLiteral) {
			if name, ok := c.interner.Get(idx.Kind.StringValue); ok {
				for _, m := range obj.Kind.Members {
					if m.Name == name {
						return m.Type
					}
				}
			}
		}
		for _, ii := range obj.Kind.IndexInfos {
			return ii.ValueType
		}
	}
	return typesystem.AnyTypeId
}

func (c *Checker) typeOfConditionalTypeNode(n *ast.Node) typesystem.TypeId {
	checkTy := c.typeOfTypeNode(n.Type)
	extendsTy := c.typeOfTypeNode(n.Left)
	trueTy := c.typeOfTypeNode(n.Right)
	falseTy := c.typeOfTypeNode(n.ElseOrAlternate)

	checkKind := c.types.Get(checkTy)
	if checkKind.Flags.Has(typesystem.TFTypeParameter) {
		// A naked type parameter whose constraint has already been
		// instantiated with a union distributes over that union's
		// members, per spec's supplemented conditional-distribution
		// behavior.
		if checkKind.Kind.Constraint != typesystem.NoType {
			if c.types.Get(checkKind.Kind.Constraint).Flags.Has(typesystem.TFUnion) {
				return c.types.DistributeConditional(checkTy, checkKind.Kind.Constraint, extendsTy, trueTy, falseTy)
			}
		}
	}
	return c.types.NewConditional(checkTy, extendsTy, trueTy, falseTy)
}

func (c *Checker) typeOfTypeQueryNode(n *ast.Node) typesystem.TypeId {
	id, ok := c.resolveEntityName(n.Expr)
	if !ok {
		return typesystem.AnyTypeId
	}
	return c.typeOfSymbolValue(id)
}

func (c *Checker) typeOfTypeReferenceNode(n *ast.Node) typesystem.TypeId {
	id, ok := c.resolveEntityName(n.Expr)
	if !ok {
		return typesystem.AnyTypeId
	}
	target := c.typeOfSymbolType(id)
	if len(n.TypeParameters) == 0 {
		return target
	}
	args := c.typeOfTypeNodeList(n.TypeParameters)
	return c.types.AddType(typesystem.TFTypeReference, typesystem.TypeKind{Target: target, TypeArguments: args})
}

func (c *Checker) typeOfTypeLiteralNode(n *ast.Node) typesystem.TypeId {
	var members []typesystem.ObjectMember
	var calls, constructs []typesystem.Signature
	var indexes []typesystem.IndexInfo
	for _, m := range n.List {
		switch m.Kind {
		case syntaxkind.PropertySignature:
			members = append(members, typesystem.ObjectMember{Name: m.DeclName.Name, Type: c.typeOfTypeNode(m.Type)})
		case syntaxkind.MethodSignature:
			members = append(members, typesystem.ObjectMember{Name: m.DeclName.Name, Type: c.typeOfSignatureNode(m)})
		case syntaxkind.CallSignature:
			calls = append(calls, c.signatureOf(m))
		case syntaxkind.ConstructSignature:
			constructs = append(constructs, c.signatureOf(m))
		case syntaxkind.IndexSignature:
			indexes = append(indexes, typesystem.IndexInfo{
				KeyType:   c.typeOfTypeNode(m.Left),
				ValueType: c.typeOfTypeNode(m.Type),
			})
		}
	}
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags:         typesystem.OFAnonymous,
		Members:             members,
		CallSignatures:      calls,
		ConstructSignatures: constructs,
		IndexInfos:          indexes,
	})
}

// typeOfSignatureNode materializes a MethodSignature/method-like
// node's own call signature wrapped as a one-call-signature object
// type, the shape a method member's type takes as an ObjectMember.
func (c *Checker) typeOfSignatureNode(n *ast.Node) typesystem.TypeId {
	sig := c.signatureOf(n)
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags:    typesystem.OFAnonymous,
		CallSignatures: []typesystem.Signature{sig},
	})
}

func (c *Checker) signatureOf(n *ast.Node) typesystem.Signature {
	var typeParams []typesystem.TypeId
	for _, tp := range n.TypeParameters {
		typeParams = append(typeParams, c.types.AddType(typesystem.TFTypeParameter, typesystem.TypeKind{
			Constraint: c.typeOfTypeNode(tp.Type),
			Default:    c.typeOfTypeNode(tp.Initializer),
		}))
	}
	params := make([]typesystem.SignatureParameter, 0, len(n.List))
	minArgs := 0
	hasRest := false
	counting := true
	for _, p := range n.List {
		optional := p.Flags.Has(syntaxkind.NFOptional) || p.Initializer != nil
		rest := p.Flags.Has(syntaxkind.NFRest)
		if rest {
			hasRest = true
		}
		if !optional && !rest && counting {
			minArgs++
		} else {
			counting = false
		}
		name := intern.Dummy
		if p.DeclName != nil {
			name = p.DeclName.Name
		}
		params = append(params, typesystem.SignatureParameter{
			Name:     name,
			Type:     c.typeOfTypeNode(p.Type),
			Optional: optional,
		})
	}
	return typesystem.Signature{
		TypeParameters:   typeParams,
		Parameters:       params,
		ReturnType:       c.typeOfTypeNode(n.Type),
		MinArgumentCount: minArgs,
		HasRestParameter: hasRest,
	}
}

func (c *Checker) typeOfMappedTypeNode(n *ast.Node) typesystem.TypeId {
	constraint := c.typeOfTypeNode(n.Left)
	valueTemplate := c.typeOfTypeNode(n.Type)
	members := c.expandMappedMembers(constraint, valueTemplate)
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags: typesystem.OFMapped | typesystem.OFAnonymous,
		Members:     members,
	})
}

// expandMappedMembers expands `{ [K in Constraint]: ValueTemplate }`
// by enumerating Constraint's string-literal members (a single literal
// or a union of them, the common `keyof`-sourced case). Any other key
// (a plain `string`, a type parameter, a number literal) is skipped, so
// a non-enumerable constraint yields no members; no index signature is
// added for it.
func (c *Checker) expandMappedMembers(constraint, valueTemplate typesystem.TypeId) []typesystem.ObjectMember {
	ct := c.types.Get(constraint)
	keys := []typesystem.TypeId{constraint}
	if ct.Flags.Has(typesystem.TFUnion) {
		keys = ct.Kind.Types
	}
	var members []typesystem.ObjectMember
	for _, k := range keys {
		kt := c.types.Get(k)
		if !kt.Flags.Has(typesystem.TFStringLiteral) {
			continue
		}
		name, _ := c.interner.Get(kt.Kind.StringValue)
		members = append(members, typesystem.ObjectMember{Name: name, Type: valueTemplate})
	}
	return members
}

func (c *Checker) typeOfFunctionTypeNode(n *ast.Node) typesystem.TypeId {
	sig := c.signatureOf(n)
	if n.Kind == syntaxkind.ConstructorType {
		return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
			ObjectFlags:         typesystem.OFAnonymous,
			ConstructSignatures: []typesystem.Signature{sig},
		})
	}
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags:    typesystem.OFAnonymous,
		CallSignatures: []typesystem.Signature{sig},
	})
}

// typeOfTemplateLiteralTypeNode materializes a template literal type
// (`` `prefix-${T}-suffix` ``). When every interpolated constituent
// resolves to a finite set of literal types (a literal itself, or a
// union of literals), the whole template collapses to a union of the
// concrete string literals it can denote rather than staying an open-
// ended `TFTemplateLiteral`. A constituent that stays open (e.g. a bare
// `string`) keeps the template in its general `Texts`/`Types` form.
func (c *Checker) typeOfTemplateLiteralTypeNode(n *ast.Node) typesystem.TypeId {
	texts := append([]string(nil), n.Texts...)
	constituents := c.typeOfTypeNodeList(n.List)

	if combos, ok := c.templateLiteralCombinations(texts, constituents); ok {
		members := make([]typesystem.TypeId, 0, len(combos))
		for _, text := range combos {
			members = append(members, c.types.AddType(typesystem.TFStringLiteral, typesystem.TypeKind{StringValue: text}))
		}
		return c.types.UnionOf(members)
	}

	return c.types.AddType(typesystem.TFTemplateLiteral, typesystem.TypeKind{
		Texts: texts,
		Types: constituents,
	})
}

// templateLiteralCombinations expands texts/constituents (texts has one
// more entry than constituents, interleaved prefix/type/prefix/type/...
// /suffix) into every concrete string the template can denote, or
// reports false the moment a constituent isn't a finite literal set.
func (c *Checker) templateLiteralCombinations(texts []string, constituents []typesystem.TypeId) ([]string, bool) {
	results := []string{texts[0]}
	for i, constituent := range constituents {
		literalTexts, ok := c.templateLiteralLiteralTexts(constituent)
		if !ok {
			return nil, false
		}
		next := make([]string, 0, len(results)*len(literalTexts))
		for _, prefix := range results {
			for _, lit := range literalTexts {
				next = append(next, prefix+lit+texts[i+1])
			}
		}
		results = next
	}
	return results, true
}

// templateLiteralLiteralTexts returns every concrete text value t can
// take: the single value of a string/number/boolean literal type, or
// every member's value for a union composed entirely of literals.
// Reports false for anything else (a primitive like `string`, an
// object type, `any`, ...), which keeps the enclosing template open.
func (c *Checker) templateLiteralLiteralTexts(t typesystem.TypeId) ([]string, bool) {
	ty := c.types.Get(t)
	switch {
	case ty.Flags.Has(typesystem.TFStringLiteral):
		return []string{ty.Kind.StringValue}, true
	case ty.Flags.Has(typesystem.TFNumberLiteral):
		return []string{formatNumberLiteral(ty.Kind.NumberValue)}, true
	case ty.Flags.Has(typesystem.TFBooleanLiteral):
		if ty.Kind.BoolValue {
			return []string{"true"}, true
		}
		return []string{"false"}, true
	case ty.Flags.Has(typesystem.TFUnion):
		texts := make([]string, 0, len(ty.Kind.Types))
		for _, member := range ty.Kind.Types {
			memberTexts, ok := c.templateLiteralLiteralTexts(member)
			if !ok {
				return nil, false
			}
			texts = append(texts, memberTexts...)
		}
		return texts, true
	default:
		return nil, false
	}
}

// formatNumberLiteral renders a number literal type's value the way it
// would appear substituted into a template, without pulling in strconv
// for this one call site (mirrors internal/printer's formatFloat, kept
// duplicated here for the same reason internal/checker's typeNameFor
// doesn't import internal/printer: a shared type-name interface for one
// caller each way isn't worth the package-cycle risk).
func formatNumberLiteral(f float64) string {
	if f == float64(int64(f)) {
		return itoaInt64(int64(f))
	}
	whole := int64(f)
	frac := f - float64(whole)
	if frac < 0 {
		frac = -frac
	}
	digits := itoaInt64(int64(frac * 1e6))
	for len(digits) < 6 {
		digits = "0" + digits
	}
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return itoaInt64(whole) + "." + digits
}

func itoaInt64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// typeOfSymbolType materializes (and memoizes) the type a type-space
// symbol's own declaration denotes: an interface's or class's object
// type, or a type alias's target.
func (c *Checker) typeOfSymbolType(id binder.SymbolID) typesystem.TypeId {
	if t, ok := c.symbolTypes[id]; ok {
		return t
	}
	if c.materializing[id] {
		return typesystem.AnyTypeId
	}
	c.materializing[id] = true
	defer delete(c.materializing, id)

	sym := &c.bind.Symbols()[id]
	var result typesystem.TypeId
	switch {
	case sym.Flags.Has(binder.SFInterface), sym.Flags.Has(binder.SFClass):
		result = c.typeOfMembersDeclaration(sym)
	case sym.Flags.Has(binder.SFTypeAlias):
		result = c.typeOfTypeAliasDeclaration(sym)
	case sym.Flags.Has(binder.SFTypeParameter):
		decl := sym.ValueDeclaration
		if decl == nil && len(sym.Declarations) > 0 {
			decl = sym.Declarations[0]
		}
		constraint := typesystem.NoType
		def := typesystem.NoType
		if decl != nil {
			constraint = c.typeOfTypeNode(decl.Type)
			if decl.Initializer != nil {
				def = c.typeOfTypeNode(decl.Initializer)
			}
		}
		result = c.types.AddType(typesystem.TFTypeParameter, typesystem.TypeKind{Constraint: constraint, Default: def})
	default:
		result = typesystem.AnyTypeId
	}
	c.symbolTypes[id] = result
	return result
}

// typeOfMembersDeclaration materializes the merged member/signature
// set of every declaration contributing to an interface or class
// symbol (spec §4.5's declaration merging: repeated `interface Foo`
// blocks union their members into one type).
func (c *Checker) typeOfMembersDeclaration(sym *binder.Symbol) typesystem.TypeId {
	var members []typesystem.ObjectMember
	if sym.Members != nil {
		for name, memberID := range *sym.Members {
			memberSym := &c.bind.Symbols()[memberID]
			members = append(members, typesystem.ObjectMember{
				Name: name,
				Type: c.typeOfMemberSymbol(memberSym),
			})
		}
	}
	flags := typesystem.OFInterface
	if sym.Flags.Has(binder.SFClass) {
		flags = typesystem.OFClass
	}
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{ObjectFlags: flags, Members: members})
}

func (c *Checker) typeOfMemberSymbol(sym *binder.Symbol) typesystem.TypeId {
	if sym.Flags.Has(binder.SFMethod) || sym.Flags.Has(binder.SFAccessor) || sym.Flags.Has(binder.SFConstructor) {
		decl := sym.Declarations[len(sym.Declarations)-1]
		return c.typeOfSignatureNode(decl)
	}
	decl := sym.ValueDeclaration
	if decl == nil && len(sym.Declarations) > 0 {
		decl = sym.Declarations[0]
	}
	return c.typeOfTypeNode(decl.Type)
}

func (c *Checker) typeOfTypeAliasDeclaration(sym *binder.Symbol) typesystem.TypeId {
	decl := sym.ValueDeclaration
	if decl == nil && len(sym.Declarations) > 0 {
		decl = sym.Declarations[0]
	}
	if decl == nil {
		return typesystem.AnyTypeId
	}
	return c.typeOfTypeNode(decl.Type)
}

// typeOfSymbolValue returns the type of a value-space symbol (used by
// `typeof x` queries and identifier expression typing): the declared
// annotation if present, otherwise the initializer's inferred type.
func (c *Checker) typeOfSymbolValue(id binder.SymbolID) typesystem.TypeId {
	sym := &c.bind.Symbols()[id]
	decl := sym.ValueDeclaration
	if decl == nil && len(sym.Declarations) > 0 {
		decl = sym.Declarations[0]
	}
	if decl == nil {
		return typesystem.AnyTypeId
	}
	switch {
	case sym.Flags.Has(binder.SFFunction), sym.Flags.Has(binder.SFMethod):
		return c.typeOfSignatureNode(decl)
	case sym.Flags.Has(binder.SFClass):
		return c.typeOfSymbolType(id)
	}
	if decl.Type != nil {
		return c.typeOfTypeNode(decl.Type)
	}
	if decl.Initializer != nil {
		return c.checkExpression(decl.Initializer)
	}
	return typesystem.AnyTypeId
}
