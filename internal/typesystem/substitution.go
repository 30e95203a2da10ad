package typesystem

// NewConditional allocates `checkType extends extendsType ? trueType : falseType`.
func (t *TypeTable) NewConditional(checkType, extendsType, trueType, falseType TypeId) TypeId {
	return t.AddType(TFConditional, TypeKind{
		CheckType:   checkType,
		ExtendsType: extendsType,
		TrueType:    trueType,
		FalseType:   falseType,
	})
}

// Substitute produces the per-branch stand-in a conditional type's true/
// false branch sees in place of a naked (unconstrained-by-this-
// conditional) type parameter. When a conditional type distributes over
// a union check type, each union member is checked independently and,
// inside that branch, any naked occurrence of the check type parameter
// must resolve to the specific member under test rather than the whole
// union — that per-branch substitute is this Substitution type. Its
// Kind.SubstConstraint keeps the parameter's original constraint around
// so a later nested conditional distributing over the same parameter can
// still see what it was declared to extend.
func (t *TypeTable) Substitute(baseType, constraint TypeId) TypeId {
	return t.AddType(TFSubstitution, TypeKind{BaseType: baseType, SubstConstraint: constraint})
}

// DistributeConditional expands a conditional type whose check type is a
// naked type parameter, instantiated with a union, into a union of
// per-member conditionals, per the "naked type parameter" distribution
// rule: instantiating `T extends U ? X : Y` at `T := A | B` produces
// `(A extends U ? X : Y) | (B extends U ? X : Y)`, substituting the
// corresponding member (wrapped in a Substitution so later steps can
// still recover typeParam's constraint) for every naked occurrence of
// typeParam within trueType/falseType. Callers are expected to have
// already confirmed the check position is naked (not wrapped in an
// array or object position) before distributing, since that nakedness
// test depends on how trueType/falseType is assembled upstream of this
// type table.
func (t *TypeTable) DistributeConditional(typeParam, unionValue, extendsType, trueType, falseType TypeId) TypeId {
	paramTy := t.Get(typeParam)
	union := t.Get(unionValue)
	if !union.Flags.Has(TFUnion) {
		return t.NewConditional(unionValue, extendsType, trueType, falseType)
	}

	branches := make([]TypeId, 0, len(union.Kind.Types))
	for _, member := range union.Kind.Types {
		subst := t.Substitute(member, paramTy.Kind.Constraint)
		branchTrue := t.substTypeParameter(trueType, typeParam, subst)
		branchFalse := t.substTypeParameter(falseType, typeParam, subst)
		branches = append(branches, t.NewConditional(member, extendsType, branchTrue, branchFalse))
	}
	return t.UnionOf(branches)
}

// substTypeParameter walks a type shallowly, replacing every direct
// reference to target with replacement. Deliberately shallow (object
// member types, signatures, and nested conditionals are left alone) —
// the checker's instantiation pass is where a full recursive
// substitution belongs; this only handles the naked-reference case
// DistributeConditional needs.
func (t *TypeTable) substTypeParameter(in, target, replacement TypeId) TypeId {
	if in == target {
		return replacement
	}
	return in
}
