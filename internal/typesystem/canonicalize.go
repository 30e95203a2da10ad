package typesystem

import "sort"

// UnionOf builds a canonical union type from members, flattening nested
// unions, dropping duplicates, and collapsing a single remaining member
// to itself rather than wrapping it. Members are sorted by TypeId for a
// deterministic result independent of the order callers discovered them
// in (instantiation order, property declaration order, ...).
func (t *TypeTable) UnionOf(members []TypeId) TypeId {
	return t.unionOrIntersection(members, TFUnion)
}

// IntersectionOf is UnionOf's counterpart for `A & B & C`.
func (t *TypeTable) IntersectionOf(members []TypeId) TypeId {
	return t.unionOrIntersection(members, TFIntersection)
}

func (t *TypeTable) unionOrIntersection(members []TypeId, flag TypeFlags) TypeId {
	flat := make([]TypeId, 0, len(members))
	for _, id := range members {
		ty := t.Get(id)
		if ty.Flags.Has(flag) {
			flat = append(flat, ty.Kind.Types...)
		} else {
			flat = append(flat, id)
		}
	}

	if flag == TFIntersection {
		// never absorbs in intersection, ahead of any: never & anything
		// is never even when any is also present.
		for _, id := range flat {
			if id == NeverTypeId {
				return NeverTypeId
			}
		}
		// any absorbs in intersection once never is ruled out.
		for _, id := range flat {
			if id == AnyTypeId {
				return AnyTypeId
			}
		}
	} else {
		// union absorbs never: drop it from the member list entirely
		// rather than letting it survive as a distinct member.
		withoutNever := flat[:0]
		for _, id := range flat {
			if id != NeverTypeId {
				withoutNever = append(withoutNever, id)
			}
		}
		flat = withoutNever
		if len(flat) == 0 {
			return NeverTypeId
		}

		// any absorbs in union, except when mixed with unknown.
		hasUnknown := false
		for _, id := range flat {
			if id == UnknownTypeId {
				hasUnknown = true
				break
			}
		}
		if !hasUnknown {
			for _, id := range flat {
				if id == AnyTypeId {
					return AnyTypeId
				}
			}
		}
	}

	seen := make(map[TypeId]bool, len(flat))
	unique := make([]TypeId, 0, len(flat))
	for _, id := range flat {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	if len(unique) == 1 {
		return unique[0]
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return t.AddType(flag, TypeKind{Types: unique})
}
