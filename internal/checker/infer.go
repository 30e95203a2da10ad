package checker

import "github.com/funvibe/rscript/internal/typesystem"

// instantiateSignatureFromArgs infers sig's own type parameters from
// the supplied argument types (spec §4.6's type inference: "covariant
// from parameter positions... most-specific common supertype...
// fallback to default/constraint"), then substitutes the inferred
// types through sig's parameters and return type. A signature with no
// type parameters of its own is returned unchanged.
func (c *Checker) instantiateSignatureFromArgs(sig typesystem.Signature, argTypes []typesystem.TypeId) typesystem.Signature {
	if len(sig.TypeParameters) == 0 {
		return sig
	}
	inferred := make(map[typesystem.TypeId][]typesystem.TypeId, len(sig.TypeParameters))
	for i, p := range sig.Parameters {
		if i >= len(argTypes) {
			break
		}
		c.collectInferenceCandidates(p.Type, argTypes[i], sig.TypeParameters, inferred)
	}

	subst := make(map[typesystem.TypeId]typesystem.TypeId, len(sig.TypeParameters))
	for _, tp := range sig.TypeParameters {
		candidates := inferred[tp]
		subst[tp] = c.bestCommonSupertype(candidates, tp)
	}

	out := sig
	out.Parameters = make([]typesystem.SignatureParameter, len(sig.Parameters))
	for i, p := range sig.Parameters {
		out.Parameters[i] = typesystem.SignatureParameter{
			Name:     p.Name,
			Optional: p.Optional,
			Type:     c.substituteShallow(p.Type, subst),
		}
	}
	out.ReturnType = c.substituteShallow(sig.ReturnType, subst)
	out.TypeParameters = nil
	return out
}

// collectInferenceCandidates walks paramType looking for a naked
// occurrence of one of typeParams, recording argType as a covariant
// candidate for it. When both sides are object types it recurses, to
// any depth, into their index-signature value types and into members
// of the same name; other positions (unions, tuples, signatures) are
// not inspected, and a parameter left without a candidate widens to
// its default/constraint instead.
func (c *Checker) collectInferenceCandidates(paramType, argType typesystem.TypeId, typeParams []typesystem.TypeId, out map[typesystem.TypeId][]typesystem.TypeId) {
	for _, tp := range typeParams {
		if paramType == tp {
			out[tp] = append(out[tp], argType)
			return
		}
	}
	pt := c.types.Get(paramType)
	at := c.types.Get(argType)
	if pt.Flags.Has(typesystem.TFObject) && at.Flags.Has(typesystem.TFObject) {
		for _, pii := range pt.Kind.IndexInfos {
			for _, aii := range at.Kind.IndexInfos {
				c.collectInferenceCandidates(pii.ValueType, aii.ValueType, typeParams, out)
			}
		}
		for _, pm := range pt.Kind.Members {
			if am, ok := findMember(at.Kind.Members, pm.Name); ok {
				c.collectInferenceCandidates(pm.Type, am.Type, typeParams, out)
			}
		}
	}
}

// bestCommonSupertype picks a single type representing every inferred
// candidate: a canonicalized union when more than one distinct
// candidate was seen (the "most-specific common supertype" spec asks
// for, approximated here as their union rather than computing a true
// least-upper-bound lattice), or the type parameter's own
// constraint/default when nothing could be inferred.
func (c *Checker) bestCommonSupertype(candidates []typesystem.TypeId, typeParam typesystem.TypeId) typesystem.TypeId {
	if len(candidates) == 0 {
		tp := c.types.Get(typeParam)
		if tp.Kind.Default != typesystem.NoType {
			return tp.Kind.Default
		}
		if tp.Kind.Constraint != typesystem.NoType {
			return tp.Kind.Constraint
		}
		return typesystem.AnyTypeId
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return c.types.UnionOf(candidates)
}

// substituteShallow replaces every direct (non-nested) occurrence of a
// key in subst; nested object/union positions are left as-is, since a
// full recursive instantiation belongs to a generic-type materializer
// this checker does not build out beyond call-site inference.
func (c *Checker) substituteShallow(t typesystem.TypeId, subst map[typesystem.TypeId]typesystem.TypeId) typesystem.TypeId {
	if replacement, ok := subst[t]; ok {
		return replacement
	}
	return t
}
