package checker

import (
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

// isAssignableTo reports whether a value of type source may be used
// where target is expected, per spec §4.6's assignability rules: any
// is assignable to/from everything; unknown accepts everything but is
// itself only assignable to unknown/any; never is a subtype of every
// type; everything else falls through to structural comparison.
func (c *Checker) isAssignableTo(source, target typesystem.TypeId) bool {
	return c.isAssignableToVisited(source, target, make(map[[2]typesystem.TypeId]bool))
}

func (c *Checker) isAssignableToVisited(source, target typesystem.TypeId, seen map[[2]typesystem.TypeId]bool) bool {
	if source == target {
		return true
	}
	key := [2]typesystem.TypeId{source, target}
	if seen[key] {
		// A cycle in a recursive structural comparison (two interfaces
		// referencing each other) is assumed compatible; the first pass
		// around the cycle already checked every member it could.
		return true
	}
	seen[key] = true

	src := c.types.Get(source)
	dst := c.types.Get(target)

	if src.Flags.Has(typesystem.TFAny) || dst.Flags.Has(typesystem.TFAny) {
		return true
	}
	if src.Flags.Has(typesystem.TFNever) {
		return true
	}
	if dst.Flags.Has(typesystem.TFUnknown) {
		return true
	}
	if src.Flags.Has(typesystem.TFUnknown) {
		return false
	}
	if dst.Flags.Has(typesystem.TFNever) {
		return false
	}

	if dst.Flags.Has(typesystem.TFUnion) {
		for _, m := range dst.Kind.Types {
			if c.isAssignableToVisited(source, m, seen) {
				return true
			}
		}
		return false
	}
	if src.Flags.Has(typesystem.TFUnion) {
		for _, m := range src.Kind.Types {
			if !c.isAssignableToVisited(m, target, seen) {
				return false
			}
		}
		return true
	}
	if dst.Flags.Has(typesystem.TFIntersection) {
		for _, m := range dst.Kind.Types {
			if !c.isAssignableToVisited(source, m, seen) {
				return false
			}
		}
		return true
	}
	if src.Flags.Has(typesystem.TFIntersection) {
		for _, m := range src.Kind.Types {
			if c.isAssignableToVisited(m, target, seen) {
				return true
			}
		}
		return false
	}

	// Literal types widen to their base primitive when the target asks
	// for the primitive rather than the exact literal.
	if src.Flags.Has(typesystem.TFStringLiteral) && dst.Flags.Has(typesystem.TFString) {
		return true
	}
	if src.Flags.Has(typesystem.TFNumberLiteral) && dst.Flags.Has(typesystem.TFNumber) {
		return true
	}
	if src.Flags.Has(typesystem.TFBooleanLiteral) && dst.Flags.Has(typesystem.TFBoolean) {
		return true
	}

	if src.Flags.Has(typesystem.TFObject) && dst.Flags.Has(typesystem.TFObject) {
		return c.isObjectAssignableTo(src, dst, seen)
	}

	// Neither side is structurally comparable (a primitive mismatch, or
	// an instantiable form this pass leaves uninstantiated); fall back
	// to flag-family equality as a conservative approximation.
	return src.Flags&typesystem.TFPrimitive != 0 && src.Flags&typesystem.TFPrimitive == dst.Flags&typesystem.TFPrimitive
}

// isObjectAssignableTo implements structural compatibility: every
// member target declares must be present on source with an assignable
// type, and every call/construct signature target declares must have
// a matching source signature (spec §4.6: "member presence + type
// assignable + parameters contravariant + return type covariant").
func (c *Checker) isObjectAssignableTo(src, dst *typesystem.Type, seen map[[2]typesystem.TypeId]bool) bool {
	for _, dm := range dst.Kind.Members {
		sm, ok := findMember(src.Kind.Members, dm.Name)
		if !ok {
			return false
		}
		if !c.isAssignableToVisited(sm.Type, dm.Type, seen) {
			return false
		}
	}
	for _, dsig := range dst.Kind.CallSignatures {
		if !c.hasCompatibleSignature(src.Kind.CallSignatures, dsig, seen) {
			return false
		}
	}
	for _, dsig := range dst.Kind.ConstructSignatures {
		if !c.hasCompatibleSignature(src.Kind.ConstructSignatures, dsig, seen) {
			return false
		}
	}
	return true
}

func findMember(members []typesystem.ObjectMember, name intern.Handle) (typesystem.ObjectMember, bool) {
	for _, m := range members {
		if m.Name == name {
			return m, true
		}
	}
	return typesystem.ObjectMember{}, false
}

func (c *Checker) hasCompatibleSignature(candidates []typesystem.Signature, target typesystem.Signature, seen map[[2]typesystem.TypeId]bool) bool {
	for _, s := range candidates {
		if c.signatureAssignableTo(s, target, seen) {
			return true
		}
	}
	return false
}

// signatureAssignableTo checks one candidate signature against a
// target: source must accept at least as many arguments as target
// requires, parameters compare contravariantly (target's parameter
// type must be assignable to source's, since a caller will pass a
// target-typed argument into the source function), and the return
// type compares covariantly.
func (c *Checker) signatureAssignableTo(source, target typesystem.Signature, seen map[[2]typesystem.TypeId]bool) bool {
	if source.MinArgumentCount > len(target.Parameters) && !target.HasRestParameter {
		return false
	}
	for i, sp := range source.Parameters {
		if i >= len(target.Parameters) {
			if !target.HasRestParameter {
				return false
			}
			continue
		}
		tp := target.Parameters[i]
		if !c.isAssignableToVisited(tp.Type, sp.Type, seen) {
			return false
		}
	}
	return c.isAssignableToVisited(source.ReturnType, target.ReturnType, seen)
}
