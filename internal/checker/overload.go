package checker

import "github.com/funvibe/rscript/internal/typesystem"

// resolveOverload picks the first declaration-order signature every
// argument type is assignable into (spec §4.6: "declaration-order
// first-match"), inferring any of that signature's own type
// parameters from the argument types along the way. When no candidate
// matches, it falls back to the best-matching (most arguments
// accepted) candidate so a call expression still gets a return type
// to carry forward, and reports one no-overload-matches diagnostic
// rather than one per rejected candidate.
func (c *Checker) resolveOverload(candidates []typesystem.Signature, argTypes []typesystem.TypeId) (typesystem.Signature, bool) {
	if len(candidates) == 0 {
		return typesystem.Signature{ReturnType: typesystem.AnyTypeId}, false
	}
	var best typesystem.Signature
	bestScore := -1
	for _, sig := range candidates {
		instantiated := c.instantiateSignatureFromArgs(sig, argTypes)
		if ok, score := c.signatureMatchesArgs(instantiated, argTypes); ok {
			return instantiated, true
		} else if score > bestScore {
			bestScore = score
			best = instantiated
		}
	}
	return best, false
}

// signatureMatchesArgs reports whether every argType is assignable to
// its corresponding parameter, and the arity is compatible; score is
// the number of positionally-compatible arguments, used to rank the
// closest non-matching candidate for the fallback diagnostic path.
func (c *Checker) signatureMatchesArgs(sig typesystem.Signature, argTypes []typesystem.TypeId) (bool, int) {
	if len(argTypes) < sig.MinArgumentCount {
		return false, 0
	}
	if len(argTypes) > len(sig.Parameters) && !sig.HasRestParameter {
		return false, 0
	}
	score := 0
	ok := true
	for i, at := range argTypes {
		var pt typesystem.TypeId
		switch {
		case i < len(sig.Parameters):
			pt = sig.Parameters[i].Type
		case sig.HasRestParameter:
			pt = sig.Parameters[len(sig.Parameters)-1].Type
		default:
			ok = false
			continue
		}
		if c.isAssignableTo(at, pt) {
			score++
		} else {
			ok = false
		}
	}
	return ok, score
}
