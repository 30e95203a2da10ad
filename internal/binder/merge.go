package binder

// canMerge reports whether a symbol already carrying flags `existing`
// may absorb a new declaration carrying `incoming`, per the
// declaration-merging matrix: interface merges with interface or
// class, function merges with namespace, enum merges with namespace,
// and namespace merges with namespace. A pair that occupies disjoint
// declaration spaces — a type
// alias and a function sharing a name, for instance — never collides
// in the first place, since SFValue and SFType are looked up
// independently by the checker; such a pair also merges onto one
// symbol so its declarations and members stay reachable from a single
// SymbolID. Any other combination — most commonly two plain
// variables, or a class redeclared as anything but an interface — is incompatible
// and left as two separate symbols.
func canMerge(existing, incoming SymbolFlags) bool {
	if existing.Has(SFInterface) && incoming.Has(SFInterface) {
		return true
	}
	if (existing.Has(SFInterface) && incoming.Has(SFClass)) ||
		(existing.Has(SFClass) && incoming.Has(SFInterface)) {
		return true
	}
	if (existing.Has(SFFunction) && incoming.Intersects(SFNamespace)) ||
		(existing.Intersects(SFNamespace) && incoming.Has(SFFunction)) {
		return true
	}
	if (existing.Intersects(SFEnum) && incoming.Intersects(SFNamespace)) ||
		(existing.Intersects(SFNamespace) && incoming.Intersects(SFEnum)) {
		return true
	}
	if existing.Intersects(SFNamespace) && incoming.Intersects(SFNamespace) {
		return true
	}
	if occupiesDisjointSpaces(existing, incoming) {
		return true
	}
	return false
}

// occupiesDisjointSpaces reports whether existing and incoming share no
// declaration space at all — neither both occupy the value space nor
// both occupy the type space — meaning the two declarations can never
// collide regardless of their specific subkinds (e.g. a type alias,
// which is pure type-space, and a function, which is pure value-space).
func occupiesDisjointSpaces(existing, incoming SymbolFlags) bool {
	sharesValue := existing.Intersects(SFValue) && incoming.Intersects(SFValue)
	sharesType := existing.Intersects(SFType) && incoming.Intersects(SFType)
	return !sharesValue && !sharesType
}
