package typesystem_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

func TestNewTypeTable_WellKnownIds(t *testing.T) {
	table := typesystem.NewTypeTable()
	cases := []struct {
		id    typesystem.TypeId
		flags typesystem.TypeFlags
	}{
		{typesystem.AnyTypeId, typesystem.TFAny},
		{typesystem.StringTypeId, typesystem.TFString},
		{typesystem.NumberTypeId, typesystem.TFNumber},
		{typesystem.NeverTypeId, typesystem.TFNever},
		{typesystem.TrueTypeId, typesystem.TFBooleanLiteral},
		{typesystem.FalseTypeId, typesystem.TFBooleanLiteral},
	}
	for _, c := range cases {
		got := table.Get(c.id)
		if !got.Flags.Has(c.flags) {
			t.Errorf("type %d: expected flags %v, got %v", c.id, c.flags, got.Flags)
		}
	}
	if table.Len() != 14 {
		t.Fatalf("expected 14 preseeded types, got %d", table.Len())
	}
}

func TestUnionOf_FlattensDedupesAndSorts(t *testing.T) {
	table := typesystem.NewTypeTable()
	inner := table.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.NumberTypeId})
	outer := table.UnionOf([]typesystem.TypeId{inner, typesystem.NumberTypeId, typesystem.BooleanTypeId})

	ty := table.Get(outer)
	if !ty.Flags.Has(typesystem.TFUnion) {
		t.Fatalf("expected a union type")
	}
	if len(ty.Kind.Types) != 3 {
		t.Fatalf("expected the nested union flattened and number deduped, got %d members: %v", len(ty.Kind.Types), ty.Kind.Types)
	}
}

func TestUnionOf_SingleMemberCollapses(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.StringTypeId})
	if got != typesystem.StringTypeId {
		t.Fatalf("expected union of one repeated member to collapse to that member, got %d", got)
	}
}

func TestUnionOf_AbsorbsNever(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.NeverTypeId})
	if got != typesystem.StringTypeId {
		t.Fatalf("expected union(string, never) = string, got %d", got)
	}
}

func TestUnionOf_AllNeverMembersYieldsNever(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.UnionOf([]typesystem.TypeId{typesystem.NeverTypeId, typesystem.NeverTypeId})
	if got != typesystem.NeverTypeId {
		t.Fatalf("expected union(never, never) = never, got %d", got)
	}
}

func TestUnionOf_AnyAbsorbsUnlessUnknownPresent(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.AnyTypeId})
	if got != typesystem.AnyTypeId {
		t.Fatalf("expected union(string, any) = any, got %d", got)
	}

	mixed := table.UnionOf([]typesystem.TypeId{typesystem.AnyTypeId, typesystem.UnknownTypeId})
	if mixed == typesystem.AnyTypeId {
		t.Fatalf("expected any not to absorb a union containing unknown")
	}
}

func TestIntersectionOf_AbsorbsNeverAheadOfAny(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.IntersectionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.NeverTypeId})
	if got != typesystem.NeverTypeId {
		t.Fatalf("expected intersection(string, never) = never, got %d", got)
	}

	gotWithAny := table.IntersectionOf([]typesystem.TypeId{typesystem.AnyTypeId, typesystem.NeverTypeId})
	if gotWithAny != typesystem.NeverTypeId {
		t.Fatalf("expected never to absorb ahead of any, got %d", gotWithAny)
	}
}

func TestIntersectionOf_AnyAbsorbs(t *testing.T) {
	table := typesystem.NewTypeTable()
	got := table.IntersectionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.AnyTypeId})
	if got != typesystem.AnyTypeId {
		t.Fatalf("expected intersection(string, any) = any, got %d", got)
	}
}

func TestIntersectionOf_Flattens(t *testing.T) {
	table := typesystem.NewTypeTable()
	in := intern.New()
	a := table.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags: typesystem.OFObjectLiteral,
		Members:     []typesystem.ObjectMember{{Name: in.Intern("x"), Type: typesystem.NumberTypeId}},
	})
	b := table.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags: typesystem.OFObjectLiteral,
		Members:     []typesystem.ObjectMember{{Name: in.Intern("y"), Type: typesystem.StringTypeId}},
	})
	inner := table.IntersectionOf([]typesystem.TypeId{a, b})
	outer := table.IntersectionOf([]typesystem.TypeId{inner, a})

	ty := table.Get(outer)
	if !ty.Flags.Has(typesystem.TFIntersection) {
		t.Fatalf("expected an intersection type")
	}
	if len(ty.Kind.Types) != 2 {
		t.Fatalf("expected the nested intersection flattened and %q deduped, got %d members", "a", len(ty.Kind.Types))
	}
}

func TestDistributeConditional_ExpandsOverUnionMembers(t *testing.T) {
	table := typesystem.NewTypeTable()
	param := table.AddType(typesystem.TFTypeParameter, typesystem.TypeKind{Constraint: typesystem.NoType})
	union := table.UnionOf([]typesystem.TypeId{typesystem.StringTypeId, typesystem.NumberTypeId})

	result := table.DistributeConditional(param, union, typesystem.StringTypeId, param, typesystem.NeverTypeId)
	ty := table.Get(result)
	if !ty.Flags.Has(typesystem.TFUnion) {
		t.Fatalf("expected distribution to produce a union of per-member conditionals")
	}
	if len(ty.Kind.Types) != 2 {
		t.Fatalf("expected 2 branches, one per union member, got %d", len(ty.Kind.Types))
	}
	for _, branch := range ty.Kind.Types {
		branchTy := table.Get(branch)
		if !branchTy.Flags.Has(typesystem.TFConditional) {
			t.Errorf("expected each distributed branch to be a conditional type")
		}
	}
}
