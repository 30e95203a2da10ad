package syntaxkind_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/stretchr/testify/assert"
)

func TestKindStringKnown(t *testing.T) {
	testCases := []struct {
		name string
		kind syntaxkind.Kind
		want string
	}{
		{"unknown", syntaxkind.Unknown, "Unknown"},
		{"identifier", syntaxkind.Identifier, "Identifier"},
		{"string literal", syntaxkind.StringLiteral, "StringLiteral"},
		{"source file", syntaxkind.SourceFile, "SourceFile"},
		{"call expression", syntaxkind.CallExpression, "CallExpression"},
		{"missing expression", syntaxkind.MissingExpression, "MissingExpression"},
		{"interface keyword", syntaxkind.InterfaceKeyword, "InterfaceKeyword"},
		{"conditional type", syntaxkind.ConditionalType, "ConditionalType"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.String())
		})
	}
}

func TestKindStringOutOfRangeFallsBack(t *testing.T) {
	huge := syntaxkind.Kind(65000)
	assert.Equal(t, "Kind(invalid)", huge.String())
}

func TestKindsAreDistinct(t *testing.T) {
	seen := map[syntaxkind.Kind]bool{}
	all := []syntaxkind.Kind{
		syntaxkind.Unknown, syntaxkind.EndOfFile, syntaxkind.Identifier,
		syntaxkind.StringLiteral, syntaxkind.NumericLiteral, syntaxkind.SourceFile,
		syntaxkind.Block, syntaxkind.CallExpression, syntaxkind.BinaryExpression,
		syntaxkind.InterfaceDeclaration, syntaxkind.ClassDeclaration,
		syntaxkind.UnionType, syntaxkind.IntersectionType,
	}
	for _, k := range all {
		assert.False(t, seen[k], "duplicate kind value for %v", k)
		seen[k] = true
	}
}

func TestTokenFlagsHas(t *testing.T) {
	f := syntaxkind.TFPrecedingLineBreak | syntaxkind.TFUnterminated
	assert.True(t, f.Has(syntaxkind.TFPrecedingLineBreak))
	assert.True(t, f.Has(syntaxkind.TFUnterminated))
	assert.False(t, f.Has(syntaxkind.TFContainsSeparator))
	assert.True(t, f.Has(syntaxkind.TFPrecedingLineBreak|syntaxkind.TFUnterminated))
}

func TestNodeFlagsHas(t *testing.T) {
	f := syntaxkind.NFLet | syntaxkind.NFAmbient
	assert.True(t, f.Has(syntaxkind.NFLet))
	assert.False(t, f.Has(syntaxkind.NFConst))
	assert.True(t, f.Has(syntaxkind.NFAmbient))
}

func TestNodeFlagsNoneIsZeroValue(t *testing.T) {
	var f syntaxkind.NodeFlags
	assert.Equal(t, syntaxkind.NFNone, f)
}
