package ast_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordsNodeInSourceFile(t *testing.T) {
	a := arena.New()
	sf := ast.NewSourceFile("a.ts", "const x = 1;")

	n := ast.New(a, sf, syntaxkind.NumericLiteral, text.NewRange(10, 11))
	require.Len(t, sf.Nodes, 1)
	assert.Same(t, n, sf.NodeAt(0))
	assert.Equal(t, syntaxkind.NumericLiteral, n.Kind)
}

func TestMissingNodeIsFlagged(t *testing.T) {
	a := arena.New()
	sf := ast.NewSourceFile("a.ts", "const x")

	m := ast.Missing(a, sf, syntaxkind.MissingExpression, 7)
	assert.True(t, m.IsMissing())
	assert.True(t, m.Flags.Has(syntaxkind.NFContainsError))
	assert.Equal(t, text.Pos(7), m.Range.Start)
}

func TestLinkParentsAssignsParentIDs(t *testing.T) {
	a := arena.New()
	sf := ast.NewSourceFile("a.ts", "x + 1;")

	lit := ast.New(a, sf, syntaxkind.NumericLiteral, text.NewRange(4, 5))
	ident := ast.New(a, sf, syntaxkind.Identifier, text.NewRange(0, 1))
	bin := ast.New(a, sf, syntaxkind.BinaryExpression, text.NewRange(0, 5))
	bin.Left = ident
	bin.Right = lit
	bin.Operator = syntaxkind.PlusToken

	exprStmt := ast.New(a, sf, syntaxkind.ExpressionStatement, text.NewRange(0, 6))
	exprStmt.Expr = bin
	sf.Statements = append(sf.Statements, exprStmt)

	sf.LinkParents()

	exprStmtID, err := indexOf(sf, exprStmt)
	require.NoError(t, err)
	binID, err := indexOf(sf, bin)
	require.NoError(t, err)

	assert.Equal(t, exprStmtID, bin.Parent)
	assert.Equal(t, binID, ident.Parent)
	assert.Equal(t, binID, lit.Parent)
}

func indexOf(sf *ast.SourceFile, target *ast.Node) (ast.NodeID, error) {
	for i, n := range sf.Nodes {
		if n == target {
			return ast.NodeID(i), nil
		}
	}
	return ast.NoNode, assertNotFoundErr{}
}

type assertNotFoundErr struct{}

func (assertNotFoundErr) Error() string { return "node not found" }

func TestChildrenCollectsPopulatedSlots(t *testing.T) {
	a := arena.New()
	sf := ast.NewSourceFile("a.ts", "[1, 2]")

	el1 := ast.New(a, sf, syntaxkind.NumericLiteral, text.NewRange(1, 2))
	el2 := ast.New(a, sf, syntaxkind.NumericLiteral, text.NewRange(4, 5))
	arr := ast.New(a, sf, syntaxkind.ArrayLiteralExpression, text.NewRange(0, 6))
	arr.List = []*ast.Node{el1, el2}

	children := arr.Children()
	require.Len(t, children, 2)
	assert.Same(t, el1, children[0])
	assert.Same(t, el2, children[1])
}
