package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/typesystem"
)

// typeOfBinaryExpression types a BinaryExpression by operator family,
// per spec §4.6's binary operator table: arithmetic operators (other
// than `+`, which also covers string concatenation) require both
// sides to be number-like and produce number; comparison/equality
// operators produce boolean; `&&` produces the right operand's type
// and `||`/`??` the union of both operand types; assignment yields the right-hand
// side's type; everything else falls back to the left operand's type.
func (c *Checker) typeOfBinaryExpression(n *ast.Node) typesystem.TypeId {
	left := c.checkExpression(n.Left)
	right := c.checkExpression(n.Right)

	switch n.Operator {
	case syntaxkind.PlusToken:
		lt, rt := c.types.Get(left), c.types.Get(right)
		if lt.Flags.Has(typesystem.TFString) || rt.Flags.Has(typesystem.TFString) ||
			lt.Flags.Has(typesystem.TFStringLiteral) || rt.Flags.Has(typesystem.TFStringLiteral) {
			return typesystem.StringTypeId
		}
		if !c.isNumberLike(left) || !c.isNumberLike(right) {
			c.reportOperatorMismatch(n, left, right)
		}
		return typesystem.NumberTypeId

	case syntaxkind.MinusToken, syntaxkind.AsteriskToken, syntaxkind.SlashToken,
		syntaxkind.PercentToken, syntaxkind.AsteriskAsteriskToken,
		syntaxkind.AmpersandToken, syntaxkind.BarToken, syntaxkind.CaretToken,
		syntaxkind.LessThanLessThanToken, syntaxkind.GreaterThanGreaterThanToken,
		syntaxkind.GreaterThanGreaterThanGreaterThanToken:
		if !c.isNumberLike(left) || !c.isNumberLike(right) {
			c.reportOperatorMismatch(n, left, right)
		}
		return typesystem.NumberTypeId

	case syntaxkind.LessThanToken, syntaxkind.GreaterThanToken,
		syntaxkind.LessThanEqualsToken, syntaxkind.GreaterThanEqualsToken,
		syntaxkind.EqualsEqualsToken, syntaxkind.ExclamationEqualsToken,
		syntaxkind.EqualsEqualsEqualsToken, syntaxkind.ExclamationEqualsEqualsToken,
		syntaxkind.InstanceOfKeyword, syntaxkind.InKeyword:
		return typesystem.BooleanTypeId

	case syntaxkind.AmpersandAmpersandToken:
		return right
	case syntaxkind.BarBarToken, syntaxkind.QuestionQuestionToken:
		return c.types.UnionOf([]typesystem.TypeId{left, right})

	case syntaxkind.CommaToken:
		return right

	default:
		if isCompoundAssignment(n.Operator) || n.Operator == syntaxkind.EqualsToken {
			return right
		}
		return left
	}
}

func (c *Checker) isNumberLike(t typesystem.TypeId) bool {
	ty := c.types.Get(t)
	return ty.Flags.Has(typesystem.TFNumber) || ty.Flags.Has(typesystem.TFNumberLiteral) ||
		ty.Flags.Has(typesystem.TFAny) || ty.Flags.Has(typesystem.TFBigInt)
}

func (c *Checker) reportOperatorMismatch(n *ast.Node, left, right typesystem.TypeId) {
	c.reportAt(n, diagnostic.MsgOperatorCannotBeApplied, n.Operator.String(), c.typeNameFor(left), c.typeNameFor(right))
}

func isCompoundAssignment(op syntaxkind.Kind) bool {
	switch op {
	case syntaxkind.PlusEqualsToken, syntaxkind.MinusEqualsToken, syntaxkind.AsteriskEqualsToken,
		syntaxkind.AsteriskAsteriskEqualsToken, syntaxkind.SlashEqualsToken, syntaxkind.PercentEqualsToken,
		syntaxkind.LessThanLessThanEqualsToken, syntaxkind.GreaterThanGreaterThanEqualsToken,
		syntaxkind.GreaterThanGreaterThanGreaterThanEqualsToken, syntaxkind.AmpersandEqualsToken,
		syntaxkind.BarEqualsToken, syntaxkind.CaretEqualsToken, syntaxkind.BarBarEqualsToken,
		syntaxkind.AmpersandAmpersandEqualsToken, syntaxkind.QuestionQuestionEqualsToken:
		return true
	default:
		return false
	}
}
