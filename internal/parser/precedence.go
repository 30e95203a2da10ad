package parser

import "github.com/funvibe/rscript/internal/syntaxkind"

// OperatorPrecedence is the full ladder from the lowest-binding
// comma operator up through primary expressions, ported from
// the original implementation's precedence table (spec §4.4 gives
// only the NullishCoalescing=5..Exponentiation=16 sub-range; the rest
// is supplemented here).
type OperatorPrecedence int

const (
	PrecComma OperatorPrecedence = iota
	PrecSpread
	PrecYield
	PrecAssignment
	PrecConditional
	PrecNullishCoalescing
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitwiseOr
	PrecBitwiseXor
	PrecBitwiseAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponentiation
	PrecUnary
	PrecUpdate
	PrecLeftHandSide
	PrecMember
	PrecPrimary
	PrecHighest
	PrecInvalid OperatorPrecedence = 255
)

// BinaryOperatorPrecedence returns kind's precedence as a binary
// operator, or PrecInvalid if kind is not a binary operator.
func BinaryOperatorPrecedence(kind syntaxkind.Kind) OperatorPrecedence {
	switch kind {
	case syntaxkind.QuestionQuestionToken:
		return PrecNullishCoalescing
	case syntaxkind.BarBarToken:
		return PrecLogicalOr
	case syntaxkind.AmpersandAmpersandToken:
		return PrecLogicalAnd
	case syntaxkind.BarToken:
		return PrecBitwiseOr
	case syntaxkind.CaretToken:
		return PrecBitwiseXor
	case syntaxkind.AmpersandToken:
		return PrecBitwiseAnd
	case syntaxkind.EqualsEqualsToken, syntaxkind.ExclamationEqualsToken,
		syntaxkind.EqualsEqualsEqualsToken, syntaxkind.ExclamationEqualsEqualsToken:
		return PrecEquality
	case syntaxkind.LessThanToken, syntaxkind.GreaterThanToken,
		syntaxkind.LessThanEqualsToken, syntaxkind.GreaterThanEqualsToken,
		syntaxkind.InstanceOfKeyword, syntaxkind.InKeyword,
		syntaxkind.AsKeyword, syntaxkind.SatisfiesKeyword:
		return PrecRelational
	case syntaxkind.LessThanLessThanToken, syntaxkind.GreaterThanGreaterThanToken,
		syntaxkind.GreaterThanGreaterThanGreaterThanToken:
		return PrecShift
	case syntaxkind.PlusToken, syntaxkind.MinusToken:
		return PrecAdditive
	case syntaxkind.AsteriskToken, syntaxkind.SlashToken, syntaxkind.PercentToken:
		return PrecMultiplicative
	case syntaxkind.AsteriskAsteriskToken:
		return PrecExponentiation
	default:
		return PrecInvalid
	}
}

// IsRightAssociative reports whether kind associates right-to-left.
// Exponentiation is the only right-associative binary operator; every
// assignment form is also right-associative.
func IsRightAssociative(kind syntaxkind.Kind) bool {
	if kind == syntaxkind.AsteriskAsteriskToken {
		return true
	}
	switch kind {
	case syntaxkind.EqualsToken, syntaxkind.PlusEqualsToken, syntaxkind.MinusEqualsToken,
		syntaxkind.AsteriskEqualsToken, syntaxkind.AsteriskAsteriskEqualsToken,
		syntaxkind.SlashEqualsToken, syntaxkind.PercentEqualsToken,
		syntaxkind.LessThanLessThanEqualsToken, syntaxkind.GreaterThanGreaterThanEqualsToken,
		syntaxkind.GreaterThanGreaterThanGreaterThanEqualsToken, syntaxkind.AmpersandEqualsToken,
		syntaxkind.BarEqualsToken, syntaxkind.CaretEqualsToken,
		syntaxkind.BarBarEqualsToken, syntaxkind.AmpersandAmpersandEqualsToken,
		syntaxkind.QuestionQuestionEqualsToken:
		return true
	default:
		return false
	}
}

// IsAssignmentOperator reports whether kind is `=` or a compound
// assignment form.
func IsAssignmentOperator(kind syntaxkind.Kind) bool {
	return BinaryOperatorPrecedence(kind) == PrecInvalid && IsRightAssociative(kind) && kind != syntaxkind.AsteriskAsteriskToken
}

// CanStartStatement is the fixed token set spec.md §4.4 enumerates:
// any token that may begin a statement.
func CanStartStatement(kind syntaxkind.Kind) bool {
	switch kind {
	case syntaxkind.OpenBraceToken, syntaxkind.VarKeyword, syntaxkind.LetKeyword,
		syntaxkind.ConstKeyword, syntaxkind.FunctionKeyword, syntaxkind.ClassKeyword,
		syntaxkind.IfKeyword, syntaxkind.DoKeyword, syntaxkind.WhileKeyword,
		syntaxkind.ForKeyword, syntaxkind.ContinueKeyword, syntaxkind.BreakKeyword,
		syntaxkind.ReturnKeyword, syntaxkind.WithKeyword, syntaxkind.SwitchKeyword,
		syntaxkind.ThrowKeyword, syntaxkind.TryKeyword, syntaxkind.DebuggerKeyword,
		syntaxkind.SemicolonToken, syntaxkind.ExportKeyword, syntaxkind.ImportKeyword,
		syntaxkind.InterfaceKeyword, syntaxkind.TypeKeyword, syntaxkind.EnumKeyword,
		syntaxkind.AbstractKeyword, syntaxkind.AsyncKeyword, syntaxkind.DeclareKeyword,
		syntaxkind.ModuleKeyword, syntaxkind.NamespaceKeyword, syntaxkind.UsingKeyword,
		syntaxkind.Identifier:
		return true
	default:
		return IsLeftHandSideExpressionStart(kind)
	}
}

// IsLeftHandSideExpressionStart reports whether kind can begin a
// left-hand-side expression (the "all expression-starters" clause of
// spec §4.4's statement-start set).
func IsLeftHandSideExpressionStart(kind syntaxkind.Kind) bool {
	switch kind {
	case syntaxkind.Identifier, syntaxkind.PrivateIdentifier, syntaxkind.NumericLiteral,
		syntaxkind.BigIntLiteral, syntaxkind.StringLiteral, syntaxkind.RegularExpressionLiteral,
		syntaxkind.NoSubstitutionTemplateLiteral, syntaxkind.TemplateHead,
		syntaxkind.OpenParenToken, syntaxkind.OpenBracketToken, syntaxkind.OpenBraceToken,
		syntaxkind.FunctionKeyword, syntaxkind.ClassKeyword, syntaxkind.NewKeyword,
		syntaxkind.ThisKeyword, syntaxkind.SuperKeyword, syntaxkind.TrueKeyword,
		syntaxkind.FalseKeyword, syntaxkind.NullKeyword, syntaxkind.TypeOfKeyword,
		syntaxkind.DeleteKeyword, syntaxkind.VoidKeyword, syntaxkind.AwaitKeyword,
		syntaxkind.YieldKeyword, syntaxkind.PlusToken, syntaxkind.MinusToken,
		syntaxkind.TildeToken, syntaxkind.ExclamationToken, syntaxkind.PlusPlusToken,
		syntaxkind.MinusMinusToken, syntaxkind.LessThanToken, syntaxkind.AsyncKeyword:
		return true
	default:
		return false
	}
}
