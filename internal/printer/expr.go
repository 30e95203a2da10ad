package printer

import "github.com/funvibe/rscript/internal/ast"
import "github.com/funvibe/rscript/internal/syntaxkind"

// binaryPrecedence mirrors the teacher's operatorPrecedence table
// (higher binds tighter), retargeted from the teacher's own operator
// set to this language's token kinds so emitExpr can decide when a
// nested binary expression needs parenthesizing to round-trip.
var binaryPrecedence = map[syntaxkind.Kind]int{
	syntaxkind.BarBarToken:            1,
	syntaxkind.QuestionQuestionToken:  1,
	syntaxkind.AmpersandAmpersandToken: 2,
	syntaxkind.BarToken:               3,
	syntaxkind.CaretToken:             4,
	syntaxkind.AmpersandToken:         5,
	syntaxkind.EqualsEqualsToken:                6,
	syntaxkind.ExclamationEqualsToken:           6,
	syntaxkind.EqualsEqualsEqualsToken:           6,
	syntaxkind.ExclamationEqualsEqualsToken:     6,
	syntaxkind.LessThanToken:           7,
	syntaxkind.GreaterThanToken:        7,
	syntaxkind.LessThanEqualsToken:     7,
	syntaxkind.GreaterThanEqualsToken:  7,
	syntaxkind.InstanceOfKeyword:       7,
	syntaxkind.InKeyword:               7,
	syntaxkind.LessThanLessThanToken:                  8,
	syntaxkind.GreaterThanGreaterThanToken:             8,
	syntaxkind.GreaterThanGreaterThanGreaterThanToken:  8,
	syntaxkind.PlusToken:  9,
	syntaxkind.MinusToken: 9,
	syntaxkind.AsteriskToken:  10,
	syntaxkind.SlashToken:     10,
	syntaxkind.PercentToken:   10,
	syntaxkind.AsteriskAsteriskToken: 11,
}

var rightAssociative = map[syntaxkind.Kind]bool{
	syntaxkind.AsteriskAsteriskToken: true,
}

// operatorText renders a token kind as the source text it was scanned
// from, since syntaxkind.Kind.String() returns the Kind's symbolic
// name ("PlusToken") rather than its source spelling.
func operatorText(k syntaxkind.Kind) string {
	if s, ok := operatorTextTable[k]; ok {
		return s
	}
	return k.String()
}

var operatorTextTable = map[syntaxkind.Kind]string{
	syntaxkind.PlusToken:     "+",
	syntaxkind.MinusToken:    "-",
	syntaxkind.AsteriskToken: "*",
	syntaxkind.SlashToken:    "/",
	syntaxkind.PercentToken:  "%",
	syntaxkind.AsteriskAsteriskToken: "**",
	syntaxkind.AmpersandToken: "&",
	syntaxkind.BarToken:       "|",
	syntaxkind.CaretToken:     "^",
	syntaxkind.LessThanLessThanToken:                 "<<",
	syntaxkind.GreaterThanGreaterThanToken:            ">>",
	syntaxkind.GreaterThanGreaterThanGreaterThanToken: ">>>",
	syntaxkind.LessThanToken:          "<",
	syntaxkind.GreaterThanToken:       ">",
	syntaxkind.LessThanEqualsToken:    "<=",
	syntaxkind.GreaterThanEqualsToken: ">=",
	syntaxkind.EqualsEqualsToken:             "==",
	syntaxkind.ExclamationEqualsToken:        "!=",
	syntaxkind.EqualsEqualsEqualsToken:       "===",
	syntaxkind.ExclamationEqualsEqualsToken:  "!==",
	syntaxkind.AmpersandAmpersandToken: "&&",
	syntaxkind.BarBarToken:             "||",
	syntaxkind.QuestionQuestionToken:   "??",
	syntaxkind.InstanceOfKeyword:       "instanceof",
	syntaxkind.InKeyword:               "in",
	syntaxkind.EqualsToken:             "=",
	syntaxkind.PlusEqualsToken:         "+=",
	syntaxkind.MinusEqualsToken:        "-=",
	syntaxkind.AsteriskEqualsToken:     "*=",
	syntaxkind.SlashEqualsToken:        "/=",
	syntaxkind.PercentEqualsToken:      "%=",
	syntaxkind.CommaToken:              ",",
	syntaxkind.ExclamationToken:        "!",
	syntaxkind.TildeToken:              "~",
	syntaxkind.PlusPlusToken:           "++",
	syntaxkind.MinusMinusToken:         "--",
}

// emitExpr writes n, adding parentheses only where the precedence
// comparison against parentPrec/isRight demands it — the same
// minimal-parens approach as the teacher's printExpr, retargeted from
// a string-keyed operator table to syntaxkind.Kind.
func (p *Printer) emitExpr(n *ast.Node, parentPrec int, isRight bool) {
	if n == nil {
		p.write("<???>")
		return
	}
	switch n.Kind {
	case syntaxkind.BinaryExpression:
		prec, known := binaryPrecedence[n.Operator]
		if !known {
			prec = 0
		}
		needParens := prec < parentPrec || (prec == parentPrec && isRight != rightAssociative[n.Operator])
		if needParens {
			p.write("(")
		}
		p.emitExpr(n.Left, prec, false)
		p.write(" " + operatorText(n.Operator) + " ")
		p.emitExpr(n.Right, prec, true)
		if needParens {
			p.write(")")
		}

	case syntaxkind.PrefixUnaryExpression:
		p.write(operatorText(n.Operator))
		p.emitExpr(n.Expr, 100, false)
	case syntaxkind.PostfixUnaryExpression:
		p.emitExpr(n.Expr, 100, false)
		p.write(operatorText(n.Operator))

	case syntaxkind.ParenthesizedExpression:
		p.emitExpr(n.Expr, 0, false)

	case syntaxkind.Identifier:
		p.write(p.in.Resolve(n.Name))
	case syntaxkind.NumericLiteral:
		p.write(formatFloat(n.Number))
	case syntaxkind.StringLiteral, syntaxkind.NoSubstitutionTemplateLiteral:
		p.write("\"" + n.Text + "\"")
	case syntaxkind.TrueKeyword:
		p.write("true")
	case syntaxkind.FalseKeyword:
		p.write("false")
	case syntaxkind.NullKeyword:
		p.write("null")
	case syntaxkind.ThisExpression:
		p.write("this")

	case syntaxkind.ArrayLiteralExpression:
		p.write("[")
		for i, el := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitExpr(el, 0, false)
		}
		p.write("]")

	case syntaxkind.ObjectLiteralExpression:
		p.write("{ ")
		for i, prop := range n.List {
			if i > 0 {
				p.write(", ")
			}
			if prop.DeclName != nil {
				p.write(p.in.Resolve(prop.DeclName.Name))
			}
			if prop.Initializer != nil {
				p.write(": ")
				p.emitExpr(prop.Initializer, 0, false)
			}
		}
		p.write(" }")

	case syntaxkind.ConditionalExpression:
		needParens := parentPrec > 0
		if needParens {
			p.write("(")
		}
		p.emitExpr(n.Expr, 1, false)
		p.write(" ? ")
		p.emitExpr(n.Left, 0, false)
		p.write(" : ")
		p.emitExpr(n.ElseOrAlternate, 0, false)
		if needParens {
			p.write(")")
		}

	case syntaxkind.PropertyAccessExpression:
		p.emitExpr(n.Expr, 18, false)
		p.write(".")
		if n.Right != nil {
			p.write(p.in.Resolve(n.Right.Name))
		}

	case syntaxkind.ElementAccessExpression:
		p.emitExpr(n.Expr, 18, false)
		p.write("[")
		p.emitExpr(n.Right, 0, false)
		p.write("]")

	case syntaxkind.CallExpression:
		p.emitExpr(n.Expr, 18, false)
		p.write("(")
		for i, arg := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitExpr(arg, 0, false)
		}
		p.write(")")

	case syntaxkind.NewExpression:
		p.write("new ")
		p.emitExpr(n.Expr, 18, false)
		p.write("(")
		for i, arg := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitExpr(arg, 0, false)
		}
		p.write(")")

	case syntaxkind.AsExpression, syntaxkind.SatisfiesExpression, syntaxkind.NonNullExpression:
		// A type-carrying expression wrapper strips to its operand alone;
		// the annotation/assertion it carried has no runtime counterpart.
		p.emitExpr(n.Expr, parentPrec, isRight)

	case syntaxkind.ArrowFunction:
		p.write("(")
		for i, param := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitBindingName(param.DeclName)
		}
		p.write(") => ")
		if n.Body != nil && n.Body.Kind == syntaxkind.Block {
			p.emitStatement(n.Body, true)
		} else {
			p.emitExpr(n.Body, 2, false)
		}

	default:
		p.write("<???>")
	}
}
