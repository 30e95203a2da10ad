package parser

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/scanner"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// parseExpression parses a full (possibly comma-separated) expression.
func (p *Parser) parseExpression() *ast.Node {
	start := p.pos()
	expr := p.parseAssignmentExpression()
	for p.tok == syntaxkind.CommaToken {
		p.next()
		right := p.parseAssignmentExpression()
		bin := p.node(syntaxkind.BinaryExpression, start)
		bin.Left, bin.Right, bin.Operator = expr, right, syntaxkind.CommaToken
		expr = p.finishNode(bin, start)
	}
	return expr
}

// parseAssignmentExpression handles arrow-function heads, the
// conditional operator, and right-associative assignment, falling
// through to precedence-climbing binary parsing for everything else.
func (p *Parser) parseAssignmentExpression() *ast.Node {
	if arrow := p.tryParseArrowFunction(); arrow != nil {
		return arrow
	}

	start := p.pos()
	left := p.parseConditionalExpression()

	if IsAssignmentOperatorToken(p.tok) {
		op := p.tok
		p.next()
		right := p.parseAssignmentExpression()
		n := p.node(syntaxkind.BinaryExpression, start)
		n.Left, n.Right, n.Operator = left, right, op
		return p.finishNode(n, start)
	}
	return left
}

// IsAssignmentOperatorToken reports whether kind is `=` or a compound
// assignment token.
func IsAssignmentOperatorToken(kind syntaxkind.Kind) bool {
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

func (p *Parser) parseConditionalExpression() *ast.Node {
	start := p.pos()
	cond := p.parseBinaryExpression(PrecLowest())
	if p.tok != syntaxkind.QuestionToken {
		return cond
	}
	p.next()
	whenTrue := p.parseAssignmentExpression()
	p.expect(syntaxkind.ColonToken)
	whenFalse := p.parseAssignmentExpression()

	n := p.node(syntaxkind.ConditionalExpression, start)
	n.Expr = cond
	n.Left = whenTrue
	n.ElseOrAlternate = whenFalse
	return p.finishNode(n, start)
}

// PrecLowest is the precedence floor binary parsing starts from.
func PrecLowest() OperatorPrecedence { return PrecNullishCoalescing }

// parseBinaryExpression implements precedence climbing: the minPrec
// floor matches spec §4.4's "nullish-coalescing=5 through
// exponentiation=16" ladder, with exponentiation right-associative and
// everything else left-associative.
func (p *Parser) parseBinaryExpression(minPrec OperatorPrecedence) *ast.Node {
	start := p.pos()
	left := p.parseUnaryExpression()

	for {
		if p.disallowIn && p.tok == syntaxkind.InKeyword {
			break
		}
		prec := BinaryOperatorPrecedence(p.tok)
		if prec == PrecInvalid || prec < minPrec {
			break
		}
		op := p.tok
		p.next()
		nextMin := prec + 1
		if IsRightAssociative(op) {
			nextMin = prec
		}
		right := p.parseBinaryExpression(nextMin)
		n := p.node(syntaxkind.BinaryExpression, start)
		n.Left, n.Right, n.Operator = left, right, op
		left = p.finishNode(n, start)
	}
	return left
}

var unaryOperators = map[syntaxkind.Kind]bool{
	syntaxkind.PlusToken: true, syntaxkind.MinusToken: true, syntaxkind.TildeToken: true,
	syntaxkind.ExclamationToken: true, syntaxkind.PlusPlusToken: true, syntaxkind.MinusMinusToken: true,
}

func (p *Parser) parseUnaryExpression() *ast.Node {
	start := p.pos()
	switch p.tok {
	case syntaxkind.TypeOfKeyword, syntaxkind.VoidKeyword, syntaxkind.DeleteKeyword, syntaxkind.AwaitKeyword:
		kind := map[syntaxkind.Kind]syntaxkind.Kind{
			syntaxkind.TypeOfKeyword: syntaxkind.TypeOfExpression,
			syntaxkind.VoidKeyword:   syntaxkind.VoidExpression,
			syntaxkind.DeleteKeyword: syntaxkind.DeleteExpression,
			syntaxkind.AwaitKeyword:  syntaxkind.AwaitExpression,
		}[p.tok]
		p.next()
		n := p.node(kind, start)
		n.Expr = p.parseUnaryExpression()
		return p.finishNode(n, start)
	case syntaxkind.LessThanToken:
		return p.parseTypeAssertion()
	}
	if unaryOperators[p.tok] {
		op := p.tok
		p.next()
		n := p.node(syntaxkind.PrefixUnaryExpression, start)
		n.Operator = op
		n.Expr = p.parseUnaryExpression()
		return p.finishNode(n, start)
	}
	return p.parsePostfixExpression()
}

func (p *Parser) parseTypeAssertion() *ast.Node {
	start := p.pos()
	p.next() // '<'
	ty := p.parseType()
	p.expect(syntaxkind.GreaterThanToken)
	n := p.node(syntaxkind.TypeAssertionExpression, start)
	n.Type = ty
	n.Expr = p.parseUnaryExpression()
	return p.finishNode(n, start)
}

func (p *Parser) parsePostfixExpression() *ast.Node {
	start := p.pos()
	expr := p.parseLeftHandSideExpression()
	if (p.tok == syntaxkind.PlusPlusToken || p.tok == syntaxkind.MinusMinusToken) &&
		!p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		op := p.tok
		p.next()
		n := p.node(syntaxkind.PostfixUnaryExpression, start)
		n.Operator = op
		n.Expr = expr
		return p.finishNode(n, start)
	}
	return expr
}

// parseLeftHandSideExpression handles the member/call/element-access
// cascade: `new`, property access, optional chaining, element access,
// call arguments, and `as`/`satisfies`/non-null postfix forms.
func (p *Parser) parseLeftHandSideExpression() *ast.Node {
	start := p.pos()
	var expr *ast.Node
	if p.tok == syntaxkind.NewKeyword {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}

	for {
		switch p.tok {
		case syntaxkind.DotToken:
			p.next()
			name := p.parseIdentifier()
			n := p.node(syntaxkind.PropertyAccessExpression, start)
			n.Expr, n.Right = expr, name
			expr = p.finishNode(n, start)
		case syntaxkind.QuestionDotToken:
			p.next()
			if p.tok == syntaxkind.OpenParenToken {
				call := p.parseCallArguments(expr, start, true)
				expr = call
				continue
			}
			name := p.parseIdentifier()
			n := p.node(syntaxkind.PropertyAccessExpression, start)
			n.Expr, n.Right = expr, name
			n.Flags |= syntaxkind.NFOptional
			expr = p.finishNode(n, start)
		case syntaxkind.OpenBracketToken:
			p.next()
			index := p.parseExpression()
			p.expect(syntaxkind.CloseBracketToken)
			n := p.node(syntaxkind.ElementAccessExpression, start)
			n.Expr, n.Right = expr, index
			expr = p.finishNode(n, start)
		case syntaxkind.OpenParenToken:
			expr = p.parseCallArguments(expr, start, false)
		case syntaxkind.ExclamationToken:
			if p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
				return expr
			}
			p.next()
			n := p.node(syntaxkind.NonNullExpression, start)
			n.Expr = expr
			expr = p.finishNode(n, start)
		case syntaxkind.AsKeyword, syntaxkind.SatisfiesKeyword:
			kind := syntaxkind.AsExpression
			if p.tok == syntaxkind.SatisfiesKeyword {
				kind = syntaxkind.SatisfiesExpression
			}
			p.next()
			ty := p.parseType()
			n := p.node(kind, start)
			n.Expr, n.Type = expr, ty
			expr = p.finishNode(n, start)
		case syntaxkind.NoSubstitutionTemplateLiteral, syntaxkind.TemplateHead:
			tmpl := p.parseTemplateLiteral()
			n := p.node(syntaxkind.TaggedTemplateExpression, start)
			n.Expr, n.Right = expr, tmpl
			expr = p.finishNode(n, start)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArguments(callee *ast.Node, start text.Pos, optional bool) *ast.Node {
	p.expect(syntaxkind.OpenParenToken)
	var args []*ast.Node
	for p.tok != syntaxkind.CloseParenToken && p.tok != syntaxkind.EndOfFile {
		if p.tok == syntaxkind.DotDotDotToken {
			spreadStart := p.pos()
			p.next()
			s := p.node(syntaxkind.SpreadElement, spreadStart)
			s.Expr = p.parseAssignmentExpression()
			args = append(args, p.finishNode(s, spreadStart))
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseParenToken)
	n := p.node(syntaxkind.CallExpression, start)
	n.Expr = callee
	n.List = args
	if optional {
		n.Flags |= syntaxkind.NFOptional
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseNewExpression() *ast.Node {
	start := p.pos()
	p.next() // 'new'
	if p.tok == syntaxkind.DotToken {
		// new.target meta-property.
		p.next()
		name := p.parseIdentifier()
		n := p.node(syntaxkind.MetaProperty, start)
		n.Right = name
		return p.finishNode(n, start)
	}
	callee := p.parseLeftHandSideExpressionNoCall()
	n := p.node(syntaxkind.NewExpression, start)
	n.Expr = callee
	if p.tok == syntaxkind.OpenParenToken {
		p.next()
		var args []*ast.Node
		for p.tok != syntaxkind.CloseParenToken && p.tok != syntaxkind.EndOfFile {
			args = append(args, p.parseAssignmentExpression())
			if p.tok == syntaxkind.CommaToken {
				p.next()
			} else {
				break
			}
		}
		p.expect(syntaxkind.CloseParenToken)
		n.List = args
	}
	return p.finishNode(n, start)
}

// parseLeftHandSideExpressionNoCall parses the callee of a `new`
// expression: member access is allowed, but a following `(` belongs to
// the `new` itself rather than chaining onto the callee.
func (p *Parser) parseLeftHandSideExpressionNoCall() *ast.Node {
	start := p.pos()
	var expr *ast.Node
	if p.tok == syntaxkind.NewKeyword {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	for {
		switch p.tok {
		case syntaxkind.DotToken:
			p.next()
			name := p.parseIdentifier()
			n := p.node(syntaxkind.PropertyAccessExpression, start)
			n.Expr, n.Right = expr, name
			expr = p.finishNode(n, start)
		case syntaxkind.OpenBracketToken:
			p.next()
			index := p.parseExpression()
			p.expect(syntaxkind.CloseBracketToken)
			n := p.node(syntaxkind.ElementAccessExpression, start)
			n.Expr, n.Right = expr, index
			expr = p.finishNode(n, start)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpression() *ast.Node {
	start := p.pos()
	switch p.tok {
	case syntaxkind.NumericLiteral:
		n := p.node(syntaxkind.NumericLiteral, start)
		n.Number = p.s.TokenNumberValue()
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.BigIntLiteral:
		n := p.node(syntaxkind.BigIntLiteral, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.StringLiteral:
		n := p.node(syntaxkind.StringLiteral, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.RegularExpressionLiteral:
		n := p.node(syntaxkind.RegularExpressionLiteral, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.NoSubstitutionTemplateLiteral, syntaxkind.TemplateHead:
		return p.parseTemplateLiteral()
	case syntaxkind.TrueKeyword, syntaxkind.FalseKeyword, syntaxkind.NullKeyword,
		syntaxkind.ThisKeyword, syntaxkind.SuperKeyword:
		kind := map[syntaxkind.Kind]syntaxkind.Kind{
			syntaxkind.TrueKeyword:  syntaxkind.TrueKeyword,
			syntaxkind.FalseKeyword: syntaxkind.FalseKeyword,
			syntaxkind.NullKeyword:  syntaxkind.NullKeyword,
			syntaxkind.ThisKeyword:  syntaxkind.ThisExpression,
			syntaxkind.SuperKeyword: syntaxkind.SuperKeyword,
		}[p.tok]
		n := p.node(kind, start)
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.OpenBracketToken:
		return p.parseArrayLiteral()
	case syntaxkind.OpenBraceToken:
		return p.parseObjectLiteral()
	case syntaxkind.OpenParenToken:
		return p.parseParenthesizedExpression()
	case syntaxkind.FunctionKeyword:
		return p.parseFunctionExpression()
	case syntaxkind.ClassKeyword:
		return p.parseClassLike(syntaxkind.ClassExpression, nil)
	case syntaxkind.YieldKeyword:
		return p.parseYieldExpression()
	case syntaxkind.Identifier, syntaxkind.AsyncKeyword:
		if p.tok == syntaxkind.AsyncKeyword {
			if fn := p.tryParseAsyncFunctionOrArrow(); fn != nil {
				return fn
			}
		}
		return p.parseIdentifier()
	default:
		if scanner.IsContextualKeyword(p.tok) {
			return p.parseIdentifier()
		}
		p.report(diagnostic.MsgExpressionExpected)
		n := ast.Missing(p.a, p.sf, syntaxkind.MissingExpression, start)
		p.skipToStatementStart()
		return n
	}
}

func (p *Parser) parseYieldExpression() *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(syntaxkind.YieldExpression, start)
	if p.tok == syntaxkind.AsteriskToken {
		p.next()
		n.Flags |= syntaxkind.NFGenerator
	}
	if p.tok != syntaxkind.SemicolonToken && p.tok != syntaxkind.CloseBraceToken &&
		p.tok != syntaxkind.CloseParenToken && p.tok != syntaxkind.EndOfFile &&
		!p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		n.Expr = p.parseAssignmentExpression()
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseArrayLiteral() *ast.Node {
	start := p.pos()
	p.next()
	var elements []*ast.Node
	for p.tok != syntaxkind.CloseBracketToken && p.tok != syntaxkind.EndOfFile {
		if p.tok == syntaxkind.CommaToken {
			elements = append(elements, p.node(syntaxkind.OmittedExpression, p.pos()))
			p.next()
			continue
		}
		if p.tok == syntaxkind.DotDotDotToken {
			spreadStart := p.pos()
			p.next()
			s := p.node(syntaxkind.SpreadElement, spreadStart)
			s.Expr = p.parseAssignmentExpression()
			elements = append(elements, p.finishNode(s, spreadStart))
		} else {
			elements = append(elements, p.parseAssignmentExpression())
		}
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBracketToken)
	n := p.node(syntaxkind.ArrayLiteralExpression, start)
	n.List = elements
	return p.finishNode(n, start)
}

func (p *Parser) parseObjectLiteral() *ast.Node {
	start := p.pos()
	p.next()
	var props []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		propStart := p.pos()
		if p.tok == syntaxkind.DotDotDotToken {
			p.next()
			s := p.node(syntaxkind.SpreadAssignment, propStart)
			s.Expr = p.parseAssignmentExpression()
			props = append(props, p.finishNode(s, propStart))
		} else {
			name := p.parsePropertyName()
			if p.tok == syntaxkind.ColonToken {
				p.next()
				value := p.parseAssignmentExpression()
				pa := p.node(syntaxkind.PropertyAssignment, propStart)
				pa.DeclName, pa.Initializer = name, value
				props = append(props, p.finishNode(pa, propStart))
			} else {
				sp := p.node(syntaxkind.ShorthandPropertyAssignment, propStart)
				sp.DeclName = name
				props = append(props, p.finishNode(sp, propStart))
			}
		}
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBraceToken)
	n := p.node(syntaxkind.ObjectLiteralExpression, start)
	n.List = props
	return p.finishNode(n, start)
}

func (p *Parser) parsePropertyName() *ast.Node {
	switch p.tok {
	case syntaxkind.StringLiteral, syntaxkind.NumericLiteral:
		start := p.pos()
		n := p.node(p.tok, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	case syntaxkind.OpenBracketToken:
		start := p.pos()
		p.next()
		expr := p.parseAssignmentExpression()
		p.expect(syntaxkind.CloseBracketToken)
		return p.finishNode(expr, start)
	default:
		return p.parseIdentifier()
	}
}

func (p *Parser) parseParenthesizedExpression() *ast.Node {
	start := p.pos()
	p.next()
	expr := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	n := p.node(syntaxkind.ParenthesizedExpression, start)
	n.Expr = expr
	return p.finishNode(n, start)
}

// parseTemplateLiteral handles both the no-substitution form and the
// head/middle*/tail chain, parsing each `${...}` span as a full
// expression and re-entering the scanner to resume scanning the
// template text afterward.
func (p *Parser) parseTemplateLiteral() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.NoSubstitutionTemplateLiteral {
		n := p.node(syntaxkind.NoSubstitutionTemplateLiteral, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	}

	n := p.node(syntaxkind.TemplateExpression, start)
	n.Texts = append(n.Texts, p.s.TokenValue())
	p.next() // consumes TemplateHead
	for {
		expr := p.parseExpression()
		n.List = append(n.List, expr)
		if p.tok != syntaxkind.CloseBraceToken {
			p.report(diagnostic.MsgUnexpectedToken, "}")
		}
		kind := p.s.ResumeTemplate()
		n.Texts = append(n.Texts, p.s.TokenValue())
		p.next()
		if kind == syntaxkind.TemplateTail {
			break
		}
	}
	return p.finishNode(n, start)
}
