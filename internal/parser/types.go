package parser

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/scanner"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

var keywordTypeKinds = map[syntaxkind.Kind]bool{
	syntaxkind.AnyKeyword: true, syntaxkind.UnknownKeyword: true, syntaxkind.NeverKeyword: true,
	syntaxkind.VoidKeyword: true, syntaxkind.UndefinedKeyword: true, syntaxkind.NullKeyword: true,
	syntaxkind.BooleanKeyword: true, syntaxkind.NumberKeyword: true, syntaxkind.StringKeyword: true,
	syntaxkind.SymbolKeyword: true, syntaxkind.ObjectKeyword: true, syntaxkind.BigIntKeyword: true,
	syntaxkind.ThisKeyword: true,
}

// parseType parses a full type, starting from the function/constructor
// type forms (lowest precedence) down through the union/intersection
// ladder to primary types.
func (p *Parser) parseType() *ast.Node {
	if p.isStartOfFunctionType() {
		return p.parseFunctionOrConstructorType(false)
	}
	if p.tok == syntaxkind.NewKeyword {
		return p.parseFunctionOrConstructorType(true)
	}
	return p.parseConditionalType()
}

func (p *Parser) isStartOfFunctionType() bool {
	if p.tok == syntaxkind.LessThanToken {
		return true
	}
	if p.tok != syntaxkind.OpenParenToken {
		return false
	}
	snap := p.s.Save()
	tok := p.tok
	depth := 0
	isArrow := false
	for {
		if tok == syntaxkind.OpenParenToken {
			depth++
		} else if tok == syntaxkind.CloseParenToken {
			depth--
			if depth == 0 {
				tok = p.s.Scan()
				isArrow = tok == syntaxkind.EqualsGreaterThanToken
				break
			}
		} else if tok == syntaxkind.EndOfFile {
			break
		}
		tok = p.s.Scan()
	}
	p.s.Restore(snap)
	return isArrow
}

func (p *Parser) parseFunctionOrConstructorType(isConstructor bool) *ast.Node {
	start := p.pos()
	if isConstructor {
		p.next() // 'new'
	}
	typeParams := p.parseOptionalTypeParameters()
	params := p.parseParameterList()
	p.expect(syntaxkind.EqualsGreaterThanToken)
	ret := p.parseType()

	kind := syntaxkind.FunctionType
	if isConstructor {
		kind = syntaxkind.ConstructorType
	}
	n := p.node(kind, start)
	n.TypeParameters = typeParams
	n.List = params
	n.Type = ret
	return p.finishNode(n, start)
}

func (p *Parser) parseConditionalType() *ast.Node {
	start := p.pos()
	checkType := p.parseUnionType()
	if p.tok != syntaxkind.ExtendsKeyword {
		return checkType
	}
	p.next()
	extendsType := p.parseUnionType()
	p.expect(syntaxkind.QuestionToken)
	trueType := p.parseType()
	p.expect(syntaxkind.ColonToken)
	falseType := p.parseType()

	n := p.node(syntaxkind.ConditionalType, start)
	n.Type = checkType
	n.Left = extendsType
	n.Right = trueType
	n.ElseOrAlternate = falseType
	return p.finishNode(n, start)
}

func (p *Parser) parseUnionType() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.BarToken {
		p.next()
	}
	first := p.parseIntersectionType()
	if p.tok != syntaxkind.BarToken {
		return first
	}
	types := []*ast.Node{first}
	for p.tok == syntaxkind.BarToken {
		p.next()
		types = append(types, p.parseIntersectionType())
	}
	n := p.node(syntaxkind.UnionType, start)
	n.List = types
	return p.finishNode(n, start)
}

func (p *Parser) parseIntersectionType() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.AmpersandToken {
		p.next()
	}
	first := p.parseTypeOperatorOrPrimary()
	if p.tok != syntaxkind.AmpersandToken {
		return first
	}
	types := []*ast.Node{first}
	for p.tok == syntaxkind.AmpersandToken {
		p.next()
		types = append(types, p.parseTypeOperatorOrPrimary())
	}
	n := p.node(syntaxkind.IntersectionType, start)
	n.List = types
	return p.finishNode(n, start)
}

func (p *Parser) parseTypeOperatorOrPrimary() *ast.Node {
	start := p.pos()
	switch p.tok {
	case syntaxkind.KeyOfKeyword, syntaxkind.UniqueKeyword, syntaxkind.ReadonlyKeyword:
		op := p.tok
		p.next()
		n := p.node(syntaxkind.TypeOperator, start)
		n.Operator = op
		n.Type = p.parseTypeOperatorOrPrimary()
		return p.finishNode(n, start)
	case syntaxkind.InferKeyword:
		p.next()
		n := p.node(syntaxkind.InferType, start)
		n.DeclName = p.parseIdentifier()
		return p.finishNode(n, start)
	}
	return p.parsePostfixType()
}

// parsePostfixType handles the array (`T[]`) and indexed-access
// (`T[K]`) suffixes applied to a primary type.
func (p *Parser) parsePostfixType() *ast.Node {
	start := p.pos()
	ty := p.parsePrimaryType()
	for p.tok == syntaxkind.OpenBracketToken && !p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		p.next()
		if p.tok == syntaxkind.CloseBracketToken {
			p.next()
			n := p.node(syntaxkind.ArrayType, start)
			n.Type = ty
			ty = p.finishNode(n, start)
			continue
		}
		index := p.parseType()
		p.expect(syntaxkind.CloseBracketToken)
		n := p.node(syntaxkind.IndexedAccessType, start)
		n.Type = ty
		n.Left = index
		ty = p.finishNode(n, start)
	}
	return ty
}

func (p *Parser) parsePrimaryType() *ast.Node {
	start := p.pos()
	switch {
	case keywordTypeKinds[p.tok]:
		kind := p.tok
		n := p.node(kind, start)
		p.next()
		return p.finishNode(n, start)
	case p.tok == syntaxkind.StringLiteral, p.tok == syntaxkind.NumericLiteral,
		p.tok == syntaxkind.TrueKeyword, p.tok == syntaxkind.FalseKeyword:
		n := p.node(syntaxkind.LiteralType, start)
		n.Text = p.s.TokenValue()
		n.Operator = p.tok
		if p.tok == syntaxkind.NumericLiteral {
			n.Number = p.s.TokenNumberValue()
		}
		p.next()
		return p.finishNode(n, start)
	case p.tok == syntaxkind.NoSubstitutionTemplateLiteral, p.tok == syntaxkind.TemplateHead:
		return p.parseTemplateLiteralType()
	case p.tok == syntaxkind.OpenParenToken:
		p.next()
		inner := p.parseType()
		p.expect(syntaxkind.CloseParenToken)
		n := p.node(syntaxkind.ParenthesizedType, start)
		n.Type = inner
		return p.finishNode(n, start)
	case p.tok == syntaxkind.OpenBracketToken:
		return p.parseTupleType()
	case p.tok == syntaxkind.OpenBraceToken:
		return p.parseObjectType()
	case p.tok == syntaxkind.TypeOfKeyword:
		p.next()
		n := p.node(syntaxkind.TypeQuery, start)
		n.Expr = p.parseEntityName()
		return p.finishNode(n, start)
	case p.tok == syntaxkind.Identifier, scanner.IsContextualKeyword(p.tok):
		return p.parseTypeReference()
	default:
		p.report(diagnostic.MsgTypeExpected)
		return ast.Missing(p.a, p.sf, syntaxkind.MissingTypeNode, start)
	}
}

// parseTemplateLiteralType mirrors parseTemplateLiteral's head/middle/
// tail walk, but parses a type (not an expression) inside each `${...}`
// span, per template literal types.
func (p *Parser) parseTemplateLiteralType() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.NoSubstitutionTemplateLiteral {
		n := p.node(syntaxkind.NoSubstitutionTemplateLiteral, start)
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	}
	n := p.node(syntaxkind.TemplateLiteralType, start)
	n.Texts = append(n.Texts, p.s.TokenValue())
	p.next()
	for {
		ty := p.parseType()
		n.List = append(n.List, ty)
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

func (p *Parser) parseEntityName() *ast.Node {
	start := p.pos()
	name := p.parseIdentifier()
	for p.tok == syntaxkind.DotToken {
		p.next()
		right := p.parseIdentifier()
		n := p.node(syntaxkind.QualifiedName, start)
		n.Left, n.Right = name, right
		name = p.finishNode(n, start)
	}
	return name
}

func (p *Parser) parseTypeReference() *ast.Node {
	start := p.pos()
	name := p.parseEntityName()
	n := p.node(syntaxkind.TypeReference, start)
	n.Expr = name
	if p.tok == syntaxkind.LessThanToken {
		n.TypeParameters = p.parseTypeArgumentList()
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseTupleType() *ast.Node {
	start := p.pos()
	p.next()
	var elements []*ast.Node
	for p.tok != syntaxkind.CloseBracketToken && p.tok != syntaxkind.EndOfFile {
		elemStart := p.pos()
		if p.tok == syntaxkind.DotDotDotToken {
			p.next()
			s := p.node(syntaxkind.RestType, elemStart)
			s.Type = p.parseType()
			elements = append(elements, p.finishNode(s, elemStart))
		} else {
			elements = append(elements, p.parseType())
		}
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBracketToken)
	n := p.node(syntaxkind.TupleType, start)
	n.List = elements
	return p.finishNode(n, start)
}

// parseObjectType parses `{ ... }` as either a mapped type (a single
// `[K in T]: U` index signature) or an interface-like member list.
func (p *Parser) parseObjectType() *ast.Node {
	start := p.pos()
	p.next()
	if mapped := p.tryParseMappedTypeRest(start); mapped != nil {
		return mapped
	}
	var members []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		members = append(members, p.parseTypeMember())
		if p.tok == syntaxkind.CommaToken || p.tok == syntaxkind.SemicolonToken {
			p.next()
		}
	}
	p.expect(syntaxkind.CloseBraceToken)
	n := p.node(syntaxkind.TypeLiteral, start)
	n.List = members
	return p.finishNode(n, start)
}

func (p *Parser) tryParseMappedTypeRest(start text.Pos) *ast.Node {
	if p.tok != syntaxkind.OpenBracketToken {
		return nil
	}
	snap := p.s.Save()
	p.next()
	if p.tok != syntaxkind.Identifier {
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	paramName := p.parseIdentifier()
	if p.tok != syntaxkind.InKeyword {
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	p.next()
	constraint := p.parseType()
	p.expect(syntaxkind.CloseBracketToken)
	var valueType *ast.Node
	if p.tok == syntaxkind.QuestionToken {
		p.next()
	}
	if p.tok == syntaxkind.ColonToken {
		p.next()
		valueType = p.parseType()
	}
	p.parseSemicolon()
	p.expect(syntaxkind.CloseBraceToken)

	n := p.node(syntaxkind.MappedType, start)
	n.DeclName = paramName
	n.Left = constraint
	n.Type = valueType
	return p.finishNode(n, start)
}

func (p *Parser) parseTypeMember() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.OpenParenToken || p.tok == syntaxkind.LessThanToken {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var ret *ast.Node
		if p.tok == syntaxkind.ColonToken {
			p.next()
			ret = p.parseType()
		}
		n := p.node(syntaxkind.CallSignature, start)
		n.TypeParameters = typeParams
		n.List = params
		n.Type = ret
		return p.finishNode(n, start)
	}
	if p.tok == syntaxkind.NewKeyword {
		p.next()
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var ret *ast.Node
		if p.tok == syntaxkind.ColonToken {
			p.next()
			ret = p.parseType()
		}
		n := p.node(syntaxkind.ConstructSignature, start)
		n.TypeParameters = typeParams
		n.List = params
		n.Type = ret
		return p.finishNode(n, start)
	}
	if p.tok == syntaxkind.OpenBracketToken {
		snap := p.s.Save()
		p.next()
		if p.tok == syntaxkind.Identifier {
			indexName := p.parseIdentifier()
			if p.tok == syntaxkind.ColonToken {
				p.next()
				keyType := p.parseType()
				p.expect(syntaxkind.CloseBracketToken)
				var ret *ast.Node
				if p.tok == syntaxkind.ColonToken {
					p.next()
					ret = p.parseType()
				}
				n := p.node(syntaxkind.IndexSignature, start)
				n.DeclName = indexName
				n.Left = keyType
				n.Type = ret
				return p.finishNode(n, start)
			}
		}
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
	}

	readonly := false
	if p.tok == syntaxkind.ReadonlyKeyword {
		readonly = true
		p.next()
	}
	name := p.parsePropertyName()
	optional := false
	if p.tok == syntaxkind.QuestionToken {
		optional = true
		p.next()
	}
	if p.tok == syntaxkind.OpenParenToken || p.tok == syntaxkind.LessThanToken {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var ret *ast.Node
		if p.tok == syntaxkind.ColonToken {
			p.next()
			ret = p.parseType()
		}
		n := p.node(syntaxkind.MethodSignature, start)
		n.DeclName = name
		n.TypeParameters = typeParams
		n.List = params
		n.Type = ret
		if optional {
			n.Flags |= syntaxkind.NFOptional
		}
		return p.finishNode(n, start)
	}
	var ty *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ty = p.parseType()
	}
	n := p.node(syntaxkind.PropertySignature, start)
	n.DeclName = name
	n.Type = ty
	if optional {
		n.Flags |= syntaxkind.NFOptional
	}
	if readonly {
		n.Flags |= syntaxkind.NFReadonly
	}
	return p.finishNode(n, start)
}

// parseOptionalTypeParameters parses a `<...>` type-parameter list when
// present, returning nil otherwise.
func (p *Parser) parseOptionalTypeParameters() []*ast.Node {
	if p.tok != syntaxkind.LessThanToken {
		return nil
	}
	p.next()
	var params []*ast.Node
	for p.tok != syntaxkind.GreaterThanToken && p.tok != syntaxkind.EndOfFile {
		start := p.pos()
		if p.tok == syntaxkind.InKeyword || p.tok == syntaxkind.OutKeyword {
			p.next()
		}
		name := p.parseIdentifier()
		n := p.node(syntaxkind.TypeParameter, start)
		n.DeclName = name
		if p.tok == syntaxkind.ExtendsKeyword {
			p.next()
			n.Type = p.parseType()
		}
		if p.tok == syntaxkind.EqualsToken {
			p.next()
			n.Initializer = p.parseType()
		}
		params = append(params, p.finishNode(n, start))
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.GreaterThanToken)
	return params
}

func (p *Parser) parseTypeArgumentList() []*ast.Node {
	p.expect(syntaxkind.LessThanToken)
	var args []*ast.Node
	for p.tok != syntaxkind.GreaterThanToken && p.tok != syntaxkind.EndOfFile {
		args = append(args, p.parseType())
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.GreaterThanToken)
	return args
}

// parseParameterList parses a `(...)` formal-parameter list shared by
// function declarations, function types, and signature members.
func (p *Parser) parseParameterList() []*ast.Node {
	p.expect(syntaxkind.OpenParenToken)
	var params []*ast.Node
	for p.tok != syntaxkind.CloseParenToken && p.tok != syntaxkind.EndOfFile {
		params = append(params, p.parseParameter())
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseParenToken)
	return params
}

func (p *Parser) parseParameter() *ast.Node {
	start := p.pos()
	mods := p.parseModifiers()
	isRest := false
	if p.tok == syntaxkind.DotDotDotToken {
		isRest = true
		p.next()
	}
	name := p.parseBindingName()
	optional := false
	if p.tok == syntaxkind.QuestionToken {
		optional = true
		p.next()
	}
	var ty, init *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ty = p.parseType()
	}
	if p.tok == syntaxkind.EqualsToken {
		p.next()
		init = p.parseAssignmentExpression()
	}
	n := p.node(syntaxkind.Parameter, start)
	n.DeclName = name
	n.Type = ty
	n.Initializer = init
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	if isRest {
		n.Flags |= syntaxkind.NFRest
	}
	if optional {
		n.Flags |= syntaxkind.NFOptional
	}
	return p.finishNode(n, start)
}

// parseBindingName parses an identifier or (array/object) destructuring
// pattern used as a declaration name.
func (p *Parser) parseBindingName() *ast.Node {
	switch p.tok {
	case syntaxkind.OpenBracketToken:
		return p.parseArrayBindingPattern()
	case syntaxkind.OpenBraceToken:
		return p.parseObjectBindingPattern()
	default:
		return p.parseIdentifier()
	}
}

func (p *Parser) parseArrayBindingPattern() *ast.Node {
	start := p.pos()
	p.next()
	var elements []*ast.Node
	for p.tok != syntaxkind.CloseBracketToken && p.tok != syntaxkind.EndOfFile {
		if p.tok == syntaxkind.CommaToken {
			elements = append(elements, p.node(syntaxkind.OmittedExpression, p.pos()))
			p.next()
			continue
		}
		elemStart := p.pos()
		isRest := false
		if p.tok == syntaxkind.DotDotDotToken {
			isRest = true
			p.next()
		}
		name := p.parseBindingName()
		elem := p.node(syntaxkind.BindingElement, elemStart)
		elem.DeclName = name
		if p.tok == syntaxkind.EqualsToken {
			p.next()
			elem.Initializer = p.parseAssignmentExpression()
		}
		if isRest {
			elem.Flags |= syntaxkind.NFRest
		}
		elements = append(elements, p.finishNode(elem, elemStart))
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBracketToken)
	n := p.node(syntaxkind.ArrayBindingPattern, start)
	n.List = elements
	return p.finishNode(n, start)
}

func (p *Parser) parseObjectBindingPattern() *ast.Node {
	start := p.pos()
	p.next()
	var elements []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		elemStart := p.pos()
		if p.tok == syntaxkind.DotDotDotToken {
			p.next()
			name := p.parseIdentifier()
			elem := p.node(syntaxkind.BindingElement, elemStart)
			elem.DeclName = name
			elem.Flags |= syntaxkind.NFRest
			elements = append(elements, p.finishNode(elem, elemStart))
		} else {
			propName := p.parsePropertyName()
			elem := p.node(syntaxkind.BindingElement, elemStart)
			if p.tok == syntaxkind.ColonToken {
				p.next()
				elem.DeclName = p.parseBindingName()
				elem.Left = propName
			} else {
				elem.DeclName = propName
			}
			if p.tok == syntaxkind.EqualsToken {
				p.next()
				elem.Initializer = p.parseAssignmentExpression()
			}
			elements = append(elements, p.finishNode(elem, elemStart))
		}
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBraceToken)
	n := p.node(syntaxkind.ObjectBindingPattern, start)
	n.List = elements
	return p.finishNode(n, start)
}
