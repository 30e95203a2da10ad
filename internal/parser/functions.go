package parser

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// parseFunctionDeclaration parses `function [*] name<T>(...): R { ... }`
// or its ambient form `function name(...): R;`.
func (p *Parser) parseFunctionDeclaration(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	p.next() // 'function'
	generator := false
	if p.tok == syntaxkind.AsteriskToken {
		generator = true
		p.next()
	}
	var name *ast.Node
	// Only `export default function (...)` may omit the name.
	if p.tok != syntaxkind.OpenParenToken || !modifiersToFlags(mods).Has(syntaxkind.NFDefault) {
		name = p.parseIdentifier()
	}
	typeParams := p.parseOptionalTypeParameters()
	params := p.parseParameterList()
	var ret *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ret = p.parseType()
	}
	var body *ast.Node
	if p.tok == syntaxkind.OpenBraceToken {
		body = p.parseBlock()
	} else {
		p.parseSemicolon()
	}

	n := p.node(syntaxkind.FunctionDeclaration, start)
	n.DeclName = name
	n.TypeParameters = typeParams
	n.List = params
	n.Type = ret
	n.Body = body
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	if generator {
		n.Flags |= syntaxkind.NFGenerator
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseFunctionExpression() *ast.Node {
	start := p.pos()
	p.next() // 'function'
	generator := false
	if p.tok == syntaxkind.AsteriskToken {
		generator = true
		p.next()
	}
	var name *ast.Node
	if p.tok == syntaxkind.Identifier {
		name = p.parseIdentifier()
	}
	typeParams := p.parseOptionalTypeParameters()
	params := p.parseParameterList()
	var ret *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ret = p.parseType()
	}
	body := p.parseBlock()

	n := p.node(syntaxkind.FunctionExpression, start)
	n.DeclName = name
	n.TypeParameters = typeParams
	n.List = params
	n.Type = ret
	n.Body = body
	if generator {
		n.Flags |= syntaxkind.NFGenerator
	}
	return p.finishNode(n, start)
}

// tryParseAsyncFunctionOrArrow is entered with the current token
// already known to be `async`; it speculatively distinguishes
// `async function`, `async (params) =>`, and `async ident =>` from a
// plain identifier named "async", restoring on mismatch.
func (p *Parser) tryParseAsyncFunctionOrArrow() *ast.Node {
	start := p.pos()
	snap := p.s.Save()
	p.next() // 'async'

	if p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}

	if p.tok == syntaxkind.FunctionKeyword {
		fn := p.parseFunctionExpression()
		fn.Range = text.NewRange(start, fn.Range.End)
		fn.Flags |= syntaxkind.NFAsync
		return fn
	}

	if arrow := p.tryParseArrowFunctionFrom(start, true); arrow != nil {
		return arrow
	}

	p.s.Restore(snap)
	p.tok = p.s.TokenKind()
	return nil
}

// tryParseArrowFunction speculatively parses an arrow function head
// (`(params): R =>` or `ident =>`), restoring scanner state and
// returning nil if the lookahead doesn't confirm an arrow.
func (p *Parser) tryParseArrowFunction() *ast.Node {
	start := p.pos()
	if p.tok != syntaxkind.OpenParenToken && p.tok != syntaxkind.LessThanToken &&
		!(p.tok == syntaxkind.Identifier && p.peekIsArrow()) {
		return nil
	}
	return p.tryParseArrowFunctionFrom(start, false)
}

// peekIsArrow reports whether a bare identifier is immediately
// followed by `=>` (the single-parameter arrow shorthand `x => x`).
func (p *Parser) peekIsArrow() bool {
	snap := p.s.Save()
	tok := p.s.Scan()
	p.s.Restore(snap)
	return tok == syntaxkind.EqualsGreaterThanToken
}

func (p *Parser) tryParseArrowFunctionFrom(start text.Pos, isAsync bool) *ast.Node {
	snap := p.s.Save()
	p.speculating++

	if p.tok == syntaxkind.Identifier {
		name := p.parseIdentifier()
		if p.tok != syntaxkind.EqualsGreaterThanToken || p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
			p.speculating--
			p.s.Restore(snap)
			p.tok = p.s.TokenKind()
			return nil
		}
		p.speculating--
		param := p.node(syntaxkind.Parameter, start)
		param.DeclName = name
		p.finishNode(param, start)
		p.next() // '=>'
		return p.finishArrowFunction(start, nil, []*ast.Node{param}, nil, isAsync)
	}

	typeParams := p.parseOptionalTypeParameters()
	if p.tok != syntaxkind.OpenParenToken {
		p.speculating--
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	params := p.parseParameterList()

	var ret *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ret = p.parseType()
	}
	if p.tok != syntaxkind.EqualsGreaterThanToken || p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		p.speculating--
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	p.speculating--
	p.next() // '=>'
	return p.finishArrowFunction(start, typeParams, params, ret, isAsync)
}

func (p *Parser) finishArrowFunction(start text.Pos, typeParams, params []*ast.Node, ret *ast.Node, isAsync bool) *ast.Node {
	var body *ast.Node
	if p.tok == syntaxkind.OpenBraceToken {
		body = p.parseBlock()
	} else {
		body = p.parseAssignmentExpression()
	}
	n := p.node(syntaxkind.ArrowFunction, start)
	n.TypeParameters = typeParams
	n.List = params
	n.Type = ret
	n.Body = body
	if isAsync {
		n.Flags |= syntaxkind.NFAsync
	}
	return p.finishNode(n, start)
}

// parseClassLike parses a class declaration or expression; kind
// selects which node kind the result carries.
func (p *Parser) parseClassLike(kind syntaxkind.Kind, mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	p.next() // 'class'
	var name *ast.Node
	if p.tok == syntaxkind.Identifier {
		name = p.parseIdentifier()
	}
	typeParams := p.parseOptionalTypeParameters()

	var heritage []*ast.Node
	if p.tok == syntaxkind.ExtendsKeyword {
		p.next()
		heritage = append(heritage, p.parseLeftHandSideExpression())
	}
	if p.tok == syntaxkind.ImplementsKeyword {
		p.next()
		for {
			heritage = append(heritage, p.parseTypeReference())
			if p.tok == syntaxkind.CommaToken {
				p.next()
			} else {
				break
			}
		}
	}

	p.expect(syntaxkind.OpenBraceToken)
	var members []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		if p.tok == syntaxkind.SemicolonToken {
			p.next()
			continue
		}
		members = append(members, p.parseClassMember())
	}
	p.expect(syntaxkind.CloseBraceToken)

	n := p.node(kind, start)
	n.DeclName = name
	n.TypeParameters = typeParams
	n.Left = firstOrNil(heritage)
	n.List = append(heritage, members...)
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	return p.finishNode(n, start)
}

func firstOrNil(nodes []*ast.Node) *ast.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// parseClassMember parses one class body member: field, method,
// constructor, getter/setter, or index signature.
func (p *Parser) parseClassMember() *ast.Node {
	start := p.pos()
	mods := p.parseModifiers()

	generator := false
	if p.tok == syntaxkind.AsteriskToken {
		generator = true
		p.next()
	}

	accessor := syntaxkind.Unknown
	if (p.tok == syntaxkind.GetKeyword || p.tok == syntaxkind.SetKeyword) && p.memberNameFollows() {
		accessor = p.tok
		p.next()
	}

	if p.tok == syntaxkind.OpenBracketToken {
		snap := p.s.Save()
		p.next()
		if p.tok == syntaxkind.Identifier {
			return p.finishIndexSignatureMember(start, mods)
		}
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
	}

	name := p.parsePropertyName()
	if name.Kind == syntaxkind.Identifier && name.Text == "constructor" {
		return p.finishConstructorMember(start, mods, name)
	}

	optional := false
	if p.tok == syntaxkind.QuestionToken {
		optional = true
		p.next()
	}
	if p.tok == syntaxkind.ExclamationToken {
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
		var body *ast.Node
		if p.tok == syntaxkind.OpenBraceToken {
			body = p.parseBlock()
		} else {
			p.parseSemicolon()
		}
		kind := syntaxkind.MethodDeclaration
		switch accessor {
		case syntaxkind.GetKeyword:
			kind = syntaxkind.GetAccessor
		case syntaxkind.SetKeyword:
			kind = syntaxkind.SetAccessor
		}
		n := p.node(kind, start)
		n.DeclName = name
		n.TypeParameters = typeParams
		n.List = params
		n.Type = ret
		n.Body = body
		n.Modifiers = mods
		n.Flags = modifiersToFlags(mods)
		if generator {
			n.Flags |= syntaxkind.NFGenerator
		}
		if optional {
			n.Flags |= syntaxkind.NFOptional
		}
		return p.finishNode(n, start)
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
	p.parseSemicolon()

	n := p.node(syntaxkind.PropertyDeclaration, start)
	n.DeclName = name
	n.Type = ty
	n.Initializer = init
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	if optional {
		n.Flags |= syntaxkind.NFOptional
	}
	return p.finishNode(n, start)
}

func (p *Parser) finishConstructorMember(start text.Pos, mods []syntaxkind.Kind, name *ast.Node) *ast.Node {
	params := p.parseParameterList()
	var body *ast.Node
	if p.tok == syntaxkind.OpenBraceToken {
		body = p.parseBlock()
	} else {
		p.parseSemicolon()
	}
	n := p.node(syntaxkind.Constructor, start)
	n.DeclName = name
	n.List = params
	n.Body = body
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	return p.finishNode(n, start)
}

func (p *Parser) finishIndexSignatureMember(start text.Pos, mods []syntaxkind.Kind) *ast.Node {
	indexName := p.parseIdentifier()
	p.expect(syntaxkind.ColonToken)
	keyType := p.parseType()
	p.expect(syntaxkind.CloseBracketToken)
	var ret *ast.Node
	if p.tok == syntaxkind.ColonToken {
		p.next()
		ret = p.parseType()
	}
	p.parseSemicolon()
	n := p.node(syntaxkind.IndexSignature, start)
	n.DeclName = indexName
	n.Left = keyType
	n.Type = ret
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	return p.finishNode(n, start)
}

// memberNameFollows reports whether the token after a contextual
// `get`/`set` can itself start a property name, disambiguating an
// accessor keyword from a plain member literally named "get"/"set".
func (p *Parser) memberNameFollows() bool {
	snap := p.s.Save()
	tok := p.s.Scan()
	p.s.Restore(snap)
	switch tok {
	case syntaxkind.OpenParenToken, syntaxkind.ColonToken, syntaxkind.SemicolonToken,
		syntaxkind.EqualsToken, syntaxkind.QuestionToken, syntaxkind.CloseBraceToken:
		return false
	default:
		return true
	}
}
