package parser

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// modifiersToFlags maps a modifier-keyword list collected by
// parseModifiers to the corresponding NodeFlags bits.
func modifiersToFlags(mods []syntaxkind.Kind) syntaxkind.NodeFlags {
	var f syntaxkind.NodeFlags
	for _, m := range mods {
		switch m {
		case syntaxkind.ExportKeyword:
			f |= syntaxkind.NFExport
		case syntaxkind.DefaultKeyword:
			f |= syntaxkind.NFDefault
		case syntaxkind.DeclareKeyword:
			f |= syntaxkind.NFAmbient
		case syntaxkind.AbstractKeyword:
			f |= syntaxkind.NFAbstract
		case syntaxkind.PublicKeyword:
			f |= syntaxkind.NFPublic
		case syntaxkind.PrivateKeyword:
			f |= syntaxkind.NFPrivate
		case syntaxkind.ProtectedKeyword:
			f |= syntaxkind.NFProtected
		case syntaxkind.StaticKeyword:
			f |= syntaxkind.NFStatic
		case syntaxkind.ReadonlyKeyword:
			f |= syntaxkind.NFReadonly
		case syntaxkind.AsyncKeyword:
			f |= syntaxkind.NFAsync
		case syntaxkind.OverrideKeyword:
			f |= syntaxkind.NFOverride
		}
	}
	return f
}

// parseStatement is the top-level statement dispatch (spec §4.4):
// modifiers and a handful of keyword-led forms are recognized first,
// everything else falls through to an expression statement.
func (p *Parser) parseStatement() *ast.Node {
	switch p.tok {
	case syntaxkind.SemicolonToken:
		start := p.pos()
		p.next()
		return p.finishNode(p.node(syntaxkind.EmptyStatement, start), start)
	case syntaxkind.OpenBraceToken:
		return p.parseBlock()
	case syntaxkind.VarKeyword, syntaxkind.LetKeyword, syntaxkind.ConstKeyword:
		return p.parseVariableStatement(nil)
	case syntaxkind.FunctionKeyword:
		return p.parseFunctionDeclaration(nil)
	case syntaxkind.ClassKeyword:
		return p.parseClassLike(syntaxkind.ClassDeclaration, nil)
	case syntaxkind.IfKeyword:
		return p.parseIfStatement()
	case syntaxkind.DoKeyword:
		return p.parseDoStatement()
	case syntaxkind.WhileKeyword:
		return p.parseWhileStatement()
	case syntaxkind.ForKeyword:
		return p.parseForStatement()
	case syntaxkind.ContinueKeyword:
		return p.parseContinueOrBreak(syntaxkind.ContinueStatement)
	case syntaxkind.BreakKeyword:
		return p.parseContinueOrBreak(syntaxkind.BreakStatement)
	case syntaxkind.ReturnKeyword:
		return p.parseReturnStatement()
	case syntaxkind.WithKeyword:
		return p.parseWithStatement()
	case syntaxkind.SwitchKeyword:
		return p.parseSwitchStatement()
	case syntaxkind.ThrowKeyword:
		return p.parseThrowStatement()
	case syntaxkind.TryKeyword:
		return p.parseTryStatement()
	case syntaxkind.DebuggerKeyword:
		return p.parseDebuggerStatement()
	case syntaxkind.InterfaceKeyword:
		return p.parseInterfaceDeclaration(nil)
	case syntaxkind.TypeKeyword:
		if alias := p.tryParseTypeAliasDeclaration(nil); alias != nil {
			return alias
		}
	case syntaxkind.EnumKeyword:
		return p.parseEnumDeclaration(nil)
	case syntaxkind.ImportKeyword:
		return p.parseImportDeclaration()
	case syntaxkind.ExportKeyword:
		return p.parseExportDeclaration()
	}

	if isModifierStart(p.tok) {
		mods := p.parseModifiers()
		return p.parseModifiedDeclaration(mods)
	}

	return p.parseExpressionStatement()
}

func isModifierStart(kind syntaxkind.Kind) bool {
	switch kind {
	case syntaxkind.ExportKeyword, syntaxkind.DefaultKeyword, syntaxkind.DeclareKeyword,
		syntaxkind.AbstractKeyword, syntaxkind.PublicKeyword, syntaxkind.PrivateKeyword,
		syntaxkind.ProtectedKeyword, syntaxkind.StaticKeyword, syntaxkind.ReadonlyKeyword,
		syntaxkind.AsyncKeyword, syntaxkind.OverrideKeyword:
		return true
	default:
		return false
	}
}

// parseModifiedDeclaration dispatches to the declaration form that
// follows a leading modifier run (`export`, `declare`, `async`, ...).
func (p *Parser) parseModifiedDeclaration(mods []syntaxkind.Kind) *ast.Node {
	switch p.tok {
	case syntaxkind.VarKeyword, syntaxkind.LetKeyword, syntaxkind.ConstKeyword:
		return p.parseVariableStatement(mods)
	case syntaxkind.FunctionKeyword:
		return p.parseFunctionDeclaration(mods)
	case syntaxkind.ClassKeyword:
		return p.parseClassLike(syntaxkind.ClassDeclaration, mods)
	case syntaxkind.InterfaceKeyword:
		return p.parseInterfaceDeclaration(mods)
	case syntaxkind.EnumKeyword:
		return p.parseEnumDeclaration(mods)
	case syntaxkind.TypeKeyword:
		if alias := p.tryParseTypeAliasDeclaration(mods); alias != nil {
			return alias
		}
	case syntaxkind.ImportKeyword, syntaxkind.EqualsToken:
		// `export = expr` handled by caller when relevant
	case syntaxkind.AsteriskToken, syntaxkind.OpenBraceToken:
		return p.parseExportDeclarationAfterKeyword(mods)
	case syntaxkind.DefaultKeyword:
		// export default <expr>
		start := p.pos()
		p.next()
		expr := p.parseAssignmentExpression()
		p.parseSemicolon()
		n := p.node(syntaxkind.ExportAssignment, start)
		n.Expr = expr
		n.Flags = modifiersToFlags(mods) | syntaxkind.NFDefault
		return p.finishNode(n, start)
	}
	start := p.pos()
	stmt := p.parseExpressionStatement()
	stmt.Flags |= modifiersToFlags(mods)
	stmt.Modifiers = append(stmt.Modifiers, mods...)
	_ = start
	return stmt
}

func (p *Parser) parseBlock() *ast.Node {
	start := p.pos()
	p.expect(syntaxkind.OpenBraceToken)
	var stmts []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(syntaxkind.CloseBraceToken)
	n := p.node(syntaxkind.Block, start)
	n.List = stmts
	return p.finishNode(n, start)
}

// parseVariableStatement parses `var|let|const` declaration lists,
// tagging NFLet/NFConst on the statement node (spec §4.4's
// declaration-kind flag convention).
func (p *Parser) parseVariableStatement(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	keyword := p.tok
	p.next()
	var decls []*ast.Node
	for {
		decls = append(decls, p.parseVariableDeclaration())
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.parseSemicolon()
	n := p.node(syntaxkind.VariableStatement, start)
	n.List = decls
	n.Flags = modifiersToFlags(mods)
	switch keyword {
	case syntaxkind.LetKeyword:
		n.Flags |= syntaxkind.NFLet
	case syntaxkind.ConstKeyword:
		n.Flags |= syntaxkind.NFConst
	}
	n.Modifiers = mods
	return p.finishNode(n, start)
}

func (p *Parser) parseVariableDeclaration() *ast.Node {
	start := p.pos()
	name := p.parseBindingName()
	var definite bool
	if p.tok == syntaxkind.ExclamationToken {
		definite = true
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
	n := p.node(syntaxkind.VariableDeclaration, start)
	n.DeclName = name
	n.Type = ty
	n.Initializer = init
	if definite {
		n.Flags |= syntaxkind.NFDefinite
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseIfStatement() *ast.Node {
	start := p.pos()
	p.next()
	p.expect(syntaxkind.OpenParenToken)
	cond := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	then := p.parseStatement()
	n := p.node(syntaxkind.IfStatement, start)
	n.Expr = cond
	n.Body = then
	if p.tok == syntaxkind.ElseKeyword {
		p.next()
		n.ElseOrAlternate = p.parseStatement()
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseDoStatement() *ast.Node {
	start := p.pos()
	p.next()
	body := p.parseStatement()
	p.expect(syntaxkind.WhileKeyword)
	p.expect(syntaxkind.OpenParenToken)
	cond := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	p.parseSemicolon()
	n := p.node(syntaxkind.DoStatement, start)
	n.Body = body
	n.Expr = cond
	return p.finishNode(n, start)
}

func (p *Parser) parseWhileStatement() *ast.Node {
	start := p.pos()
	p.next()
	p.expect(syntaxkind.OpenParenToken)
	cond := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	body := p.parseStatement()
	n := p.node(syntaxkind.WhileStatement, start)
	n.Expr = cond
	n.Body = body
	return p.finishNode(n, start)
}

// parseForStatement disambiguates `for (;;)`, `for (x in o)`, and
// `for (x of it)` by parsing the head with `in` suppressed
// (disallowIn) and then checking the token that follows it.
func (p *Parser) parseForStatement() *ast.Node {
	start := p.pos()
	p.next()
	awaitLoop := false
	if p.tok == syntaxkind.AwaitKeyword {
		awaitLoop = true
		p.next()
	}
	p.expect(syntaxkind.OpenParenToken)

	var initializer *ast.Node
	prevDisallowIn := p.disallowIn
	p.disallowIn = true
	switch p.tok {
	case syntaxkind.SemicolonToken:
		initializer = nil
	case syntaxkind.VarKeyword, syntaxkind.LetKeyword, syntaxkind.ConstKeyword:
		keyword := p.tok
		declStart := p.pos()
		p.next()
		name := p.parseBindingName()
		if p.tok == syntaxkind.InKeyword || p.tok == syntaxkind.OfKeyword {
			p.disallowIn = prevDisallowIn
			isOf := p.tok == syntaxkind.OfKeyword
			p.next()
			iter := p.parseAssignmentExpression()
			p.expect(syntaxkind.CloseParenToken)
			body := p.parseStatement()

			decl := p.node(syntaxkind.VariableDeclaration, declStart)
			decl.DeclName = name
			p.finishNode(decl, declStart)
			declList := p.node(syntaxkind.VariableStatement, declStart)
			declList.List = []*ast.Node{decl}
			if keyword == syntaxkind.LetKeyword {
				declList.Flags |= syntaxkind.NFLet
			} else if keyword == syntaxkind.ConstKeyword {
				declList.Flags |= syntaxkind.NFConst
			}
			p.finishNode(declList, declStart)

			kind := syntaxkind.ForInStatement
			if isOf {
				kind = syntaxkind.ForOfStatement
			}
			n := p.node(kind, start)
			n.Initializer = declList
			n.Right = iter
			n.Body = body
			if awaitLoop {
				n.Flags |= syntaxkind.NFAsync
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
		decl := p.node(syntaxkind.VariableDeclaration, declStart)
		decl.DeclName = name
		decl.Type = ty
		decl.Initializer = init
		decls := []*ast.Node{p.finishNode(decl, declStart)}
		for p.tok == syntaxkind.CommaToken {
			p.next()
			decls = append(decls, p.parseVariableDeclaration())
		}
		declList := p.node(syntaxkind.VariableStatement, declStart)
		declList.List = decls
		if keyword == syntaxkind.LetKeyword {
			declList.Flags |= syntaxkind.NFLet
		} else if keyword == syntaxkind.ConstKeyword {
			declList.Flags |= syntaxkind.NFConst
		}
		initializer = p.finishNode(declList, declStart)
	default:
		expr := p.parseExpression()
		if p.tok == syntaxkind.InKeyword || p.tok == syntaxkind.OfKeyword {
			p.disallowIn = prevDisallowIn
			isOf := p.tok == syntaxkind.OfKeyword
			p.next()
			iter := p.parseAssignmentExpression()
			p.expect(syntaxkind.CloseParenToken)
			body := p.parseStatement()
			kind := syntaxkind.ForInStatement
			if isOf {
				kind = syntaxkind.ForOfStatement
			}
			n := p.node(kind, start)
			n.Initializer = expr
			n.Right = iter
			n.Body = body
			return p.finishNode(n, start)
		}
		initializer = expr
	}
	p.disallowIn = prevDisallowIn

	p.expect(syntaxkind.SemicolonToken)
	var cond *ast.Node
	if p.tok != syntaxkind.SemicolonToken {
		cond = p.parseExpression()
	}
	p.expect(syntaxkind.SemicolonToken)
	var update *ast.Node
	if p.tok != syntaxkind.CloseParenToken {
		update = p.parseExpression()
	}
	p.expect(syntaxkind.CloseParenToken)
	body := p.parseStatement()

	n := p.node(syntaxkind.ForStatement, start)
	n.Initializer = initializer
	n.Expr = cond
	n.Right = update
	n.Body = body
	return p.finishNode(n, start)
}

func (p *Parser) parseContinueOrBreak(kind syntaxkind.Kind) *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(kind, start)
	if p.tok == syntaxkind.Identifier && !p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		n.Label = p.parseIdentifier()
	}
	p.parseSemicolon()
	return p.finishNode(n, start)
}

func (p *Parser) parseReturnStatement() *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(syntaxkind.ReturnStatement, start)
	if p.tok != syntaxkind.SemicolonToken && p.tok != syntaxkind.CloseBraceToken &&
		p.tok != syntaxkind.EndOfFile && !p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		n.Expr = p.parseExpression()
	}
	p.parseSemicolon()
	return p.finishNode(n, start)
}

func (p *Parser) parseWithStatement() *ast.Node {
	start := p.pos()
	p.next()
	p.expect(syntaxkind.OpenParenToken)
	expr := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	body := p.parseStatement()
	n := p.node(syntaxkind.WithStatement, start)
	n.Expr = expr
	n.Body = body
	return p.finishNode(n, start)
}

func (p *Parser) parseSwitchStatement() *ast.Node {
	start := p.pos()
	p.next()
	p.expect(syntaxkind.OpenParenToken)
	expr := p.parseExpression()
	p.expect(syntaxkind.CloseParenToken)
	p.expect(syntaxkind.OpenBraceToken)

	var clauses []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		clauseStart := p.pos()
		var clauseExpr *ast.Node
		kind := syntaxkind.DefaultClause
		if p.tok == syntaxkind.CaseKeyword {
			kind = syntaxkind.CaseClause
			p.next()
			clauseExpr = p.parseExpression()
		} else {
			p.expect(syntaxkind.DefaultKeyword)
		}
		p.expect(syntaxkind.ColonToken)
		var stmts []*ast.Node
		for p.tok != syntaxkind.CaseKeyword && p.tok != syntaxkind.DefaultKeyword &&
			p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
			stmts = append(stmts, p.parseStatement())
		}
		clause := p.node(kind, clauseStart)
		clause.Expr = clauseExpr
		clause.List = stmts
		clauses = append(clauses, p.finishNode(clause, clauseStart))
	}
	p.expect(syntaxkind.CloseBraceToken)

	n := p.node(syntaxkind.SwitchStatement, start)
	n.Expr = expr
	n.List = clauses
	return p.finishNode(n, start)
}

func (p *Parser) parseThrowStatement() *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(syntaxkind.ThrowStatement, start)
	n.Expr = p.parseExpression()
	p.parseSemicolon()
	return p.finishNode(n, start)
}

func (p *Parser) parseTryStatement() *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(syntaxkind.TryStatement, start)
	n.Body = p.parseBlock()
	if p.tok == syntaxkind.CatchKeyword {
		catchStart := p.pos()
		p.next()
		catch := p.node(syntaxkind.CatchClause, catchStart)
		if p.tok == syntaxkind.OpenParenToken {
			p.next()
			catch.DeclName = p.parseBindingName()
			if p.tok == syntaxkind.ColonToken {
				p.next()
				catch.Type = p.parseType()
			}
			p.expect(syntaxkind.CloseParenToken)
		}
		catch.Body = p.parseBlock()
		n.Left = p.finishNode(catch, catchStart)
	}
	if p.tok == syntaxkind.FinallyKeyword {
		p.next()
		n.Right = p.parseBlock()
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseDebuggerStatement() *ast.Node {
	start := p.pos()
	p.next()
	p.parseSemicolon()
	return p.finishNode(p.node(syntaxkind.DebuggerStatement, start), start)
}

func (p *Parser) parseExpressionStatement() *ast.Node {
	start := p.pos()
	expr := p.parseExpression()
	p.parseSemicolon()
	n := p.node(syntaxkind.ExpressionStatement, start)
	n.Expr = expr
	return p.finishNode(n, start)
}

// parseInterfaceDeclaration parses `interface Name<T> extends A, B {...}`.
// Multiple declarations of the same name are left to the binder's
// declaration-merging pass; the parser just records each occurrence.
func (p *Parser) parseInterfaceDeclaration(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	p.next()
	name := p.parseIdentifier()
	typeParams := p.parseOptionalTypeParameters()
	var heritage []*ast.Node
	if p.tok == syntaxkind.ExtendsKeyword {
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
		members = append(members, p.parseTypeMember())
		if p.tok == syntaxkind.CommaToken || p.tok == syntaxkind.SemicolonToken {
			p.next()
		}
	}
	p.expect(syntaxkind.CloseBraceToken)

	n := p.node(syntaxkind.InterfaceDeclaration, start)
	n.DeclName = name
	n.TypeParameters = typeParams
	n.List = append(heritage, members...)
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	return p.finishNode(n, start)
}

// tryParseTypeAliasDeclaration distinguishes `type Name = ...` from a
// bare use of the contextual `type` identifier by speculatively
// checking for a following identifier and `=`.
func (p *Parser) tryParseTypeAliasDeclaration(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	snap := p.s.Save()
	p.next() // 'type'
	if p.tok != syntaxkind.Identifier {
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	p.speculating++
	name := p.parseIdentifier()
	typeParams := p.parseOptionalTypeParameters()
	if p.tok != syntaxkind.EqualsToken {
		p.speculating--
		p.s.Restore(snap)
		p.tok = p.s.TokenKind()
		return nil
	}
	p.speculating--
	p.next()
	ty := p.parseType()
	p.parseSemicolon()

	n := p.node(syntaxkind.TypeAliasDeclaration, start)
	n.DeclName = name
	n.TypeParameters = typeParams
	n.Type = ty
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	return p.finishNode(n, start)
}

func (p *Parser) parseEnumDeclaration(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	isConst := false
	for _, m := range mods {
		if m == syntaxkind.ConstKeyword {
			isConst = true
		}
	}
	p.next()
	name := p.parseIdentifier()
	p.expect(syntaxkind.OpenBraceToken)
	var members []*ast.Node
	for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
		memberStart := p.pos()
		memberName := p.parsePropertyName()
		member := p.node(syntaxkind.EnumMember, memberStart)
		member.DeclName = memberName
		if p.tok == syntaxkind.EqualsToken {
			p.next()
			member.Initializer = p.parseAssignmentExpression()
		}
		members = append(members, p.finishNode(member, memberStart))
		if p.tok == syntaxkind.CommaToken {
			p.next()
		} else {
			break
		}
	}
	p.expect(syntaxkind.CloseBraceToken)

	n := p.node(syntaxkind.EnumDeclaration, start)
	n.DeclName = name
	n.List = members
	n.Modifiers = mods
	n.Flags = modifiersToFlags(mods)
	if isConst {
		n.Flags |= syntaxkind.NFConst
	}
	return p.finishNode(n, start)
}

func (p *Parser) parseImportDeclaration() *ast.Node {
	start := p.pos()
	p.next()
	n := p.node(syntaxkind.ImportDeclaration, start)

	if p.tok == syntaxkind.StringLiteral {
		n.Text = p.s.TokenValue()
		p.next()
		p.parseSemicolon()
		return p.finishNode(n, start)
	}

	var clauses []*ast.Node
	if p.tok == syntaxkind.Identifier {
		defaultStart := p.pos()
		defaultName := p.parseIdentifier()
		d := p.node(syntaxkind.ImportSpecifier, defaultStart)
		d.DeclName = defaultName
		d.Flags |= syntaxkind.NFDefault
		clauses = append(clauses, p.finishNode(d, defaultStart))
		if p.tok == syntaxkind.CommaToken {
			p.next()
		}
	}
	if p.tok == syntaxkind.AsteriskToken {
		nsStart := p.pos()
		p.next()
		p.expect(syntaxkind.AsKeyword)
		name := p.parseIdentifier()
		ns := p.node(syntaxkind.NamespaceImport, nsStart)
		ns.DeclName = name
		clauses = append(clauses, p.finishNode(ns, nsStart))
	} else if p.tok == syntaxkind.OpenBraceToken {
		p.next()
		for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
			specStart := p.pos()
			name := p.parseIdentifier()
			spec := p.node(syntaxkind.ImportSpecifier, specStart)
			spec.DeclName = name
			if p.tok == syntaxkind.AsKeyword {
				p.next()
				spec.Left = p.parseIdentifier()
			}
			clauses = append(clauses, p.finishNode(spec, specStart))
			if p.tok == syntaxkind.CommaToken {
				p.next()
			} else {
				break
			}
		}
		p.expect(syntaxkind.CloseBraceToken)
	}
	n.List = clauses
	if p.tok == syntaxkind.FromKeyword {
		p.next()
		if p.tok == syntaxkind.StringLiteral {
			n.Text = p.s.TokenValue()
			p.next()
		} else {
			p.report(diagnostic.MsgExpressionExpected)
		}
	}
	p.parseSemicolon()
	return p.finishNode(n, start)
}

// parseExportDeclaration handles `export { ... } [from "..."]`,
// `export * from "..."`, and `export <declaration>` (the latter
// delegates to parseModifiedDeclaration with an implied `export`).
func (p *Parser) parseExportDeclaration() *ast.Node {
	start := p.pos()
	p.next() // 'export'
	switch p.tok {
	case syntaxkind.DefaultKeyword:
		return p.parseModifiedDeclaration([]syntaxkind.Kind{syntaxkind.ExportKeyword})
	case syntaxkind.AsteriskToken, syntaxkind.OpenBraceToken:
		return p.parseExportClauseBody(start, nil)
	default:
		return p.parseModifiedDeclaration([]syntaxkind.Kind{syntaxkind.ExportKeyword})
	}
}

// parseExportDeclarationAfterKeyword is reached when an `export` has
// already been consumed as a modifier by parseModifiedDeclaration and
// the next token starts a re-export clause (`*` or `{`).
func (p *Parser) parseExportDeclarationAfterKeyword(mods []syntaxkind.Kind) *ast.Node {
	start := p.pos()
	return p.parseExportClauseBody(start, mods)
}

// parseExportClauseBody parses the `* from "mod"` or `{ a, b as c }
// [from "mod"]` forms that can follow `export`.
func (p *Parser) parseExportClauseBody(start text.Pos, mods []syntaxkind.Kind) *ast.Node {
	n := p.node(syntaxkind.ExportDeclaration, start)
	if p.tok == syntaxkind.AsteriskToken {
		p.next()
		if p.tok == syntaxkind.AsKeyword {
			p.next()
			n.DeclName = p.parseIdentifier()
		}
	} else {
		p.expect(syntaxkind.OpenBraceToken)
		var specs []*ast.Node
		for p.tok != syntaxkind.CloseBraceToken && p.tok != syntaxkind.EndOfFile {
			specStart := p.pos()
			name := p.parseIdentifier()
			spec := p.node(syntaxkind.ExportSpecifier, specStart)
			spec.DeclName = name
			if p.tok == syntaxkind.AsKeyword {
				p.next()
				spec.Left = p.parseIdentifier()
			}
			specs = append(specs, p.finishNode(spec, specStart))
			if p.tok == syntaxkind.CommaToken {
				p.next()
			} else {
				break
			}
		}
		p.expect(syntaxkind.CloseBraceToken)
		n.List = specs
	}
	if p.tok == syntaxkind.FromKeyword {
		p.next()
		if p.tok == syntaxkind.StringLiteral {
			n.Text = p.s.TokenValue()
			p.next()
		} else {
			p.report(diagnostic.MsgExpressionExpected)
		}
	}
	p.parseSemicolon()
	n.Modifiers = mods
	n.Flags |= modifiersToFlags(mods)
	return p.finishNode(n, start)
}
