// Package parser implements the hand-written recursive-descent parser
// that turns a token stream into an arena-allocated concrete syntax
// tree, generalizing the teacher's internal/parser package (itself a
// processor-per-grammar-rule recursive-descent parser over
// token.Token) to the closed syntaxkind.Kind node/token space and the
// context-sensitive disambiguation spec.md's grammar requires (arrow
// heads, type vs. expression, regex vs. division is handled one layer
// down in the scanner).
package parser

import (
	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/scanner"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// Parser holds one file's parsing state: the scanner feeding it
// tokens, the arena every node is allocated from, and the
// in-progress SourceFile.
type Parser struct {
	s     *scanner.Scanner
	a     *arena.Arena
	in    *intern.Interner
	diags *diagnostic.Collection
	sf    *ast.SourceFile

	tok syntaxkind.Kind // current token's kind (already scanned)

	// disallowIn suppresses treating `in` as a relational operator
	// while parsing a for-statement's head.
	disallowIn bool

	// speculating is nonzero while a tryParse* lookahead is in
	// progress; report() drops diagnostics raised in that window so a
	// rolled-back speculative parse (arrow-head, type-alias lookahead)
	// never leaves a phantom error behind.
	speculating int
}

// ParseSourceFile parses the entirety of src and returns the resulting
// SourceFile, never failing: malformed input yields Missing… nodes
// with diagnostics appended to diags (spec §4.4's public contract).
func ParseSourceFile(a *arena.Arena, in *intern.Interner, diags *diagnostic.Collection, fileName, src string) *ast.SourceFile {
	sf := ast.NewSourceFile(fileName, src)
	sc := scanner.New(fileName, src, in, diags)
	sc.SkipShebang()
	p := &Parser{s: sc, a: a, in: in, diags: diags, sf: sf}
	p.next()

	for p.tok != syntaxkind.EndOfFile {
		stmt := p.parseStatement()
		if stmt != nil {
			sf.Statements = append(sf.Statements, stmt)
		}
	}
	sf.EndOfFileAt = p.s.TokenPos()
	sf.LinkParents()
	return sf
}

func (p *Parser) next() syntaxkind.Kind {
	p.tok = p.s.Scan()
	return p.tok
}

func (p *Parser) pos() text.Pos { return p.s.TokenPos() }
func (p *Parser) end() text.Pos { return p.s.TokenEnd() }

func (p *Parser) node(kind syntaxkind.Kind, start text.Pos) *ast.Node {
	return ast.New(p.a, p.sf, kind, text.NewRange(start, p.s.TokenEnd()))
}

// finishNode closes n's range at the end of the just-consumed token.
func (p *Parser) finishNode(n *ast.Node, start text.Pos) *ast.Node {
	n.Range = text.NewRange(start, p.s.TokenPos())
	return n
}

func (p *Parser) intern(s string) intern.Handle { return p.in.Intern(s) }

func (p *Parser) report(t diagnostic.Template, args ...string) {
	if p.speculating > 0 {
		return
	}
	p.diags.Add(diagnostic.NewAt(p.sf.FileName, text.NewRange(p.pos(), p.end()), t, args...))
}

// expect consumes the current token if it matches kind and returns
// true; otherwise it reports a diagnostic and returns false without
// consuming a token or synthesizing a node, leaving progress to the
// caller's own recovery (e.g. skipToStatementStart).
func (p *Parser) expect(kind syntaxkind.Kind) bool {
	if p.tok == kind {
		p.next()
		return true
	}
	p.report(diagnostic.MsgUnexpectedToken, kind.String())
	return false
}

// parseIdentifier consumes an Identifier (or recovers with a
// MissingIdentifier node + diagnostic).
func (p *Parser) parseIdentifier() *ast.Node {
	start := p.pos()
	if p.tok == syntaxkind.Identifier || scanner.IsContextualKeyword(p.tok) {
		n := p.node(syntaxkind.Identifier, start)
		n.Name = p.intern(p.s.TokenValue())
		n.Text = p.s.TokenValue()
		p.next()
		return p.finishNode(n, start)
	}
	p.report(diagnostic.MsgIdentifierExpected)
	return ast.Missing(p.a, p.sf, syntaxkind.MissingIdentifier, start)
}

// parseSemicolon implements automatic semicolon insertion: a `;` is
// consumed if present; otherwise it is treated as present when the
// next token is `}`, begins on a new line, or the stream has ended
// (spec §4.4).
func (p *Parser) parseSemicolon() {
	if p.tok == syntaxkind.SemicolonToken {
		p.next()
		return
	}
	if p.tok == syntaxkind.CloseBraceToken || p.tok == syntaxkind.EndOfFile {
		return
	}
	if p.s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak) {
		return
	}
	p.report(diagnostic.MsgUnexpectedToken, ";")
}

// skipToStatementStart implements the statement-start resynchronization
// recovery strategy: advance at least one token, then continue
// advancing until a token that can start a statement (or EOF) is seen.
func (p *Parser) skipToStatementStart() {
	p.next()
	for p.tok != syntaxkind.EndOfFile && !CanStartStatement(p.tok) {
		p.next()
	}
}

func (p *Parser) parseModifiers() []syntaxkind.Kind {
	var mods []syntaxkind.Kind
	for {
		switch p.tok {
		case syntaxkind.ExportKeyword, syntaxkind.DefaultKeyword, syntaxkind.DeclareKeyword,
			syntaxkind.AbstractKeyword, syntaxkind.PublicKeyword, syntaxkind.PrivateKeyword,
			syntaxkind.ProtectedKeyword, syntaxkind.StaticKeyword,
			syntaxkind.ReadonlyKeyword, syntaxkind.AsyncKeyword, syntaxkind.OverrideKeyword:
			mods = append(mods, p.tok)
			p.next()
		default:
			return mods
		}
	}
}
