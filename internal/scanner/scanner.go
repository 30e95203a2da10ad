// Package scanner turns source text into a stream of
// syntaxkind.Kind-tagged tokens with decoded literal values and
// source positions, the way the teacher's internal/lexer package
// turns text into token.Token values — generalized to the closed
// Kind enum, Unicode identifiers, and speculative snapshot/restore the
// parser needs for arrow-head and type-vs-expression disambiguation.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// Scanner produces one token per Scan() call, re-entrant enough for
// the parser to snapshot and restore its state for speculative parses
// and to resume scanning a template literal after a `${...}` span.
type Scanner struct {
	src     string
	pos     int // byte offset of the next rune to read
	in      *intern.Interner
	file    string
	diags   *diagnostic.Collection

	tokenKind   syntaxkind.Kind
	tokenPos    text.Pos
	tokenEnd    text.Pos
	tokenValue  string
	tokenNumber float64
	tokenFlags  syntaxkind.TokenFlags

	precedingLineBreak bool
	lastSignificant    syntaxkind.Kind // drives regex-vs-division
}

// New creates a Scanner over src. file is used only to attribute
// diagnostics; in is shared across every phase of one compilation.
func New(file, src string, in *intern.Interner, diags *diagnostic.Collection) *Scanner {
	return &Scanner{src: src, in: in, file: file, diags: diags, lastSignificant: syntaxkind.Unknown}
}

// Snapshot captures the scan position, the current token's kind,
// range, text and flags, and the regex-vs-division context, for the
// parser's speculative lookahead (arrow heads, type vs expression).
// The current token's decoded numeric value is not captured.
type Snapshot struct {
	pos             int
	tokenKind       syntaxkind.Kind
	tokenPos        text.Pos
	tokenEnd        text.Pos
	tokenValue      string
	tokenFlags      syntaxkind.TokenFlags
	lastSignificant syntaxkind.Kind
}

// Save returns a Snapshot of the current position and last-scanned
// token.
func (s *Scanner) Save() Snapshot {
	return Snapshot{
		pos: s.pos, tokenKind: s.tokenKind, tokenPos: s.tokenPos, tokenEnd: s.tokenEnd,
		tokenValue: s.tokenValue, tokenFlags: s.tokenFlags, lastSignificant: s.lastSignificant,
	}
}

// Restore rewinds the scanner to a previously saved Snapshot.
func (s *Scanner) Restore(snap Snapshot) {
	s.pos = snap.pos
	s.tokenKind = snap.tokenKind
	s.tokenPos = snap.tokenPos
	s.tokenEnd = snap.tokenEnd
	s.tokenValue = snap.tokenValue
	s.tokenFlags = snap.tokenFlags
	s.lastSignificant = snap.lastSignificant
}

// TokenKind, TokenValue, TokenPos, TokenEnd, TokenFlags expose the
// result of the most recent Scan call.
func (s *Scanner) TokenKind() syntaxkind.Kind     { return s.tokenKind }
func (s *Scanner) TokenValue() string             { return s.tokenValue }
func (s *Scanner) TokenPos() text.Pos             { return s.tokenPos }
func (s *Scanner) TokenEnd() text.Pos             { return s.tokenEnd }
func (s *Scanner) TokenFlags() syntaxkind.TokenFlags { return s.tokenFlags }

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *Scanner) peekByte() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekByteAt(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *Scanner) peekRune() (rune, int) {
	if s.atEnd() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *Scanner) advanceRune() rune {
	r, w := s.peekRune()
	s.pos += w
	return r
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == ' '
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f' || unicode.IsSpace(r)
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// SkipShebang skips a `#!...` line at offset 0, per spec §4.3 ("Shebang
// at offset 0 is explicitly skipped by caller").
func (s *Scanner) SkipShebang() {
	if strings.HasPrefix(s.src, "#!") {
		for !s.atEnd() {
			r, w := s.peekRune()
			if isLineBreak(r) {
				break
			}
			s.pos += w
		}
	}
}

// Scan advances to and returns the next token's kind, also populating
// the TokenValue/TokenPos/TokenEnd/TokenFlags accessors.
func (s *Scanner) Scan() syntaxkind.Kind {
	s.tokenFlags = syntaxkind.TFNone
	s.precedingLineBreak = false
	s.skipTrivia()
	if s.precedingLineBreak {
		s.tokenFlags |= syntaxkind.TFPrecedingLineBreak
	}

	start := s.pos
	s.tokenPos = text.Pos(start)

	if s.atEnd() {
		s.tokenKind = syntaxkind.EndOfFile
		s.tokenEnd = text.Pos(s.pos)
		s.tokenValue = ""
		return s.finish(s.tokenKind)
	}

	r, _ := s.peekRune()
	switch {
	case isDigit(s.src[s.pos]):
		return s.scanNumber()
	case s.src[s.pos] == '"' || s.src[s.pos] == '\'':
		return s.scanString(s.src[s.pos])
	case s.src[s.pos] == '`':
		return s.scanTemplateFrom(true)
	case s.src[s.pos] == '#':
		return s.scanIdentifierOrKeyword()
	case isIdentifierStart(r):
		return s.scanIdentifierOrKeyword()
	default:
		return s.scanPunctuation()
	}
}

func (s *Scanner) finish(kind syntaxkind.Kind) syntaxkind.Kind {
	s.tokenKind = kind
	s.tokenEnd = text.Pos(s.pos)
	if kind != syntaxkind.WhitespaceTrivia && kind != syntaxkind.LineBreakTrivia {
		s.lastSignificant = kind
	}
	return kind
}

// skipTrivia consumes whitespace and comments, recording whether a
// line break occurred so the caller can set PrecedingLineBreak.
func (s *Scanner) skipTrivia() {
	for !s.atEnd() {
		r, w := s.peekRune()
		switch {
		case isLineBreak(r):
			s.precedingLineBreak = true
			s.pos += w
		case isWhitespace(r):
			s.pos += w
		case r == '/' && s.peekByteAt(1) == '/':
			for !s.atEnd() {
				r2, w2 := s.peekRune()
				if isLineBreak(r2) {
					break
				}
				s.pos += w2
			}
		case r == '/' && s.peekByteAt(1) == '*':
			s.pos += 2
			terminated := false
			for !s.atEnd() {
				if s.peekByte() == '*' && s.peekByteAt(1) == '/' {
					s.pos += 2
					terminated = true
					break
				}
				r2, w2 := s.peekRune()
				if isLineBreak(r2) {
					s.precedingLineBreak = true
				}
				s.pos += w2
			}
			if !terminated {
				s.report(diagnostic.MsgUnterminatedComment)
			}
		default:
			return
		}
	}
}

func (s *Scanner) report(t diagnostic.Template, args ...string) {
	if s.diags == nil {
		return
	}
	s.diags.Add(diagnostic.NewAt(s.file, text.NewRange(text.Pos(s.pos), text.Pos(s.pos+1)), t, args...))
}
