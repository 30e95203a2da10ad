package scanner

import (
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
)

// canPrecedeRegex reports whether, given the last significant token,
// a following `/` should be scanned as the start of a regular
// expression rather than the division operator (spec §4.3: "after an
// operand-ending token it lexes `/` as division, otherwise it
// attempts regex").
func canPrecedeRegex(last syntaxkind.Kind) bool {
	switch last {
	case syntaxkind.Identifier, syntaxkind.NumericLiteral, syntaxkind.BigIntLiteral,
		syntaxkind.StringLiteral, syntaxkind.NoSubstitutionTemplateLiteral,
		syntaxkind.TemplateTail, syntaxkind.CloseParenToken, syntaxkind.CloseBracketToken,
		syntaxkind.CloseBraceToken, syntaxkind.ThisKeyword, syntaxkind.SuperKeyword,
		syntaxkind.TrueKeyword, syntaxkind.FalseKeyword, syntaxkind.NullKeyword,
		syntaxkind.PlusPlusToken, syntaxkind.MinusMinusToken:
		return false
	default:
		return true
	}
}

func (s *Scanner) scanRegex() syntaxkind.Kind {
	start := s.pos
	s.pos++ // opening /
	inClass := false
	terminated := false
	for !s.atEnd() {
		c := s.peekByte()
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			s.pos++
			terminated = true
			break
		} else if isLineBreak(rune(c)) {
			break
		}
		_, w := s.peekRune()
		s.pos += w
	}
	if terminated {
		for !s.atEnd() && isIdentifierPart(rune(s.peekByte())) {
			s.pos++
		}
	} else {
		s.tokenFlags |= syntaxkind.TFUnterminated
	}
	s.tokenValue = s.src[start:s.pos]
	return s.finish(syntaxkind.RegularExpressionLiteral)
}

func (s *Scanner) scanPunctuation() syntaxkind.Kind {
	c := s.peekByte()
	two := func(next byte) bool { return s.peekByteAt(1) == next }
	three := func(n1, n2 byte) bool { return s.peekByteAt(1) == n1 && s.peekByteAt(2) == n2 }
	four := func(n1, n2, n3 byte) bool {
		return s.peekByteAt(1) == n1 && s.peekByteAt(2) == n2 && s.peekByteAt(3) == n3
	}

	switch c {
	case '{':
		s.pos++
		return s.finish(syntaxkind.OpenBraceToken)
	case '}':
		s.pos++
		return s.finish(syntaxkind.CloseBraceToken)
	case '(':
		s.pos++
		return s.finish(syntaxkind.OpenParenToken)
	case ')':
		s.pos++
		return s.finish(syntaxkind.CloseParenToken)
	case '[':
		s.pos++
		return s.finish(syntaxkind.OpenBracketToken)
	case ']':
		s.pos++
		return s.finish(syntaxkind.CloseBracketToken)
	case ';':
		s.pos++
		return s.finish(syntaxkind.SemicolonToken)
	case ',':
		s.pos++
		return s.finish(syntaxkind.CommaToken)
	case '~':
		s.pos++
		return s.finish(syntaxkind.TildeToken)
	case '@':
		s.pos++
		return s.finish(syntaxkind.AtToken)
	case '.':
		if three('.', '.') {
			s.pos += 3
			return s.finish(syntaxkind.DotDotDotToken)
		}
		s.pos++
		return s.finish(syntaxkind.DotToken)
	case '?':
		if two('.') {
			s.pos += 2
			return s.finish(syntaxkind.QuestionDotToken)
		}
		if two('?') {
			if three('?', '=') {
				s.pos += 3
				return s.finish(syntaxkind.QuestionQuestionEqualsToken)
			}
			s.pos += 2
			return s.finish(syntaxkind.QuestionQuestionToken)
		}
		s.pos++
		return s.finish(syntaxkind.QuestionToken)
	case ':':
		s.pos++
		return s.finish(syntaxkind.ColonToken)
	case '<':
		if three('<', '=') {
			s.pos += 3
			return s.finish(syntaxkind.LessThanLessThanEqualsToken)
		}
		if two('<') {
			s.pos += 2
			return s.finish(syntaxkind.LessThanLessThanToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.LessThanEqualsToken)
		}
		if two('/') {
			s.pos += 2
			return s.finish(syntaxkind.LessThanSlashToken)
		}
		s.pos++
		return s.finish(syntaxkind.LessThanToken)
	case '>':
		if four('>', '>', '=') {
			s.pos += 4
			return s.finish(syntaxkind.GreaterThanGreaterThanGreaterThanEqualsToken)
		}
		if three('>', '>') {
			s.pos += 3
			return s.finish(syntaxkind.GreaterThanGreaterThanGreaterThanToken)
		}
		if three('>', '=') {
			s.pos += 3
			return s.finish(syntaxkind.GreaterThanGreaterThanEqualsToken)
		}
		if two('>') {
			s.pos += 2
			return s.finish(syntaxkind.GreaterThanGreaterThanToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.GreaterThanEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.GreaterThanToken)
	case '=':
		if three('=', '=') {
			s.pos += 3
			return s.finish(syntaxkind.EqualsEqualsEqualsToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.EqualsEqualsToken)
		}
		if two('>') {
			s.pos += 2
			return s.finish(syntaxkind.EqualsGreaterThanToken)
		}
		s.pos++
		return s.finish(syntaxkind.EqualsToken)
	case '!':
		if three('=', '=') {
			s.pos += 3
			return s.finish(syntaxkind.ExclamationEqualsEqualsToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.ExclamationEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.ExclamationToken)
	case '+':
		if two('+') {
			s.pos += 2
			return s.finish(syntaxkind.PlusPlusToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.PlusEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.PlusToken)
	case '-':
		if two('-') {
			s.pos += 2
			return s.finish(syntaxkind.MinusMinusToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.MinusEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.MinusToken)
	case '*':
		if three('*', '=') {
			s.pos += 3
			return s.finish(syntaxkind.AsteriskAsteriskEqualsToken)
		}
		if two('*') {
			s.pos += 2
			return s.finish(syntaxkind.AsteriskAsteriskToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.AsteriskEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.AsteriskToken)
	case '/':
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.SlashEqualsToken)
		}
		if canPrecedeRegex(s.lastSignificant) {
			return s.scanRegex()
		}
		s.pos++
		return s.finish(syntaxkind.SlashToken)
	case '%':
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.PercentEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.PercentToken)
	case '&':
		if three('&', '=') {
			s.pos += 3
			return s.finish(syntaxkind.AmpersandAmpersandEqualsToken)
		}
		if two('&') {
			s.pos += 2
			return s.finish(syntaxkind.AmpersandAmpersandToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.AmpersandEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.AmpersandToken)
	case '|':
		if three('|', '=') {
			s.pos += 3
			return s.finish(syntaxkind.BarBarEqualsToken)
		}
		if two('|') {
			s.pos += 2
			return s.finish(syntaxkind.BarBarToken)
		}
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.BarEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.BarToken)
	case '^':
		if two('=') {
			s.pos += 2
			return s.finish(syntaxkind.CaretEqualsToken)
		}
		s.pos++
		return s.finish(syntaxkind.CaretToken)
	default:
		// Illegal character recovery: emit a diagnostic, advance one
		// code point, and surface it as Unknown (spec §4.3).
		s.report(diagnostic.MsgInvalidCharacter)
		_, w := s.peekRune()
		if w == 0 {
			w = 1
		}
		s.pos += w
		return s.finish(syntaxkind.Unknown)
	}
}
