package scanner

import (
	"strconv"
	"strings"

	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// scanNumber handles decimal, hex, octal, binary, legacy-octal, bigint
// suffix, and '_' digit separators per spec §4.3.
func (s *Scanner) scanNumber() syntaxkind.Kind {
	start := s.pos
	isBigInt := false

	if s.peekByte() == '0' && (s.peekByteAt(1) == 'x' || s.peekByteAt(1) == 'X') {
		s.pos += 2
		s.tokenFlags |= syntaxkind.TFHexSpecifier
		s.consumeDigitsAndSeparators(isHexDigit)
	} else if s.peekByte() == '0' && (s.peekByteAt(1) == 'o' || s.peekByteAt(1) == 'O') {
		s.pos += 2
		s.tokenFlags |= syntaxkind.TFOctalSpecifier
		s.consumeDigitsAndSeparators(isOctalDigit)
	} else if s.peekByte() == '0' && (s.peekByteAt(1) == 'b' || s.peekByteAt(1) == 'B') {
		s.pos += 2
		s.tokenFlags |= syntaxkind.TFBinarySpecifier
		s.consumeDigitsAndSeparators(isBinaryDigit)
	} else if s.peekByte() == '0' && isOctalDigit(s.peekByteAt(1)) {
		// Legacy octal: 0755 (no 0o prefix).
		s.tokenFlags |= syntaxkind.TFOctalLegacy
		s.pos++
		s.consumeDigitsAndSeparators(isOctalDigit)
	} else {
		s.consumeDigitsAndSeparators(isDigit)
		if s.peekByte() == '.' {
			s.pos++
			s.consumeDigitsAndSeparators(isDigit)
		}
		if s.peekByte() == 'e' || s.peekByte() == 'E' {
			save := s.pos
			s.pos++
			if s.peekByte() == '+' || s.peekByte() == '-' {
				s.pos++
			}
			if isDigit(s.peekByte()) {
				s.consumeDigitsAndSeparators(isDigit)
			} else {
				s.pos = save
			}
		}
	}

	if s.peekByte() == 'n' {
		isBigInt = true
		s.pos++
	}

	raw := s.src[start:s.pos]
	s.tokenValue = strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	if strings.Contains(raw, "_") {
		s.tokenFlags |= syntaxkind.TFContainsSeparator
	}

	if isBigInt {
		return s.finish(syntaxkind.BigIntLiteral)
	}
	if v, err := strconv.ParseFloat(normalizeForParse(s.tokenValue), 64); err == nil {
		s.tokenNumber = v
	}
	return s.finish(syntaxkind.NumericLiteral)
}

// TokenNumberValue returns the decoded numeric value of the most
// recently scanned NumericLiteral token.
func (s *Scanner) TokenNumberValue() float64 { return s.tokenNumber }

// normalizeForParse rewrites 0x/0o/0b-prefixed text into decimal, since
// strconv.ParseFloat accepts none of these integer prefixes. Legacy
// octal text is passed through unchanged, so ParseFloat reads it as
// decimal.
func normalizeForParse(raw string) string {
	if len(raw) > 1 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		if iv, err := strconv.ParseInt(raw[2:], 16, 64); err == nil {
			return strconv.FormatInt(iv, 10)
		}
	}
	if len(raw) > 1 && raw[0] == '0' && (raw[1] == 'o' || raw[1] == 'O') {
		if iv, err := strconv.ParseInt(raw[2:], 8, 64); err == nil {
			return strconv.FormatInt(iv, 10)
		}
	}
	if len(raw) > 1 && raw[0] == '0' && (raw[1] == 'b' || raw[1] == 'B') {
		if iv, err := strconv.ParseInt(raw[2:], 2, 64); err == nil {
			return strconv.FormatInt(iv, 10)
		}
	}
	return raw
}

func (s *Scanner) consumeDigitsAndSeparators(pred func(byte) bool) {
	for !s.atEnd() && (pred(s.peekByte()) || s.peekByte() == '_') {
		s.pos++
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }
func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }

// scanString handles single- and double-quoted literals with
// backslash escapes, including \xHH, \uHHHH, \u{...}, and line
// continuations.
func (s *Scanner) scanString(quote byte) syntaxkind.Kind {
	s.pos++ // opening quote
	var b strings.Builder
	terminated := false
	for !s.atEnd() {
		c := s.peekByte()
		if c == quote {
			s.pos++
			terminated = true
			break
		}
		r, w := s.peekRune()
		if isLineBreak(r) && c != '\\' {
			break
		}
		if c == '\\' {
			s.pos++
			s.decodeEscape(&b)
			continue
		}
		b.WriteRune(r)
		s.pos += w
	}
	if !terminated {
		s.tokenFlags |= syntaxkind.TFUnterminated
		s.report(diagnostic.MsgUnterminatedStringLiteral)
	}
	s.tokenValue = b.String()
	return s.finish(syntaxkind.StringLiteral)
}

// decodeEscape consumes one escape sequence (the leading backslash has
// already been consumed) and writes its decoded rune(s) to b.
func (s *Scanner) decodeEscape(b *strings.Builder) {
	if s.atEnd() {
		return
	}
	c := s.peekByte()
	switch c {
	case 'n':
		b.WriteByte('\n')
		s.pos++
	case 't':
		b.WriteByte('\t')
		s.pos++
	case 'r':
		b.WriteByte('\r')
		s.pos++
	case '\\', '\'', '"', '`':
		b.WriteByte(c)
		s.pos++
	case '0':
		b.WriteByte(0)
		s.pos++
	case 'x':
		s.pos++
		if s.pos+2 <= len(s.src) && isHexDigit(s.peekByte()) && isHexDigit(s.peekByteAt(1)) {
			v, _ := strconv.ParseInt(s.src[s.pos:s.pos+2], 16, 32)
			b.WriteRune(rune(v))
			s.pos += 2
		} else {
			s.tokenFlags |= syntaxkind.TFContainsInvalidEscape
		}
	case 'u':
		s.pos++
		if s.peekByte() == '{' {
			start := s.pos + 1
			end := start
			for end < len(s.src) && s.src[end] != '}' {
				end++
			}
			if v, err := strconv.ParseInt(s.src[start:end], 16, 32); err == nil {
				b.WriteRune(rune(v))
			} else {
				s.tokenFlags |= syntaxkind.TFContainsInvalidEscape
			}
			s.pos = end + 1
		} else if s.pos+4 <= len(s.src) {
			if v, err := strconv.ParseInt(s.src[s.pos:s.pos+4], 16, 32); err == nil {
				b.WriteRune(rune(v))
				s.pos += 4
			} else {
				s.tokenFlags |= syntaxkind.TFContainsInvalidEscape
			}
		}
	case '\n':
		s.pos++ // line continuation: escaped newline contributes nothing
	default:
		r, w := s.peekRune()
		b.WriteRune(r)
		s.pos += w
	}
}

// scanTemplateFrom scans a template literal chunk. When fromBacktick
// is true this is the opening backtick of a fresh template; otherwise
// it resumes after a `}` that closed a substitution, producing
// TemplateMiddle or TemplateTail.
func (s *Scanner) scanTemplateFrom(fromBacktick bool) syntaxkind.Kind {
	s.pos++ // consume ` or }
	var b strings.Builder
	for !s.atEnd() {
		c := s.peekByte()
		if c == '`' {
			s.pos++
			kind := syntaxkind.NoSubstitutionTemplateLiteral
			if !fromBacktick {
				kind = syntaxkind.TemplateTail
			}
			s.tokenValue = b.String()
			return s.finish(kind)
		}
		if c == '$' && s.peekByteAt(1) == '{' {
			s.pos += 2
			kind := syntaxkind.TemplateHead
			if !fromBacktick {
				kind = syntaxkind.TemplateMiddle
			}
			s.tokenValue = b.String()
			return s.finish(kind)
		}
		if c == '\\' {
			s.pos++
			s.decodeEscape(&b)
			continue
		}
		r, w := s.peekRune()
		b.WriteRune(r)
		s.pos += w
	}
	s.tokenFlags |= syntaxkind.TFUnterminated
	s.report(diagnostic.MsgUnterminatedStringLiteral)
	s.tokenValue = b.String()
	kind := syntaxkind.NoSubstitutionTemplateLiteral
	if !fromBacktick {
		kind = syntaxkind.TemplateTail
	}
	return s.finish(kind)
}

// ResumeTemplate is called by the parser after it has fully parsed the
// `${ expr }` substitution and consumed the closing `}`, to scan the
// next template chunk (TemplateMiddle/TemplateTail).
func (s *Scanner) ResumeTemplate() syntaxkind.Kind {
	s.tokenPos = text.Pos(s.pos)
	return s.scanTemplateFrom(false)
}
