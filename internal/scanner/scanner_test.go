package scanner_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/scanner"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(src string) *scanner.Scanner {
	return scanner.New("test.ts", src, intern.New(), &diagnostic.Collection{})
}

func TestScanPunctuationAndOperators(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want syntaxkind.Kind
	}{
		{"plus", "+", syntaxkind.PlusToken},
		{"plus plus", "++", syntaxkind.PlusPlusToken},
		{"plus equals", "+=", syntaxkind.PlusEqualsToken},
		{"arrow", "=>", syntaxkind.EqualsGreaterThanToken},
		{"strict equals", "===", syntaxkind.EqualsEqualsEqualsToken},
		{"unsigned right shift", ">>>", syntaxkind.GreaterThanGreaterThanGreaterThanToken},
		{"unsigned right shift assign", ">>>=", syntaxkind.GreaterThanGreaterThanGreaterThanEqualsToken},
		{"nullish coalescing", "??", syntaxkind.QuestionQuestionToken},
		{"optional chaining", "?.", syntaxkind.QuestionDotToken},
		{"spread", "...", syntaxkind.DotDotDotToken},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newScanner(tc.src)
			assert.Equal(t, tc.want, s.Scan())
		})
	}
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	s := newScanner("interface foo")
	assert.Equal(t, syntaxkind.InterfaceKeyword, s.Scan())
	assert.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.Equal(t, "foo", s.TokenValue())
}

func TestScanPrivateIdentifier(t *testing.T) {
	s := newScanner("#field")
	assert.Equal(t, syntaxkind.PrivateIdentifier, s.Scan())
	assert.Equal(t, "#field", s.TokenValue())
}

func TestScanStringLiteralWithEscapes(t *testing.T) {
	s := newScanner(`"a\nbA\x42"`)
	assert.Equal(t, syntaxkind.StringLiteral, s.Scan())
	assert.Equal(t, "a\nbAB", s.TokenValue())
}

func TestScanUnterminatedStringSetsFlag(t *testing.T) {
	s := newScanner(`"abc`)
	assert.Equal(t, syntaxkind.StringLiteral, s.Scan())
	assert.True(t, s.TokenFlags().Has(syntaxkind.TFUnterminated))
}

func TestScanNumericLiteralVariants(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		wantKind syntaxkind.Kind
		wantFlag syntaxkind.TokenFlags
	}{
		{"decimal", "123", syntaxkind.NumericLiteral, syntaxkind.TFNone},
		{"hex", "0xFF", syntaxkind.NumericLiteral, syntaxkind.TFHexSpecifier},
		{"octal", "0o17", syntaxkind.NumericLiteral, syntaxkind.TFOctalSpecifier},
		{"binary", "0b101", syntaxkind.NumericLiteral, syntaxkind.TFBinarySpecifier},
		{"legacy octal", "0755", syntaxkind.NumericLiteral, syntaxkind.TFOctalLegacy},
		{"separators", "1_000", syntaxkind.NumericLiteral, syntaxkind.TFContainsSeparator},
		{"bigint", "123n", syntaxkind.BigIntLiteral, syntaxkind.TFNone},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newScanner(tc.src)
			got := s.Scan()
			assert.Equal(t, tc.wantKind, got)
			if tc.wantFlag != syntaxkind.TFNone {
				assert.True(t, s.TokenFlags().Has(tc.wantFlag))
			}
		})
	}
}

func TestScanTemplateLiteralNoSubstitution(t *testing.T) {
	s := newScanner("`hello`")
	assert.Equal(t, syntaxkind.NoSubstitutionTemplateLiteral, s.Scan())
	assert.Equal(t, "hello", s.TokenValue())
}

func TestScanTemplateHeadAndResume(t *testing.T) {
	s := newScanner("`a${")
	assert.Equal(t, syntaxkind.TemplateHead, s.Scan())
	assert.Equal(t, "a", s.TokenValue())
	// Parser would now parse the substitution expression; once it
	// consumes the closing '}', it calls ResumeTemplate to continue.
}

func TestRegexVsDivisionDisambiguation(t *testing.T) {
	s := newScanner("/abc/")
	assert.Equal(t, syntaxkind.RegularExpressionLiteral, s.Scan())

	s2 := newScanner("x / y")
	assert.Equal(t, syntaxkind.Identifier, s2.Scan())
	assert.Equal(t, syntaxkind.SlashToken, s2.Scan())
}

func TestPrecedingLineBreakFlag(t *testing.T) {
	s := newScanner("a\nb")
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.False(t, s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak))
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.True(t, s.TokenFlags().Has(syntaxkind.TFPrecedingLineBreak))
}

func TestSnapshotRestoreRewindsPosition(t *testing.T) {
	s := newScanner("foo bar")
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	snap := s.Save()
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.Equal(t, "bar", s.TokenValue())

	s.Restore(snap)
	assert.Equal(t, "foo", s.TokenValue())
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.Equal(t, "bar", s.TokenValue())
}

func TestIllegalCharacterRecoveryAdvancesAndReportsDiagnostic(t *testing.T) {
	diags := &diagnostic.Collection{}
	s := scanner.New("test.ts", "a \x01 b", intern.New(), diags)
	require.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.Equal(t, syntaxkind.Unknown, s.Scan())
	assert.Equal(t, syntaxkind.Identifier, s.Scan())
	assert.Equal(t, 1, diags.Len())
}

func TestSkipShebangAtStartOfFile(t *testing.T) {
	s := newScanner("#!/usr/bin/env node\nconst x = 1;")
	s.SkipShebang()
	assert.Equal(t, syntaxkind.ConstKeyword, s.Scan())
}

func TestIsContextualKeywordClassification(t *testing.T) {
	assert.True(t, scanner.IsContextualKeyword(syntaxkind.AsyncKeyword))
	assert.True(t, scanner.IsContextualKeyword(syntaxkind.TypeKeyword))
	assert.False(t, scanner.IsContextualKeyword(syntaxkind.IfKeyword))
	assert.False(t, scanner.IsContextualKeyword(syntaxkind.Identifier))
}
