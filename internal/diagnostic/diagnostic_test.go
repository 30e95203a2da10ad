package diagnostic_test

import (
	"bytes"
	"testing"

	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFormatSubstitutesPositionalArgs(t *testing.T) {
	got := diagnostic.MsgCannotFindName.Format("foo")
	assert.Equal(t, "Cannot find name 'foo'.", got)
}

func TestTemplateFormatMultipleArgs(t *testing.T) {
	got := diagnostic.MsgTypeNotAssignable.Format("number", "string")
	assert.Equal(t, "Type 'number' is not assignable to type 'string'.", got)
}

func TestNewAtRendersFileAndSpan(t *testing.T) {
	d := diagnostic.NewAt("foo.ts", text.NewRange(10, 13), diagnostic.MsgCannotFindName, "foo")
	assert.Equal(t, "foo.ts(10): error TS2304: Cannot find name 'foo'.", d.String())
	assert.True(t, d.IsError())
}

func TestNewHasNoLocationPrefix(t *testing.T) {
	d := diagnostic.New(diagnostic.MsgDeclarationExpected)
	assert.Equal(t, "error TS1128: Declaration or statement expected.", d.String())
}

func TestCollectionSortOrdersByFileThenPosition(t *testing.T) {
	var c diagnostic.Collection
	c.Add(diagnostic.NewAt("b.ts", text.NewRange(5, 6), diagnostic.MsgExpressionExpected))
	c.Add(diagnostic.NewAt("a.ts", text.NewRange(20, 21), diagnostic.MsgExpressionExpected))
	c.Add(diagnostic.NewAt("a.ts", text.NewRange(1, 2), diagnostic.MsgExpressionExpected))
	c.Sort()

	require.Len(t, c.Items(), 3)
	assert.Equal(t, "a.ts", c.Items()[0].File)
	assert.Equal(t, text.Pos(1), c.Items()[0].Span.Start)
	assert.Equal(t, "a.ts", c.Items()[1].File)
	assert.Equal(t, text.Pos(20), c.Items()[1].Span.Start)
	assert.Equal(t, "b.ts", c.Items()[2].File)
}

func TestCollectionHasErrorsAndCounts(t *testing.T) {
	var c diagnostic.Collection
	c.Add(diagnostic.New(diagnostic.Template{Code: 1, Category: diagnostic.Warning, Text: "w"}))
	assert.False(t, c.HasErrors())
	assert.Equal(t, 0, c.ErrorCount())

	c.Add(diagnostic.New(diagnostic.MsgCannotFindName, "x"))
	assert.True(t, c.HasErrors())
	assert.Equal(t, 1, c.ErrorCount())
	assert.Equal(t, 2, c.Len())
}

func TestCollectionExtend(t *testing.T) {
	var a, b diagnostic.Collection
	a.Add(diagnostic.New(diagnostic.MsgExpressionExpected))
	b.Add(diagnostic.New(diagnostic.MsgIdentifierExpected))
	b.Add(diagnostic.New(diagnostic.MsgTypeExpected))

	a.Extend(&b)
	assert.Equal(t, 3, a.Len())
}

func TestWithRelatedAttachesChild(t *testing.T) {
	prev := diagnostic.NewAt("a.ts", text.NewRange(0, 1), diagnostic.MsgDuplicateIdentifier, "x")
	d := diagnostic.NewAt("a.ts", text.NewRange(5, 6), diagnostic.MsgDuplicateIdentifier, "x").WithRelated(prev)
	require.Len(t, d.Related, 1)
	assert.Equal(t, prev.MessageText, d.Related[0].MessageText)
}

func TestPrinterPrintsPlainWithoutColorForNonTTY(t *testing.T) {
	var buf bytes.Buffer
	var c diagnostic.Collection
	c.Add(diagnostic.NewAt("a.ts", text.NewRange(3, 6), diagnostic.MsgCannotFindName, "foo"))

	p := diagnostic.NewPrinter(&buf)
	p.Print(&c)

	assert.Contains(t, buf.String(), "a.ts(3): error TS2304: Cannot find name 'foo'.")
}

func TestPrinterWithLineMapRendersLineColumn(t *testing.T) {
	var buf bytes.Buffer
	var c diagnostic.Collection
	c.Add(diagnostic.NewAt("a.ts", text.NewRange(3, 6), diagnostic.MsgCannotFindName, "foo"))

	p := diagnostic.NewPrinter(&buf).WithLineMap(func(file string, pos uint32) (int, int) {
		return 2, 4
	})
	p.Print(&c)

	assert.Contains(t, buf.String(), "a.ts(2,4): error TS2304")
}

func TestPrinterSummary(t *testing.T) {
	var c diagnostic.Collection
	c.Add(diagnostic.New(diagnostic.MsgCannotFindName, "x"))
	c.Add(diagnostic.New(diagnostic.Template{Code: 1, Category: diagnostic.Warning, Text: "w"}))

	p := diagnostic.NewPrinter(&bytes.Buffer{})
	summary := p.Summary(&c)
	assert.Contains(t, summary, "1 errors")
	assert.Contains(t, summary, "2 diagnostics total")
}
