package diagnostic

import (
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	isatty "github.com/mattn/go-isatty"
)

// ansi color codes used when the printer's writer is a terminal.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiDim    = "\x1b[2m"
)

// Printer renders a Collection to an io.Writer, colorizing categories
// when the writer is attached to a terminal.
type Printer struct {
	w      io.Writer
	color  bool
	lineAt func(file string, pos uint32) (line, column int)
}

// NewPrinter builds a Printer for w. Color is enabled automatically
// when w is *os.File and isatty reports a terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return p
}

// WithLineMap installs a callback used to render line/column instead
// of a raw byte offset, for printers wired to a text.LineMap per file.
func (p *Printer) WithLineMap(fn func(file string, pos uint32) (line, column int)) *Printer {
	p.lineAt = fn
	return p
}

func (p *Printer) categoryColor(c Category) string {
	switch c {
	case Error:
		return ansiRed
	case Warning:
		return ansiYellow
	case Suggestion:
		return ansiCyan
	default:
		return ansiDim
	}
}

// Print renders every diagnostic in c, one per line. Callers should
// call c.Sort() first if stable (file, position) ordering is desired.
func (p *Printer) Print(c *Collection) {
	for _, d := range c.Items() {
		p.printOne(d, 0)
	}
}

func (p *Printer) printOne(d Diagnostic, depth int) {
	prefix := ""
	for i := 0; i < depth; i++ {
		prefix += "  "
	}

	loc := ""
	if d.File != "" {
		pos := ""
		if d.HasSpan {
			if p.lineAt != nil {
				line, col := p.lineAt(d.File, uint32(d.Span.Start))
				pos = fmt.Sprintf("(%d,%d)", line, col)
			} else {
				pos = fmt.Sprintf("(%d)", d.Span.Start)
			}
		}
		loc = d.File + pos + ": "
	}

	cat := d.Category.String()
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s%s %sTS%d%s: %s\n",
			prefix, loc, p.categoryColor(d.Category), cat, ansiDim, d.Code, ansiReset, d.MessageText)
	} else {
		fmt.Fprintf(p.w, "%s%s%s TS%d: %s\n", prefix, loc, cat, d.Code, d.MessageText)
	}

	for _, r := range d.Related {
		p.printOne(r, depth+1)
	}
}

// Summary renders a one-line human-readable count of errors and of all
// diagnostics, e.g. "3 errors (12 diagnostics total)"; warnings are not
// counted separately.
func (p *Printer) Summary(c *Collection) string {
	errs := c.ErrorCount()
	total := c.Len()
	return fmt.Sprintf("%s errors (%s diagnostics total)",
		humanize.Comma(int64(errs)), humanize.Comma(int64(total)))
}
