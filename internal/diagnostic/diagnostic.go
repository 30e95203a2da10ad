// Package diagnostic implements the compiler's error/warning reporting
// model: message templates, realized diagnostics carrying a file/span,
// and an accumulating collection shared across every phase.
package diagnostic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/funvibe/rscript/internal/text"
)

// Category classifies a diagnostic the way the checker and printer
// need to treat it.
type Category int

const (
	Warning Category = iota
	Error
	Suggestion
	Message
)

func (c Category) String() string {
	switch c {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Suggestion:
		return "suggestion"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// Template is a registered message with a stable code, category, and
// a text pattern that may reference {0}, {1}, ... placeholders.
type Template struct {
	Code     uint32
	Category Category
	Text     string
}

// Format substitutes args into the template's placeholders in order.
func (t Template) Format(args ...string) string {
	out := t.Text
	for i, a := range args {
		out = strings.ReplaceAll(out, "{"+strconv.Itoa(i)+"}", a)
	}
	return out
}

// Diagnostic is a realized message with optional source location.
type Diagnostic struct {
	File        string
	Span        text.Range
	HasSpan     bool
	Code        uint32
	Category    Category
	MessageText string
	Related     []Diagnostic
}

// New creates a diagnostic with no location, for global/configuration
// failures that are not anchored to any source position.
func New(t Template, args ...string) Diagnostic {
	return Diagnostic{
		Code:        t.Code,
		Category:    t.Category,
		MessageText: t.Format(args...),
	}
}

// NewAt creates a diagnostic anchored to a file and span — the common
// case for scanner/parser/binder/checker errors.
func NewAt(file string, span text.Range, t Template, args ...string) Diagnostic {
	return Diagnostic{
		File:        file,
		Span:        span,
		HasSpan:     true,
		Code:        t.Code,
		Category:    t.Category,
		MessageText: t.Format(args...),
	}
}

// WithRelated returns a copy of d with an additional related diagnostic
// attached (e.g. "previous declaration was here").
func (d Diagnostic) WithRelated(related Diagnostic) Diagnostic {
	d.Related = append(append([]Diagnostic(nil), d.Related...), related)
	return d
}

// IsError reports whether this diagnostic is an Error-category one.
func (d Diagnostic) IsError() bool { return d.Category == Error }

// String renders "<file>(<start>): <category> TS<code>: <message>",
// omitting the file/position prefix for location-less diagnostics.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.File != "" {
		b.WriteString(d.File)
		if d.HasSpan {
			fmt.Fprintf(&b, "(%d)", d.Span.Start)
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s TS%d: %s", d.Category, d.Code, d.MessageText)
	return b.String()
}

// Collection accumulates diagnostics across one compilation, in
// whatever order phases append them, until Sort is called.
type Collection struct {
	items []Diagnostic
}

// Add appends d to the collection.
func (c *Collection) Add(d Diagnostic) { c.items = append(c.items, d) }

// Extend appends every diagnostic from other.
func (c *Collection) Extend(other *Collection) {
	if other == nil {
		return
	}
	c.items = append(c.items, other.items...)
}

// HasErrors reports whether any accumulated diagnostic is Error-category.
func (c *Collection) HasErrors() bool {
	for _, d := range c.items {
		if d.Category == Error {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of Error-category diagnostics.
func (c *Collection) ErrorCount() int {
	n := 0
	for _, d := range c.items {
		if d.Category == Error {
			n++
		}
	}
	return n
}

// Items returns the accumulated diagnostics in their current order.
func (c *Collection) Items() []Diagnostic { return c.items }

// Len returns the number of accumulated diagnostics.
func (c *Collection) Len() int { return len(c.items) }

// Sort orders diagnostics by (file, span start), matching the order a
// reader scans a multi-file build's output.
func (c *Collection) Sort() {
	sort.SliceStable(c.items, func(i, j int) bool {
		a, b := c.items[i], c.items[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Span.Start < b.Span.Start
	})
}
