// Package printer renders materialized types and checked source files
// back to source-like text: type names for diagnostic interpolation,
// and a strip-types emission pass that re-serializes a source file
// with its type annotations removed. It generalizes the teacher's
// internal/prettyprinter (a CodePrinter walking an interface-based,
// Visit-per-node-type AST for a dynamically-typed scripting language)
// onto this module's single-struct, Kind-switched ast.Node and
// typesystem.TypeId representations.
package printer

import (
	"bytes"
	"sort"
	"strings"

	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/typesystem"
)

// Printer accumulates rendered text into buf, tracking indent/column
// the same way the teacher's CodePrinter does, so a future emitter
// extension (source maps keyed by output position) can reuse column
// tracking without restructuring the writer.
type Printer struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int
	column    int

	// in resolves intern.Handle identifier names during source/
	// declaration emission; nil for a Printer only used via PrintType,
	// which takes its own interner argument per call instead.
	in *intern.Interner
}

// New returns a Printer with the teacher's default 100-column width.
func New() *Printer {
	return &Printer{lineWidth: 100}
}

// NewWithWidth returns a Printer that records width as its line width.
// No emission path wraps lines, so width does not change the output.
func NewWithWidth(width int) *Printer {
	return &Printer{lineWidth: width}
}

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) write(s string) {
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *Printer) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

// trimTrailingNewline discards a just-written trailing newline, used to
// pull a following `while (...)` back onto a block's closing brace line.
func (p *Printer) trimTrailingNewline() {
	b := p.buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\n' {
		p.buf.Truncate(len(b) - 1)
	}
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	p.column = p.indent * 2
}

// PrintType renders t for diagnostic interpolation and declaration
// emission. interner resolves the intern.Handle names stored on object
// members/parameters back to text.
func PrintType(t typesystem.TypeId, types *typesystem.TypeTable, interner *intern.Interner) string {
	p := New()
	p.printType(t, types, interner)
	return p.String()
}

func (p *Printer) printType(t typesystem.TypeId, types *typesystem.TypeTable, in *intern.Interner) {
	if t == typesystem.NoType {
		p.write("<???>")
		return
	}
	ty := types.Get(t)

	if ty.Kind.IntrinsicName != "" {
		p.write(ty.Kind.IntrinsicName)
		return
	}
	switch {
	case ty.Flags.Has(typesystem.TFStringLiteral):
		p.write("\"" + ty.Kind.StringValue + "\"")
	case ty.Flags.Has(typesystem.TFNumberLiteral):
		p.write(formatFloat(ty.Kind.NumberValue))
	case ty.Flags.Has(typesystem.TFBooleanLiteral):
		if ty.Kind.BoolValue {
			p.write("true")
		} else {
			p.write("false")
		}
	case ty.Flags.Has(typesystem.TFUnion):
		p.printTypeList(ty.Kind.Types, " | ", types, in)
	case ty.Flags.Has(typesystem.TFIntersection):
		p.printTypeList(ty.Kind.Types, " & ", types, in)
	case ty.Flags.Has(typesystem.TFObject):
		p.printObjectType(ty, types, in)
	default:
		p.write("unknown")
	}
}

func (p *Printer) printTypeList(ids []typesystem.TypeId, sep string, types *typesystem.TypeTable, in *intern.Interner) {
	for i, id := range ids {
		if i > 0 {
			p.write(sep)
		}
		p.printType(id, types, in)
	}
}

func (p *Printer) printObjectType(ty *typesystem.Type, types *typesystem.TypeTable, in *intern.Interner) {
	if len(ty.Kind.CallSignatures) == 1 && len(ty.Kind.Members) == 0 {
		p.printSignature(ty.Kind.CallSignatures[0], types, in)
		return
	}
	p.write("{ ")
	members := append([]typesystem.ObjectMember(nil), ty.Kind.Members...)
	sort.Slice(members, func(i, j int) bool {
		return in.Resolve(members[i].Name) < in.Resolve(members[j].Name)
	})
	for i, m := range members {
		if i > 0 {
			p.write("; ")
		}
		p.write(in.Resolve(m.Name))
		if m.Optional {
			p.write("?")
		}
		p.write(": ")
		p.printType(m.Type, types, in)
	}
	p.write(" }")
}

func (p *Printer) printSignature(sig typesystem.Signature, types *typesystem.TypeTable, in *intern.Interner) {
	p.write("(")
	for i, param := range sig.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(in.Resolve(param.Name))
		if param.Optional {
			p.write("?")
		}
		p.write(": ")
		p.printType(param.Type, types, in)
	}
	p.write(") => ")
	p.printType(sig.ReturnType, types, in)
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return itoa64(int64(f))
	}
	// Rare fractional literal type; render with a bounded precision
	// rather than pulling in strconv.FormatFloat for this one path.
	whole := int64(f)
	frac := f - float64(whole)
	if frac < 0 {
		frac = -frac
	}
	digits := itoa64(int64(frac * 1e6))
	for len(digits) < 6 {
		digits = "0" + digits
	}
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return itoa64(whole) + "." + digits
}

func itoa64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
