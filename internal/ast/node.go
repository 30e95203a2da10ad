// Package ast defines the concrete syntax tree produced by the
// parser: a universal node header plus kind-tagged payloads for every
// statement, expression, type, and structural node the grammar
// produces.
//
// Every node carries its Kind explicitly (syntaxkind.Kind) even though
// in principle the shape of its payload already encodes it — this is
// what lets every later phase (binder, checker, printer) dispatch on
// Kind with a plain switch instead of a type-per-variant visitor, the
// cheap-kind-dispatch property the front end is built around. Binder,
// checker, and printer all walk the tree by switching on Kind and
// reading the payload fields relevant to that kind; fields irrelevant
// to a given Kind are simply left zero.
package ast

import (
	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/text"
)

// NodeID indexes a Node within one SourceFile's arena-backed node
// list. Stable for the lifetime of a compilation; never reused.
type NodeID int32

// NoNode is the sentinel NodeID (-1; 0 is the first recorded node),
// used for optional links that are absent (e.g. a root node's Parent).
const NoNode NodeID = -1

// NodeData is the universal header embedded in every Node.
type NodeData struct {
	Kind   syntaxkind.Kind
	Range  text.Range
	Flags  syntaxkind.NodeFlags
	Parent NodeID // filled by LinkParents; NoNode until then
}

// Node is the single concrete representation for every tree element.
// Which fields are meaningful is determined by Kind; see the per-kind
// accessor methods below for the supported fields of each family.
//
// Node is allocated through arena.Alloc and referenced by *Node or by
// NodeID once stored in a SourceFile's Nodes slice — both borrow from
// the arena and must not outlive it.
type Node struct {
	NodeData

	// Identifier / keyword-literal payload.
	Name   intern.Handle // Identifier, PrivateIdentifier text
	Text   string        // decoded literal text (string/numeric/regex/template source)
	Number float64       // decoded value for NumericLiteral and a numeric LiteralType

	// Generic single-child / operator slots, reused across many kinds:
	// e.g. Expr is the operand of a unary, the tag of PropertyAccess's
	// LHS, the expression of ExpressionStatement, etc. See the
	// doc comment on each producing parser function for which slot a
	// given Kind populates.
	Expr     *Node
	Left     *Node
	Right    *Node
	Operator syntaxkind.Kind

	// Declarations / bindings.
	DeclName    *Node // Identifier or binding pattern being declared
	Type        *Node // type annotation, return type, etc.
	Initializer *Node // initializer / default value
	Body        *Node // block body, arrow body, module body

	// Lists, reused across many kinds (statements of a Block/SourceFile,
	// elements of an array/tuple literal, parameters of a signature,
	// members of a class/interface/object, arguments of a call, etc.)
	List []*Node

	// Clauses: heritage (extends/implements), case/default, catch.
	ElseOrAlternate *Node
	Label           *Node

	// Modifiers recorded structurally (also mirrored into Flags for the
	// subset with dedicated bits).
	Modifiers []syntaxkind.Kind

	// TypeParameters shared by function-like, class, interface, and
	// type-alias declarations.
	TypeParameters []*Node

	// Literal-type / template-literal support: interleaved text spans
	// for TemplateExpression/TemplateLiteralType, parallel to List
	// holding the substitution expressions/types.
	Texts []string
}

// SourceFile is the root of one compiled file's tree.
type SourceFile struct {
	FileName    string
	Text        string
	LineMap     *text.LineMap
	Statements  []*Node
	Nodes       []*Node // every node in this file, index == NodeID
	EndOfFileAt text.Pos
}

// NewSourceFile starts an (initially empty) SourceFile ready to
// receive nodes appended via Record as the parser builds them.
func NewSourceFile(fileName, src string) *SourceFile {
	return &SourceFile{
		FileName: fileName,
		Text:     src,
		LineMap:  text.NewLineMap(src),
	}
}

// Record appends n to the file's node table and returns its stable id.
func (sf *SourceFile) Record(n *Node) NodeID {
	id := NodeID(len(sf.Nodes))
	sf.Nodes = append(sf.Nodes, n)
	return id
}

// New allocates a node of kind spanning r from a, records it in sf,
// and returns it with Parent set to NoNode.
func New(a *arena.Arena, sf *SourceFile, kind syntaxkind.Kind, r text.Range) *Node {
	n := arena.Alloc(a, Node{NodeData: NodeData{Kind: kind, Range: r, Parent: NoNode}})
	sf.Record(n)
	return n
}

// Missing allocates a zero-width recovery placeholder of kind at pos,
// flagged NFMissing and NFContainsError.
func Missing(a *arena.Arena, sf *SourceFile, kind syntaxkind.Kind, pos text.Pos) *Node {
	n := New(a, sf, kind, text.NewRange(pos, pos))
	n.Flags |= syntaxkind.NFMissing | syntaxkind.NFContainsError
	return n
}

// NodeAt returns the node for id, or nil for NoNode / out-of-range.
func (sf *SourceFile) NodeAt(id NodeID) *Node {
	if id < 0 || int(id) >= len(sf.Nodes) {
		return nil
	}
	return sf.Nodes[id]
}

// LinkParents performs the second pass that fills in Parent for every
// node reachable from the file's statements, per spec's "parent link
// is optional, filled in a second pass" data-model note.
func (sf *SourceFile) LinkParents() {
	idOf := make(map[*Node]NodeID, len(sf.Nodes))
	for i, n := range sf.Nodes {
		idOf[n] = NodeID(i)
	}
	var walk func(n, parent *Node)
	walk = func(n, parent *Node) {
		if n == nil {
			return
		}
		if parent != nil {
			if pid, ok := idOf[parent]; ok {
				n.Parent = pid
			}
		}
		children := n.Children()
		for _, c := range children {
			walk(c, n)
		}
	}
	for _, s := range sf.Statements {
		walk(s, nil)
	}
}

// Children returns every direct child slot of n that is populated,
// in source order, for generic tree walks (parent-linking, the
// printer's fallback traversal, diagnostics context gathering).
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	add := func(c *Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	for _, tp := range n.TypeParameters {
		add(tp)
	}
	add(n.DeclName)
	add(n.Type)
	add(n.Left)
	add(n.Right)
	add(n.Expr)
	add(n.Initializer)
	add(n.Body)
	add(n.Label)
	add(n.ElseOrAlternate)
	for _, c := range n.List {
		add(c)
	}
	return out
}

// IsMissing reports whether n is a synthesized recovery placeholder.
func (n *Node) IsMissing() bool {
	return n != nil && n.Flags.Has(syntaxkind.NFMissing)
}
