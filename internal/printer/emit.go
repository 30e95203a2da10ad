package printer

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/syntaxkind"
)

// EmitSourceFile re-serializes sf with every type annotation, type
// declaration, and type-only import/export stripped, the way a
// strip-types emitter lowers an annotated source file to plain script
// for a runtime that only understands untyped syntax. Declaration
// emission (the `.d.ts`-equivalent form keeping only signatures) is
// handled by EmitDeclarations below; the two share the same
// expression/statement writer.
func EmitSourceFile(sf *ast.SourceFile, in *intern.Interner) string {
	p := New()
	p.in = in
	for _, stmt := range sf.Statements {
		p.emitStatement(stmt, true)
	}
	return p.String()
}

// EmitDeclarations renders a declaration-form outline of sf's top-level
// statements: each function becomes `declare function name(params);`,
// each class `declare class Name { }`, each variable statement a
// `declare` line naming its bindings, and each interface or type alias
// a `declare type Name;` placeholder. Type annotations, return types,
// class members and interface/alias bodies are not emitted, and
// exported and non-exported declarations are treated alike.
func EmitDeclarations(sf *ast.SourceFile, in *intern.Interner) string {
	p := New()
	p.in = in
	for _, stmt := range sf.Statements {
		p.emitDeclarationOf(stmt)
	}
	return p.String()
}

func (p *Printer) emitStatement(n *ast.Node, stripTypes bool) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.InterfaceDeclaration, syntaxkind.TypeAliasDeclaration:
		// Type-only declarations vanish entirely from stripped output;
		// they have no runtime representation.
		return

	case syntaxkind.VariableStatement:
		p.writeIndent()
		p.emitVariableDeclsInline(n)
		p.write(";")
		p.writeln()

	case syntaxkind.ExpressionStatement:
		p.writeIndent()
		p.emitExpr(n.Expr, 0, false)
		p.write(";")
		p.writeln()

	case syntaxkind.ReturnStatement:
		p.writeIndent()
		p.write("return")
		if n.Expr != nil {
			p.write(" ")
			p.emitExpr(n.Expr, 0, false)
		}
		p.write(";")
		p.writeln()

	case syntaxkind.Block:
		p.write("{")
		p.writeln()
		p.indent++
		for _, stmt := range n.List {
			p.emitStatement(stmt, stripTypes)
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		p.writeln()

	case syntaxkind.IfStatement:
		p.writeIndent()
		p.write("if (")
		p.emitExpr(n.Expr, 0, false)
		p.write(") ")
		p.emitBlockOrStatement(n.Body)
		if n.ElseOrAlternate != nil {
			p.write(" else ")
			p.emitBlockOrStatement(n.ElseOrAlternate)
		}

	case syntaxkind.WhileStatement:
		p.writeIndent()
		p.write("while (")
		p.emitExpr(n.Expr, 0, false)
		p.write(") ")
		p.emitBlockOrStatement(n.Body)

	case syntaxkind.FunctionDeclaration:
		p.writeIndent()
		p.write("function ")
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		}
		p.emitParameterListStripped(n.List)
		p.write(" ")
		if n.Body != nil {
			p.emitBlockOrStatement(n.Body)
		} else {
			p.write(";")
			p.writeln()
		}

	case syntaxkind.ClassDeclaration:
		p.writeIndent()
		p.write("class ")
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		}
		p.write(" {")
		p.writeln()
		p.indent++
		for _, member := range n.List {
			p.emitClassMember(member)
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		p.writeln()

	case syntaxkind.DoStatement:
		p.writeIndent()
		p.write("do ")
		p.emitBlockOrStatement(n.Body)
		p.trimTrailingNewline()
		p.write(" while (")
		p.emitExpr(n.Expr, 0, false)
		p.write(");")
		p.writeln()

	case syntaxkind.ForStatement:
		p.writeIndent()
		p.write("for (")
		p.emitForInitializer(n.Initializer)
		p.write("; ")
		if n.Expr != nil {
			p.emitExpr(n.Expr, 0, false)
		}
		p.write("; ")
		if n.Right != nil {
			p.emitExpr(n.Right, 0, false)
		}
		p.write(") ")
		p.emitBlockOrStatement(n.Body)

	case syntaxkind.ForInStatement, syntaxkind.ForOfStatement:
		p.writeIndent()
		p.write("for (")
		p.emitForInitializer(n.Initializer)
		if n.Kind == syntaxkind.ForInStatement {
			p.write(" in ")
		} else {
			p.write(" of ")
		}
		p.emitExpr(n.Right, 0, false)
		p.write(") ")
		p.emitBlockOrStatement(n.Body)

	case syntaxkind.BreakStatement, syntaxkind.ContinueStatement:
		p.writeIndent()
		if n.Kind == syntaxkind.BreakStatement {
			p.write("break")
		} else {
			p.write("continue")
		}
		if n.Label != nil {
			p.write(" ")
			p.write(p.in.Resolve(n.Label.Name))
		}
		p.write(";")
		p.writeln()

	case syntaxkind.ThrowStatement:
		p.writeIndent()
		p.write("throw ")
		p.emitExpr(n.Expr, 0, false)
		p.write(";")
		p.writeln()

	case syntaxkind.SwitchStatement:
		p.writeIndent()
		p.write("switch (")
		p.emitExpr(n.Expr, 0, false)
		p.write(") {")
		p.writeln()
		p.indent++
		for _, clause := range n.List {
			p.writeIndent()
			if clause.Kind == syntaxkind.CaseClause {
				p.write("case ")
				p.emitExpr(clause.Expr, 0, false)
				p.write(":")
			} else {
				p.write("default:")
			}
			p.writeln()
			p.indent++
			for _, stmt := range clause.List {
				p.emitStatement(stmt, stripTypes)
			}
			p.indent--
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		p.writeln()

	case syntaxkind.TryStatement:
		p.writeIndent()
		p.write("try ")
		p.emitStatement(n.Body, stripTypes)
		if n.Left != nil {
			catch := n.Left
			p.writeIndent()
			p.write("catch ")
			if catch.DeclName != nil {
				p.write("(")
				p.emitBindingName(catch.DeclName)
				p.write(") ")
			}
			p.emitStatement(catch.Body, stripTypes)
		}
		if n.Right != nil {
			p.writeIndent()
			p.write("finally ")
			p.emitStatement(n.Right, stripTypes)
		}

	case syntaxkind.EnumDeclaration:
		p.emitEnumAsObjectLiteral(n)

	case syntaxkind.ImportDeclaration:
		p.emitImportDeclaration(n)

	case syntaxkind.ExportDeclaration:
		p.emitExportDeclaration(n)

	default:
		// Every construct with runtime representation is special-cased
		// above; anything left here (labeled/debugger/empty statements)
		// genuinely has no text of its own to preserve.
	}
}

// emitForInitializer renders a for-loop head's initializer clause,
// which is either a bare VariableStatement (no trailing semicolon or
// indent of its own), a plain expression, or absent.
func (p *Printer) emitForInitializer(n *ast.Node) {
	if n == nil {
		return
	}
	if n.Kind == syntaxkind.VariableStatement {
		p.emitVariableDeclsInline(n)
		return
	}
	p.emitExpr(n, 0, false)
}

// emitVariableDeclsInline writes a variable statement's keyword and
// comma-separated declarator list without indentation or a trailing
// semicolon, so it can be reused both as a full statement and as a
// for-loop initializer clause.
func (p *Printer) emitVariableDeclsInline(n *ast.Node) {
	p.write(variableKindText(n))
	p.write(" ")
	for i, decl := range n.List {
		if i > 0 {
			p.write(", ")
		}
		p.emitBindingName(decl.DeclName)
		if decl.Initializer != nil {
			p.write(" = ")
			p.emitExpr(decl.Initializer, 0, false)
		}
	}
}

// emitEnumAsObjectLiteral lowers `enum Name { A, B = 2, C }` to the
// plain-object form a runtime with no enum syntax of its own
// understands: a const binding to an object literal, auto-
// incrementing from the previous member's value when a member has no
// initializer of its own (mirroring the widely-documented numeric
// enum transpilation every mainstream stripping emitter performs).
func (p *Printer) emitEnumAsObjectLiteral(n *ast.Node) {
	p.writeIndent()
	p.write("const ")
	if n.DeclName != nil {
		p.write(p.in.Resolve(n.DeclName.Name))
	}
	p.write(" = {")
	p.writeln()
	p.indent++
	next := 0
	for _, member := range n.List {
		p.writeIndent()
		if member.DeclName != nil {
			p.write(p.in.Resolve(member.DeclName.Name))
		}
		p.write(": ")
		if member.Initializer != nil {
			p.emitExpr(member.Initializer, 0, false)
			if member.Initializer.Kind == syntaxkind.NumericLiteral {
				next = int(member.Initializer.Number)
			}
		} else {
			p.write(itoa64(int64(next)))
		}
		p.write(",")
		p.writeln()
		next++
	}
	p.indent--
	p.writeIndent()
	p.write("};")
	p.writeln()
}

// emitImportDeclaration re-serializes an import statement verbatim;
// import bindings carry no type annotations of their own to strip.
func (p *Printer) emitImportDeclaration(n *ast.Node) {
	p.writeIndent()
	p.write("import ")
	if n.Text != "" && len(n.List) == 0 {
		p.write("\"" + n.Text + "\";")
		p.writeln()
		return
	}
	wroteClause := false
	for i, clause := range n.List {
		if i > 0 {
			p.write(", ")
		}
		switch clause.Kind {
		case syntaxkind.ImportSpecifier:
			if clause.Flags.Has(syntaxkind.NFDefault) {
				p.write(p.in.Resolve(clause.DeclName.Name))
			} else {
				if !wroteClause {
					p.write("{ ")
				}
				p.write(p.in.Resolve(clause.DeclName.Name))
				if clause.Left != nil {
					p.write(" as " + p.in.Resolve(clause.Left.Name))
				}
			}
		case syntaxkind.NamespaceImport:
			p.write("* as " + p.in.Resolve(clause.DeclName.Name))
		}
		if clause.Kind != syntaxkind.NamespaceImport && !clause.Flags.Has(syntaxkind.NFDefault) {
			wroteClause = true
		}
	}
	if wroteClause {
		p.write(" }")
	}
	if n.Text != "" {
		p.write(" from \"" + n.Text + "\"")
	}
	p.write(";")
	p.writeln()
}

// emitExportDeclaration re-serializes an `export { ... }` / `export *`
// re-export clause; export-wrapped declarations carry their NFExport
// flag on the declaration node itself and are emitted by the ordinary
// statement case for that Kind, never reaching this function.
func (p *Printer) emitExportDeclaration(n *ast.Node) {
	p.writeIndent()
	p.write("export ")
	if len(n.List) == 0 {
		p.write("*")
		if n.DeclName != nil {
			p.write(" as " + p.in.Resolve(n.DeclName.Name))
		}
	} else {
		p.write("{ ")
		for i, spec := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.write(p.in.Resolve(spec.DeclName.Name))
			if spec.Left != nil {
				p.write(" as " + p.in.Resolve(spec.Left.Name))
			}
		}
		p.write(" }")
	}
	if n.Text != "" {
		p.write(" from \"" + n.Text + "\"")
	}
	p.write(";")
	p.writeln()
}

func (p *Printer) emitBlockOrStatement(n *ast.Node) {
	if n != nil && n.Kind == syntaxkind.Block {
		p.emitStatement(n, true)
		return
	}
	p.emitStatement(n, true)
}

func (p *Printer) emitClassMember(n *ast.Node) {
	switch n.Kind {
	case syntaxkind.PropertyDeclaration:
		p.writeIndent()
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		}
		if n.Initializer != nil {
			p.write(" = ")
			p.emitExpr(n.Initializer, 0, false)
		}
		p.write(";")
		p.writeln()
	case syntaxkind.MethodDeclaration, syntaxkind.Constructor, syntaxkind.GetAccessor, syntaxkind.SetAccessor:
		p.writeIndent()
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		} else {
			p.write("constructor")
		}
		p.emitParameterListStripped(n.List)
		p.write(" ")
		if n.Body != nil {
			p.emitBlockOrStatement(n.Body)
		} else {
			p.write(";")
			p.writeln()
		}
	}
}

func (p *Printer) emitParameterListStripped(params []*ast.Node) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.emitBindingName(param.DeclName)
		if param.Initializer != nil {
			p.write(" = ")
			p.emitExpr(param.Initializer, 0, false)
		}
	}
	p.write(")")
}

func (p *Printer) emitBindingName(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.Identifier:
		p.write(p.in.Resolve(n.Name))
	case syntaxkind.ArrayBindingPattern:
		p.write("[")
		for i, el := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitBindingName(el)
		}
		p.write("]")
	case syntaxkind.ObjectBindingPattern:
		p.write("{ ")
		for i, el := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitBindingName(el.DeclName)
		}
		p.write(" }")
	default:
		p.write("<???>")
	}
}

func variableKindText(n *ast.Node) string {
	switch {
	case n.Flags.Has(syntaxkind.NFConst):
		return "const"
	case n.Flags.Has(syntaxkind.NFLet):
		return "let"
	default:
		return "var"
	}
}

// emitDeclarationOf renders the declaration-emit form of one top-level
// statement as described on EmitDeclarations; other statement kinds
// produce nothing.
func (p *Printer) emitDeclarationOf(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxkind.FunctionDeclaration:
		p.writeIndent()
		p.write("declare function ")
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		}
		p.emitParameterListStripped(n.List)
		p.write(";")
		p.writeln()
	case syntaxkind.ClassDeclaration:
		p.writeIndent()
		p.write("declare class ")
		if n.DeclName != nil {
			p.write(p.in.Resolve(n.DeclName.Name))
		}
		p.write(" { }")
		p.writeln()
	case syntaxkind.InterfaceDeclaration, syntaxkind.TypeAliasDeclaration, syntaxkind.VariableStatement:
		p.emitStatementKeepingTypes(n)
	}
}

// emitStatementKeepingTypes covers the variable, interface and
// type-alias forms of EmitDeclarations; the stripped emitter intentionally
// skips these Kinds entirely (see emitStatement's InterfaceDeclaration/
// TypeAliasDeclaration case), so they need their own minimal writer
// rather than sharing emitStatement's stripped branches.
func (p *Printer) emitStatementKeepingTypes(n *ast.Node) {
	switch n.Kind {
	case syntaxkind.VariableStatement:
		p.writeIndent()
		p.write("declare " + variableKindText(n) + " ")
		for i, decl := range n.List {
			if i > 0 {
				p.write(", ")
			}
			p.emitBindingName(decl.DeclName)
		}
		p.write(";")
		p.writeln()
	default:
		// Interface and type-alias declarations render as a
		// `declare type Name;` placeholder; their body is not emitted.
		p.writeIndent()
		if n.DeclName != nil {
			p.write("declare type " + p.in.Resolve(n.DeclName.Name) + ";")
		}
		p.writeln()
	}
}
