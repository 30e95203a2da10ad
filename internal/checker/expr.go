package checker

import (
	"github.com/funvibe/rscript/internal/ast"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/syntaxkind"
	"github.com/funvibe/rscript/internal/typesystem"
)

// checkExpression types n, recording the result for later TypeOf
// lookups and memoizing so a shared subtree is only typed once.
func (c *Checker) checkExpression(n *ast.Node) typesystem.TypeId {
	if n == nil {
		return typesystem.AnyTypeId
	}
	if t, ok := c.typeOfNode[n]; ok {
		return t
	}
	t := c.typeOfExpression(n)
	c.typeOfNode[n] = t
	return t
}

func (c *Checker) typeOfExpression(n *ast.Node) typesystem.TypeId {
	switch n.Kind {
	case syntaxkind.NumericLiteral:
		return c.types.AddType(typesystem.TFNumberLiteral, typesystem.TypeKind{NumberValue: n.Number})
	case syntaxkind.StringLiteral, syntaxkind.NoSubstitutionTemplateLiteral:
		return c.types.AddType(typesystem.TFStringLiteral, typesystem.TypeKind{StringValue: n.Text})
	case syntaxkind.BigIntLiteral:
		return typesystem.BigIntTypeId
	case syntaxkind.TrueKeyword:
		return typesystem.TrueTypeId
	case syntaxkind.FalseKeyword:
		return typesystem.FalseTypeId
	case syntaxkind.NullKeyword:
		return typesystem.NullTypeId
	case syntaxkind.ThisExpression:
		return typesystem.AnyTypeId
	case syntaxkind.RegularExpressionLiteral:
		return typesystem.NonPrimitiveObjectTypeId
	case syntaxkind.TemplateExpression:
		for _, span := range n.List {
			c.checkExpression(span)
		}
		return typesystem.StringTypeId

	case syntaxkind.Identifier:
		id, ok := c.resolveIdentifier(n)
		if !ok {
			return typesystem.AnyTypeId
		}
		return c.typeOfSymbolValue(id)

	case syntaxkind.ParenthesizedExpression:
		return c.checkExpression(n.Expr)

	case syntaxkind.ArrayLiteralExpression:
		return c.typeOfArrayLiteral(n)
	case syntaxkind.ObjectLiteralExpression:
		return c.typeOfObjectLiteral(n)

	case syntaxkind.PrefixUnaryExpression, syntaxkind.PostfixUnaryExpression:
		return c.typeOfUnaryExpression(n)
	case syntaxkind.BinaryExpression:
		return c.typeOfBinaryExpression(n)
	case syntaxkind.ConditionalExpression:
		return c.typeOfConditionalExpression(n)

	case syntaxkind.PropertyAccessExpression:
		return c.typeOfPropertyAccess(n)
	case syntaxkind.ElementAccessExpression:
		return c.typeOfElementAccess(n)
	case syntaxkind.CallExpression, syntaxkind.NewExpression:
		return c.typeOfCallExpression(n)

	case syntaxkind.FunctionExpression, syntaxkind.ArrowFunction:
		return c.typeOfFunctionLikeExpression(n)

	case syntaxkind.AsExpression, syntaxkind.SatisfiesExpression:
		ty := c.typeOfTypeNode(n.Type)
		c.checkExpression(n.Expr)
		return ty
	case syntaxkind.NonNullExpression:
		return c.checkExpression(n.Expr)
	case syntaxkind.TypeOfExpression:
		c.checkExpression(n.Expr)
		return typesystem.StringTypeId
	case syntaxkind.VoidExpression:
		c.checkExpression(n.Expr)
		return typesystem.UndefinedTypeId
	case syntaxkind.DeleteExpression:
		c.checkExpression(n.Expr)
		return typesystem.BooleanTypeId
	case syntaxkind.AwaitExpression:
		return c.checkExpression(n.Expr)
	case syntaxkind.SpreadElement:
		return c.checkExpression(n.Expr)
	case syntaxkind.YieldExpression:
		if n.Expr != nil {
			c.checkExpression(n.Expr)
		}
		return typesystem.AnyTypeId
	case syntaxkind.OmittedExpression:
		return typesystem.UndefinedTypeId

	default:
		return typesystem.AnyTypeId
	}
}

func (c *Checker) typeOfArrayLiteral(n *ast.Node) typesystem.TypeId {
	var elemTypes []typesystem.TypeId
	for _, el := range n.List {
		elemTypes = append(elemTypes, c.checkExpression(el))
	}
	elem := typesystem.AnyTypeId
	if len(elemTypes) > 0 {
		elem = c.types.UnionOf(elemTypes)
	} else {
		elem = typesystem.NeverTypeId
	}
	return c.arrayTypeOf(elem)
}

func (c *Checker) typeOfObjectLiteral(n *ast.Node) typesystem.TypeId {
	var members []typesystem.ObjectMember
	for _, prop := range n.List {
		switch prop.Kind {
		case syntaxkind.PropertyAssignment:
			if prop.DeclName.Kind == syntaxkind.Identifier || prop.DeclName.Kind == syntaxkind.StringLiteral {
				members = append(members, typesystem.ObjectMember{
					Name: prop.DeclName.Name,
					Type: c.checkExpression(prop.Initializer),
				})
			} else {
				c.checkExpression(prop.Initializer)
			}
		case syntaxkind.ShorthandPropertyAssignment:
			id, ok := c.resolveIdentifier(prop.DeclName)
			ty := typesystem.AnyTypeId
			if ok {
				ty = c.typeOfSymbolValue(id)
			}
			members = append(members, typesystem.ObjectMember{Name: prop.DeclName.Name, Type: ty})
		case syntaxkind.SpreadAssignment:
			spreadTy := c.checkExpression(prop.Expr)
			spread := c.types.Get(spreadTy)
			if spread.Flags.Has(typesystem.TFObject) {
				members = append(members, spread.Kind.Members...)
			}
		}
	}
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{ObjectFlags: typesystem.OFObjectLiteral, Members: members})
}

func (c *Checker) typeOfUnaryExpression(n *ast.Node) typesystem.TypeId {
	c.checkExpression(n.Expr)
	switch n.Operator {
	case syntaxkind.ExclamationToken:
		return typesystem.BooleanTypeId
	case syntaxkind.TildeToken:
		return typesystem.NumberTypeId
	default:
		return typesystem.NumberTypeId
	}
}

func (c *Checker) typeOfConditionalExpression(n *ast.Node) typesystem.TypeId {
	c.checkExpression(n.Expr)
	whenTrue := c.checkExpression(n.Left)
	whenFalse := c.checkExpression(n.ElseOrAlternate)
	return c.types.UnionOf([]typesystem.TypeId{whenTrue, whenFalse})
}

func (c *Checker) typeOfPropertyAccess(n *ast.Node) typesystem.TypeId {
	objTy := c.checkExpression(n.Expr)
	obj := c.types.Get(objTy)
	if obj.Flags.Has(typesystem.TFAny) || obj.Flags.Has(typesystem.TFUnknown) {
		return typesystem.AnyTypeId
	}
	if obj.Flags.Has(typesystem.TFObject) {
		if m, ok := findMember(obj.Kind.Members, n.Right.Name); ok {
			return m.Type
		}
	}
	c.reportAt(n.Right, diagnostic.MsgPropertyDoesNotExist, nameText(n.Right), c.typeNameFor(objTy))
	return typesystem.AnyTypeId
}

func (c *Checker) typeOfElementAccess(n *ast.Node) typesystem.TypeId {
	objTy := c.checkExpression(n.Expr)
	idxTy := c.checkExpression(n.Right)
	obj := c.types.Get(objTy)
	if obj.Flags.Has(typesystem.TFAny) {
		return typesystem.AnyTypeId
	}
	idx := c.types.Get(idxTy)
	if obj.Flags.Has(typesystem.TFObject) {
		if idx.Flags.Has(typesystem.TFStringLiteral) {
			if name, ok := c.interner.Get(idx.Kind.StringValue); ok {
				if m, ok := findMember(obj.Kind.Members, name); ok {
					return m.Type
				}
			}
		}
		for _, ii := range obj.Kind.IndexInfos {
			return ii.ValueType
		}
	}
	return typesystem.AnyTypeId
}

func (c *Checker) typeOfCallExpression(n *ast.Node) typesystem.TypeId {
	calleeTy := c.checkExpression(n.Expr)
	argTypes := make([]typesystem.TypeId, 0, len(n.List))
	for _, arg := range n.List {
		argTypes = append(argTypes, c.checkExpression(arg))
	}
	callee := c.types.Get(calleeTy)
	if callee.Flags.Has(typesystem.TFAny) {
		return typesystem.AnyTypeId
	}
	if !callee.Flags.Has(typesystem.TFObject) {
		c.reportAt(n.Expr, diagnostic.MsgCannotInvokeNonFunction)
		return typesystem.AnyTypeId
	}
	sigs := callee.Kind.CallSignatures
	if n.Kind == syntaxkind.NewExpression {
		sigs = callee.Kind.ConstructSignatures
	}
	if len(sigs) == 0 {
		c.reportAt(n.Expr, diagnostic.MsgCannotInvokeNonFunction)
		return typesystem.AnyTypeId
	}
	sig, ok := c.resolveOverload(sigs, argTypes)
	if !ok {
		if len(sigs) > 1 {
			c.reportAt(n, diagnostic.MsgNoOverloadMatches)
		} else {
			c.checkArity(n, sig, len(argTypes))
		}
	}
	return sig.ReturnType
}

func (c *Checker) checkArity(n *ast.Node, sig typesystem.Signature, argCount int) {
	if argCount < sig.MinArgumentCount || (argCount > len(sig.Parameters) && !sig.HasRestParameter) {
		expected := itoaInt(sig.MinArgumentCount)
		c.reportAt(n, diagnostic.MsgExpectedNArgumentsGotM, expected, itoaInt(argCount))
	}
}

func (c *Checker) typeOfFunctionLikeExpression(n *ast.Node) typesystem.TypeId {
	sig := c.signatureOf(n)
	if n.Body != nil {
		if n.Body.Kind == syntaxkind.Block {
			for _, stmt := range n.Body.List {
				c.checkStatement(stmt)
			}
		} else {
			bodyTy := c.checkExpression(n.Body)
			if sig.ReturnType == typesystem.AnyTypeId && n.Type == nil {
				sig.ReturnType = bodyTy
			}
		}
	}
	return c.types.AddType(typesystem.TFObject, typesystem.TypeKind{
		ObjectFlags:    typesystem.OFAnonymous,
		CallSignatures: []typesystem.Signature{sig},
	})
}

// itoaInt renders a small non-negative int without pulling in
// strconv for a single call site.
func itoaInt(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// typeNameFor renders a type for diagnostic interpolation. This is a
// minimal stand-in for the full printer's type-rendering path
// (internal/printer), sufficient for the handful of diagnostics this
// checker emits that mention a type by name.
func (c *Checker) typeNameFor(t typesystem.TypeId) string {
	ty := c.types.Get(t)
	if ty.Kind.IntrinsicName != "" {
		return ty.Kind.IntrinsicName
	}
	switch {
	case ty.Flags.Has(typesystem.TFStringLiteral):
		return "\"" + ty.Kind.StringValue + "\""
	case ty.Flags.Has(typesystem.TFObject):
		return "object"
	case ty.Flags.Has(typesystem.TFUnion):
		return "union type"
	default:
		return "unknown"
	}
}
