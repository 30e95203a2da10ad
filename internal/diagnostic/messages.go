package diagnostic

// Message codes follow the well-known numeric catalog referenced by
// spec §7 ("codes match the well-known catalog numerically but the
// catalog itself lives outside the core"). Only the subset this
// compiler actually emits is registered here.
var (
	MsgUnterminatedStringLiteral    = Template{Code: 1002, Category: Error, Text: "Unterminated string literal."}
	MsgUnexpectedToken              = Template{Code: 1005, Category: Error, Text: "'{0}' expected."}
	MsgUnterminatedComment          = Template{Code: 1010,Category: Error, Text: "Unterminated comment."}
	MsgInvalidCharacter              = Template{Code: 1127, Category: Error, Text: "Invalid character."}
	MsgDeclarationExpected          = Template{Code: 1128, Category: Error, Text: "Declaration or statement expected."}
	MsgExpressionExpected           = Template{Code: 1109, Category: Error, Text: "Expression expected."}
	MsgIdentifierExpected           = Template{Code: 1003, Category: Error, Text: "Identifier expected."}
	MsgStatementExpected            = Template{Code: 1129, Category: Error, Text: "Statement expected."}
	MsgTypeExpected                 = Template{Code: 1110, Category: Error, Text: "Type expected."}
	MsgTrailingCommaNotAllowed      = Template{Code: 1009, Category: Error, Text: "Trailing comma not allowed."}
	MsgDuplicateIdentifier          = Template{Code: 2300, Category: Error, Text: "Duplicate identifier '{0}'."}
	MsgCannotFindName               = Template{Code: 2304, Category: Error, Text: "Cannot find name '{0}'."}
	MsgTypeNotAssignable            = Template{Code: 2322, Category: Error, Text: "Type '{0}' is not assignable to type '{1}'."}
	MsgPropertyDoesNotExist         = Template{Code: 2339, Category: Error, Text: "Property '{0}' does not exist on type '{1}'."}
	MsgCannotRedeclareBlockVariable = Template{Code: 2451, Category: Error, Text: "Cannot redeclare block-scoped variable '{0}'."}
	MsgNoOverloadMatches            = Template{Code: 2769, Category: Error, Text: "No overload matches this call."}
	MsgExpectedNArgumentsGotM       = Template{Code: 2554, Category: Error, Text: "Expected {0} arguments, but got {1}."}
	MsgCannotInvokeNonFunction      = Template{Code: 2349, Category: Error, Text: "This expression is not callable."}
	MsgOperatorCannotBeApplied      = Template{Code: 2365, Category: Error, Text: "Operator '{0}' cannot be applied to types '{1}' and '{2}'."}
)
