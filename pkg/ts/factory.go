package ts

// Factory functions for the node model. These are deliberately thin: all
// policy (context sensitivity, import resolution, target gating) lives in the
// translator, not here.

// NewIdentifier creates an identifier reference.
func NewIdentifier(name string) *Identifier { return &Identifier{Name: name} }

// NewStringLiteral creates a string literal.
func NewStringLiteral(value string) *StringLiteral { return &StringLiteral{Value: value} }

// NewNumberLiteral creates a numeric literal.
func NewNumberLiteral(value float64) *NumberLiteral { return &NumberLiteral{Value: value} }

// NewBoolLiteral creates a boolean literal.
func NewBoolLiteral(value bool) *BoolLiteral { return &BoolLiteral{Value: value} }

// NewNullLiteral creates the null keyword.
func NewNullLiteral() *NullLiteral { return &NullLiteral{} }

// NewPropertyAccess creates receiver.name.
func NewPropertyAccess(receiver Expr, name string) *PropertyAccess {
	return &PropertyAccess{Receiver: receiver, Name: name}
}

// NewElementAccess creates receiver[index].
func NewElementAccess(receiver, index Expr) *ElementAccess {
	return &ElementAccess{Receiver: receiver, Index: index}
}

// NewCall creates fn(args...).
func NewCall(fn Expr, args []Expr) *Call { return &Call{Fn: fn, Args: args} }

// NewNew creates new class(args...).
func NewNew(class Expr, args []Expr) *New { return &New{Class: class, Args: args} }

// NewBinary creates lhs op rhs.
func NewBinary(op string, lhs, rhs Expr) *Binary { return &Binary{Op: op, Lhs: lhs, Rhs: rhs} }

// NewParen wraps expr in parentheses.
func NewParen(expr Expr) *Paren { return &Paren{Expr: expr} }

// NewConditional creates cond ? whenTrue : whenFalse.
func NewConditional(cond, whenTrue, whenFalse Expr) *Conditional {
	return &Conditional{Condition: cond, WhenTrue: whenTrue, WhenFalse: whenFalse}
}

// NewPrefixUnary creates op operand.
func NewPrefixUnary(op string, operand Expr) *PrefixUnary {
	return &PrefixUnary{Op: op, Operand: operand}
}

// NewTypeOf creates typeof operand.
func NewTypeOf(operand Expr) *TypeOf { return &TypeOf{Operand: operand} }

// NewParam creates a function parameter.
func NewParam(name string) *Param { return &Param{Name: name} }

// NewFunctionExpr creates a function expression. Name may be empty.
func NewFunctionExpr(name string, params []*Param, body *Block) *FunctionExpr {
	return &FunctionExpr{Name: name, Params: params, Body: body}
}

// NewArrayLiteral creates [elements...].
func NewArrayLiteral(elements []Expr) *ArrayLiteral { return &ArrayLiteral{Elements: elements} }

// NewPropertyAssignment creates a key: value pair.
func NewPropertyAssignment(key string, quoted bool, value Expr) *PropertyAssignment {
	return &PropertyAssignment{Key: key, Quoted: quoted, Value: value}
}

// NewObjectLiteral creates {properties...}.
func NewObjectLiteral(properties []*PropertyAssignment) *ObjectLiteral {
	return &ObjectLiteral{Properties: properties}
}

// NewTemplateElement creates a template segment of the given kind.
func NewTemplateElement(kind TemplateElementKind, cooked, raw string) *TemplateElement {
	return &TemplateElement{Kind: kind, Cooked: cooked, Raw: raw}
}

// NewTemplateSpan pairs an embedded node with its trailing segment.
func NewTemplateSpan(expression Node, literal *TemplateElement) *TemplateSpan {
	return &TemplateSpan{Expression: expression, Literal: literal}
}

// NewTemplateExpression creates a substitution template.
func NewTemplateExpression(head *TemplateElement, spans []*TemplateSpan) *TemplateExpression {
	return &TemplateExpression{Head: head, Spans: spans}
}

// NewNoSubstitutionTemplate creates a single-segment template literal.
func NewNoSubstitutionTemplate(cooked, raw string) *NoSubstitutionTemplate {
	return &NoSubstitutionTemplate{Cooked: cooked, Raw: raw}
}

// NewTaggedTemplate creates tag`template`.
func NewTaggedTemplate(tag, template Expr) *TaggedTemplate {
	return &TaggedTemplate{Tag: tag, Template: template}
}

// NewVariableStatement declares a variable. init may be nil.
func NewVariableStatement(kind DeclarationKind, name string, init Expr) *VariableStatement {
	return &VariableStatement{Kind: kind, Name: name, Init: init}
}

// NewFunctionDeclaration declares a named function.
func NewFunctionDeclaration(name string, params []*Param, body *Block) *FunctionDeclaration {
	return &FunctionDeclaration{Name: name, Params: params, Body: body}
}

// NewExpressionStatement creates an expression statement.
func NewExpressionStatement(expr Expr) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr}
}

// NewReturnStatement creates a return statement. expr may be nil.
func NewReturnStatement(expr Expr) *ReturnStatement { return &ReturnStatement{Expr: expr} }

// NewThrowStatement creates a throw statement.
func NewThrowStatement(expr Expr) *ThrowStatement { return &ThrowStatement{Expr: expr} }

// NewIfStatement creates an if statement. elseStmt may be nil.
func NewIfStatement(cond Expr, then *Block, elseStmt Stmt) *IfStatement {
	return &IfStatement{Condition: cond, Then: then, Else: elseStmt}
}

// NewBlock creates { statements... }.
func NewBlock(statements []Stmt) *Block { return &Block{Statements: statements} }

// NewNotEmittedStatement creates a statement that only carries comments.
func NewNotEmittedStatement() *NotEmittedStatement { return &NotEmittedStatement{} }

// NewImportDeclaration creates import * as alias from "specifier".
func NewImportDeclaration(specifier, alias string) *ImportDeclaration {
	return &ImportDeclaration{Specifier: specifier, Alias: alias}
}

// NewPropertyDeclaration creates a class field. init may be nil.
func NewPropertyDeclaration(name string, init Expr) *PropertyDeclaration {
	return &PropertyDeclaration{Name: name, Init: init}
}

// NewMethodDeclaration creates a class method.
func NewMethodDeclaration(name string, params []*Param, body *Block) *MethodDeclaration {
	return &MethodDeclaration{Name: name, Params: params, Body: body}
}

// NewClassDeclaration declares a class. parent may be nil.
func NewClassDeclaration(name string, parent Expr, fields []*PropertyDeclaration, methods []*MethodDeclaration) *ClassDeclaration {
	return &ClassDeclaration{Name: name, Parent: parent, Fields: fields, Methods: methods}
}

// NewKeywordType creates a builtin keyword type.
func NewKeywordType(keyword string) *KeywordType { return &KeywordType{Keyword: keyword} }

// NewTypeReference references a named type.
func NewTypeReference(typeName Expr, typeArgs []TypeNode) *TypeReference {
	return &TypeReference{TypeName: typeName, TypeArgs: typeArgs}
}

// NewArrayType creates element[].
func NewArrayType(element TypeNode) *ArrayType { return &ArrayType{Element: element} }

// NewTupleType creates [elements...].
func NewTupleType(elements []TypeNode) *TupleType { return &TupleType{Elements: elements} }

// NewPropertySignature creates a type-literal member.
func NewPropertySignature(key string, quoted bool, typ TypeNode) *PropertySignature {
	return &PropertySignature{Key: key, Quoted: quoted, Type: typ}
}

// NewIndexSignatureType creates {[key: string]: valueType}.
func NewIndexSignatureType(valueType TypeNode) *TypeLiteral {
	return &TypeLiteral{Index: &IndexSignature{ValueType: valueType}}
}

// NewTypeLiteral creates a structural object type from members.
func NewTypeLiteral(members []*PropertySignature) *TypeLiteral {
	return &TypeLiteral{Members: members}
}

// NewLiteralType lifts a literal into type position.
func NewLiteralType(literal Expr) *LiteralType { return &LiteralType{Literal: literal} }

// NewTypeQuery creates typeof expr in type position.
func NewTypeQuery(expr Expr) *TypeQuery { return &TypeQuery{Expr: expr} }
