package ts

// ---------- Expression nodes ----------

// Identifier is a bare identifier reference.
type Identifier struct {
	NodeBase
	Name string
}

func (*Identifier) exprNode() {}

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	NodeBase
	Value string
}

func (*StringLiteral) exprNode() {}

// NumberLiteral is a numeric literal.
type NumberLiteral struct {
	NodeBase
	Value float64
}

func (*NumberLiteral) exprNode() {}

// BoolLiteral is true or false.
type BoolLiteral struct {
	NodeBase
	Value bool
}

func (*BoolLiteral) exprNode() {}

// NullLiteral is the null keyword. The undefined value is an Identifier, not
// a NullLiteral; the two must stay distinct nodes.
type NullLiteral struct {
	NodeBase
}

func (*NullLiteral) exprNode() {}

// PropertyAccess is receiver.name.
type PropertyAccess struct {
	NodeBase
	Receiver Expr
	Name     string
}

func (*PropertyAccess) exprNode() {}

// ElementAccess is receiver[index].
type ElementAccess struct {
	NodeBase
	Receiver Expr
	Index    Expr
}

func (*ElementAccess) exprNode() {}

// Call is fn(args...).
type Call struct {
	NodeBase
	Fn   Expr
	Args []Expr
}

func (*Call) exprNode() {}

// New is new class(args...).
type New struct {
	NodeBase
	Class Expr
	Args  []Expr
}

func (*New) exprNode() {}

// Binary applies the operator token Op to Lhs and Rhs.
type Binary struct {
	NodeBase
	Op  string
	Lhs Expr
	Rhs Expr
}

func (*Binary) exprNode() {}

// Paren is a parenthesized expression.
type Paren struct {
	NodeBase
	Expr Expr
}

func (*Paren) exprNode() {}

// Conditional is cond ? whenTrue : whenFalse.
type Conditional struct {
	NodeBase
	Condition Expr
	WhenTrue  Expr
	WhenFalse Expr
}

func (*Conditional) exprNode() {}

// PrefixUnary applies the prefix operator token Op to Operand.
type PrefixUnary struct {
	NodeBase
	Op      string
	Operand Expr
}

func (*PrefixUnary) exprNode() {}

// TypeOf is typeof operand.
type TypeOf struct {
	NodeBase
	Operand Expr
}

func (*TypeOf) exprNode() {}

// Param is a function parameter. Only the name survives translation; type,
// default and optionality annotations are dropped upstream.
type Param struct {
	NodeBase
	Name string
}

// FunctionExpr is a (possibly named) function expression.
type FunctionExpr struct {
	NodeBase
	Name   string // optional
	Params []*Param
	Body   *Block
}

func (*FunctionExpr) exprNode() {}

// ArrayLiteral is [elements...].
type ArrayLiteral struct {
	NodeBase
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}

// PropertyAssignment is one key: value pair of an object literal. Quoted
// forces the key to print as a string literal.
type PropertyAssignment struct {
	NodeBase
	Key    string
	Quoted bool
	Value  Expr
}

// ObjectLiteral is {properties...}.
type ObjectLiteral struct {
	NodeBase
	Properties []*PropertyAssignment
}

func (*ObjectLiteral) exprNode() {}

// TemplateElementKind distinguishes the grammatical position of a template
// literal segment.
type TemplateElementKind int

// Template element kinds.
const (
	TemplateHead TemplateElementKind = iota
	TemplateMiddle
	TemplateTail
)

// TemplateElement is one literal segment of a template literal. Kind is the
// single mutable field of the model: span literals are built uniformly as
// middles and the final one is re-tagged as a tail afterwards, mirroring the
// grammar's requirement that only the last segment be a tail.
type TemplateElement struct {
	NodeBase
	Cooked string
	Raw    string
	Kind   TemplateElementKind
}

// TemplateSpan pairs one embedded expression with the literal segment that
// follows it.
type TemplateSpan struct {
	NodeBase
	Expression Node
	Literal    *TemplateElement
}

// TemplateExpression is a substitution template: head followed by spans.
type TemplateExpression struct {
	NodeBase
	Head  *TemplateElement
	Spans []*TemplateSpan
}

func (*TemplateExpression) exprNode() {}

// NoSubstitutionTemplate is a template literal with a single segment and no
// embedded expressions.
type NoSubstitutionTemplate struct {
	NodeBase
	Cooked string
	Raw    string
}

func (*NoSubstitutionTemplate) exprNode() {}

// TaggedTemplate is tag`template`.
type TaggedTemplate struct {
	NodeBase
	Tag      Expr
	Template Expr // *TemplateExpression or *NoSubstitutionTemplate
}

func (*TaggedTemplate) exprNode() {}
