package ir

import "github.com/thethingsyouownendupowningyou/angular/pkg/source"

// ---------- Literal values ----------

// SpecialValue distinguishes the two JavaScript "absent" values, which map to
// distinct output nodes. All other literal values are carried as ordinary Go
// values (string, float64, int, bool).
type SpecialValue int

// Special literal values.
const (
	Undefined SpecialValue = iota
	Null
)

// ---------- Expression nodes ----------

// ReadVarExpr reads a local variable by name.
type ReadVarExpr struct {
	ExprBase
	Name string
}

func (*ReadVarExpr) exprNode() {}

// WriteVarExpr assigns Value to the variable Name.
type WriteVarExpr struct {
	ExprBase
	Name  string
	Value Expr
}

func (*WriteVarExpr) exprNode() {}

// ReadPropExpr reads the property Name of Receiver.
type ReadPropExpr struct {
	ExprBase
	Receiver Expr
	Name     string
}

func (*ReadPropExpr) exprNode() {}

// WritePropExpr assigns Value to the property Name of Receiver.
type WritePropExpr struct {
	ExprBase
	Receiver Expr
	Name     string
	Value    Expr
}

func (*WritePropExpr) exprNode() {}

// ReadKeyExpr reads the element Index of Receiver.
type ReadKeyExpr struct {
	ExprBase
	Receiver Expr
	Index    Expr
}

func (*ReadKeyExpr) exprNode() {}

// WriteKeyExpr assigns Value to the element Index of Receiver.
type WriteKeyExpr struct {
	ExprBase
	Receiver Expr
	Index    Expr
	Value    Expr
}

func (*WriteKeyExpr) exprNode() {}

// InvokeFunctionExpr calls Fn with Args. Pure marks the call as free of side
// effects; the translator preserves it as a leading @__PURE__ comment for
// downstream optimizers.
type InvokeFunctionExpr struct {
	ExprBase
	Fn   Expr
	Args []Expr
	Pure bool
}

func (*InvokeFunctionExpr) exprNode() {}

// InstantiateExpr constructs a new instance of Class with Args.
type InstantiateExpr struct {
	ExprBase
	Class Expr
	Args  []Expr
}

func (*InstantiateExpr) exprNode() {}

// LiteralExpr is a primitive literal. Value is a string, float64, int, bool,
// or one of the SpecialValue sentinels (Undefined, Null).
type LiteralExpr struct {
	ExprBase
	Value any
}

func (*LiteralExpr) exprNode() {}

// MessagePart is one literal segment of a localized string. Cooked is the
// processed text; Raw preserves the original escaping for the template
// literal's raw form (falls back to Cooked when empty).
type MessagePart struct {
	Cooked string
	Raw    string
	Span   *source.Span
}

// RawText returns the raw form of the part.
func (p MessagePart) RawText() string {
	if p.Raw != "" {
		return p.Raw
	}
	return p.Cooked
}

// LocalizedStringExpr is a translatable string with embedded expressions.
// Invariant: len(MessageParts) == len(Expressions)+1.
type LocalizedStringExpr struct {
	ExprBase
	MessageParts []MessagePart
	Expressions  []Expr
}

func (*LocalizedStringExpr) exprNode() {}

// ExternalReference names a symbol and the module it originates from.
// An empty ModuleName means the symbol is ambient (global) and is referenced
// by bare identifier. An empty Name is invalid.
type ExternalReference struct {
	ModuleName string
	Name       string
}

// ExternalExpr references an external symbol, importing its module on demand.
type ExternalExpr struct {
	ExprBase
	Value      ExternalReference
	TypeParams []Type
}

func (*ExternalExpr) exprNode() {}

// ConditionalExpr is the ternary Condition ? TrueCase : FalseCase.
type ConditionalExpr struct {
	ExprBase
	Condition Expr
	TrueCase  Expr
	FalseCase Expr
}

func (*ConditionalExpr) exprNode() {}

// NotExpr is the logical negation !Condition.
type NotExpr struct {
	ExprBase
	Condition Expr
}

func (*NotExpr) exprNode() {}

// AssertNotNullExpr asserts Condition is non-null. The assertion is erased
// during translation; it has no runtime artifact.
type AssertNotNullExpr struct {
	ExprBase
	Condition Expr
}

func (*AssertNotNullExpr) exprNode() {}

// CastExpr casts Value to Type. Like AssertNotNullExpr, it is erased.
type CastExpr struct {
	ExprBase
	Value Expr
	Type  Type
}

func (*CastExpr) exprNode() {}

// FnParam is a function parameter. Type is advisory and dropped during
// translation; only the name survives.
type FnParam struct {
	Name string
	Type Type
}

// FunctionExpr is an anonymous (or optionally named) function expression.
type FunctionExpr struct {
	ExprBase
	Name       string // optional
	Params     []*FnParam
	Statements []Stmt
}

func (*FunctionExpr) exprNode() {}

// BinaryOperatorExpr applies Operator to Lhs and Rhs. Parens requests the
// result be parenthesized to preserve grouping when printed; front ends set
// it except where the surrounding node makes grouping unambiguous.
type BinaryOperatorExpr struct {
	ExprBase
	Operator BinaryOperator
	Lhs      Expr
	Rhs      Expr
	Parens   bool
}

func (*BinaryOperatorExpr) exprNode() {}

// LiteralArrayExpr is an array literal.
type LiteralArrayExpr struct {
	ExprBase
	Entries []Expr
}

func (*LiteralArrayExpr) exprNode() {}

// LiteralMapEntry is one key/value pair of an object literal. Quoted forces
// the key to be emitted as a string literal rather than a bare identifier.
type LiteralMapEntry struct {
	Key    string
	Value  Expr
	Quoted bool
}

// LiteralMapExpr is an object literal.
type LiteralMapExpr struct {
	ExprBase
	Entries []*LiteralMapEntry
}

func (*LiteralMapExpr) exprNode() {}

// CommaExpr is a comma sequence. It has no supported translation.
type CommaExpr struct {
	ExprBase
	Parts []Expr
}

func (*CommaExpr) exprNode() {}

// WrappedNodeExpr carries an already-built output-language node verbatim.
// Node is opaque to the IR; the translator returns it unchanged.
type WrappedNodeExpr struct {
	ExprBase
	Node any
}

func (*WrappedNodeExpr) exprNode() {}

// TypeofExpr is the typeof operator applied to Expr.
type TypeofExpr struct {
	ExprBase
	Expr Expr
}

func (*TypeofExpr) exprNode() {}
