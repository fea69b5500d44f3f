package ts

// ---------- Type nodes ----------

// KeywordType is a builtin keyword type such as string or never.
type KeywordType struct {
	NodeBase
	Keyword string
}

func (*KeywordType) typeNode() {}

// TypeReference references a named type, optionally with type arguments.
// TypeName must be an entity name: an Identifier or a PropertyAccess chain
// of identifiers.
type TypeReference struct {
	NodeBase
	TypeName Expr
	TypeArgs []TypeNode
}

func (*TypeReference) typeNode() {}

// ArrayType is Element[].
type ArrayType struct {
	NodeBase
	Element TypeNode
}

func (*ArrayType) typeNode() {}

// TupleType is a fixed-arity tuple [T0, T1, ...].
type TupleType struct {
	NodeBase
	Elements []TypeNode
}

func (*TupleType) typeNode() {}

// PropertySignature is one member of a type literal.
type PropertySignature struct {
	NodeBase
	Key    string
	Quoted bool
	Type   TypeNode
}

// IndexSignature is [key: string]: ValueType. A nil ValueType leaves the
// value unconstrained (prints as any).
type IndexSignature struct {
	NodeBase
	ValueType TypeNode
}

// TypeLiteral is a structural object type. At most one of Index or Members
// is set by the translator.
type TypeLiteral struct {
	NodeBase
	Index   *IndexSignature
	Members []*PropertySignature
}

func (*TypeLiteral) typeNode() {}

// LiteralType lifts a literal expression into type position.
type LiteralType struct {
	NodeBase
	Literal Expr
}

func (*LiteralType) typeNode() {}

// TypeQuery is typeof expr in type position.
type TypeQuery struct {
	NodeBase
	Expr Expr
}

func (*TypeQuery) typeNode() {}
