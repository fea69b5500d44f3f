package ir

// ---------- Type nodes ----------

// BuiltinTypeName enumerates the builtin types the IR can express.
type BuiltinTypeName int

// Builtin type names.
const (
	BuiltinTypeBool BuiltinTypeName = iota
	BuiltinTypeDynamic
	BuiltinTypeInt
	BuiltinTypeNumber
	BuiltinTypeString
	BuiltinTypeNone
)

// String returns the IR-level name of the builtin, for diagnostics.
func (n BuiltinTypeName) String() string {
	switch n {
	case BuiltinTypeBool:
		return "Bool"
	case BuiltinTypeDynamic:
		return "Dynamic"
	case BuiltinTypeInt:
		return "Int"
	case BuiltinTypeNumber:
		return "Number"
	case BuiltinTypeString:
		return "String"
	case BuiltinTypeNone:
		return "None"
	default:
		return "unknown"
	}
}

// BuiltinType is one of the fixed builtin types.
type BuiltinType struct {
	Name BuiltinTypeName
}

func (*BuiltinType) typeNode() {}

// ExpressionType references a named type through an expression, with optional
// generic type arguments. The expression must be one of the limited kinds
// valid in type position (variable read, external reference, wrapped node).
type ExpressionType struct {
	Value      Expr
	TypeParams []Type
}

func (*ExpressionType) typeNode() {}

// ArrayType is an array of Of.
type ArrayType struct {
	Of Type
}

func (*ArrayType) typeNode() {}

// MapType is a string-keyed map. A nil ValueType leaves the value type
// unconstrained.
type MapType struct {
	ValueType Type
}

func (*MapType) typeNode() {}

// Predefined builtin type singletons.
var (
	BoolType    = &BuiltinType{Name: BuiltinTypeBool}
	DynamicType = &BuiltinType{Name: BuiltinTypeDynamic}
	IntType     = &BuiltinType{Name: BuiltinTypeInt}
	NumberType  = &BuiltinType{Name: BuiltinTypeNumber}
	StringType  = &BuiltinType{Name: BuiltinTypeString}
	NoneType    = &BuiltinType{Name: BuiltinTypeNone}
)
