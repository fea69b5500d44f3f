package ir

// BinaryOperator enumerates the IR's binary operators. The translator maps
// each one to an output-language token through a static table; the two
// enumerations must stay in sync.
type BinaryOperator int

// Binary operators.
const (
	BinaryOperatorEquals BinaryOperator = iota
	BinaryOperatorNotEquals
	BinaryOperatorIdentical
	BinaryOperatorNotIdentical
	BinaryOperatorMinus
	BinaryOperatorPlus
	BinaryOperatorDivide
	BinaryOperatorMultiply
	BinaryOperatorModulo
	BinaryOperatorAnd
	BinaryOperatorOr
	BinaryOperatorBitwiseAnd
	BinaryOperatorBitwiseOr
	BinaryOperatorLower
	BinaryOperatorLowerEquals
	BinaryOperatorBigger
	BinaryOperatorBiggerEquals
	BinaryOperatorNullishCoalesce
)

var binaryOperatorNames = map[BinaryOperator]string{
	BinaryOperatorEquals:          "Equals",
	BinaryOperatorNotEquals:       "NotEquals",
	BinaryOperatorIdentical:       "Identical",
	BinaryOperatorNotIdentical:    "NotIdentical",
	BinaryOperatorMinus:           "Minus",
	BinaryOperatorPlus:            "Plus",
	BinaryOperatorDivide:          "Divide",
	BinaryOperatorMultiply:        "Multiply",
	BinaryOperatorModulo:          "Modulo",
	BinaryOperatorAnd:             "And",
	BinaryOperatorOr:              "Or",
	BinaryOperatorBitwiseAnd:      "BitwiseAnd",
	BinaryOperatorBitwiseOr:       "BitwiseOr",
	BinaryOperatorLower:           "Lower",
	BinaryOperatorLowerEquals:     "LowerEquals",
	BinaryOperatorBigger:          "Bigger",
	BinaryOperatorBiggerEquals:    "BiggerEquals",
	BinaryOperatorNullishCoalesce: "NullishCoalesce",
}

// String returns the operator's enumeration name, for diagnostics.
func (op BinaryOperator) String() string {
	if name, ok := binaryOperatorNames[op]; ok {
		return name
	}
	return "unknown"
}

// ParseBinaryOperator resolves an enumeration name back to its operator.
func ParseBinaryOperator(name string) (BinaryOperator, bool) {
	for op, n := range binaryOperatorNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}
