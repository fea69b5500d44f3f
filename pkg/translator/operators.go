package translator

import (
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
)

// binaryOperators maps every IR binary operator to its output token. The
// table is total over ir.BinaryOperator; a lookup miss means the two
// enumerations have drifted out of sync and is a fatal translation error.
var binaryOperators = map[ir.BinaryOperator]string{
	ir.BinaryOperatorEquals:          "==",
	ir.BinaryOperatorNotEquals:       "!=",
	ir.BinaryOperatorIdentical:       "===",
	ir.BinaryOperatorNotIdentical:    "!==",
	ir.BinaryOperatorMinus:           "-",
	ir.BinaryOperatorPlus:            "+",
	ir.BinaryOperatorDivide:          "/",
	ir.BinaryOperatorMultiply:        "*",
	ir.BinaryOperatorModulo:          "%",
	ir.BinaryOperatorAnd:             "&&",
	ir.BinaryOperatorOr:              "||",
	ir.BinaryOperatorBitwiseAnd:      "&",
	ir.BinaryOperatorBitwiseOr:       "|",
	ir.BinaryOperatorLower:           "<",
	ir.BinaryOperatorLowerEquals:     "<=",
	ir.BinaryOperatorBigger:          ">",
	ir.BinaryOperatorBiggerEquals:    ">=",
	ir.BinaryOperatorNullishCoalesce: "??",
}

// binaryOperatorToken looks up the output token for op.
func binaryOperatorToken(op ir.BinaryOperator) (string, error) {
	token, ok := binaryOperators[op]
	if !ok {
		return "", fmt.Errorf("unknown binary operator: %s", op)
	}
	return token, nil
}
