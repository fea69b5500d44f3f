package irjson

import (
	"encoding/json"
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
)

// ---------- Expressions ----------

func decodeExpr(data json.RawMessage) (ir.Expr, error) {
	var head struct {
		Kind string    `json:"kind"`
		Span *jsonSpan `json:"span"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	base := ir.ExprBase{Span: head.Span.toSpan()}

	switch head.Kind {
	case "readVar":
		var body struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		return &ir.ReadVarExpr{ExprBase: base, Name: body.Name}, nil

	case "writeVar":
		var body struct {
			Name  string          `json:"name"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		value, err := decodeExpr(body.Value)
		if err != nil {
			return nil, err
		}
		return &ir.WriteVarExpr{ExprBase: base, Name: body.Name, Value: value}, nil

	case "readProp":
		var body struct {
			Receiver json.RawMessage `json:"receiver"`
			Name     string          `json:"name"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		receiver, err := decodeExpr(body.Receiver)
		if err != nil {
			return nil, err
		}
		return &ir.ReadPropExpr{ExprBase: base, Receiver: receiver, Name: body.Name}, nil

	case "writeProp":
		var body struct {
			Receiver json.RawMessage `json:"receiver"`
			Name     string          `json:"name"`
			Value    json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		receiver, err := decodeExpr(body.Receiver)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(body.Value)
		if err != nil {
			return nil, err
		}
		return &ir.WritePropExpr{ExprBase: base, Receiver: receiver, Name: body.Name, Value: value}, nil

	case "readKey":
		var body struct {
			Receiver json.RawMessage `json:"receiver"`
			Index    json.RawMessage `json:"index"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		receiver, err := decodeExpr(body.Receiver)
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(body.Index)
		if err != nil {
			return nil, err
		}
		return &ir.ReadKeyExpr{ExprBase: base, Receiver: receiver, Index: index}, nil

	case "writeKey":
		var body struct {
			Receiver json.RawMessage `json:"receiver"`
			Index    json.RawMessage `json:"index"`
			Value    json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		receiver, err := decodeExpr(body.Receiver)
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(body.Index)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(body.Value)
		if err != nil {
			return nil, err
		}
		return &ir.WriteKeyExpr{ExprBase: base, Receiver: receiver, Index: index, Value: value}, nil

	case "invoke":
		var body struct {
			Fn   json.RawMessage   `json:"fn"`
			Args []json.RawMessage `json:"args"`
			Pure bool              `json:"pure"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		fn, err := decodeExpr(body.Fn)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(body.Args)
		if err != nil {
			return nil, err
		}
		return &ir.InvokeFunctionExpr{ExprBase: base, Fn: fn, Args: args, Pure: body.Pure}, nil

	case "instantiate":
		var body struct {
			Class json.RawMessage   `json:"class"`
			Args  []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		class, err := decodeExpr(body.Class)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(body.Args)
		if err != nil {
			return nil, err
		}
		return &ir.InstantiateExpr{ExprBase: base, Class: class, Args: args}, nil

	case "literal":
		return decodeLiteral(data, base)

	case "localizedString":
		return decodeLocalizedString(data, base)

	case "external":
		var body struct {
			ModuleName string            `json:"moduleName"`
			Name       string            `json:"name"`
			TypeParams []json.RawMessage `json:"typeParams"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		params, err := decodeTypeList(body.TypeParams)
		if err != nil {
			return nil, err
		}
		return &ir.ExternalExpr{
			ExprBase:   base,
			Value:      ir.ExternalReference{ModuleName: body.ModuleName, Name: body.Name},
			TypeParams: params,
		}, nil

	case "conditional":
		var body struct {
			Condition json.RawMessage `json:"condition"`
			TrueCase  json.RawMessage `json:"trueCase"`
			FalseCase json.RawMessage `json:"falseCase"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(body.Condition)
		if err != nil {
			return nil, err
		}
		trueCase, err := decodeExpr(body.TrueCase)
		if err != nil {
			return nil, err
		}
		expr := &ir.ConditionalExpr{ExprBase: base, Condition: cond, TrueCase: trueCase}
		if len(body.FalseCase) > 0 {
			if expr.FalseCase, err = decodeExpr(body.FalseCase); err != nil {
				return nil, err
			}
		}
		return expr, nil

	case "not":
		cond, err := decodeSingle(data, "condition")
		if err != nil {
			return nil, err
		}
		return &ir.NotExpr{ExprBase: base, Condition: cond}, nil

	case "assertNotNull":
		cond, err := decodeSingle(data, "condition")
		if err != nil {
			return nil, err
		}
		return &ir.AssertNotNullExpr{ExprBase: base, Condition: cond}, nil

	case "cast":
		var body struct {
			Value json.RawMessage `json:"value"`
			Type  json.RawMessage `json:"type"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		value, err := decodeExpr(body.Value)
		if err != nil {
			return nil, err
		}
		expr := &ir.CastExpr{ExprBase: base, Value: value}
		if len(body.Type) > 0 {
			if expr.Type, err = decodeType(body.Type); err != nil {
				return nil, err
			}
		}
		return expr, nil

	case "function":
		var body struct {
			Name   string `json:"name"`
			Params []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"params"`
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		params, err := decodeParams(body.Params)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeStmtList(body.Statements)
		if err != nil {
			return nil, err
		}
		return &ir.FunctionExpr{ExprBase: base, Name: body.Name, Params: params, Statements: stmts}, nil

	case "binary":
		var body struct {
			Operator string          `json:"operator"`
			Lhs      json.RawMessage `json:"lhs"`
			Rhs      json.RawMessage `json:"rhs"`
			Parens   *bool           `json:"parens"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		op, ok := ir.ParseBinaryOperator(body.Operator)
		if !ok {
			return nil, fmt.Errorf("unknown binary operator name %q", body.Operator)
		}
		lhs, err := decodeExpr(body.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(body.Rhs)
		if err != nil {
			return nil, err
		}
		// Grouping defaults to on; front ends opt out where it is redundant.
		parens := true
		if body.Parens != nil {
			parens = *body.Parens
		}
		return &ir.BinaryOperatorExpr{ExprBase: base, Operator: op, Lhs: lhs, Rhs: rhs, Parens: parens}, nil

	case "literalArray":
		var body struct {
			Entries []json.RawMessage `json:"entries"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		entries, err := decodeExprList(body.Entries)
		if err != nil {
			return nil, err
		}
		return &ir.LiteralArrayExpr{ExprBase: base, Entries: entries}, nil

	case "literalMap":
		var body struct {
			Entries []struct {
				Key    string          `json:"key"`
				Value  json.RawMessage `json:"value"`
				Quoted bool            `json:"quoted"`
			} `json:"entries"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		expr := &ir.LiteralMapExpr{ExprBase: base}
		for _, entry := range body.Entries {
			value, err := decodeExpr(entry.Value)
			if err != nil {
				return nil, err
			}
			expr.Entries = append(expr.Entries, &ir.LiteralMapEntry{Key: entry.Key, Value: value, Quoted: entry.Quoted})
		}
		return expr, nil

	case "comma":
		var body struct {
			Parts []json.RawMessage `json:"parts"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		parts, err := decodeExprList(body.Parts)
		if err != nil {
			return nil, err
		}
		return &ir.CommaExpr{ExprBase: base, Parts: parts}, nil

	case "typeof":
		operand, err := decodeSingle(data, "expr")
		if err != nil {
			return nil, err
		}
		return &ir.TypeofExpr{ExprBase: base, Expr: operand}, nil

	case "":
		return nil, fmt.Errorf("expression is missing a kind")
	default:
		return nil, fmt.Errorf("unknown expression kind %q", head.Kind)
	}
}

// decodeSingle decodes an expression held in the named field.
func decodeSingle(data json.RawMessage, field string) (ir.Expr, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	raw, ok := body[field]
	if !ok {
		return nil, fmt.Errorf("missing %q field", field)
	}
	return decodeExpr(raw)
}

func decodeExprList(raw []json.RawMessage) ([]ir.Expr, error) {
	exprs := make([]ir.Expr, 0, len(raw))
	for _, e := range raw {
		node, err := decodeExpr(e)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, node)
	}
	return exprs, nil
}

// decodeLiteral maps JSON values onto the IR's literal domain. A JSON null is
// the null literal; an absent value field is undefined. Integral numbers
// decode as int so number formatting survives the round trip.
func decodeLiteral(data json.RawMessage, base ir.ExprBase) (ir.Expr, error) {
	var body struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	if len(body.Value) == 0 {
		return &ir.LiteralExpr{ExprBase: base, Value: ir.Undefined}, nil
	}
	if string(body.Value) == "null" {
		return &ir.LiteralExpr{ExprBase: base, Value: ir.Null}, nil
	}
	var value any
	if err := json.Unmarshal(body.Value, &value); err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case string, bool:
		return &ir.LiteralExpr{ExprBase: base, Value: v}, nil
	case float64:
		if v == float64(int(v)) {
			return &ir.LiteralExpr{ExprBase: base, Value: int(v)}, nil
		}
		return &ir.LiteralExpr{ExprBase: base, Value: v}, nil
	default:
		return nil, fmt.Errorf("unsupported literal value %s", body.Value)
	}
}

func decodeLocalizedString(data json.RawMessage, base ir.ExprBase) (ir.Expr, error) {
	var body struct {
		MessageParts []struct {
			Cooked string    `json:"cooked"`
			Raw    string    `json:"raw"`
			Span   *jsonSpan `json:"span"`
		} `json:"messageParts"`
		Expressions []json.RawMessage `json:"expressions"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	expr := &ir.LocalizedStringExpr{ExprBase: base}
	for _, part := range body.MessageParts {
		expr.MessageParts = append(expr.MessageParts, ir.MessagePart{
			Cooked: part.Cooked,
			Raw:    part.Raw,
			Span:   part.Span.toSpan(),
		})
	}
	var err error
	if expr.Expressions, err = decodeExprList(body.Expressions); err != nil {
		return nil, err
	}
	return expr, nil
}

// ---------- Types ----------

func decodeType(data json.RawMessage) (ir.Type, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Kind {
	case "builtin":
		var body struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		switch body.Name {
		case "bool":
			return ir.BoolType, nil
		case "dynamic":
			return ir.DynamicType, nil
		case "int":
			return ir.IntType, nil
		case "number":
			return ir.NumberType, nil
		case "string":
			return ir.StringType, nil
		case "none":
			return ir.NoneType, nil
		default:
			return nil, fmt.Errorf("unknown builtin type name %q", body.Name)
		}

	case "expression":
		var body struct {
			Value      json.RawMessage   `json:"value"`
			TypeParams []json.RawMessage `json:"typeParams"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		value, err := decodeExpr(body.Value)
		if err != nil {
			return nil, err
		}
		params, err := decodeTypeList(body.TypeParams)
		if err != nil {
			return nil, err
		}
		return &ir.ExpressionType{Value: value, TypeParams: params}, nil

	case "array":
		var body struct {
			Of json.RawMessage `json:"of"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		of, err := decodeType(body.Of)
		if err != nil {
			return nil, err
		}
		return &ir.ArrayType{Of: of}, nil

	case "map":
		var body struct {
			ValueType json.RawMessage `json:"valueType"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		typ := &ir.MapType{}
		if len(body.ValueType) > 0 {
			var err error
			if typ.ValueType, err = decodeType(body.ValueType); err != nil {
				return nil, err
			}
		}
		return typ, nil

	case "":
		return nil, fmt.Errorf("type is missing a kind")
	default:
		return nil, fmt.Errorf("unknown type kind %q", head.Kind)
	}
}

func decodeTypeList(raw []json.RawMessage) ([]ir.Type, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	types := make([]ir.Type, 0, len(raw))
	for _, t := range raw {
		node, err := decodeType(t)
		if err != nil {
			return nil, err
		}
		types = append(types, node)
	}
	return types, nil
}
