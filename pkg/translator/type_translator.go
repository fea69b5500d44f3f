package translator

import (
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

// TranslateType translates one IR type into one output type node,
// accumulating import requirements in imports as a side effect.
func TranslateType(typ ir.Type, imports *ImportManager) (ts.TypeNode, error) {
	return NewTypeTranslator(imports).TranslateType(typ, NewContext(false))
}

// TypeTranslator walks the subset of the IR valid in type position. Its
// expression surface is intentionally partial: only the expression kinds
// that double as type-level identifiers are supported, everything else
// fails loudly.
type TypeTranslator struct {
	imports *ImportManager
}

// NewTypeTranslator creates a type translator sharing the unit's import
// manager.
func NewTypeTranslator(imports *ImportManager) *TypeTranslator {
	return &TypeTranslator{imports: imports}
}

// TranslateType translates a type node.
func (t *TypeTranslator) TranslateType(typ ir.Type, ctx Context) (ts.TypeNode, error) {
	switch tn := typ.(type) {
	case *ir.BuiltinType:
		return builtinTypeNode(tn.Name)
	case *ir.ExpressionType:
		return t.translateExpressionType(tn, ctx)
	case *ir.ArrayType:
		element, err := t.TranslateType(tn.Of, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewArrayType(element), nil
	case *ir.MapType:
		var valueType ts.TypeNode
		if tn.ValueType != nil {
			var err error
			valueType, err = t.TranslateType(tn.ValueType, ctx)
			if err != nil {
				return nil, err
			}
		}
		return ts.NewIndexSignatureType(valueType), nil
	default:
		return nil, fmt.Errorf("not implemented: type %T", typ)
	}
}

func builtinTypeNode(name ir.BuiltinTypeName) (ts.TypeNode, error) {
	switch name {
	case ir.BuiltinTypeBool:
		return ts.NewKeywordType("boolean"), nil
	case ir.BuiltinTypeDynamic:
		return ts.NewKeywordType("any"), nil
	case ir.BuiltinTypeInt, ir.BuiltinTypeNumber:
		return ts.NewKeywordType("number"), nil
	case ir.BuiltinTypeString:
		return ts.NewKeywordType("string"), nil
	case ir.BuiltinTypeNone:
		return ts.NewKeywordType("never"), nil
	default:
		return nil, fmt.Errorf("unsupported builtin type: %s", name)
	}
}

// translateExpressionType resolves a type reference built from an expression.
// The identifying expression is visited through this same visitor, so it must
// be one of the limited kinds the type surface supports.
func (t *TypeTranslator) translateExpressionType(et *ir.ExpressionType, ctx Context) (ts.TypeNode, error) {
	node, err := t.translateTypeExpr(et.Value, ctx)
	if err != nil {
		return nil, err
	}
	if len(et.TypeParams) == 0 {
		return node, nil
	}
	ref, ok := node.(*ts.TypeReference)
	if !ok {
		return nil, fmt.Errorf("an expression type with type arguments must reference a named type, got %T", node)
	}
	args := make([]ts.TypeNode, 0, len(et.TypeParams))
	for _, param := range et.TypeParams {
		arg, err := t.TranslateType(param, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ts.NewTypeReference(ref.TypeName, args), nil
}

// translateTypeExpr is the restricted expression surface of the type
// visitor.
func (t *TypeTranslator) translateTypeExpr(expr ir.Expr, ctx Context) (ts.TypeNode, error) {
	switch e := expr.(type) {
	case *ir.ReadVarExpr:
		if e.Name == "" {
			return nil, fmt.Errorf("a variable read in type position must have a name")
		}
		return ts.NewTypeReference(ts.NewIdentifier(e.Name), nil), nil

	case *ir.ExternalExpr:
		return t.translateExternalType(e, ctx)

	case *ir.LiteralExpr:
		lit, err := literalToExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return ts.NewLiteralType(lit), nil

	case *ir.LocalizedStringExpr:
		// Shares the tagged-template helper with the expression visitor;
		// embedded expressions stay within the type surface.
		tagged, err := localizedStringToTaggedTemplate(e, func(sub ir.Expr) (ts.Node, error) {
			return t.translateTypeExpr(sub, ctx)
		})
		if err != nil {
			return nil, err
		}
		return ts.NewLiteralType(tagged), nil

	case *ir.WrappedNodeExpr:
		id, ok := e.Node.(*ts.Identifier)
		if !ok {
			return nil, fmt.Errorf("wrapped node in type position must be an identifier, got %T", e.Node)
		}
		return ts.NewTypeReference(id, nil), nil

	case *ir.LiteralArrayExpr:
		// A literal array in type position is a fixed-arity tuple, not a
		// runtime array.
		elements := make([]ts.TypeNode, 0, len(e.Entries))
		for _, entry := range e.Entries {
			el, err := t.translateTypeExpr(entry, ctx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
		return ts.NewTupleType(elements), nil

	case *ir.LiteralMapExpr:
		members := make([]*ts.PropertySignature, 0, len(e.Entries))
		for _, entry := range e.Entries {
			value, err := t.translateTypeExpr(entry.Value, ctx)
			if err != nil {
				return nil, err
			}
			members = append(members, ts.NewPropertySignature(entry.Key, entry.Quoted, value))
		}
		return ts.NewTypeLiteral(members), nil

	case *ir.TypeofExpr:
		// Deliberate cross-visitor call: the operand is translated as an
		// expression at a fixed baseline target, with import usage recording
		// suppressed, then wrapped as a type query.
		operand, err := TranslateExpression(e.Expr, t.imports, NoopDefaultImportRecorder{}, ES2015)
		if err != nil {
			return nil, err
		}
		return ts.NewTypeQuery(operand), nil

	default:
		return nil, fmt.Errorf("not implemented in type position: expression %T", expr)
	}
}

// translateExternalType is stricter than the expression visitor's external
// handling: ambient types are not representable here, so both the module and
// the symbol name are mandatory.
func (t *TypeTranslator) translateExternalType(e *ir.ExternalExpr, ctx Context) (ts.TypeNode, error) {
	if e.Value.ModuleName == "" || e.Value.Name == "" {
		return nil, fmt.Errorf("import unknown module or symbol %+v", e.Value)
	}
	imp := t.imports.GenerateNamedImport(e.Value.ModuleName, e.Value.Name)
	var typeName ts.Expr
	if imp.ModuleImport == "" {
		typeName = ts.NewIdentifier(imp.Symbol)
	} else {
		typeName = ts.NewPropertyAccess(ts.NewIdentifier(imp.ModuleImport), imp.Symbol)
	}
	var args []ts.TypeNode
	for _, param := range e.TypeParams {
		arg, err := t.TranslateType(param, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ts.NewTypeReference(typeName, args), nil
}
