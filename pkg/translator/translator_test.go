package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/source"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

func stmtText(t *testing.T, stmt ir.Stmt, target ScriptTarget) string {
	t.Helper()
	node, err := TranslateStatement(stmt, NewImportManager(nil, ""), nil, target)
	require.NoError(t, err)
	p := ts.NewPrinter()
	p.PrintStmt(node)
	return p.String()
}

func exprText(t *testing.T, expr ir.Expr, target ScriptTarget) string {
	t.Helper()
	node, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, target)
	require.NoError(t, err)
	return ts.PrintExpr(node)
}

func TestDeclareVarKeyword(t *testing.T) {
	tests := []struct {
		name   string
		stmt   *ir.DeclareVarStmt
		target ScriptTarget
		want   string
	}{
		{
			name: "final at es2015 is const",
			stmt: &ir.DeclareVarStmt{
				StmtBase: ir.StmtBase{Modifiers: ir.StmtModifierFinal},
				Name:     "x",
				Value:    &ir.LiteralExpr{Value: 1},
			},
			target: ES2015,
			want:   "const x = 1;\n",
		},
		{
			name: "final at es5 downgrades to var",
			stmt: &ir.DeclareVarStmt{
				StmtBase: ir.StmtBase{Modifiers: ir.StmtModifierFinal},
				Name:     "x",
				Value:    &ir.LiteralExpr{Value: 1},
			},
			target: ES5,
			want:   "var x = 1;\n",
		},
		{
			name:   "mutable is var at any target",
			stmt:   &ir.DeclareVarStmt{Name: "x", Value: &ir.LiteralExpr{Value: 1}},
			target: ESNext,
			want:   "var x = 1;\n",
		},
		{
			name:   "uninitialized declaration",
			stmt:   &ir.DeclareVarStmt{Name: "x"},
			target: ES2015,
			want:   "var x;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stmtText(t, tt.stmt, tt.target))
		})
	}
}

func TestAssignmentParenthesization(t *testing.T) {
	write := &ir.WriteVarExpr{Name: "x", Value: &ir.LiteralExpr{Value: 1}}

	t.Run("bare in statement position", func(t *testing.T) {
		got := stmtText(t, &ir.ExpressionStmt{Expr: write}, ES2015)
		assert.Equal(t, "x = 1;\n", got)
	})

	t.Run("parenthesized when the result is consumed", func(t *testing.T) {
		stmt := &ir.ExpressionStmt{Expr: &ir.LiteralArrayExpr{Entries: []ir.Expr{write}}}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "[(x = 1)];\n", got)
	})

	t.Run("parenthesized as an object literal value", func(t *testing.T) {
		stmt := &ir.ExpressionStmt{Expr: &ir.LiteralMapExpr{Entries: []*ir.LiteralMapEntry{
			{Key: "a", Value: write},
		}}}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "{ a: (x = 1) };\n", got)
	})

	t.Run("chained writes stay bare in statement position", func(t *testing.T) {
		chain := &ir.WriteVarExpr{Name: "a", Value: &ir.WriteVarExpr{Name: "b", Value: &ir.LiteralExpr{Value: 1}}}
		got := stmtText(t, &ir.ExpressionStmt{Expr: chain}, ES2015)
		assert.Equal(t, "a = b = 1;\n", got)
	})

	t.Run("property write value is forced into expression mode", func(t *testing.T) {
		stmt := &ir.ExpressionStmt{Expr: &ir.WritePropExpr{
			Receiver: &ir.ReadVarExpr{Name: "obj"},
			Name:     "a",
			Value:    &ir.WriteVarExpr{Name: "x", Value: &ir.LiteralExpr{Value: 1}},
		}}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "obj.a = (x = 1);\n", got)
	})

	t.Run("keyed write", func(t *testing.T) {
		stmt := &ir.ExpressionStmt{Expr: &ir.WriteKeyExpr{
			Receiver: &ir.ReadVarExpr{Name: "obj"},
			Index:    &ir.LiteralExpr{Value: "k"},
			Value:    &ir.LiteralExpr{Value: 2},
		}}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "obj[\"k\"] = 2;\n", got)
	})
}

func TestPureCallComment(t *testing.T) {
	expr := &ir.InvokeFunctionExpr{
		Fn:   &ir.ReadVarExpr{Name: "factory"},
		Args: []ir.Expr{&ir.LiteralExpr{Value: 1}},
		Pure: true,
	}
	got := exprText(t, expr, ES2015)
	assert.Equal(t, "/*@__PURE__*/factory(1)", got)
}

func TestLocalizedString(t *testing.T) {
	t.Run("multi part", func(t *testing.T) {
		expr := &ir.LocalizedStringExpr{
			MessageParts: []ir.MessagePart{{Cooked: "a"}, {Cooked: "b"}, {Cooked: "c"}},
			Expressions:  []ir.Expr{&ir.ReadVarExpr{Name: "x"}, &ir.ReadVarExpr{Name: "y"}},
		}
		got := exprText(t, expr, ES2015)
		assert.Equal(t, "$localize `a${x}b${y}c`", got)
	})

	t.Run("single part", func(t *testing.T) {
		expr := &ir.LocalizedStringExpr{MessageParts: []ir.MessagePart{{Cooked: "hello"}}}
		got := exprText(t, expr, ES2015)
		assert.Equal(t, "$localize `hello`", got)
	})

	t.Run("raw text is preferred for emission", func(t *testing.T) {
		expr := &ir.LocalizedStringExpr{
			MessageParts: []ir.MessagePart{{Cooked: ":", Raw: "\\:"}},
		}
		got := exprText(t, expr, ES2015)
		assert.Equal(t, "$localize `\\:`", got)
	})

	t.Run("arity mismatch is an error", func(t *testing.T) {
		expr := &ir.LocalizedStringExpr{
			MessageParts: []ir.MessagePart{{Cooked: "a"}},
			Expressions:  []ir.Expr{&ir.ReadVarExpr{Name: "x"}},
		}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message parts")
	})

	t.Run("rejected below es2015", func(t *testing.T) {
		expr := &ir.LocalizedStringExpr{MessageParts: []ir.MessagePart{{Cooked: "hello"}}}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "es5")
	})
}

func TestExternalExpr(t *testing.T) {
	t.Run("ambient reference stays bare", func(t *testing.T) {
		im := NewImportManager(nil, "")
		expr := &ir.ExternalExpr{Value: ir.ExternalReference{Name: "Array"}}
		node, err := TranslateExpression(expr, im, nil, ES2015)
		require.NoError(t, err)
		assert.Equal(t, "Array", ts.PrintExpr(node))
		assert.Empty(t, im.GetAllImports(""))
	})

	t.Run("module reference goes through an alias", func(t *testing.T) {
		im := NewImportManager(nil, "")
		expr := &ir.ExternalExpr{Value: ir.ExternalReference{ModuleName: "@angular/core", Name: "Component"}}
		node, err := TranslateExpression(expr, im, nil, ES2015)
		require.NoError(t, err)
		assert.Equal(t, "i0.Component", ts.PrintExpr(node))
	})

	t.Run("missing symbol name is an error", func(t *testing.T) {
		expr := &ir.ExternalExpr{Value: ir.ExternalReference{ModuleName: "@angular/core"}}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "import unknown module or symbol")
	})
}

func TestConditionalIsGrouped(t *testing.T) {
	expr := &ir.ConditionalExpr{
		Condition: &ir.ReadVarExpr{Name: "c"},
		TrueCase:  &ir.LiteralExpr{Value: 1},
		FalseCase: &ir.LiteralExpr{Value: 2},
	}
	assert.Equal(t, "(c ? 1 : 2)", exprText(t, expr, ES2015))
}

func TestConditionalMissingFalseCase(t *testing.T) {
	expr := &ir.ConditionalExpr{
		Condition: &ir.ReadVarExpr{Name: "c"},
		TrueCase:  &ir.LiteralExpr{Value: 1},
	}
	_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
	require.Error(t, err)
}

func TestErasedWrappers(t *testing.T) {
	t.Run("non-null assertion", func(t *testing.T) {
		expr := &ir.AssertNotNullExpr{Condition: &ir.ReadVarExpr{Name: "x"}}
		assert.Equal(t, "x", exprText(t, expr, ES2015))
	})

	t.Run("cast", func(t *testing.T) {
		expr := &ir.CastExpr{Value: &ir.ReadVarExpr{Name: "x"}, Type: ir.StringType}
		assert.Equal(t, "x", exprText(t, expr, ES2015))
	})
}

func TestBinaryOperator(t *testing.T) {
	t.Run("grouped by request", func(t *testing.T) {
		expr := &ir.BinaryOperatorExpr{
			Operator: ir.BinaryOperatorPlus,
			Lhs:      &ir.ReadVarExpr{Name: "a"},
			Rhs:      &ir.ReadVarExpr{Name: "b"},
			Parens:   true,
		}
		assert.Equal(t, "(a + b)", exprText(t, expr, ES2015))
	})

	t.Run("bare when grouping is declined", func(t *testing.T) {
		expr := &ir.BinaryOperatorExpr{
			Operator: ir.BinaryOperatorNullishCoalesce,
			Lhs:      &ir.ReadVarExpr{Name: "a"},
			Rhs:      &ir.ReadVarExpr{Name: "b"},
		}
		assert.Equal(t, "a ?? b", exprText(t, expr, ES2015))
	})

	t.Run("unknown operator names itself in the error", func(t *testing.T) {
		expr := &ir.BinaryOperatorExpr{
			Operator: ir.BinaryOperator(99),
			Lhs:      &ir.ReadVarExpr{Name: "a"},
			Rhs:      &ir.ReadVarExpr{Name: "b"},
		}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown binary operator")
	})
}

type recordingRecorder struct {
	seen []*ts.Identifier
}

func (r *recordingRecorder) RecordUsedIdentifier(id *ts.Identifier) {
	r.seen = append(r.seen, id)
}

func TestWrappedNode(t *testing.T) {
	t.Run("passes through verbatim", func(t *testing.T) {
		inner := ts.NewStringLiteral("done")
		expr := &ir.WrappedNodeExpr{Node: inner}
		node, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
		require.NoError(t, err)
		assert.Same(t, inner, node)
	})

	t.Run("identifier usage is recorded", func(t *testing.T) {
		rec := &recordingRecorder{}
		id := ts.NewIdentifier("imported")
		expr := &ir.WrappedNodeExpr{Node: id}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), rec, ES2015)
		require.NoError(t, err)
		require.Len(t, rec.seen, 1)
		assert.Same(t, id, rec.seen[0])
	})

	t.Run("non-expression payload is an error", func(t *testing.T) {
		expr := &ir.WrappedNodeExpr{Node: 42}
		_, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
		require.Error(t, err)
	})
}

func TestTypeofExpr(t *testing.T) {
	expr := &ir.TypeofExpr{Expr: &ir.ReadVarExpr{Name: "x"}}
	assert.Equal(t, "typeof x", exprText(t, expr, ES2015))
}

func TestUnsupportedConstructs(t *testing.T) {
	im := NewImportManager(nil, "")

	t.Run("comma expression", func(t *testing.T) {
		_, err := TranslateExpression(&ir.CommaExpr{}, im, nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not implemented")
	})

	t.Run("try/catch statement", func(t *testing.T) {
		_, err := TranslateStatement(&ir.TryCatchStmt{}, im, nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not implemented")
	})

	t.Run("bare comment statement", func(t *testing.T) {
		_, err := TranslateStatement(&ir.CommentStmt{Comment: "nope"}, im, nil, ES2015)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not implemented")
	})
}

func TestControlFlowStatements(t *testing.T) {
	t.Run("if with else", func(t *testing.T) {
		stmt := &ir.IfStmt{
			Condition: &ir.ReadVarExpr{Name: "ok"},
			TrueCase:  []ir.Stmt{&ir.ReturnStmt{Value: &ir.LiteralExpr{Value: 1}}},
			FalseCase: []ir.Stmt{&ir.ReturnStmt{Value: &ir.LiteralExpr{Value: 2}}},
		}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "if (ok) {\n  return 1;\n} else {\n  return 2;\n}\n", got)
	})

	t.Run("if without else has no else branch", func(t *testing.T) {
		stmt := &ir.IfStmt{
			Condition: &ir.ReadVarExpr{Name: "ok"},
			TrueCase:  []ir.Stmt{&ir.ReturnStmt{}},
		}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "if (ok) {\n  return;\n}\n", got)
	})

	t.Run("throw", func(t *testing.T) {
		stmt := &ir.ThrowStmt{Error: &ir.InstantiateExpr{
			Class: &ir.ReadVarExpr{Name: "Error"},
			Args:  []ir.Expr{&ir.LiteralExpr{Value: "boom"}},
		}}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "throw new Error(\"boom\");\n", got)
	})
}

func TestFunctionDeclarationAndExpression(t *testing.T) {
	t.Run("declaration", func(t *testing.T) {
		stmt := &ir.DeclareFunctionStmt{
			Name:       "greet",
			Params:     []*ir.FnParam{{Name: "name", Type: ir.StringType}},
			Statements: []ir.Stmt{&ir.ReturnStmt{Value: &ir.ReadVarExpr{Name: "name"}}},
		}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "function greet(name) {\n  return name;\n}\n", got)
	})

	t.Run("expression body survives expression context", func(t *testing.T) {
		// The enclosing block restores statement position for body members, so
		// an assignment inside the body must not pick up grouping parens.
		fn := &ir.FunctionExpr{
			Statements: []ir.Stmt{&ir.ExpressionStmt{
				Expr: &ir.WriteVarExpr{Name: "x", Value: &ir.LiteralExpr{Value: 1}},
			}},
		}
		stmt := &ir.DeclareVarStmt{Name: "f", Value: fn}
		got := stmtText(t, stmt, ES2015)
		assert.Equal(t, "var f = function() {\n  x = 1;\n};\n", got)
	})
}

func TestClassDeclaration(t *testing.T) {
	class := &ir.ClassStmt{
		Name:   "Greeter",
		Parent: &ir.ReadVarExpr{Name: "Base"},
		Fields: []*ir.ClassField{{Name: "count", Initializer: &ir.LiteralExpr{Value: 0}}},
		Methods: []*ir.ClassMethod{{
			Name:       "greet",
			Statements: []ir.Stmt{&ir.ReturnStmt{Value: &ir.ReadPropExpr{Receiver: &ir.ReadVarExpr{Name: "this"}, Name: "count"}}},
		}},
	}

	t.Run("emitted at es2015", func(t *testing.T) {
		got := stmtText(t, class, ES2015)
		assert.Equal(t, "class Greeter extends Base {\n  count = 0;\n  greet() {\n    return this.count;\n  }\n}\n", got)
	})

	t.Run("rejected at es5", func(t *testing.T) {
		_, err := TranslateStatement(class, NewImportManager(nil, ""), nil, ES5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "es5")
	})
}

func TestJSDocComment(t *testing.T) {
	stmt := &ir.JSDocCommentStmt{Tags: []ir.JSDocTag{
		{TagName: "deprecated", Text: "use newThing"},
		{Text: "extra context with user@example.com"},
	}}
	got := stmtText(t, stmt, ES2015)
	assert.Contains(t, got, "/**\n")
	assert.Contains(t, got, " * @deprecated use newThing\n")
	assert.Contains(t, got, "user\\@example.com")
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hi", `"hi"`},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"null", ir.Null, "null"},
		{"undefined", ir.Undefined, "undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exprText(t, &ir.LiteralExpr{Value: tt.value}, ES2015))
		})
	}

	t.Run("unsupported value", func(t *testing.T) {
		_, err := TranslateExpression(&ir.LiteralExpr{Value: []int{1}}, NewImportManager(nil, ""), nil, ES2015)
		require.Error(t, err)
	})
}

func TestSourceMapRangesShareFileHandles(t *testing.T) {
	tr := NewExpressionTranslator(NewImportManager(nil, ""), nil, ES2015)

	first, err := tr.TranslateExpression(&ir.ReadVarExpr{
		ExprBase: ir.ExprBase{Span: source.NewSpan("app.html", 0, 4)},
		Name:     "a",
	}, NewContext(false))
	require.NoError(t, err)

	second, err := tr.TranslateExpression(&ir.ReadVarExpr{
		ExprBase: ir.ExprBase{Span: source.NewSpan("app.html", 10, 14)},
		Name:     "b",
	}, NewContext(false))
	require.NoError(t, err)

	firstRange := first.(*ts.Identifier).SourceMapRange()
	secondRange := second.(*ts.Identifier).SourceMapRange()
	require.NotNil(t, firstRange)
	require.NotNil(t, secondRange)
	assert.Same(t, firstRange.Source, secondRange.Source)
	assert.Equal(t, 0, firstRange.Start)
	assert.Equal(t, 14, secondRange.End)
}

func TestWrappedNodeKeepsNoRange(t *testing.T) {
	inner := ts.NewIdentifier("verbatim")
	expr := &ir.WrappedNodeExpr{
		ExprBase: ir.ExprBase{Span: source.NewSpan("app.html", 0, 8)},
		Node:     inner,
	}
	node, err := TranslateExpression(expr, NewImportManager(nil, ""), nil, ES2015)
	require.NoError(t, err)
	assert.Nil(t, node.(*ts.Identifier).SourceMapRange())
}
