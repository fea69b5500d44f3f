package translator_test

import (
	"fmt"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/require"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/translator"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

// parseTS feeds the emitted source through esbuild's TypeScript parser and
// fails the test on any syntax error.
func parseTS(t *testing.T, code string) {
	t.Helper()
	result := api.Transform(code, api.TransformOptions{
		Loader:   api.LoaderTS,
		Target:   api.ES2015,
		LogLevel: api.LogLevelSilent,
	})
	var msgs string
	for _, e := range result.Errors {
		msgs += fmt.Sprintf("%s\n", e.Text)
	}
	require.Empty(t, result.Errors, "emitted source failed to parse:\n%s\n---\n%s", msgs, code)
}

// TestEmittedSourceParses runs representative programs end to end and checks
// the printed output is syntactically valid TypeScript.
func TestEmittedSourceParses(t *testing.T) {
	programs := []struct {
		name       string
		statements []ir.Stmt
	}{
		{
			name: "component factory",
			statements: []ir.Stmt{
				&ir.DeclareVarStmt{
					StmtBase: ir.StmtBase{Modifiers: ir.StmtModifierFinal},
					Name:     "cmp",
					Value: &ir.InvokeFunctionExpr{
						Fn: &ir.ExternalExpr{Value: ir.ExternalReference{
							ModuleName: "@angular/core", Name: "defineComponent",
						}},
						Args: []ir.Expr{&ir.LiteralMapExpr{Entries: []*ir.LiteralMapEntry{
							{Key: "selector", Value: &ir.LiteralExpr{Value: "app-root"}},
							{Key: "standalone", Value: &ir.LiteralExpr{Value: true}},
						}}},
						Pure: true,
					},
				},
			},
		},
		{
			name: "control flow and assignments",
			statements: []ir.Stmt{
				&ir.DeclareVarStmt{Name: "count", Value: &ir.LiteralExpr{Value: 0}},
				&ir.IfStmt{
					Condition: &ir.BinaryOperatorExpr{
						Operator: ir.BinaryOperatorLower,
						Lhs:      &ir.ReadVarExpr{Name: "count"},
						Rhs:      &ir.LiteralExpr{Value: 10},
						Parens:   true,
					},
					TrueCase: []ir.Stmt{&ir.ExpressionStmt{Expr: &ir.WriteVarExpr{
						Name: "count",
						Value: &ir.BinaryOperatorExpr{
							Operator: ir.BinaryOperatorPlus,
							Lhs:      &ir.ReadVarExpr{Name: "count"},
							Rhs:      &ir.LiteralExpr{Value: 1},
						},
					}}},
					FalseCase: []ir.Stmt{&ir.ThrowStmt{Error: &ir.InstantiateExpr{
						Class: &ir.ReadVarExpr{Name: "Error"},
						Args:  []ir.Expr{&ir.LiteralExpr{Value: "overflow"}},
					}}},
				},
			},
		},
		{
			name: "localized greeting",
			statements: []ir.Stmt{
				&ir.DeclareFunctionStmt{
					Name:   "greet",
					Params: []*ir.FnParam{{Name: "name"}},
					Statements: []ir.Stmt{&ir.ReturnStmt{Value: &ir.LocalizedStringExpr{
						MessageParts: []ir.MessagePart{{Cooked: "Hello "}, {Cooked: "!"}},
						Expressions:  []ir.Expr{&ir.ReadVarExpr{Name: "name"}},
					}}},
				},
			},
		},
		{
			name: "class with base",
			statements: []ir.Stmt{
				&ir.ClassStmt{
					Name: "AppComponent",
					Parent: &ir.ExternalExpr{Value: ir.ExternalReference{
						ModuleName: "@angular/core", Name: "BaseComponent",
					}},
					Fields: []*ir.ClassField{{Name: "title", Initializer: &ir.LiteralExpr{Value: "app"}}},
					Methods: []*ir.ClassMethod{{
						Name: "reset",
						Statements: []ir.Stmt{&ir.ExpressionStmt{Expr: &ir.WritePropExpr{
							Receiver: &ir.ReadVarExpr{Name: "this"},
							Name:     "title",
							Value:    &ir.LiteralExpr{Value: ""},
						}}},
					}},
				},
			},
		},
		{
			name: "assignment in expression position",
			statements: []ir.Stmt{
				&ir.ExpressionStmt{Expr: &ir.InvokeFunctionExpr{
					Fn: &ir.ReadVarExpr{Name: "track"},
					Args: []ir.Expr{&ir.WriteVarExpr{
						Name:  "last",
						Value: &ir.LiteralExpr{Value: ir.Null},
					}},
				}},
			},
		},
	}

	for _, program := range programs {
		t.Run(program.name, func(t *testing.T) {
			imports := translator.NewImportManager(nil, "")
			var body []ts.Stmt
			for _, stmt := range program.statements {
				node, err := translator.TranslateStatement(stmt, imports, nil, translator.ES2015)
				require.NoError(t, err)
				body = append(body, node)
			}
			var all []ts.Stmt
			for _, imp := range imports.GetAllImports("") {
				all = append(all, ts.NewImportDeclaration(imp.Specifier, imp.Qualifier))
			}
			all = append(all, body...)
			parseTS(t, ts.Print(all))
		})
	}
}

// TestEmittedTypesParse checks type-position output inside a declaration
// context esbuild can parse.
func TestEmittedTypesParse(t *testing.T) {
	imports := translator.NewImportManager(nil, "")
	typ := &ir.ExpressionType{
		Value: &ir.ExternalExpr{Value: ir.ExternalReference{
			ModuleName: "@angular/core", Name: "ModuleWithProviders",
		}},
		TypeParams: []ir.Type{&ir.MapType{ValueType: ir.StringType}},
	}
	node, err := translator.TranslateType(typ, imports)
	require.NoError(t, err)

	code := ""
	for _, imp := range imports.GetAllImports("") {
		code += fmt.Sprintf("import * as %s from %q;\n", imp.Qualifier, imp.Specifier)
	}
	code += fmt.Sprintf("declare const v: %s;\n", ts.PrintType(node))
	parseTS(t, code)
}
