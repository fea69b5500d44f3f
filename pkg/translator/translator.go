package translator

import (
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/source"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

// TranslateExpression translates one IR expression into one output
// expression, accumulating import requirements in imports as a side effect.
func TranslateExpression(expr ir.Expr, imports *ImportManager, recorder DefaultImportRecorder, target ScriptTarget) (ts.Expr, error) {
	return NewExpressionTranslator(imports, recorder, target).
		TranslateExpression(expr, NewContext(false))
}

// TranslateStatement translates one IR statement into one output statement,
// accumulating import requirements in imports as a side effect.
func TranslateStatement(stmt ir.Stmt, imports *ImportManager, recorder DefaultImportRecorder, target ScriptTarget) (ts.Stmt, error) {
	return NewExpressionTranslator(imports, recorder, target).
		TranslateStatement(stmt)
}

// ExpressionTranslator walks IR statement and expression trees and produces
// the corresponding output nodes. One instance serves one translation unit.
type ExpressionTranslator struct {
	imports  *ImportManager
	recorder DefaultImportRecorder
	target   ScriptTarget

	// externalSourceFiles memoizes one source handle per originating file
	// URL so every source-map range into the same file shares it.
	externalSourceFiles map[string]*source.File
}

// NewExpressionTranslator creates a translator bound to one import manager
// and one default-import recorder. A nil recorder defaults to the no-op
// recorder.
func NewExpressionTranslator(imports *ImportManager, recorder DefaultImportRecorder, target ScriptTarget) *ExpressionTranslator {
	if recorder == nil {
		recorder = NoopDefaultImportRecorder{}
	}
	return &ExpressionTranslator{
		imports:             imports,
		recorder:            recorder,
		target:              target,
		externalSourceFiles: make(map[string]*source.File),
	}
}

// TranslateExpression translates expr in the given context.
func (t *ExpressionTranslator) TranslateExpression(expr ir.Expr, ctx Context) (ts.Expr, error) {
	return t.translateExpr(expr, ctx)
}

// TranslateStatement translates a top-level statement.
func (t *ExpressionTranslator) TranslateStatement(stmt ir.Stmt) (ts.Stmt, error) {
	return t.translateStmt(stmt, NewContext(true))
}

// ---------- Statements ----------

func (t *ExpressionTranslator) translateStmt(stmt ir.Stmt, ctx Context) (ts.Stmt, error) {
	switch s := stmt.(type) {
	case *ir.DeclareVarStmt:
		return t.translateDeclareVar(s, ctx)
	case *ir.DeclareFunctionStmt:
		params := translateParams(s.Params)
		body, err := t.translateBlock(s.Statements, ctx.EnterStatement())
		if err != nil {
			return nil, err
		}
		return ts.NewFunctionDeclaration(s.Name, params, body), nil
	case *ir.ExpressionStmt:
		expr, err := t.translateExpr(s.Expr, ctx.EnterStatement())
		if err != nil {
			return nil, err
		}
		return ts.NewExpressionStatement(expr), nil
	case *ir.ReturnStmt:
		if s.Value == nil {
			return ts.NewReturnStatement(nil), nil
		}
		value, err := t.translateExpr(s.Value, ctx.EnterExpression())
		if err != nil {
			return nil, err
		}
		return ts.NewReturnStatement(value), nil
	case *ir.ClassStmt:
		return t.translateClass(s, ctx)
	case *ir.IfStmt:
		return t.translateIf(s, ctx)
	case *ir.TryCatchStmt:
		return nil, fmt.Errorf("not implemented: try/catch statement")
	case *ir.ThrowStmt:
		err2, err := t.translateExpr(s.Error, ctx.EnterExpression())
		if err != nil {
			return nil, err
		}
		return ts.NewThrowStatement(err2), nil
	case *ir.CommentStmt:
		return nil, fmt.Errorf("not implemented: comment statement")
	case *ir.JSDocCommentStmt:
		node := ts.NewNotEmittedStatement()
		node.AddLeadingComment(ts.SyntheticComment{
			Text:            s.CommentText(),
			Multiline:       true,
			TrailingNewline: true,
		})
		return node, nil
	default:
		return nil, fmt.Errorf("not implemented: statement %T", stmt)
	}
}

// translateDeclareVar picks the declaration keyword from the final modifier
// and the script target: below ES2015 there are no block-scoped constants
// and the declaration is always mutable.
func (t *ExpressionTranslator) translateDeclareVar(s *ir.DeclareVarStmt, ctx Context) (ts.Stmt, error) {
	kind := ts.DeclarationVar
	if s.Modifiers.Has(ir.StmtModifierFinal) && t.target.SupportsBlockScopedDeclarations() {
		kind = ts.DeclarationConst
	}
	var init ts.Expr
	if s.Value != nil {
		var err error
		init, err = t.translateExpr(s.Value, ctx.EnterExpression())
		if err != nil {
			return nil, err
		}
	}
	return ts.NewVariableStatement(kind, s.Name, init), nil
}

func (t *ExpressionTranslator) translateIf(s *ir.IfStmt, ctx Context) (ts.Stmt, error) {
	cond, err := t.translateExpr(s.Condition, ctx.EnterExpression())
	if err != nil {
		return nil, err
	}
	then, err := t.translateBlock(s.TrueCase, ctx.EnterStatement())
	if err != nil {
		return nil, err
	}
	var elseStmt ts.Stmt
	if len(s.FalseCase) > 0 {
		elseBlock, err := t.translateBlock(s.FalseCase, ctx.EnterStatement())
		if err != nil {
			return nil, err
		}
		elseStmt = elseBlock
	}
	return ts.NewIfStatement(cond, then, elseStmt), nil
}

func (t *ExpressionTranslator) translateClass(s *ir.ClassStmt, ctx Context) (ts.Stmt, error) {
	if !t.target.SupportsClassDeclarations() {
		return nil, fmt.Errorf("not implemented: class declaration at target %s", t.target)
	}
	var parent ts.Expr
	if s.Parent != nil {
		var err error
		parent, err = t.translateExpr(s.Parent, ctx.EnterExpression())
		if err != nil {
			return nil, err
		}
	}
	fields := make([]*ts.PropertyDeclaration, 0, len(s.Fields))
	for _, f := range s.Fields {
		var init ts.Expr
		if f.Initializer != nil {
			var err error
			init, err = t.translateExpr(f.Initializer, ctx.EnterExpression())
			if err != nil {
				return nil, err
			}
		}
		fields = append(fields, ts.NewPropertyDeclaration(f.Name, init))
	}
	methods := make([]*ts.MethodDeclaration, 0, len(s.Methods))
	for _, m := range s.Methods {
		body, err := t.translateBlock(m.Statements, ctx.EnterStatement())
		if err != nil {
			return nil, err
		}
		methods = append(methods, ts.NewMethodDeclaration(m.Name, translateParams(m.Params), body))
	}
	return ts.NewClassDeclaration(s.Name, parent, fields, methods), nil
}

func (t *ExpressionTranslator) translateBlock(stmts []ir.Stmt, ctx Context) (*ts.Block, error) {
	out := make([]ts.Stmt, 0, len(stmts))
	for _, s := range stmts {
		node, err := t.translateStmt(s, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return ts.NewBlock(out), nil
}

// ---------- Expressions ----------

func (t *ExpressionTranslator) translateExpr(expr ir.Expr, ctx Context) (ts.Expr, error) {
	node, err := t.dispatchExpr(expr, ctx)
	if err != nil {
		return nil, err
	}
	// Wrapped nodes pass through verbatim and are never re-annotated.
	if _, wrapped := expr.(*ir.WrappedNodeExpr); !wrapped {
		t.setSourceMapRange(node, expr.SourceSpan())
	}
	return node, nil
}

func (t *ExpressionTranslator) dispatchExpr(expr ir.Expr, ctx Context) (ts.Expr, error) {
	switch e := expr.(type) {
	case *ir.ReadVarExpr:
		return ts.NewIdentifier(e.Name), nil

	case *ir.WriteVarExpr:
		// The value keeps the incoming context; only indexed and property
		// writes force their operands into expression mode.
		value, err := t.translateExpr(e.Value, ctx)
		if err != nil {
			return nil, err
		}
		return maybeParenAssignment(ts.NewBinary("=", ts.NewIdentifier(e.Name), value), ctx), nil

	case *ir.WriteKeyExpr:
		exprCtx := ctx.EnterExpression()
		receiver, err := t.translateExpr(e.Receiver, exprCtx)
		if err != nil {
			return nil, err
		}
		index, err := t.translateExpr(e.Index, exprCtx)
		if err != nil {
			return nil, err
		}
		value, err := t.translateExpr(e.Value, exprCtx)
		if err != nil {
			return nil, err
		}
		target := ts.NewElementAccess(receiver, index)
		return maybeParenAssignment(ts.NewBinary("=", target, value), ctx), nil

	case *ir.WritePropExpr:
		exprCtx := ctx.EnterExpression()
		receiver, err := t.translateExpr(e.Receiver, exprCtx)
		if err != nil {
			return nil, err
		}
		value, err := t.translateExpr(e.Value, exprCtx)
		if err != nil {
			return nil, err
		}
		target := ts.NewPropertyAccess(receiver, e.Name)
		return maybeParenAssignment(ts.NewBinary("=", target, value), ctx), nil

	case *ir.InvokeFunctionExpr:
		fn, err := t.translateExpr(e.Fn, ctx)
		if err != nil {
			return nil, err
		}
		args, err := t.translateExprList(e.Args, ctx)
		if err != nil {
			return nil, err
		}
		call := ts.NewCall(fn, args)
		if e.Pure {
			// Downstream optimizers match on exact textual adjacency of
			// this marker, so it must not carry a trailing newline.
			call.AddLeadingComment(ts.SyntheticComment{
				Text:      "@__PURE__",
				Multiline: true,
			})
		}
		return call, nil

	case *ir.InstantiateExpr:
		class, err := t.translateExpr(e.Class, ctx)
		if err != nil {
			return nil, err
		}
		args, err := t.translateExprList(e.Args, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewNew(class, args), nil

	case *ir.LiteralExpr:
		return literalToExpr(e.Value)

	case *ir.LocalizedStringExpr:
		if !t.target.SupportsTemplateLiterals() {
			return nil, fmt.Errorf(
				"not implemented: localized string (tagged template literal) at target %s", t.target)
		}
		return localizedStringToTaggedTemplate(e, func(sub ir.Expr) (ts.Node, error) {
			return t.translateExpr(sub, ctx)
		})

	case *ir.ExternalExpr:
		return t.translateExternal(e)

	case *ir.ConditionalExpr:
		cond, err := t.translateExpr(e.Condition, ctx)
		if err != nil {
			return nil, err
		}
		whenTrue, err := t.translateExpr(e.TrueCase, ctx)
		if err != nil {
			return nil, err
		}
		if e.FalseCase == nil {
			return nil, fmt.Errorf("conditional expression is missing its false case")
		}
		whenFalse, err := t.translateExpr(e.FalseCase, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewParen(ts.NewConditional(cond, whenTrue, whenFalse)), nil

	case *ir.NotExpr:
		operand, err := t.translateExpr(e.Condition, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewPrefixUnary("!", operand), nil

	case *ir.AssertNotNullExpr:
		// Erased: the assertion has no runtime artifact. A target level
		// needing explicit narrowing syntax would wrap here.
		return t.translateExpr(e.Condition, ctx)

	case *ir.CastExpr:
		// Erased, same as AssertNotNullExpr.
		return t.translateExpr(e.Value, ctx)

	case *ir.FunctionExpr:
		// Body statements keep the incoming context. Block contents are in
		// statement position by construction of the enclosing block, so an
		// expression-mode context cannot leak parenthesization into them.
		body, err := t.translateBlock(e.Statements, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewFunctionExpr(e.Name, translateParams(e.Params), body), nil

	case *ir.BinaryOperatorExpr:
		token, err := binaryOperatorToken(e.Operator)
		if err != nil {
			return nil, err
		}
		lhs, err := t.translateExpr(e.Lhs, ctx)
		if err != nil {
			return nil, err
		}
		rhs, err := t.translateExpr(e.Rhs, ctx)
		if err != nil {
			return nil, err
		}
		binary := ts.NewBinary(token, lhs, rhs)
		if e.Parens {
			return ts.NewParen(binary), nil
		}
		return binary, nil

	case *ir.ReadPropExpr:
		receiver, err := t.translateExpr(e.Receiver, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewPropertyAccess(receiver, e.Name), nil

	case *ir.ReadKeyExpr:
		receiver, err := t.translateExpr(e.Receiver, ctx)
		if err != nil {
			return nil, err
		}
		index, err := t.translateExpr(e.Index, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewElementAccess(receiver, index), nil

	case *ir.LiteralArrayExpr:
		// Array entries consume the value of whatever they hold, so an
		// assignment inside one needs its parentheses even at statement
		// position.
		entries, err := t.translateExprList(e.Entries, ctx.EnterExpression())
		if err != nil {
			return nil, err
		}
		return ts.NewArrayLiteral(entries), nil

	case *ir.LiteralMapExpr:
		props := make([]*ts.PropertyAssignment, 0, len(e.Entries))
		for _, entry := range e.Entries {
			value, err := t.translateExpr(entry.Value, ctx.EnterExpression())
			if err != nil {
				return nil, err
			}
			props = append(props, ts.NewPropertyAssignment(entry.Key, entry.Quoted, value))
		}
		return ts.NewObjectLiteral(props), nil

	case *ir.CommaExpr:
		return nil, fmt.Errorf("not implemented: comma expression")

	case *ir.WrappedNodeExpr:
		node, ok := e.Node.(ts.Expr)
		if !ok {
			return nil, fmt.Errorf("wrapped node is not an output expression: %T", e.Node)
		}
		if id, isIdent := node.(*ts.Identifier); isIdent {
			t.recorder.RecordUsedIdentifier(id)
		}
		return node, nil

	case *ir.TypeofExpr:
		operand, err := t.translateExpr(e.Expr, ctx)
		if err != nil {
			return nil, err
		}
		return ts.NewTypeOf(operand), nil

	default:
		return nil, fmt.Errorf("not implemented: expression %T", expr)
	}
}

// translateExternal resolves an external symbol reference through the import
// manager. A reference without a module name is ambient and stays a bare
// identifier.
func (t *ExpressionTranslator) translateExternal(e *ir.ExternalExpr) (ts.Expr, error) {
	if e.Value.Name == "" {
		return nil, fmt.Errorf("import unknown module or symbol %+v", e.Value)
	}
	if e.Value.ModuleName == "" {
		return ts.NewIdentifier(e.Value.Name), nil
	}
	imp := t.imports.GenerateNamedImport(e.Value.ModuleName, e.Value.Name)
	if imp.ModuleImport == "" {
		return ts.NewIdentifier(imp.Symbol), nil
	}
	return ts.NewPropertyAccess(ts.NewIdentifier(imp.ModuleImport), imp.Symbol), nil
}

func (t *ExpressionTranslator) translateExprList(exprs []ir.Expr, ctx Context) ([]ts.Expr, error) {
	out := make([]ts.Expr, 0, len(exprs))
	for _, e := range exprs {
		node, err := t.translateExpr(e, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

// setSourceMapRange annotates node with the IR span, sharing one source
// handle per file URL.
func (t *ExpressionTranslator) setSourceMapRange(node ts.Node, span *source.Span) {
	if !span.Valid() {
		return
	}
	url := span.File.URL
	file, ok := t.externalSourceFiles[url]
	if !ok {
		file = &source.File{URL: url, Content: span.File.Content}
		t.externalSourceFiles[url] = file
	}
	if settable, ok := node.(interface{ SetSourceMapRange(*ts.SourceMapRange) }); ok {
		settable.SetSourceMapRange(&ts.SourceMapRange{Source: file, Start: span.Start, End: span.End})
	}
}

// maybeParenAssignment parenthesizes an assignment whose result is itself
// consumed; in statement position it stays bare.
func maybeParenAssignment(assignment *ts.Binary, ctx Context) ts.Expr {
	if ctx.IsStatement() {
		return assignment
	}
	return ts.NewParen(assignment)
}

func translateParams(params []*ir.FnParam) []*ts.Param {
	out := make([]*ts.Param, 0, len(params))
	for _, p := range params {
		// Type, default and optionality annotations are dropped; only the
		// structural name survives.
		out = append(out, ts.NewParam(p.Name))
	}
	return out
}

// literalToExpr maps an IR literal value onto the output literal node model.
// Undefined and null are distinct values with distinct nodes.
func literalToExpr(value any) (ts.Expr, error) {
	switch v := value.(type) {
	case ir.SpecialValue:
		switch v {
		case ir.Undefined:
			return ts.NewIdentifier("undefined"), nil
		case ir.Null:
			return ts.NewNullLiteral(), nil
		default:
			return nil, fmt.Errorf("unknown special literal value %d", int(v))
		}
	case string:
		return ts.NewStringLiteral(v), nil
	case bool:
		return ts.NewBoolLiteral(v), nil
	case float64:
		return ts.NewNumberLiteral(v), nil
	case int:
		return ts.NewNumberLiteral(float64(v)), nil
	default:
		return nil, fmt.Errorf("unsupported literal value %v (%T)", value, value)
	}
}
