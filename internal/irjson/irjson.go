// Package irjson decodes IR documents from their JSON interchange form.
//
// Nodes are kind-discriminated objects. The decoder covers every node kind
// the IR defines, including the ones the translator rejects, so that
// translation (not decoding) is the stage that reports an unsupported
// construct. Wrapped nodes carry pre-built output-tree values and have no
// JSON form.
package irjson

import (
	"encoding/json"
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/source"
)

// Document is one translation unit: a list of top-level statements.
type Document struct {
	Statements []ir.Stmt
}

// Decode parses a JSON document.
func Decode(data []byte) (*Document, error) {
	var raw struct {
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse IR document: %w", err)
	}
	doc := &Document{Statements: make([]ir.Stmt, 0, len(raw.Statements))}
	for i, stmt := range raw.Statements {
		node, err := decodeStmt(stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		doc.Statements = append(doc.Statements, node)
	}
	return doc, nil
}

type jsonSpan struct {
	URL   string `json:"url"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (s *jsonSpan) toSpan() *source.Span {
	if s == nil || s.URL == "" {
		return nil
	}
	return source.NewSpan(s.URL, s.Start, s.End)
}

func decodeModifiers(names []string) (ir.StmtModifier, error) {
	mod := ir.StmtModifierNone
	for _, name := range names {
		switch name {
		case "final":
			mod |= ir.StmtModifierFinal
		case "exported":
			mod |= ir.StmtModifierExported
		default:
			return 0, fmt.Errorf("unknown statement modifier %q", name)
		}
	}
	return mod, nil
}

func decodeParams(raw []struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}) ([]*ir.FnParam, error) {
	params := make([]*ir.FnParam, 0, len(raw))
	for _, p := range raw {
		var typ ir.Type
		if len(p.Type) > 0 {
			var err error
			typ, err = decodeType(p.Type)
			if err != nil {
				return nil, err
			}
		}
		params = append(params, &ir.FnParam{Name: p.Name, Type: typ})
	}
	return params, nil
}

// ---------- Statements ----------

func decodeStmt(data json.RawMessage) (ir.Stmt, error) {
	var head struct {
		Kind      string    `json:"kind"`
		Span      *jsonSpan `json:"span"`
		Modifiers []string  `json:"modifiers"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	mods, err := decodeModifiers(head.Modifiers)
	if err != nil {
		return nil, err
	}
	base := ir.StmtBase{Span: head.Span.toSpan(), Modifiers: mods}

	switch head.Kind {
	case "declareVar":
		var body struct {
			Name  string          `json:"name"`
			Value json.RawMessage `json:"value"`
			Type  json.RawMessage `json:"type"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		stmt := &ir.DeclareVarStmt{StmtBase: base, Name: body.Name}
		if len(body.Value) > 0 {
			if stmt.Value, err = decodeExpr(body.Value); err != nil {
				return nil, err
			}
		}
		if len(body.Type) > 0 {
			if stmt.Type, err = decodeType(body.Type); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "declareFunction":
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
		return &ir.DeclareFunctionStmt{StmtBase: base, Name: body.Name, Params: params, Statements: stmts}, nil

	case "expression":
		var body struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		expr, err := decodeExpr(body.Expr)
		if err != nil {
			return nil, err
		}
		return &ir.ExpressionStmt{StmtBase: base, Expr: expr}, nil

	case "return":
		var body struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		stmt := &ir.ReturnStmt{StmtBase: base}
		if len(body.Value) > 0 {
			if stmt.Value, err = decodeExpr(body.Value); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "if":
		var body struct {
			Condition json.RawMessage   `json:"condition"`
			TrueCase  []json.RawMessage `json:"trueCase"`
			FalseCase []json.RawMessage `json:"falseCase"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(body.Condition)
		if err != nil {
			return nil, err
		}
		trueCase, err := decodeStmtList(body.TrueCase)
		if err != nil {
			return nil, err
		}
		falseCase, err := decodeStmtList(body.FalseCase)
		if err != nil {
			return nil, err
		}
		return &ir.IfStmt{StmtBase: base, Condition: cond, TrueCase: trueCase, FalseCase: falseCase}, nil

	case "throw":
		var body struct {
			Error json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		errExpr, err := decodeExpr(body.Error)
		if err != nil {
			return nil, err
		}
		return &ir.ThrowStmt{StmtBase: base, Error: errExpr}, nil

	case "tryCatch":
		var body struct {
			Body  []json.RawMessage `json:"body"`
			Catch []json.RawMessage `json:"catch"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		bodyStmts, err := decodeStmtList(body.Body)
		if err != nil {
			return nil, err
		}
		catchStmts, err := decodeStmtList(body.Catch)
		if err != nil {
			return nil, err
		}
		return &ir.TryCatchStmt{StmtBase: base, BodyStmts: bodyStmts, CatchStmts: catchStmts}, nil

	case "comment":
		var body struct {
			Comment   string `json:"comment"`
			Multiline bool   `json:"multiline"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		return &ir.CommentStmt{StmtBase: base, Comment: body.Comment, Multiline: body.Multiline}, nil

	case "jsdoc":
		var body struct {
			Tags []struct {
				TagName string `json:"tagName"`
				Text    string `json:"text"`
			} `json:"tags"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		tags := make([]ir.JSDocTag, 0, len(body.Tags))
		for _, tag := range body.Tags {
			tags = append(tags, ir.JSDocTag{TagName: tag.TagName, Text: tag.Text})
		}
		return &ir.JSDocCommentStmt{StmtBase: base, Tags: tags}, nil

	case "class":
		return decodeClass(data, base)

	case "":
		return nil, fmt.Errorf("statement is missing a kind")
	default:
		return nil, fmt.Errorf("unknown statement kind %q", head.Kind)
	}
}

func decodeClass(data json.RawMessage, base ir.StmtBase) (ir.Stmt, error) {
	var body struct {
		Name   string          `json:"name"`
		Parent json.RawMessage `json:"parent"`
		Fields []struct {
			Name        string          `json:"name"`
			Initializer json.RawMessage `json:"initializer"`
		} `json:"fields"`
		Methods []struct {
			Name   string `json:"name"`
			Params []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"params"`
			Statements []json.RawMessage `json:"statements"`
		} `json:"methods"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	stmt := &ir.ClassStmt{StmtBase: base, Name: body.Name}
	if len(body.Parent) > 0 {
		var err error
		if stmt.Parent, err = decodeExpr(body.Parent); err != nil {
			return nil, err
		}
	}
	for _, f := range body.Fields {
		field := &ir.ClassField{Name: f.Name}
		if len(f.Initializer) > 0 {
			var err error
			if field.Initializer, err = decodeExpr(f.Initializer); err != nil {
				return nil, err
			}
		}
		stmt.Fields = append(stmt.Fields, field)
	}
	for _, m := range body.Methods {
		params, err := decodeParams(m.Params)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeStmtList(m.Statements)
		if err != nil {
			return nil, err
		}
		stmt.Methods = append(stmt.Methods, &ir.ClassMethod{Name: m.Name, Params: params, Statements: stmts})
	}
	return stmt, nil
}

func decodeStmtList(raw []json.RawMessage) ([]ir.Stmt, error) {
	stmts := make([]ir.Stmt, 0, len(raw))
	for _, s := range raw {
		node, err := decodeStmt(s)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, node)
	}
	return stmts, nil
}
