package ir

import "strings"

// ---------- Statement nodes ----------

// DeclareVarStmt declares the variable Name, optionally initialized to Value.
// The StmtModifierFinal modifier requests a block-scoped constant where the
// output target supports one.
type DeclareVarStmt struct {
	StmtBase
	Name  string
	Value Expr // optional
	Type  Type // optional
}

func (*DeclareVarStmt) stmtNode() {}

// DeclareFunctionStmt declares a named function.
type DeclareFunctionStmt struct {
	StmtBase
	Name       string
	Params     []*FnParam
	Statements []Stmt
	Type       Type // optional return type
}

func (*DeclareFunctionStmt) stmtNode() {}

// ExpressionStmt evaluates Expr for its side effects.
type ExpressionStmt struct {
	StmtBase
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}

// ReturnStmt returns Value from the enclosing function.
type ReturnStmt struct {
	StmtBase
	Value Expr
}

func (*ReturnStmt) stmtNode() {}

// ClassField is a field of a class declaration.
type ClassField struct {
	Name        string
	Initializer Expr // optional
}

// ClassMethod is a method of a class declaration.
type ClassMethod struct {
	Name       string
	Params     []*FnParam
	Statements []Stmt
}

// ClassStmt declares a class. Translation is only supported at targets with
// native class syntax.
type ClassStmt struct {
	StmtBase
	Name    string
	Parent  Expr // optional superclass expression
	Fields  []*ClassField
	Methods []*ClassMethod
}

func (*ClassStmt) stmtNode() {}

// IfStmt branches on Condition.
type IfStmt struct {
	StmtBase
	Condition Expr
	TrueCase  []Stmt
	FalseCase []Stmt
}

func (*IfStmt) stmtNode() {}

// TryCatchStmt guards BodyStmts with a catch block. It has no supported
// translation.
type TryCatchStmt struct {
	StmtBase
	BodyStmts  []Stmt
	CatchStmts []Stmt
}

func (*TryCatchStmt) stmtNode() {}

// ThrowStmt throws Error.
type ThrowStmt struct {
	StmtBase
	Error Expr
}

func (*ThrowStmt) stmtNode() {}

// CommentStmt is a bare comment. It has no supported translation.
type CommentStmt struct {
	StmtBase
	Comment   string
	Multiline bool
}

func (*CommentStmt) stmtNode() {}

// JSDocTag is one @tag of a JSDoc comment. An empty TagName contributes bare
// text with no tag marker.
type JSDocTag struct {
	TagName string
	Text    string
}

// JSDocCommentStmt is a structured JSDoc comment attached at statement
// position. It translates to a non-emitted statement carrying the comment.
type JSDocCommentStmt struct {
	StmtBase
	Tags []JSDocTag
}

func (*JSDocCommentStmt) stmtNode() {}

// CommentText renders the tags as the inner text of a /** ... */ comment,
// without the enclosing delimiters.
func (s *JSDocCommentStmt) CommentText() string {
	if len(s.Tags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("*\n")
	for _, tag := range s.Tags {
		sb.WriteString(" *")
		if tag.TagName != "" {
			sb.WriteString(" @")
			sb.WriteString(tag.TagName)
		}
		if tag.Text != "" {
			sb.WriteString(" ")
			// @ inside tag text would terminate the tag early in some parsers.
			sb.WriteString(strings.ReplaceAll(tag.Text, "@", "\\@"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	return sb.String()
}
