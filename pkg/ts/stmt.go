package ts

// ---------- Statement nodes ----------

// DeclarationKind selects the declaration keyword of a variable statement.
type DeclarationKind int

// Declaration kinds.
const (
	DeclarationVar DeclarationKind = iota
	DeclarationLet
	DeclarationConst
)

// Keyword returns the source keyword.
func (k DeclarationKind) Keyword() string {
	switch k {
	case DeclarationConst:
		return "const"
	case DeclarationLet:
		return "let"
	default:
		return "var"
	}
}

// VariableStatement declares a single variable. Init may be nil.
type VariableStatement struct {
	NodeBase
	Kind DeclarationKind
	Name string
	Init Expr
}

func (*VariableStatement) stmtNode() {}

// FunctionDeclaration declares a named function.
type FunctionDeclaration struct {
	NodeBase
	Name   string
	Params []*Param
	Body   *Block
}

func (*FunctionDeclaration) stmtNode() {}

// ExpressionStatement evaluates Expr for its side effects.
type ExpressionStatement struct {
	NodeBase
	Expr Expr
}

func (*ExpressionStatement) stmtNode() {}

// ReturnStatement returns Expr (or nothing when Expr is nil).
type ReturnStatement struct {
	NodeBase
	Expr Expr
}

func (*ReturnStatement) stmtNode() {}

// ThrowStatement throws Expr.
type ThrowStatement struct {
	NodeBase
	Expr Expr
}

func (*ThrowStatement) stmtNode() {}

// IfStatement branches on Condition. Else may be nil.
type IfStatement struct {
	NodeBase
	Condition Expr
	Then      *Block
	Else      Stmt // *Block, *IfStatement, or nil
}

func (*IfStatement) stmtNode() {}

// Block is { statements... }. Block contents are always in statement
// position by construction, independent of the context the enclosing
// expression was visited in.
type Block struct {
	NodeBase
	Statements []Stmt
}

func (*Block) stmtNode() {}

// NotEmittedStatement produces no code of its own; it exists to carry
// synthetic leading comments (e.g. translated JSDoc) into the output.
type NotEmittedStatement struct {
	NodeBase
}

func (*NotEmittedStatement) stmtNode() {}

// ImportDeclaration is import * as alias from "specifier". The translator
// never creates these directly; callers materialize them from the import
// manager's finalized imports.
type ImportDeclaration struct {
	NodeBase
	Specifier string
	Alias     string
}

func (*ImportDeclaration) stmtNode() {}

// PropertyDeclaration is a class field, optionally initialized.
type PropertyDeclaration struct {
	NodeBase
	Name string
	Init Expr
}

// MethodDeclaration is a class method.
type MethodDeclaration struct {
	NodeBase
	Name   string
	Params []*Param
	Body   *Block
}

// ClassDeclaration declares a class. Parent is the optional extends clause.
type ClassDeclaration struct {
	NodeBase
	Name    string
	Parent  Expr
	Fields  []*PropertyDeclaration
	Methods []*MethodDeclaration
}

func (*ClassDeclaration) stmtNode() {}
