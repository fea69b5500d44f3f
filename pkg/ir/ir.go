// Package ir defines the language-neutral intermediate representation the
// translator consumes.
//
// IR trees are produced by an upstream front end and are treated as a fixed,
// already-validated input grammar: this package only defines the node shapes,
// it performs no checking of its own.
//
// The Golden Rule: pkg/ir imports ONLY pkg/source and stdlib. Everything else
// depends on ir, never the reverse.
package ir

import "github.com/thethingsyouownendupowningyou/angular/pkg/source"

// Node is the base interface for all IR nodes.
type Node interface {
	// SourceSpan returns the originating source span, or nil when the node
	// was synthesized without one.
	SourceSpan() *source.Span
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to distinguish expressions
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to distinguish statements
}

// Type is a marker interface for type-position nodes. Type nodes carry no
// source spans; they never contribute to source maps.
type Type interface {
	typeNode()
}

// ExprBase carries the fields shared by every expression node.
type ExprBase struct {
	Span *source.Span
}

// SourceSpan implements Node.
func (e *ExprBase) SourceSpan() *source.Span { return e.Span }

// StmtModifier is a bitmask of statement modifiers.
type StmtModifier int

// Statement modifier flags.
const (
	StmtModifierNone     StmtModifier = 0
	StmtModifierFinal    StmtModifier = 1 << 0
	StmtModifierExported StmtModifier = 1 << 1
)

// Has reports whether all bits of mod are set.
func (m StmtModifier) Has(mod StmtModifier) bool { return m&mod == mod }

// StmtBase carries the fields shared by every statement node.
type StmtBase struct {
	Span      *source.Span
	Modifiers StmtModifier
}

// SourceSpan implements Node.
func (s *StmtBase) SourceSpan() *source.Span { return s.Span }
