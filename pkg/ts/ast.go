// Package ts defines the concrete TypeScript syntax-tree node model the
// translator produces, together with a printer that serializes nodes to
// source text.
//
// The model covers the node kinds reachable from the translator, not the
// whole TypeScript grammar. Nodes are created through the New* factory
// functions and are not mutated after construction, with one exception: a
// template element's kind may be re-tagged from middle to tail (see
// TemplateElement).
package ts

import "github.com/thethingsyouownendupowningyou/angular/pkg/source"

// Node is the base interface for all output nodes.
type Node interface {
	// SourceMapRange returns the range this node maps back to, or nil.
	SourceMapRange() *SourceMapRange
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

// TypeNode is a marker interface for type nodes.
type TypeNode interface {
	Node
	typeNode() // marker method to distinguish type nodes
}

// SourceMapRange maps an output node back to a byte range of an originating
// source file. Source handles are shared: all ranges into the same file point
// at one *source.File.
type SourceMapRange struct {
	Source *source.File
	Start  int
	End    int
}

// SyntheticComment is a comment synthesized onto an output node rather than
// parsed from input.
type SyntheticComment struct {
	Text            string
	Multiline       bool
	TrailingNewline bool
}

// NodeBase carries the fields shared by every output node.
type NodeBase struct {
	Range           *SourceMapRange
	LeadingComments []SyntheticComment
}

// SourceMapRange implements Node.
func (n *NodeBase) SourceMapRange() *SourceMapRange { return n.Range }

// SetSourceMapRange attaches a source-map range. A nil range is ignored so
// callers can pass through unannotated spans unconditionally.
func (n *NodeBase) SetSourceMapRange(r *SourceMapRange) {
	if r != nil {
		n.Range = r
	}
}

// AddLeadingComment attaches a synthetic comment emitted immediately before
// the node.
func (n *NodeBase) AddLeadingComment(c SyntheticComment) {
	n.LeadingComments = append(n.LeadingComments, c)
}
