// Package translator converts IR trees (pkg/ir) into TypeScript output nodes
// (pkg/ts).
//
// One ImportManager and one translator instance are scoped to exactly one
// translation unit. Their internal maps are mutable and unsynchronized;
// parallel translation requires one set of instances per unit.
package translator

// Context describes whether the current translation point is a statement
// position or an expression position. It is an immutable value threaded
// through every recursive visit; the position decides encodings such as
// whether an assignment must be parenthesized.
type Context struct {
	isStatement bool
}

// NewContext creates a context in the given mode.
func NewContext(isStatement bool) Context {
	return Context{isStatement: isStatement}
}

// IsStatement reports whether the context is in statement mode.
func (c Context) IsStatement() bool { return c.isStatement }

// EnterExpression returns a context with statement mode cleared.
func (c Context) EnterExpression() Context {
	if !c.isStatement {
		return c
	}
	return Context{isStatement: false}
}

// EnterStatement returns a context with statement mode set.
func (c Context) EnterStatement() Context {
	if c.isStatement {
		return c
	}
	return Context{isStatement: true}
}
