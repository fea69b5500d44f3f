package translator

import "fmt"

// ScriptTarget selects the output language level. It gates which constructs
// are legal in the generated tree: block-scoped constants, template literals
// (and therefore localized strings), and class declarations all require
// ES2015 or newer.
type ScriptTarget int

// Script targets, oldest first so ordering comparisons work.
const (
	ES5 ScriptTarget = iota
	ES2015
	ES2020
	ESNext
)

// String returns the canonical lowercase name.
func (t ScriptTarget) String() string {
	switch t {
	case ES5:
		return "es5"
	case ES2015:
		return "es2015"
	case ES2020:
		return "es2020"
	case ESNext:
		return "esnext"
	default:
		return fmt.Sprintf("ScriptTarget(%d)", int(t))
	}
}

// ParseScriptTarget parses a config-level target name.
func ParseScriptTarget(name string) (ScriptTarget, error) {
	switch name {
	case "es5":
		return ES5, nil
	case "es2015":
		return ES2015, nil
	case "es2020":
		return ES2020, nil
	case "esnext", "":
		return ESNext, nil
	default:
		return ES5, fmt.Errorf("unknown script target %q", name)
	}
}

// SupportsBlockScopedDeclarations reports whether const/let are legal.
func (t ScriptTarget) SupportsBlockScopedDeclarations() bool { return t >= ES2015 }

// SupportsTemplateLiterals reports whether template literals (and localized
// strings, which produce tagged templates) are legal.
func (t ScriptTarget) SupportsTemplateLiterals() bool { return t >= ES2015 }

// SupportsClassDeclarations reports whether native class syntax is legal.
func (t ScriptTarget) SupportsClassDeclarations() bool { return t >= ES2015 }
