package translator

import "strconv"

// DefaultImportPrefix is the alias prefix used when none is configured.
const DefaultImportPrefix = "i"

// NamedImport is the resolution of one external reference. An empty
// ModuleImport means the symbol needs no import and must be referenced as a
// bare (ambient) identifier.
type NamedImport struct {
	ModuleImport string // module alias, e.g. "i0"
	Symbol       string // possibly rewritten symbol name
}

// Import is one finalized (specifier, alias) pair to hoist into a generated
// import statement.
type Import struct {
	Specifier string
	Qualifier string
}

// ImportManager allocates per-module import aliases for one translation
// unit. Aliases are numbered in first-seen order and never reused; the same
// module always resolves to the same alias. Not safe for concurrent use.
type ImportManager struct {
	rewriter      ImportRewriter
	prefix        string
	nextIndex     int
	moduleToAlias map[string]string
	modules       []string // module names in first-seen order
}

// NewImportManager creates a manager backed by the given rewrite policy.
// A nil rewriter defaults to NoopImportRewriter; an empty prefix defaults to
// DefaultImportPrefix.
func NewImportManager(rewriter ImportRewriter, prefix string) *ImportManager {
	if rewriter == nil {
		rewriter = NoopImportRewriter{}
	}
	if prefix == "" {
		prefix = DefaultImportPrefix
	}
	return &ImportManager{
		rewriter:      rewriter,
		prefix:        prefix,
		moduleToAlias: make(map[string]string),
	}
}

// GenerateNamedImport resolves a (module, symbol) pair. The rewrite policy is
// asked first to rename the symbol, then whether the symbol must be imported
// at all; when it declines, the returned NamedImport has no module alias and
// the caller references the symbol directly.
func (im *ImportManager) GenerateNamedImport(moduleName, originalSymbol string) NamedImport {
	symbol := im.rewriter.RewriteSymbol(originalSymbol, moduleName)
	if !im.rewriter.ShouldImportSymbol(symbol, moduleName) {
		return NamedImport{Symbol: symbol}
	}

	alias, ok := im.moduleToAlias[moduleName]
	if !ok {
		alias = im.prefix + strconv.Itoa(im.nextIndex)
		im.nextIndex++
		im.moduleToAlias[moduleName] = alias
		im.modules = append(im.modules, moduleName)
	}
	return NamedImport{ModuleImport: alias, Symbol: symbol}
}

// GetAllImports finalizes the accumulated imports, rewriting each specifier
// relative to the emitting file at contextPath. Order is first-seen
// resolution order. Call it once, after all translation for the unit has
// completed; an earlier call misses any imports resolved afterwards.
func (im *ImportManager) GetAllImports(contextPath string) []Import {
	imports := make([]Import, 0, len(im.modules))
	for _, module := range im.modules {
		imports = append(imports, Import{
			Specifier: im.rewriter.RewriteSpecifier(module, contextPath),
			Qualifier: im.moduleToAlias[module],
		})
	}
	return imports
}
