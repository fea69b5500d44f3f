package translator

import "github.com/thethingsyouownendupowningyou/angular/pkg/ts"

// ImportRewriter is the external policy consulted whenever an external
// reference resolves to a module import. It can rename symbols per module,
// elide imports entirely (the symbol is then referenced as an ambient
// global), and adjust module specifiers relative to the emitting file.
type ImportRewriter interface {
	// RewriteSymbol returns the name to use for symbol when imported from
	// moduleName.
	RewriteSymbol(symbol, moduleName string) string

	// ShouldImportSymbol reports whether the symbol must be imported at all.
	ShouldImportSymbol(symbol, moduleName string) bool

	// RewriteSpecifier adjusts a module specifier for the file at
	// inContextOfFile (e.g. relative-path computation).
	RewriteSpecifier(specifier, inContextOfFile string) string
}

// NoopImportRewriter imports every symbol under its original name with an
// unchanged specifier.
type NoopImportRewriter struct{}

// RewriteSymbol implements ImportRewriter.
func (NoopImportRewriter) RewriteSymbol(symbol, _ string) string { return symbol }

// ShouldImportSymbol implements ImportRewriter.
func (NoopImportRewriter) ShouldImportSymbol(_, _ string) bool { return true }

// RewriteSpecifier implements ImportRewriter.
func (NoopImportRewriter) RewriteSpecifier(specifier, _ string) string { return specifier }

// DefaultImportRecorder is notified whenever a wrapped identifier node is
// consumed by the translator. The surrounding system uses the record to keep
// default imports that are actually referenced from being elided as unused.
type DefaultImportRecorder interface {
	RecordUsedIdentifier(id *ts.Identifier)
}

// NoopDefaultImportRecorder ignores all usage records.
type NoopDefaultImportRecorder struct{}

// RecordUsedIdentifier implements DefaultImportRecorder.
func (NoopDefaultImportRecorder) RecordUsedIdentifier(*ts.Identifier) {}
