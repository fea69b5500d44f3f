package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportManagerAliasAllocation(t *testing.T) {
	im := NewImportManager(nil, "")

	first := im.GenerateNamedImport("@angular/core", "Component")
	second := im.GenerateNamedImport("rxjs", "Observable")
	again := im.GenerateNamedImport("@angular/core", "Injectable")

	assert.Equal(t, "i0", first.ModuleImport)
	assert.Equal(t, "i1", second.ModuleImport)
	assert.Equal(t, "i0", again.ModuleImport, "same module must reuse its alias")
	assert.Equal(t, "Component", first.Symbol)
}

func TestImportManagerCustomPrefix(t *testing.T) {
	im := NewImportManager(nil, "ng")
	imp := im.GenerateNamedImport("@angular/core", "Component")
	assert.Equal(t, "ng0", imp.ModuleImport)
}

func TestGetAllImportsFirstSeenOrder(t *testing.T) {
	im := NewImportManager(nil, "")
	im.GenerateNamedImport("b", "B")
	im.GenerateNamedImport("a", "A")
	im.GenerateNamedImport("b", "B2")
	im.GenerateNamedImport("c", "C")

	imports := im.GetAllImports("")
	require.Len(t, imports, 3)
	assert.Equal(t, []Import{
		{Specifier: "b", Qualifier: "i0"},
		{Specifier: "a", Qualifier: "i1"},
		{Specifier: "c", Qualifier: "i2"},
	}, imports)
}

// flatRewriter renames symbols, elides imports from one module, and rewrites
// specifiers to relative form.
type flatRewriter struct{}

func (flatRewriter) RewriteSymbol(symbol, moduleName string) string {
	if moduleName == "@angular/core" {
		return "ɵ" + symbol
	}
	return symbol
}

func (flatRewriter) ShouldImportSymbol(_, moduleName string) bool {
	return moduleName != "./local"
}

func (flatRewriter) RewriteSpecifier(specifier, contextPath string) string {
	return strings.TrimPrefix(specifier, "node_modules/") + "#" + contextPath
}

func TestImportManagerRewritePolicy(t *testing.T) {
	im := NewImportManager(flatRewriter{}, "")

	t.Run("symbol rewrite happens before aliasing", func(t *testing.T) {
		imp := im.GenerateNamedImport("@angular/core", "Component")
		assert.Equal(t, "ɵComponent", imp.Symbol)
		assert.Equal(t, "i0", imp.ModuleImport)
	})

	t.Run("declined symbols allocate no alias", func(t *testing.T) {
		imp := im.GenerateNamedImport("./local", "helper")
		assert.Empty(t, imp.ModuleImport)
		assert.Equal(t, "helper", imp.Symbol)

		imports := im.GetAllImports("src/app.ts")
		require.Len(t, imports, 1, "elided module must not appear in the final imports")
	})

	t.Run("specifiers are rewritten against the context path", func(t *testing.T) {
		im.GenerateNamedImport("node_modules/rxjs", "Observable")
		imports := im.GetAllImports("src/app.ts")
		require.Len(t, imports, 2)
		assert.Equal(t, "rxjs#src/app.ts", imports[1].Specifier)
	})
}
