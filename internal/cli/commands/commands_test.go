package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thethingsyouownendupowningyou/angular/internal/cli"
)

const fixtureDocument = `{
	"statements": [
		{
			"kind": "declareVar",
			"name": "cmp",
			"modifiers": ["final"],
			"value": {
				"kind": "invoke",
				"pure": true,
				"fn": {"kind": "external", "moduleName": "@angular/core", "name": "defineComponent"},
				"args": [{"kind": "literal", "value": "app-root"}]
			}
		},
		{
			"kind": "expression",
			"expr": {
				"kind": "invoke",
				"fn": {"kind": "external", "moduleName": "rxjs", "name": "of"},
				"args": [{"kind": "literal", "value": 1}]
			}
		}
	]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDocument), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestTranslateCommand(t *testing.T) {
	path := writeFixture(t)
	got := runCommand(t, "translate", path)

	assert.Contains(t, got, "import * as i0 from \"@angular/core\";\n")
	assert.Contains(t, got, "import * as i1 from \"rxjs\";\n")
	assert.Contains(t, got, "const cmp = /*@__PURE__*/i0.defineComponent(\"app-root\");\n")
	assert.Contains(t, got, "i1.of(1);\n")
}

func TestTranslateCommandTargetFlag(t *testing.T) {
	path := writeFixture(t)
	got := runCommand(t, "translate", path, "--target", "es5")
	assert.Contains(t, got, "var cmp = ", "es5 output must not use const")
}

func TestTranslateCommandOutFlag(t *testing.T) {
	path := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "out.ts")
	runCommand(t, "translate", path, "--out", outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const cmp = ")
}

func TestTranslateCommandImportPrefix(t *testing.T) {
	path := writeFixture(t)
	got := runCommand(t, "translate", path, "--import-prefix", "ng")
	assert.Contains(t, got, "import * as ng0 from \"@angular/core\";\n")
	assert.Contains(t, got, "ng0.defineComponent")
}

func TestTranslateCommandRejectsBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"statements": [{"kind": "goto"}]}`), 0644))

	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown statement kind")
}

func TestImportsCommand(t *testing.T) {
	path := writeFixture(t)
	got := runCommand(t, "imports", path)

	assert.Contains(t, got, "@angular/core")
	assert.Contains(t, got, "rxjs")
	assert.Contains(t, got, "i0")
	assert.Contains(t, got, "i1")
}

func TestImportsCommandEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"statements": []}`), 0644))

	got := runCommand(t, "imports", path)
	assert.Contains(t, got, "No imports generated")
}

func TestVersionCommand(t *testing.T) {
	got := runCommand(t, "version")
	assert.Contains(t, got, "ngts v")
}
