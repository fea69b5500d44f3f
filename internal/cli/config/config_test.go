package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
		ResetConfig()
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTarget, cfg.Target)
	assert.Equal(t, DefaultImportPrefix, cfg.ImportPrefix)
	assert.Empty(t, cfg.ContextPath)
	assert.False(t, cfg.DownlevelTaggedTemplates)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ngts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: es2015\nimport_prefix: ng\n"), 0644))
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "es2015", cfg.Target)
	assert.Equal(t, "ng", cfg.ImportPrefix)
	assert.Equal(t, "ngts.yaml", GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ngts.yaml"), []byte("target: es2015\n"), 0644))
	chdir(t, dir)
	t.Setenv("NGTS_TARGET", "es2020")
	t.Setenv("NGTS_CONTEXT_PATH", "src/app.ts")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "es2020", cfg.Target)
	assert.Equal(t, "src/app.ts", cfg.ContextPath)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NGTS_TARGET", "es2020")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("target", "", "")
	flags.String("import-prefix", "", "")
	require.NoError(t, flags.Parse([]string{"--target", "es5", "--import-prefix", "m"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "es5", cfg.Target)
	assert.Equal(t, "m", cfg.ImportPrefix)
}

func TestLoadConfigUnchangedFlagsDoNotOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NGTS_TARGET", "es2015")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("target", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "es2015", cfg.Target, "an unset flag must not mask the env var")
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("import_prefix: x\n"), 0644))
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.ImportPrefix)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigRejectsUnknownTarget(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NGTS_TARGET", "es1999")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown script target")
}
