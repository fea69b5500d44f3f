package config

// Defaults for configuration values.
const (
	DefaultTarget       = "esnext"
	DefaultImportPrefix = "i"
)

// Config holds the resolved tool configuration.
type Config struct {
	// Target is the output language level (es5|es2015|es2020|esnext).
	Target string `koanf:"target"`

	// ImportPrefix seeds generated module aliases (prefix0, prefix1, ...).
	ImportPrefix string `koanf:"import_prefix"`

	// ContextPath is the path of the file being emitted; import specifiers
	// are rewritten relative to it.
	ContextPath string `koanf:"context_path"`

	// DownlevelTaggedTemplates is reserved for emitting tagged templates as
	// helper calls on pre-ES2015 targets. Decoded but not yet acted on.
	DownlevelTaggedTemplates bool `koanf:"downlevel_tagged_templates"`

	Verbose bool `koanf:"verbose"`
}
