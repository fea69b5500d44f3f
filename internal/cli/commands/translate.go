// Package commands implements the ngts subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thethingsyouownendupowningyou/angular/internal/cli/config"
	"github.com/thethingsyouownendupowningyou/angular/internal/irjson"
	"github.com/thethingsyouownendupowningyou/angular/pkg/translator"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

// ConfigKey is the context key the root command stores the config under.
type ConfigKey struct{}

// LoggerKey is the context key the root command stores the logger under.
type LoggerKey struct{}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Target:       config.DefaultTarget,
		ImportPrefix: config.DefaultImportPrefix,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "translate <file.json>",
		Short: "Translate an IR document to TypeScript",
		Long: `Decode a JSON-encoded IR document, translate its statements, and print
the resulting TypeScript. Pass "-" to read the document from stdin.

Imports accumulated during translation are hoisted to the top of the
output as namespace import declarations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())

			result, err := translateDocument(args[0], cfg, logger)
			if err != nil {
				return err
			}

			text := ts.Print(result.statements)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				logger.Debug("wrote output", "path", outPath, "bytes", len(text))
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write output to a file instead of stdout")
	return cmd
}

// translated carries the outcome of one document translation.
type translated struct {
	statements []ts.Stmt
	imports    []translator.Import
}

// translateDocument runs the full pipeline: read, decode, translate, hoist
// imports. Import declarations come first in the returned statement list, in
// the order their modules were first referenced.
func translateDocument(path string, cfg *config.Config, logger *slog.Logger) (*translated, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	doc, err := irjson.Decode(data)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded document", "statements", len(doc.Statements))

	target, err := translator.ParseScriptTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	imports := translator.NewImportManager(translator.NoopImportRewriter{}, cfg.ImportPrefix)
	body := make([]ts.Stmt, 0, len(doc.Statements))
	for i, stmt := range doc.Statements {
		node, err := translator.TranslateStatement(stmt, imports, translator.NoopDefaultImportRecorder{}, target)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		body = append(body, node)
	}

	// Imports are finalized only after the whole document is translated.
	resolved := imports.GetAllImports(cfg.ContextPath)
	statements := make([]ts.Stmt, 0, len(resolved)+len(body))
	for _, imp := range resolved {
		statements = append(statements, ts.NewImportDeclaration(imp.Specifier, imp.Qualifier))
	}
	statements = append(statements, body...)

	return &translated{statements: statements, imports: resolved}, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
