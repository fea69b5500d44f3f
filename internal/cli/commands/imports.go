package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewImportsCommand creates the imports command.
func NewImportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "imports <file.json>",
		Short: "List the imports a translation would generate",
		Long: `Translate an IR document and list the module imports the translation
accumulated, with the alias assigned to each specifier. Pass "-" to read
the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())

			result, err := translateDocument(args[0], cfg, logger)
			if err != nil {
				return err
			}

			if len(result.imports) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No imports generated")
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Specifier", "Alias"})
			for _, imp := range result.imports {
				t.AppendRow(table.Row{imp.Specifier, imp.Qualifier})
			}
			t.Render()
			return nil
		},
	}
}
