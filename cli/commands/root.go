// Package commands implements the morsel CLI commands.
package commands

import (
	"os"

	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/satishbabariya/morsel/internal/debug"
	"github.com/spf13/cobra"
)

// Execute runs the CLI and exits non-zero on error. Error rendering
// happens here rather than in cmd/morsel, which cannot import
// cli/internal/ui.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

// NewRootCommand assembles the morsel CLI.
func NewRootCommand() *cobra.Command {
	var debugMode bool

	cmd := &cobra.Command{
		Use:   "morsel",
		Short: "Schema-agnostic CRUD for SQL databases",
		Long: `Morsel talks to SQLite, PostgreSQL and MySQL through plain tables
and columns: no schema files, no code generation. Point it at a DSN
and start reading and writing rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugMode || os.Getenv("MORSEL_DEBUG") != "")
		},
	}

	cmd.PersistentFlags().String("dsn", "", "database DSN, e.g. sqlite:///path/to.db (overrides config)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewAddCommand())
	cmd.AddCommand(NewUpdateCommand())
	cmd.AddCommand(NewDeleteCommand())
	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewColumnsCommand())
	cmd.AddCommand(NewQueryCommand())
	cmd.AddCommand(NewDocsCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
