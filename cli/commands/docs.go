package commands

import (
	_ "embed"

	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

// NewDocsCommand creates the docs command
func NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show usage documentation",
		Long:  `Render the bundled usage guide in the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.PrintMarkdown(usageDoc)
		},
	}

	return cmd
}
