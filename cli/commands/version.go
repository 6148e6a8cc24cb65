package commands

import (
	"fmt"

	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/satishbabariya/morsel/cli/internal/update"
	"github.com/satishbabariya/morsel/cli/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display version information for the morsel CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			printers := ui.GetColorPrinters()
			printers["primary"].Println(info.String())
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Build Date: %s\n", info.BuildDate)

			if check {
				return update.CheckForUpdates(info.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check for a newer release")

	return cmd
}
