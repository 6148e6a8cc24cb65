package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <table> <pk>",
		Short: "Delete a row by primary key",
		Long:  `Delete the row whose id column matches <pk>. Asks for confirmation unless --yes is given.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0], args[1], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, table, rawPK string, yes bool) error {
	if !yes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete the row in %s where id = %s?", table, rawPK),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			ui.PrintInfo("Aborted")
			return nil
		}
	}

	ctx, cancel := operationContext()
	defer cancel()

	db, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close(true)

	deleted, err := db.Delete(ctx, table, parseValue(rawPK))
	if err != nil {
		return err
	}
	if !deleted {
		ui.PrintWarning("No row in %s has id = %s", table, rawPK)
		return nil
	}

	ui.PrintSuccess("Deleted 1 row from %s", table)
	return nil
}
