package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <table> <pk> <column=value>...",
		Short: "Update a row by primary key",
		Long:  `Update the row whose id column matches <pk>. Values are given as column=value pairs.`,
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args[0], args[1], args[2:])
		},
	}

	return cmd
}

func runUpdate(cmd *cobra.Command, table, rawPK string, assignments []string) error {
	fields, err := parseAssignments(assignments)
	if err != nil {
		return err
	}

	ctx, cancel := operationContext()
	defer cancel()

	db, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close(true)

	updated, err := db.Update(ctx, table, parseValue(rawPK), fields)
	if err != nil {
		return err
	}
	if !updated {
		ui.PrintWarning("No row in %s has id = %s", table, rawPK)
		return nil
	}

	ui.PrintSuccess("Updated 1 row in %s", table)
	return nil
}
