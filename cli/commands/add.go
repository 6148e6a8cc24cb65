package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <table> <column=value>...",
		Short: "Insert a row into a table",
		Long:  `Insert a single row. Values are given as column=value pairs; integers, floats, booleans and null are recognized, everything else is a string.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], args[1:])
		},
	}

	return cmd
}

func runAdd(cmd *cobra.Command, table string, assignments []string) error {
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

	added, err := db.Add(ctx, table, fields)
	if err != nil {
		return err
	}
	if !added {
		ui.PrintWarning("Nothing was inserted")
		return nil
	}

	ui.PrintSuccess("Added 1 row to %s", table)
	return nil
}
