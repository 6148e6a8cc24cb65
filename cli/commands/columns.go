package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewColumnsCommand creates the columns command
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <table>",
		Short: "List the columns of a table",
		Long:  `Introspect a table and list its column names in sorted order.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumns(cmd, args[0])
		},
	}

	return cmd
}

func runColumns(cmd *cobra.Command, table string) error {
	ctx, cancel := operationContext()
	defer cancel()

	db, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close(false)

	columns, err := db.Columns(ctx, table)
	if err != nil {
		return err
	}

	ui.PrintSection("Columns of " + table)
	ui.PrintList(columns)
	return nil
}
