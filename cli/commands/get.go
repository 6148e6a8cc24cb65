package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <table> [column=value | column__lookup=value]...",
		Short: "Fetch the first row matching a filter",
		Long:  `Fetch a single row. Filters work exactly as in find; the first matching row is shown.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0], args[1:])
		},
	}

	return cmd
}

func runGet(cmd *cobra.Command, table string, lookups []string) error {
	filter, err := parseFilter(lookups)
	if err != nil {
		return err
	}

	ctx, cancel := operationContext()
	defer cancel()

	db, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close(false)

	record, err := db.Get(ctx, table, filter)
	if err != nil {
		return err
	}
	if record == nil {
		ui.PrintWarning("No row matched")
		return nil
	}

	columns, err := db.Columns(ctx, table)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(columns))
	for _, column := range columns {
		rows = append(rows, []string{column, formatValue(record[column])})
	}
	ui.PrintTable([]string{"Column", "Value"}, rows)
	return nil
}
