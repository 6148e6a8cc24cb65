package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <table> [column=value | column__lookup=value]...",
		Short: "Find rows matching a filter",
		Long: `Find rows in a table. With no filter every row is returned.

Filters are column=value pairs. Column names may carry a lookup suffix:
__lt, __lte, __gt, __gte, __startswith, __endswith, __contains, or __in
with a comma-separated value list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0], args[1:])
		},
	}

	return cmd
}

func runFind(cmd *cobra.Command, table string, lookups []string) error {
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

	records, err := db.Find(ctx, table, filter)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ui.PrintInfo("No rows matched")
		return nil
	}

	columns, err := db.Columns(ctx, table)
	if err != nil {
		return err
	}

	ui.PrintTable(columns, recordRows(columns, records))
	ui.PrintInfo("%d row(s)", len(records))
	return nil
}
