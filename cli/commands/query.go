package commands

import (
	"github.com/satishbabariya/morsel/cli/internal/ui"
	"github.com/spf13/cobra"
)

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	var noCommit bool

	cmd := &cobra.Command{
		Use:   "query <sql> [arg]...",
		Short: "Run a raw SQL statement",
		Long:  `Run a raw SQL statement with optional bind arguments. Statements commit by default; pass --no-commit to roll the work back instead.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], args[1:], !noCommit)
		},
	}

	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "Roll the statement back instead of committing")

	return cmd
}

func runQuery(cmd *cobra.Command, query string, rawArgs []string, commit bool) error {
	args := make([]interface{}, 0, len(rawArgs))
	for _, raw := range rawArgs {
		args = append(args, parseValue(raw))
	}

	ctx, cancel := operationContext()
	defer cancel()

	db, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close(commit)

	res, err := db.Raw(ctx, query, args, commit)
	if err != nil {
		return err
	}

	switch {
	case res.Affected >= 0:
		ui.PrintSuccess("%d row(s) affected", res.Affected)
	case len(res.Rows) == 0:
		ui.PrintInfo("No rows returned")
	default:
		ui.PrintTable(res.Columns, resultRows(res))
		ui.PrintInfo("%d row(s)", len(res.Rows))
	}

	if !commit {
		ui.PrintWarning("Ran without commit; changes were discarded")
	}
	return nil
}
