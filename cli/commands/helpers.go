package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/satishbabariya/morsel"
	"github.com/satishbabariya/morsel/cli/internal/config"
	"github.com/satishbabariya/morsel/internal/debug"
	"github.com/spf13/cobra"
)

// operationTimeout bounds a single CLI database operation.
const operationTimeout = 2 * time.Minute

// operationContext returns the context CLI database work runs under.
func operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), operationTimeout)
}

// openDB connects using the first DSN found: the --dsn flag, then the
// morsel config and environment.
func openDB(ctx context.Context, cmd *cobra.Command) (*morsel.DB, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		dsn = cfg.DSN
	}

	if dsn == "" {
		return nil, fmt.Errorf("no DSN configured: pass --dsn, set MORSEL_DSN or DATABASE_URL, or run 'morsel init'")
	}

	db, err := morsel.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	debug.Debug("database opened", "dsn", db.DSN())
	return db, nil
}

// parseAssignments turns "column=value" arguments into fields.
func parseAssignments(args []string) (morsel.Fields, error) {
	fields := make(morsel.Fields, len(args))
	for _, arg := range args {
		column, raw, ok := strings.Cut(arg, "=")
		if !ok || column == "" {
			return nil, fmt.Errorf("%q is not a column=value assignment", arg)
		}
		fields[column] = parseValue(raw)
	}
	return fields, nil
}

// parseFilter turns "column=value" and "column__lookup=value"
// arguments into a filter. Values of __in lookups are comma-separated.
func parseFilter(args []string) (morsel.Filter, error) {
	filter := make(morsel.Filter, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q is not a column=value lookup", arg)
		}

		if strings.HasSuffix(key, "__in") {
			parts := strings.Split(raw, ",")
			values := make([]interface{}, 0, len(parts))
			for _, part := range parts {
				values = append(values, parseValue(part))
			}
			filter[key] = values
			continue
		}
		filter[key] = parseValue(raw)
	}
	return filter, nil
}

// parseValue guesses the type of a command line value: integers,
// floats, booleans and null are converted, everything else stays a
// string.
func parseValue(raw string) interface{} {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if strings.EqualFold(raw, "null") {
		return nil
	}
	return raw
}

// formatValue renders a single cell for table output.
func formatValue(value interface{}) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", value)
}

// recordRows lays records out as table rows in column order.
func recordRows(columns []string, records []morsel.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, formatValue(record[column]))
		}
		rows = append(rows, row)
	}
	return rows
}

// resultRows lays a raw result set out as table rows.
func resultRows(res *morsel.Result) [][]string {
	rows := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		cells := make([]string, 0, len(row))
		for _, value := range row {
			cells = append(cells, formatValue(value))
		}
		rows = append(rows, cells)
	}
	return rows
}
