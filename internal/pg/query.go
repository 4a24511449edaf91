package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"k8s.io/klog/v2"
)

// Query runs a read-only SELECT statement against `databaseURL` and returns
// its rows as `[]any` of `map[string]any`, keyed by column name.
func Query(ctx context.Context, databaseURL string, sql string) ([]any, error) {
	if err := ValidateSelect(sql); err != nil {
		return nil, fmt.Errorf(`invalid actual query: %w`, err)
	}

	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf(`failed to connect to the database: %w`, err)
	}
	defer conn.Close(ctx)

	klog.V(4).InfoS("Running actual query", "sql", sql)

	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf(`failed to run query: %w`, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf(`failed to read query rows: %w`, err)
	}

	out := make([]any, len(maps))
	for i, m := range maps {
		out[i] = normalize(m)
	}

	return out, nil
}
