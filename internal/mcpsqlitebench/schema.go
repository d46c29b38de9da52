package mcpsqlitebench

import (
	"context"
	"fmt"
)

// recreateSchema drops the benchmark table and creates it again.
func (b *bench) recreateSchema(ctx context.Context) error {
	if err := b.dropSchema(ctx); err != nil {
		return err
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE %s (
			id INTEGER PRIMARY KEY NOT NULL,
			created INTEGER NOT NULL,
			email TEXT NOT NULL,
			active INTEGER NOT NULL
		)`, b.table),
		fmt.Sprintf(`CREATE INDEX %s_created ON %s(created)`, b.table, b.table),
	}

	for _, s := range stmts {
		if _, err := b.client.ReadQuery(ctx, s); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}

	return nil
}

// dropSchema removes the benchmark table. DROP is not sniffed as a write,
// so it runs on the read path and is applied in autocommit mode.
func (b *bench) dropSchema(ctx context.Context) error {
	_, err := b.client.ReadQuery(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", b.table))
	if err != nil {
		return fmt.Errorf("error dropping schema: %w", err)
	}
	return nil
}
