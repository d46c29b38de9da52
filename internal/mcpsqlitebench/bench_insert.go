package mcpsqlitebench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// runBenchmarkInsert inserts one row per request and then reads all of
// them back in a single query.
func (b *bench) runBenchmarkInsert(ctx context.Context) (benchmarkResult, error) {
	start := time.Now()
	var totalRequests, totalReads, totalWrites uint64

	bar := b.newBar(fmt.Sprintf("Inserting %d users", b.inserts), b.inserts)
	err := runConcurrent(b.inserts, b.concurrency, bar, func(idx int) error {
		rows, err := b.client.ReadQuery(ctx, fmt.Sprintf(
			"INSERT INTO %s (created, email, active) VALUES (%d, 'user%d@example.com', 1)",
			b.table, time.Now().Unix(), idx,
		))
		atomic.AddUint64(&totalRequests, 1)
		if err != nil {
			return err
		}

		affected, err := affectedRows(rows)
		if err != nil {
			return err
		}
		atomic.AddUint64(&totalWrites, affected)
		return nil
	})
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when inserting: %w", err)
	}

	bar = b.newBar("Reading users", 1)
	rows, err := b.client.ReadQuery(ctx, fmt.Sprintf(
		"SELECT id, created, email, active FROM %s ORDER BY id", b.table,
	))
	totalRequests++
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	totalReads += uint64(len(rows))
	bar.Inc()
	bar.Finish()

	if len(rows) != b.inserts {
		return benchmarkResult{}, fmt.Errorf(
			"expected %d users, got %d", b.inserts, len(rows),
		)
	}

	return benchmarkResult{
		Name:          "Insert",
		Duration:      time.Since(start),
		TotalRequests: totalRequests,
		TotalReads:    totalReads,
		TotalWrites:   totalWrites,
	}, nil
}
