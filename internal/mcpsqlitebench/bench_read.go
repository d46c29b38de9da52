package mcpsqlitebench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const readPageSize = 100

// runBenchmarkRead queries a page of users per request, walking the table
// so every request reads different rows.
func (b *bench) runBenchmarkRead(ctx context.Context) (benchmarkResult, error) {
	start := time.Now()
	var totalRequests, totalReads uint64

	pages := (b.inserts + readPageSize - 1) / readPageSize
	bar := b.newBar(fmt.Sprintf("Querying users %d times", b.reads), b.reads)
	err := runConcurrent(b.reads, b.concurrency, bar, func(idx int) error {
		offset := (idx % pages) * readPageSize
		rows, err := b.client.ReadQuery(ctx, fmt.Sprintf(
			"SELECT id, created, email, active FROM %s ORDER BY id LIMIT %d OFFSET %d",
			b.table, readPageSize, offset,
		))
		atomic.AddUint64(&totalRequests, 1)
		if err != nil {
			return err
		}

		atomic.AddUint64(&totalReads, uint64(len(rows)))
		return nil
	})
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}

	return benchmarkResult{
		Name:          "Read",
		Duration:      time.Since(start),
		TotalRequests: totalRequests,
		TotalReads:    totalReads,
	}, nil
}
