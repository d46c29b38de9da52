package mcpsqlitebench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// runBenchmarkCatalog calls list_tables repeatedly and checks the
// benchmark table is always listed.
func (b *bench) runBenchmarkCatalog(ctx context.Context) (benchmarkResult, error) {
	start := time.Now()
	var totalRequests, totalReads uint64

	bar := b.newBar(fmt.Sprintf("Listing tables %d times", b.reads), b.reads)
	err := runConcurrent(b.reads, b.concurrency, bar, func(_ int) error {
		rows, err := b.client.ListTables(ctx)
		atomic.AddUint64(&totalRequests, 1)
		if err != nil {
			return err
		}
		atomic.AddUint64(&totalReads, uint64(len(rows)))

		for _, row := range rows {
			if name, _ := row.Value("name"); name == b.table {
				return nil
			}
		}
		return fmt.Errorf("table %s not listed", b.table)
	})
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when listing tables: %w", err)
	}

	return benchmarkResult{
		Name:          "Catalog",
		Duration:      time.Since(start),
		TotalRequests: totalRequests,
		TotalReads:    totalReads,
	}, nil
}
