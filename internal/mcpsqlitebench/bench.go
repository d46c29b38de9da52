package mcpsqlitebench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlitebench/benchbar"
	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
)

// queryClient is the subset of the mcpsqlite client driven by the
// benchmarks.
type queryClient interface {
	ListTables(ctx context.Context) ([]sqlrow.Row, error)
	ReadQuery(ctx context.Context, query string) ([]sqlrow.Row, error)
}

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name          string
	Duration      time.Duration
	TotalRequests uint64
	TotalReads    uint64
	TotalWrites   uint64
}

type benchConfig struct {
	inserts     int
	reads       int
	concurrency int
	table       string
}

type bench struct {
	client queryClient
	benchConfig
	barWriter io.Writer
}

func newBench(client queryClient, conf benchConfig, barWriter io.Writer) *bench {
	return &bench{
		client:      client,
		benchConfig: conf,
		barWriter:   barWriter,
	}
}

func (b *bench) newBar(description string, maxItems int) *benchbar.Bar {
	return benchbar.NewBar(b.barWriter, description, maxItems)
}

// runAll recreates the schema and runs every benchmark in order. The
// read benchmarks depend on the rows inserted by the first one.
func (b *bench) runAll(ctx context.Context) ([]benchmarkResult, error) {
	if err := b.recreateSchema(ctx); err != nil {
		return nil, err
	}

	benchs := []func(context.Context) (benchmarkResult, error){
		b.runBenchmarkInsert,
		b.runBenchmarkRead,
		b.runBenchmarkCatalog,
	}

	var results []benchmarkResult
	for _, run := range benchs {
		res, err := run(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// affectedRows extracts the count of a write result.
func affectedRows(rows []sqlrow.Row) (uint64, error) {
	if len(rows) != 1 {
		return 0, fmt.Errorf("expected 1 row in write result, got %d", len(rows))
	}

	value, ok := rows[0].Value("affected_rows")
	if !ok {
		return 0, fmt.Errorf("missing affected_rows in write result")
	}

	num, ok := value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("unexpected affected_rows value %v", value)
	}

	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("invalid affected_rows value: %w", err)
	}
	if n < 0 {
		return 0, nil
	}
	return uint64(n), nil
}
