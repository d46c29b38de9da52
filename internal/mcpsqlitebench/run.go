package mcpsqlitebench

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/client"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/styled"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlitebench/config"
	"github.com/nsqlite/mcpsqlite/internal/util/numutil"
	"github.com/nsqlite/mcpsqlite/internal/version"
)

// Run drives a mcpsqlited server through its tool-call endpoint and prints
// the results.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.BenchVersion())
	fmt.Println("Benchmarking", conf.ParsedServer.String())
	fmt.Println()

	c := client.NewClient(conf.ParsedServer, nil)
	b := newBench(&c, benchConfig{
		inserts:     conf.Inserts,
		reads:       conf.Reads,
		concurrency: conf.Concurrency,
		table:       conf.Table,
	}, os.Stderr)

	results, err := b.runAll(ctx)
	if err != nil {
		return fmt.Errorf("error benchmarking %s: %w", conf.ParsedServer.String(), err)
	}
	printResults(os.Stdout, results)

	if !conf.Keep {
		if err := b.dropSchema(ctx); err != nil {
			return err
		}
	}

	return nil
}

func printResults(w io.Writer, results []benchmarkResult) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Name", "Requests", "Reads", "Writes", "Duration", "Requests/s"})

	var totalRequests, totalReads, totalWrites uint64
	var totalDuration time.Duration
	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			numutil.IntWithCommas(r.TotalRequests),
			numutil.IntWithCommas(r.TotalReads),
			numutil.IntWithCommas(r.TotalWrites),
			r.Duration.Round(time.Millisecond),
			numutil.IntWithCommas(requestsPerSecond(r.TotalRequests, r.Duration)),
		})

		totalRequests += r.TotalRequests
		totalReads += r.TotalReads
		totalWrites += r.TotalWrites
		totalDuration += r.Duration
	}

	tw.AppendFooter(table.Row{
		"Total",
		numutil.IntWithCommas(totalRequests),
		numutil.IntWithCommas(totalReads),
		numutil.IntWithCommas(totalWrites),
		totalDuration.Round(time.Millisecond),
		numutil.IntWithCommas(requestsPerSecond(totalRequests, totalDuration)),
	})

	fmt.Fprintln(w, tw.Render())
}

func requestsPerSecond(requests uint64, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(requests) / d.Seconds())
}
