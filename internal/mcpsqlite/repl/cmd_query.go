package repl

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/client"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/styled"
	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
)

// cmdQuery sends input as a read_query call and prints the result.
func cmdQuery(r *Repl, input string) {
	start := time.Now()
	rows, err := r.client.ReadQuery(r.ctx, input)
	printResult(r, rows, err, time.Since(start))
}

func cmdTables(r *Repl) {
	start := time.Now()
	rows, err := r.client.ListTables(r.ctx)
	printResult(r, rows, err, time.Since(start))
}

func printResult(r *Repl, rows []sqlrow.Row, err error, took time.Duration) {
	if err != nil {
		printError(r, err)
		return
	}

	if len(rows) == 0 {
		styled.DimmedColor().Fprintf(r.out, "(0 rows) in %s\n\n", took.Round(time.Microsecond))
		return
	}

	fmt.Fprintln(r.out, renderRows(rows))
	styled.DimmedColor().Fprintf(
		r.out, "(%d rows) in %s\n\n", len(rows), took.Round(time.Microsecond),
	)
}

func printError(r *Repl, err error) {
	msg := err.Error()

	var toolErr *client.ToolError
	if errors.As(err, &toolErr) {
		msg = toolErr.Message()
	}

	styled.ErrorColor().Fprintf(r.out, "Error: %s\n\n", msg)
}

// renderRows renders rows as a table. The header is taken from the first
// row, which the server guarantees to share its columns with the others.
func renderRows(rows []sqlrow.Row) string {
	columns := rows[0].Columns()

	tw := styled.NewTableWriter()
	header := table.Row{}
	for _, col := range columns {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		tr := table.Row{}
		for _, col := range columns {
			value, _ := row.Value(col)
			tr = append(tr, formatValue(value))
		}
		tw.AppendRow(tr)
	}

	return tw.Render()
}

func formatValue(value any) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprint(value)
}
