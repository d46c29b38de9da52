package repl

import (
	"fmt"
	"strings"
)

// quoteIdent quotes a table name as a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func cmdCount(r *Repl, tableName string) {
	if tableName == "" {
		printUsage(r, ".count [table_name]")
		return
	}
	cmdQuery(r, fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", quoteIdent(tableName)))
}

func cmdColumns(r *Repl, tableName string) {
	if tableName == "" {
		printUsage(r, ".columns [table_name]")
		return
	}
	cmdQuery(r, fmt.Sprintf(
		"SELECT name, type, \"notnull\", dflt_value, pk FROM pragma_table_info(%s)",
		quoteString(tableName),
	))
}

func cmdIndexes(r *Repl) {
	cmdQuery(r, "SELECT name, tbl_name FROM sqlite_master WHERE type='index'")
}

func cmdSchema(r *Repl) {
	cmdQuery(r, "SELECT sql FROM sqlite_master WHERE sql IS NOT NULL")
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func printUsage(r *Repl, usage string) {
	fmt.Fprintf(r.out, "Usage: %s\n\n", usage)
}
