package gateway

import (
	"bytes"
	"encoding/json"

	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
)

// AffectedRowsColumn is the single column of a write result row.
const AffectedRowsColumn = "affected_rows"

// Result is the outcome of one executed statement.
type Result struct {
	Kind statementKind
	// Rows holds every row of a read, or the single affected_rows row of
	// a write.
	Rows []sqlrow.Row
}

func newWriteResult(rowsAffected int64) Result {
	return Result{
		Kind: StatementKindWrite,
		Rows: []sqlrow.Row{
			sqlrow.New([]string{AffectedRowsColumn}, []any{rowsAffected}),
		},
	}
}

// RowsAffected returns the affected row count of a write result. The
// second value is false for read results.
func (r Result) RowsAffected() (int64, bool) {
	if r.Kind != StatementKindWrite || len(r.Rows) != 1 {
		return 0, false
	}
	v, ok := r.Rows[0].Value(AffectedRowsColumn)
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

// MarshalJSON encodes the result as a JSON array of row objects. An empty
// result encodes as [] and HTML characters are not escaped.
func (r Result) MarshalJSON() ([]byte, error) {
	rows := r.Rows
	if rows == nil {
		rows = []sqlrow.Row{}
	}

	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
