package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatement(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  statementKind
	}{
		{name: "select", query: "SELECT * FROM t", want: StatementKindRead},
		{name: "insert", query: "INSERT INTO t VALUES (1)", want: StatementKindWrite},
		{name: "update lowercase", query: "update t set a = 1", want: StatementKindWrite},
		{name: "delete mixed case", query: "DeLeTe FROM t", want: StatementKindWrite},
		{name: "create table", query: "CREATE TABLE t (id INTEGER)", want: StatementKindWrite},
		{name: "create index", query: "create index i on t(id)", want: StatementKindWrite},
		{name: "drop is a read", query: "DROP TABLE t", want: StatementKindRead},
		{name: "pragma is a read", query: "PRAGMA table_info(t)", want: StatementKindRead},
		{name: "with cte is a read", query: "WITH x AS (SELECT 1) SELECT * FROM x", want: StatementKindRead},
		{name: "leading whitespace is a read", query: "  INSERT INTO t VALUES (1)", want: StatementKindRead},
		{name: "leading comment is a read", query: "-- c\nINSERT INTO t VALUES (1)", want: StatementKindRead},
		{name: "prefix without boundary", query: "INSERTX", want: StatementKindWrite},
		{name: "empty", query: "", want: StatementKindRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyStatement(tt.query))
		})
	}
}
