package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Operation
		wantErr error
		errText string
	}{
		{
			name: "list_tables",
			body: `{"tool": "list_tables"}`,
			want: ListTables{},
		},
		{
			name: "list_tables ignores arguments",
			body: `{"tool": "list_tables", "arguments": {"query": "DROP TABLE t"}}`,
			want: ListTables{},
		},
		{
			name: "read_query",
			body: `{"tool": "read_query", "arguments": {"query": "SELECT 1"}}`,
			want: ReadQuery{Query: "SELECT 1"},
		},
		{
			name: "read_query keeps query untouched",
			body: `{"tool": "read_query", "arguments": {"query": "  insert into t values (1)  "}}`,
			want: ReadQuery{Query: "  insert into t values (1)  "},
		},
		{
			name: "read_query empty query",
			body: `{"tool": "read_query", "arguments": {"query": ""}}`,
			want: ReadQuery{Query: ""},
		},
		{
			name:    "unknown tool",
			body:    `{"tool": "frobnicate"}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "missing tool",
			body:    `{"arguments": {"query": "SELECT 1"}}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "null tool",
			body:    `{"tool": null}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "tool is not a string",
			body:    `{"tool": 5}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "tool is case sensitive",
			body:    `{"tool": "LIST_TABLES"}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "read_query without arguments",
			body:    `{"tool": "read_query"}`,
			wantErr: ErrMissingQuery,
		},
		{
			name:    "read_query without query",
			body:    `{"tool": "read_query", "arguments": {"sql": "SELECT 1"}}`,
			wantErr: ErrMissingQuery,
		},
		{
			name:    "read_query null arguments",
			body:    `{"tool": "read_query", "arguments": null}`,
			wantErr: ErrMissingQuery,
		},
		{
			name:    "read_query arguments not an object",
			body:    `{"tool": "read_query", "arguments": ["SELECT 1"]}`,
			errText: "invalid arguments: expected a JSON object",
		},
		{
			name:    "read_query query not a string",
			body:    `{"tool": "read_query", "arguments": {"query": 1}}`,
			errText: "invalid argument 'query': expected a string",
		},
		{
			name:    "read_query null query",
			body:    `{"tool": "read_query", "arguments": {"query": null}}`,
			errText: "invalid argument 'query': expected a string",
		},
		{
			name:    "invalid json",
			body:    `{"tool": "list_tables"`,
			errText: "invalid request body",
		},
		{
			name:    "json array",
			body:    `["list_tables"]`,
			errText: "invalid request body",
		},
		{
			name:    "json null",
			body:    `null`,
			errText: "invalid request body: expected a JSON object",
		},
		{
			name:    "empty body",
			body:    ``,
			errText: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ParseRequest([]byte(tt.body))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, op)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
				assert.NotErrorIs(t, err, ErrUnknownTool)
				assert.Nil(t, op)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, op)
			}
		})
	}
}

func TestOperationTool(t *testing.T) {
	assert.Equal(t, NameListTables, ListTables{}.Tool())
	assert.Equal(t, NameReadQuery, ReadQuery{Query: "SELECT 1"}.Tool())
	assert.Len(t, Names.Members(), 2)
}
