package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/gateway"
	"github.com/nsqlite/mcpsqlite/internal/util/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() log.Logger {
	return log.NewLogger(io.Discard, slog.LevelDebug)
}

// newTestServer starts a server backed by a fresh database file.
func newTestServer(t *testing.T, maxBodySize int64) *httptest.Server {
	t.Helper()

	g, err := gateway.NewGateway(gateway.Config{
		Logger: newTestLogger(),
		Path:   filepath.Join(t.TempDir(), "data", "mcp.db"),
	})
	require.NoError(t, err)

	s, err := NewServer(Config{
		Logger:      newTestLogger(),
		Gateway:     g,
		MaxBodySize: maxBodySize,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// post sends body to /mcp and returns the status and body.
func post(t *testing.T, ts *httptest.Server, body string) (int, string) {
	t.Helper()

	res, err := http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, httputil.ContentTypeText, res.Header.Get("Content-Type"))
	return res.StatusCode, string(b)
}

func readQuery(query string) string {
	return `{"tool": "read_query", "arguments": {"query": "` + query + `"}}`
}

func TestNewServer(t *testing.T) {
	g := &fakeGateway{}

	_, err := NewServer(Config{Gateway: g})
	assert.EqualError(t, err, "logger is required")

	_, err = NewServer(Config{Logger: newTestLogger()})
	assert.EqualError(t, err, "gateway is required")

	_, err = NewServer(Config{Logger: newTestLogger(), Gateway: g, MaxBodySize: -1})
	assert.Error(t, err)

	s, err := NewServer(Config{Logger: newTestLogger(), Gateway: g})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", s.server.Addr)
}

func TestMCPHandler(t *testing.T) {
	t.Run("ListTablesOnEmptyDatabase", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, `{"tool": "list_tables"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "[]", body)
	})

	t.Run("UnknownTool", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, `{"tool": "frobnicate"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Unknown tool", body)
	})

	t.Run("MissingTool", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, `{"arguments": {}}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Unknown tool", body)
	})

	t.Run("NoSuchTable", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, readQuery("SELECT * FROM nonexistent"))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Error: no such table: nonexistent", body)
	})

	t.Run("MultipleStatementsAreRejected", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, _ := post(t, ts, readQuery("CREATE TABLE t (id INTEGER PRIMARY KEY)"))
		require.Equal(t, http.StatusOK, status)

		for _, query := range []string{
			"INSERT INTO t (id) VALUES (1); DROP TABLE t",
			"SELECT 1 AS a; INSERT INTO t (id) VALUES (2)",
		} {
			status, body := post(t, ts, readQuery(query))
			assert.Equal(t, http.StatusBadRequest, status, query)
			assert.Equal(t, "Error: You can only execute one statement at a time.", body, query)
		}

		status, body := post(t, ts, readQuery("SELECT COUNT(*) AS n FROM t"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"n":0}]`, body)
	})

	t.Run("MissingQueryArgument", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, `{"tool": "read_query"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Error: missing required argument 'query'", body)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, `{"tool": `)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.True(t, strings.HasPrefix(body, "Error: invalid request body"), body)
	})

	t.Run("BodyTooLarge", func(t *testing.T) {
		ts := newTestServer(t, 16)

		status, body := post(t, ts, `{"tool": "list_tables"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Error: request body too large", body)
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, readQuery("CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"affected_rows":0}]`, body)

		status, body = post(t, ts, readQuery("INSERT INTO t (name) VALUES ('a')"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"affected_rows":1}]`, body)

		status, body = post(t, ts, readQuery("INSERT INTO t (name) VALUES ('b')"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"affected_rows":1}]`, body)

		status, body = post(t, ts, readQuery("SELECT name, id FROM t ORDER BY id"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"name":"a","id":1},{"name":"b","id":2}]`, body)

		status, body = post(t, ts, readQuery("SELECT COUNT(*) AS n FROM t"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"n":2}]`, body)

		status, body = post(t, ts, `{"tool": "list_tables"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `[{"name":"t"}]`, body)
	})

	t.Run("UnencodableValue", func(t *testing.T) {
		ts := newTestServer(t, 0)

		status, body := post(t, ts, readQuery("SELECT 1e999 AS big"))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.True(t, strings.HasPrefix(body, "Error: "), body)
		assert.Contains(t, body, "unsupported value")
	})

	t.Run("OnlyPostIsAllowed", func(t *testing.T) {
		ts := newTestServer(t, 0)

		res, err := http.Get(ts.URL + "/mcp")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	})

	t.Run("NoOtherRoutes", func(t *testing.T) {
		ts := newTestServer(t, 0)

		res, err := http.Post(ts.URL+"/health", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

// fakeGateway records the statements it receives.
type fakeGateway struct {
	queries    []string
	listCalls  int
	executeErr error
}

func (f *fakeGateway) Execute(_ context.Context, query string) (gateway.Result, error) {
	f.queries = append(f.queries, query)
	return gateway.Result{Kind: gateway.StatementKindRead}, f.executeErr
}

func (f *fakeGateway) ListTables(_ context.Context) (gateway.Result, error) {
	f.listCalls++
	return gateway.Result{Kind: gateway.StatementKindRead}, nil
}

func TestDispatch(t *testing.T) {
	g := &fakeGateway{executeErr: errors.New("database is locked")}
	s, err := NewServer(Config{Logger: newTestLogger(), Gateway: g})
	require.NoError(t, err)

	t.Run("ListTables", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"tool":"list_tables"}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
		assert.Equal(t, 1, g.listCalls)
	})

	t.Run("ReadQueryPassesStatementVerbatim", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(readQuery(" select 1 ")))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error: database is locked", rec.Body.String())
		assert.Equal(t, []string{" select 1 "}, g.queries)
	})
}
