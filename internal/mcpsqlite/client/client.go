package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlite/config"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/tool"
	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
)

// ToolError is returned when the server rejects a tool call.
type ToolError struct {
	Status int
	Body   string
}

func (e *ToolError) Error() string {
	return e.Body
}

// Message returns the body without the "Error: " prefix the server adds
// to execution failures.
func (e *ToolError) Message() string {
	return strings.TrimPrefix(e.Body, "Error: ")
}

// IsUnknownTool reports whether the server did not recognize the tool.
func (e *ToolError) IsUnknownTool() bool {
	return e.Status == http.StatusBadRequest && e.Body == "Unknown tool"
}

type Client struct {
	httpClient httpClient
}

// NewClient returns a client for the server at serverURL. A nil hc uses
// a client without timeout.
func NewClient(serverURL config.ServerURL, hc *http.Client) Client {
	return Client{
		httpClient: newHttpClient(serverURL.Endpoint(), hc),
	}
}

// Call invokes a tool on the server and decodes the resulting rows. Any
// non-200 answer is returned as a *ToolError.
func (c *Client) Call(
	ctx context.Context, toolName string, arguments map[string]any,
) ([]sqlrow.Row, error) {
	if arguments == nil {
		arguments = map[string]any{}
	}

	res, err := c.httpClient.post(ctx, map[string]any{
		"tool":      toolName,
		"arguments": arguments,
	})
	if err != nil {
		return nil, err
	}

	if res.Status != http.StatusOK {
		return nil, &ToolError{Status: res.Status, Body: string(res.Body)}
	}

	return decodeRows(res.Body)
}

// ListTables returns one row per table in the remote database.
func (c *Client) ListTables(ctx context.Context) ([]sqlrow.Row, error) {
	return c.Call(ctx, tool.NameListTables.Value, nil)
}

// ReadQuery runs query on the remote database. Writes come back as a
// single row with the affected_rows column.
func (c *Client) ReadQuery(ctx context.Context, query string) ([]sqlrow.Row, error) {
	return c.Call(ctx, tool.NameReadQuery.Value, map[string]any{
		"query": query,
	})
}

func decodeRows(body []byte) ([]sqlrow.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	rows := []sqlrow.Row{}
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return rows, nil
}
