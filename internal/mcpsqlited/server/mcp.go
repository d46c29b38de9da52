package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/gateway"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/tool"
	"github.com/nsqlite/mcpsqlite/internal/util/httputil"
)

// unknownToolBody is the response body for an unrecognized tool.
const unknownToolBody = "Unknown tool"

// mcpHandler is the HTTP handler for the /mcp endpoint. It runs one tool
// call and writes the JSON encoded result as plain text.
func (s *Server) mcpHandler(w http.ResponseWriter, r *http.Request) error {
	body, err := httputil.ReadReqBodyBytes(r, s.maxBodySize)
	if err != nil {
		return newToolError(err)
	}

	op, err := tool.ParseRequest(body)
	if errors.Is(err, tool.ErrUnknownTool) {
		return httputil.NewHTTPError(http.StatusBadRequest, err, unknownToolBody)
	}
	if err != nil {
		return newToolError(err)
	}

	res, err := s.dispatch(r.Context(), op)
	if err != nil {
		return newToolError(err)
	}

	payload, err := res.MarshalJSON()
	if err != nil {
		return newToolError(err)
	}

	return httputil.WriteText(w, http.StatusOK, string(payload))
}

// dispatch runs the operation through the gateway.
func (s *Server) dispatch(
	ctx context.Context, op tool.Operation,
) (gateway.Result, error) {
	switch op := op.(type) {
	case tool.ListTables:
		return s.gateway.ListTables(ctx)
	case tool.ReadQuery:
		return s.gateway.Execute(ctx, op.Query)
	}

	return gateway.Result{}, fmt.Errorf("unsupported operation %T", op)
}

// newToolError maps a failed tool call to the 400 "Error: <message>"
// response.
func newToolError(err error) httputil.HTTPError {
	return httputil.NewHTTPError(
		http.StatusBadRequest, err, "Error: "+err.Error(),
	)
}
