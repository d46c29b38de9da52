// Package tool decodes tool-call requests into the operations the gateway
// knows how to run.
package tool

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/orsinium-labs/enum"
)

// Name is the name of a tool exposed on the endpoint.
type Name enum.Member[string]

var (
	NameListTables = Name{Value: "list_tables"}
	NameReadQuery  = Name{Value: "read_query"}

	// Names holds every known tool.
	Names = enum.New(NameListTables, NameReadQuery)
)

var (
	// ErrUnknownTool is returned when the tool field is missing, is not a
	// string or names no known tool.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrMissingQuery is returned when read_query has no query argument.
	ErrMissingQuery = errors.New("missing required argument 'query'")
)

// Operation is one of ListTables or ReadQuery.
type Operation interface {
	// Tool returns the tool name the operation was decoded from.
	Tool() Name

	isOperation()
}

// ListTables lists the tables of the database.
type ListTables struct{}

// ReadQuery runs a single SQL statement.
type ReadQuery struct {
	Query string
}

func (ListTables) Tool() Name { return NameListTables }
func (ReadQuery) Tool() Name  { return NameReadQuery }

func (ListTables) isOperation() {}
func (ReadQuery) isOperation()  {}

// Request is the body posted to the endpoint.
type Request struct {
	Tool      json.RawMessage `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

// ParseRequest decodes a request body into an Operation.
//
// A missing or unrecognized tool yields ErrUnknownTool. Missing arguments
// default to an empty object; arguments are only looked at by read_query.
func ParseRequest(body []byte) (Operation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if fields == nil {
		return nil, errors.New("invalid request body: expected a JSON object")
	}

	req := Request{
		Tool:      fields["tool"],
		Arguments: fields["arguments"],
	}

	var toolName string
	if err := json.Unmarshal(req.Tool, &toolName); err != nil {
		return nil, ErrUnknownTool
	}
	name := Names.Parse(toolName)
	if name == nil {
		return nil, ErrUnknownTool
	}

	switch *name {
	case NameListTables:
		return ListTables{}, nil
	case NameReadQuery:
		return parseReadQuery(req.Arguments)
	}

	return nil, ErrUnknownTool
}

func parseReadQuery(rawArgs json.RawMessage) (Operation, error) {
	args := map[string]json.RawMessage{}
	if len(rawArgs) > 0 {
		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(rawArgs, &decoded); err != nil {
			return nil, errors.New("invalid arguments: expected a JSON object")
		}
		if decoded != nil {
			args = decoded
		}
	}

	rawQuery, ok := args["query"]
	if !ok {
		return nil, ErrMissingQuery
	}

	var query *string
	if err := json.Unmarshal(rawQuery, &query); err != nil || query == nil {
		return nil, errors.New("invalid argument 'query': expected a string")
	}

	return ReadQuery{Query: *query}, nil
}
