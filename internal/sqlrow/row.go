// Package sqlrow provides an ordered column-name to value mapping for the
// rows produced by a SQL statement.
//
// Unlike map[string]any, a Row keeps the column order of the statement both
// in memory and when encoded to or decoded from a JSON object.
package sqlrow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Row is a single result row: column names and their values in statement
// order. The zero value is an empty row.
type Row struct {
	columns []string
	values  []any
}

// New creates a Row from parallel column and value slices.
//
// When a column name appears more than once, the row keeps the position of
// its first occurrence and the value of its last one.
func New(columns []string, values []any) Row {
	if len(columns) != len(values) {
		panic(fmt.Sprintf(
			"sqlrow: %d columns but %d values", len(columns), len(values),
		))
	}

	r := Row{
		columns: make([]string, 0, len(columns)),
		values:  make([]any, 0, len(values)),
	}
	for i, column := range columns {
		r.set(column, values[i])
	}
	return r
}

func (r *Row) set(column string, value any) {
	for i, c := range r.columns {
		if c == column {
			r.values[i] = value
			return
		}
	}
	r.columns = append(r.columns, column)
	r.values = append(r.values, value)
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.columns)
}

// Columns returns the column names in order.
func (r Row) Columns() []string {
	return append([]string(nil), r.columns...)
}

// Values returns the values in column order.
func (r Row) Values() []any {
	return append([]any(nil), r.values...)
}

// Value returns the value of the given column and whether it exists.
func (r Row) Value(column string) (any, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the row as a JSON object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for i, column := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalNoEscape(column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := marshalNoEscape(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("failed to encode column %q: %w", column, err)
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order. Numbers are
// decoded as json.Number so integers survive without float rounding.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("sqlrow: row must be a JSON object")
	}

	decoded := Row{columns: []string{}, values: []any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		column, ok := tok.(string)
		if !ok {
			return fmt.Errorf("sqlrow: unexpected key token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("sqlrow: failed to decode column %q: %w", column, err)
		}
		decoded.set(column, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = decoded
	return nil
}

// marshalNoEscape encodes v as JSON without HTML escaping and without the
// trailing newline added by json.Encoder.
func marshalNoEscape(v any) ([]byte, error) {
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
