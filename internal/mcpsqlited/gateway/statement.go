package gateway

import (
	"strings"

	"github.com/orsinium-labs/enum"
)

// statementKind is the way the gateway executes a statement.
type statementKind enum.Member[string]

var (
	// StatementKindRead statements return every resulting row and are never
	// committed by the gateway.
	StatementKindRead = statementKind{Value: "read"}
	// StatementKindWrite statements are committed and return the number of
	// affected rows.
	StatementKindWrite = statementKind{Value: "write"}
)

// writePrefixes are the leading keywords that mark a statement as a write.
var writePrefixes = []string{"INSERT", "UPDATE", "DELETE", "CREATE"}

// classifyStatement returns StatementKindWrite when the upper-cased query
// starts with one of writePrefixes, and StatementKindRead otherwise.
//
// The match is a plain prefix test: leading whitespace or comments make a
// statement a read.
func classifyStatement(query string) statementKind {
	upper := strings.ToUpper(query)
	for _, prefix := range writePrefixes {
		if strings.HasPrefix(upper, prefix) {
			return StatementKindWrite
		}
	}
	return StatementKindRead
}
