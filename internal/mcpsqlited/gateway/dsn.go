package gateway

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// createDSN builds the go-sqlite3 data source name for the database file.
//
// The path is kept as a plain filename (no "file:" prefix) so it is not
// parsed as an SQLite URI.
func createDSN(
	dbPath string, busyTimeout time.Duration, foreignKeys bool,
) string {
	qp := url.Values{}
	qp.Add("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))
	qp.Add("_foreign_keys", strconv.FormatBool(foreignKeys))

	return fmt.Sprintf("%s?%s", dbPath, qp.Encode())
}

// resolvePath expands a leading "~" to the user's home directory and
// returns the cleaned path.
func resolvePath(dbPath string) (string, error) {
	if dbPath == "~" || strings.HasPrefix(dbPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, strings.TrimPrefix(dbPath, "~"))
	}

	return filepath.Clean(dbPath), nil
}
