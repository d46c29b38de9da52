package httputil

import (
	"fmt"
	"net/http"
)

// ContentTypeText is the content type of every response body.
const ContentTypeText = "text/plain; charset=utf-8"

// WriteText writes a plain text response to the given http.ResponseWriter.
func WriteText(w http.ResponseWriter, status int, str string) error {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(status)

	if _, err := w.Write([]byte(str)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
