package httputil

import (
	"errors"
	"io"
	"net/http"
)

// ReadReqBodyBytes reads the request body from the given request and returns
// it as a byte slice.
//
// When limit is greater than zero, reading more than limit bytes fails.
// Once the body is read, it is closed and cannot be read again.
func ReadReqBodyBytes(r *http.Request, limit int64) ([]byte, error) {
	if r == nil {
		return nil, errors.New("request cannot be nil")
	}

	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	if limit <= 0 {
		return io.ReadAll(r.Body)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, errors.New("request body too large")
	}
	return body, nil
}
